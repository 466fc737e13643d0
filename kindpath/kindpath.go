/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package kindpath

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
	"unicode"

	"dirpx.dev/errkind"
)

// Path is the canonical, root-first dotted rendering of a kind ancestry.
type Path string

const (
	// MinLength is the minimum length of a non-empty path ("err" would do).
	MinLength = 3

	// MaxLength bounds the textual length of a path.
	MaxLength = 512

	// MaxSegments bounds the number of segments; it matches the ancestry
	// walk bound of errkind.
	MaxSegments = errkind.MaxDepth
)

// pathFmt accepts one or more dot-separated segments, each starting with a
// lowercase ASCII letter followed by lowercase letters, digits or
// underscores.
const pathFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*)*$`

var pathRe = regexp.MustCompile(pathFmt)

var (
	// ErrPathInvalidFormat is returned when a path does not conform to the
	// expected format.
	ErrPathInvalidFormat = errors.New("kindpath: invalid path format")
	// ErrPathInvalidLength is returned when a path is too short, too long or
	// has too many segments.
	ErrPathInvalidLength = errors.New("kindpath: invalid path length")
)

var (
	_ encoding.TextMarshaler   = (*Path)(nil)
	_ encoding.TextUnmarshaler = (*Path)(nil)
)

// Empty is the zero path.
var Empty Path = ""

// Segment converts a kind name into a path segment:
//
//	Segment("DatabaseError") // "database_error"
//	Segment("HTTPError")     // "http_error"
//	Segment("fs.PathError")  // "fs_path_error"
//
// Runs of characters other than letters and digits collapse into a single
// underscore. A segment that would not start with a letter gets an "x_"
// prefix so the result is always a valid segment (for a non-empty name).
func Segment(name string) string {
	rs := []rune(name)
	var b strings.Builder
	b.Grow(len(name) + 4)

	lastUnderscore := true // suppresses a leading "_"
	for i, r := range rs {
		switch {
		case r < unicode.MaxASCII && unicode.IsUpper(r):
			if i > 0 && !lastUnderscore && wordBoundary(rs, i) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			lastUnderscore = false
		case r < unicode.MaxASCII && (unicode.IsLower(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}

	s := strings.TrimRight(b.String(), "_")
	if s == "" {
		return ""
	}
	if s[0] < 'a' || s[0] > 'z' {
		s = "x_" + s
	}
	return s
}

// wordBoundary reports whether the upper-case rune at i starts a new word:
// after a lowercase letter or digit ("dbError"), or as the last capital of
// an acronym followed by lowercase ("HTTPError").
func wordBoundary(rs []rune, i int) bool {
	prev := rs[i-1]
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}
	return unicode.IsUpper(prev) && i+1 < len(rs) && unicode.IsLower(rs[i+1])
}

// Of builds a path from kind names listed most specific first, as returned
// by errkind.Names.Strings:
//
//	Of([]string{"QueryError", "DatabaseError", "Error"}) // "error.database_error.query_error"
//
// Names that render to an empty segment are skipped. The result is not
// validated.
func Of(names []string) Path {
	segs := make([]string, 0, len(names))
	for i := len(names) - 1; i >= 0; i-- {
		if s := Segment(names[i]); s != "" {
			segs = append(segs, s)
		}
	}
	return Path(strings.Join(segs, "."))
}

// OfKind returns the path of k.
func OfKind(k *errkind.Kind) Path {
	if k == nil {
		return Empty
	}
	return Of(k.Names().Strings())
}

// OfError returns the path of err's own kind chain. Causes are not part of
// the path. A nil error yields Empty.
func OfError(err error) Path {
	return Of(errkind.Ancestry(err).Strings())
}

// Normalize brings an arbitrary string closer to canonical form: it trims
// spaces, lower-cases, turns "/" into "." and "-" into "_".
//
// It does NOT guarantee validity; callers should still call Parse/Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse normalizes and validates s. The empty string yields Empty.
func Parse(s string) (Path, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Path(s), nil
}

// MustParse is like Parse but panics on error and on the empty string. It
// is meant for package-level declarations.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if p == Empty {
		panic("kindpath: empty path in MustParse")
	}
	return p
}

// Validate checks whether p is in canonical form. Empty is valid.
func Validate(p Path) error {
	if p == Empty {
		return nil
	}
	return validate(string(p))
}

// Segments splits p into its segments, root first. Empty yields nil.
func (p Path) Segments() []string {
	if p == Empty {
		return nil
	}
	return strings.Split(string(p), ".")
}

// HasPrefix reports whether prefix covers p on segment boundaries:
// "error.database_error" covers "error.database_error.query_error" but not
// "error.database_errors".
func (p Path) HasPrefix(prefix Path) bool {
	if prefix == Empty {
		return true
	}
	if !strings.HasPrefix(string(p), string(prefix)) {
		return false
	}
	return len(p) == len(prefix) || p[len(prefix)] == '.'
}

// String returns the path as a string.
func (p Path) String() string {
	return string(p)
}

// MarshalText implements encoding.TextMarshaler.
func (p Path) MarshalText() ([]byte, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}
	return []byte(p), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Input is normalized and
// validated; blank input yields Empty.
func (p *Path) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrPathInvalidLength
	}
	if strings.Count(s, ".")+1 > MaxSegments {
		return ErrPathInvalidLength
	}
	if !pathRe.MatchString(s) {
		return ErrPathInvalidFormat
	}
	return nil
}
