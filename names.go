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

package errkind

import (
	"reflect"
	"strings"
)

// MaxDepth bounds every walk over kind parents and error chains.
const MaxDepth = 100

// Names is an error ancestry: an ordered sequence whose elements are either a
// kind name (string) or a nested Names group holding the ancestry of a
// wrapped cause.
//
// Example, for a ServerError wrapping a DatabaseError:
//
//	Names{"ServerError", Names{"DatabaseError", "Error"}, "Error"}
type Names []any

// String renders the ancestry with every group parenthesized, so nested
// groups stand apart from the top level:
//
//	(ServerError,(DatabaseError,Error),Error)
//
// A backslash, ',', '(' or ')' inside a name is escaped with a backslash, e.g.
// the type name pkg.G[int,string] renders as pkg.G[int\,string].
func (n Names) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n Names) write(b *strings.Builder) {
	b.WriteByte('(')
	for i, el := range n {
		if i > 0 {
			b.WriteByte(',')
		}
		switch v := el.(type) {
		case string:
			writeName(b, v)
		case Names:
			v.write(b)
		}
	}
	b.WriteByte(')')
}

func writeName(b *strings.Builder, name string) {
	for i := 0; i < len(name); i++ {
		switch c := name[i]; c {
		case '\\', ',', '(', ')':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
}

// Strings returns the top-level kind names, skipping nested cause groups.
// For an instance this is its own kind chain, most specific first.
func (n Names) Strings() []string {
	out := make([]string, 0, len(n))
	for _, el := range n {
		if s, ok := el.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// appendName appends name unless it repeats the immediately preceding
// top-level element.
func (n Names) appendName(name string) Names {
	if len(n) > 0 {
		if last, ok := n[len(n)-1].(string); ok && last == name {
			return n
		}
	}
	return append(n, name)
}

// named is implemented by values that carry their own ancestry, i.e.
// instances built by this package or anything mimicking them.
type named interface {
	Names() Names
}

// Ancestry returns the ancestry of err.
//
// Values exposing Names() (errkind instances) report their own, recorded
// ancestry unchanged. Any other error gets a fresh ancestry made of its Go
// type name followed by the base kind:
//
//	Ancestry(errors.New("x")) // (errors.errorString,Error)
//
// Ancestry(nil) returns nil.
func Ancestry(err error) Names {
	if err == nil {
		return nil
	}
	if n, ok := err.(named); ok {
		return n.Names()
	}
	return Names{typeName(err)}.appendKinds(Base)
}

// kindNames collects the names of k and its parents, most specific first.
func kindNames(k *Kind) Names {
	return Names{}.appendKinds(k)
}

// appendKinds walks k and its parents, bounded by MaxDepth, collapsing
// consecutive duplicate names.
func (n Names) appendKinds(k *Kind) Names {
	for i := 0; k != nil && i < MaxDepth; i++ {
		n = n.appendName(k.name)
		k = k.parent
	}
	return n
}

// instanceNames builds the ancestry of a new instance of k wrapping cause.
func instanceNames(k *Kind, cause error) Names {
	n := Names{k.name}
	if cause != nil {
		n = append(n, Ancestry(cause))
	}
	if k.parent == nil {
		return n
	}
	return n.appendKinds(k.parent)
}

// typeName returns the dynamic Go type of v without pointer stars, e.g.
// "fs.PathError" for *fs.PathError.
func typeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "nil"
	}
	return strings.TrimLeft(t.String(), "*")
}
