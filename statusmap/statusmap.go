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

package statusmap

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"dirpx.dev/errkind"
	"dirpx.dev/errkind/kindpath"
	"dirpx.dev/errkind/statusmap/internal/pathtrie"
	"google.golang.org/grpc/codes"
)

// Status is the pair of transport statuses resolved for one error.
type Status struct {
	HTTP int
	GRPC codes.Code
}

// Mapper is an immutable snapshot of kind-path rules. It is safe for
// concurrent use.
type Mapper struct {
	http *pathtrie.Trie[int]
	grpc *pathtrie.Trie[codes.Code]

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// New builds a Mapper from opts.
//
// Build process:
//
//  1. Apply options to a fresh builder.
//  2. Normalize every prefix with kindpath.Normalize.
//  3. Insert prefixes into per-transport tries, which reject malformed
//     segments and wildcard-only prefixes ("*" is allowed as a whole
//     segment).
//
// Errors indicate an invalid prefix.
func New(opts ...Option) (*Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}

	httpTrie := pathtrie.New[int]()
	for _, r := range b.http {
		p, err := normalizePrefix(r.prefix)
		if err == nil {
			err = httpTrie.Insert(p, r.val)
		}
		if err != nil {
			return nil, fmt.Errorf("statusmap: invalid HTTP kind prefix %q: %w", r.prefix, err)
		}
	}

	grpcTrie := pathtrie.New[codes.Code]()
	for _, r := range b.grpc {
		p, err := normalizePrefix(r.prefix)
		if err == nil {
			err = grpcTrie.Insert(p, codes.Code(r.val))
		}
		if err != nil {
			return nil, fmt.Errorf("statusmap: invalid gRPC kind prefix %q: %w", r.prefix, err)
		}
	}

	return &Mapper{
		http:         httpTrie,
		grpc:         grpcTrie,
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// Path returns the kind path the mapper resolves err by: the path of the
// nearest error in err's Unwrap chain that carries its own ancestry, or of
// err itself when there is none. Causes of that error do not take part.
func Path(err error) kindpath.Path {
	return kindpath.Of(subjectNames(err).Strings())
}

// subjectNames returns the ancestry of the error Path resolves.
func subjectNames(err error) errkind.Names {
	var n interface{ Names() errkind.Names }
	if errors.As(err, &n) {
		return n.Names()
	}
	return errkind.Ancestry(err)
}

// HTTPStatus resolves the HTTP status for err: the deepest matching rule,
// else the fallback. A nil error maps to 200.
func (m *Mapper) HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if v, ok := m.http.Match(Path(err).Segments()); ok {
		return v
	}
	return m.fallbackHTTP
}

// GRPCStatus resolves the gRPC code for err with the same precedence as
// HTTPStatus. A nil error maps to codes.OK.
func (m *Mapper) GRPCStatus(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	if v, ok := m.grpc.Match(Path(err).Segments()); ok {
		return v
	}
	return m.fallbackGRPC
}

// Status resolves both transports for err.
func (m *Mapper) Status(err error) Status {
	return Status{
		HTTP: m.HTTPStatus(err),
		GRPC: m.GRPCStatus(err),
	}
}

// Explain produces a textual trace of how the mapper resolved err:
//
//	kind="error.database_error.query_error" names="(QueryError,DatabaseError,Error)"
//	http: source=prefix pattern="error.database_error" -> 503
//	grpc: source=fallback -> INTERNAL(13)
//
// source is one of none (nil error), prefix or fallback.
func (m *Mapper) Explain(err error) string {
	var b strings.Builder
	p := Path(err)
	_, _ = fmt.Fprintf(&b, "kind=%q names=%q\n", p, subjectNames(err).String())
	_, _ = fmt.Fprintln(&b, m.explainHTTP(err, p))
	_, _ = fmt.Fprint(&b, m.explainGRPC(err, p))
	return b.String()
}

func (m *Mapper) explainHTTP(err error, p kindpath.Path) string {
	if err == nil {
		return fmt.Sprintf("http: source=none -> %d", http.StatusOK)
	}
	if v, pat, ok := m.http.MatchPattern(p.Segments()); ok {
		return fmt.Sprintf("http: source=prefix pattern=%q -> %d", pat, v)
	}
	return fmt.Sprintf("http: source=fallback -> %d", m.fallbackHTTP)
}

func (m *Mapper) explainGRPC(err error, p kindpath.Path) string {
	if err == nil {
		return "grpc: source=none -> " + grpcName(codes.OK)
	}
	if v, pat, ok := m.grpc.MatchPattern(p.Segments()); ok {
		return fmt.Sprintf("grpc: source=prefix pattern=%q -> %s", pat, grpcName(v))
	}
	return "grpc: source=fallback -> " + grpcName(m.fallbackGRPC)
}

func grpcName(c codes.Code) string {
	return fmt.Sprintf("%s(%d)", strings.ToUpper(c.String()), int(c))
}

// normalizePrefix canonicalizes a rule prefix. Segment checks are left to
// the trie.
func normalizePrefix(raw string) (string, error) {
	p := kindpath.Normalize(raw)
	if p == "" {
		return "", errors.New("empty prefix")
	}
	return p, nil
}
