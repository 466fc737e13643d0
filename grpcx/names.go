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

package grpcx

import (
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/errkind"
)

// ErrNamesSyntax is returned by ParseNames for malformed input.
var ErrNamesSyntax = errors.New("grpcx: invalid names syntax")

// ParseNames parses the form produced by errkind.Names.String:
//
//	(ServerError,(DatabaseError,Error),Error)
//
// Backslash escapes inside names are resolved. Nesting is bounded by
// errkind.MaxDepth.
func ParseNames(s string) (errkind.Names, error) {
	p := namesParser{src: s}
	n, err := p.group(0)
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("%w: trailing input at %d", ErrNamesSyntax, p.pos)
	}
	return n, nil
}

type namesParser struct {
	src string
	pos int
}

func (p *namesParser) group(depth int) (errkind.Names, error) {
	if depth >= errkind.MaxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d", ErrNamesSyntax, errkind.MaxDepth)
	}
	if !p.eat('(') {
		return nil, fmt.Errorf("%w: expected '(' at %d", ErrNamesSyntax, p.pos)
	}
	n := errkind.Names{}
	if p.eat(')') {
		return n, nil
	}
	for {
		if p.peek() == '(' {
			sub, err := p.group(depth + 1)
			if err != nil {
				return nil, err
			}
			n = append(n, sub)
		} else {
			name, err := p.name()
			if err != nil {
				return nil, err
			}
			n = append(n, name)
		}

		switch {
		case p.eat(','):
		case p.eat(')'):
			return n, nil
		default:
			return nil, fmt.Errorf("%w: expected ',' or ')' at %d", ErrNamesSyntax, p.pos)
		}
	}
}

// name reads one name up to an unescaped ',', '(' or ')', resolving
// backslash escapes.
func (p *namesParser) name() (string, error) {
	var b strings.Builder
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == ',' || c == '(' || c == ')' {
			break
		}
		if c == '\\' {
			p.pos++
			if p.pos == len(p.src) {
				return "", fmt.Errorf("%w: dangling escape at %d", ErrNamesSyntax, p.pos)
			}
			c = p.src[p.pos]
		}
		b.WriteByte(c)
		p.pos++
	}
	if p.pos == start {
		return "", fmt.Errorf("%w: empty name at %d", ErrNamesSyntax, p.pos)
	}
	return b.String(), nil
}

func (p *namesParser) peek() byte {
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}
	return 0
}

func (p *namesParser) eat(c byte) bool {
	if p.peek() == c && p.pos < len(p.src) {
		p.pos++
		return true
	}
	return false
}
