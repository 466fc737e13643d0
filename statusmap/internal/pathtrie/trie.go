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

package pathtrie

import (
	"errors"
	"strings"
)

// Wildcard matches exactly one path segment.
const Wildcard = "*"

// ErrInvalidPattern is returned when inserting a pattern that is empty, has
// empty or malformed segments, or consists only of wildcards.
var ErrInvalidPattern = errors.New("pathtrie: invalid pattern")

// Trie indexes dotted kind-path patterns for longest-prefix matching.
// Each node is one segment; "*" matches exactly one segment. When several
// patterns match, the deepest wins, and at equal depth a literal segment
// beats the wildcard.
//
// A Trie is not safe for concurrent Insert; once built it may be matched
// from any number of goroutines.
type Trie[T any] struct {
	root *node[T]
	size int
}

type node[T any] struct {
	children map[string]*node[T]
	hasVal   bool
	val      T
	// pattern is the dotted pattern that stored val, kept for Explain.
	pattern string
}

// New creates an empty trie.
func New[T any]() *Trie[T] {
	return &Trie[T]{root: newNode[T]()}
}

func newNode[T any]() *node[T] {
	return &node[T]{children: make(map[string]*node[T])}
}

// Len returns the number of stored patterns.
func (t *Trie[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Insert associates val with a dotted pattern such as
//
//	"error.database_error"
//	"error.*.query_error"
//
// Inserting the same pattern twice replaces the value.
func (t *Trie[T]) Insert(pattern string, val T) error {
	if t == nil {
		return ErrInvalidPattern
	}
	segs := strings.Split(pattern, ".")
	allWild := true
	for _, s := range segs {
		if !validSegment(s) {
			return ErrInvalidPattern
		}
		if s != Wildcard {
			allWild = false
		}
	}
	if allWild {
		return ErrInvalidPattern
	}

	cur := t.root
	for _, s := range segs {
		child, ok := cur.children[s]
		if !ok {
			child = newNode[T]()
			cur.children[s] = child
		}
		cur = child
	}
	if !cur.hasVal {
		t.size++
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = pattern
	return nil
}

// Match returns the value of the deepest pattern covering segs.
func (t *Trie[T]) Match(segs []string) (T, bool) {
	v, _, ok := t.MatchPattern(segs)
	return v, ok
}

// MatchPattern is like Match and also returns the winning pattern.
func (t *Trie[T]) MatchPattern(segs []string) (T, string, bool) {
	var zero T
	if t == nil {
		return zero, "", false
	}

	var best *node[T]
	bestDepth := -1

	var walk func(n *node[T], depth int)
	walk = func(n *node[T], depth int) {
		if n.hasVal && depth > bestDepth {
			best, bestDepth = n, depth
		}
		if depth == len(segs) {
			return
		}
		// Literal first: at equal depth the first visitor wins.
		if next, ok := n.children[segs[depth]]; ok {
			walk(next, depth+1)
		}
		if next, ok := n.children[Wildcard]; ok {
			walk(next, depth+1)
		}
	}
	walk(t.root, 0)

	if best == nil {
		return zero, "", false
	}
	return best.val, best.pattern, true
}

// validSegment accepts "*" or [a-z][a-z0-9_]*.
func validSegment(s string) bool {
	if s == Wildcard {
		return true
	}
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}
