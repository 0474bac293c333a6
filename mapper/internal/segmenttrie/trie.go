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

// Package segmenttrie indexes dot-separated reason prefixes for
// longest-prefix matching on segment boundaries.
package segmenttrie

import (
	"errors"
	"strings"
)

// Wildcard matches exactly one segment.
const Wildcard = "*"

// ErrInvalidPrefix is returned by Insert for empty prefixes, empty or
// malformed segments, and prefixes made only of wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// Trie maps reason prefixes to values. It is not safe for concurrent
// Insert; once built it may be matched from many goroutines.
type Trie[T any] struct {
	children map[string]*Trie[T]
	hasVal   bool
	val      T
	// pattern is the prefix as inserted, kept for Explain output.
	pattern string
}

func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert stores val under prefix, e.g. "user.lookup" or "user.*.by_email".
// Inserting the same prefix twice keeps the last value.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil || prefix == "" {
		return ErrInvalidPrefix
	}
	segs := strings.Split(prefix, ".")
	concrete := false
	for _, s := range segs {
		if s == Wildcard {
			continue
		}
		if !validSegment(s) {
			return ErrInvalidPrefix
		}
		concrete = true
	}
	if !concrete {
		return ErrInvalidPrefix
	}

	n := t
	for _, s := range segs {
		child, ok := n.children[s]
		if !ok {
			child = New[T]()
			n.children[s] = child
		}
		n = child
	}
	n.hasVal, n.val, n.pattern = true, val, prefix
	return nil
}

// Match returns the value of the deepest prefix of reason. At equal depth
// a literal segment beats a wildcard. Malformed segments stop the walk.
func (t *Trie[T]) Match(reason string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(reason)
	return v, ok
}

// MatchWithPattern is Match plus the prefix that produced the value.
func (t *Trie[T]) MatchWithPattern(reason string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	m := matcher[T]{reason: reason, depth: -1}
	m.walk(t, 0, 0)
	if m.best == nil {
		return zero, false, ""
	}
	return m.best.val, true, m.best.pattern
}

type matcher[T any] struct {
	reason string
	best   *Trie[T]
	depth  int
}

func (m *matcher[T]) walk(n *Trie[T], off, depth int) {
	if n.hasVal && depth > m.depth {
		m.best, m.depth = n, depth
	}
	if off >= len(m.reason) {
		return
	}
	end := strings.IndexByte(m.reason[off:], '.')
	next := len(m.reason)
	if end >= 0 {
		end += off
		next = end + 1
	} else {
		end = len(m.reason)
	}
	seg := m.reason[off:end]
	if !validSegment(seg) {
		return
	}
	if c, ok := n.children[seg]; ok {
		m.walk(c, next, depth+1)
	}
	if c, ok := n.children[Wildcard]; ok {
		m.walk(c, next, depth+1)
	}
}

// validSegment reports whether s matches [a-z][a-z0-9_]*.
func validSegment(s string) bool {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_') {
			return false
		}
	}
	return true
}
