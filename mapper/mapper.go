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

package mapper

import (
	"fmt"
	"maps"
	"net/http"
	"strings"

	"dirpx.dev/apierrors/apis"
	"dirpx.dev/apierrors/code"
	"dirpx.dev/apierrors/mapper/internal/segmenttrie"
	"dirpx.dev/apierrors/reason"
	"google.golang.org/grpc/codes"
)

// New builds an immutable apis.Mapper from the library defaults and opts.
// It fails when a prefix rule is malformed.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	httpT, err := b.http.freeze(http.StatusInternalServerError)
	if err != nil {
		return nil, fmt.Errorf("mapper: http: %w", err)
	}
	grpcT, err := b.grpc.freeze(codes.Internal)
	if err != nil {
		return nil, fmt.Errorf("mapper: grpc: %w", err)
	}
	return &mapper{http: httpT, grpc: grpcT}, nil
}

// Default returns a mapper with the library defaults only.
func Default() apis.Mapper {
	m, err := New()
	if err != nil {
		// No options, no prefixes: New cannot fail.
		panic(err)
	}
	return m
}

type mapper struct {
	http *table[int]
	grpc *table[codes.Code]
}

func (m *mapper) HTTPStatus(c code.Code, r reason.Reason) int {
	v, _, _ := m.http.resolve(c, r)
	return v
}

func (m *mapper) GRPCStatus(c code.Code, r reason.Reason) codes.Code {
	v, _, _ := m.grpc.resolve(c, r)
	return v
}

func (m *mapper) Status(c code.Code, r reason.Reason) apis.Status {
	return apis.Status{HTTP: m.HTTPStatus(c, r), GRPC: m.GRPCStatus(c, r)}
}

// Explain renders one line per transport:
//
//	code="not_found" reason="user.lookup"
//	http: source=prefix pattern="user" -> 404
//	grpc: source=default -> NOTFOUND(5)
func (m *mapper) Explain(c code.Code, r reason.Reason) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "code=%q reason=%q\n", c, r)

	v, src, pat := m.http.resolve(c, r)
	fmt.Fprintf(&sb, "http: source=%s%s -> %d\n", src, patternSuffix(pat), v)

	g, src, pat := m.grpc.resolve(c, r)
	fmt.Fprintf(&sb, "grpc: source=%s%s -> %s(%d)", src, patternSuffix(pat), strings.ToUpper(g.String()), int(g))
	return sb.String()
}

func patternSuffix(p string) string {
	if p == "" {
		return ""
	}
	return fmt.Sprintf(" pattern=%q", p)
}

// Resolution sources, reported by Explain.
const (
	sourceOverride = "override"
	sourcePrefix   = "prefix"
	sourceDefault  = "default"
	sourceFallback = "fallback"
)

// table is the frozen rule set of one transport.
type table[T any] struct {
	override map[code.Code]T
	prefix   map[code.Code]*segmenttrie.Trie[T]
	def      map[code.Code]T
	fallback T
}

// resolve applies, in order: exact override for the code, longest reason
// prefix for the code, default for the code, fallback.
func (t *table[T]) resolve(c code.Code, r reason.Reason) (T, string, string) {
	if v, ok := t.override[c]; ok {
		return v, sourceOverride, ""
	}
	if tr := t.prefix[c]; tr != nil && r != reason.Empty {
		if v, ok, pat := tr.MatchWithPattern(string(r)); ok {
			return v, sourcePrefix, pat
		}
	}
	if v, ok := t.def[c]; ok {
		return v, sourceDefault, ""
	}
	return t.fallback, sourceFallback, ""
}

type prefixRule[T any] struct {
	prefix string
	val    T
}

// rules accumulates options for one transport before freezing.
type rules[T any] struct {
	def      map[code.Code]T
	override map[code.Code]T
	prefixes map[code.Code][]prefixRule[T]
}

func newRules[T any](defaults map[code.Code]T) rules[T] {
	return rules[T]{
		def:      maps.Clone(defaults),
		override: make(map[code.Code]T),
		prefixes: make(map[code.Code][]prefixRule[T]),
	}
}

func (r *rules[T]) freeze(fallback T) (*table[T], error) {
	t := &table[T]{
		override: maps.Clone(r.override),
		def:      maps.Clone(r.def),
		prefix:   make(map[code.Code]*segmenttrie.Trie[T], len(r.prefixes)),
		fallback: fallback,
	}
	for c, list := range r.prefixes {
		tr := segmenttrie.New[T]()
		for _, pr := range list {
			p := reason.Normalize(pr.prefix)
			if err := tr.Insert(p, pr.val); err != nil {
				return nil, fmt.Errorf("prefix %q for code %q: %w", pr.prefix, c, err)
			}
		}
		t.prefix[c] = tr
	}
	return t, nil
}
