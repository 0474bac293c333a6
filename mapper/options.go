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
	"dirpx.dev/apierrors/code"
	"google.golang.org/grpc/codes"
)

// Option adjusts the rules before New freezes them.
type Option func(*builder)

type builder struct {
	http rules[int]
	grpc rules[codes.Code]
}

func newBuilder() *builder {
	return &builder{
		http: newRules(defaultHTTP),
		grpc: newRules(defaultGRPC),
	}
}

// WithHTTPDefault replaces the default HTTP status of c.
func WithHTTPDefault(c code.Code, status int) Option {
	return func(b *builder) { b.http.def[c] = status }
}

// WithGRPCDefault replaces the default gRPC code of c.
func WithGRPCDefault(c code.Code, gc codes.Code) Option {
	return func(b *builder) { b.grpc.def[c] = gc }
}

// WithHTTPOverride forces the HTTP status of c regardless of reason.
func WithHTTPOverride(c code.Code, status int) Option {
	return func(b *builder) { b.http.override[c] = status }
}

// WithGRPCOverride forces the gRPC code of c regardless of reason.
func WithGRPCOverride(c code.Code, gc codes.Code) Option {
	return func(b *builder) { b.grpc.override[c] = gc }
}

// WithHTTPPrefix maps errors with code c whose reason starts with prefix
// to status. "*" matches one segment; the longest matching prefix wins.
func WithHTTPPrefix(c code.Code, prefix string, status int) Option {
	return func(b *builder) {
		b.http.prefixes[c] = append(b.http.prefixes[c], prefixRule[int]{prefix, status})
	}
}

// WithGRPCPrefix is the gRPC counterpart of WithHTTPPrefix.
func WithGRPCPrefix(c code.Code, prefix string, gc codes.Code) Option {
	return func(b *builder) {
		b.grpc.prefixes[c] = append(b.grpc.prefixes[c], prefixRule[codes.Code]{prefix, gc})
	}
}
