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
	"slices"
	"strconv"
	"strings"

	"dirpx.dev/apierrors/code"
	"google.golang.org/grpc/codes"
)

// Config is the declarative form of the mapper options, suitable for a
// YAML file:
//
//	http:
//	  overrides:
//	    canceled: 499
//	  prefixes:
//	    - code: unavailable
//	      prefix: billing.*
//	      status: 502
//	grpc:
//	  defaults:
//	    conflict: FAILED_PRECONDITION
//
// HTTP statuses are integers; gRPC statuses are either integers or code
// names in any case, with or without underscores.
type Config struct {
	HTTP TransportConfig `yaml:"http"`
	GRPC TransportConfig `yaml:"grpc"`
}

// TransportConfig holds the rules of one transport, keyed by error code.
type TransportConfig struct {
	Defaults  map[string]string `yaml:"defaults"`
	Overrides map[string]string `yaml:"overrides"`
	Prefixes  []PrefixConfig    `yaml:"prefixes"`
}

// PrefixConfig is one reason-prefix rule.
type PrefixConfig struct {
	Code   string `yaml:"code"`
	Prefix string `yaml:"prefix"`
	Status string `yaml:"status"`
}

// FieldIssue names an invalid entry of a Config by path, for example
// "http.overrides.teapot".
type FieldIssue struct {
	Path    string
	Message string
}

// Options converts cfg into mapper options. Every problem is reported,
// in a stable order; when issues is non-empty opts must not be used.
// Prefix syntax is checked later by New.
func (cfg Config) Options() (opts []Option, issues []FieldIssue) {
	add := func(path, format string, args ...any) {
		issues = append(issues, FieldIssue{Path: path, Message: fmt.Sprintf(format, args...)})
	}

	transport(cfg.HTTP, "http", parseHTTPStatus, add,
		func(c code.Code, v int) { opts = append(opts, WithHTTPDefault(c, v)) },
		func(c code.Code, v int) { opts = append(opts, WithHTTPOverride(c, v)) },
		func(c code.Code, p string, v int) { opts = append(opts, WithHTTPPrefix(c, p, v)) },
	)
	transport(cfg.GRPC, "grpc", parseGRPCCode, add,
		func(c code.Code, v codes.Code) { opts = append(opts, WithGRPCDefault(c, v)) },
		func(c code.Code, v codes.Code) { opts = append(opts, WithGRPCOverride(c, v)) },
		func(c code.Code, p string, v codes.Code) { opts = append(opts, WithGRPCPrefix(c, p, v)) },
	)
	return opts, issues
}

func transport[T any](
	tc TransportConfig,
	root string,
	parse func(string) (T, error),
	add func(path, format string, args ...any),
	setDefault, setOverride func(code.Code, T),
	setPrefix func(code.Code, string, T),
) {
	keyed := func(section string, m map[string]string, set func(code.Code, T)) {
		for _, k := range slices.Sorted(maps.Keys(m)) {
			raw := m[k]
			path := root + "." + section + "." + k
			c, err := code.Parse(k)
			if err != nil {
				add(path, "unknown code format")
				continue
			}
			v, err := parse(raw)
			if err != nil {
				add(path, "%v", err)
				continue
			}
			set(c, v)
		}
	}
	keyed("defaults", tc.Defaults, setDefault)
	keyed("overrides", tc.Overrides, setOverride)

	for i, p := range tc.Prefixes {
		path := fmt.Sprintf("%s.prefixes[%d]", root, i)
		c, err := code.Parse(p.Code)
		if err != nil {
			add(path+".code", "unknown code format")
			continue
		}
		if strings.TrimSpace(p.Prefix) == "" {
			add(path+".prefix", "is required")
			continue
		}
		v, err := parse(p.Status)
		if err != nil {
			add(path+".status", "%v", err)
			continue
		}
		setPrefix(c, p.Prefix, v)
	}
}

func parseHTTPStatus(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 100 || n > 599 {
		return 0, fmt.Errorf("%q is not an HTTP status", s)
	}
	return n, nil
}

// parseGRPCCode accepts "5", "NOT_FOUND", "NotFound" or "not_found".
func parseGRPCCode(s string) (codes.Code, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > int(codes.Unauthenticated) {
			return 0, fmt.Errorf("%q is not a gRPC code", s)
		}
		return codes.Code(n), nil
	}
	want := strings.ToLower(strings.ReplaceAll(s, "_", ""))
	for c := codes.OK; c <= codes.Unauthenticated; c++ {
		if strings.ToLower(c.String()) == want {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%q is not a gRPC code", s)
}
