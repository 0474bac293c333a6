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
	"testing"

	"dirpx.dev/apierrors/code"
	"dirpx.dev/apierrors/reason"
	"google.golang.org/grpc/codes"
)

func TestConfigOptions(t *testing.T) {
	cfg := Config{
		HTTP: TransportConfig{
			Overrides: map[string]string{"canceled": "499"},
			Prefixes:  []PrefixConfig{{Code: "unavailable", Prefix: "billing.*", Status: "502"}},
		},
		GRPC: TransportConfig{
			Defaults: map[string]string{"conflict": "FAILED_PRECONDITION", "timeout": "4"},
		},
	}
	opts, issues := cfg.Options()
	if len(issues) != 0 {
		t.Fatalf("unexpected issues: %+v", issues)
	}
	m, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(code.Canceled, reason.Empty); got != 499 {
		t.Fatalf("override: got %d", got)
	}
	if got := m.HTTPStatus(code.Unavailable, "billing.invoice.render"); got != 502 {
		t.Fatalf("prefix: got %d", got)
	}
	if got := m.GRPCStatus(code.Conflict, reason.Empty); got != codes.FailedPrecondition {
		t.Fatalf("grpc default by name: got %v", got)
	}
	if got := m.GRPCStatus(code.Timeout, reason.Empty); got != codes.DeadlineExceeded {
		t.Fatalf("grpc default by number: got %v", got)
	}
}

func TestConfigOptions_Issues(t *testing.T) {
	cfg := Config{
		HTTP: TransportConfig{
			Overrides: map[string]string{"x": "404", "not_found": "four"},
			Prefixes: []PrefixConfig{
				{Code: "invalid", Prefix: " ", Status: "400"},
				{Code: "invalid", Prefix: "signup", Status: "99"},
			},
		},
		GRPC: TransportConfig{
			Defaults: map[string]string{"internal": "NOPE"},
		},
	}
	_, issues := cfg.Options()
	want := []string{
		"http.overrides.not_found",
		"http.overrides.x",
		"http.prefixes[0].prefix",
		"http.prefixes[1].status",
		"grpc.defaults.internal",
	}
	if len(issues) != len(want) {
		t.Fatalf("issues = %+v, want paths %v", issues, want)
	}
	for i, p := range want {
		if issues[i].Path != p {
			t.Fatalf("issue %d path = %q, want %q", i, issues[i].Path, p)
		}
		if issues[i].Message == "" {
			t.Fatalf("issue %d has no message", i)
		}
	}
}

func TestParseGRPCCode(t *testing.T) {
	for _, in := range []string{"5", "NOT_FOUND", "NotFound", "not_found", " notfound "} {
		c, err := parseGRPCCode(in)
		if err != nil || c != codes.NotFound {
			t.Fatalf("parseGRPCCode(%q) = %v, %v", in, c, err)
		}
	}
	for _, in := range []string{"", "17", "-1", "teapot"} {
		if _, err := parseGRPCCode(in); err == nil {
			t.Fatalf("parseGRPCCode(%q) must fail", in)
		}
	}
}
