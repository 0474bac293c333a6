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
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dirpx.dev/apierrors/code"
	"dirpx.dev/apierrors/reason"
	"google.golang.org/grpc/codes"
)

var update = flag.Bool("update", false, "update golden files")

// Regenerate with: go test ./mapper -run Explain_Golden -update
func TestExplain_Golden(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(code.Unavailable, "billing.invoice", 502),
		WithGRPCPrefix(code.Unavailable, "billing.invoice", codes.Unavailable),
		WithHTTPOverride(code.Canceled, 499),
		WithGRPCOverride(code.Canceled, codes.Canceled),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got := strings.Join([]string{
		m.Explain(code.Unavailable, reason.MustParse("billing.invoice.render")),
		m.Explain(code.Canceled, reason.Empty),
		m.Explain(code.NotFound, reason.MustParse("user.lookup")),
		m.Explain(code.Code("teapot"), reason.Empty),
	}, "\n---\n") + "\n"

	path := filepath.Join("testdata", "explain.golden")
	if *update {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(got), 0o644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
		return
	}
	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v (run with -update to create)", err)
	}
	trim := func(s string) string { return strings.TrimRight(s, "\r\n") }
	if trim(string(want)) != trim(got) {
		t.Fatalf("Explain() mismatch\n--- want ---\n%s\n--- got ---\n%s", want, got)
	}
}
