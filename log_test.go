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

package apierrors

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logJSON(t *testing.T, v any) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logger.Error("request failed", "err", v)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	group, ok := line["err"].(map[string]any)
	require.True(t, ok, "err attr must be a group: %s", buf.String())
	return group
}

func TestLogValue_NotFound(t *testing.T) {
	t.Parallel()
	g := logJSON(t, MustNotFound("User", map[string]any{"id": 7}))
	assert.Equal(t, "not_found", g["kind"])
	assert.Equal(t, "not_found", g["code"])
	assert.Equal(t, "User not found", g["message"])
	assert.Equal(t, "User", g["object_name"])
	assert.Equal(t, map[string]any{"id": float64(7)}, g["data"])
}

func TestLogValue_Validation(t *testing.T) {
	t.Parallel()
	g := logJSON(t, MustValidation([]FieldError{
		MustFieldError("email", "must be valid", WithValue("nope")),
		MustFieldError("name", "is required"),
	}))
	assert.Equal(t, "validation", g["kind"])
	fields, ok := g["errors"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"field": "email", "message": "must be valid", "value": "nope"}, fields["0"])
	assert.Equal(t, map[string]any{"field": "name", "message": "is required"}, fields["1"])
}

func TestLogValue_Generic(t *testing.T) {
	t.Parallel()
	g := logJSON(t, MustNew("boom", WithReason("jobs.run"), WithCause(errors.New("disk full"))))
	assert.Equal(t, "generic", g["kind"])
	assert.Equal(t, "jobs.run", g["reason"])
	assert.Equal(t, "disk full", g["cause"])
	_, hasDetails := g["details"]
	assert.False(t, hasDetails)
}
