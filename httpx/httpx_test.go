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

package httpx

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"dirpx.dev/apierrors"
	"dirpx.dev/apierrors/adapter"
	"dirpx.dev/apierrors/code"
	"dirpx.dev/apierrors/mapper"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/encoding/protojson"
)

func newRouter(w Writer) http.Handler {
	r := chi.NewRouter()
	r.Method(http.MethodGet, "/users/{id}", w.Handler(func(rw http.ResponseWriter, r *http.Request) error {
		id := chi.URLParam(r, "id")
		if id == "42" {
			_, _ = io.WriteString(rw, `{"id":"42"}`)
			return nil
		}
		return apierrors.MustNotFound("User", map[string]any{"id": id})
	}))
	r.Method(http.MethodPost, "/users", w.Handler(func(http.ResponseWriter, *http.Request) error {
		var fe apierrors.FieldErrors
		fe.Add("email", "must be valid")
		fe.Add("name", "is required")
		return fe.Err()
	}))
	r.Method(http.MethodDelete, "/users/{id}", w.Handler(func(http.ResponseWriter, *http.Request) error {
		return errors.New("pq: connection refused to 10.0.0.7")
	}))
	r.Method(http.MethodPut, "/users/{id}", w.Handler(func(http.ResponseWriter, *http.Request) error {
		return apierrors.MustNew("User was modified", apierrors.WithCode(code.Conflict), apierrors.WithReason("user.version"))
	}))
	return r
}

func do(t *testing.T, h http.Handler, method, path string) (*httptest.ResponseRecorder, *spb.Status) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set(RequestIDHeader, "req-7")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code < 400 {
		return rec, nil
	}
	var s spb.Status
	require.NoError(t, protojson.Unmarshal(rec.Body.Bytes(), &s))
	return rec, &s
}

func TestHandler_StatusCodes(t *testing.T) {
	t.Parallel()
	h := newRouter(Writer{})

	rec, _ := do(t, h, http.MethodGet, "/users/42")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, s := do(t, h, http.MethodGet, "/users/7")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "req-7", rec.Header().Get(RequestIDHeader))
	nf, ok := adapter.FromStatus(s).(*apierrors.NotFoundError)
	require.True(t, ok)
	assert.Equal(t, "User not found", nf.Message())
	assert.Equal(t, map[string]any{"id": "7"}, nf.Data())

	rec, s = do(t, h, http.MethodPost, "/users")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	ve, ok := apierrors.AsValidation(adapter.FromStatus(s))
	require.True(t, ok)
	assert.Equal(t, []string{"email", "name"}, ve.Fields())

	rec, s = do(t, h, http.MethodDelete, "/users/7")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apierrors.Messages().Generic, s.GetMessage())
	assert.NotContains(t, rec.Body.String(), "10.0.0.7")

	rec, _ = do(t, h, http.MethodPut, "/users/7")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestWriter_CustomMapper(t *testing.T) {
	t.Parallel()

	m, err := mapper.New(mapper.WithHTTPPrefix(code.Conflict, "user", http.StatusPreconditionFailed))
	require.NoError(t, err)
	h := newRouter(Writer{Mapper: m})

	rec, s := do(t, h, http.MethodPut, "/users/7")
	assert.Equal(t, http.StatusPreconditionFailed, rec.Code)
	d := adapter.Decode(s)
	assert.Equal(t, code.Conflict, d.Code)
	assert.Equal(t, "req-7", d.RequestID)
}

func TestWriter_GeneratesRequestID(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	Writer{}.Write(rec, req, apierrors.MustNotFound("Page", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
}

func TestWriter_Nil(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	Writer{}.Write(rec, httptest.NewRequest(http.MethodGet, "/", nil), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, rec.Body.Len())
}
