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

// Package httpx writes apierrors values as HTTP responses.
//
// The body is a google.rpc.Status in protobuf JSON form, the same payload
// grpcx sends, so a client can decode both with adapter.FromStatus. The
// HTTP status comes from the mapper.
package httpx

import (
	"net/http"

	"dirpx.dev/apierrors"
	"dirpx.dev/apierrors/adapter"
	"dirpx.dev/apierrors/apis"
	"dirpx.dev/apierrors/mapper"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/protobuf/encoding/protojson"
)

// RequestIDHeader is read by DefaultMeta and echoed on error responses.
const RequestIDHeader = "X-Request-Id"

// MetaFn extracts request metadata for the response body.
type MetaFn func(r *http.Request, err apierrors.APIError) adapter.Extras

// DefaultMeta uses the X-Request-Id header, or a fresh UUID, and the trace
// ID of the span in the request context.
func DefaultMeta(r *http.Request, _ apierrors.APIError) adapter.Extras {
	ex := adapter.Extras{RequestID: r.Header.Get(RequestIDHeader)}
	if ex.RequestID == "" {
		ex.RequestID = uuid.NewString()
	}
	if sc := trace.SpanContextFromContext(r.Context()); sc.HasTraceID() {
		ex.TraceID = sc.TraceID().String()
	}
	return ex
}

// Writer turns errors into HTTP responses. The zero value uses
// mapper.Default and DefaultMeta.
type Writer struct {
	Mapper apis.Mapper
	Meta   MetaFn
}

// Write sends err to rw. Errors that are not APIErrors are written as a
// generic internal error without their text. A nil err writes nothing.
//
// No redaction is performed: whatever the APIError carries is exposed.
func (w Writer) Write(rw http.ResponseWriter, r *http.Request, err error) {
	api := adapter.Normalize(err)
	if api == nil {
		return
	}
	m := w.Mapper
	if m == nil {
		m = mapper.Default()
	}
	meta := w.Meta
	if meta == nil {
		meta = DefaultMeta
	}
	ex := meta(r, api)

	b, mErr := protojson.MarshalOptions{UseProtoNames: false}.Marshal(adapter.ToStatus(api, m, ex))
	if mErr != nil {
		http.Error(rw, api.Message(), m.HTTPStatus(api.Code(), api.Reason()))
		return
	}
	rw.Header().Set("Content-Type", "application/json")
	if ex.RequestID != "" {
		rw.Header().Set(RequestIDHeader, ex.RequestID)
	}
	rw.WriteHeader(m.HTTPStatus(api.Code(), api.Reason()))
	_, _ = rw.Write(b)
}

// HandlerFunc is an HTTP handler that reports failure by returning an
// error instead of writing it.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// Handler adapts h to http.Handler; a returned error is sent with Write.
// The handler must not have written a response when it returns an error.
func (w Writer) Handler(h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if err := h(rw, r); err != nil {
			w.Write(rw, r, err)
		}
	})
}
