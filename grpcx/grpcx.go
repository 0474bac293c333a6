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

// Package grpcx converts apierrors values to and from gRPC statuses.
//
// Server interceptors turn a returned APIError into a status built by
// adapter.ToStatus; other errors pass through untouched. The client
// interceptor rebuilds the original kind, so a caller can keep using
// apierrors.AsNotFound across the wire.
package grpcx

import (
	"context"

	"dirpx.dev/apierrors"
	"dirpx.dev/apierrors/adapter"
	"dirpx.dev/apierrors/apis"
	"dirpx.dev/apierrors/mapper"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	gstatus "google.golang.org/grpc/status"
)

// RequestIDKey is the metadata key read by DefaultMeta.
const RequestIDKey = "x-request-id"

// MetaFn extracts request metadata for the encoded status. It may return
// a zero Extras.
type MetaFn func(ctx context.Context, err apierrors.APIError) adapter.Extras

// DefaultMeta uses the incoming x-request-id, or a fresh UUID, as the
// request ID and the trace ID of the active span, if any.
func DefaultMeta(ctx context.Context, _ apierrors.APIError) adapter.Extras {
	var ex adapter.Extras
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get(RequestIDKey); len(v) > 0 && v[0] != "" {
			ex.RequestID = v[0]
		}
	}
	if ex.RequestID == "" {
		ex.RequestID = uuid.NewString()
	}
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		ex.TraceID = sc.TraceID().String()
	}
	return ex
}

// ToError converts err into a gRPC status error when it is an APIError.
// Anything else is returned unchanged.
func ToError(ctx context.Context, err error, m apis.Mapper, metaFn MetaFn) error {
	if err == nil {
		return nil
	}
	api, ok := apierrors.AsAPIError(err)
	if !ok {
		return err
	}
	if m == nil {
		m = mapper.Default()
	}
	var ex adapter.Extras
	if metaFn != nil {
		ex = metaFn(ctx, api)
	}
	return gstatus.ErrorProto(adapter.ToStatus(api, m, ex))
}

// UnaryServerInterceptor maps APIErrors returned by handlers into gRPC
// statuses with m. metaFn may be nil.
func UnaryServerInterceptor(m apis.Mapper, metaFn MetaFn) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err != nil {
			return nil, ToError(ctx, err, m, metaFn)
		}
		return resp, nil
	}
}

// StreamServerInterceptor is the streaming counterpart of
// UnaryServerInterceptor.
func StreamServerInterceptor(m apis.Mapper, metaFn MetaFn) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		return ToError(ss.Context(), handler(srv, ss), m, metaFn)
	}
}

// UnaryClientInterceptor replaces status errors with the apierrors value
// they encode. The original status error stays reachable as the cause.
func UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		err := invoker(ctx, method, req, reply, cc, opts...)
		if api, ok := FromError(err); ok {
			return api
		}
		return err
	}
}

// FromError returns the APIError carried by err. An APIError already in
// the chain is returned as is; otherwise err must be a non-OK gRPC status.
func FromError(err error) (apierrors.APIError, bool) {
	if err == nil {
		return nil, false
	}
	if api, ok := apierrors.AsAPIError(err); ok {
		return api, true
	}
	st, ok := gstatus.FromError(err)
	if !ok || st.Code() == gcodes.OK {
		return nil, false
	}
	return adapter.FromStatus(st.Proto(), apierrors.WithCause(err)), true
}
