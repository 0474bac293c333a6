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

package adapter

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"dirpx.dev/apierrors"
	"dirpx.dev/apierrors/apis"
	"dirpx.dev/apierrors/code"
	"dirpx.dev/apierrors/mapper"
	"dirpx.dev/apierrors/reason"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/encoding/protojson"
	spb "google.golang.org/genproto/googleapis/rpc/status"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Normalize(nil))

	nf := apierrors.MustNotFound("User", nil)
	got := Normalize(fmt.Errorf("repo: %w", nf))
	assert.Same(t, nf, got)

	plain := Normalize(io.ErrUnexpectedEOF)
	require.NotNil(t, plain)
	assert.Equal(t, apierrors.KindGeneric, plain.Kind())
	assert.Equal(t, code.Internal, plain.Code())
	assert.Equal(t, apierrors.Messages().Generic, plain.Message())
	assert.ErrorIs(t, plain, io.ErrUnexpectedEOF)
	assert.NotContains(t, plain.Message(), "unexpected EOF")
}

func TestToView(t *testing.T) {
	t.Parallel()

	assert.Equal(t, apis.ErrorView{}, ToView(nil))

	v := ToView(apierrors.MustNotFound("User", map[string]any{"id": 42}))
	assert.Equal(t, "not_found", v.Kind)
	assert.Equal(t, "not_found", v.Code)
	assert.Equal(t, "User not found", v.Message)
	require.Len(t, v.Details, 1)
	assert.Equal(t, apis.DetailLookup, v.Details[0].Type)
	assert.Equal(t, "User", v.Details[0].Field)
	assert.Equal(t, "42", v.Details[0].Info["id"])

	v = ToView(errors.New("db password is hunter2"))
	assert.Equal(t, "generic", v.Kind)
	assert.Equal(t, "internal", v.Code)
	assert.NotContains(t, v.Message, "hunter2")
}

func TestToStatus_NotFound(t *testing.T) {
	t.Parallel()

	nf := apierrors.MustNotFound("User", map[string]any{"id": 42, "tenant": "acme"},
		apierrors.WithReason(reason.MustParse("user.lookup")))
	s := ToStatus(nf, nil, Extras{RequestID: "req-1", TraceID: "trace-1"})
	require.NotNil(t, s)
	assert.Equal(t, int32(codes.NotFound), s.GetCode())
	assert.Equal(t, "User not found", s.GetMessage())

	d := Decode(s)
	assert.Equal(t, apierrors.KindNotFound, d.Kind)
	assert.Equal(t, code.NotFound, d.Code)
	assert.Equal(t, reason.Reason("user.lookup"), d.Reason)
	assert.Equal(t, "User", d.ObjectName)
	assert.Equal(t, map[string]any{"id": float64(42), "tenant": "acme"}, d.Data)
	assert.Equal(t, "req-1", d.RequestID)
	assert.Equal(t, "trace-1", d.TraceID)
}

func TestToStatus_UsesMapper(t *testing.T) {
	t.Parallel()

	m, err := mapper.New(mapper.WithGRPCPrefix(code.NotFound, "archive", codes.FailedPrecondition))
	require.NoError(t, err)

	nf := apierrors.MustNotFound("Order", nil, apierrors.WithReason("archive.orders"))
	s := ToStatus(nf, m, Extras{})
	assert.Equal(t, int32(codes.FailedPrecondition), s.GetCode())
	for _, a := range s.GetDetails() {
		msg, err := a.UnmarshalNew()
		require.NoError(t, err)
		_, isReq := msg.(*errdetails.RequestInfo)
		assert.False(t, isReq, "no RequestInfo without extras")
	}
}

func TestRoundTrip_NotFound(t *testing.T) {
	t.Parallel()

	in := apierrors.MustNotFound("Invoice", map[string]any{"number": "INV-7"},
		apierrors.WithMessage("No such invoice"),
		apierrors.WithDetail("hint", "check the number"))
	out := FromStatus(ToStatus(in, nil, Extras{}))

	nf, ok := out.(*apierrors.NotFoundError)
	require.True(t, ok, "got %T", out)
	assert.Equal(t, "Invoice", nf.ObjectName())
	assert.Equal(t, "No such invoice", nf.Message())
	assert.Equal(t, map[string]any{"number": "INV-7"}, nf.Data())
	assert.Equal(t, map[string]any{"hint": "check the number"}, nf.Details())
	assert.True(t, apierrors.IsNotFound(out))
}

func TestRoundTrip_Validation(t *testing.T) {
	t.Parallel()

	in := apierrors.MustValidation([]apierrors.FieldError{
		apierrors.MustFieldError("email", "must be valid"),
		apierrors.MustFieldError("name", "is required"),
	})
	s := ToStatus(in, nil, Extras{})
	assert.Equal(t, int32(codes.InvalidArgument), s.GetCode())

	out := FromStatus(s)
	ve, ok := out.(*apierrors.ValidationError)
	require.True(t, ok, "got %T", out)
	assert.Equal(t, []string{"email", "name"}, ve.Fields())
	assert.Equal(t, "Validation failed", ve.Message())
	assert.Equal(t, in.Error(), ve.Error())
}

func TestRoundTrip_Generic(t *testing.T) {
	t.Parallel()

	in := apierrors.MustNew("Payment provider is down",
		apierrors.WithCode(code.Unavailable),
		apierrors.WithReason("billing.provider"),
		apierrors.WithDetail("provider", "acme-pay"))
	s := ToStatus(in, nil, Extras{})
	assert.Equal(t, int32(codes.Unavailable), s.GetCode())

	out := FromStatus(s)
	e, ok := out.(*apierrors.Error)
	require.True(t, ok, "got %T", out)
	assert.Equal(t, in.Error(), e.Error())
	assert.Equal(t, map[string]any{"provider": "acme-pay"}, e.Details())
}

func TestRoundTrip_KeepsReasonFromCopyHelpers(t *testing.T) {
	t.Parallel()

	in := apierrors.MustNew("x").WithReason("Not A Reason").WithReason("billing.refund")
	out := FromStatus(ToStatus(in, nil, Extras{}))
	require.NotNil(t, out)
	assert.Equal(t, reason.Reason("billing.refund"), out.Reason())
	assert.Equal(t, in.Error(), out.Error())
}

func TestRoundTrip_ThroughJSON(t *testing.T) {
	t.Parallel()

	in := apierrors.MustNotFound("User", map[string]any{"id": "u-1"})
	b, err := protojson.Marshal(ToStatus(in, nil, Extras{}))
	require.NoError(t, err)

	var s spb.Status
	require.NoError(t, protojson.Unmarshal(b, &s))
	out := FromStatus(&s)
	assert.Equal(t, in.Error(), out.Error())
}

func TestFromStatus_Foreign(t *testing.T) {
	t.Parallel()

	assert.Nil(t, FromStatus(nil))
	assert.Nil(t, FromStatus(&spb.Status{Code: int32(codes.OK)}))

	out := FromStatus(&spb.Status{Code: int32(codes.PermissionDenied), Message: "nope"})
	require.NotNil(t, out)
	assert.Equal(t, apierrors.KindGeneric, out.Kind())
	assert.Equal(t, code.PermissionDenied, out.Code())
	assert.Equal(t, "nope", out.Message())

	out = FromStatus(&spb.Status{Code: int32(codes.Unknown)})
	assert.Equal(t, code.Internal, out.Code())
	assert.Equal(t, apierrors.Messages().Generic, out.Message())
}

func TestFromStatus_ExtraOptions(t *testing.T) {
	t.Parallel()

	cause := errors.New("transport")
	s := ToStatus(apierrors.MustNotFound("User", nil), nil, Extras{})
	out := FromStatus(s, apierrors.WithCause(cause))
	assert.ErrorIs(t, out, cause)
}

func TestToValue_Unsupported(t *testing.T) {
	t.Parallel()

	type point struct{ X, Y int }
	st := toStruct(map[string]any{"p": point{1, 2}, "tags": []any{"a", 1}})
	assert.Equal(t, "{1 2}", st.Fields["p"].GetStringValue())
	assert.Len(t, st.Fields["tags"].GetListValue().GetValues(), 2)
}
