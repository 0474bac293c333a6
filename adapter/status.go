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
	"fmt"

	"dirpx.dev/apierrors"
	"dirpx.dev/apierrors/apis"
	"dirpx.dev/apierrors/code"
	"dirpx.dev/apierrors/mapper"
	"dirpx.dev/apierrors/reason"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// Domain is the ErrorInfo domain of statuses produced by ToStatus.
const Domain = "apierrors"

// ErrorInfo metadata keys.
const (
	MetaKind   = "kind"
	MetaCode   = "code"
	MetaReason = "reason"
)

// Top-level keys of the payload Struct.
const (
	payloadData    = "data"
	payloadDetails = "details"
)

// Extras is request-scoped metadata added to an encoded status.
type Extras struct {
	// RequestID identifies the failed request.
	RequestID string
	// TraceID is the distributed trace the request belongs to. It is sent
	// as RequestInfo.serving_data.
	TraceID string
}

// ToStatus encodes err as a google.rpc.Status. The status code is resolved
// by m (mapper.Default when nil). A nil err gives a nil status; a non-API
// error is encoded as in Normalize.
func ToStatus(err error, m apis.Mapper, ex Extras) *spb.Status {
	api := Normalize(err)
	if api == nil {
		return nil
	}
	if m == nil {
		m = mapper.Default()
	}

	md := map[string]string{
		MetaKind: api.Kind().String(),
		MetaCode: string(api.Code()),
	}
	if api.Reason() != reason.Empty {
		md[MetaReason] = string(api.Reason())
	}
	details := []proto.Message{&errdetails.ErrorInfo{
		Reason:   string(api.Code()),
		Domain:   Domain,
		Metadata: md,
	}}

	payload := map[string]any{}
	switch e := api.(type) {
	case *apierrors.NotFoundError:
		details = append(details, &errdetails.ResourceInfo{
			ResourceType: e.ObjectName(),
			Description:  e.Message(),
		})
		payload[payloadData] = e.Data()
	case *apierrors.ValidationError:
		br := &errdetails.BadRequest{}
		for _, fe := range e.Errors() {
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       fe.Field(),
				Description: fe.Message(),
			})
		}
		details = append(details, br)
	}
	if dc, ok := api.(interface{ Details() map[string]any }); ok {
		if d := dc.Details(); len(d) > 0 {
			payload[payloadDetails] = d
		}
	}
	if len(payload) > 0 {
		details = append(details, toStruct(payload))
	}
	if ex.RequestID != "" || ex.TraceID != "" {
		details = append(details, &errdetails.RequestInfo{
			RequestId:   ex.RequestID,
			ServingData: ex.TraceID,
		})
	}

	s := &spb.Status{
		Code:    int32(m.GRPCStatus(api.Code(), api.Reason())),
		Message: api.Message(),
	}
	for _, d := range details {
		a, err := anypb.New(d)
		if err != nil {
			continue
		}
		s.Details = append(s.Details, a)
	}
	return s
}

// toStruct converts v into a Struct. Values structpb cannot represent are
// stored in their fmt form.
func toStruct(v map[string]any) *structpb.Struct {
	out := &structpb.Struct{Fields: make(map[string]*structpb.Value, len(v))}
	for k, x := range v {
		out.Fields[k] = toValue(x)
	}
	return out
}

func toValue(x any) *structpb.Value {
	switch t := x.(type) {
	case map[string]any:
		return structpb.NewStructValue(toStruct(t))
	case []any:
		l := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(t))}
		for _, e := range t {
			l.Values = append(l.Values, toValue(e))
		}
		return structpb.NewListValue(l)
	}
	if val, err := structpb.NewValue(x); err == nil {
		return val
	}
	return structpb.NewStringValue(fmt.Sprint(x))
}

// Decoded is the content of a status produced by ToStatus.
type Decoded struct {
	Kind       apierrors.Kind
	Code       code.Code
	Reason     reason.Reason
	Message    string
	ObjectName string
	Data       map[string]any
	Details    map[string]any
	Violations []*errdetails.BadRequest_FieldViolation
	RequestID  string
	TraceID    string
}

// Decode reads the details of s. Unknown detail types are skipped. When s
// has no apierrors ErrorInfo the kind is inferred from the other details
// and the code from the gRPC status code.
func Decode(s *spb.Status) Decoded {
	d := Decoded{Message: s.GetMessage()}
	var haveInfo bool
	for _, a := range s.GetDetails() {
		msg, err := a.UnmarshalNew()
		if err != nil {
			continue
		}
		switch t := msg.(type) {
		case *errdetails.ErrorInfo:
			if t.GetDomain() != Domain {
				continue
			}
			haveInfo = true
			md := t.GetMetadata()
			if k, ok := apierrors.ParseKind(md[MetaKind]); ok {
				d.Kind = k
			}
			if c, err := code.Parse(md[MetaCode]); err == nil {
				d.Code = c
			}
			if r, err := reason.Parse(md[MetaReason]); err == nil {
				d.Reason = r
			}
		case *errdetails.ResourceInfo:
			d.ObjectName = t.GetResourceType()
		case *errdetails.BadRequest:
			d.Violations = append(d.Violations, t.GetFieldViolations()...)
		case *structpb.Struct:
			m := t.AsMap()
			if v, ok := m[payloadData].(map[string]any); ok {
				d.Data = v
			}
			if v, ok := m[payloadDetails].(map[string]any); ok {
				d.Details = v
			}
		case *errdetails.RequestInfo:
			d.RequestID = t.GetRequestId()
			d.TraceID = t.GetServingData()
		}
	}
	if !haveInfo || d.Kind == apierrors.KindUnknown {
		switch {
		case d.ObjectName != "":
			d.Kind = apierrors.KindNotFound
		case len(d.Violations) > 0:
			d.Kind = apierrors.KindValidation
		default:
			d.Kind = apierrors.KindGeneric
		}
	}
	if d.Code == code.Empty {
		d.Code = codeForGRPC(codes.Code(s.GetCode()))
	}
	return d
}

// FromStatus rebuilds an apierrors value from s. opts are applied after the
// decoded ones, which lets callers attach a cause. A nil or OK status gives
// nil.
func FromStatus(s *spb.Status, opts ...apierrors.Option) apierrors.APIError {
	if s == nil || codes.Code(s.GetCode()) == codes.OK {
		return nil
	}
	d := Decode(s)

	all := []apierrors.Option{
		apierrors.WithMessage(d.Message),
		apierrors.WithCode(d.Code),
		apierrors.WithReason(d.Reason),
		apierrors.WithDetails(d.Details),
	}
	all = append(all, opts...)

	switch d.Kind {
	case apierrors.KindNotFound:
		if e, err := apierrors.NewNotFound(d.ObjectName, d.Data, all...); err == nil {
			return e
		}
	case apierrors.KindValidation:
		fes := make([]apierrors.FieldError, 0, len(d.Violations))
		for _, v := range d.Violations {
			if fe, err := apierrors.NewFieldError(v.GetField(), v.GetDescription()); err == nil {
				fes = append(fes, fe)
			}
		}
		if e, err := apierrors.NewValidation(fes, all...); err == nil {
			return e
		}
	}
	if e, err := apierrors.New(d.Message, all...); err == nil {
		return e
	}
	return Normalize(fmt.Errorf("adapter: undecodable status %s: %s", codes.Code(s.GetCode()), s.GetMessage()))
}

// codeForGRPC maps a gRPC code to the closest apierrors code.
func codeForGRPC(c codes.Code) code.Code {
	switch c {
	case codes.InvalidArgument, codes.OutOfRange:
		return code.Invalid
	case codes.NotFound:
		return code.NotFound
	case codes.AlreadyExists:
		return code.AlreadyExists
	case codes.Aborted, codes.FailedPrecondition:
		return code.Conflict
	case codes.Unauthenticated:
		return code.Unauthenticated
	case codes.PermissionDenied:
		return code.PermissionDenied
	case codes.Unavailable:
		return code.Unavailable
	case codes.DeadlineExceeded:
		return code.Timeout
	case codes.Canceled:
		return code.Canceled
	case codes.ResourceExhausted:
		return code.RateLimited
	default:
		return code.Internal
	}
}
