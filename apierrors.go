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
	"errors"
	"fmt"
	"maps"

	"dirpx.dev/apierrors/apis"
	"dirpx.dev/apierrors/code"
	"dirpx.dev/apierrors/reason"
)

// ErrInvalidArgument is wrapped by every constructor failure: a blank
// field name, a blank object name, a malformed FieldError inside a
// ValidationError, or an invalid code/reason option.
var ErrInvalidArgument = errors.New("apierrors: invalid argument")

// Kind discriminates the concrete error type. The set is closed.
type Kind uint8

const (
	// KindUnknown is the zero Kind. No constructed error carries it.
	KindUnknown Kind = iota
	KindGeneric
	KindNotFound
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindGeneric:
		return "generic"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// ParseKind is the inverse of Kind.String. Unrecognized input yields
// KindUnknown and false.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "generic":
		return KindGeneric, true
	case "not_found":
		return KindNotFound, true
	case "validation":
		return KindValidation, true
	}
	return KindUnknown, false
}

// APIError is the contract shared by Error, NotFoundError and
// ValidationError.
type APIError interface {
	error

	// Kind returns the discriminant of the concrete type.
	Kind() Kind
	// Message returns the human-readable summary. Never empty.
	Message() string
	// Code returns the transport classification.
	Code() code.Code
	// Reason returns the optional refinement of Code.
	Reason() reason.Reason
}

var (
	_ APIError = (*Error)(nil)
	_ APIError = (*NotFoundError)(nil)
	_ APIError = (*ValidationError)(nil)

	_ apis.CodedError    = (*Error)(nil)
	_ apis.ReasonedError = (*Error)(nil)
	_ apis.KindedError   = (*Error)(nil)
	_ apis.CausedError   = (*Error)(nil)
	_ apis.DetailedError = (*Error)(nil)
	_ apis.DetailedError = (*NotFoundError)(nil)
	_ apis.DetailedError = (*ValidationError)(nil)
	_ apis.ViewProvider  = (*ValidationError)(nil)
)

// Sentinels for errors.Is. errors.Is(err, ErrNotFound) reports whether any
// error in err's chain is a *NotFoundError.
var (
	ErrGeneric    error = &kindSentinel{KindGeneric}
	ErrNotFound   error = &kindSentinel{KindNotFound}
	ErrValidation error = &kindSentinel{KindValidation}
)

type kindSentinel struct{ kind Kind }

func (s *kindSentinel) Error() string { return "apierrors: " + s.kind.String() }

// base is embedded by every kind. It is never modified after the
// constructor returns.
type base struct {
	kind    Kind
	code    code.Code
	reason  reason.Reason
	message string
	cause   error
	details map[string]any
}

func (b *base) Kind() Kind              { return b.kind }
func (b *base) Message() string         { return b.message }
func (b *base) Code() code.Code         { return b.code }
func (b *base) Reason() reason.Reason   { return b.reason }
func (b *base) ErrorKind() string       { return b.kind.String() }
func (b *base) ErrorCode() string       { return string(b.code) }
func (b *base) ErrorReason() string     { return string(b.reason) }
func (b *base) Cause() error            { return b.cause }
func (b *base) Unwrap() error           { return b.cause }
func (b *base) Details() map[string]any { return cloneMap(b.details) }

// Is matches the kind sentinels.
func (b *base) Is(target error) bool {
	s, ok := target.(*kindSentinel)
	return ok && s.kind == b.kind
}

// view renders the common fields; concrete kinds add their details.
func (b *base) view(details []apis.Detail) apis.ErrorView {
	return apis.ErrorView{
		Kind:    b.kind.String(),
		Code:    string(b.code),
		Reason:  string(b.reason),
		Message: b.message,
		Details: details,
	}
}

// header renders "<code>" or "<code>:<reason>".
func (b *base) header() string {
	if b.reason != reason.Empty {
		return fmt.Sprintf("%s:%s", b.code, b.reason)
	}
	return string(b.code)
}

func (b *base) extraDetails() []apis.Detail {
	if len(b.details) == 0 {
		return nil
	}
	return []apis.Detail{{Type: apis.DetailExtra, Info: stringify(b.details)}}
}

func stringify(m map[string]any) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = fmt.Sprint(v)
	}
	return out
}

// Error is the generic API error, used for failures that need neither a
// lookup filter nor field violations.
type Error struct {
	base
}

// New returns a generic error. An empty msg falls back to
// Messages().Generic; the code defaults to code.Internal.
//
//	apierrors.New("quota exhausted",
//	    apierrors.WithCode(code.RateLimited),
//	    apierrors.WithDetail("limit", 100),
//	)
func New(msg string, opts ...Option) (*Error, error) {
	b, err := build(KindGeneric, code.Internal, Messages().Generic, prepend(WithMessage(msg), opts))
	if err != nil {
		return nil, err
	}
	return &Error{base: b}, nil
}

// MustNew is like New but panics on invalid options.
func MustNew(msg string, opts ...Option) *Error {
	e, err := New(msg, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// Error renders "<code>: <message>" or "<code>:<reason>: <message>".
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.header() + ": " + e.message
}

// ErrorDetails implements apis.DetailedError.
func (e *Error) ErrorDetails() []apis.Detail { return e.extraDetails() }

// ErrorView implements apis.ViewProvider.
func (e *Error) ErrorView() apis.ErrorView { return e.view(e.ErrorDetails()) }

// WithMessage returns a copy of e with msg as its message. A blank msg
// returns e unchanged.
func (e *Error) WithMessage(msg string) *Error {
	if isBlank(msg) {
		return e
	}
	cp := *e
	cp.message = msg
	return &cp
}

// WithReason returns a copy of e with r as its reason. A reason that fails
// reason.Validate returns e unchanged, as the WithReason option would have
// rejected it; use reason.Parse to normalize untrusted input first.
func (e *Error) WithReason(r reason.Reason) *Error {
	if reason.Validate(r) != nil {
		return e
	}
	cp := *e
	cp.reason = r
	return &cp
}

// WithCause returns a copy of e wrapping err. A nil err returns e.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.cause = err
	return &cp
}

// WithDetail returns a copy of e with one more detail. The details map is
// always copied, so e is not affected.
func (e *Error) WithDetail(k string, v any) *Error {
	return e.WithDetails(map[string]any{k: v})
}

// WithDetails returns a copy of e with kv merged into its details; kv
// wins on key conflicts.
func (e *Error) WithDetails(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	m := make(map[string]any, len(e.details)+len(kv))
	maps.Copy(m, e.details)
	for k, v := range kv {
		m[k] = cloneValue(v)
	}
	cp.details = m
	return &cp
}
