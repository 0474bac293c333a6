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
	"fmt"
	"strings"

	"dirpx.dev/apierrors/code"
	"dirpx.dev/apierrors/reason"
)

// Option configures an error at construction time. The same options are
// accepted by New, NewNotFound and NewValidation.
type Option func(*builder)

type builder struct {
	code    code.Code
	reason  reason.Reason
	message string
	cause   error
	details map[string]any

	// err records the first invalid option; constructors return it.
	err error
}

// WithMessage overrides the default message. A blank msg is ignored, so
// the default of the kind stays in place.
func WithMessage(msg string) Option {
	return func(b *builder) {
		if !isBlank(msg) {
			b.message = msg
		}
	}
}

// WithCode overrides the default code of the kind. c must be canonical.
func WithCode(c code.Code) Option {
	return func(b *builder) {
		if err := code.Validate(c); err != nil {
			b.fail(fmt.Errorf("%w: code %q: %w", ErrInvalidArgument, c, err))
			return
		}
		b.code = c
	}
}

// WithReason attaches a reason. r must be canonical or empty.
func WithReason(r reason.Reason) Option {
	return func(b *builder) {
		if err := reason.Validate(r); err != nil {
			b.fail(fmt.Errorf("%w: reason %q: %w", ErrInvalidArgument, r, err))
			return
		}
		b.reason = r
	}
}

// WithCause wraps err, making it visible to errors.Is / errors.As.
func WithCause(err error) Option {
	return func(b *builder) {
		if err != nil {
			b.cause = err
		}
	}
}

// WithDetail adds one key/value to the error details.
func WithDetail(k string, v any) Option {
	return func(b *builder) {
		if b.details == nil {
			b.details = make(map[string]any, 1)
		}
		b.details[k] = cloneValue(v)
	}
}

// WithDetails merges kv into the error details. kv is copied, including
// nested maps and slices.
func WithDetails(kv map[string]any) Option {
	return func(b *builder) {
		if len(kv) == 0 {
			return
		}
		if b.details == nil {
			b.details = make(map[string]any, len(kv))
		}
		for k, v := range kv {
			b.details[k] = cloneValue(v)
		}
	}
}

func (b *builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// build applies opts and fills in the defaults of the kind.
func build(k Kind, defCode code.Code, defMsg string, opts []Option) (base, error) {
	var b builder
	for _, opt := range opts {
		if opt != nil {
			opt(&b)
		}
	}
	if b.err != nil {
		return base{}, b.err
	}

	msg := b.message
	if msg == "" {
		msg = defMsg
	}
	if isBlank(msg) {
		return base{}, fmt.Errorf("%w: empty message for %s error", ErrInvalidArgument, k)
	}
	c := b.code
	if c == code.Empty {
		c = defCode
	}

	return base{
		kind:    k,
		code:    c,
		reason:  b.reason,
		message: msg,
		cause:   b.cause,
		details: b.details,
	}, nil
}

func prepend(opt Option, opts []Option) []Option {
	out := make([]Option, 0, len(opts)+1)
	out = append(out, opt)
	return append(out, opts...)
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }
