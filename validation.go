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
	"slices"
	"strings"

	"dirpx.dev/apierrors/apis"
	"dirpx.dev/apierrors/code"
)

// ValidationError reports every field that failed validation for one
// request, in the order the failures were found.
type ValidationError struct {
	base
	errors []FieldError
}

// NewValidation returns a ValidationError holding a copy of errs. Every
// element must be a valid FieldError; the first invalid one is reported by
// index. An empty errs is accepted, although a validation failure normally
// names at least one field.
//
// The message defaults to Messages().Validation and the code is
// code.Invalid.
func NewValidation(errs []FieldError, opts ...Option) (*ValidationError, error) {
	for i, f := range errs {
		if !f.Valid() {
			return nil, fmt.Errorf("%w: field error #%d is empty", ErrInvalidArgument, i)
		}
	}
	b, err := build(KindValidation, code.Invalid, Messages().Validation, opts)
	if err != nil {
		return nil, err
	}
	return &ValidationError{base: b, errors: slices.Clone(errs)}, nil
}

// MustValidation is like NewValidation but panics on invalid input.
func MustValidation(errs []FieldError, opts ...Option) *ValidationError {
	e, err := NewValidation(errs, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// Errors returns a copy of the field failures, in order.
func (e *ValidationError) Errors() []FieldError { return slices.Clone(e.errors) }

func (e *ValidationError) Len() int { return len(e.errors) }

// Fields returns the failing field names, in order. A field appears once
// per failure, so duplicates are possible.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.errors))
	for i, f := range e.errors {
		out[i] = f.field
	}
	return out
}

// Error renders the header, the message and every field failure:
//
//	invalid: Validation failed: email: must be valid; name: is required
func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	var sb strings.Builder
	sb.WriteString(e.header())
	sb.WriteString(": ")
	sb.WriteString(e.message)
	for i, f := range e.errors {
		if i == 0 {
			sb.WriteString(": ")
		} else {
			sb.WriteString("; ")
		}
		sb.WriteString(f.Error())
	}
	return sb.String()
}

// ErrorDetails returns one DetailField per failure, then extra details.
// A rejected value, when attached, is rendered under Info["value"].
func (e *ValidationError) ErrorDetails() []apis.Detail {
	out := make([]apis.Detail, 0, len(e.errors)+1)
	for _, f := range e.errors {
		d := apis.Detail{Type: apis.DetailField, Field: f.field, Reason: f.message}
		if v, ok := f.Value(); ok {
			d.Info = map[string]string{"value": fmt.Sprint(v)}
		}
		out = append(out, d)
	}
	return append(out, e.extraDetails()...)
}

// ErrorView implements apis.ViewProvider.
func (e *ValidationError) ErrorView() apis.ErrorView { return e.view(e.ErrorDetails()) }
