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
)

// FieldError describes one rejected input field. The zero value is not
// valid; build one with NewFieldError.
type FieldError struct {
	field    string
	message  string
	value    any
	hasValue bool
}

// FieldOption configures a FieldError.
type FieldOption func(*FieldError)

// WithValue attaches the rejected value. The value is stored as is, so
// pass a copy if it is mutable.
func WithValue(v any) FieldOption {
	return func(f *FieldError) {
		f.value = v
		f.hasValue = true
	}
}

// NewFieldError returns a FieldError for field, which may be a flat name
// ("email") or a dotted path ("address.zip"). Both field and message must
// be non-blank.
func NewFieldError(field, message string, opts ...FieldOption) (FieldError, error) {
	if isBlank(field) {
		return FieldError{}, fmt.Errorf("%w: field error without field name", ErrInvalidArgument)
	}
	if isBlank(message) {
		return FieldError{}, fmt.Errorf("%w: field error %q without message", ErrInvalidArgument, field)
	}
	f := FieldError{field: field, message: message}
	for _, opt := range opts {
		if opt != nil {
			opt(&f)
		}
	}
	return f, nil
}

// MustFieldError is like NewFieldError but panics on blank input.
func MustFieldError(field, message string, opts ...FieldOption) FieldError {
	f, err := NewFieldError(field, message, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

func (f FieldError) Field() string   { return f.field }
func (f FieldError) Message() string { return f.message }

// Value returns the rejected value and whether one was attached.
func (f FieldError) Value() (any, bool) { return f.value, f.hasValue }

// Valid reports whether f was built by NewFieldError.
func (f FieldError) Valid() bool { return !isBlank(f.field) && !isBlank(f.message) }

// Error renders "<field>: <message>".
func (f FieldError) Error() string { return f.field + ": " + f.message }

// FieldErrors collects field failures while a request is being validated.
// It is not safe for concurrent use.
//
//	var fe apierrors.FieldErrors
//	if req.Email == "" {
//	    fe.Add("email", "is required")
//	}
//	if req.Age < 0 {
//	    fe.Add("age", "must not be negative", apierrors.WithValue(req.Age))
//	}
//	if err := fe.Err(); err != nil {
//	    return err
//	}
type FieldErrors struct {
	errs []FieldError
}

// Add records a failure. Blank field or message is a programming error
// and panics, like MustFieldError.
func (c *FieldErrors) Add(field, message string, opts ...FieldOption) {
	c.errs = append(c.errs, MustFieldError(field, message, opts...))
}

// Append records already built failures. Invalid ones are kept and make
// Err report ErrInvalidArgument.
func (c *FieldErrors) Append(errs ...FieldError) {
	c.errs = append(c.errs, errs...)
}

func (c *FieldErrors) Len() int { return len(c.errs) }

// Err returns nil when nothing was recorded, otherwise a *ValidationError
// holding the failures in the order they were added.
func (c *FieldErrors) Err(opts ...Option) error {
	if len(c.errs) == 0 {
		return nil
	}
	v, err := NewValidation(slices.Clone(c.errs), opts...)
	if err != nil {
		return err
	}
	return v
}
