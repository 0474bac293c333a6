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

	"dirpx.dev/apierrors/apis"
	"dirpx.dev/apierrors/code"
)

// NotFoundError reports that a lookup for ObjectName with filter Data
// matched nothing.
type NotFoundError struct {
	base
	objectName string
	data       map[string]any
}

// NewNotFound returns a NotFoundError for objectName, the logical type of
// the missing resource ("User", "Invoice"), and data, the filter used for
// the lookup. A nil data is stored as an empty map. data is copied deeply
// for nested map[string]any and []any values; other reference values such
// as pointers stay shared.
//
// The message defaults to "<objectName> not found" (see MessageDefaults);
// WithMessage replaces it verbatim. The code is code.NotFound.
func NewNotFound(objectName string, data map[string]any, opts ...Option) (*NotFoundError, error) {
	if isBlank(objectName) {
		return nil, fmt.Errorf("%w: not-found error without object name", ErrInvalidArgument)
	}
	def := fmt.Sprintf(Messages().NotFoundFormat, objectName)
	b, err := build(KindNotFound, code.NotFound, def, opts)
	if err != nil {
		return nil, err
	}
	d := cloneMap(data)
	if d == nil {
		d = map[string]any{}
	}
	return &NotFoundError{base: b, objectName: objectName, data: d}, nil
}

// MustNotFound is like NewNotFound but panics on invalid input.
func MustNotFound(objectName string, data map[string]any, opts ...Option) *NotFoundError {
	e, err := NewNotFound(objectName, data, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

func (e *NotFoundError) ObjectName() string { return e.objectName }

// Data returns a deep copy of the lookup filter. Never nil.
func (e *NotFoundError) Data() map[string]any {
	return cloneMap(e.data)
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.header() + ": " + e.message
}

// ErrorDetails returns the lookup filter as a DetailLookup detail followed
// by any extra details.
func (e *NotFoundError) ErrorDetails() []apis.Detail {
	out := []apis.Detail{{Type: apis.DetailLookup, Field: e.objectName, Info: stringify(e.data)}}
	return append(out, e.extraDetails()...)
}

// ErrorView implements apis.ViewProvider.
func (e *NotFoundError) ErrorView() apis.ErrorView { return e.view(e.ErrorDetails()) }
