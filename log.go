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
	"log/slog"
	"strconv"
)

var (
	_ slog.LogValuer = (*Error)(nil)
	_ slog.LogValuer = (*NotFoundError)(nil)
	_ slog.LogValuer = (*ValidationError)(nil)
	_ slog.LogValuer = FieldError{}
)

func (b *base) attrs(extra int) []slog.Attr {
	out := make([]slog.Attr, 0, 5+extra)
	out = append(out,
		slog.String("kind", b.kind.String()),
		slog.String("code", string(b.code)),
		slog.String("message", b.message),
	)
	if b.reason != "" {
		out = append(out, slog.String("reason", string(b.reason)))
	}
	if len(b.details) > 0 {
		out = append(out, slog.Any("details", b.details))
	}
	if b.cause != nil {
		out = append(out, slog.String("cause", b.cause.Error()))
	}
	return out
}

// LogValue renders e as a group when passed to slog.
func (e *Error) LogValue() slog.Value {
	return slog.GroupValue(e.attrs(0)...)
}

// LogValue renders the object name and lookup filter next to the common
// attributes.
func (e *NotFoundError) LogValue() slog.Value {
	attrs := append(e.attrs(2),
		slog.String("object_name", e.objectName),
		slog.Any("data", e.data),
	)
	return slog.GroupValue(attrs...)
}

// LogValue renders the failures as a nested group keyed by position, so
// repeated field names stay distinct.
func (e *ValidationError) LogValue() slog.Value {
	fields := make([]slog.Attr, len(e.errors))
	for i, f := range e.errors {
		fields[i] = slog.Any(strconv.Itoa(i), f)
	}
	attrs := append(e.attrs(1), slog.Attr{Key: "errors", Value: slog.GroupValue(fields...)})
	return slog.GroupValue(attrs...)
}

// LogValue renders field, message and, if attached, the rejected value.
func (f FieldError) LogValue() slog.Value {
	if f.hasValue {
		return slog.GroupValue(
			slog.String("field", f.field),
			slog.String("message", f.message),
			slog.Any("value", f.value),
		)
	}
	return slog.GroupValue(
		slog.String("field", f.field),
		slog.String("message", f.message),
	)
}
