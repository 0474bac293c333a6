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

package apis

// CodedError exposes the transport classification of an error, e.g.
// "not_found" or "invalid". Adapters treat an empty or unknown code as
// internal.
type CodedError interface {
	error

	// ErrorCode returns the canonical code. Never empty for apierrors values.
	ErrorCode() string
}

// ReasonedError exposes an optional dotted refinement of the code, e.g.
// "user.lookup.by_email". The result may be empty.
type ReasonedError interface {
	error

	ErrorReason() string
}

// KindedError exposes the shape discriminant of an error: "generic",
// "not_found" or "validation". Decoders use it to rebuild the concrete
// type on the other side of a wire.
type KindedError interface {
	error

	ErrorKind() string
}

// DetailedError exposes structured details. A ValidationError returns one
// Detail per failed field, in the order the fields were reported.
//
// The returned slice belongs to the caller.
type DetailedError interface {
	error

	ErrorDetails() []Detail
}

// CausedError exposes the immediate underlying error, or nil.
type CausedError interface {
	error

	Cause() error
}
