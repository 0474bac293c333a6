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

import "errors"

// AsAPIError finds the first APIError in err's chain.
func AsAPIError(err error) (APIError, bool) {
	var e APIError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the Kind of the first APIError in err's chain.
func KindOf(err error) (Kind, bool) {
	if e, ok := AsAPIError(err); ok {
		return e.Kind(), true
	}
	return KindUnknown, false
}

// AsNotFound finds the first *NotFoundError in err's chain.
func AsNotFound(err error) (*NotFoundError, bool) {
	var e *NotFoundError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// AsValidation finds the first *ValidationError in err's chain.
func AsValidation(err error) (*ValidationError, bool) {
	var e *ValidationError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsNotFound is shorthand for errors.Is(err, ErrNotFound).
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsValidation is shorthand for errors.Is(err, ErrValidation).
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
