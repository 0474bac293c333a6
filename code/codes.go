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

package code

// Codes used as defaults by the error kinds.
const (
	// Internal is the default code of a generic API error.
	// Maps to HTTP 500 / codes.Internal.
	Internal Code = "internal"

	// Invalid is the code of every ValidationError: one or more input
	// fields were rejected.
	// Maps to HTTP 400 / codes.InvalidArgument.
	Invalid Code = "invalid"

	// NotFound is the code of every NotFoundError: a lookup by some
	// filter produced no match.
	// Maps to HTTP 404 / codes.NotFound.
	NotFound Code = "not_found"
)

// Codes available to generic errors built with apierrors.New.
const (
	// Missing marks a required parameter or header that was not supplied
	// at all, as opposed to one that was supplied with a bad value.
	Missing Code = "missing"

	// AlreadyExists marks a create that collides with an existing identity.
	AlreadyExists Code = "already_exists"

	// Conflict marks a state conflict such as a version mismatch.
	Conflict Code = "conflict"

	// Unauthenticated means no valid credentials were presented.
	Unauthenticated Code = "unauthenticated"

	// PermissionDenied means the caller is known but not allowed.
	PermissionDenied Code = "permission_denied"

	// Unavailable means a dependency is temporarily unreachable.
	Unavailable Code = "unavailable"

	// Timeout means the operation ran out of its time budget.
	Timeout Code = "timeout"

	// Canceled means the caller gave up on the request.
	Canceled Code = "canceled"

	// RateLimited means the caller exceeded an allowed request rate.
	RateLimited Code = "rate_limited"
)

var known = map[Code]struct{}{
	Internal:         {},
	Invalid:          {},
	NotFound:         {},
	Missing:          {},
	AlreadyExists:    {},
	Conflict:         {},
	Unauthenticated:  {},
	PermissionDenied: {},
	Unavailable:      {},
	Timeout:          {},
	Canceled:         {},
	RateLimited:      {},
}
