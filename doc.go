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

// Package apierrors is a small, closed taxonomy of structured API errors.
//
// Three kinds exist:
//
//   - Error: the generic kind, for any API failure without a dedicated shape;
//   - NotFoundError: a lookup for ObjectName with filter Data matched nothing;
//   - ValidationError: one or more FieldError values rejected an input.
//
// All of them satisfy APIError, so generic code (HTTP writers, loggers)
// can read Kind, Code, Reason and Message without knowing the concrete
// type:
//
//	u, err := repo.FindUser(ctx, id)
//	if err != nil {
//	    return nil, err
//	}
//	...
//	// in the repository:
//	return nil, apierrors.MustNotFound("User", map[string]any{"id": id})
//
// Callers discriminate with the usual tools:
//
//	var nf *apierrors.NotFoundError
//	switch {
//	case errors.As(err, &nf):
//	    log.Printf("missing %s %v", nf.ObjectName(), nf.Data())
//	case errors.Is(err, apierrors.ErrValidation):
//	    ...
//	}
//
// Values are immutable once constructed and safe to share between
// goroutines. Constructors reject blank required inputs with an error
// wrapping ErrInvalidArgument; the Must variants panic instead and are meant
// for call sites where the inputs are literals.
package apierrors
