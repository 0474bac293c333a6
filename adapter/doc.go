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

// Package adapter projects apierrors values onto wire formats.
//
// ToView produces the JSON-friendly apis.ErrorView. ToStatus produces a
// google.rpc.Status carrying standard error details:
//
//   - ErrorInfo (domain "apierrors") with kind, code and reason metadata;
//   - ResourceInfo naming the missing object of a NotFoundError;
//   - BadRequest with one field violation per FieldError;
//   - a Struct holding the lookup filter and any extra details;
//   - RequestInfo with the request and trace identifiers, when known.
//
// FromStatus reverses ToStatus, so errors survive a gRPC or HTTP hop with
// their kind and payload intact. Struct values come back as the JSON types
// of structpb (numbers become float64).
package adapter
