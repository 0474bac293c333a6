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

// Package apis holds the small contracts shared by apierrors and its
// transport adapters.
//
// HTTP and gRPC adapters, loggers and client code can program against
// these interfaces (CodedError, KindedError, DetailedError, ...) instead of
// the concrete error types. The package only depends on code, reason and
// grpc/codes.
package apis
