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

// Package code defines the transport classification attached to apierrors
// values.
//
// The error kind (generic, not found, validation) says what shape an error
// has; the code says how a transport should treat it. NotFoundError always
// carries NotFound and ValidationError always carries Invalid; generic
// errors default to Internal and may pick any other code.
//
// Codes are lowercase, underscore separated and 3..64 characters long.
package code
