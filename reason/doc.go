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

// Package reason defines the optional refinement that sits next to a code.
//
// The code tells a transport how to treat an error ("not_found"); the
// reason tells an operator or a status mapper where it came from
// ("billing.invoice.lookup"). Mappers match reasons by segment prefix, so
// keep the leading segments stable.
package reason
