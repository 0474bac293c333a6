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

// Detail types produced by apierrors.
const (
	DetailField  = "field"
	DetailLookup = "lookup"
	DetailExtra  = "extra"
)

// Detail is one structured piece of an error, small enough to put into a
// JSON body or a log line.
type Detail struct {
	// Type is one of DetailField, DetailLookup or DetailExtra.
	Type string `json:"type,omitempty"`

	// Field is the failing input path for DetailField details and the
	// object name for DetailLookup details.
	Field string `json:"field,omitempty"`

	// Reason is the human explanation for a field failure.
	Reason string `json:"reason,omitempty"`

	// Info carries extra values rendered as strings: the rejected value of
	// a field, the lookup filter of a not-found error, or generic details.
	Info map[string]string `json:"info,omitempty"`
}
