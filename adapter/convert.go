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

package adapter

import (
	"dirpx.dev/apierrors"
	"dirpx.dev/apierrors/apis"
)

// Normalize returns the first APIError in err's chain. Any other non-nil
// error becomes a generic internal error with the default message and err
// as its cause, so nothing from an unknown error leaks into a response.
func Normalize(err error) apierrors.APIError {
	if err == nil {
		return nil
	}
	if api, ok := apierrors.AsAPIError(err); ok {
		return api
	}
	e, buildErr := apierrors.New("", apierrors.WithCause(err))
	if buildErr != nil {
		// Only reachable with blank message defaults, which SetMessages rejects.
		return apierrors.MustNew("Internal error", apierrors.WithCause(err))
	}
	return e
}

// ToView converts err into a public ErrorView. No redaction is applied:
// the view exposes exactly what the error carries. A nil err gives a zero
// view.
func ToView(err error) apis.ErrorView {
	api := Normalize(err)
	if api == nil {
		return apis.ErrorView{}
	}
	if vp, ok := api.(apis.ViewProvider); ok {
		return vp.ErrorView()
	}
	return apis.ErrorView{
		Kind:    api.Kind().String(),
		Code:    string(api.Code()),
		Reason:  string(api.Reason()),
		Message: api.Message(),
	}
}
