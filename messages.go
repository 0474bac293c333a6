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

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// MessageDefaults holds the messages used when a constructor is not given
// one explicitly.
type MessageDefaults struct {
	// Generic is the message of a generic Error built with an empty msg.
	Generic string `yaml:"generic"`
	// Validation is the message of a ValidationError.
	Validation string `yaml:"validation"`
	// NotFoundFormat is a fmt format with exactly one %s, filled with the
	// object name of a NotFoundError.
	NotFoundFormat string `yaml:"not_found_format"`
}

// defaultMessages are in effect until SetMessages is called. They are
// only reachable through DefaultMessages, which returns a copy.
var defaultMessages = MessageDefaults{
	Generic:        "API error",
	Validation:     "Validation failed",
	NotFoundFormat: "%s not found",
}

// DefaultMessages returns the built-in defaults: "API error",
// "Validation failed" and "%s not found". Use SetMessages to change the
// defaults in effect.
func DefaultMessages() MessageDefaults { return defaultMessages }

var messages atomic.Pointer[MessageDefaults]

// Messages returns the defaults currently in effect.
func Messages() MessageDefaults {
	if m := messages.Load(); m != nil {
		return *m
	}
	return defaultMessages
}

// SetMessages replaces the defaults for errors constructed afterwards.
// Already constructed errors keep their messages. Blank fields and a
// NotFoundFormat without exactly one %s verb are rejected.
func SetMessages(m MessageDefaults) error {
	if err := m.Validate(); err != nil {
		return err
	}
	messages.Store(&m)
	return nil
}

// Validate reports ErrInvalidArgument for the inputs SetMessages rejects.
func (m MessageDefaults) Validate() error {
	if isBlank(m.Generic) || isBlank(m.Validation) || isBlank(m.NotFoundFormat) {
		return fmt.Errorf("%w: blank default message", ErrInvalidArgument)
	}
	verbs := strings.ReplaceAll(m.NotFoundFormat, "%%", "")
	if strings.Count(verbs, "%") != 1 || !strings.Contains(verbs, "%s") {
		return fmt.Errorf("%w: not-found format %q must contain exactly one %%s", ErrInvalidArgument, m.NotFoundFormat)
	}
	return nil
}

// ResetMessages restores the built-in defaults.
func ResetMessages() { messages.Store(nil) }
