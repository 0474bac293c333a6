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

package reason

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Reason narrows a code down to the place or rule that produced the error,
// for example "user.lookup.by_email" or "order.items.quantity".
//
// A reason has one to four dot-separated segments; each segment starts
// with a lowercase letter followed by lowercase letters, digits or '_'.
// The empty Reason is valid and means "no refinement".
type Reason string

// MinLength and MaxLength bound the length of a non-empty reason. The
// empty reason is outside these limits and still valid.
const (
	// MinLength rejects reasons like "a" or "ab" that say nothing.
	MinLength = 3

	// MaxLength is twice the code limit: four segments of a
	// descriptive name each fit comfortably.
	MaxLength = 128
)

// reasonFmt is the pattern every non-empty reason matches.
//
//	^[a-z][a-z0-9_]*          first segment: a lowercase letter, then
//	                          lowercase letters, digits or '_';
//	(\.[a-z][a-z0-9_]*){0,3}$ up to three more segments of the same shape,
//	                          each after a single dot.
//
// So a reason has one to four segments, no empty segment, no leading or
// trailing dot. Length is checked separately against MinLength/MaxLength.
const reasonFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`

// reasonRe is the compiled form of reasonFmt.
//
// Valid: "user.lookup", "billing.invoice.render", "signup.form_v2.email".
// Invalid: "User.Lookup" (uppercase), "a..b" (empty segment), "9lives"
// (leading digit), "a.b.c.d.e" (five segments).
var reasonRe = regexp.MustCompile(reasonFmt)

var (
	// ErrReasonInvalidFormat is returned for malformed segments or more
	// than four of them.
	ErrReasonInvalidFormat = errors.New("apierrors: invalid reason format")

	// ErrReasonInvalidLength is returned when a non-empty reason is shorter
	// than MinLength or longer than MaxLength. It is checked before the
	// format, so an over-long reason reports length, not format.
	ErrReasonInvalidLength = errors.New("apierrors: invalid reason length")
)

var (
	_ encoding.TextMarshaler   = (*Reason)(nil)
	_ encoding.TextUnmarshaler = (*Reason)(nil)
)

// Empty is the absent reason. Unlike code.Empty it is always valid: most
// errors carry only a code, and the mapper skips prefix rules for them.
var Empty Reason = ""

// Normalize trims and lowercases s, turns '/' into '.' and '-' into '_'.
// Path-like input such as "User/Lookup-By-Email" becomes
// "user.lookup_by_email". The result still has to be validated.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	return strings.ReplaceAll(s, "-", "_")
}

// Parse normalizes and validates s. The empty string yields Empty, nil.
func Parse(s string) (Reason, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Reason(s), nil
}

// MustParse panics when s is invalid or empty.
func MustParse(s string) Reason {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if r == Empty {
		panic("apierrors: empty reason in MustParse")
	}
	return r
}

// Validate accepts Empty and any canonical reason.
func Validate(r Reason) error {
	if r == Empty {
		return nil
	}
	return validate(string(r))
}

// Segments splits r on '.'. Empty yields nil. The mapper walks these
// segments when matching reason prefixes, so "user.session" matches
// "user.session.refresh" but not "users.session".
func (r Reason) Segments() []string {
	if r == Empty {
		return nil
	}
	return strings.Split(string(r), ".")
}

func (r Reason) String() string { return string(r) }

// MarshalText implements encoding.TextMarshaler. Empty marshals to an
// empty slice.
func (r Reason) MarshalText() ([]byte, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}
	return []byte(r), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Reason) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrReasonInvalidLength
	}
	if !reasonRe.MatchString(s) {
		return ErrReasonInvalidFormat
	}
	return nil
}
