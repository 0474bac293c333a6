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

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Code is the transport classification carried by every apierrors value.
//
// A Code is what HTTP and gRPC adapters look at when choosing a status:
// the mapper resolves (Code, Reason) into an HTTP status and a gRPC code.
// It is a distinct type, not a plain string, so that raw user input cannot
// be passed where a validated code is expected.
//
// Every constructed error has a non-empty code. Constructors fill in the
// default of the kind when none is given.
type Code string

// MinLength and MaxLength bound the length of a canonical code. They are
// exported so that tests and other packages can mirror the same limits.
const (
	// MinLength is the minimum length of a valid code. Ultra-short
	// identifiers like "a" or "x1" are rejected.
	MinLength = 3

	// MaxLength is the maximum length of a valid code. It leaves room for
	// descriptive codes like "permission_denied" while keeping codes short
	// enough for metric labels and log keys.
	MaxLength = 64
)

// codeFmt is the pattern every canonical code matches.
//
//	^[a-z]            first character is a lowercase ASCII letter;
//	[a-z0-9_]{2,63}$  then lowercase letters, digits or '_', making the
//	                  total length 3..64 (1 + 2..63).
//
// The {2,63} range is tied to MinLength / MaxLength. Changing one means
// changing the other.
const codeFmt = `^[a-z][a-z0-9_]{2,63}$`

// codeRe is the compiled form of codeFmt.
//
// Valid: "invalid", "not_found", "already_exists", "rate_limited".
// Invalid: "Invalid" (uppercase), "not-found" (dash), "x" (too short),
// "1notvalid" (leading digit).
var codeRe = regexp.MustCompile(codeFmt)

// ErrCodeInvalid is returned when a value cannot be parsed or validated as
// a code. Callers can tell "bad code format" apart from other failures with
// errors.Is; the root package wraps it in ErrInvalidArgument when a bad
// code reaches a constructor.
var ErrCodeInvalid = errors.New("apierrors: invalid code")

var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Empty means "no code". It is not a valid code (Validate rejects it), but
// it is a valid option value: constructors in the root package replace it
// with the default code of the error kind.
var Empty Code = ""

// Parse normalizes s and validates the result. It is the entry point for
// codes coming from configuration files, headers or other untrusted input:
//
//	code.Parse(" Not-Found ") // NotFound, nil
//	code.Parse("x")           // Empty, ErrCodeInvalid
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if !codeRe.MatchString(s) {
		return Empty, ErrCodeInvalid
	}
	return Code(s), nil
}

// MustParse is like Parse but panics on invalid input. It is meant for
// package-level declarations of application codes.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize brings s closer to canonical form: it trims spaces, lowercases
// and turns dashes into underscores. It never fails, and its result still
// has to be validated; "not found" normalizes to "not found", which is
// invalid.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, "-", "_")
}

// Validate reports ErrCodeInvalid for anything that is not canonical,
// including the empty code. Unlike Parse it does not normalize, so
// "Invalid" fails here even though Parse("Invalid") succeeds.
func Validate(c Code) error {
	if !codeRe.MatchString(string(c)) {
		return ErrCodeInvalid
	}
	return nil
}

// IsKnown reports whether c is one of the codes declared in this package.
// Applications may use other canonical codes; the mapper sends unknown
// codes to its fallback (500 / codes.Internal) unless configured.
func IsKnown(c Code) bool {
	_, ok := known[c]
	return ok
}

func (c Code) String() string { return string(c) }

// MarshalText implements encoding.TextMarshaler. Invalid codes fail.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The input is
// normalized before validation, so "NOT-FOUND" decodes as NotFound.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
