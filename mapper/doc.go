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

// Package mapper turns the (code, reason) pair of an apierrors value into
// an HTTP status and a gRPC code.
//
// # Overview
//
// Every apierrors value carries two classification parts:
//
//  1. a Code (code.NotFound, code.Unavailable, ...), always present;
//  2. an optional Reason ("billing.invoice.render"), narrowing the code
//     down to the place or rule that failed.
//
// HTTP handlers and gRPC servers need a concrete status for that pair. A
// mapper built by New answers with the same rules for both transports and
// never changes after construction, so one instance can be shared by every
// handler and goroutine.
//
// # Resolution
//
// For each transport, in order:
//
//  1. exact override for the code (WithHTTPOverride, WithGRPCOverride);
//  2. longest matching reason prefix for the code (WithHTTPPrefix,
//     WithGRPCPrefix);
//  3. default for the code (library table or WithHTTPDefault,
//     WithGRPCDefault);
//  4. fallback: 500 / codes.Internal.
//
// An override hides every prefix rule of its code. A reason-less error
// skips step 2.
//
// # Prefix rules
//
// Reasons are matched segment by segment on '.', never by raw string
// prefix: "user.session" matches "user.session.refresh" but not
// "users.session". A "*" segment matches exactly one segment of any name:
//
//	WithHTTPPrefix(code.Unavailable, "billing", http.StatusBadGateway)
//	WithHTTPPrefix(code.Unavailable, "billing.*.render", http.StatusServiceUnavailable)
//
// The deeper match wins; at equal depth a literal segment beats "*".
// Prefixes are normalized like reasons ("Billing/Invoice" becomes
// "billing.invoice") and must be valid afterwards; a prefix made only of
// wildcards is rejected by New.
//
// # Library defaults
//
// Every code declared in package code has a default, using net/http
// constants and grpc codes:
//
//	internal           500  Internal
//	invalid, missing   400  InvalidArgument
//	not_found          404  NotFound
//	already_exists     409  AlreadyExists
//	conflict           409  Aborted
//	unauthenticated    401  Unauthenticated
//	permission_denied  403  PermissionDenied
//	unavailable        503  Unavailable
//	timeout            504  DeadlineExceeded
//	canceled           408  Canceled
//	rate_limited       429  ResourceExhausted
//
// The three apierrors kinds therefore work without configuration: a
// NotFoundError is a 404, a ValidationError a 400 and a generic Error a 500.
// Options change the defaults of one mapper only, never the table itself.
//
// # Building
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(code.Canceled, 499),
//	    mapper.WithHTTPPrefix(code.Unavailable, "billing.*", http.StatusBadGateway),
//	)
//
// The same rules can be written in YAML through Config (see package config
// for the file format). Config.Options reports every bad entry by path
// instead of stopping at the first one.
//
// # Diagnostics
//
// Explain shows which rule fired for each transport, including the prefix
// pattern that matched:
//
//	code="unavailable" reason="billing.invoice.render"
//	http: source=prefix pattern="billing.invoice" -> 502
//	grpc: source=default -> UNAVAILABLE(14)
//
// Its output is meant for tests and debugging and is pinned by a golden
// file in this package.
package mapper
