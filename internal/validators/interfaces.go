// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks untrusted input before it reaches the domain
// layer: analysis engine output, analysis requests, conversation patches
// and login credentials.
//
// Validate accepts an optional list of field names; when given, only those
// fields are checked. Without it every field relevant to the value is
// checked.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
