// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks values before they cross a persistence or
// command boundary.
//
// A Validator accepts an arbitrary value and an optional list of field names.
// With no names every field of the value is checked; otherwise only the
// named ones are. Unknown names fail with [ErrUnknownField] and unsupported
// values with [ErrUnsupportedType].
package validators

import "context"

// Validator validates the provided input, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
