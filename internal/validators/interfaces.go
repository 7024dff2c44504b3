// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the server's input rules for products.
//
// A Validator checks a value and can be scoped to named fields, so the same
// rules serve creation (no id yet) and updates (id required).
package validators

import "context"

// Validator validates obj, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
