// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming requests before they reach the
// services. Struct rules are declared with `validate` tags on the models
// and evaluated by go-playground/validator, extended with catalog-aware
// tags:
//   - option: the string names an option of the catalog;
//   - membership: the value is a storable membership type.
package validators

import "context"

// Validator validates a value, optionally only the named struct fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
