// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming models before the services act on them.
//
// Rules live in `validate` struct tags on the request and entity types in
// package models. Services receive a [Validator] at construction and call it
// on every input; a failure is reported as [ErrInvalidModel] with the
// offending fields named by their json keys.
package validators

import "context"

// Validator checks a value. When field names are passed only those struct
// fields are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
