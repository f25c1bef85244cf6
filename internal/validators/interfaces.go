// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inspection and reference data before it reaches
// storage.
//
// A [Validator] accepts any supported model and an optional list of field
// names restricting which rules run. Every error wraps either
// [ErrRequiredField] or [ErrInvalidValue], so transport layers can pick the
// response message with [errors.Is].
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally restricts
	// validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
