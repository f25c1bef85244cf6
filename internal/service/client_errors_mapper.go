// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-field-inspections/internal/adapter"
	"github.com/MKhiriev/go-field-inspections/internal/app"
	"github.com/MKhiriev/go-field-inspections/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The adapter error stays in the chain so that
// adapter.ErrNetworkUnavailable remains matchable.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgSyncExpectedArray:
			return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		case app.MsgInspectionRequiredFields, app.MsgInvalidInspection, app.MsgInvalidInspectionID:
			return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)

	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", store.ErrInspectionNotFound, err)

	case errors.Is(err, adapter.ErrInternalServerError):
		return fmt.Errorf("%w: %w", ErrPersistenceFailure, err)
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
