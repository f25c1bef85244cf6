package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when an identifier or a payload
	// does not pass validation.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidPayload is returned when a bulk reconciliation body is not a
	// JSON object carrying an "inspecciones" array.
	ErrInvalidPayload = errors.New("invalid sync payload")

	// ErrPersistenceFailure wraps any storage failure of a write.
	ErrPersistenceFailure = errors.New("persistence failure")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrAuthDisabled            = errors.New("authentication is not configured")
)

// Client-side errors.
var (
	// ErrSyncInProgress is returned when a drain pass is requested while
	// another one is still running.
	ErrSyncInProgress = errors.New("sync already in progress")
)
