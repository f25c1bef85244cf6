package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-field-inspections/internal/app"
	"github.com/MKhiriev/go-field-inspections/internal/service"
	"github.com/MKhiriev/go-field-inspections/internal/store"
	"github.com/MKhiriev/go-field-inspections/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidPayload:          http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrPersistenceFailure:      http.StatusInternalServerError,

	store.ErrDuplicateKey:       http.StatusBadRequest,
	store.ErrInspectionNotFound: http.StatusNotFound,
	store.ErrPostNotFound:       http.StatusNotFound,

	store.ErrStorageUnavailable:   http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// inspectionErrorMessage picks the response message for an inspection
// operation error. invalid answers a rejected identifier; fallback answers
// storage failures.
func inspectionErrorMessage(err error, invalid, fallback string) string {
	switch {
	case errors.Is(err, validators.ErrRequiredField):
		return app.MsgInspectionRequiredFields
	case errors.Is(err, validators.ErrInvalidValue):
		return app.MsgInvalidInspection
	case errors.Is(err, service.ErrInvalidDataProvided):
		return invalid
	case errors.Is(err, store.ErrInspectionNotFound):
		return app.MsgInspectionNotFound
	default:
		return fallback
	}
}

func colorErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidDataProvided):
		return app.MsgColorNameRequired
	case errors.Is(err, store.ErrDuplicateKey):
		return app.MsgColorAlreadyExists
	default:
		return app.MsgCreateColorFailed
	}
}

func postErrorMessage(err error, invalid, fallback string) string {
	switch {
	case errors.Is(err, service.ErrInvalidDataProvided):
		return invalid
	case errors.Is(err, store.ErrDuplicateKey):
		return app.MsgPostCodeExists
	case errors.Is(err, store.ErrPostNotFound):
		return app.MsgPostNotFound
	default:
		return fallback
	}
}
