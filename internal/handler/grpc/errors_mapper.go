package grpc

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-field-inspections/internal/app"
	"github.com/MKhiriev/go-field-inspections/internal/service"
	"github.com/MKhiriev/go-field-inspections/internal/store"
	"github.com/MKhiriev/go-field-inspections/internal/validators"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// statusFromError converts a service error into a gRPC status carrying the
// same message the REST API would return. invalid answers a rejected
// identifier; fallback answers storage failures.
func statusFromError(err error, invalid, fallback string) error {
	switch {
	case errors.Is(err, validators.ErrRequiredField):
		return status.Error(codes.InvalidArgument, app.MsgInspectionRequiredFields)
	case errors.Is(err, validators.ErrInvalidValue):
		return status.Error(codes.InvalidArgument, app.MsgInvalidInspection)
	case errors.Is(err, service.ErrInvalidDataProvided):
		return status.Error(codes.InvalidArgument, invalid)
	case errors.Is(err, store.ErrInspectionNotFound):
		return status.Error(codes.NotFound, app.MsgInspectionNotFound)
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return status.Error(codes.Unauthenticated, app.MsgTokenIsExpiredOrInvalid)
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	default:
		return status.Error(codes.Internal, fallback)
	}
}
