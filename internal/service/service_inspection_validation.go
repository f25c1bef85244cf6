package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-field-inspections/internal/validators"
	"github.com/MKhiriev/go-field-inspections/models"
)

// InspectionValidationService checks identifiers and payloads before they
// reach the wrapped InspectionService.
type InspectionValidationService struct {
	inner     InspectionService
	validator validators.Validator
}

func NewInspectionValidationService() InspectionServiceWrapper {
	return &InspectionValidationService{
		validator: validators.NewInspectionValidator(),
	}
}

func (v *InspectionValidationService) Create(ctx context.Context, payload models.InspectionPayload) (int64, error) {
	if err := v.validator.Validate(ctx, payload); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Create(ctx, payload)
}

func (v *InspectionValidationService) Update(ctx context.Context, id int64, payload models.InspectionPayload) error {
	if id <= 0 {
		return ErrInvalidDataProvided
	}
	// PUT carries only execution fields
	if err := v.validator.Validate(ctx, payload, validators.ExecutionFields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Update(ctx, id, payload)
}

func (v *InspectionValidationService) Get(ctx context.Context, id int64) (models.Inspection, error) {
	if id <= 0 {
		return models.Inspection{}, ErrInvalidDataProvided
	}
	return v.inner.Get(ctx, id)
}

func (v *InspectionValidationService) ListByTechnician(ctx context.Context, technicianID int64) ([]models.Inspection, error) {
	if technicianID <= 0 {
		return nil, ErrInvalidDataProvided
	}
	return v.inner.ListByTechnician(ctx, technicianID)
}

func (v *InspectionValidationService) ListBySupervisor(ctx context.Context, supervisorID int64) ([]models.InspectionSummary, error) {
	if supervisorID <= 0 {
		return nil, ErrInvalidDataProvided
	}
	return v.inner.ListBySupervisor(ctx, supervisorID)
}

// Reconcile is passed through: items are validated one by one by the
// wrapped service so that a bad item fails alone.
func (v *InspectionValidationService) Reconcile(ctx context.Context, items []models.SyncItem) ([]models.SyncResult, error) {
	return v.inner.Reconcile(ctx, items)
}

func (v *InspectionValidationService) Wrap(inner InspectionService) InspectionService {
	v.inner = inner
	return v
}
