package validators

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-field-inspections/models"
)

// Field names accepted by [InspectionValidator].
const (
	FieldPostID         = "posteId"
	FieldTechnicianID   = "tecnicoId"
	FieldState          = "estado"
	FieldPaintCondition = "estadoPintura"
	FieldBaseCondition  = "estadoBase"
	FieldHeight         = "altura"
	FieldColorID        = "colorId"
	FieldCoordinates    = "coordenadas"
	FieldSyncStatus     = "syncStatus"
)

// RequiredInspectionFields are the fields without which an inspection cannot
// be created.
var RequiredInspectionFields = []string{FieldPostID, FieldTechnicianID, FieldState}

// ExecutionFields are the fields checked when an existing inspection is
// overwritten.
var ExecutionFields = []string{FieldState, FieldPaintCondition, FieldBaseCondition, FieldHeight, FieldColorID, FieldCoordinates}

var defaultInspectionFields = []string{
	FieldPostID, FieldTechnicianID, FieldState,
	FieldPaintCondition, FieldBaseCondition, FieldHeight, FieldColorID, FieldCoordinates,
}

var (
	allowedStates          = []models.InspectionState{models.InspectionPending, models.InspectionInProgress, models.InspectionCompleted}
	allowedPaintConditions = []models.PaintCondition{models.PaintExcellent, models.PaintGood, models.PaintFair, models.PaintPoor}
	allowedBaseConditions  = []models.BaseCondition{models.BaseSolid, models.BaseDeteriorated, models.BaseNeedsRepair}
)

// InspectionValidator validates [models.InspectionPayload],
// [models.Inspection] and [models.LocalInspection] values.
type InspectionValidator struct{}

// NewInspectionValidator constructs a new InspectionValidator.
func NewInspectionValidator() Validator {
	return &InspectionValidator{}
}

// Validate dispatches on the dynamic type of obj. Without fields every
// payload rule runs; a [models.LocalInspection] additionally checks its
// sync status.
func (v *InspectionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.InspectionPayload:
		return v.validatePayload(ctx, value, fields...)
	case *models.InspectionPayload:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validatePayload(ctx, *value, fields...)
	case models.Inspection:
		return v.validatePayload(ctx, value.InspectionPayload, fields...)
	case *models.Inspection:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validatePayload(ctx, value.InspectionPayload, fields...)
	case models.LocalInspection:
		return v.validateLocal(ctx, value, fields...)
	case *models.LocalInspection:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateLocal(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *InspectionValidator) validateLocal(ctx context.Context, rec models.LocalInspection, fields ...string) error {
	if len(fields) == 0 {
		fields = append(slices.Clone(defaultInspectionFields), FieldSyncStatus)
	}
	return v.validatePayload(ctx, rec.InspectionPayload, fields...)
}

func (v *InspectionValidator) validatePayload(_ context.Context, p models.InspectionPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultInspectionFields
	}

	for _, f := range fields {
		switch f {
		case FieldPostID:
			if p.PostID <= 0 {
				return ErrInvalidPostID
			}
		case FieldTechnicianID:
			if p.TechnicianID <= 0 {
				return ErrInvalidTechnicianID
			}
		case FieldState:
			if p.State == "" {
				return ErrEmptyState
			}
			if !slices.Contains(allowedStates, p.State) {
				return ErrInvalidState
			}
		case FieldPaintCondition:
			if p.PaintCondition != nil && !slices.Contains(allowedPaintConditions, *p.PaintCondition) {
				return ErrInvalidPaintCondition
			}
		case FieldBaseCondition:
			if p.BaseCondition != nil && !slices.Contains(allowedBaseConditions, *p.BaseCondition) {
				return ErrInvalidBaseCondition
			}
		case FieldHeight:
			if p.Height != nil && *p.Height <= 0 {
				return ErrInvalidHeight
			}
		case FieldColorID:
			if p.ColorID != nil && *p.ColorID <= 0 {
				return ErrInvalidColorID
			}
		case FieldCoordinates:
			if p.Latitude != nil && (*p.Latitude < -90 || *p.Latitude > 90) {
				return ErrInvalidLatitude
			}
			if p.Longitude != nil && (*p.Longitude < -180 || *p.Longitude > 180) {
				return ErrInvalidLongitude
			}
		case FieldSyncStatus:
			if p.SyncStatus != "" && !p.SyncStatus.IsValid() {
				return ErrInvalidSyncStatus
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
