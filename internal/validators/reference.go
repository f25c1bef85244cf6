package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-field-inspections/models"
)

// ReferenceValidator validates catalog data: [models.Color] and
// [models.Post]. It ignores field scoping.
type ReferenceValidator struct{}

// NewReferenceValidator constructs a new ReferenceValidator.
func NewReferenceValidator() Validator {
	return &ReferenceValidator{}
}

// Validate implements [Validator].
func (v *ReferenceValidator) Validate(_ context.Context, obj any, _ ...string) error {
	switch value := obj.(type) {
	case models.Color:
		return validateColor(value)
	case *models.Color:
		if value == nil {
			return ErrUnsupportedType
		}
		return validateColor(*value)
	case models.Post:
		return validatePost(value)
	case *models.Post:
		if value == nil {
			return ErrUnsupportedType
		}
		return validatePost(*value)
	default:
		return ErrUnsupportedType
	}
}

func validateColor(c models.Color) error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyColorName
	}
	return nil
}

func validatePost(p models.Post) error {
	switch {
	case strings.TrimSpace(p.Code) == "":
		return ErrEmptyPostCode
	case strings.TrimSpace(p.Address) == "":
		return ErrEmptyPostAddress
	case strings.TrimSpace(p.Type) == "":
		return ErrEmptyPostType
	case p.CompanyID <= 0:
		return ErrInvalidCompanyID
	case p.Latitude < -90 || p.Latitude > 90:
		return ErrInvalidLatitude
	case p.Longitude < -180 || p.Longitude > 180:
		return ErrInvalidLongitude
	}
	return nil
}
