package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrRequiredField is wrapped by every "missing value" error.
	ErrRequiredField = errors.New("required field is missing")

	// ErrInvalidValue is wrapped by every "value out of domain" error.
	ErrInvalidValue = errors.New("invalid field value")
)

var (
	ErrInvalidPostID       = fmt.Errorf("%w: posteId", ErrRequiredField)
	ErrInvalidTechnicianID = fmt.Errorf("%w: tecnicoId", ErrRequiredField)
	ErrEmptyState          = fmt.Errorf("%w: estado", ErrRequiredField)
	ErrEmptyColorName      = fmt.Errorf("%w: name", ErrRequiredField)
	ErrEmptyPostCode       = fmt.Errorf("%w: codigo", ErrRequiredField)
	ErrEmptyPostAddress    = fmt.Errorf("%w: direccion", ErrRequiredField)
	ErrEmptyPostType       = fmt.Errorf("%w: tipo", ErrRequiredField)
	ErrInvalidCompanyID    = fmt.Errorf("%w: companyId", ErrRequiredField)

	ErrInvalidState          = fmt.Errorf("%w: estado", ErrInvalidValue)
	ErrInvalidPaintCondition = fmt.Errorf("%w: estadoPintura", ErrInvalidValue)
	ErrInvalidBaseCondition  = fmt.Errorf("%w: estadoBase", ErrInvalidValue)
	ErrInvalidHeight         = fmt.Errorf("%w: altura", ErrInvalidValue)
	ErrInvalidLatitude       = fmt.Errorf("%w: latitud", ErrInvalidValue)
	ErrInvalidLongitude      = fmt.Errorf("%w: longitud", ErrInvalidValue)
	ErrInvalidSyncStatus     = fmt.Errorf("%w: syncStatus", ErrInvalidValue)
	ErrInvalidColorID        = fmt.Errorf("%w: colorId", ErrInvalidValue)
)
