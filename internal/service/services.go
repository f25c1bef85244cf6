package service

import (
	"github.com/MKhiriev/go-field-inspections/internal/config"
	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/internal/store"
)

// Services groups the backend business services handed to the transport
// layer.
type Services struct {
	AuthService       AuthService
	InspectionService InspectionService
	ReferenceService  ReferenceService
	HealthService     HealthService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	inspections := NewInspectionService(storages.Inspections, logger)

	return &Services{
		AuthService:       NewAuthService(cfg.App, logger),
		InspectionService: NewInspectionValidationService().Wrap(inspections),
		ReferenceService:  NewReferenceService(storages.Colors, storages.Posts, logger),
		HealthService:     NewHealthService(storages.Health, cfg.App, logger),
	}
}
