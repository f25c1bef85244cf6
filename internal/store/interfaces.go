package store

import (
	"context"

	"github.com/MKhiriev/go-field-inspections/models"
)

// InspectionRepository persists inspections on the backend.
type InspectionRepository interface {
	// Create inserts payload and returns the server-assigned id.
	Create(ctx context.Context, payload models.InspectionPayload) (int64, error)
	// Update overwrites the execution fields of inspection id. It returns
	// ErrInspectionNotFound when no row matches.
	Update(ctx context.Context, id int64, payload models.InspectionPayload) error
	Get(ctx context.Context, id int64) (models.Inspection, error)
	ListByTechnician(ctx context.Context, technicianID int64) ([]models.Inspection, error)
	ListBySupervisor(ctx context.Context, supervisorID int64) ([]models.InspectionSummary, error)
}

// ColorRepository persists the pole color catalog.
type ColorRepository interface {
	List(ctx context.Context) ([]models.Color, error)
	Create(ctx context.Context, name string) (models.Color, error)
}

// PostRepository persists poles.
type PostRepository interface {
	List(ctx context.Context, companyID int64) ([]models.Post, error)
	Get(ctx context.Context, id int64) (models.Post, error)
	Create(ctx context.Context, post models.Post) (models.Post, error)
}

// Pinger reports database reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}
