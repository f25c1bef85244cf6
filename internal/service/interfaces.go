// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-field-inspections/models"
)

// InspectionService is the backend business layer over inspections.
type InspectionService interface {
	// Create stores a new inspection as pending and returns its id.
	Create(ctx context.Context, payload models.InspectionPayload) (int64, error)

	// Update overwrites the execution fields of inspection id and marks it
	// synced.
	Update(ctx context.Context, id int64, payload models.InspectionPayload) error

	Get(ctx context.Context, id int64) (models.Inspection, error)
	ListByTechnician(ctx context.Context, technicianID int64) ([]models.Inspection, error)
	ListBySupervisor(ctx context.Context, supervisorID int64) ([]models.InspectionSummary, error)

	// Reconcile decodes, validates and inserts every item independently.
	// The result slice has one entry per item in input order; a failed
	// item never aborts the rest. The returned error is non-nil only when
	// ctx ends before all items were processed.
	Reconcile(ctx context.Context, items []models.SyncItem) ([]models.SyncResult, error)
}

// ReferenceService serves the color and post catalogs.
type ReferenceService interface {
	ListColors(ctx context.Context) ([]models.Color, error)
	CreateColor(ctx context.Context, color models.Color) (models.Color, error)

	ListPosts(ctx context.Context, companyID int64) ([]models.Post, error)
	GetPost(ctx context.Context, id int64) (models.Post, error)
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
}

// HealthService reports backend and database reachability.
type HealthService interface {
	Check(ctx context.Context) models.HealthReport
}

// AuthService verifies bearer tokens presented by field clients.
type AuthService interface {
	// Enabled reports whether a sign key is configured. When it is not, the
	// transport layer skips authentication.
	Enabled() bool
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// InspectionServiceWrapper defines middleware composition for
// InspectionService. Implementations wrap an existing InspectionService to
// add behavior such as validating.
type InspectionServiceWrapper interface {
	Wrap(InspectionService) InspectionService
}
