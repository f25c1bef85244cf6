// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/internal/store"
	"github.com/MKhiriev/go-field-inspections/internal/validators"
	"github.com/MKhiriev/go-field-inspections/models"
)

// inspectionService is the concrete implementation of InspectionService.
type inspectionService struct {
	inspectionRepository store.InspectionRepository

	// validator checks reconciliation items, which bypass the validation
	// wrapper because they arrive undecoded.
	validator validators.Validator

	logger *logger.Logger
	now    func() time.Time
}

// NewInspectionService constructs an InspectionService over repo.
func NewInspectionService(repo store.InspectionRepository, logger *logger.Logger) InspectionService {
	return &inspectionService{
		inspectionRepository: repo,
		validator:            validators.NewInspectionValidator(),
		logger:               logger,
		now:                  time.Now,
	}
}

// Create stamps the payload and stores it with sync status pending. An empty
// assignment time is set to now.
func (s *inspectionService) Create(ctx context.Context, payload models.InspectionPayload) (int64, error) {
	return s.insert(ctx, payload, models.SyncStatusPending)
}

// Update stamps the payload and overwrites inspection id with sync status
// synced. A missing row surfaces as store.ErrInspectionNotFound.
func (s *inspectionService) Update(ctx context.Context, id int64, payload models.InspectionPayload) error {
	log := logger.FromContext(ctx)

	payload.SyncStatus = models.SyncStatusSynced
	payload.LastModified = s.now().UTC()

	if err := s.inspectionRepository.Update(ctx, id, payload); err != nil {
		if errors.Is(err, store.ErrInspectionNotFound) {
			return err
		}
		log.Err(err).Str("func", "inspectionService.Update").Int64("inspection_id", id).Msg("inspection update failed")
		return fmt.Errorf("%w: %w", ErrPersistenceFailure, err)
	}

	return nil
}

func (s *inspectionService) Get(ctx context.Context, id int64) (models.Inspection, error) {
	return s.inspectionRepository.Get(ctx, id)
}

func (s *inspectionService) ListByTechnician(ctx context.Context, technicianID int64) ([]models.Inspection, error) {
	return s.inspectionRepository.ListByTechnician(ctx, technicianID)
}

func (s *inspectionService) ListBySupervisor(ctx context.Context, supervisorID int64) ([]models.InspectionSummary, error) {
	return s.inspectionRepository.ListBySupervisor(ctx, supervisorID)
}

func (s *inspectionService) insert(ctx context.Context, payload models.InspectionPayload, status models.SyncStatus) (int64, error) {
	log := logger.FromContext(ctx)

	now := s.now().UTC()
	if payload.AssignedAt.IsZero() {
		payload.AssignedAt = now
	}
	payload.SyncStatus = status
	payload.LastModified = now

	id, err := s.inspectionRepository.Create(ctx, payload)
	if err != nil {
		log.Err(err).
			Str("func", "inspectionService.insert").
			Int64("post_id", payload.PostID).
			Int64("technician_id", payload.TechnicianID).
			Msg("inspection insert failed")
		return 0, fmt.Errorf("%w: %w", ErrPersistenceFailure, err)
	}

	return id, nil
}
