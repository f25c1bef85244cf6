package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-field-inspections/internal/adapter"
	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/internal/store"
	"github.com/MKhiriev/go-field-inspections/internal/validators"
	"github.com/MKhiriev/go-field-inspections/models"
)

type clientInspectionService struct {
	inspections store.LocalInspectionRepository
	photos      store.PhotoStore
	syncer      ClientSyncService
	validator   validators.Validator

	logger *logger.Logger
}

// NewClientInspectionService builds the offline write path over the local
// store. After every successful write syncer receives [SyncTag] and the
// record for an immediate submission.
func NewClientInspectionService(storages *store.ClientStorages, syncer ClientSyncService, logger *logger.Logger) ClientInspectionService {
	return &clientInspectionService{
		inspections: storages.Inspections,
		photos:      storages.Photos,
		syncer:      syncer,
		validator:   validators.NewInspectionValidator(),
		logger:      logger,
	}
}

func (s *clientInspectionService) Record(ctx context.Context, payload models.InspectionPayload) (models.LocalInspection, error) {
	if err := s.validator.Validate(ctx, payload); err != nil {
		return models.LocalInspection{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	rec, err := s.inspections.Create(ctx, payload)
	if err != nil {
		s.logger.Err(err).Str("func", "clientInspectionService.Record").Int64("post_id", payload.PostID).Msg("failed to store inspection locally")
		return models.LocalInspection{}, err
	}

	s.register(ctx)
	return s.submit(ctx, rec, "clientInspectionService.Record")
}

func (s *clientInspectionService) Edit(ctx context.Context, localID int64, payload models.InspectionPayload) (models.LocalInspection, error) {
	if localID <= 0 {
		return models.LocalInspection{}, ErrInvalidDataProvided
	}
	if err := s.validator.Validate(ctx, payload); err != nil {
		return models.LocalInspection{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	rec, err := s.inspections.Update(ctx, localID, payload)
	if err != nil {
		s.logger.Err(err).Str("func", "clientInspectionService.Edit").Int64("local_id", localID).Msg("failed to update inspection locally")
		return models.LocalInspection{}, err
	}

	s.register(ctx)
	return s.submit(ctx, rec, "clientInspectionService.Edit")
}

func (s *clientInspectionService) AttachPhoto(ctx context.Context, localID int64, data []byte) (models.LocalInspection, error) {
	if len(data) == 0 {
		return models.LocalInspection{}, ErrInvalidDataProvided
	}

	rec, err := s.inspections.Get(ctx, localID)
	if err != nil {
		return models.LocalInspection{}, err
	}

	photoID, err := s.photos.Put(ctx, data)
	if err != nil {
		s.logger.Err(err).Str("func", "clientInspectionService.AttachPhoto").Int64("local_id", localID).Msg("failed to store photo")
		return models.LocalInspection{}, err
	}

	payload := rec.InspectionPayload
	payload.Photos = append(slices.Clone(payload.Photos), photoID)

	updated, err := s.inspections.Update(ctx, localID, payload)
	if err != nil {
		if delErr := s.photos.Delete(ctx, photoID); delErr != nil {
			s.logger.Warn().Err(delErr).Str("func", "clientInspectionService.AttachPhoto").Str("photo_id", photoID).Msg("failed to remove orphan photo")
		}
		return models.LocalInspection{}, err
	}

	s.register(ctx)
	return s.submit(ctx, updated, "clientInspectionService.AttachPhoto")
}

func (s *clientInspectionService) Get(ctx context.Context, localID int64) (models.LocalInspection, error) {
	return s.inspections.Get(ctx, localID)
}

func (s *clientInspectionService) ListByTechnician(ctx context.Context, technicianID int64) ([]models.LocalInspection, error) {
	return s.inspections.ListByTechnician(ctx, technicianID)
}

func (s *clientInspectionService) ListPending(ctx context.Context) ([]models.LocalInspection, error) {
	return s.inspections.ListPending(ctx)
}

// register asks the trigger for a drain. Failures are logged only.
func (s *clientInspectionService) register(ctx context.Context) {
	if err := s.syncer.Register(ctx, SyncTag); err != nil {
		s.logger.Warn().Err(err).Str("func", "clientInspectionService.register").Msg("failed to register background sync")
	}
}

// submit sends rec right away. Offline, or while a pass is running, rec stays
// pending for the trigger and no error is returned.
func (s *clientInspectionService) submit(ctx context.Context, rec models.LocalInspection, fn string) (models.LocalInspection, error) {
	synced, err := s.syncer.Submit(ctx, rec)
	switch {
	case err == nil:
		return synced, nil
	case errors.Is(err, adapter.ErrNetworkUnavailable), errors.Is(err, ErrSyncInProgress):
		return rec, nil
	}

	s.logger.Err(err).Str("func", fn).Int64("local_id", rec.LocalID).Msg("inspection stays pending")
	return rec, err
}
