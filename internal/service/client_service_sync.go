package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-field-inspections/internal/adapter"
	"github.com/MKhiriev/go-field-inspections/internal/config"
	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/internal/store"
	"github.com/MKhiriev/go-field-inspections/models"
)

type clientSyncService struct {
	inspections store.LocalInspectionRepository
	references  store.LocalReferenceRepository
	syncTags    store.SyncTagRepository
	adapter     adapter.ServerAdapter

	technicianID int64
	companyID    int64

	// pass serializes drain and bulk passes.
	pass sync.Mutex

	logger *logger.Logger
}

func NewClientSyncService(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg config.ClientApp, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{
		inspections:  storages.Inspections,
		references:   storages.References,
		syncTags:     storages.SyncTags,
		adapter:      serverAdapter,
		technicianID: cfg.TechnicianID,
		companyID:    cfg.CompanyID,
		logger:       logger,
	}
}

func (s *clientSyncService) Register(ctx context.Context, tag string) error {
	if tag == "" {
		return ErrInvalidDataProvided
	}
	return s.syncTags.RegisterTag(ctx, tag)
}

// DrainPending implements ClientSyncService. A pass already running makes
// the call return ErrSyncInProgress.
func (s *clientSyncService) DrainPending(ctx context.Context) (models.DrainReport, error) {
	if !s.pass.TryLock() {
		return models.DrainReport{}, ErrSyncInProgress
	}
	defer s.pass.Unlock()

	pending, ok, err := s.listPending(ctx, "clientSyncService.DrainPending")
	if !ok {
		return models.DrainReport{}, err
	}

	report := models.DrainReport{Attempted: len(pending)}
	for _, rec := range pending {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		if err := s.submit(ctx, rec); err != nil {
			s.logger.Err(mapAdapterError(err)).
				Str("func", "clientSyncService.DrainPending").
				Int64("local_id", rec.LocalID).
				Msg("inspection stays pending")
			report.Failed = append(report.Failed, rec.LocalID)
			continue
		}
		report.Synced++
	}

	s.logger.Info().
		Int("attempted", report.Attempted).
		Int("synced", report.Synced).
		Int("failed", len(report.Failed)).
		Msg("drain pass finished")

	return report, nil
}

// Submit implements ClientSyncService. It returns rec unchanged with
// ErrSyncInProgress when a pass is running; that pass or the next one sends
// the record.
func (s *clientSyncService) Submit(ctx context.Context, rec models.LocalInspection) (models.LocalInspection, error) {
	if !s.pass.TryLock() {
		return rec, ErrSyncInProgress
	}
	defer s.pass.Unlock()

	if err := s.submit(ctx, rec); err != nil {
		return rec, mapAdapterError(err)
	}

	synced, err := s.inspections.Get(ctx, rec.LocalID)
	if err != nil {
		return rec, err
	}
	return synced, nil
}

// submit sends one record and records the acknowledgment.
func (s *clientSyncService) submit(ctx context.Context, rec models.LocalInspection) error {
	var remoteID int64
	if rec.RemoteID == nil {
		id, err := s.adapter.CreateInspection(ctx, rec.InspectionPayload)
		if err != nil {
			return err
		}
		remoteID = id
	} else {
		if err := s.adapter.UpdateInspection(ctx, *rec.RemoteID, rec.InspectionPayload); err != nil {
			return err
		}
		remoteID = *rec.RemoteID
	}

	return s.inspections.MarkSynced(ctx, rec.LocalID, remoteID)
}

// SyncNow implements ClientSyncService. A failed bulk call leaves every
// record pending and is returned as is; per-item failures only land in the
// report.
func (s *clientSyncService) SyncNow(ctx context.Context) (models.DrainReport, error) {
	if !s.pass.TryLock() {
		return models.DrainReport{}, ErrSyncInProgress
	}
	defer s.pass.Unlock()

	pending, ok, err := s.listPending(ctx, "clientSyncService.SyncNow")
	if !ok {
		return models.DrainReport{}, err
	}

	report := models.DrainReport{Attempted: len(pending)}
	if len(pending) == 0 {
		return report, nil
	}

	results, err := s.adapter.SyncInspections(ctx, pending)
	if err != nil {
		err = mapAdapterError(err)
		s.logger.Err(err).Str("func", "clientSyncService.SyncNow").Int("records", len(pending)).Msg("bulk sync failed")
		return report, err
	}

	acked := make(map[int64]bool, len(results))
	for _, r := range results {
		if !r.Success || r.RemoteID == nil {
			continue
		}
		if err := s.inspections.MarkSynced(ctx, r.LocalID, *r.RemoteID); err != nil {
			s.logger.Err(err).Str("func", "clientSyncService.SyncNow").Int64("local_id", r.LocalID).Msg("failed to mark inspection synced")
			continue
		}
		acked[r.LocalID] = true
	}

	for _, rec := range pending {
		if acked[rec.LocalID] {
			report.Synced++
			continue
		}
		report.Failed = append(report.Failed, rec.LocalID)
	}

	return report, nil
}

// listPending reports ok=false when the pass must stop. An unavailable
// store is a warning and not an error.
func (s *clientSyncService) listPending(ctx context.Context, fn string) ([]models.LocalInspection, bool, error) {
	pending, err := s.inspections.ListPending(ctx)
	if err == nil {
		return pending, true, nil
	}

	if errors.Is(err, store.ErrStorageUnavailable) {
		s.logger.Warn().Err(err).Str("func", fn).Msg("local store unavailable, skipping sync pass")
		return nil, false, nil
	}

	s.logger.Err(err).Str("func", fn).Msg("failed to list pending inspections")
	return nil, false, fmt.Errorf("list pending inspections: %w", err)
}

// Refresh implements ClientSyncService. Each collection is replaced
// independently and the failures are joined.
func (s *clientSyncService) Refresh(ctx context.Context) error {
	var errs []error

	if colors, err := s.adapter.ListColors(ctx); err != nil {
		errs = append(errs, fmt.Errorf("refresh colors: %w", mapAdapterError(err)))
	} else if err = s.references.ReplaceColors(ctx, colors); err != nil {
		errs = append(errs, fmt.Errorf("store colors: %w", err))
	}

	if s.companyID > 0 {
		if posts, err := s.adapter.ListPosts(ctx, s.companyID); err != nil {
			errs = append(errs, fmt.Errorf("refresh posts: %w", mapAdapterError(err)))
		} else if err = s.references.ReplacePosts(ctx, posts, models.ReplaceScope{CompanyID: s.companyID}); err != nil {
			errs = append(errs, fmt.Errorf("store posts: %w", err))
		}
	}

	if s.technicianID > 0 {
		if inspections, err := s.adapter.ListInspectionsByTechnician(ctx, s.technicianID); err != nil {
			errs = append(errs, fmt.Errorf("refresh inspections: %w", mapAdapterError(err)))
		} else if err = s.inspections.BulkReplace(ctx, inspections, models.ReplaceScope{TechnicianID: s.technicianID}); err != nil {
			errs = append(errs, fmt.Errorf("store inspections: %w", err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		s.logger.Warn().Err(err).Str("func", "clientSyncService.Refresh").Msg("refresh incomplete")
		return err
	}

	return nil
}
