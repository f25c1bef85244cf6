package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-field-inspections/internal/adapter"
	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/internal/store"
)

const (
	defaultProbeInterval   = 30 * time.Second
	defaultRefreshInterval = 5 * time.Minute
)

// clientSyncJob is the background sync trigger. It probes the backend on a
// ticker and drains pending inspections when connectivity comes back or
// while [SyncTag] is registered.
type clientSyncJob struct {
	syncService ClientSyncService
	syncTags    store.SyncTagRepository
	prober      adapter.ServerAdapter
	logger      *logger.Logger

	// online is the result of the last probe. The job starts offline, so
	// the first successful probe drains.
	online bool

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates the trigger. The job is idle until Start is
// called.
func NewClientSyncJob(syncService ClientSyncService, syncTags store.SyncTagRepository, prober adapter.ServerAdapter, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{
		syncService: syncService,
		syncTags:    syncTags,
		prober:      prober,
		logger:      logger,
	}
}

// Start implements ClientSyncJob. If interval is zero or negative it
// defaults to 30 seconds. The goroutine exits when ctx is cancelled or Stop
// is called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultProbeInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(j.logger.WithContext(ctx))
	j.cancel = cancel
	j.online = false
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

// tick runs one probe and, when due, one drain pass. The registration is
// cleared before the pass, so a write made while it runs registers [SyncTag]
// again and the next tick picks the record up.
func (j *clientSyncJob) tick(ctx context.Context) {
	if err := j.prober.Health(ctx); err != nil {
		if j.online {
			j.logger.Info().Err(err).Msg("backend unreachable, working offline")
		}
		j.online = false
		return
	}

	cameOnline := !j.online
	j.online = true

	tagged, err := j.syncTags.HasTag(ctx, SyncTag)
	if err != nil {
		j.logger.Warn().Err(err).Str("func", "clientSyncJob.tick").Msg("failed to read sync registration")
	}

	if !cameOnline && !tagged {
		return
	}

	if tagged {
		if err := j.syncTags.ClearTag(ctx, SyncTag); err != nil {
			j.logger.Warn().Err(err).Str("func", "clientSyncJob.tick").Msg("failed to clear sync registration")
		}
	}

	report, err := j.syncService.DrainPending(ctx)
	if err != nil {
		if !errors.Is(err, ErrSyncInProgress) {
			j.logger.Err(err).Str("func", "clientSyncJob.tick").Msg("drain pass failed")
		}
		j.reregister(ctx)
		return
	}

	if len(report.Failed) > 0 {
		j.reregister(ctx)
	}
}

// reregister keeps [SyncTag] so that the next online tick drains again.
func (j *clientSyncJob) reregister(ctx context.Context) {
	if err := j.syncService.Register(ctx, SyncTag); err != nil {
		j.logger.Warn().Err(err).Str("func", "clientSyncJob.reregister").Msg("failed to register background sync")
	}
}

// Stop implements ClientSyncJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// clientRefreshJob periodically pulls the server view into the local store.
type clientRefreshJob struct {
	syncService ClientSyncService
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewClientRefreshJob(syncService ClientSyncService, logger *logger.Logger) ClientSyncJob {
	return &clientRefreshJob{syncService: syncService, logger: logger}
}

// Start implements ClientSyncJob. If interval is zero or negative it
// defaults to 5 minutes.
func (j *clientRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(j.logger.WithContext(ctx))
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				// failures are logged by Refresh
				_ = j.syncService.Refresh(jobCtx)
			}
		}
	}()
}

func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
