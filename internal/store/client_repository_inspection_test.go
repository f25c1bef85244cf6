package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-field-inspections/internal/config"
	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/models"
)

func newTestClientStorages(t *testing.T) *ClientStorages {
	t.Helper()
	dir := t.TempDir()

	storages, err := NewClientStorages(testContext(), config.ClientStorage{
		DB:       config.ClientDB{DSN: filepath.Join(dir, "field.db")},
		PhotoDir: filepath.Join(dir, "photos"),
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	return storages
}

// fixedClock makes last_modified deterministic.
func fixedClock(repo LocalInspectionRepository, times ...time.Time) {
	r := repo.(*localInspectionRepository)
	i := 0
	r.now = func() time.Time {
		t := times[i%len(times)]
		i++
		return t
	}
}

func localPayload(postID int64) models.InspectionPayload {
	notes := "poste inclinado"
	return models.InspectionPayload{
		PostID:       postID,
		TechnicianID: 7,
		State:        models.InspectionCompleted,
		Notes:        &notes,
		Photos:       models.PhotoList{"p-1"},
	}
}

// ── Create / Get ─────────────────────────────────────────────────────────────

func TestLocalInspectionRepository_CreateAssignsPendingRecord(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := testContext()

	rec, err := s.Inspections.Create(ctx, localPayload(1))
	require.NoError(t, err)

	assert.Positive(t, rec.LocalID)
	assert.Nil(t, rec.RemoteID)
	assert.Equal(t, models.SyncStatusPending, rec.SyncStatus)
	assert.False(t, rec.LastModified.IsZero())

	got, err := s.Inspections.Get(ctx, rec.LocalID)
	require.NoError(t, err)
	assert.Equal(t, rec.LocalID, got.LocalID)
	assert.Nil(t, got.RemoteID)
	assert.Equal(t, models.PhotoList{"p-1"}, got.Photos)
	require.NotNil(t, got.Notes)
	assert.Equal(t, "poste inclinado", *got.Notes)
	assert.Nil(t, got.Height)
	assert.True(t, rec.LastModified.Equal(got.LastModified))
}

func TestLocalInspectionRepository_GetMissing(t *testing.T) {
	s := newTestClientStorages(t)

	_, err := s.Inspections.Get(testContext(), 404)
	assert.ErrorIs(t, err, ErrInspectionNotFound)
}

// ── ListPending ──────────────────────────────────────────────────────────────

func TestLocalInspectionRepository_ListPendingOrder(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := testContext()

	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	// второй и третий созданы в одну и ту же секунду — порядок по local_id
	fixedClock(s.Inspections, base.Add(2*time.Second), base, base)

	a, err := s.Inspections.Create(ctx, localPayload(1))
	require.NoError(t, err)
	b, err := s.Inspections.Create(ctx, localPayload(2))
	require.NoError(t, err)
	c, err := s.Inspections.Create(ctx, localPayload(3))
	require.NoError(t, err)

	pending, err := s.Inspections.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 3)
	assert.Equal(t, []int64{b.LocalID, c.LocalID, a.LocalID}, []int64{pending[0].LocalID, pending[1].LocalID, pending[2].LocalID})
}

// ── MarkSynced ───────────────────────────────────────────────────────────────

func TestLocalInspectionRepository_MarkSynced(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := testContext()

	rec, err := s.Inspections.Create(ctx, localPayload(1))
	require.NoError(t, err)

	require.NoError(t, s.Inspections.MarkSynced(ctx, rec.LocalID, 501))

	got, err := s.Inspections.Get(ctx, rec.LocalID)
	require.NoError(t, err)
	assert.True(t, got.IsSynced())
	require.NotNil(t, got.RemoteID)
	assert.Equal(t, int64(501), *got.RemoteID)

	pending, err := s.Inspections.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestLocalInspectionRepository_MarkSyncedMissingIsNoop(t *testing.T) {
	s := newTestClientStorages(t)

	assert.NoError(t, s.Inspections.MarkSynced(testContext(), 999, 1))
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestLocalInspectionRepository_UpdateSyncedGoesBackToPending(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := testContext()

	rec, err := s.Inspections.Create(ctx, localPayload(1))
	require.NoError(t, err)
	require.NoError(t, s.Inspections.MarkSynced(ctx, rec.LocalID, 70))

	edited := localPayload(1)
	height := 9.5
	edited.Height = &height

	updated, err := s.Inspections.Update(ctx, rec.LocalID, edited)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusPending, updated.SyncStatus)
	require.NotNil(t, updated.RemoteID)
	assert.Equal(t, int64(70), *updated.RemoteID)

	got, err := s.Inspections.Get(ctx, rec.LocalID)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusPending, got.SyncStatus)
	require.NotNil(t, got.Height)
	assert.Equal(t, 9.5, *got.Height)
	require.NotNil(t, got.RemoteID)
	assert.True(t, rec.AssignedAt.Equal(got.AssignedAt))
}

func TestLocalInspectionRepository_UpdateMissing(t *testing.T) {
	s := newTestClientStorages(t)

	_, err := s.Inspections.Update(testContext(), 12, localPayload(1))
	assert.ErrorIs(t, err, ErrInspectionNotFound)
}

// ── BulkReplace ──────────────────────────────────────────────────────────────

func serverInspection(id, technicianID int64) models.Inspection {
	payload := localPayload(id * 10)
	payload.TechnicianID = technicianID
	payload.LastModified = time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	payload.AssignedAt = payload.LastModified
	return models.Inspection{ID: id, InspectionPayload: payload}
}

func TestLocalInspectionRepository_BulkReplaceKeepsPending(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := testContext()

	pending, err := s.Inspections.Create(ctx, localPayload(1))
	require.NoError(t, err)

	server := []models.Inspection{serverInspection(100, 7), serverInspection(101, 7)}
	require.NoError(t, s.Inspections.BulkReplace(ctx, server, models.ReplaceScope{}))
	// повторный вызов с тем же набором не меняет результат
	require.NoError(t, s.Inspections.BulkReplace(ctx, server, models.ReplaceScope{}))

	all, err := s.Inspections.ListByTechnician(ctx, 7)
	require.NoError(t, err)
	require.Len(t, all, 3)

	var synced, stillPending int
	for _, rec := range all {
		switch rec.SyncStatus {
		case models.SyncStatusSynced:
			synced++
			require.NotNil(t, rec.RemoteID)
		case models.SyncStatusPending:
			stillPending++
			assert.Equal(t, pending.LocalID, rec.LocalID)
		}
	}
	assert.Equal(t, 2, synced)
	assert.Equal(t, 1, stillPending)
}

func TestLocalInspectionRepository_BulkReplaceScope(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := testContext()

	require.NoError(t, s.Inspections.BulkReplace(ctx, []models.Inspection{serverInspection(1, 7), serverInspection(2, 8)}, models.ReplaceScope{}))
	require.NoError(t, s.Inspections.BulkReplace(ctx, []models.Inspection{serverInspection(3, 7)}, models.ReplaceScope{TechnicianID: 7}))

	mine, err := s.Inspections.ListByTechnician(ctx, 7)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, int64(3), *mine[0].RemoteID)

	others, err := s.Inspections.ListByTechnician(ctx, 8)
	require.NoError(t, err)
	require.Len(t, others, 1)
	assert.Equal(t, int64(2), *others[0].RemoteID)
}

func TestLocalInspectionRepository_BulkReplaceDoesNotShadowLocalEdit(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := testContext()

	require.NoError(t, s.Inspections.BulkReplace(ctx, []models.Inspection{serverInspection(5, 7)}, models.ReplaceScope{}))
	local, err := s.Inspections.ListByTechnician(ctx, 7)
	require.NoError(t, err)
	require.Len(t, local, 1)

	_, err = s.Inspections.Update(ctx, local[0].LocalID, local[0].InspectionPayload)
	require.NoError(t, err)

	require.NoError(t, s.Inspections.BulkReplace(ctx, []models.Inspection{serverInspection(5, 7)}, models.ReplaceScope{}))

	all, err := s.Inspections.ListByTechnician(ctx, 7)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, models.SyncStatusPending, all[0].SyncStatus)
}

// ── Unavailable storage ──────────────────────────────────────────────────────

func TestLocalInspectionRepository_ClosedDatabase(t *testing.T) {
	s := newTestClientStorages(t)
	require.NoError(t, s.Close())

	_, err := s.Inspections.Create(testContext(), localPayload(1))
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	_, err = s.Inspections.ListPending(testContext())
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}
