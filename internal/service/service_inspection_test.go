// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-field-inspections/internal/app"
	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/internal/store"
	"github.com/MKhiriev/go-field-inspections/internal/validators"
	"github.com/MKhiriev/go-field-inspections/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.InspectionRepository
// ─────────────────────────────────────────────

type mockInspectionRepository struct {
	createFn           func(ctx context.Context, payload models.InspectionPayload) (int64, error)
	updateFn           func(ctx context.Context, id int64, payload models.InspectionPayload) error
	getFn              func(ctx context.Context, id int64) (models.Inspection, error)
	listByTechnicianFn func(ctx context.Context, id int64) ([]models.Inspection, error)
	listBySupervisorFn func(ctx context.Context, id int64) ([]models.InspectionSummary, error)

	created []models.InspectionPayload
}

func (m *mockInspectionRepository) Create(ctx context.Context, payload models.InspectionPayload) (int64, error) {
	m.created = append(m.created, payload)
	if m.createFn != nil {
		return m.createFn(ctx, payload)
	}
	return int64(len(m.created)), nil
}

func (m *mockInspectionRepository) Update(ctx context.Context, id int64, payload models.InspectionPayload) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, payload)
	}
	return nil
}

func (m *mockInspectionRepository) Get(ctx context.Context, id int64) (models.Inspection, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Inspection{}, nil
}

func (m *mockInspectionRepository) ListByTechnician(ctx context.Context, id int64) ([]models.Inspection, error) {
	if m.listByTechnicianFn != nil {
		return m.listByTechnicianFn(ctx, id)
	}
	return nil, nil
}

func (m *mockInspectionRepository) ListBySupervisor(ctx context.Context, id int64) ([]models.InspectionSummary, error) {
	if m.listBySupervisorFn != nil {
		return m.listBySupervisorFn(ctx, id)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var fixedNow = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

func newRawInspectionService(repo *mockInspectionRepository) *inspectionService {
	svc := NewInspectionService(repo, logger.Nop()).(*inspectionService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func validPayload() models.InspectionPayload {
	return models.InspectionPayload{PostID: 3, TechnicianID: 7, State: models.InspectionCompleted}
}

func syncItem(t *testing.T, localID int64, payload models.InspectionPayload) models.SyncItem {
	t.Helper()
	raw, err := json.Marshal(models.LocalInspection{LocalID: localID, InspectionPayload: payload})
	require.NoError(t, err)
	return models.SyncItem{LocalID: localID, Raw: raw}
}

// ─────────────────────────────────────────────
// Create / Update
// ─────────────────────────────────────────────

func TestInspectionService_Create_StoresPending(t *testing.T) {
	repo := &mockInspectionRepository{}
	svc := newRawInspectionService(repo)

	id, err := svc.Create(context.Background(), validPayload())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	require.Len(t, repo.created, 1)
	got := repo.created[0]
	assert.Equal(t, models.SyncStatusPending, got.SyncStatus)
	assert.Equal(t, fixedNow, got.LastModified)
	assert.Equal(t, fixedNow, got.AssignedAt, "пустая дата назначения заполняется текущим временем")
}

func TestInspectionService_Create_KeepsAssignedAt(t *testing.T) {
	repo := &mockInspectionRepository{}
	svc := newRawInspectionService(repo)

	p := validPayload()
	p.AssignedAt = fixedNow.Add(-48 * time.Hour)

	_, err := svc.Create(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, p.AssignedAt, repo.created[0].AssignedAt)
}

func TestInspectionService_Create_PersistenceFailure(t *testing.T) {
	repo := &mockInspectionRepository{
		createFn: func(context.Context, models.InspectionPayload) (int64, error) {
			return 0, store.ErrReferenceNotFound
		},
	}

	_, err := newRawInspectionService(repo).Create(context.Background(), validPayload())
	assert.ErrorIs(t, err, ErrPersistenceFailure)
	assert.ErrorIs(t, err, store.ErrReferenceNotFound)
}

func TestInspectionService_Update(t *testing.T) {
	var got models.InspectionPayload
	repo := &mockInspectionRepository{
		updateFn: func(_ context.Context, id int64, payload models.InspectionPayload) error {
			assert.Equal(t, int64(57), id)
			got = payload
			return nil
		},
	}

	require.NoError(t, newRawInspectionService(repo).Update(context.Background(), 57, validPayload()))
	assert.Equal(t, models.SyncStatusSynced, got.SyncStatus)
	assert.Equal(t, fixedNow, got.LastModified)
}

func TestInspectionService_Update_NotFoundIsNotWrapped(t *testing.T) {
	repo := &mockInspectionRepository{
		updateFn: func(context.Context, int64, models.InspectionPayload) error { return store.ErrInspectionNotFound },
	}

	err := newRawInspectionService(repo).Update(context.Background(), 1, validPayload())
	assert.ErrorIs(t, err, store.ErrInspectionNotFound)
	assert.NotErrorIs(t, err, ErrPersistenceFailure)
}

// ─────────────────────────────────────────────
// Reconcile
// ─────────────────────────────────────────────

func TestInspectionService_Reconcile_PreservesOrderAndIsolatesFailures(t *testing.T) {
	repo := &mockInspectionRepository{}
	svc := newRawInspectionService(repo)

	missingState := validPayload()
	missingState.State = ""

	items := []models.SyncItem{
		syncItem(t, 11, validPayload()),
		{LocalID: 12, Raw: json.RawMessage(`{"id":12,"posteId":"x"}`)},
		syncItem(t, 13, missingState),
		syncItem(t, 14, validPayload()),
	}

	results, err := svc.Reconcile(context.Background(), items)
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, []int64{11, 12, 13, 14}, []int64{results[0].LocalID, results[1].LocalID, results[2].LocalID, results[3].LocalID})

	assert.True(t, results[0].Success)
	require.NotNil(t, results[0].RemoteID)
	assert.Equal(t, int64(1), *results[0].RemoteID)

	for _, r := range results[1:3] {
		assert.False(t, r.Success)
		assert.Nil(t, r.RemoteID)
		assert.Equal(t, app.MsgSyncItemFailed, r.Error)
	}

	assert.True(t, results[3].Success)
	assert.Equal(t, int64(2), *results[3].RemoteID)

	// вставляются только валидные элементы, и сразу как synced
	require.Len(t, repo.created, 2)
	for _, p := range repo.created {
		assert.Equal(t, models.SyncStatusSynced, p.SyncStatus)
	}
}

func TestInspectionService_Reconcile_NeverDeduplicates(t *testing.T) {
	repo := &mockInspectionRepository{}
	svc := newRawInspectionService(repo)

	item := syncItem(t, 5, validPayload())
	results, err := svc.Reconcile(context.Background(), []models.SyncItem{item, item})
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.NotEqual(t, *results[0].RemoteID, *results[1].RemoteID)
	assert.Len(t, repo.created, 2)
}

func TestInspectionService_Reconcile_StorageFailurePerItem(t *testing.T) {
	calls := 0
	repo := &mockInspectionRepository{
		createFn: func(context.Context, models.InspectionPayload) (int64, error) {
			calls++
			if calls == 1 {
				return 0, store.ErrExecutingStatement
			}
			return 99, nil
		},
	}

	results, err := newRawInspectionService(repo).Reconcile(context.Background(), []models.SyncItem{
		syncItem(t, 1, validPayload()),
		syncItem(t, 2, validPayload()),
	})
	require.NoError(t, err)
	assert.False(t, results[0].Success)
	assert.True(t, results[1].Success)
}

func TestInspectionService_Reconcile_Empty(t *testing.T) {
	results, err := newRawInspectionService(&mockInspectionRepository{}).Reconcile(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestInspectionService_Reconcile_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newRawInspectionService(&mockInspectionRepository{}).Reconcile(ctx, []models.SyncItem{syncItem(t, 1, validPayload())})
	assert.ErrorIs(t, err, context.Canceled)
}

// ─────────────────────────────────────────────
// Validation wrapper
// ─────────────────────────────────────────────

func newValidatedInspectionService(repo *mockInspectionRepository) InspectionService {
	return NewInspectionValidationService().Wrap(newRawInspectionService(repo))
}

func TestInspectionValidationService_Create(t *testing.T) {
	repo := &mockInspectionRepository{}
	svc := newValidatedInspectionService(repo)

	p := validPayload()
	p.TechnicianID = 0
	_, err := svc.Create(context.Background(), p)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrRequiredField)
	assert.Empty(t, repo.created, "невалидные данные не доходят до хранилища")

	_, err = svc.Create(context.Background(), validPayload())
	assert.NoError(t, err)
}

func TestInspectionValidationService_Update(t *testing.T) {
	called := false
	repo := &mockInspectionRepository{
		updateFn: func(context.Context, int64, models.InspectionPayload) error {
			called = true
			return nil
		},
	}
	svc := newValidatedInspectionService(repo)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Update(ctx, 0, validPayload()), ErrInvalidDataProvided)

	bad := models.InspectionPayload{State: models.InspectionCompleted, Height: new(float64)}
	assert.ErrorIs(t, svc.Update(ctx, 1, bad), validators.ErrInvalidHeight)
	assert.False(t, called)

	// posteId/tecnicoId в PUT не обязательны
	require.NoError(t, svc.Update(ctx, 1, models.InspectionPayload{State: models.InspectionCompleted}))
	assert.True(t, called)
}

func TestInspectionValidationService_IDs(t *testing.T) {
	svc := newValidatedInspectionService(&mockInspectionRepository{})
	ctx := context.Background()

	_, err := svc.Get(ctx, -1)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	_, err = svc.ListByTechnician(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	_, err = svc.ListBySupervisor(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestInspectionValidationService_DelegatesReads(t *testing.T) {
	want := []models.InspectionSummary{{ID: 1, State: models.InspectionPending}}
	repo := &mockInspectionRepository{
		getFn: func(_ context.Context, id int64) (models.Inspection, error) {
			if id == 404 {
				return models.Inspection{}, store.ErrInspectionNotFound
			}
			return models.Inspection{ID: id}, nil
		},
		listBySupervisorFn: func(context.Context, int64) ([]models.InspectionSummary, error) { return want, nil },
	}
	svc := newValidatedInspectionService(repo)
	ctx := context.Background()

	got, err := svc.Get(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, int64(8), got.ID)

	_, err = svc.Get(ctx, 404)
	assert.True(t, errors.Is(err, store.ErrInspectionNotFound))

	summaries, err := svc.ListBySupervisor(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, want, summaries)
}
