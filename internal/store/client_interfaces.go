package store

import (
	"context"

	"github.com/MKhiriev/go-field-inspections/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalInspectionRepository is the field client's durable store of
// inspections. Records are keyed by a local id assigned on creation.
type LocalInspectionRepository interface {
	// Create stores payload as a new pending record without a remote id.
	Create(ctx context.Context, payload models.InspectionPayload) (models.LocalInspection, error)
	Get(ctx context.Context, localID int64) (models.LocalInspection, error)
	// Update overwrites the payload of an existing record and marks it
	// pending again. The remote id is kept.
	Update(ctx context.Context, localID int64, payload models.InspectionPayload) (models.LocalInspection, error)
	// ListPending returns pending records ordered by last modification, then
	// by local id.
	ListPending(ctx context.Context) ([]models.LocalInspection, error)
	ListByTechnician(ctx context.Context, technicianID int64) ([]models.LocalInspection, error)
	// MarkSynced records the server acknowledgment of a record. A missing
	// local id is not an error.
	MarkSynced(ctx context.Context, localID, remoteID int64) error
	// BulkReplace atomically swaps the synced records in scope for the
	// server view. Pending records are left untouched.
	BulkReplace(ctx context.Context, inspections []models.Inspection, scope models.ReplaceScope) error
}

// LocalReferenceRepository keeps the reference collections the field client
// needs offline.
type LocalReferenceRepository interface {
	ReplaceColors(ctx context.Context, colors []models.Color) error
	ListColors(ctx context.Context) ([]models.Color, error)
	ReplacePosts(ctx context.Context, posts []models.Post, scope models.ReplaceScope) error
	ListPosts(ctx context.Context, companyID int64) ([]models.Post, error)
}

// SyncTagRepository persists background sync registrations.
type SyncTagRepository interface {
	// RegisterTag stores tag. Registering an existing tag is a no-op.
	RegisterTag(ctx context.Context, tag string) error
	HasTag(ctx context.Context, tag string) (bool, error)
	ClearTag(ctx context.Context, tag string) error
}

// CacheRepository stores gateway responses grouped by cache name.
type CacheRepository interface {
	// PutEntries stores all entries in one transaction.
	PutEntries(ctx context.Context, entries ...models.CacheEntry) error
	// MatchEntry returns ErrCacheEntryNotFound when nothing is stored.
	MatchEntry(ctx context.Context, cacheName, method, url string) (models.CacheEntry, error)
	CacheNames(ctx context.Context) ([]string, error)
	DeleteCache(ctx context.Context, cacheName string) error
}

// PhotoStore keeps photo blobs referenced by inspection photo lists.
type PhotoStore interface {
	// Put stores data and returns the new photo id.
	Put(ctx context.Context, data []byte) (string, error)
	Get(ctx context.Context, id string) ([]byte, error)
	Delete(ctx context.Context, id string) error
}
