package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-field-inspections/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SyncTag is the background sync registration that asks the trigger to
// drain pending inspections as soon as the backend is reachable.
const SyncTag = "sync-inspecciones"

// ClientInspectionService defines the client-side contract for working with
// inspections offline. Every write lands in the local store as pending,
// registers [SyncTag] and is then submitted once right away. When the backend
// is unreachable, or a drain pass is running, the record stays pending and
// the write still succeeds. Any other submission failure is returned together
// with the stored pending record.
type ClientInspectionService interface {
	// Record validates payload and stores it as a new record without a remote
	// id, then submits it with a POST.
	Record(ctx context.Context, payload models.InspectionPayload) (models.LocalInspection, error)

	// Edit overwrites the payload of record localID and marks it pending
	// again. The remote id, if any, is kept so the submission is a PUT.
	Edit(ctx context.Context, localID int64, payload models.InspectionPayload) (models.LocalInspection, error)

	// AttachPhoto stores data in the photo store, appends its id to the
	// photo list of record localID and marks the record pending.
	AttachPhoto(ctx context.Context, localID int64, data []byte) (models.LocalInspection, error)

	Get(ctx context.Context, localID int64) (models.LocalInspection, error)
	ListByTechnician(ctx context.Context, technicianID int64) ([]models.LocalInspection, error)
	ListPending(ctx context.Context) ([]models.LocalInspection, error)
}

// ClientSyncService defines the client-side contract for pushing local work
// to the backend and pulling the server view back.
type ClientSyncService interface {
	// Register persists a background sync tag. Registering a tag twice is a
	// no-op.
	Register(ctx context.Context, tag string) error

	// DrainPending submits every pending record one by one: POST when the
	// record has no remote id, PUT otherwise. An acknowledged record is
	// marked synced; a failed one stays pending and the pass continues.
	// A busy or closed local store yields an empty report and no error.
	DrainPending(ctx context.Context) (models.DrainReport, error)

	// Submit sends one record the way DrainPending does and returns it as
	// stored afterwards. A running pass makes it return rec unchanged with
	// ErrSyncInProgress. Transport failures keep adapter.ErrNetworkUnavailable
	// in the chain.
	Submit(ctx context.Context, rec models.LocalInspection) (models.LocalInspection, error)

	// SyncNow submits every pending record in one bulk reconciliation call
	// and applies the results by local id.
	SyncNow(ctx context.Context) (models.DrainReport, error)

	// Refresh replaces the local colors, posts and the technician's synced
	// inspections with the server view. Pending records are kept.
	Refresh(ctx context.Context) error
}

// ClientSyncJob defines the contract for a ticker-driven background worker.
type ClientSyncJob interface {
	// Start launches the background goroutine, ticking every interval.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
