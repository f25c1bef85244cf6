package store

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/go-field-inspections/internal/config"
	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/migrations"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer. The client app owns it
// and must call Close on shutdown.
type ClientStorages struct {
	// Inspections is the local record store of inspections.
	Inspections LocalInspectionRepository
	// References keeps colors and posts for offline use.
	References LocalReferenceRepository
	// SyncTags persists background sync registrations.
	SyncTags SyncTagRepository
	// Cache backs the caching gateway.
	Cache CacheRepository
	// Photos keeps photo blobs beside the database.
	Photos PhotoStore

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations of [migrations.Client].
//  3. Opens the photo directory (cfg.PhotoDir, or "photos" beside the
//     database file when empty).
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(migrations.Client); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	photoDir := cfg.PhotoDir
	if photoDir == "" {
		photoDir = filepath.Join(filepath.Dir(cfg.DB.DSN), "photos")
	}

	photos, err := NewPhotoFileStorage(photoDir, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &ClientStorages{
		Inspections: NewLocalInspectionRepository(db, logger),
		References:  NewLocalReferenceRepository(db, logger),
		SyncTags:    NewSyncTagRepository(db, logger),
		Cache:       NewCacheRepository(db, logger),
		Photos:      photos,
		db:          db,
	}, nil
}

// Close closes the local database. Repository calls made afterwards fail
// with [ErrStorageUnavailable].
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
