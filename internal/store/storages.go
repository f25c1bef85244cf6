package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-field-inspections/internal/config"
	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/migrations"
)

// Storages groups every backend repository into a single value handed to
// the service layer.
type Storages struct {
	Inspections InspectionRepository
	Colors      ColorRepository
	Posts       PostRepository
	Health      Pinger

	db *DB
}

// NewStorages connects to PostgreSQL, applies the server migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(migrations.Server); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, logger), nil
}

func newStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		Inspections: NewInspectionRepository(db, logger),
		Colors:      NewColorRepository(db, logger),
		Posts:       NewPostRepository(db, logger),
		Health:      NewPinger(db),
		db:          db,
	}
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
