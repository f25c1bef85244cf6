package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-field-inspections/internal/logger"
)

// photoFileStorage is the default implementation of [PhotoStore]. Blobs live
// as individual files in a single directory beside the local database, so
// that the inspection rows only carry photo identifiers.
type photoFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewPhotoFileStorage constructs a [PhotoStore] rooted at dir, creating the
// directory when it does not exist.
func NewPhotoFileStorage(dir string, logger *logger.Logger) (PhotoStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("%w: error creating photo directory: %w", ErrStorageUnavailable, err)
	}

	return &photoFileStorage{dir: dir, logger: logger}, nil
}

// Put writes data under a new time-ordered UUID. The file is written to a
// temporary name first and renamed into place.
func (p *photoFileStorage) Put(ctx context.Context, data []byte) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("error generating photo id: %w", err)
	}

	target := p.path(id)
	tmp, err := os.CreateTemp(p.dir, ".photo-*")
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "photoFileStorage.Put").Msg("failed to create temp file")
		return "", fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return id.String(), nil
}

func (p *photoFileStorage) Get(ctx context.Context, id string) ([]byte, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrPhotoNotFound, id)
	}

	data, err := os.ReadFile(p.path(parsed))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrPhotoNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return data, nil
}

func (p *photoFileStorage) Delete(ctx context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrPhotoNotFound, id)
	}

	if err := os.Remove(p.path(parsed)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return nil
}

func (p *photoFileStorage) path(id uuid.UUID) string {
	return filepath.Join(p.dir, id.String())
}
