package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/models"
)

type cacheRepository struct {
	*DB
	logger *logger.Logger
}

// NewCacheRepository returns the SQLite-backed gateway cache.
func NewCacheRepository(db *DB, logger *logger.Logger) CacheRepository {
	return &cacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (c *cacheRepository) PutEntries(ctx context.Context, entries ...models.CacheEntry) error {
	log := logger.FromContext(ctx)

	err := c.withTx(ctx, func(tx *sql.Tx) error {
		for _, entry := range entries {
			header, err := json.Marshal(entry.Header)
			if err != nil {
				return fmt.Errorf("error encoding cached header: %w", err)
			}
			if entry.StoredAt.IsZero() {
				entry.StoredAt = time.Now().UTC()
			}

			query, args, err := buildPutCacheEntryQuery(ctx, entry, string(header))
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return c.wrapError(ErrExecutingStatement, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "cacheRepository.PutEntries").Int("count", len(entries)).Msg("failed to store cache entries")
		return err
	}

	return nil
}

func (c *cacheRepository) MatchEntry(ctx context.Context, cacheName, method, url string) (models.CacheEntry, error) {
	query, args, err := buildMatchCacheEntryQuery(ctx, cacheName, method, url)
	if err != nil {
		return models.CacheEntry{}, err
	}

	var entry models.CacheEntry
	var header string
	err = c.DB.QueryRowContext(ctx, query, args...).
		Scan(&entry.CacheName, &entry.Method, &entry.URL, &entry.Status, &header, &entry.Body, &entry.StoredAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CacheEntry{}, ErrCacheEntryNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "cacheRepository.MatchEntry").
			Str("cache", cacheName).
			Str("url", url).
			Msg("failed to read cache entry")
		return models.CacheEntry{}, c.wrapError(ErrScanningRow, err)
	}

	entry.Header = make(http.Header)
	if err := json.Unmarshal([]byte(header), &entry.Header); err != nil {
		return models.CacheEntry{}, fmt.Errorf("error decoding cached header: %w", err)
	}

	return entry, nil
}

func (c *cacheRepository) CacheNames(ctx context.Context) ([]string, error) {
	query, args, err := buildCacheNamesQuery(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, c.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	names := make([]string, 0, 4)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, c.wrapError(ErrScanningRows, err)
	}

	return names, nil
}

func (c *cacheRepository) DeleteCache(ctx context.Context, cacheName string) error {
	query, args, err := buildDeleteCacheQuery(ctx, cacheName)
	if err != nil {
		return err
	}

	if _, err := c.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "cacheRepository.DeleteCache").
			Str("cache", cacheName).
			Msg("failed to delete cache")
		return c.wrapError(ErrExecutingStatement, err)
	}

	return nil
}

type syncTagRepository struct {
	*DB
	logger *logger.Logger
}

func NewSyncTagRepository(db *DB, logger *logger.Logger) SyncTagRepository {
	return &syncTagRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *syncTagRepository) RegisterTag(ctx context.Context, tag string) error {
	query, args, err := buildRegisterTagQuery(ctx, tag, time.Now().UTC())
	if err != nil {
		return err
	}

	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncTagRepository.RegisterTag").
			Str("tag", tag).
			Msg("failed to register sync tag")
		return s.wrapError(ErrExecutingStatement, err)
	}

	return nil
}

func (s *syncTagRepository) HasTag(ctx context.Context, tag string) (bool, error) {
	query, args, err := buildHasTagQuery(ctx, tag)
	if err != nil {
		return false, err
	}

	var count int
	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, s.wrapError(ErrScanningRow, err)
	}

	return count > 0, nil
}

func (s *syncTagRepository) ClearTag(ctx context.Context, tag string) error {
	query, args, err := buildClearTagQuery(ctx, tag)
	if err != nil {
		return err
	}

	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		return s.wrapError(ErrExecutingStatement, err)
	}

	return nil
}
