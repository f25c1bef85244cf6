package store

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-field-inspections/models"
)

func TestCacheRepository_PutMatchDelete(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := testContext()

	entry := models.CacheEntry{
		CacheName: "api-v1",
		Method:    http.MethodGet,
		URL:       "http://backend/colores",
		Status:    http.StatusOK,
		Header:    http.Header{"Content-Type": {"application/json"}},
		Body:      []byte(`[{"id":1,"name":"negro"}]`),
		StoredAt:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	static := entry
	static.CacheName = "static-v1"
	static.URL = "http://origin/index.html"

	require.NoError(t, s.Cache.PutEntries(ctx, entry, static))

	got, err := s.Cache.MatchEntry(ctx, "api-v1", http.MethodGet, "http://backend/colores")
	require.NoError(t, err)
	assert.Equal(t, entry.Body, got.Body)
	assert.Equal(t, http.StatusOK, got.Status)
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.True(t, entry.StoredAt.Equal(got.StoredAt))

	// перезапись той же записи
	entry.Body = []byte(`[]`)
	require.NoError(t, s.Cache.PutEntries(ctx, entry))
	got, err = s.Cache.MatchEntry(ctx, "api-v1", http.MethodGet, "http://backend/colores")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got.Body)

	names, err := s.Cache.CacheNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"api-v1", "static-v1"}, names)

	require.NoError(t, s.Cache.DeleteCache(ctx, "api-v1"))
	_, err = s.Cache.MatchEntry(ctx, "api-v1", http.MethodGet, "http://backend/colores")
	assert.ErrorIs(t, err, ErrCacheEntryNotFound)

	names, err = s.Cache.CacheNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"static-v1"}, names)
}

func TestCacheRepository_MatchIsMethodSpecific(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := testContext()

	require.NoError(t, s.Cache.PutEntries(ctx, models.CacheEntry{
		CacheName: "runtime-v1", Method: http.MethodGet, URL: "http://origin/app.js", Status: 200,
	}))

	_, err := s.Cache.MatchEntry(ctx, "runtime-v1", http.MethodHead, "http://origin/app.js")
	assert.ErrorIs(t, err, ErrCacheEntryNotFound)
}

func TestSyncTagRepository(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := testContext()

	has, err := s.SyncTags.HasTag(ctx, "sync-inspecciones")
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, s.SyncTags.RegisterTag(ctx, "sync-inspecciones"))
	// повторная регистрация — no-op
	require.NoError(t, s.SyncTags.RegisterTag(ctx, "sync-inspecciones"))

	has, err = s.SyncTags.HasTag(ctx, "sync-inspecciones")
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, s.SyncTags.ClearTag(ctx, "sync-inspecciones"))
	has, err = s.SyncTags.HasTag(ctx, "sync-inspecciones")
	require.NoError(t, err)
	assert.False(t, has)
}
