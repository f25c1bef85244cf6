package gateway

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/go-field-inspections/internal/config"
	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/internal/store"
	"github.com/MKhiriev/go-field-inspections/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── test doubles ─────────────────────────────────────────────────────────────

type memoryCache struct {
	mu      sync.Mutex
	entries map[string]models.CacheEntry
	putErr  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]models.CacheEntry)}
}

func memoryKey(cacheName, method, url string) string {
	return cacheName + "|" + method + "|" + url
}

func (m *memoryCache) PutEntries(_ context.Context, entries ...models.CacheEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.putErr != nil {
		return m.putErr
	}
	for _, e := range entries {
		m.entries[memoryKey(e.CacheName, e.Method, e.URL)] = e
	}
	return nil
}

func (m *memoryCache) MatchEntry(_ context.Context, cacheName, method, url string) (models.CacheEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[memoryKey(cacheName, method, url)]
	if !ok {
		return models.CacheEntry{}, store.ErrCacheEntryNotFound
	}
	return e, nil
}

func (m *memoryCache) CacheNames(context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	seen := map[string]struct{}{}
	for _, e := range m.entries {
		seen[e.CacheName] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func (m *memoryCache) DeleteCache(_ context.Context, cacheName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, e := range m.entries {
		if e.CacheName == cacheName {
			delete(m.entries, k)
		}
	}
	return nil
}

func (m *memoryCache) count(cacheName string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.entries {
		if e.CacheName == cacheName {
			n++
		}
	}
	return n
}

// switchTransport forwards to the default transport until it is taken offline.
type switchTransport struct {
	offline atomic.Bool
	calls   atomic.Int32
}

var errNetworkDown = errors.New("network is down")

func (s *switchTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	s.calls.Add(1)
	if s.offline.Load() {
		return nil, errNetworkDown
	}
	return http.DefaultTransport.RoundTrip(req)
}

// ── fixtures ─────────────────────────────────────────────────────────────────

type fixture struct {
	gw         *Gateway
	noManifest *atomic.Bool
	cache      *memoryCache
	transport  *switchTransport
	origin     *httptest.Server
	backend    *httptest.Server
}

func newFixture(t *testing.T, version string) *fixture {
	t.Helper()

	noManifest := &atomic.Bool{}
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if noManifest.Load() && r.URL.Path == "/manifest.json" {
			http.NotFound(w, r)
			return
		}
		switch r.URL.Path {
		case "/", "/index.html":
			w.Header().Set("Content-Type", "text/html")
			_, _ = io.WriteString(w, "<html>shell</html>")
		case "/manifest.json":
			w.Header().Set("Content-Type", "application/manifest+json")
			_, _ = io.WriteString(w, `{"name":"inspecciones"}`)
		case "/app.js":
			_, _ = io.WriteString(w, "console.log('app')")
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(origin.Close)

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/colores":
			_, _ = io.WriteString(w, `[{"id":1,"name":"negro"}]`)
		case r.Method == http.MethodPost && r.URL.Path == "/inspecciones":
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"success":true,"id":5}`)
		case r.URL.Path == "/health":
			_, _ = io.WriteString(w, `{"status":"healthy"}`)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	t.Cleanup(backend.Close)

	cache := newMemoryCache()
	transport := &switchTransport{}

	gw, err := NewGateway(config.ClientGateway{Version: version, Origin: origin.URL}, backend.URL, cache, transport, logger.Nop())
	require.NoError(t, err)

	return &fixture{gw: gw, noManifest: noManifest, cache: cache, transport: transport, origin: origin, backend: backend}
}

func (f *fixture) get(t *testing.T, url string, header http.Header) *http.Response {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	require.NoError(t, err)
	for k, v := range header {
		req.Header[k] = v
	}
	resp, err := f.gw.RoundTrip(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func installed(t *testing.T, version string) *fixture {
	t.Helper()
	f := newFixture(t, version)
	require.NoError(t, f.gw.Install(context.Background()))
	return f
}

// ── constructor ──────────────────────────────────────────────────────────────

func TestNewGateway(t *testing.T) {
	gw, err := NewGateway(config.ClientGateway{}, "localhost:4000", newMemoryCache(), nil, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "v1", gw.Version())
	assert.Equal(t, Partitions{Static: "static-v1", Runtime: "runtime-v1", API: "api-v1"}, gw.Partitions())
	assert.Equal(t, "http://localhost:4000", gw.Origin().String())
	assert.Equal(t, StateNew, gw.State())
	assert.False(t, gw.Controlling())

	_, err = NewGateway(config.ClientGateway{}, "", newMemoryCache(), nil, logger.Nop())
	assert.Error(t, err)

	_, err = NewGateway(config.ClientGateway{Origin: "http://"}, "localhost:4000", newMemoryCache(), nil, logger.Nop())
	assert.Error(t, err)
}

// ── lifecycle ────────────────────────────────────────────────────────────────

func TestInstall_PrecachesShellAndActivates(t *testing.T) {
	f := installed(t, "v2")

	assert.Equal(t, StateActivated, f.gw.State())
	assert.True(t, f.gw.Controlling())
	assert.Equal(t, len(ShellPaths), f.cache.count("static-v2"))

	entry, err := f.cache.MatchEntry(context.Background(), "static-v2", http.MethodGet, f.origin.URL+"/index.html")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, entry.Status)
	assert.Equal(t, "<html>shell</html>", string(entry.Body))
}

func TestInstall_AllOrNothing(t *testing.T) {
	f := newFixture(t, "v1")
	f.noManifest.Store(true)

	err := f.gw.Install(context.Background())
	require.ErrorIs(t, err, ErrInstallFailed)

	assert.Zero(t, f.cache.count("static-v1"))
	assert.Equal(t, StateNew, f.gw.State())
	assert.False(t, f.gw.Controlling())
}

func TestInstall_NetworkDown(t *testing.T) {
	f := newFixture(t, "v1")
	f.transport.offline.Store(true)

	err := f.gw.Install(context.Background())
	require.ErrorIs(t, err, ErrInstallFailed)
	assert.ErrorIs(t, err, errNetworkDown)
	assert.Zero(t, f.cache.count("static-v1"))
}

func TestActivate_DeletesStalePartitions(t *testing.T) {
	f := newFixture(t, "v2")
	ctx := context.Background()

	require.NoError(t, f.cache.PutEntries(ctx,
		models.CacheEntry{CacheName: "static-v1", Method: http.MethodGet, URL: "http://x/"},
		models.CacheEntry{CacheName: "api-v1", Method: http.MethodGet, URL: "http://x/colores"},
		models.CacheEntry{CacheName: "runtime-v2", Method: http.MethodGet, URL: "http://x/app.js"},
	))

	require.NoError(t, f.gw.Install(ctx))

	names, err := f.cache.CacheNames(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"runtime-v2", "static-v2"}, names)
}

func TestActivate_NotInstalled(t *testing.T) {
	f := newFixture(t, "v1")
	assert.ErrorIs(t, f.gw.Activate(context.Background()), ErrNotInstalled)
}

func TestHandleMessage(t *testing.T) {
	f := installed(t, "v1")
	ctx := context.Background()

	// уже активирован: SKIP_WAITING ничего не делает
	require.NoError(t, f.gw.HandleMessage(ctx, ControlMessage{Type: MessageSkipWaiting}))
	assert.Equal(t, StateActivated, f.gw.State())

	err := f.gw.HandleMessage(ctx, ControlMessage{Type: "CLAIM"})
	assert.ErrorIs(t, err, ErrUnknownControlMessage)
}

func TestHandleMessage_PromotesWaitingVersion(t *testing.T) {
	f := newFixture(t, "v1")
	f.gw.state = StateWaiting

	require.NoError(t, f.gw.HandleMessage(context.Background(), ControlMessage{Type: "skip_waiting"}))
	assert.Equal(t, StateActivated, f.gw.State())
	assert.True(t, f.gw.Controlling())
}

// ── interception ─────────────────────────────────────────────────────────────

func TestRoundTrip_NotControllingPassesThrough(t *testing.T) {
	f := newFixture(t, "v1")

	resp := f.get(t, f.backend.URL+"/colores", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, f.cache.count("api-v1"))
}

func TestRoundTrip_NonGETNeverCached(t *testing.T) {
	f := installed(t, "v1")

	req, err := http.NewRequest(http.MethodPost, f.backend.URL+"/inspecciones", strings.NewReader(`{}`))
	require.NoError(t, err)
	resp, err := f.gw.RoundTrip(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	for _, name := range f.gw.Partitions().Names() {
		_, err = f.cache.MatchEntry(context.Background(), name, http.MethodPost, f.backend.URL+"/inspecciones")
		assert.ErrorIs(t, err, store.ErrCacheEntryNotFound, name)
	}
	assert.Zero(t, f.cache.count("api-v1"))
}

func TestRoundTrip_NonGETOffline(t *testing.T) {
	f := installed(t, "v1")
	f.transport.offline.Store(true)

	req, err := http.NewRequest(http.MethodPut, f.backend.URL+"/inspecciones/3", strings.NewReader(`{}`))
	require.NoError(t, err)
	_, err = f.gw.RoundTrip(req)
	assert.ErrorIs(t, err, errNetworkDown)
}

func TestRoundTrip_APINetworkFirst(t *testing.T) {
	f := installed(t, "v1")

	resp := f.get(t, f.backend.URL+"/colores", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `[{"id":1,"name":"negro"}]`, readBody(t, resp))
	assert.Empty(t, resp.Header.Get(HeaderCache))
	assert.Equal(t, 1, f.cache.count("api-v1"))

	f.transport.offline.Store(true)

	cached := f.get(t, f.backend.URL+"/colores", nil)
	assert.Equal(t, http.StatusOK, cached.StatusCode)
	assert.Equal(t, "api-v1", cached.Header.Get(HeaderCache))
	assert.Equal(t, `[{"id":1,"name":"negro"}]`, readBody(t, cached))
}

func TestRoundTrip_APIErrorStatusNotCached(t *testing.T) {
	f := installed(t, "v1")

	resp := f.get(t, f.backend.URL+"/inspecciones/tecnico/1", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Zero(t, f.cache.count("api-v1"))
}

func TestRoundTrip_APIOfflineWithoutCache(t *testing.T) {
	f := installed(t, "v1")
	f.transport.offline.Store(true)

	resp := f.get(t, f.backend.URL+"/inspecciones/tecnico/1", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "1", resp.Header.Get(HeaderOffline))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.JSONEq(t,
		`{"error":"offline","message":"`+offlineMessage+`","url":"`+f.backend.URL+`/inspecciones/tecnico/1"}`,
		readBody(t, resp))
}

func TestRoundTrip_APINoStoreBypassesCache(t *testing.T) {
	f := installed(t, "v1")
	noStore := http.Header{"Cache-Control": {"no-store"}}

	resp := f.get(t, f.backend.URL+"/health", noStore)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, f.cache.count("api-v1"))

	// обычный запрос кэшируется, но no-store его не видит
	f.get(t, f.backend.URL+"/health", nil)
	assert.Equal(t, 1, f.cache.count("api-v1"))

	f.transport.offline.Store(true)
	offline := f.get(t, f.backend.URL+"/health", noStore)
	assert.Equal(t, http.StatusServiceUnavailable, offline.StatusCode)
	assert.Equal(t, "1", offline.Header.Get(HeaderOffline))
}

func TestRoundTrip_StaticCacheFirst(t *testing.T) {
	f := installed(t, "v1")
	url := f.origin.URL + "/app.js"

	first := f.get(t, url, nil)
	assert.Equal(t, http.StatusOK, first.StatusCode)
	assert.Equal(t, "console.log('app')", readBody(t, first))
	assert.Equal(t, 1, f.cache.count("runtime-v1"))

	f.transport.offline.Store(true)
	calls := f.transport.calls.Load()

	second := f.get(t, url, nil)
	assert.Equal(t, http.StatusOK, second.StatusCode)
	assert.Equal(t, "runtime-v1", second.Header.Get(HeaderCache))
	assert.Equal(t, "console.log('app')", readBody(t, second))
	assert.Equal(t, calls, f.transport.calls.Load(), "cache hit must not touch the network")
}

func TestRoundTrip_StaticServedFromPrecache(t *testing.T) {
	f := installed(t, "v1")
	f.transport.offline.Store(true)

	resp := f.get(t, f.origin.URL+"/manifest.json", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "static-v1", resp.Header.Get(HeaderCache))
}

func TestRoundTrip_StaticNotFoundNotCached(t *testing.T) {
	f := installed(t, "v1")

	resp := f.get(t, f.origin.URL+"/missing.css", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Zero(t, f.cache.count("runtime-v1"))
}

func TestRoundTrip_DocumentFallsBackToShell(t *testing.T) {
	f := installed(t, "v1")
	f.transport.offline.Store(true)

	resp := f.get(t, f.origin.URL+"/inspecciones-de-hoy", http.Header{"Accept": {"text/html"}})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "<html>shell</html>", readBody(t, resp))
	assert.Equal(t, "static-v1", resp.Header.Get(HeaderCache))
}

func TestRoundTrip_StaticAssetOfflineWithoutCache(t *testing.T) {
	f := installed(t, "v1")
	f.transport.offline.Store(true)

	req, err := http.NewRequest(http.MethodGet, f.origin.URL+"/logo.png", nil)
	require.NoError(t, err)
	_, err = f.gw.RoundTrip(req)
	assert.ErrorIs(t, err, errNetworkDown)
}

func TestRoundTrip_CachePutFailureStillServes(t *testing.T) {
	f := installed(t, "v1")
	f.cache.putErr = store.ErrStorageUnavailable

	resp := f.get(t, f.backend.URL+"/colores", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `[{"id":1,"name":"negro"}]`, readBody(t, resp))
}

func TestPut_RejectsNonGET(t *testing.T) {
	f := newFixture(t, "v1")

	req := httptest.NewRequest(http.MethodPost, "http://x/inspecciones", nil)
	resp := &http.Response{StatusCode: http.StatusOK, Header: http.Header{}, Body: io.NopCloser(strings.NewReader("{}"))}

	assert.ErrorIs(t, f.gw.Put(req, resp, "api-v1"), ErrNotCacheable)
	assert.Zero(t, f.cache.count("api-v1"))
}
