// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-field-inspections/internal/config"
	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/internal/store"
)

const defaultVersion = "v1"

// ShellPaths are the application shell documents precached on install.
var ShellPaths = []string{"/", "/index.html", "/manifest.json"}

// DefaultAPIPrefixes are the backend route prefixes used when the
// configuration names none.
var DefaultAPIPrefixes = []string{"/inspecciones", "/colores", "/postes", "/health"}

// Partitions are the cache names owned by one gateway version.
type Partitions struct {
	Static  string
	Runtime string
	API     string
}

// Names returns the partition names in a fixed order.
func (p Partitions) Names() []string {
	return []string{p.Static, p.Runtime, p.API}
}

func partitionsFor(version string) Partitions {
	return Partitions{
		Static:  "static-" + version,
		Runtime: "runtime-" + version,
		API:     "api-" + version,
	}
}

// Gateway is a caching [http.RoundTripper].
type Gateway struct {
	mu          sync.RWMutex
	state       State
	controlling bool

	version     string
	partitions  Partitions
	origin      *url.URL
	backend     *url.URL
	apiPrefixes []string

	cache store.CacheRepository
	next  http.RoundTripper

	logger *logger.Logger
	now    func() time.Time
}

// NewGateway constructs a gateway for cfg. backendAddress is the address of
// the inspection backend; requests to its host are API calls. next performs
// the real network round trips and defaults to [http.DefaultTransport].
func NewGateway(cfg config.ClientGateway, backendAddress string, cache store.CacheRepository, next http.RoundTripper, logger *logger.Logger) (*Gateway, error) {
	backend, err := parseAddress(backendAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid backend address: %w", err)
	}

	origin := backend
	if cfg.Origin != "" {
		if origin, err = parseAddress(cfg.Origin); err != nil {
			return nil, fmt.Errorf("invalid gateway origin: %w", err)
		}
	}

	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		version = defaultVersion
	}

	prefixes := cfg.APIPrefixes
	if len(prefixes) == 0 {
		prefixes = DefaultAPIPrefixes
	}

	if next == nil {
		next = http.DefaultTransport
	}

	logger.Debug().Str("func", "gateway.NewGateway").Str("version", version).Msg("gateway initialized")

	return &Gateway{
		state:       StateNew,
		version:     version,
		partitions:  partitionsFor(version),
		origin:      origin,
		backend:     backend,
		apiPrefixes: prefixes,
		cache:       cache,
		next:        next,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}, nil
}

func parseAddress(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("empty address")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Host == "" {
		return nil, errors.New("address must include host")
	}

	u.Path = strings.TrimRight(u.Path, "/")
	return u, nil
}

// Version returns the configured deployment version.
func (g *Gateway) Version() string {
	return g.version
}

// Partitions returns the cache names of the current version.
func (g *Gateway) Partitions() Partitions {
	return g.partitions
}

// Origin returns the address the application shell is served from.
func (g *Gateway) Origin() *url.URL {
	u := *g.origin
	return &u
}

// Backend returns the address of the inspection backend.
func (g *Gateway) Backend() *url.URL {
	u := *g.backend
	return &u
}

// RoundTrip implements [http.RoundTripper].
func (g *Gateway) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet || !g.Controlling() {
		return g.next.RoundTrip(req)
	}

	switch g.Classify(req) {
	case ClassAPI:
		return g.networkFirst(req)
	case ClassStatic:
		return g.cacheFirst(req)
	default:
		return g.next.RoundTrip(req)
	}
}

func (g *Gateway) networkFirst(req *http.Request) (*http.Response, error) {
	log := g.logger.With().Str("func", "Gateway.networkFirst").Str("url", req.URL.String()).Logger()
	noStore := hasNoStore(req.Header)

	resp, err := g.next.RoundTrip(req)
	if err == nil {
		if !noStore && isSuccess(resp.StatusCode) && !hasNoStore(resp.Header) {
			if putErr := g.put(req, resp, g.partitions.API); putErr != nil {
				log.Warn().Err(putErr).Msg("failed to cache api response")
			}
		}
		return resp, nil
	}

	log.Debug().Err(err).Msg("network unavailable, falling back to cache")

	if !noStore {
		if cached, ok := g.match(req, g.partitions.API, cacheKey(req.URL)); ok {
			return cached, nil
		}
	}

	return offlineResponse(req), nil
}

func (g *Gateway) cacheFirst(req *http.Request) (*http.Response, error) {
	log := g.logger.With().Str("func", "Gateway.cacheFirst").Str("url", req.URL.String()).Logger()
	key := cacheKey(req.URL)

	for _, name := range []string{g.partitions.Static, g.partitions.Runtime} {
		if cached, ok := g.match(req, name, key); ok {
			return cached, nil
		}
	}

	resp, err := g.next.RoundTrip(req)
	if err == nil {
		if isSuccess(resp.StatusCode) && g.isTransparent(req, resp) && !hasNoStore(resp.Header) {
			if putErr := g.put(req, resp, g.partitions.Runtime); putErr != nil {
				log.Warn().Err(putErr).Msg("failed to cache static response")
			}
		}
		return resp, nil
	}

	if isDocument(req) {
		for _, path := range []string{"/", "/index.html"} {
			if cached, ok := g.match(req, g.partitions.Static, g.originURL(path)); ok {
				log.Debug().Err(err).Str("shell", path).Msg("serving cached shell document")
				return cached, nil
			}
		}
	}

	return nil, err
}

// Put stores resp as the cached answer to req in cacheName. The response
// body is buffered and replaced so that resp stays readable.
func (g *Gateway) Put(req *http.Request, resp *http.Response, cacheName string) error {
	return g.put(req, resp, cacheName)
}

func (g *Gateway) put(req *http.Request, resp *http.Response, cacheName string) error {
	if req.Method != http.MethodGet {
		return ErrNotCacheable
	}

	entry, err := entryFromResponse(cacheName, req, resp, g.now())
	if err != nil {
		return err
	}

	return g.cache.PutEntries(req.Context(), entry)
}

func (g *Gateway) match(req *http.Request, cacheName, key string) (*http.Response, bool) {
	entry, err := g.cache.MatchEntry(req.Context(), cacheName, http.MethodGet, key)
	if err != nil {
		if !errors.Is(err, store.ErrCacheEntryNotFound) {
			g.logger.Warn().Err(err).Str("func", "Gateway.match").Str("cache", cacheName).Msg("cache lookup failed")
		}
		return nil, false
	}

	return responseFromEntry(entry, req), true
}

// isTransparent reports whether the client may read resp. Cross-origin
// responses without a CORS grant stay opaque and are not cached.
func (g *Gateway) isTransparent(req *http.Request, resp *http.Response) bool {
	if sameHost(req.URL, g.origin) {
		return true
	}
	return resp.Header.Get("Access-Control-Allow-Origin") != ""
}

func (g *Gateway) originURL(path string) string {
	u := *g.origin
	u.Path = g.origin.Path + path
	u.RawQuery = ""
	return cacheKey(&u)
}

func cacheKey(u *url.URL) string {
	k := *u
	k.Fragment = ""
	k.RawFragment = ""
	return k.String()
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func hasNoStore(h http.Header) bool {
	return strings.Contains(strings.ToLower(h.Get("Cache-Control")), "no-store")
}
