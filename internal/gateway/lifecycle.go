package gateway

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/go-field-inspections/models"
)

// State is the lifecycle state of a gateway version.
type State int

const (
	StateNew State = iota
	StateInstalling
	StateWaiting
	StateActivated
)

func (s State) String() string {
	switch s {
	case StateInstalling:
		return "installing"
	case StateWaiting:
		return "waiting"
	case StateActivated:
		return "activated"
	}
	return "new"
}

// Control message types accepted by HandleMessage.
const (
	MessageSkipWaiting = "SKIP_WAITING"
)

// ControlMessage is a message posted to the gateway by the shell.
type ControlMessage struct {
	Type string `json:"type"`
}

// State returns the current lifecycle state.
func (g *Gateway) State() State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// Controlling reports whether the gateway intercepts requests.
func (g *Gateway) Controlling() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.controlling
}

// Install precaches the application shell into the static partition. Either
// every shell document is stored or none is. A successful install skips the
// waiting phase and activates the version right away.
func (g *Gateway) Install(ctx context.Context) error {
	log := g.logger.With().Str("func", "Gateway.Install").Str("version", g.version).Logger()

	g.mu.Lock()
	prev := g.state
	g.state = StateInstalling
	g.mu.Unlock()

	entries, err := g.fetchShell(ctx)
	if err == nil {
		err = g.cache.PutEntries(ctx, entries...)
	}
	if err != nil {
		g.mu.Lock()
		g.state = prev
		g.mu.Unlock()

		log.Err(err).Msg("failed to precache application shell")
		return fmt.Errorf("%w: %w", ErrInstallFailed, err)
	}

	g.mu.Lock()
	g.state = StateWaiting
	g.mu.Unlock()

	log.Info().Int("entries", len(entries)).Msg("application shell precached")

	return g.skipWaiting(ctx)
}

func (g *Gateway) fetchShell(ctx context.Context) ([]models.CacheEntry, error) {
	entries := make([]models.CacheEntry, 0, len(ShellPaths))

	for _, p := range ShellPaths {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.originURL(p), nil)
		if err != nil {
			return nil, err
		}

		resp, err := g.next.RoundTrip(req)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", p, err)
		}
		if !isSuccess(resp.StatusCode) {
			resp.Body.Close()
			return nil, fmt.Errorf("fetch %s: unexpected status %d", p, resp.StatusCode)
		}

		entry, err := entryFromResponse(g.partitions.Static, req, resp, g.now())
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", p, err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Activate removes every cache partition that does not belong to the current
// version and takes control of request interception.
func (g *Gateway) Activate(ctx context.Context) error {
	log := g.logger.With().Str("func", "Gateway.Activate").Str("version", g.version).Logger()

	if g.State() == StateNew {
		return ErrNotInstalled
	}

	names, err := g.cache.CacheNames(ctx)
	if err != nil {
		log.Err(err).Msg("failed to list cache partitions")
		return fmt.Errorf("list cache partitions: %w", err)
	}

	current := g.partitions.Names()
	for _, name := range names {
		if slices.Contains(current, name) {
			continue
		}
		if err = g.cache.DeleteCache(ctx, name); err != nil {
			log.Err(err).Str("cache", name).Msg("failed to delete stale cache partition")
			return fmt.Errorf("delete cache partition %s: %w", name, err)
		}
		log.Info().Str("cache", name).Msg("stale cache partition deleted")
	}

	g.mu.Lock()
	g.state = StateActivated
	g.controlling = true
	g.mu.Unlock()

	log.Info().Msg("gateway activated")
	return nil
}

// HandleMessage processes a control message posted by the shell.
func (g *Gateway) HandleMessage(ctx context.Context, msg ControlMessage) error {
	switch strings.ToUpper(strings.TrimSpace(msg.Type)) {
	case MessageSkipWaiting:
		return g.skipWaiting(ctx)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownControlMessage, msg.Type)
	}
}

// skipWaiting promotes a waiting version. It is a no-op in any other state.
func (g *Gateway) skipWaiting(ctx context.Context) error {
	if g.State() != StateWaiting {
		return nil
	}
	return g.Activate(ctx)
}
