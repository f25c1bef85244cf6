package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-field-inspections/internal/config"
	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/internal/utils"
	"github.com/MKhiriev/go-field-inspections/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	hashKey string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. Requests go through transport, normally the caching
// gateway; a nil transport uses the resty default.
//
// The base URL is normalised from adapterCfg.HTTPAddress. appCfg.Token, when
// set, becomes the initial bearer token. A non-empty appCfg.HashKey enables
// the HashSHA256 integrity header on every request with a body.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, transport http.RoundTripper, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(transport, adapterCfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	if appCfg.HashKey != "" {
		utils.InitHasherPool(appCfg.HashKey)
	}

	a := &httpServerAdapter{client: client, hashKey: appCfg.HashKey, logger: logger}
	a.SetToken(appCfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// CreateInspection implements [ServerAdapter]. It POSTs payload to
// POST /inspecciones and returns the id from the {success, id} response.
func (h *httpServerAdapter) CreateInspection(ctx context.Context, payload models.InspectionPayload) (int64, error) {
	req, err := h.jsonRequest(ctx, payload)
	if err != nil {
		return 0, fmt.Errorf("create inspection: %w", err)
	}

	var created models.CreateResponse
	resp, err := req.SetResult(&created).Post("/inspecciones")
	if err != nil {
		return 0, mapTransportError("create inspection request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}
	if created.ID == 0 {
		return 0, fmt.Errorf("create inspection: response carries no id")
	}

	return created.ID, nil
}

// UpdateInspection implements [ServerAdapter]. It PUTs payload to
// PUT /inspecciones/{remoteID}.
func (h *httpServerAdapter) UpdateInspection(ctx context.Context, remoteID int64, payload models.InspectionPayload) error {
	req, err := h.jsonRequest(ctx, payload)
	if err != nil {
		return fmt.Errorf("update inspection: %w", err)
	}

	resp, err := req.
		SetPathParam("id", strconv.FormatInt(remoteID, 10)).
		Put("/inspecciones/{id}")
	if err != nil {
		return mapTransportError("update inspection request", err)
	}

	return mapHTTPError(resp)
}

// SyncInspections implements [ServerAdapter]. It POSTs the records to
// POST /inspecciones/sync.
func (h *httpServerAdapter) SyncInspections(ctx context.Context, records []models.LocalInspection) ([]models.SyncResult, error) {
	if records == nil {
		records = []models.LocalInspection{}
	}

	req, err := h.jsonRequest(ctx, models.SyncRequest{Inspections: records})
	if err != nil {
		return nil, fmt.Errorf("sync inspections: %w", err)
	}

	var synced models.SyncResponse
	resp, err := req.SetResult(&synced).Post("/inspecciones/sync")
	if err != nil {
		return nil, mapTransportError("sync inspections request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return synced.Results, nil
}

// ListInspectionsByTechnician implements [ServerAdapter]. Like every List
// call it bypasses the gateway cache, see [httpServerAdapter.serverView].
func (h *httpServerAdapter) ListInspectionsByTechnician(ctx context.Context, technicianID int64) ([]models.Inspection, error) {
	var inspections []models.Inspection
	resp, err := h.serverView(ctx).
		SetPathParam("id", strconv.FormatInt(technicianID, 10)).
		SetResult(&inspections).
		Get("/inspecciones/tecnico/{id}")
	if err != nil {
		return nil, mapTransportError("list inspections request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return inspections, nil
}

// ListColors implements [ServerAdapter].
func (h *httpServerAdapter) ListColors(ctx context.Context) ([]models.Color, error) {
	var colors []models.Color
	resp, err := h.serverView(ctx).SetResult(&colors).Get("/colores")
	if err != nil {
		return nil, mapTransportError("list colors request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return colors, nil
}

// ListPosts implements [ServerAdapter].
func (h *httpServerAdapter) ListPosts(ctx context.Context, companyID int64) ([]models.Post, error) {
	var posts []models.Post
	resp, err := h.serverView(ctx).
		SetQueryParam("companyId", strconv.FormatInt(companyID, 10)).
		SetResult(&posts).
		Get("/postes")
	if err != nil {
		return nil, mapTransportError("list posts request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return posts, nil
}

// Health implements [ServerAdapter]. The request carries
// "Cache-Control: no-store" so the gateway never answers it from cache.
func (h *httpServerAdapter) Health(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Cache-Control", "no-store").
		Get("/health")
	if err != nil {
		return mapTransportError("health request", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// serverView is an authed read that must reach the backend. Offline it fails
// with [ErrNetworkUnavailable] instead of replaying a cached list.
func (h *httpServerAdapter) serverView(ctx context.Context) *resty.Request {
	return h.authedRequest(ctx).SetHeader("Cache-Control", "no-store")
}

// jsonRequest marshals body up front so the integrity hash covers exactly
// the bytes sent.
func (h *httpServerAdapter) jsonRequest(ctx context.Context, body any) (*resty.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)
	if h.hashKey != "" {
		req.SetHeader(utils.HashHeader, utils.HashHex(payload))
	}

	return req, nil
}
