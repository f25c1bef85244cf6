package gateway

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httputil"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Status is the body of GET /__gateway/status.
type Status struct {
	Version     string   `json:"version"`
	State       string   `json:"state"`
	Controlling bool     `json:"controlling"`
	Caches      []string `json:"caches"`
}

// NewProxy returns the local handler that serves the PWA shell through g.
// API paths are forwarded to the backend, everything else to the shell
// origin. Control messages are accepted on POST /__gateway/message. Each of
// routes is mounted under /__gateway as well.
func NewProxy(g *Gateway, routes ...func(chi.Router)) http.Handler {
	proxy := &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			target := g.origin
			if g.hasAPIPrefix(r.In.URL.Path) {
				target = g.backend
			}
			r.SetURL(target)
			r.SetXForwarded()
		},
		Transport: g,
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			g.logger.Warn().Err(err).Str("func", "gateway.NewProxy").Str("url", r.URL.String()).Msg("upstream unavailable")
			w.WriteHeader(http.StatusBadGateway)
		},
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Route("/__gateway", func(r chi.Router) {
		r.Post("/message", g.serveMessage)
		r.Get("/status", g.serveStatus)
		for _, mount := range routes {
			mount(r)
		}
	})
	router.Handle("/*", proxy)

	return router
}

func (g *Gateway) serveMessage(w http.ResponseWriter, r *http.Request) {
	var msg ControlMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid control message"})
		return
	}

	err := g.HandleMessage(r.Context(), msg)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, ErrUnknownControlMessage):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		g.logger.Err(err).Str("func", "Gateway.serveMessage").Msg("control message failed")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func (g *Gateway) serveStatus(w http.ResponseWriter, r *http.Request) {
	names, err := g.cache.CacheNames(r.Context())
	if err != nil {
		g.logger.Err(err).Str("func", "Gateway.serveStatus").Msg("failed to list cache partitions")
		names = []string{}
	}

	writeJSON(w, http.StatusOK, Status{
		Version:     g.version,
		State:       g.State().String(),
		Controlling: g.Controlling(),
		Caches:      names,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
