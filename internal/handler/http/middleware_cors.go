package http

import (
	"net/http"
	"slices"
)

// withCORS answers browser origins listed in the server configuration. If no
// allowed origins are configured, it passes through without setting headers.
// Preflight requests from an allowed origin end here with 204.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if len(h.allowedOrigins) == 0 || origin == "" {
			next.ServeHTTP(w, r)
			return
		}

		if !slices.Contains(h.allowedOrigins, origin) && !slices.Contains(h.allowedOrigins, "*") {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Content-Encoding, HashSHA256, X-Trace-ID")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Expose-Headers", "X-Trace-ID")
		w.Header().Add("Vary", "Origin")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
