package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestWithCORS(t *testing.T) {
	tests := []struct {
		name        string
		allowed     []string
		origin      string
		method      string
		wantOrigin  string
		wantStatus  int
		wantNextHit bool
	}{
		{name: "no config", origin: "https://app.example.com", method: http.MethodGet, wantStatus: http.StatusOK, wantNextHit: true},
		{name: "no origin header", allowed: []string{"https://app.example.com"}, method: http.MethodGet, wantStatus: http.StatusOK, wantNextHit: true},
		{name: "allowed origin", allowed: []string{"https://app.example.com"}, origin: "https://app.example.com", method: http.MethodGet, wantOrigin: "https://app.example.com", wantStatus: http.StatusOK, wantNextHit: true},
		{name: "wildcard", allowed: []string{"*"}, origin: "http://localhost:5173", method: http.MethodGet, wantOrigin: "http://localhost:5173", wantStatus: http.StatusOK, wantNextHit: true},
		{name: "foreign origin", allowed: []string{"https://app.example.com"}, origin: "https://evil.example.com", method: http.MethodGet, wantStatus: http.StatusOK, wantNextHit: true},
		{name: "preflight", allowed: []string{"https://app.example.com"}, origin: "https://app.example.com", method: http.MethodOptions, wantOrigin: "https://app.example.com", wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop(), allowedOrigins: tt.allowed}

			hit := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				hit = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/inspecciones", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rr := httptest.NewRecorder()
			h.withCORS(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNextHit, hit)
			assert.Equal(t, tt.wantOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
			if tt.wantOrigin != "" {
				assert.Contains(t, rr.Header().Get("Access-Control-Allow-Headers"), "HashSHA256")
				assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
			}
		})
	}
}
