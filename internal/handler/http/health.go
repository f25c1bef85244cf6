package http

import (
	"net/http"

	"github.com/MKhiriev/go-field-inspections/internal/utils"
)

// health reports backend and database reachability: 200 when healthy,
// 503 otherwise. It is never cached by the field client.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	report := h.services.HealthService.Check(r.Context())

	status := http.StatusOK
	if !report.IsHealthy() {
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-store")
	utils.WriteJSON(w, report, status)
}
