package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-field-inspections/internal/app"
	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/internal/utils"
)

// withIntegrityCheck verifies that the [utils.HashHeader] header carries the
// hex HMAC-SHA256 of the raw request body. It is a no-op when no hash key is
// configured. A missing or mismatching header is answered with 400.
func (h *Handler) withIntegrityCheck(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.integrityCheck {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withIntegrityCheck").Msg("failed to read request body")
			utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		got := r.Header.Get(utils.HashHeader)
		if !utils.EqualHashHex(body, got) {
			log.Err(errIntegrityCheckFailed).Str("func", "*Handler.withIntegrityCheck").
				Str("hash from request", got).
				Int("body_size", len(body)).
				Send()
			utils.WriteError(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		log.Debug().Str("func", "*Handler.withIntegrityCheck").Msg("hashes are equal")

		next.ServeHTTP(w, r)
	})
}
