package client

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-field-inspections/internal/adapter"
	"github.com/MKhiriev/go-field-inspections/internal/app"
	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/internal/service"
	"github.com/MKhiriev/go-field-inspections/internal/store"
	"github.com/MKhiriev/go-field-inspections/internal/utils"
	"github.com/MKhiriev/go-field-inspections/models"
	"github.com/go-chi/chi/v5"
)

// maxPhotoSize caps the body of a photo upload.
const maxPhotoSize = 10 << 20

// localErrorStatus is checked in order; the first match wins.
var localErrorStatus = []struct {
	err    error
	status int
}{
	{service.ErrSyncInProgress, http.StatusConflict},
	{adapter.ErrNetworkUnavailable, http.StatusServiceUnavailable},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{store.ErrInspectionNotFound, http.StatusNotFound},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{store.ErrStorageUnavailable, http.StatusServiceUnavailable},
}

func localStatus(err error) int {
	for _, e := range localErrorStatus {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

type localHandler struct {
	services *service.ClientServices
	logger   *logger.Logger
}

// LocalRoutes exposes the offline write path and the manual sync passes to
// the PWA shell. Mount it with gateway.NewProxy, which places the routes
// under /__gateway:
//
//	POST /inspecciones              record
//	GET  /inspecciones/pendientes   list pending records
//	GET  /inspecciones/{id}         get by local id
//	PUT  /inspecciones/{id}         edit
//	POST /inspecciones/{id}/fotos   attach photo (raw body)
//	POST /sync                      bulk reconciliation
//	POST /sync/pendientes           one-by-one drain
//
// A write that is stored locally but rejected by the backend answers 202
// with the pending record.
func LocalRoutes(services *service.ClientServices, logger *logger.Logger) func(chi.Router) {
	h := &localHandler{services: services, logger: logger}

	return func(r chi.Router) {
		r.Route("/inspecciones", func(r chi.Router) {
			r.Post("/", h.record)
			r.Get("/pendientes", h.listPending)
			r.Get("/{id}", h.get)
			r.Put("/{id}", h.edit)
			r.Post("/{id}/fotos", h.attachPhoto)
		})
		r.Post("/sync", h.syncNow)
		r.Post("/sync/pendientes", h.drain)
	}
}

func (h *localHandler) record(w http.ResponseWriter, r *http.Request) {
	var payload models.InspectionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	rec, err := h.services.InspectionService.Record(r.Context(), payload)
	h.writeRecord(w, "localHandler.record", rec, err, http.StatusCreated, app.MsgCreateInspectionFailed)
}

func (h *localHandler) edit(w http.ResponseWriter, r *http.Request) {
	id, ok := localID(r)
	if !ok {
		utils.WriteError(w, app.MsgInvalidInspectionID, http.StatusBadRequest)
		return
	}

	var payload models.InspectionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	rec, err := h.services.InspectionService.Edit(r.Context(), id, payload)
	h.writeRecord(w, "localHandler.edit", rec, err, http.StatusOK, app.MsgUpdateInspectionFailed)
}

func (h *localHandler) attachPhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := localID(r)
	if !ok {
		utils.WriteError(w, app.MsgInvalidInspectionID, http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPhotoSize))
	if err != nil || len(data) == 0 {
		utils.WriteError(w, app.MsgPhotoRequired, http.StatusBadRequest)
		return
	}

	rec, err := h.services.InspectionService.AttachPhoto(r.Context(), id, data)
	h.writeRecord(w, "localHandler.attachPhoto", rec, err, http.StatusOK, app.MsgUpdateInspectionFailed)
}

func (h *localHandler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := localID(r)
	if !ok {
		utils.WriteError(w, app.MsgInvalidInspectionID, http.StatusBadRequest)
		return
	}

	rec, err := h.services.InspectionService.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, "localHandler.get", err, app.MsgGetInspectionFailed)
		return
	}

	utils.WriteJSON(w, rec, http.StatusOK)
}

func (h *localHandler) listPending(w http.ResponseWriter, r *http.Request) {
	pending, err := h.services.InspectionService.ListPending(r.Context())
	if err != nil {
		h.writeError(w, "localHandler.listPending", err, app.MsgListInspectionsFailed)
		return
	}
	if pending == nil {
		pending = []models.LocalInspection{}
	}

	utils.WriteJSON(w, pending, http.StatusOK)
}

func (h *localHandler) syncNow(w http.ResponseWriter, r *http.Request) {
	report, err := h.services.SyncService.SyncNow(r.Context())
	h.writeReport(w, "localHandler.syncNow", report, err)
}

func (h *localHandler) drain(w http.ResponseWriter, r *http.Request) {
	report, err := h.services.SyncService.DrainPending(r.Context())
	h.writeReport(w, "localHandler.drain", report, err)
}

// writeRecord answers a write. A record that has a local id was stored even
// when err is set.
func (h *localHandler) writeRecord(w http.ResponseWriter, fn string, rec models.LocalInspection, err error, status int, fallback string) {
	switch {
	case err == nil:
		utils.WriteJSON(w, rec, status)
	case rec.LocalID > 0:
		h.logger.Warn().Err(err).Str("func", fn).Int64("local_id", rec.LocalID).Msg("stored locally, submission rejected")
		utils.WriteJSON(w, rec, http.StatusAccepted)
	default:
		h.writeError(w, fn, err, fallback)
	}
}

func (h *localHandler) writeReport(w http.ResponseWriter, fn string, report models.DrainReport, err error) {
	if err != nil {
		h.writeError(w, fn, err, app.MsgSyncFailed)
		return
	}
	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *localHandler) writeError(w http.ResponseWriter, fn string, err error, fallback string) {
	status := localStatus(err)

	msg := fallback
	switch {
	case errors.Is(err, service.ErrSyncInProgress):
		msg = app.MsgSyncInProgress
	case errors.Is(err, adapter.ErrNetworkUnavailable):
		msg = app.MsgOffline
	case errors.Is(err, service.ErrInvalidDataProvided):
		msg = app.MsgInvalidInspection
	case errors.Is(err, store.ErrInspectionNotFound):
		msg = app.MsgInspectionNotFound
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		msg = app.MsgTokenIsExpiredOrInvalid
	}

	if status >= http.StatusInternalServerError {
		h.logger.Err(err).Str("func", fn).Msg("local request failed")
	}
	utils.WriteError(w, msg, status)
}

func localID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
