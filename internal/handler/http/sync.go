// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-field-inspections/internal/app"
	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/internal/service"
	"github.com/MKhiriev/go-field-inspections/internal/utils"
	"github.com/MKhiriev/go-field-inspections/models"
)

// syncInspections reconciles a batch of client records. The body must be
// {"inspecciones": [...]}; each element succeeds or fails on its own and the
// response lists one result per element in request order.
func (h *Handler) syncInspections(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncInspections").Msg("failed to read request body")
		utils.WriteError(w, app.MsgSyncExpectedArray, http.StatusBadRequest)
		return
	}

	items, err := service.ParseSyncRequest(body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncInspections").Msg("sync body is not an array of inspections")
		utils.WriteError(w, app.MsgSyncExpectedArray, http.StatusBadRequest)
		return
	}

	results, err := h.services.InspectionService.Reconcile(ctx, items)
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncInspections").
			Int("items", len(items)).
			Int("processed", len(results)).
			Msg("sync interrupted")
		utils.WriteError(w, app.MsgSyncFailed, http.StatusInternalServerError)
		return
	}

	log.Info().Int("items", len(items)).Msg("sync batch reconciled")

	utils.WriteJSON(w, models.SyncResponse{Results: nonNil(results)}, http.StatusOK)
}
