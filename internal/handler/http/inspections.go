package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-field-inspections/internal/app"
	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/internal/utils"
	"github.com/MKhiriev/go-field-inspections/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createInspection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var payload models.InspectionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Str("func", "*Handler.createInspection").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	id, err := h.services.InspectionService.Create(ctx, payload)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createInspection").Msg("error creating inspection")
		utils.WriteError(w, inspectionErrorMessage(err, app.MsgInspectionRequiredFields, app.MsgCreateInspectionFailed), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.CreateResponse{Success: true, ID: id}, http.StatusOK)
}

func (h *Handler) updateInspection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := pathID(r)
	if !ok {
		utils.WriteError(w, app.MsgInvalidInspectionID, http.StatusBadRequest)
		return
	}

	var payload models.InspectionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Str("func", "*Handler.updateInspection").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.services.InspectionService.Update(ctx, id, payload); err != nil {
		log.Err(err).Str("func", "*Handler.updateInspection").Int64("inspection_id", id).Msg("error updating inspection")
		utils.WriteError(w, inspectionErrorMessage(err, app.MsgInvalidInspectionID, app.MsgUpdateInspectionFailed), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) getInspection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := pathID(r)
	if !ok {
		utils.WriteError(w, app.MsgInvalidInspectionID, http.StatusBadRequest)
		return
	}

	inspection, err := h.services.InspectionService.Get(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getInspection").Int64("inspection_id", id).Msg("error getting inspection")
		utils.WriteError(w, inspectionErrorMessage(err, app.MsgInvalidInspectionID, app.MsgGetInspectionFailed), statusFromError(err))
		return
	}

	utils.WriteJSON(w, inspection, http.StatusOK)
}

func (h *Handler) listTechnicianInspections(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	technicianID, ok := pathID(r)
	if !ok {
		utils.WriteError(w, app.MsgInvalidTechnicianID, http.StatusBadRequest)
		return
	}

	inspections, err := h.services.InspectionService.ListByTechnician(ctx, technicianID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listTechnicianInspections").Int64("technician_id", technicianID).Msg("error listing inspections")
		utils.WriteError(w, inspectionErrorMessage(err, app.MsgInvalidTechnicianID, app.MsgListInspectionsFailed), statusFromError(err))
		return
	}

	utils.WriteJSON(w, nonNil(inspections), http.StatusOK)
}

func (h *Handler) listSupervisorInspections(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	supervisorID, ok := pathID(r)
	if !ok {
		utils.WriteError(w, app.MsgInvalidSupervisorID, http.StatusBadRequest)
		return
	}

	summaries, err := h.services.InspectionService.ListBySupervisor(ctx, supervisorID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listSupervisorInspections").Int64("supervisor_id", supervisorID).Msg("error listing inspections")
		utils.WriteError(w, inspectionErrorMessage(err, app.MsgInvalidSupervisorID, app.MsgListInspectionsFailed), statusFromError(err))
		return
	}

	utils.WriteJSON(w, nonNil(summaries), http.StatusOK)
}

// pathID parses the {id} URL parameter as a positive integer.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// nonNil makes empty lists encode as [] rather than null.
func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
