package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-field-inspections/internal/app"
	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/internal/utils"
	"github.com/MKhiriev/go-field-inspections/models"
)

// colorCreatedResponse is the body of POST /colores.
type colorCreatedResponse struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id"`
	Name    string `json:"name"`
}

func (h *Handler) listColors(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	colors, err := h.services.ReferenceService.ListColors(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listColors").Msg("error listing colors")
		utils.WriteError(w, app.MsgListColorsFailed, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, nonNil(colors), http.StatusOK)
}

func (h *Handler) createColor(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var color models.Color
	if err := json.NewDecoder(r.Body).Decode(&color); err != nil {
		log.Err(err).Str("func", "*Handler.createColor").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	created, err := h.services.ReferenceService.CreateColor(r.Context(), color)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createColor").Msg("error creating color")
		utils.WriteError(w, colorErrorMessage(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, colorCreatedResponse{Success: true, ID: created.ID, Name: created.Name}, http.StatusOK)
}

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	companyID, err := strconv.ParseInt(r.URL.Query().Get("companyId"), 10, 64)
	if err != nil || companyID <= 0 {
		utils.WriteError(w, app.MsgCompanyIDRequired, http.StatusBadRequest)
		return
	}

	posts, err := h.services.ReferenceService.ListPosts(r.Context(), companyID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listPosts").Int64("company_id", companyID).Msg("error listing posts")
		utils.WriteError(w, postErrorMessage(err, app.MsgCompanyIDRequired, app.MsgListPostsFailed), statusFromError(err))
		return
	}

	utils.WriteJSON(w, nonNil(posts), http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := pathID(r)
	if !ok {
		utils.WriteError(w, app.MsgInvalidPostID, http.StatusBadRequest)
		return
	}

	post, err := h.services.ReferenceService.GetPost(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getPost").Int64("post_id", id).Msg("error getting post")
		utils.WriteError(w, postErrorMessage(err, app.MsgInvalidPostID, app.MsgGetPostFailed), statusFromError(err))
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		log.Err(err).Str("func", "*Handler.createPost").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	created, err := h.services.ReferenceService.CreatePost(r.Context(), post)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createPost").Str("code", post.Code).Msg("error creating post")
		utils.WriteError(w, postErrorMessage(err, app.MsgPostRequiredFields, app.MsgCreatePostFailed), statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}
