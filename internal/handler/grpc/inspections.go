package grpc

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-field-inspections/internal/app"
	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/internal/service"
	"github.com/MKhiriev/go-field-inspections/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Create implements [InspectionsServer].
func (h *Handler) Create(ctx context.Context, in *models.InspectionPayload) (*models.CreateResponse, error) {
	log := logger.FromContext(ctx)

	id, err := h.services.InspectionService.Create(ctx, *in)
	if err != nil {
		log.Err(err).Str("func", "*Handler.Create").Msg("error creating inspection")
		return nil, statusFromError(err, app.MsgInspectionRequiredFields, app.MsgCreateInspectionFailed)
	}

	return &models.CreateResponse{Success: true, ID: id}, nil
}

// Update implements [InspectionsServer].
func (h *Handler) Update(ctx context.Context, in *UpdateRequest) (*models.SuccessResponse, error) {
	log := logger.FromContext(ctx)

	if in.ID <= 0 {
		return nil, status.Error(codes.InvalidArgument, app.MsgInvalidInspectionID)
	}

	if err := h.services.InspectionService.Update(ctx, in.ID, in.Inspection); err != nil {
		log.Err(err).Str("func", "*Handler.Update").Int64("inspection_id", in.ID).Msg("error updating inspection")
		return nil, statusFromError(err, app.MsgInvalidInspectionID, app.MsgUpdateInspectionFailed)
	}

	return &models.SuccessResponse{Success: true}, nil
}

// Sync implements [InspectionsServer]. It behaves like POST
// /inspecciones/sync: a body that is not {"inspecciones": [...]} fails with
// InvalidArgument, otherwise every element gets its own result.
func (h *Handler) Sync(ctx context.Context, in *json.RawMessage) (*models.SyncResponse, error) {
	log := logger.FromContext(ctx)

	items, err := service.ParseSyncRequest(*in)
	if err != nil {
		log.Err(err).Str("func", "*Handler.Sync").Msg("sync body is not an array of inspections")
		return nil, status.Error(codes.InvalidArgument, app.MsgSyncExpectedArray)
	}

	results, err := h.services.InspectionService.Reconcile(ctx, items)
	if err != nil {
		log.Err(err).Str("func", "*Handler.Sync").
			Int("items", len(items)).
			Int("processed", len(results)).
			Msg("sync interrupted")
		return nil, status.Error(codes.Internal, app.MsgSyncFailed)
	}

	if results == nil {
		results = []models.SyncResult{}
	}

	return &models.SyncResponse{Results: results}, nil
}
