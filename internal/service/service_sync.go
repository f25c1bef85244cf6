package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-field-inspections/internal/app"
	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/models"
)

// Reconcile implements InspectionService.
//
// Items are processed one by one without a surrounding transaction:
//
//   - the raw element is decoded into a [models.LocalInspection];
//   - the payload is validated with the same rules as single creation;
//   - the record is inserted with sync status synced.
//
// Any failure produces {localId, success:false, error} for that element
// only. The same element sent twice is inserted twice. ctx cancellation is
// checked before each element.
func (s *inspectionService) Reconcile(ctx context.Context, items []models.SyncItem) ([]models.SyncResult, error) {
	log := logger.FromContext(ctx)

	results := make([]models.SyncResult, 0, len(items))
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result := models.SyncResult{LocalID: item.LocalID}

		id, err := s.reconcileItem(ctx, item)
		if err != nil {
			log.Err(err).
				Str("func", "inspectionService.Reconcile").
				Int64("local_id", item.LocalID).
				Msg("sync item rejected")
			result.Error = app.MsgSyncItemFailed
		} else {
			result.Success = true
			result.RemoteID = &id
		}

		results = append(results, result)
	}

	return results, nil
}

func (s *inspectionService) reconcileItem(ctx context.Context, item models.SyncItem) (int64, error) {
	var rec models.LocalInspection
	if err := json.Unmarshal(item.Raw, &rec); err != nil {
		return 0, ErrInvalidDataProvided
	}

	if err := s.validator.Validate(ctx, rec.InspectionPayload); err != nil {
		return 0, err
	}

	return s.insert(ctx, rec.InspectionPayload, models.SyncStatusSynced)
}
