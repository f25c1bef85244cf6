package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/models"
)

// localInspectionRepository is the SQLite-backed implementation of
// [LocalInspectionRepository].
type localInspectionRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewLocalInspectionRepository(db *DB, logger *logger.Logger) LocalInspectionRepository {
	return &localInspectionRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (l *localInspectionRepository) Create(ctx context.Context, payload models.InspectionPayload) (models.LocalInspection, error) {
	log := logger.FromContext(ctx)

	payload.SyncStatus = models.SyncStatusPending
	payload.LastModified = l.now()
	if payload.AssignedAt.IsZero() {
		payload.AssignedAt = payload.LastModified
	}
	if payload.Photos == nil {
		payload.Photos = models.PhotoList{}
	}

	query, args, err := buildInsertLocalInspectionQuery(ctx, nil, payload)
	if err != nil {
		return models.LocalInspection{}, err
	}

	result, err := l.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localInspectionRepository.Create").
			Int64("post_id", payload.PostID).
			Msg("failed to insert local inspection")
		return models.LocalInspection{}, l.wrapError(ErrExecutingStatement, err)
	}

	localID, err := result.LastInsertId()
	if err != nil {
		return models.LocalInspection{}, l.wrapError(ErrExecutingStatement, err)
	}

	return models.LocalInspection{LocalID: localID, InspectionPayload: payload}, nil
}

func (l *localInspectionRepository) Get(ctx context.Context, localID int64) (models.LocalInspection, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetLocalInspectionQuery(ctx, localID)
	if err != nil {
		return models.LocalInspection{}, err
	}

	record, err := scanLocalInspection(l.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocalInspection{}, ErrInspectionNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "localInspectionRepository.Get").
			Int64("local_id", localID).
			Msg("failed to scan local inspection")
		return models.LocalInspection{}, l.wrapError(ErrScanningRow, err)
	}

	return record, nil
}

func (l *localInspectionRepository) Update(ctx context.Context, localID int64, payload models.InspectionPayload) (models.LocalInspection, error) {
	log := logger.FromContext(ctx)

	var updated models.LocalInspection
	err := l.withTx(ctx, func(tx *sql.Tx) error {
		query, args, err := buildGetLocalInspectionQuery(ctx, localID)
		if err != nil {
			return err
		}

		current, err := scanLocalInspection(tx.QueryRowContext(ctx, query, args...))
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInspectionNotFound
		}
		if err != nil {
			return l.wrapError(ErrScanningRow, err)
		}

		if !models.CanTransition(current.SyncStatus, models.SyncStatusPending) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidSyncState, current.SyncStatus, models.SyncStatusPending)
		}

		payload.SyncStatus = models.SyncStatusPending
		payload.LastModified = l.now()
		if payload.AssignedAt.IsZero() {
			payload.AssignedAt = current.AssignedAt
		}

		query, args, err = buildUpdateLocalInspectionQuery(ctx, localID, payload)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return l.wrapError(ErrExecutingStatement, err)
		}

		updated = models.LocalInspection{LocalID: localID, RemoteID: current.RemoteID, InspectionPayload: payload}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "localInspectionRepository.Update").
			Int64("local_id", localID).
			Msg("failed to update local inspection")
		return models.LocalInspection{}, err
	}

	return updated, nil
}

func (l *localInspectionRepository) ListPending(ctx context.Context) ([]models.LocalInspection, error) {
	query, args, err := buildListPendingQuery(ctx)
	if err != nil {
		return nil, err
	}

	return l.list(ctx, "localInspectionRepository.ListPending", query, args)
}

func (l *localInspectionRepository) ListByTechnician(ctx context.Context, technicianID int64) ([]models.LocalInspection, error) {
	query, args, err := buildListLocalByTechnicianQuery(ctx, technicianID)
	if err != nil {
		return nil, err
	}

	return l.list(ctx, "localInspectionRepository.ListByTechnician", query, args)
}

func (l *localInspectionRepository) MarkSynced(ctx context.Context, localID, remoteID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildMarkSyncedQuery(ctx, localID, remoteID, l.now())
	if err != nil {
		return err
	}

	result, err := l.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localInspectionRepository.MarkSynced").
			Int64("local_id", localID).
			Int64("remote_id", remoteID).
			Msg("failed to mark inspection synced")
		return l.wrapError(ErrExecutingStatement, err)
	}

	if rowsAffected, _ := result.RowsAffected(); rowsAffected == 0 {
		log.Warn().
			Str("func", "localInspectionRepository.MarkSynced").
			Int64("local_id", localID).
			Msg("no local inspection to mark synced")
	}

	return nil
}

func (l *localInspectionRepository) BulkReplace(ctx context.Context, inspections []models.Inspection, scope models.ReplaceScope) error {
	log := logger.FromContext(ctx)
	now := l.now()

	err := l.withTx(ctx, func(tx *sql.Tx) error {
		shadowed, err := l.pendingRemoteIDs(ctx, tx, scope.TechnicianID)
		if err != nil {
			return err
		}

		query, args, err := buildDeleteSyncedQuery(ctx, "inspections", "technician_id", scope.TechnicianID)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return l.wrapError(ErrExecutingStatement, err)
		}

		for _, inspection := range inspections {
			// a pending local edit of the same record wins until it is pushed
			if _, ok := shadowed[inspection.ID]; ok {
				continue
			}

			record := inspection.ToLocal()
			if record.LastModified.IsZero() {
				record.LastModified = now
			}

			query, args, err := buildInsertLocalInspectionQuery(ctx, record.RemoteID, record.InspectionPayload)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return l.wrapError(ErrExecutingStatement, err)
			}
		}

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "localInspectionRepository.BulkReplace").
			Int("count", len(inspections)).
			Int64("technician_id", scope.TechnicianID).
			Msg("failed to replace synced inspections")
		return err
	}

	return nil
}

func (l *localInspectionRepository) pendingRemoteIDs(ctx context.Context, tx *sql.Tx, technicianID int64) (map[int64]struct{}, error) {
	query, args, err := buildPendingRemoteIDsQuery(ctx, technicianID)
	if err != nil {
		return nil, err
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, l.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make(map[int64]struct{})
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ids[id] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, l.wrapError(ErrScanningRows, err)
	}

	return ids, nil
}

func (l *localInspectionRepository) list(ctx context.Context, funcName, query string, args []any) ([]models.LocalInspection, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, l.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.LocalInspection, 0, 16)
	for rows.Next() {
		record, err := scanLocalInspection(rows)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan local inspection row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, l.wrapError(ErrScanningRows, err)
	}

	return records, nil
}

func scanLocalInspection(row rowScanner) (models.LocalInspection, error) {
	var record models.LocalInspection

	dest := append([]any{&record.LocalID, &record.RemoteID}, payloadDest(&record.InspectionPayload)...)
	if err := row.Scan(dest...); err != nil {
		return models.LocalInspection{}, err
	}

	return record, nil
}
