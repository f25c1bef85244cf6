package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/models"
)

// inspectionRepository is the PostgreSQL-backed implementation of
// [InspectionRepository] over the "inspections" table.
type inspectionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewInspectionRepository constructs an [InspectionRepository] backed by the
// provided database connection and logger.
func NewInspectionRepository(db *DB, logger *logger.Logger) InspectionRepository {
	logger.Debug().Msg("creating inspection repository")
	return &inspectionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *inspectionRepository) Create(ctx context.Context, payload models.InspectionPayload) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertInspectionQuery(ctx, payload)
	if err != nil {
		log.Err(err).Str("func", "inspectionRepository.Create").Msg("failed to create query")
		return 0, err
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).
			Str("func", "inspectionRepository.Create").
			Int64("post_id", payload.PostID).
			Int64("technician_id", payload.TechnicianID).
			Msg("failed to insert inspection")
		return 0, r.db.wrapError(ErrExecutingStatement, err)
	}

	return id, nil
}

func (r *inspectionRepository) Update(ctx context.Context, id int64, payload models.InspectionPayload) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateInspectionQuery(ctx, id, payload)
	if err != nil {
		log.Err(err).Str("func", "inspectionRepository.Update").Msg("failed to create query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "inspectionRepository.Update").
			Int64("inspection_id", id).
			Msg("failed to update inspection")
		return r.db.wrapError(ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return r.db.wrapError(ErrExecutingStatement, err)
	}
	if rowsAffected == 0 {
		return ErrInspectionNotFound
	}

	return nil
}

func (r *inspectionRepository) Get(ctx context.Context, id int64) (models.Inspection, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetInspectionQuery(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "inspectionRepository.Get").Msg("failed to create query")
		return models.Inspection{}, err
	}

	inspection, err := scanInspection(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Inspection{}, ErrInspectionNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "inspectionRepository.Get").
			Int64("inspection_id", id).
			Msg("failed to scan inspection row")
		return models.Inspection{}, r.db.wrapError(ErrScanningRow, err)
	}

	return inspection, nil
}

func (r *inspectionRepository) ListByTechnician(ctx context.Context, technicianID int64) ([]models.Inspection, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListInspectionsByTechnicianQuery(ctx, technicianID)
	if err != nil {
		log.Err(err).Str("func", "inspectionRepository.ListByTechnician").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "inspectionRepository.ListByTechnician").
			Int64("technician_id", technicianID).
			Msg("failed to execute query")
		return nil, r.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	inspections := make([]models.Inspection, 0, 50)
	for rows.Next() {
		inspection, scanErr := scanInspection(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "inspectionRepository.ListByTechnician").
				Int64("technician_id", technicianID).
				Msg("failed to scan inspection row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		inspections = append(inspections, inspection)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "inspectionRepository.ListByTechnician").
			Msg("error occurred during rows iteration")
		return nil, r.db.wrapError(ErrScanningRows, err)
	}

	return inspections, nil
}

func (r *inspectionRepository) ListBySupervisor(ctx context.Context, supervisorID int64) ([]models.InspectionSummary, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListInspectionsBySupervisorQuery(ctx, supervisorID)
	if err != nil {
		log.Err(err).Str("func", "inspectionRepository.ListBySupervisor").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "inspectionRepository.ListBySupervisor").
			Int64("supervisor_id", supervisorID).
			Msg("failed to execute query")
		return nil, r.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	summaries := make([]models.InspectionSummary, 0, 50)
	for rows.Next() {
		var s models.InspectionSummary
		if err := rows.Scan(&s.ID, &s.State, &s.AssignedAt, &s.ExecutedAt, &s.PostCode, &s.TechnicianName); err != nil {
			log.Err(err).
				Str("func", "inspectionRepository.ListBySupervisor").
				Msg("failed to scan summary row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, r.db.wrapError(ErrScanningRows, err)
	}

	return summaries, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInspection(row rowScanner) (models.Inspection, error) {
	var inspection models.Inspection

	dest := append([]any{&inspection.ID}, payloadDest(&inspection.InspectionPayload)...)
	dest = append(dest, &inspection.PostCode, &inspection.PostAddress, &inspection.ColorName)

	if err := row.Scan(dest...); err != nil {
		return models.Inspection{}, err
	}

	return inspection, nil
}
