package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-field-inspections/models"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// inspectionPayloadColumns lists the domain columns in the order of
// payloadValues / payloadDest.
var inspectionPayloadColumns = []string{
	"post_id",
	"technician_id",
	"supervisor_id",
	"assigned_at",
	"executed_at",
	"state",
	"height",
	"paint_condition",
	"color_id",
	"functioning",
	"base_condition",
	"notes",
	"photos",
	"lat",
	"lng",
	"signature",
	"sync_status",
	"last_modified",
}

func payloadValues(p models.InspectionPayload) []any {
	photos := p.Photos
	if photos == nil {
		photos = models.PhotoList{}
	}

	return []any{
		p.PostID,
		p.TechnicianID,
		p.SupervisorID,
		p.AssignedAt,
		p.ExecutedAt,
		p.State,
		p.Height,
		p.PaintCondition,
		p.ColorID,
		p.Functioning,
		p.BaseCondition,
		p.Notes,
		photos,
		p.Latitude,
		p.Longitude,
		p.Signature,
		p.SyncStatus,
		p.LastModified,
	}
}

func payloadDest(p *models.InspectionPayload) []any {
	return []any{
		&p.PostID,
		&p.TechnicianID,
		&p.SupervisorID,
		&p.AssignedAt,
		&p.ExecutedAt,
		&p.State,
		&p.Height,
		&p.PaintCondition,
		&p.ColorID,
		&p.Functioning,
		&p.BaseCondition,
		&p.Notes,
		&p.Photos,
		&p.Latitude,
		&p.Longitude,
		&p.Signature,
		&p.SyncStatus,
		&p.LastModified,
	}
}

func prefixed(prefix string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = prefix + c
	}
	return out
}

func buildInsertInspectionQuery(ctx context.Context, payload models.InspectionPayload) (string, []any, error) {
	query, args, err := psql.
		Insert("inspections").
		Columns(inspectionPayloadColumns...).
		Values(payloadValues(payload)...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateInspectionQuery overwrites the execution fields of an existing
// inspection. Assignment fields (post, technician, supervisor, assigned_at)
// are left untouched.
func buildUpdateInspectionQuery(ctx context.Context, id int64, payload models.InspectionPayload) (string, []any, error) {
	photos := payload.Photos
	if photos == nil {
		photos = models.PhotoList{}
	}

	query, args, err := psql.
		Update("inspections").
		Set("state", payload.State).
		Set("executed_at", payload.ExecutedAt).
		Set("height", payload.Height).
		Set("paint_condition", payload.PaintCondition).
		Set("color_id", payload.ColorID).
		Set("functioning", payload.Functioning).
		Set("base_condition", payload.BaseCondition).
		Set("notes", payload.Notes).
		Set("photos", photos).
		Set("lat", payload.Latitude).
		Set("lng", payload.Longitude).
		Set("signature", payload.Signature).
		Set("sync_status", payload.SyncStatus).
		Set("last_modified", payload.LastModified).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func selectInspections() sq.SelectBuilder {
	columns := append([]string{"i.id"}, prefixed("i.", inspectionPayloadColumns)...)
	columns = append(columns, "p.code", "p.address", "c.name")

	return psql.
		Select(columns...).
		From("inspections i").
		LeftJoin("posts p ON i.post_id = p.id").
		LeftJoin("colors c ON i.color_id = c.id")
}

func buildGetInspectionQuery(ctx context.Context, id int64) (string, []any, error) {
	query, args, err := selectInspections().
		Where(sq.Eq{"i.id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildListInspectionsByTechnicianQuery(ctx context.Context, technicianID int64) (string, []any, error) {
	query, args, err := selectInspections().
		Where(sq.Eq{"i.technician_id": technicianID}).
		OrderBy("i.assigned_at DESC", "i.id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildListInspectionsBySupervisorQuery(ctx context.Context, supervisorID int64) (string, []any, error) {
	query, args, err := psql.
		Select("i.id", "i.state", "i.assigned_at", "i.executed_at", "p.code", "u.name").
		From("inspections i").
		LeftJoin("posts p ON i.post_id = p.id").
		LeftJoin("users u ON i.technician_id = u.id").
		Where(sq.Eq{"i.supervisor_id": supervisorID}).
		OrderBy("i.assigned_at DESC", "i.id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildListColorsQuery(ctx context.Context) (string, []any, error) {
	query, args, err := psql.
		Select("id", "name").
		From("colors").
		OrderBy("name").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertColorQuery(ctx context.Context, name string) (string, []any, error) {
	query, args, err := psql.
		Insert("colors").
		Columns("name").
		Values(name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

var postColumns = []string{"id", "code", "lat", "lng", "address", "type", "company_id"}

func buildListPostsQuery(ctx context.Context, companyID int64) (string, []any, error) {
	query, args, err := psql.
		Select(postColumns...).
		From("posts").
		Where(sq.Eq{"company_id": companyID}).
		OrderBy("code").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildGetPostQuery(ctx context.Context, id int64) (string, []any, error) {
	query, args, err := psql.
		Select(postColumns...).
		From("posts").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertPostQuery(ctx context.Context, post models.Post) (string, []any, error) {
	query, args, err := psql.
		Insert("posts").
		Columns(postColumns[1:]...).
		Values(post.Code, post.Latitude, post.Longitude, post.Address, post.Type, post.CompanyID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
