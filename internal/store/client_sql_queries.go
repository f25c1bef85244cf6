// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-field-inspections/models"
)

// lite builds SQLite statements with ? placeholders.
var lite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertLocalInspectionQuery(ctx context.Context, remoteID *int64, payload models.InspectionPayload) (string, []any, error) {
	columns := append([]string{"remote_id"}, inspectionPayloadColumns...)
	values := append([]any{remoteID}, payloadValues(payload)...)

	query, args, err := lite.
		Insert("inspections").
		Columns(columns...).
		Values(values...).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildUpdateLocalInspectionQuery(ctx context.Context, localID int64, payload models.InspectionPayload) (string, []any, error) {
	values := payloadValues(payload)
	clauses := make(map[string]any, len(inspectionPayloadColumns))
	for i, column := range inspectionPayloadColumns {
		clauses[column] = values[i]
	}

	query, args, err := lite.
		Update("inspections").
		SetMap(clauses).
		Where(sq.Eq{"local_id": localID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func selectLocalInspections() sq.SelectBuilder {
	columns := append([]string{"local_id", "remote_id"}, inspectionPayloadColumns...)
	return lite.Select(columns...).From("inspections")
}

func buildGetLocalInspectionQuery(ctx context.Context, localID int64) (string, []any, error) {
	query, args, err := selectLocalInspections().Where(sq.Eq{"local_id": localID}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildListPendingQuery(ctx context.Context) (string, []any, error) {
	query, args, err := selectLocalInspections().
		Where(sq.Eq{"sync_status": models.SyncStatusPending}).
		OrderBy("last_modified ASC", "local_id ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildListLocalByTechnicianQuery(ctx context.Context, technicianID int64) (string, []any, error) {
	query, args, err := selectLocalInspections().
		Where(sq.Eq{"technician_id": technicianID}).
		OrderBy("assigned_at DESC", "local_id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildMarkSyncedQuery(ctx context.Context, localID, remoteID int64, now time.Time) (string, []any, error) {
	query, args, err := lite.
		Update("inspections").
		Set("sync_status", models.SyncStatusSynced).
		Set("remote_id", remoteID).
		Set("last_modified", now).
		Where(sq.Eq{"local_id": localID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// scopedSynced matches synced rows, narrowed to column = value when value is set.
func scopedSynced(column string, value int64) sq.And {
	where := sq.And{sq.Eq{"sync_status": models.SyncStatusSynced}}
	if value > 0 {
		where = append(where, sq.Eq{column: value})
	}
	return where
}

func buildDeleteSyncedQuery(ctx context.Context, table, scopeColumn string, scopeValue int64) (string, []any, error) {
	query, args, err := lite.
		Delete(table).
		Where(scopedSynced(scopeColumn, scopeValue)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildPendingRemoteIDsQuery selects remote ids of locally edited records
// that a bulk replace must not shadow.
func buildPendingRemoteIDsQuery(ctx context.Context, technicianID int64) (string, []any, error) {
	where := sq.And{
		sq.Eq{"sync_status": models.SyncStatusPending},
		sq.NotEq{"remote_id": nil},
	}
	if technicianID > 0 {
		where = append(where, sq.Eq{"technician_id": technicianID})
	}

	query, args, err := lite.Select("remote_id").From("inspections").Where(where).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertLocalColorQuery(ctx context.Context, color models.Color, now time.Time) (string, []any, error) {
	query, args, err := lite.
		Insert("colors").
		Columns("remote_id", "name", "sync_status", "last_modified").
		Values(color.ID, color.Name, models.SyncStatusSynced, now).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildListLocalColorsQuery(ctx context.Context) (string, []any, error) {
	query, args, err := lite.
		Select("COALESCE(remote_id, 0)", "name").
		From("colors").
		OrderBy("name").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertLocalPostQuery(ctx context.Context, post models.Post, now time.Time) (string, []any, error) {
	query, args, err := lite.
		Insert("posts").
		Columns("remote_id", "code", "lat", "lng", "address", "type", "company_id", "sync_status", "last_modified").
		Values(post.ID, post.Code, post.Latitude, post.Longitude, post.Address, post.Type, post.CompanyID, models.SyncStatusSynced, now).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildListLocalPostsQuery(ctx context.Context, companyID int64) (string, []any, error) {
	builder := lite.
		Select("COALESCE(remote_id, 0)", "code", "lat", "lng", "address", "type", "company_id").
		From("posts").
		OrderBy("code")
	if companyID > 0 {
		builder = builder.Where(sq.Eq{"company_id": companyID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildPutCacheEntryQuery(ctx context.Context, entry models.CacheEntry, header string) (string, []any, error) {
	query, args, err := lite.
		Replace("cache_entries").
		Columns("cache_name", "method", "url", "status", "header", "body", "stored_at").
		Values(entry.CacheName, entry.Method, entry.URL, entry.Status, header, entry.Body, entry.StoredAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildMatchCacheEntryQuery(ctx context.Context, cacheName, method, url string) (string, []any, error) {
	query, args, err := lite.
		Select("cache_name", "method", "url", "status", "header", "body", "stored_at").
		From("cache_entries").
		Where(sq.Eq{"cache_name": cacheName, "method": method, "url": url}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildCacheNamesQuery(ctx context.Context) (string, []any, error) {
	query, args, err := lite.
		Select("cache_name").
		Distinct().
		From("cache_entries").
		OrderBy("cache_name").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteCacheQuery(ctx context.Context, cacheName string) (string, []any, error) {
	query, args, err := lite.Delete("cache_entries").Where(sq.Eq{"cache_name": cacheName}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildRegisterTagQuery(ctx context.Context, tag string, now time.Time) (string, []any, error) {
	query, args, err := lite.
		Insert("background_sync_tags").
		Options("OR IGNORE").
		Columns("tag", "registered_at").
		Values(tag, now).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildHasTagQuery(ctx context.Context, tag string) (string, []any, error) {
	query, args, err := lite.
		Select("COUNT(*)").
		From("background_sync_tags").
		Where(sq.Eq{"tag": tag}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildClearTagQuery(ctx context.Context, tag string) (string, []any, error) {
	query, args, err := lite.Delete("background_sync_tags").Where(sq.Eq{"tag": tag}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
