package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/models"
)

type localReferenceRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewLocalReferenceRepository(db *DB, logger *logger.Logger) LocalReferenceRepository {
	return &localReferenceRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (l *localReferenceRepository) ReplaceColors(ctx context.Context, colors []models.Color) error {
	log := logger.FromContext(ctx)
	now := l.now()

	err := l.withTx(ctx, func(tx *sql.Tx) error {
		query, args, err := buildDeleteSyncedQuery(ctx, "colors", "", 0)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return l.wrapError(ErrExecutingStatement, err)
		}

		for _, color := range colors {
			query, args, err := buildInsertLocalColorQuery(ctx, color, now)
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
		log.Err(err).Str("func", "localReferenceRepository.ReplaceColors").Int("count", len(colors)).Msg("failed to replace colors")
		return err
	}

	return nil
}

func (l *localReferenceRepository) ListColors(ctx context.Context) ([]models.Color, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListLocalColorsQuery(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "localReferenceRepository.ListColors").Msg("failed to execute query")
		return nil, l.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	colors := make([]models.Color, 0, 8)
	for rows.Next() {
		var c models.Color
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		colors = append(colors, c)
	}

	if err := rows.Err(); err != nil {
		return nil, l.wrapError(ErrScanningRows, err)
	}

	return colors, nil
}

func (l *localReferenceRepository) ReplacePosts(ctx context.Context, posts []models.Post, scope models.ReplaceScope) error {
	log := logger.FromContext(ctx)
	now := l.now()

	err := l.withTx(ctx, func(tx *sql.Tx) error {
		query, args, err := buildDeleteSyncedQuery(ctx, "posts", "company_id", scope.CompanyID)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return l.wrapError(ErrExecutingStatement, err)
		}

		for _, post := range posts {
			query, args, err := buildInsertLocalPostQuery(ctx, post, now)
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
			Str("func", "localReferenceRepository.ReplacePosts").
			Int("count", len(posts)).
			Int64("company_id", scope.CompanyID).
			Msg("failed to replace posts")
		return err
	}

	return nil
}

func (l *localReferenceRepository) ListPosts(ctx context.Context, companyID int64) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListLocalPostsQuery(ctx, companyID)
	if err != nil {
		return nil, err
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "localReferenceRepository.ListPosts").Msg("failed to execute query")
		return nil, l.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, 32)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, l.wrapError(ErrScanningRows, err)
	}

	return posts, nil
}
