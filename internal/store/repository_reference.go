package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/models"
)

type colorRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewColorRepository(db *DB, logger *logger.Logger) ColorRepository {
	logger.Debug().Msg("creating color repository")
	return &colorRepository{
		db:     db,
		logger: logger,
	}
}

func (r *colorRepository) List(ctx context.Context) ([]models.Color, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListColorsQuery(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "colorRepository.List").Msg("failed to execute query")
		return nil, r.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	colors := make([]models.Color, 0, 8)
	for rows.Next() {
		var c models.Color
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			log.Err(err).Str("func", "colorRepository.List").Msg("failed to scan color row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		colors = append(colors, c)
	}

	if err := rows.Err(); err != nil {
		return nil, r.db.wrapError(ErrScanningRows, err)
	}

	return colors, nil
}

func (r *colorRepository) Create(ctx context.Context, name string) (models.Color, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertColorQuery(ctx, name)
	if err != nil {
		return models.Color{}, err
	}

	color := models.Color{Name: name}
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&color.ID); err != nil {
		log.Err(err).Str("func", "colorRepository.Create").Str("name", name).Msg("failed to insert color")
		return models.Color{}, r.db.wrapError(ErrExecutingStatement, err)
	}

	return color, nil
}

type postRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

func (r *postRepository) List(ctx context.Context, companyID int64) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPostsQuery(ctx, companyID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "postRepository.List").
			Int64("company_id", companyID).
			Msg("failed to execute query")
		return nil, r.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, 50)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			log.Err(err).Str("func", "postRepository.List").Msg("failed to scan post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, r.db.wrapError(ErrScanningRows, err)
	}

	return posts, nil
}

func (r *postRepository) Get(ctx context.Context, id int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPostQuery(ctx, id)
	if err != nil {
		return models.Post{}, err
	}

	post, err := scanPost(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "postRepository.Get").Int64("post_id", id).Msg("failed to scan post row")
		return models.Post{}, r.db.wrapError(ErrScanningRow, err)
	}

	return post, nil
}

func (r *postRepository) Create(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPostQuery(ctx, post)
	if err != nil {
		return models.Post{}, err
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&post.ID); err != nil {
		log.Err(err).Str("func", "postRepository.Create").Str("code", post.Code).Msg("failed to insert post")
		return models.Post{}, r.db.wrapError(ErrExecutingStatement, err)
	}

	return post, nil
}

func scanPost(row rowScanner) (models.Post, error) {
	var p models.Post
	err := row.Scan(&p.ID, &p.Code, &p.Latitude, &p.Longitude, &p.Address, &p.Type, &p.CompanyID)
	return p, err
}
