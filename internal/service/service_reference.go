package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/internal/store"
	"github.com/MKhiriev/go-field-inspections/internal/validators"
	"github.com/MKhiriev/go-field-inspections/models"
)

type referenceService struct {
	colorRepository store.ColorRepository
	postRepository  store.PostRepository
	validator       validators.Validator

	logger *logger.Logger
}

func NewReferenceService(colors store.ColorRepository, posts store.PostRepository, logger *logger.Logger) ReferenceService {
	return &referenceService{
		colorRepository: colors,
		postRepository:  posts,
		validator:       validators.NewReferenceValidator(),
		logger:          logger,
	}
}

func (r *referenceService) ListColors(ctx context.Context) ([]models.Color, error) {
	return r.colorRepository.List(ctx)
}

// CreateColor trims the name before storing it. A name that already exists
// surfaces as store.ErrDuplicateKey.
func (r *referenceService) CreateColor(ctx context.Context, color models.Color) (models.Color, error) {
	log := logger.FromContext(ctx)

	color.Name = strings.TrimSpace(color.Name)
	if err := r.validator.Validate(ctx, color); err != nil {
		return models.Color{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := r.colorRepository.Create(ctx, color.Name)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return models.Color{}, err
		}
		log.Err(err).Str("func", "referenceService.CreateColor").Str("name", color.Name).Msg("color creation failed")
		return models.Color{}, fmt.Errorf("%w: %w", ErrPersistenceFailure, err)
	}

	return created, nil
}

func (r *referenceService) ListPosts(ctx context.Context, companyID int64) ([]models.Post, error) {
	if companyID <= 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidCompanyID)
	}
	return r.postRepository.List(ctx, companyID)
}

func (r *referenceService) GetPost(ctx context.Context, id int64) (models.Post, error) {
	if id <= 0 {
		return models.Post{}, ErrInvalidDataProvided
	}
	return r.postRepository.Get(ctx, id)
}

// CreatePost stores post. A duplicate code surfaces as store.ErrDuplicateKey.
func (r *referenceService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	if err := r.validator.Validate(ctx, post); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := r.postRepository.Create(ctx, post)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return models.Post{}, err
		}
		log.Err(err).Str("func", "referenceService.CreatePost").Str("code", post.Code).Msg("post creation failed")
		return models.Post{}, fmt.Errorf("%w: %w", ErrPersistenceFailure, err)
	}

	return created, nil
}
