package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/MKhiriev/rexora-cms/internal/store"
	"github.com/MKhiriev/rexora-cms/internal/utils"
	"github.com/MKhiriev/rexora-cms/internal/validators"
	"github.com/MKhiriev/rexora-cms/models"
)

type reviewService struct {
	reviews   store.ReviewRepository
	validator validators.Validator
	cache     *ContentCache

	ids *utils.UUIDGenerator
	now func() time.Time

	logger *logger.Logger
}

func NewReviewService(reviews store.ReviewRepository, validator validators.Validator, cache *ContentCache, logger *logger.Logger) ReviewService {
	return &reviewService{
		reviews:   reviews,
		validator: validator,
		cache:     cache,
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (r *reviewService) List(ctx context.Context) ([]models.Review, error) {
	return cachedList(r.cache, cacheKeyReviews, func() ([]models.Review, error) {
		return r.reviews.List(ctx)
	})
}

func (r *reviewService) Create(ctx context.Context, in models.ReviewInput) (models.Review, error) {
	if err := r.validator.Validate(ctx, in); err != nil {
		return models.Review{}, err
	}

	review := models.Review{
		ID:         r.ids.Generate(),
		ClientName: strings.TrimSpace(in.ClientName),
		ReviewText: strings.TrimSpace(in.ReviewText),
		StarRating: in.StarRating,
		CreatedAt:  r.now().UTC(),
	}

	err := r.reviews.Create(ctx, review)
	if errors.Is(err, store.ErrConstraintViolation) {
		return models.Review{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err != nil {
		return models.Review{}, fmt.Errorf("error creating review: %w", err)
	}

	r.cache.Invalidate(cacheKeyReviews)
	return review, nil
}

func (r *reviewService) Update(ctx context.Context, id string, u models.ReviewUpdate) (models.Review, error) {
	if err := r.validator.Validate(ctx, u); err != nil {
		return models.Review{}, err
	}

	current, err := r.reviews.Get(ctx, id)
	if errors.Is(err, store.ErrReviewNotFound) {
		return models.Review{}, ErrReviewNotFound
	}
	if err != nil {
		return models.Review{}, fmt.Errorf("error getting review: %w", err)
	}

	updated := u.Apply(current)
	updated.ClientName = strings.TrimSpace(updated.ClientName)
	updated.ReviewText = strings.TrimSpace(updated.ReviewText)

	err = r.reviews.Update(ctx, updated)
	if errors.Is(err, store.ErrReviewNotFound) {
		return models.Review{}, ErrReviewNotFound
	}
	if errors.Is(err, store.ErrConstraintViolation) {
		return models.Review{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err != nil {
		return models.Review{}, fmt.Errorf("error updating review: %w", err)
	}

	r.cache.Invalidate(cacheKeyReviews)
	return updated, nil
}

func (r *reviewService) Delete(ctx context.Context, id string) error {
	err := r.reviews.Delete(ctx, id)
	if errors.Is(err, store.ErrReviewNotFound) {
		return ErrReviewNotFound
	}
	if err != nil {
		return fmt.Errorf("error deleting review: %w", err)
	}

	r.cache.Invalidate(cacheKeyReviews)
	return nil
}
