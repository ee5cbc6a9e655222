package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/MKhiriev/rexora-cms/models"
)

type reviewRepository struct {
	*DB
	logger *logger.Logger
}

// NewReviewRepository constructs a [ReviewRepository] backed by db.
func NewReviewRepository(db *DB, logger *logger.Logger) ReviewRepository {
	logger.Debug().Msg("creating review repository")
	return &reviewRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *reviewRepository) Create(ctx context.Context, review models.Review) error {
	query, args, err := buildInsertReviewQuery(review)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "reviewRepository.Create").
			Str("review_id", review.ID).
			Msg("failed to insert review")
		if isConstraintViolation(err) {
			return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *reviewRepository) List(ctx context.Context) ([]models.Review, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListReviewsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "reviewRepository.List").Msg("failed to execute query for listing reviews")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	reviews := make([]models.Review, 0, 16)
	for rows.Next() {
		review, scanErr := scanReview(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		reviews = append(reviews, review)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return reviews, nil
}

func (r *reviewRepository) Get(ctx context.Context, id string) (models.Review, error) {
	query, args, err := buildGetReviewQuery(id)
	if err != nil {
		return models.Review{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	review, err := scanReview(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Review{}, ErrReviewNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "reviewRepository.Get").Str("review_id", id).Msg("failed to query review")
		return models.Review{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return review, nil
}

func (r *reviewRepository) Update(ctx context.Context, review models.Review) error {
	query, args, err := buildUpdateReviewQuery(review)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "reviewRepository.Update", review.ID, query, args)
}

func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	query, args, err := buildDeleteReviewQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "reviewRepository.Delete", id, query, args)
}

func (r *reviewRepository) execAffectingOne(ctx context.Context, fn, id, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Str("review_id", id).Msg("failed to execute statement")
		if isConstraintViolation(err) {
			return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrReviewNotFound
	}

	return nil
}

func scanReview(row rowScanner) (models.Review, error) {
	var review models.Review
	err := row.Scan(
		&review.ID,
		&review.ClientName,
		&review.ReviewText,
		&review.StarRating,
		&review.CreatedAt,
	)
	return review, err
}
