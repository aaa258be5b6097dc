package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-item-reviews/internal/logger"
	"github.com/MKhiriev/go-item-reviews/internal/metrics"
	"github.com/MKhiriev/go-item-reviews/models"
	"github.com/google/uuid"
)

const reviewsTable = "reviews"

// reviewRepository is the PostgreSQL-backed implementation of [ReviewRepository].
//
// Every mutation is a single statement. Ownership of updates and deletes is
// enforced in the WHERE clause, and the item's stored average is refreshed
// by the reviews trigger within the same statement.
type reviewRepository struct {
	db         DBTX
	classifier ErrorClassificator
	logger     *logger.Logger
}

// NewReviewRepository constructs a [ReviewRepository] backed by the provided
// connection pool and logger.
func NewReviewRepository(db DBTX, logger *logger.Logger) ReviewRepository {
	logger.Debug().Msg("creating review repository")
	return &reviewRepository{
		db:         db,
		classifier: NewPostgresErrorClassifier(),
		logger:     logger,
	}
}

// CreateReview inserts a review of an item by a user.
//
// Error handling:
//   - second review of the same item by the same user → [ErrUniqueViolation].
//   - score outside 1..5 → [ErrConstraintViolation].
//   - unknown user or item → [ErrReferenceNotFound].
func (r *reviewRepository) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	defer metrics.TrackQuery("insert", reviewsTable)()
	log := logger.FromContext(ctx)

	query, args, err := buildCreateReviewQuery(review)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.CreateReview").Msg("failed to create query")
		return models.Review{}, err
	}

	created, err := scanReview(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Review{}, handleQueryError(ctx, r.classifier, "*reviewRepository.CreateReview", "insert", reviewsTable, err)
	}

	log.Debug().
		Str("func", "*reviewRepository.CreateReview").
		Stringer("review_id", created.ReviewID).
		Stringer("item_id", created.ItemID).
		Msg("review created")
	return created, nil
}

// ListReviewsForItem returns the item's reviews, newest first.
func (r *reviewRepository) ListReviewsForItem(ctx context.Context, itemID uuid.UUID) ([]models.Review, error) {
	query, args, err := buildListReviewsForItemQuery(itemID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reviewRepository.ListReviewsForItem").Msg("failed to create query")
		return nil, err
	}

	return r.list(ctx, "*reviewRepository.ListReviewsForItem", query, args)
}

// ListReviewsByUser returns the user's reviews, newest first.
func (r *reviewRepository) ListReviewsByUser(ctx context.Context, userID uuid.UUID) ([]models.Review, error) {
	query, args, err := buildListReviewsByUserQuery(userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reviewRepository.ListReviewsByUser").Msg("failed to create query")
		return nil, err
	}

	return r.list(ctx, "*reviewRepository.ListReviewsByUser", query, args)
}

func (r *reviewRepository) list(ctx context.Context, fn, query string, args []any) ([]models.Review, error) {
	defer metrics.TrackQuery("select", reviewsTable)()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, handleQueryError(ctx, r.classifier, fn, "select", reviewsTable, err)
	}

	reviews, err := collectRows(rows, scanReview)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to read review rows")
		return nil, err
	}

	return reviews, nil
}

// AverageScoreForItem computes the mean score of the item's reviews rounded
// to two decimals. An item without reviews, known or not, averages 0.
func (r *reviewRepository) AverageScoreForItem(ctx context.Context, itemID uuid.UUID) (float64, error) {
	defer metrics.TrackQuery("select", reviewsTable)()
	log := logger.FromContext(ctx)

	query, args, err := buildAverageScoreQuery(itemID)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.AverageScoreForItem").Msg("failed to create query")
		return 0, err
	}

	var average float64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&average); err != nil {
		return 0, handleQueryError(ctx, r.classifier, "*reviewRepository.AverageScoreForItem", "select", reviewsTable, err)
	}

	return average, nil
}

// UpdateReview replaces score and text of a review owned by update.UserID
// and bumps updated_at.
//
// Returns [ErrNotFoundOrNotOwned] when the review does not exist or belongs
// to another user, and [ErrConstraintViolation] for a score outside 1..5.
func (r *reviewRepository) UpdateReview(ctx context.Context, update models.ReviewUpdate) (models.Review, error) {
	defer metrics.TrackQuery("update", reviewsTable)()
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateReviewQuery(update)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.UpdateReview").Msg("failed to create query")
		return models.Review{}, err
	}

	updated, err := scanReview(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().
			Str("func", "*reviewRepository.UpdateReview").
			Stringer("review_id", update.ReviewID).
			Stringer("user_id", update.UserID).
			Msg("no owned review matched")
		return models.Review{}, ErrNotFoundOrNotOwned
	}
	if err != nil {
		return models.Review{}, handleQueryError(ctx, r.classifier, "*reviewRepository.UpdateReview", "update", reviewsTable, err)
	}

	return updated, nil
}

// DeleteReview removes a review owned by userID; its comments cascade.
//
// Returns the deleted row, or [ErrNotFoundOrNotOwned] when nothing matched.
func (r *reviewRepository) DeleteReview(ctx context.Context, reviewID, userID uuid.UUID) (models.Review, error) {
	defer metrics.TrackQuery("delete", reviewsTable)()
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteReviewQuery(reviewID, userID)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.DeleteReview").Msg("failed to create query")
		return models.Review{}, err
	}

	deleted, err := scanReview(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Review{}, ErrNotFoundOrNotOwned
	}
	if err != nil {
		return models.Review{}, handleQueryError(ctx, r.classifier, "*reviewRepository.DeleteReview", "delete", reviewsTable, err)
	}

	return deleted, nil
}

func scanReview(row rowScanner) (models.Review, error) {
	var review models.Review
	err := row.Scan(
		&review.ReviewID,
		&review.UserID,
		&review.ItemID,
		&review.Score,
		&review.Text,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
	return review, err
}
