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

const commentsTable = "comments"

// commentRepository is the PostgreSQL-backed implementation of [CommentRepository].
type commentRepository struct {
	db         DBTX
	classifier ErrorClassificator
	logger     *logger.Logger
}

// NewCommentRepository constructs a [CommentRepository] backed by the
// provided connection pool and logger.
func NewCommentRepository(db DBTX, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:         db,
		classifier: NewPostgresErrorClassifier(),
		logger:     logger,
	}
}

// CreateComment inserts a comment on a review.
//
// A second comment by the same user on the same review yields
// [ErrUniqueViolation]; an unknown user or review yields [ErrReferenceNotFound].
func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	defer metrics.TrackQuery("insert", commentsTable)()
	log := logger.FromContext(ctx)

	query, args, err := buildCreateCommentQuery(comment)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("failed to create query")
		return models.Comment{}, err
	}

	created, err := scanComment(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Comment{}, handleQueryError(ctx, r.classifier, "*commentRepository.CreateComment", "insert", commentsTable, err)
	}

	return created, nil
}

// ListCommentsForReview returns the comments on a review, newest first.
func (r *commentRepository) ListCommentsForReview(ctx context.Context, reviewID uuid.UUID) ([]models.Comment, error) {
	query, args, err := buildListCommentsForReviewQuery(reviewID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*commentRepository.ListCommentsForReview").Msg("failed to create query")
		return nil, err
	}

	return r.list(ctx, "*commentRepository.ListCommentsForReview", query, args)
}

// ListCommentsByUser returns the comments written by a user, newest first.
func (r *commentRepository) ListCommentsByUser(ctx context.Context, userID uuid.UUID) ([]models.Comment, error) {
	query, args, err := buildListCommentsByUserQuery(userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*commentRepository.ListCommentsByUser").Msg("failed to create query")
		return nil, err
	}

	return r.list(ctx, "*commentRepository.ListCommentsByUser", query, args)
}

func (r *commentRepository) list(ctx context.Context, fn, query string, args []any) ([]models.Comment, error) {
	defer metrics.TrackQuery("select", commentsTable)()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, handleQueryError(ctx, r.classifier, fn, "select", commentsTable, err)
	}

	comments, err := collectRows(rows, scanComment)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to read comment rows")
		return nil, err
	}

	return comments, nil
}

// UpdateComment replaces the text of a comment owned by update.UserID.
//
// Returns [ErrNotFoundOrNotOwned] when nothing matched.
func (r *commentRepository) UpdateComment(ctx context.Context, update models.CommentUpdate) (models.Comment, error) {
	defer metrics.TrackQuery("update", commentsTable)()
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCommentQuery(update)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.UpdateComment").Msg("failed to create query")
		return models.Comment{}, err
	}

	updated, err := scanComment(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Comment{}, ErrNotFoundOrNotOwned
	}
	if err != nil {
		return models.Comment{}, handleQueryError(ctx, r.classifier, "*commentRepository.UpdateComment", "update", commentsTable, err)
	}

	return updated, nil
}

// DeleteComment removes a comment owned by userID.
//
// Returns the deleted row, or [ErrNotFoundOrNotOwned] when nothing matched.
func (r *commentRepository) DeleteComment(ctx context.Context, commentID, userID uuid.UUID) (models.Comment, error) {
	defer metrics.TrackQuery("delete", commentsTable)()
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCommentQuery(commentID, userID)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.DeleteComment").Msg("failed to create query")
		return models.Comment{}, err
	}

	deleted, err := scanComment(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Comment{}, ErrNotFoundOrNotOwned
	}
	if err != nil {
		return models.Comment{}, handleQueryError(ctx, r.classifier, "*commentRepository.DeleteComment", "delete", commentsTable, err)
	}

	return deleted, nil
}

func scanComment(row rowScanner) (models.Comment, error) {
	var comment models.Comment
	err := row.Scan(
		&comment.CommentID,
		&comment.UserID,
		&comment.ReviewID,
		&comment.Text,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)
	return comment, err
}
