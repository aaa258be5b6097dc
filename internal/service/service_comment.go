package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-item-reviews/internal/logger"
	"github.com/MKhiriev/go-item-reviews/internal/store"
	"github.com/MKhiriev/go-item-reviews/internal/utils"
	"github.com/MKhiriev/go-item-reviews/internal/validators"
	"github.com/MKhiriev/go-item-reviews/models"
	"github.com/google/uuid"
)

type commentService struct {
	commentRepository store.CommentRepository

	validator validators.Validator
	ids       idGenerator

	logger *logger.Logger
}

func NewCommentService(commentRepository store.CommentRepository, validator validators.Validator, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		validator:         validator,
		ids:               utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

func (s *commentService) CreateComment(ctx context.Context, userID, reviewID uuid.UUID, request models.CommentRequest) (models.Comment, error) {
	log := logger.FromContext(ctx).With().
		Str("user_id", userID.String()).
		Str("review_id", reviewID.String()).
		Logger()

	if err := validate(ctx, s.validator, request); err != nil {
		log.Err(err).Msg("invalid comment data provided")
		return models.Comment{}, err
	}

	comment, err := s.commentRepository.CreateComment(ctx, models.Comment{
		CommentID: s.ids.Generate(),
		UserID:    userID,
		ReviewID:  reviewID,
		Text:      request.Text,
	})
	if err != nil {
		log.Err(err).Msg("comment creation ended with error")
		return models.Comment{}, fmt.Errorf("comment creation ended with error: %w", err)
	}

	return comment, nil
}

func (s *commentService) ListCommentsForReview(ctx context.Context, reviewID uuid.UUID) ([]models.Comment, error) {
	comments, err := s.commentRepository.ListCommentsForReview(ctx, reviewID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("review_id", reviewID.String()).Msg("listing review comments failed")
		return nil, fmt.Errorf("listing review comments failed: %w", err)
	}

	return comments, nil
}

func (s *commentService) ListCommentsByUser(ctx context.Context, userID uuid.UUID) ([]models.Comment, error) {
	comments, err := s.commentRepository.ListCommentsByUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID.String()).Msg("listing user comments failed")
		return nil, fmt.Errorf("listing user comments failed: %w", err)
	}

	return comments, nil
}

func (s *commentService) UpdateComment(ctx context.Context, update models.CommentUpdate) (models.Comment, error) {
	log := logger.FromContext(ctx).With().
		Str("comment_id", update.CommentID.String()).
		Str("user_id", update.UserID.String()).
		Logger()

	if err := validate(ctx, s.validator, update); err != nil {
		log.Err(err).Msg("invalid comment update provided")
		return models.Comment{}, err
	}

	comment, err := s.commentRepository.UpdateComment(ctx, update)
	if err != nil {
		log.Err(err).Msg("comment update failed")
		return models.Comment{}, fmt.Errorf("comment update failed: %w", err)
	}

	return comment, nil
}

func (s *commentService) DeleteComment(ctx context.Context, commentID, userID uuid.UUID) (models.Comment, error) {
	deleted, err := s.commentRepository.DeleteComment(ctx, commentID, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("comment_id", commentID.String()).
			Str("user_id", userID.String()).
			Msg("comment deletion failed")
		return models.Comment{}, fmt.Errorf("comment deletion failed: %w", err)
	}

	return deleted, nil
}
