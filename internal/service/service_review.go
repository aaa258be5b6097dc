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

type reviewService struct {
	reviewRepository store.ReviewRepository

	validator validators.Validator
	ids       idGenerator

	logger *logger.Logger
}

func NewReviewService(reviewRepository store.ReviewRepository, validator validators.Validator, logger *logger.Logger) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		validator:        validator,
		ids:              utils.NewUUIDGenerator(),
		logger:           logger,
	}
}

// CreateReview stores a review of itemID by userID. A second review of the
// same item by the same user fails with store.ErrUniqueViolation, an unknown
// item or user with store.ErrReferenceNotFound.
func (s *reviewService) CreateReview(ctx context.Context, userID, itemID uuid.UUID, request models.ReviewRequest) (models.Review, error) {
	log := logger.FromContext(ctx).With().
		Str("user_id", userID.String()).
		Str("item_id", itemID.String()).
		Logger()

	if err := validate(ctx, s.validator, request); err != nil {
		log.Err(err).Int("score", request.Score).Msg("invalid review data provided")
		return models.Review{}, err
	}

	review, err := s.reviewRepository.CreateReview(ctx, models.Review{
		ReviewID: s.ids.Generate(),
		UserID:   userID,
		ItemID:   itemID,
		Score:    request.Score,
		Text:     request.Text,
	})
	if err != nil {
		log.Err(err).Msg("review creation ended with error")
		return models.Review{}, fmt.Errorf("review creation ended with error: %w", err)
	}

	return review, nil
}

func (s *reviewService) ListReviewsForItem(ctx context.Context, itemID uuid.UUID) ([]models.Review, error) {
	reviews, err := s.reviewRepository.ListReviewsForItem(ctx, itemID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("item_id", itemID.String()).Msg("listing item reviews failed")
		return nil, fmt.Errorf("listing item reviews failed: %w", err)
	}

	return reviews, nil
}

func (s *reviewService) ListReviewsByUser(ctx context.Context, userID uuid.UUID) ([]models.Review, error) {
	reviews, err := s.reviewRepository.ListReviewsByUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID.String()).Msg("listing user reviews failed")
		return nil, fmt.Errorf("listing user reviews failed: %w", err)
	}

	return reviews, nil
}

// UpdateReview replaces score and text of a review owned by update.UserID.
func (s *reviewService) UpdateReview(ctx context.Context, update models.ReviewUpdate) (models.Review, error) {
	log := logger.FromContext(ctx).With().
		Str("review_id", update.ReviewID.String()).
		Str("user_id", update.UserID.String()).
		Logger()

	if err := validate(ctx, s.validator, update); err != nil {
		log.Err(err).Int("score", update.Score).Msg("invalid review update provided")
		return models.Review{}, err
	}

	review, err := s.reviewRepository.UpdateReview(ctx, update)
	if err != nil {
		log.Err(err).Msg("review update failed")
		return models.Review{}, fmt.Errorf("review update failed: %w", err)
	}

	return review, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID, userID uuid.UUID) (models.Review, error) {
	deleted, err := s.reviewRepository.DeleteReview(ctx, reviewID, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("review_id", reviewID.String()).
			Str("user_id", userID.String()).
			Msg("review deletion failed")
		return models.Review{}, fmt.Errorf("review deletion failed: %w", err)
	}

	return deleted, nil
}
