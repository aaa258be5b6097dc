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

type itemService struct {
	itemRepository   store.ItemRepository
	reviewRepository store.ReviewRepository

	validator validators.Validator
	ids       idGenerator

	logger *logger.Logger
}

func NewItemService(itemRepository store.ItemRepository, reviewRepository store.ReviewRepository, validator validators.Validator, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository:   itemRepository,
		reviewRepository: reviewRepository,
		validator:        validator,
		ids:              utils.NewUUIDGenerator(),
		logger:           logger,
	}
}

func (s *itemService) CreateItem(ctx context.Context, request models.CreateItemRequest) (models.Item, error) {
	log := logger.FromContext(ctx)

	if err := validate(ctx, s.validator, request); err != nil {
		log.Err(err).Str("name", request.Name).Msg("invalid item data provided")
		return models.Item{}, err
	}

	item, err := s.itemRepository.CreateItem(ctx, models.Item{
		ItemID:      s.ids.Generate(),
		Name:        request.Name,
		Description: request.Description,
	})
	if err != nil {
		log.Err(err).Str("name", request.Name).Msg("item creation ended with error")
		return models.Item{}, fmt.Errorf("item creation ended with error: %w", err)
	}

	return item, nil
}

func (s *itemService) ListItems(ctx context.Context) ([]models.Item, error) {
	items, err := s.itemRepository.ListItems(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing items failed")
		return nil, fmt.Errorf("listing items failed: %w", err)
	}

	return items, nil
}

// GetItemWithReviews loads the item, its reviews newest first, and the mean
// score over those reviews. An unknown item fails with store.ErrNotFound.
func (s *itemService) GetItemWithReviews(ctx context.Context, itemID uuid.UUID) (models.ItemDetails, error) {
	log := logger.FromContext(ctx).With().Str("item_id", itemID.String()).Logger()

	item, err := s.itemRepository.FindItemByID(ctx, itemID)
	if err != nil {
		log.Err(err).Msg("item search by id failed")
		return models.ItemDetails{}, fmt.Errorf("item search by id failed: %w", err)
	}

	reviews, err := s.reviewRepository.ListReviewsForItem(ctx, itemID)
	if err != nil {
		log.Err(err).Msg("listing item reviews failed")
		return models.ItemDetails{}, fmt.Errorf("listing item reviews failed: %w", err)
	}

	average, err := s.reviewRepository.AverageScoreForItem(ctx, itemID)
	if err != nil {
		log.Err(err).Msg("computing average score failed")
		return models.ItemDetails{}, fmt.Errorf("computing average score failed: %w", err)
	}

	return models.ItemDetails{
		Item:         item,
		Reviews:      reviews,
		AverageScore: average,
	}, nil
}

func (s *itemService) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	if err := s.itemRepository.DeleteItem(ctx, itemID); err != nil {
		logger.FromContext(ctx).Err(err).Str("item_id", itemID.String()).Msg("item deletion failed")
		return fmt.Errorf("item deletion failed: %w", err)
	}

	return nil
}
