package service

import (
	"fmt"

	"github.com/MKhiriev/go-item-reviews/internal/config"
	"github.com/MKhiriev/go-item-reviews/internal/logger"
	"github.com/MKhiriev/go-item-reviews/internal/store"
	"github.com/MKhiriev/go-item-reviews/internal/validators"
)

type Services struct {
	AuthService    AuthService
	ItemService    ItemService
	ReviewService  ReviewService
	CommentService CommentService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewStructValidator()

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		ItemService:    NewItemService(storages.ItemRepository, storages.ReviewRepository, validator, logger),
		ReviewService:  NewReviewService(storages.ReviewRepository, validator, logger),
		CommentService: NewCommentService(storages.CommentRepository, validator, logger),
		AppInfoService: appInfoService,
	}, nil
}
