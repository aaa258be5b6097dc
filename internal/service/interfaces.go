package service

import (
	"context"

	"github.com/MKhiriev/go-item-reviews/models"
	"github.com/google/uuid"
)

type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (models.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type ItemService interface {
	CreateItem(ctx context.Context, request models.CreateItemRequest) (models.Item, error)
	ListItems(ctx context.Context) ([]models.Item, error)
	GetItemWithReviews(ctx context.Context, itemID uuid.UUID) (models.ItemDetails, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
}

type ReviewService interface {
	CreateReview(ctx context.Context, userID, itemID uuid.UUID, request models.ReviewRequest) (models.Review, error)
	ListReviewsForItem(ctx context.Context, itemID uuid.UUID) ([]models.Review, error)
	ListReviewsByUser(ctx context.Context, userID uuid.UUID) ([]models.Review, error)
	UpdateReview(ctx context.Context, update models.ReviewUpdate) (models.Review, error)
	DeleteReview(ctx context.Context, reviewID, userID uuid.UUID) (models.Review, error)
}

type CommentService interface {
	CreateComment(ctx context.Context, userID, reviewID uuid.UUID, request models.CommentRequest) (models.Comment, error)
	ListCommentsForReview(ctx context.Context, reviewID uuid.UUID) ([]models.Comment, error)
	ListCommentsByUser(ctx context.Context, userID uuid.UUID) ([]models.Comment, error)
	UpdateComment(ctx context.Context, update models.CommentUpdate) (models.Comment, error)
	DeleteComment(ctx context.Context, commentID, userID uuid.UUID) (models.Comment, error)
}

// AppInfoService exposes build and release facts of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// idGenerator issues identifiers for new rows.
type idGenerator interface {
	Generate() uuid.UUID
}
