package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-item-reviews/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DBTX is the subset of [*sql.DB] the repositories run statements through.
// Every call borrows a pooled connection and returns it when the row or
// rows are closed.
type DBTX interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// ErrorClassificator decides whether a failed database operation may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user, whose Password already holds the bcrypt hash,
	// and returns the stored record without the hash.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns the user including the password hash.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)
	// DeleteUser removes the user together with its reviews and comments.
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

// ItemRepository persists reviewable items.
type ItemRepository interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	ListItems(ctx context.Context) ([]models.Item, error)
	FindItemByID(ctx context.Context, itemID uuid.UUID) (models.Item, error)
	// DeleteItem removes the item together with its reviews and their comments.
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
}

// ReviewRepository persists reviews. Update and delete only touch rows owned
// by the given user.
type ReviewRepository interface {
	CreateReview(ctx context.Context, review models.Review) (models.Review, error)
	ListReviewsForItem(ctx context.Context, itemID uuid.UUID) ([]models.Review, error)
	ListReviewsByUser(ctx context.Context, userID uuid.UUID) ([]models.Review, error)
	// AverageScoreForItem returns the mean score rounded to two decimals,
	// or 0 when the item has no reviews.
	AverageScoreForItem(ctx context.Context, itemID uuid.UUID) (float64, error)
	UpdateReview(ctx context.Context, update models.ReviewUpdate) (models.Review, error)
	// DeleteReview returns the removed row.
	DeleteReview(ctx context.Context, reviewID, userID uuid.UUID) (models.Review, error)
}

// CommentRepository persists comments. Update and delete only touch rows
// owned by the given user.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	ListCommentsForReview(ctx context.Context, reviewID uuid.UUID) ([]models.Comment, error)
	ListCommentsByUser(ctx context.Context, userID uuid.UUID) ([]models.Comment, error)
	UpdateComment(ctx context.Context, update models.CommentUpdate) (models.Comment, error)
	// DeleteComment returns the removed row.
	DeleteComment(ctx context.Context, commentID, userID uuid.UUID) (models.Comment, error)
}
