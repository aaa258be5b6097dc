package store

import "github.com/MKhiriev/go-item-reviews/internal/logger"

// Storages groups the repositories handed to the service layer.
type Storages struct {
	UserRepository    UserRepository
	ItemRepository    ItemRepository
	ReviewRepository  ReviewRepository
	CommentRepository CommentRepository
}

// NewStorages builds every repository on top of the shared pool db.
func NewStorages(db DBTX, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		ItemRepository:    NewItemRepository(db, logger),
		ReviewRepository:  NewReviewRepository(db, logger),
		CommentRepository: NewCommentRepository(db, logger),
	}
}
