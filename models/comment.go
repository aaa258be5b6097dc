package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a reply by a user to a specific review.
// At most one comment exists per (UserID, ReviewID) pair.
type Comment struct {
	CommentID uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id" validate:"required"`
	ReviewID  uuid.UUID `json:"review_id" validate:"required"`
	Text      string    `json:"text" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}

// CommentRequest is the body of comment create and update requests.
type CommentRequest struct {
	Text string `json:"text" validate:"required"`
}

// CommentUpdate identifies the comment to change and its new text.
type CommentUpdate struct {
	CommentID uuid.UUID `validate:"required"`
	UserID    uuid.UUID `validate:"required"`
	Text      string    `validate:"required"`
}
