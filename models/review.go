package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is a scored opinion by one user about one item.
// At most one review exists per (UserID, ItemID) pair.
type Review struct {
	ReviewID  uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id" validate:"required"`
	ItemID    uuid.UUID `json:"item_id" validate:"required"`
	Score     int       `json:"score" validate:"min=1,max=5"`
	Text      string    `json:"text" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Review model.
func (r Review) TableName() string {
	return "reviews"
}

// ReviewRequest is the body of POST /api/items/{itemId}/reviews and
// PUT /api/users/{userId}/reviews/{reviewId}.
type ReviewRequest struct {
	Score int    `json:"score" validate:"min=1,max=5"`
	Text  string `json:"text" validate:"required"`
}

// ReviewUpdate identifies the review to change and its new content.
// The update only applies when ReviewID belongs to UserID.
type ReviewUpdate struct {
	ReviewID uuid.UUID `validate:"required"`
	UserID   uuid.UUID `validate:"required"`
	Score    int       `validate:"min=1,max=5"`
	Text     string    `validate:"required"`
}
