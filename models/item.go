package models

import (
	"time"

	"github.com/google/uuid"
)

// Item is the entity being reviewed (e.g. a car model).
type Item struct {
	ItemID      uuid.UUID `json:"id"`
	Name        string    `json:"name" validate:"required,max=100"`
	Description string    `json:"description" validate:"required"`

	// AverageScore is the stored display average, kept current by the
	// reviews trigger in the database.
	AverageScore float64   `json:"average_score"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}

// ItemDetails is an item together with its reviews and the mean score
// computed over them, rounded to two decimals. AverageScore is computed live
// from the returned reviews, not read from the trigger-maintained
// items.average_score carried in Item.
type ItemDetails struct {
	Item         Item     `json:"item"`
	Reviews      []Review `json:"reviews"`
	AverageScore float64  `json:"average_score"`
}

// CreateItemRequest is the body of POST /api/items.
type CreateItemRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"required"`
}
