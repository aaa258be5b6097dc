// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed Go client for the item-reviews REST API.
//
// The primary abstraction is [ServerAdapter]. The package ships an HTTP
// implementation built on resty ([NewHTTPServerAdapter]).
//
// Non-2xx responses are mapped to the sentinel values in errors.go so that
// callers can use [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized]
// for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-item-reviews/models"
	"github.com/google/uuid"
)

// ServerAdapter is the client side of the item-reviews API.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when none is set.
	Token() string

	// Register creates an account. It does not log in.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates and stores the returned token via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Me returns the user the stored token belongs to.
	Me(ctx context.Context) (models.User, error)

	// DeleteUser removes the account of the token owner.
	DeleteUser(ctx context.Context, userID uuid.UUID) error

	ListItems(ctx context.Context) ([]models.Item, error)
	GetItem(ctx context.Context, itemID uuid.UUID) (models.ItemDetails, error)
	CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error

	ListItemReviews(ctx context.Context, itemID uuid.UUID) ([]models.Review, error)
	CreateReview(ctx context.Context, itemID uuid.UUID, req models.ReviewRequest) (models.Review, error)
	MyReviews(ctx context.Context) ([]models.Review, error)
	UpdateReview(ctx context.Context, userID, reviewID uuid.UUID, req models.ReviewRequest) (models.Review, error)
	DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error

	ListReviewComments(ctx context.Context, itemID, reviewID uuid.UUID) ([]models.Comment, error)
	CreateComment(ctx context.Context, itemID, reviewID uuid.UUID, req models.CommentRequest) (models.Comment, error)
	MyComments(ctx context.Context) ([]models.Comment, error)
	UpdateComment(ctx context.Context, userID, commentID uuid.UUID, req models.CommentRequest) (models.Comment, error)
	DeleteComment(ctx context.Context, userID, commentID uuid.UUID) error

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
