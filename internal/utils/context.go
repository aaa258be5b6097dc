// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes typed context keys, bcrypt password hashing, HTTP response
// writing, JWT token generation and validation, and UUID generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-item-reviews/models"
	"github.com/google/uuid"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey is the key of the authenticated user's [uuid.UUID].
	UserIDCtxKey = contextKey("userID")

	// ClaimsCtxKey is the key of the verified token's [*models.Claims].
	ClaimsCtxKey = contextKey("claims")
)

// WithUser returns a copy of ctx carrying the identity from claims under
// both [UserIDCtxKey] and [ClaimsCtxKey].
func WithUser(ctx context.Context, claims *models.Claims) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, claims.UserID)
	return context.WithValue(ctx, ClaimsCtxKey, claims)
}

// GetUserIDFromContext retrieves the user identifier from the context.
//
// ok is false when the value is missing or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(uuid.UUID)
	return userID, ok
}

// GetClaimsFromContext retrieves the verified token claims from the context.
func GetClaimsFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(*models.Claims)
	return claims, ok && claims != nil
}
