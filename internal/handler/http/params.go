package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-item-reviews/internal/service"
	"github.com/MKhiriev/go-item-reviews/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	userIDParam    = "userId"
	itemIDParam    = "itemId"
	reviewIDParam  = "reviewId"
	commentIDParam = "commentId"
)

// uuidParam parses the chi URL parameter name as a UUID.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s=%q", ErrInvalidPathParam, name, raw)
	}
	return id, nil
}

// currentUserID returns the id stored by the auth middleware.
func currentUserID(r *http.Request) (uuid.UUID, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, ErrNoUserInContext
	}
	return userID, nil
}

// pathUserIsCurrentUser parses the {userId} path segment and checks that it
// names the authenticated user.
func pathUserIsCurrentUser(r *http.Request) (uuid.UUID, error) {
	currentID, err := currentUserID(r)
	if err != nil {
		return uuid.Nil, err
	}

	pathID, err := uuidParam(r, userIDParam)
	if err != nil {
		return uuid.Nil, err
	}

	if err = service.CheckSameUser(currentID, pathID); err != nil {
		return uuid.Nil, err
	}

	return currentID, nil
}

// decodeBody decodes the JSON request body into v.
func decodeBody(r *http.Request, v any) error {
	if err := utils.DecodeJSON(r, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
