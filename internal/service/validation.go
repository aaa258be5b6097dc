package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-item-reviews/internal/store"
	"github.com/MKhiriev/go-item-reviews/internal/validators"
	"github.com/google/uuid"
)

// validate runs v over obj. A failure matches both ErrInvalidDataProvided and
// store.ErrConstraintViolation, the same as a row the database rejected.
func validate(ctx context.Context, v validators.Validator, obj any) error {
	if err := v.Validate(ctx, obj); err != nil {
		return fmt.Errorf("%w: %w: %w", ErrInvalidDataProvided, store.ErrConstraintViolation, err)
	}
	return nil
}

// CheckSameUser returns ErrForbidden unless the authenticated user is the
// user named by the request path.
func CheckSameUser(authenticatedUserID, pathUserID uuid.UUID) error {
	if authenticatedUserID != pathUserID {
		return ErrForbidden
	}
	return nil
}
