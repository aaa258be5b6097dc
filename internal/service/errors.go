package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid email or password")

	ErrMissingToken        = errors.New("missing token")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrForbidden is returned when a user acts on a path that names a
	// different user.
	ErrForbidden = errors.New("access to a different user's data is forbidden")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
