// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not hold a "Bearer <token>" pair.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded into
	// the expected model.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidPathParam is returned when a path segment that must hold an
	// id is not a UUID.
	ErrInvalidPathParam = errors.New("invalid path parameter")

	// ErrNoUserInContext is returned when a protected handler runs without
	// the auth middleware having stored the user.
	ErrNoUserInContext = errors.New("no authenticated user in request context")
)
