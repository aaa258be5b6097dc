// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the globally unique identifier of the user (UUIDv7).
	UserID uuid.UUID `json:"id"`

	// Username is the unique public handle of the user.
	Username string `json:"username" validate:"required,max=50"`

	// Email is the unique address used to log in.
	Email string `json:"email" validate:"required,email,max=100"`

	// Password holds the plaintext password on the way in (register, login)
	// and the bcrypt hash after it was read from the database.
	// It is never serialized to JSON.
	Password string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of the user with the password credential stripped.
func (u User) Public() User {
	u.Password = ""
	return u
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=1,max=72"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
