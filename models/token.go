package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the JWT claim set carried by every bearer token.
//
// It embeds [jwt.RegisteredClaims] for the standard claims (iss, sub, exp,
// iat) and adds the public identity of the authenticated user.
type Claims struct {
	UserID   uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`

	jwt.RegisteredClaims
}

// User returns the identity encoded in the claims as a [User].
func (c *Claims) User() User {
	return User{
		UserID:   c.UserID,
		Username: c.Username,
		Email:    c.Email,
	}
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// UserClaims is the decoded claim set. Populated both on issue and on parse.
	UserClaims *Claims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// GetUserID returns the user identifier from the token's "sub" claim.
//
// Returns an error if the subject claim is missing or is not a UUID.
func (t *Token) GetUserID() (uuid.UUID, error) {
	if t.UserClaims == nil {
		return uuid.Nil, fmt.Errorf("error extracting UserID from token: no claims")
	}

	userID, err := uuid.Parse(t.UserClaims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("error converting UserID from token to uuid: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
