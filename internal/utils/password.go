package utils

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the bcrypt hash of password at the given cost.
//
// bcrypt only reads the first 72 bytes of its input; longer passwords are
// rejected with [bcrypt.ErrPasswordTooLong].
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the bcrypt hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// NewDummyHash hashes a random secret at cost. Logins for unknown accounts
// are checked against it so they take as long as a check against a real
// hash of the same cost.
func NewDummyHash(cost int) (string, error) {
	return HashPassword(uuid.NewString(), cost)
}
