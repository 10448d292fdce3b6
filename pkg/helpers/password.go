package helpers

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt work factor; matches bcrypt.DefaultCost.
const passwordHashCost = 10

// HashPassword hashes the plain text password using bcrypt
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword compares a bcrypt hash with a plain password.
// A genuine mismatch returns (false, nil); a malformed digest or any other
// bcrypt failure returns a non-nil error so callers can log it as an
// internal failure while still signaling the same error kind outward.
func CheckPassword(hash string, plain string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}
