package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest input bcrypt reads. Longer passwords are
// cut to this length before hashing and comparing.
const MaxPasswordBytes = 72

// ErrPasswordMismatch is returned by ComparePassword when the plaintext does
// not match the stored hash.
var ErrPasswordMismatch = errors.New("password does not match")

// HashPassword returns the salted bcrypt hash of password at the given cost.
//
// Costs below bcrypt.MinCost are raised to bcrypt.DefaultCost by the bcrypt
// package itself. Only the first [MaxPasswordBytes] bytes of password are
// significant.
//
// Example usage:
//
//	hash, err := utils.HashPassword("joepassword", bcrypt.DefaultCost)
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(bcryptInput(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// ComparePassword checks password against a hash produced by HashPassword.
//
// Returns:
//   - nil on match
//   - ErrPasswordMismatch when the password is wrong
//   - a wrapped bcrypt error when hash is malformed
func ComparePassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), bcryptInput(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("error comparing password: %w", err)
	}
}

func bcryptInput(password string) []byte {
	b := []byte(password)
	if len(b) > MaxPasswordBytes {
		b = b[:MaxPasswordBytes]
	}
	return b
}
