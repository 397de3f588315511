package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest password bcrypt takes into account.
const MaxPasswordBytes = 72

// PasswordHasher produces and checks salted one-way password hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) (bool, error)
}

// BcryptHasher is a PasswordHasher backed by bcrypt. Every hash carries its
// own random salt, so verification needs nothing but the stored string.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the given cost; out-of-range values
// fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the bcrypt hash of password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether password matches hash. A mismatch is (false, nil);
// a hash that cannot be compared at all is an error. Passwords longer than
// MaxPasswordBytes never match, since bcrypt would only compare their prefix.
func (h *BcryptHasher) Verify(password, hash string) (bool, error) {
	if len(password) > MaxPasswordBytes {
		return false, nil
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("failed to verify password: %w", err)
	}
}
