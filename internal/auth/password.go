package auth

import (
	"golang.org/x/crypto/bcrypt"

	"creatorhub/internal/apperr"
)

const (
	// MinPasswordLength is the registration policy minimum.
	MinPasswordLength = 8
	// MaxPasswordBytes is bcrypt's hard input limit.
	MaxPasswordBytes = 72
)

// ValidatePassword enforces the boundary length policy before any hashing.
func ValidatePassword(password string) error {
	if len(password) > MaxPasswordBytes {
		return apperr.Invalid("Password too long. Maximum length is 72 characters.")
	}
	if len(password) < MinPasswordLength {
		return apperr.Invalid("Password too short. Minimum length is 8 characters.")
	}
	return nil
}

// PasswordHasher hashes and verifies passwords with bcrypt. A zero Cost
// uses the scheme default.
type PasswordHasher struct {
	Cost int
}

// Hash produces a salted one-way hash. Oversized input is rejected before
// hashing since bcrypt silently truncates beyond 72 bytes.
func (h PasswordHasher) Hash(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", apperr.Invalid("Password too long. Maximum length is 72 characters.")
	}
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether password matches hash, using bcrypt's own
// constant-time comparison.
func (h PasswordHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
