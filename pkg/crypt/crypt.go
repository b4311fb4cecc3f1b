// Package crypt holds forno's credential-verification helpers.
//
// The admin override is the skeleton-key credential accepted by the legacy
// password-per-order commands. It is never compiled in: it comes from config,
// either plain (ADMIN_OVERRIDE) or as a bcrypt hash (ADMIN_OVERRIDE_HASH).
// The hash form wins when both are set.
package crypt

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/shashiranjanraj/forno/config"
)

// HashPassword returns a bcrypt hash of the plain-text password.
// Useful for generating an ADMIN_OVERRIDE_HASH value.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a bcrypt hash against the plain-text candidate.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// VerifyOverride reports whether candidate matches the configured admin
// override credential. An empty candidate never matches, and with no override
// configured nothing matches.
func VerifyOverride(candidate string) bool {
	if candidate == "" {
		return false
	}
	if hash := config.AdminOverrideHash(); hash != "" {
		return CheckPassword(hash, candidate)
	}
	if plain := config.AdminOverride(); plain != "" {
		return subtle.ConstantTimeCompare([]byte(plain), []byte(candidate)) == 1
	}
	return false
}
