// Package rbac provides role-based access control primitives for forno.
//
// Roles are stored verbatim in the accounts table, so the constants here are
// the canonical on-disk spellings.
package rbac

import "strings"

const (
	// RoleUser is the default role for new accounts.
	RoleUser = "USER"

	// RoleAdmin grants full order visibility and account administration.
	RoleAdmin = "ADMIN"
)

// Normalize maps a user-supplied role spelling to its canonical form.
// The second return is false for unknown roles.
func Normalize(role string) (string, bool) {
	switch strings.ToUpper(strings.TrimSpace(role)) {
	case RoleUser:
		return RoleUser, true
	case RoleAdmin:
		return RoleAdmin, true
	default:
		return "", false
	}
}

// IsAdmin reports whether role is the admin role.
func IsAdmin(role string) bool { return role == RoleAdmin }

// HasRole reports whether role is one of the allowed roles.
func HasRole(role string, allowed ...string) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}
