// Package models defines forno's persisted entities and their table schemas.
package models

import (
	"fmt"
	"strings"
)

// TimeLayout is the wall-clock format stamped on orders.
// There is no date component: orders are not distinguishable across days.
const TimeLayout = "15:04"

// Pizza sizes. The on-disk spellings are lower case.
const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

// DefaultSize is used when an order is placed without an explicit size.
const DefaultSize = SizeMedium

// ParseSize normalizes a size spelling. An empty value maps to DefaultSize;
// anything other than the three known sizes is an error, never passed through.
func ParseSize(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultSize, nil
	case SizeSmall:
		return SizeSmall, nil
	case SizeMedium:
		return SizeMedium, nil
	case SizeLarge:
		return SizeLarge, nil
	default:
		return "", fmt.Errorf("unknown size %q (want small, medium or large)", s)
	}
}

// Account is one row of the accounts table.
// The password is stored and compared as plain text — a documented property
// of the table format, not a recommendation. See DESIGN.md.
type Account struct {
	Username string `json:"username"`
	Password string `json:"-"` // never serialised
	Status   string `json:"status"`
}

// AccountFields is the accounts table header, in column order.
var AccountFields = []string{"username", "password", "status"}

// Order is one row of the account-backed orders table.
type Order struct {
	ID        string `json:"id"` // 8 hex chars, unique within the ledger
	Username  string `json:"username"`
	Size      string `json:"size"`
	OrderTime string `json:"order_time"` // HH:MM, 24-hour
}

// OrderFields is the orders table header, in column order.
var OrderFields = []string{"id", "username", "size", "order_time"}

// LegacyOrder is one row of the password-per-order table used by the legacy
// commands, which predate the account registry. The password belongs to the
// order itself, not to any account.
type LegacyOrder struct {
	Customer  string `json:"customer"`
	Size      string `json:"size"`
	OrderTime string `json:"order_time"`
	Password  string `json:"-"`
}

// LegacyOrderFields is the legacy table header, in column order.
var LegacyOrderFields = []string{"customer", "size", "order_time", "password"}
