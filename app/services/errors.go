package services

import "errors"

// The failure taxonomy shared by all services. Every error here is terminal
// to the invocation: the command surface prints one line and exits non-zero.
var (
	// ErrDuplicateAccount — account creation with a username that already exists.
	ErrDuplicateAccount = errors.New("an account with that username already exists")

	// ErrInvalidCredentials covers wrong username, wrong password and unknown
	// username alike. The cases are deliberately not distinguished, so the
	// message cannot be used to enumerate usernames.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrAuthorizationDenied — authenticated but not allowed: insufficient
	// role, self-promotion, admin self-deletion, non-owner cancellation.
	ErrAuthorizationDenied = errors.New("you are not allowed to do that")

	// ErrAccountNotFound — the target account does not exist.
	ErrAccountNotFound = errors.New("account not found")

	// ErrNoOrdersFound — the cancellation candidate set is empty.
	ErrNoOrdersFound = errors.New("no orders found")

	// ErrInvalidSelection — a disambiguation index that is out of range or
	// not a number.
	ErrInvalidSelection = errors.New("invalid selection")
)
