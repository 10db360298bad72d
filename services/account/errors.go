package account

import "errors"

// Sentinel errors let each call site state which failures it can produce.
// Anything else coming out of the usecase is an external failure and is
// collapsed to a 500 at the handler boundary.
var (
	// ErrEmailRegistered is returned when registration finds an existing
	// account with the same email.
	ErrEmailRegistered = errors.New("email is already registered")

	// ErrInvalidPhone is returned when a phone number fails the mobile
	// number syntax check before any platform call is made.
	ErrInvalidPhone = errors.New("invalid phone number")

	// ErrAccountNotFound is returned when an update matches no account
	// record on the platform.
	ErrAccountNotFound = errors.New("account not found")
)
