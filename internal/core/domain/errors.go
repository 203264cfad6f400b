package domain

import "errors"

var (
	// ErrUnauthorized is returned when a caller lacks a permission token or
	// boat scope for the requested operation.
	ErrUnauthorized = errors.New("Unauthorized")

	ErrBookingNotFound  = errors.New("Booking not found")
	ErrUserNotFound     = errors.New("User not found")
	ErrBoatNotFound     = errors.New("Boat not found")
	ErrTripTypeNotFound = errors.New("Trip type not found")

	// ErrMissingPassword is returned when a user is created without a credential.
	ErrMissingPassword = errors.New("Password is required")

	// ErrInvalidCredentials covers unknown or inactive login emails; the
	// deliberately more specific ErrInvalidPassword covers a known user with a
	// wrong password.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrInvalidPassword    = errors.New("Invalid password")

	// ErrTableNotFound indicates a misconfigured backing store. It is fatal:
	// callers are expected to abort rather than convert it to an envelope.
	ErrTableNotFound = errors.New("table not found")
)
