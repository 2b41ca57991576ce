package domain

import "errors"

var (
	ErrMissingFields      = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidRecordID    = errors.New("invalid record id")
	ErrNonScalarField     = errors.New("record fields must be scalar values")

	// ErrBackendUnavailable is returned when the process started without a
	// reachable document store and a store-backed operation was attempted.
	ErrBackendUnavailable = errors.New("backend not configured: missing database credentials")
)
