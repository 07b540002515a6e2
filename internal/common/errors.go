// Package common defines shared sentinel errors used across the rgwadmin
// packages. Callers should use errors.Is to match these values; the
// wrapping error carries the offending input (config string, host/port,
// bucket name) verbatim.
package common

import "errors"

var (
	// Frontend configuration errors.
	ErrFrontendParse = errors.New("failed to determine RGW port")

	// Daemon selection errors.
	ErrNoDaemons      = errors.New("no RGW service is running")
	ErrDaemonNotFound = errors.New("no RGW daemon found with user-defined host and port")

	// Credential resolution errors.
	ErrNoCredentials = errors.New("no RGW credentials found")

	// Validation errors (bucket locking, placement targets, settings).
	ErrValidation = errors.New("validation error")
)
