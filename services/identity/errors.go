package identity

import "errors"

// Verification errors
var (
	ErrNoActiveChallenge = errors.New("no active challenge for this phone")
	ErrCodeMismatch      = errors.New("verification code does not match")
	ErrTooManyAttempts   = errors.New("maximum verification attempts exceeded")
)

// Profile errors
var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrNotVerified     = errors.New("profile has no verified identity attached")
)
