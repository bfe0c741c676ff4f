package models

import (
	"time"
)

// Challenge represents a one-time verification code issued against a phone number
type Challenge struct {
	Phone     string    `json:"phone"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RequestCodeRequest is the payload for requesting a verification code
type RequestCodeRequest struct {
	Phone string `json:"phone" validate:"required"`
}

// VerifyCodeRequest is the payload for validating a verification code
type VerifyCodeRequest struct {
	Phone string `json:"phone" validate:"required"`
	Code  string `json:"code" validate:"required"`
}

// AuthResponse is returned after successful phone verification.
// Token is the session secret; Identity is the normalized phone that keys
// the user across profile, order and session records.
type AuthResponse struct {
	Identity  string `json:"identity"`
	UserID    string `json:"user_id"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}
