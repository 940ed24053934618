package auth

import (
	"errors"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("an account with this username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrMFARequired        = errors.New("mfa code required")
	ErrMFAInvalid         = errors.New("invalid mfa code")
)

// UserContext is the authenticated identity carried on request contexts.
type UserContext struct {
	UserID     string
	Username   string
	Role       string
	ShalarthID string
}

// User is an account that can sign in: one admin account (or more) and one
// teacher account per Shalarth ID.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	ShalarthID   string    `json:"shalarthId,omitempty"`
	MFAEnabled   bool      `json:"mfaEnabled"`
	MFASecretEnc []byte    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
