package domain

import (
	"errors"
	"time"
)

// Role determines which dashboard segment and capabilities a user may access.
type Role string

const (
	RoleJobSeeker Role = "job_seeker"
	RoleEmployer  Role = "employer"
)

// Valid reports whether r is one of the two portal roles.
func (r Role) Valid() bool {
	return r == RoleJobSeeker || r == RoleEmployer
}

var ErrInvalidInput = errors.New("invalid input")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrStorageUnavailable = errors.New("storage unavailable")

// User models an account in the portal. PasswordHash is empty for
// identities managed entirely by an external provider and is never
// serialized.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Sanitized returns a copy safe to hand to any caller outside the
// credential service: all password material stripped.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.PasswordHash = ""
	return &clone
}
