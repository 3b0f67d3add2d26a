package domain

import (
	"strings"
	"time"
)

// User is the stored account record. PasswordHash never leaves the store.
type User struct {
	ID           string    `json:"id,omitempty"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserIdentity is the read-only snapshot of the signed-in user that a view
// holds for the lifetime of one request. Only the fields the views use are
// carried.
type UserIdentity struct {
	ID    string
	Email string
}

// NewUserIdentity validates the identity returned by an auth collaborator.
func NewUserIdentity(id, email string) (*UserIdentity, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrInvalidIdentity
	}
	return &UserIdentity{ID: strings.TrimSpace(id), Email: email}, nil
}

// NormalizeEmail lowercases and trims an email address for lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
