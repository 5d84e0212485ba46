package domain

import (
	"time"
)

// User represents a registered account. Every plan, workout and log row
// belongs to exactly one user; the user id is the sole ownership key.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"` // Unique
	Email        string    `json:"email"`    // Unique
	PasswordHash string    `json:"-"`        // Never expose this via JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
