// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. The password hash never leaves the
// persistence boundary through JSON serialization.
type User struct {
	ID              uuid.UUID `json:"id"`                // The Global Unique Identifier (GUID) for the user.
	Email           string    `json:"email"`             // The user's login identifier.
	Nickname        string    `json:"nickname"`          // The user's display name.
	ProfileImageURL string    `json:"profile_image_url"` // Optional avatar URL.
	PasswordHash    string    `json:"-"`                 // bcrypt hash of the user's password.
	CreatedAt       time.Time `json:"created_at"`        // Timestamp of when this account was created.
	UpdatedAt       time.Time `json:"updated_at"`        // Timestamp of the last modification.
}

// UserSummary is the compact author shape embedded in review payloads.
type UserSummary struct {
	ID              uuid.UUID `json:"id"`
	Nickname        string    `json:"nickname"`
	ProfileImageURL string    `json:"profile_image_url"`
}

// Summary returns the compact author shape for embedding in other payloads.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:              u.ID,
		Nickname:        u.Nickname,
		ProfileImageURL: u.ProfileImageURL,
	}
}
