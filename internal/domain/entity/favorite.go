package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite marks a bakery a user wants to keep track of.
type Favorite struct {
	ID        uuid.UUID `json:"id"`               // The Global Unique Identifier (GUID) for the favorite.
	UserID    uuid.UUID `json:"user_id"`          // The user who favorited the bakery.
	BakeryID  uuid.UUID `json:"bakery_id"`        // The favorited bakery.
	CreatedAt time.Time `json:"created_at"`       // Timestamp of when the favorite was created.
	Bakery    *Bakery   `json:"bakery,omitempty"` // Joined bakery, populated on list reads.
}

// FavoriteShare is a user's public share link for their favorites list. A user
// has at most one; minting is idempotent and revoking deletes the row.
type FavoriteShare struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	ShareToken string    `json:"share_token"`
	CreatedAt  time.Time `json:"created_at"`
}
