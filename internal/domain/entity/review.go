package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a user's rating of a bakery. Ratings are integers between 1 and 5;
// comment and photo are optional.
type Review struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the review.
	BakeryID  uuid.UUID `json:"bakery_id"`  // The bakery being reviewed.
	UserID    uuid.UUID `json:"user_id"`    // The author of the review.
	Rating    int       `json:"rating"`     // Integer rating between 1 and 5.
	Comment   string    `json:"comment"`    // Optional free-form comment.
	PhotoURL  string    `json:"photo_url"`  // Optional uploaded photo URL.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the review was written.

	// Joined shapes, populated on list reads.
	User   *UserSummary   `json:"user,omitempty"`
	Bakery *BakerySummary `json:"bakery,omitempty"`
}

// BakerySummary is the compact bakery shape embedded in review payloads.
type BakerySummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ImageURL string    `json:"image_url"`
}

// PerfectRating is the rating value that counts toward perfect-rating badges.
const PerfectRating = 5
