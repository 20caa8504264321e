package entity

import (
	"time"

	"github.com/google/uuid"
)

// Bakery is a point of interest on the bread map. The rating aggregate is
// derived from current reviews on every read and never stored.
type Bakery struct {
	ID             uuid.UUID        `json:"id"`                   // The Global Unique Identifier (GUID) for the bakery.
	Name           string           `json:"name"`                 // Display name of the bakery.
	Address        string           `json:"address"`              // Full street address.
	District       string           `json:"district"`             // Coarse neighborhood label, e.g. "성수" or "망원".
	Lat            float64          `json:"lat"`                  // Latitude of the storefront.
	Lng            float64          `json:"lng"`                  // Longitude of the storefront.
	SignatureBread string           `json:"signature_bread"`      // The bread the bakery is known for.
	Description    string           `json:"description"`          // Free-form description.
	ImageURL       string           `json:"image_url"`            // Representative photo URL.
	CreatedBy      *uuid.UUID       `json:"created_by,omitempty"` // The user who registered the bakery, if known.
	CreatedAt      time.Time        `json:"created_at"`           // Timestamp of registration.
	Rating         *RatingAggregate `json:"rating,omitempty"`     // Derived review aggregate; nil when not computed.
}

// RatedBakery is a bakery snapshot row with its recomputed review aggregate,
// the shape the recommendation engine consumes.
type RatedBakery struct {
	Bakery
	ReviewCount   int     `json:"review_count"`
	AverageRating float64 `json:"average_rating"`
}
