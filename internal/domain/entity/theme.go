package entity

import (
	"time"

	"github.com/google/uuid"
)

// Theme is a tag category associated with bakeries, e.g. a bread style like
// "크루아상". Themes drive the theme_visit badge-condition dimension.
type Theme struct {
	ID          uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the theme.
	Name        string    `json:"name"`        // Display name, also the badge-condition key.
	Description string    `json:"description"` // Optional description.
	Category    string    `json:"category"`    // Grouping category for the explore view.
	Icon        string    `json:"icon"`        // Emoji or icon identifier.
	Color       string    `json:"color"`       // Display color hint.
	CreatedAt   time.Time `json:"created_at"`  // Timestamp of when the theme was seeded.
}
