package usecase

import (
	"context"

	"breadmap/internal/domain/entity"

	"github.com/google/uuid"
)

// BakeryListInput narrows and orders bakery listings.
type BakeryListInput struct {
	District string
	ThemeID  *uuid.UUID
	Query    string
	Limit    int
	Offset   int

	// When NearLat/NearLng are set, results are ordered by distance from
	// that point instead of registration time.
	NearLat *float64
	NearLng *float64
}

// CreateBakeryInput carries the fields needed to register a bakery.
type CreateBakeryInput struct {
	Name           string
	Address        string
	District       string
	Lat            float64
	Lng            float64
	SignatureBread string
	Description    string
	ImageURL       string
	CreatedBy      uuid.UUID
}

// DuplicateCheckInput narrows the duplicate scan. At least one of Name or the
// coordinate pair must be set.
type DuplicateCheckInput struct {
	Name string
	Lat  *float64
	Lng  *float64
}

// DuplicateCandidate is a registered bakery that may collide with the one
// being submitted.
type DuplicateCandidate struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	DistanceM   *int      `json:"distance,omitempty"` // meters, set for nearby matches
	MatchReason string    `json:"matchReason"`        // "same_name" or "nearby"
}

// DuplicateCheckResult reports possible duplicates for a bakery submission.
type DuplicateCheckResult struct {
	HasDuplicates bool                 `json:"hasDuplicates"`
	Duplicates    []DuplicateCandidate `json:"duplicates"`
	Count         int                  `json:"count"`
}

// BakeryUsecase defines the interface for bakery discovery use cases
type BakeryUsecase interface {
	// ListBakeries retrieves bakeries matching the input, rating aggregates included
	ListBakeries(ctx context.Context, input BakeryListInput) ([]*entity.Bakery, error)

	// GetBakery retrieves a single bakery with its rating aggregate and reviews
	GetBakery(ctx context.Context, id uuid.UUID) (*entity.Bakery, []*entity.Review, error)

	// CreateBakery registers a new bakery
	CreateBakery(ctx context.Context, input CreateBakeryInput) (*entity.Bakery, error)

	// ListThemes retrieves the theme catalog
	ListThemes(ctx context.Context) ([]*entity.Theme, error)

	// CheckDuplicates scans for already-registered bakeries with the same name
	// or within 100 meters of the given coordinates
	CheckDuplicates(ctx context.Context, input DuplicateCheckInput) (*DuplicateCheckResult, error)
}
