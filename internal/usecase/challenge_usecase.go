package usecase

import (
	"context"

	"breadmap/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateChallengeInput carries the fields needed to create a challenge with
// its initial bakery list.
type CreateChallengeInput struct {
	UserID      uuid.UUID
	Name        string
	Description string
	IsPublic    bool
	BakeryIDs   []uuid.UUID
}

// UpdateChallengeInput carries the mutable challenge fields.
type UpdateChallengeInput struct {
	Name        string
	Description string
	IsPublic    bool
	IsActive    bool
}

// ChallengeWithProgress pairs a challenge with its computed progress.
type ChallengeWithProgress struct {
	*entity.Challenge
	Progress entity.ChallengeProgress `json:"progress"`
}

// ChallengeUsecase defines the interface for challenge use cases
type ChallengeUsecase interface {
	// ListChallenges retrieves the user's challenges with progress computed
	ListChallenges(ctx context.Context, userID uuid.UUID) ([]ChallengeWithProgress, error)

	// GetChallenge retrieves a challenge with items and progress. Private
	// challenges are only visible to their owner.
	GetChallenge(ctx context.Context, requesterID, challengeID uuid.UUID) (*ChallengeWithProgress, error)

	// GetSharedChallenge retrieves a public challenge by its share token
	GetSharedChallenge(ctx context.Context, shareToken string) (*ChallengeWithProgress, error)

	// CreateChallenge creates a challenge and its items atomically
	CreateChallenge(ctx context.Context, input CreateChallengeInput) (*ChallengeWithProgress, error)

	// UpdateChallenge updates a challenge owned by the user
	UpdateChallenge(ctx context.Context, userID, challengeID uuid.UUID, input UpdateChallengeInput) (*ChallengeWithProgress, error)

	// DeleteChallenge removes a challenge owned by the user
	DeleteChallenge(ctx context.Context, userID, challengeID uuid.UUID) error

	// AddBakeries appends bakeries to a challenge owned by the user. Bakeries
	// already on the challenge are skipped.
	AddBakeries(ctx context.Context, userID, challengeID uuid.UUID, bakeryIDs []uuid.UUID) (*ChallengeWithProgress, error)

	// RemoveBakery removes a bakery slot from a challenge owned by the user
	RemoveBakery(ctx context.Context, userID, challengeID, itemID uuid.UUID) (*ChallengeWithProgress, error)

	// ToggleVisit flips the visited state of a challenge item and returns the
	// refreshed challenge with progress. A visit memo may be attached.
	ToggleVisit(ctx context.Context, userID, challengeID, itemID uuid.UUID, memo string) (*ChallengeWithProgress, error)

	// ShareQR returns a PNG QR code pointing at the challenge's share URL,
	// generating a share token first if the challenge has none.
	ShareQR(ctx context.Context, userID, challengeID uuid.UUID) ([]byte, string, error)
}
