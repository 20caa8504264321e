package usecase

import (
	"context"

	"breadmap/internal/domain/entity"

	"github.com/google/uuid"
)

// SharedFavorites is the public view of a user's shared favorites list.
// Bakeries carry their rating aggregates, newest favorite first.
type SharedFavorites struct {
	Owner       entity.UserSummary `json:"owner"`
	ShareToken  string             `json:"share_token"`
	Bakeries    []*entity.Bakery   `json:"bakeries"`
	BakeryCount int                `json:"bakery_count"`
}

// FavoriteUsecase defines the interface for favorite use cases
type FavoriteUsecase interface {
	// ListFavorites retrieves the user's favorites, newest first, with bakeries loaded
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)

	// AddFavorite marks a bakery as a favorite of the user
	AddFavorite(ctx context.Context, userID, bakeryID uuid.UUID) (*entity.Favorite, error)

	// RemoveFavorite removes the user's favorite for a bakery
	RemoveFavorite(ctx context.Context, userID, bakeryID uuid.UUID) error

	// ShareFavorites returns a PNG QR code pointing at the user's favorites
	// share URL, minting a share token on first call
	ShareFavorites(ctx context.Context, userID uuid.UUID) ([]byte, string, error)

	// UnshareFavorites revokes the user's favorites share link
	UnshareFavorites(ctx context.Context, userID uuid.UUID) error

	// GetSharedFavorites retrieves a shared favorites list by its token
	GetSharedFavorites(ctx context.Context, token string) (*SharedFavorites, error)

	// SharedFavoritesToChallenge copies a shared favorites list into a new
	// private challenge owned by the requesting user
	SharedFavoritesToChallenge(ctx context.Context, userID uuid.UUID, token string) (*ChallengeWithProgress, error)
}
