// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"breadmap/internal/domain/entity"
	"breadmap/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for favorite persistence.
var (
	// ErrFavoriteNotFound is returned when a favorite is not found.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrDuplicateFavorite is returned when the user has already favorited the bakery.
	ErrDuplicateFavorite = errors.New("favorite already exists")
	// ErrFavoriteShareNotFound is returned when no share exists for the user or token.
	ErrFavoriteShareNotFound = errors.New("favorite share not found")
)

// FavoriteRepository defines the interface for favorite-related database operations.
type FavoriteRepository interface {
	// FindByUser retrieves all favorites for a user, newest first, with bakeries loaded.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)

	// Exists reports whether the user has favorited the bakery.
	Exists(ctx context.Context, userID, bakeryID uuid.UUID) (bool, error)

	// Create persists a new favorite. Returns ErrDuplicateFavorite when the
	// (user, bakery) pair already exists.
	Create(ctx context.Context, favorite *entity.Favorite) error

	// Delete removes the favorite for the given (user, bakery) pair.
	Delete(ctx context.Context, userID, bakeryID uuid.UUID) error

	// CountByUser counts the user's favorites for activity stats.
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)

	// FindShareByUser retrieves the user's favorite share, if any.
	FindShareByUser(ctx context.Context, userID uuid.UUID) (*entity.FavoriteShare, error)

	// FindShareByToken retrieves a favorite share by its public token.
	FindShareByToken(ctx context.Context, token string) (*entity.FavoriteShare, error)

	// CreateShare persists a new favorite share for a user.
	CreateShare(ctx context.Context, share *entity.FavoriteShare) error

	// DeleteShareByUser revokes the user's favorite share.
	DeleteShareByUser(ctx context.Context, userID uuid.UUID) error
}
