// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"breadmap/internal/domain/entity"
	"breadmap/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for challenge persistence.
var (
	// ErrChallengeNotFound is returned when a challenge is not found.
	ErrChallengeNotFound = errors.New("challenge not found")
	// ErrChallengeItemNotFound is returned when a challenge item is not found.
	ErrChallengeItemNotFound = errors.New("challenge item not found")
	// ErrDuplicateChallengeItem is returned when the bakery is already part of the challenge.
	ErrDuplicateChallengeItem = errors.New("challenge item already exists")
)

// ChallengeRepository defines the interface for challenge-related database operations.
type ChallengeRepository interface {
	// FindByID retrieves a challenge by its ID with items and their bakeries loaded,
	// items ordered by order_num ascending.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error)

	// FindByShareToken retrieves a public challenge by its share token.
	FindByShareToken(ctx context.Context, token string) (*entity.Challenge, error)

	// FindByUser retrieves all challenges owned by a user, newest first, with items loaded.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Challenge, error)

	// Create persists a new challenge entity to the storage.
	Create(ctx context.Context, challenge *entity.Challenge) error

	// Update modifies an existing challenge entity in the storage.
	Update(ctx context.Context, challenge *entity.Challenge) error

	// Delete removes a challenge and its items by the challenge ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// CreateItems persists challenge items in bulk. Returns ErrDuplicateChallengeItem
	// when a (challenge, bakery) pair already exists.
	CreateItems(ctx context.Context, items []entity.ChallengeItem) error

	// FindItem retrieves a single challenge item by its ID.
	FindItem(ctx context.Context, itemID uuid.UUID) (*entity.ChallengeItem, error)

	// UpdateItem modifies a challenge item's visit state and memo.
	UpdateItem(ctx context.Context, item *entity.ChallengeItem) error

	// DeleteItem removes a challenge item by its ID.
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
}
