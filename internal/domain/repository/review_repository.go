// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"breadmap/internal/domain/entity"
	"breadmap/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for review persistence.
var (
	// ErrReviewNotFound is returned when a review is not found.
	ErrReviewNotFound = errors.New("review not found")
)

// ReviewRepository defines the interface for review-related database operations.
type ReviewRepository interface {
	// FindByID retrieves a review by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindByBakery retrieves all reviews for a bakery, newest first, with
	// reviewer summaries loaded.
	FindByBakery(ctx context.Context, bakeryID uuid.UUID) ([]*entity.Review, error)

	// FindByUser retrieves all reviews written by a user, newest first, with
	// bakery summaries loaded.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error)

	// Create persists a new review entity to the storage.
	Create(ctx context.Context, review *entity.Review) error

	// Update modifies the rating, comment and photo of an existing review.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes a review by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// ActivityStatsByUser computes the user's review counts for badge evaluation:
	// total reviews, distinct visited bakeries, perfect ratings, average rating
	// and distinct visited bakeries per theme name. FavoriteCount is not filled
	// here; it belongs to FavoriteRepository.
	ActivityStatsByUser(ctx context.Context, userID uuid.UUID) (*entity.ActivityStats, error)

	// RegionDistributionByUser counts the user's distinct visited bakeries per district.
	RegionDistributionByUser(ctx context.Context, userID uuid.UUID) ([]entity.DistributionEntry, error)
}
