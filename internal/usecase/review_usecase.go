package usecase

import (
	"context"
	"io"

	"breadmap/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewPhoto is an optional uploaded image attached to a review.
type ReviewPhoto struct {
	FileName    string
	ContentType string
	Body        io.Reader
}

// CreateReviewInput carries the fields needed to write a review.
type CreateReviewInput struct {
	BakeryID uuid.UUID
	UserID   uuid.UUID
	Rating   int
	Comment  string
	Photo    *ReviewPhoto
}

// UpdateReviewInput carries the fields of an author edit. Nil fields are left
// unchanged.
type UpdateReviewInput struct {
	Rating   *int
	Comment  *string
	PhotoURL *string
}

// ReviewUsecase defines the interface for review use cases
type ReviewUsecase interface {
	// ListByBakery retrieves all reviews for a bakery, newest first
	ListByBakery(ctx context.Context, bakeryID uuid.UUID) ([]*entity.Review, error)

	// ListByUser retrieves all reviews written by a user, newest first
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error)

	// CreateReview persists a review, uploads its photo when present, and
	// queues a badge recheck for the author
	CreateReview(ctx context.Context, input CreateReviewInput) (*entity.Review, error)

	// UpdateReview applies an author edit to a review and queues a badge
	// recheck, since a changed rating can affect perfect-rating badges
	UpdateReview(ctx context.Context, userID, reviewID uuid.UUID, input UpdateReviewInput) (*entity.Review, error)

	// DeleteReview removes a review owned by the user
	DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error
}
