package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	deliverycontext "breadmap/internal/delivery/context"
	"breadmap/internal/domain/entity"
	domainerrors "breadmap/internal/domain/errors"
	"breadmap/internal/domain/repository"
	"breadmap/internal/domain/service"
	"breadmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const recheckPublishTimeout = 10 * time.Second

type reviewService struct {
	reviewRepo repository.ReviewRepository
	bakeryRepo repository.BakeryRepository
	storage    service.StorageService
	publisher  service.EventPublisher
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo repository.ReviewRepository
	BakeryRepo repository.BakeryRepository
	Storage    service.StorageService `optional:"true"`
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

// NewReviewService creates a new review service instance
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo: params.ReviewRepo,
		bakeryRepo: params.BakeryRepo,
		storage:    params.Storage,
		publisher:  params.Publisher,
		logger:     params.Logger,
	}
}

// ListByBakery retrieves all reviews for a bakery, newest first
func (s *reviewService) ListByBakery(ctx context.Context, bakeryID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := s.reviewRepo.FindByBakery(ctx, bakeryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by bakery")
	}

	return reviews, nil
}

// ListByUser retrieves all reviews written by a user, newest first
func (s *reviewService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := s.reviewRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by user")
	}

	return reviews, nil
}

// CreateReview persists a review, uploads its photo when present, and queues
// a badge recheck for the author.
func (s *reviewService) CreateReview(ctx context.Context, input usecase.CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrInvalidRating
	}

	if _, err := s.bakeryRepo.FindByID(ctx, input.BakeryID); err != nil {
		if errors.Is(err, repository.ErrBakeryNotFound) {
			return nil, domainerrors.ErrBakeryNotFound
		}

		return nil, errors.Wrap(err, "failed to find bakery")
	}

	review := &entity.Review{
		BakeryID: input.BakeryID,
		UserID:   input.UserID,
		Rating:   input.Rating,
		Comment:  input.Comment,
	}

	if input.Photo != nil {
		photoURL, err := s.uploadPhoto(ctx, input.UserID, input.Photo)
		if err != nil {
			return nil, err
		}
		review.PhotoURL = photoURL
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	// Badge evaluation is fire-and-forget: the review is already committed
	// and a lost event only delays the award until the next recheck.
	s.queueBadgeRecheck(ctx, input.UserID, "review_created")

	return review, nil
}

// UpdateReview applies an author edit to a review. Nil input fields keep
// their current value. A badge recheck is queued because a changed rating
// can affect perfect-rating badges.
func (s *reviewService) UpdateReview(ctx context.Context, userID, reviewID uuid.UUID, input usecase.UpdateReviewInput) (*entity.Review, error) {
	if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 5) {
		return nil, domainerrors.ErrInvalidRating
	}

	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	if review.UserID != userID {
		return nil, domainerrors.ErrNotReviewOwner
	}

	if input.Rating != nil {
		review.Rating = *input.Rating
	}
	if input.Comment != nil {
		review.Comment = *input.Comment
	}
	if input.PhotoURL != nil {
		review.PhotoURL = *input.PhotoURL
	}

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to update review")
	}

	s.queueBadgeRecheck(ctx, userID, "review_updated")

	return review, nil
}

// DeleteReview removes a review owned by the user
func (s *reviewService) DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error {
	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound
		}

		return errors.Wrap(err, "failed to find review")
	}

	if review.UserID != userID {
		return domainerrors.ErrNotReviewOwner
	}

	if err := s.reviewRepo.Delete(ctx, reviewID); err != nil {
		return errors.Wrap(err, "failed to delete review")
	}

	return nil
}

// uploadPhoto stores the review photo and returns its public URL.
func (s *reviewService) uploadPhoto(ctx context.Context, userID uuid.UUID, photo *usecase.ReviewPhoto) (string, error) {
	if s.storage == nil {
		return "", domainerrors.ErrInternalError.WrapMessage("photo storage is not configured")
	}

	key := fmt.Sprintf("reviews/%s/%s%s", userID, uuid.NewString(), path.Ext(photo.FileName))

	url, err := s.storage.Upload(ctx, key, photo.ContentType, photo.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to upload review photo")
	}

	return url, nil
}

// queueBadgeRecheck publishes a recheck event for the author. Failures are
// logged, never surfaced; the review write itself already succeeded.
func (s *reviewService) queueBadgeRecheck(ctx context.Context, userID uuid.UUID, trigger string) {
	event := &service.BadgeRecheckEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		UserID:    userID.String(),
		Trigger:   trigger,
	}

	go func() {
		publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recheckPublishTimeout)
		defer cancel()

		if err := s.publisher.PublishBadgeRecheckEvent(publishCtx, event); err != nil {
			s.logger.Warn("Failed to publish badge recheck event",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()),
			)
		}
	}()
}
