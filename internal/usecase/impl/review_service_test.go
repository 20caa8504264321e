package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"breadmap/internal/domain/entity"
	domainerrors "breadmap/internal/domain/errors"
	"breadmap/internal/domain/repository"
	"breadmap/internal/domain/service"
	mockRepo "breadmap/internal/mocks/repository"
	mockSvc "breadmap/internal/mocks/service"
	"breadmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewServiceMocks struct {
	reviewRepo *mockRepo.MockReviewRepository
	bakeryRepo *mockRepo.MockBakeryRepository
	storage    *mockSvc.MockStorageService
	publisher  *mockSvc.MockEventPublisher
}

func newReviewService(t *testing.T) (usecase.ReviewUsecase, reviewServiceMocks) {
	t.Helper()

	mocks := reviewServiceMocks{
		reviewRepo: mockRepo.NewMockReviewRepository(t),
		bakeryRepo: mockRepo.NewMockBakeryRepository(t),
		storage:    mockSvc.NewMockStorageService(t),
		publisher:  mockSvc.NewMockEventPublisher(t),
	}

	svc := NewReviewService(ReviewServiceParams{
		ReviewRepo: mocks.reviewRepo,
		BakeryRepo: mocks.bakeryRepo,
		Storage:    mocks.storage,
		Publisher:  mocks.publisher,
		Logger:     slog.Default(),
	})

	return svc, mocks
}

// expectRecheckPublish registers the fire-and-forget publish expectation and
// returns a channel closed once the event arrives.
func expectRecheckPublish(mocks reviewServiceMocks) <-chan *service.BadgeRecheckEvent {
	published := make(chan *service.BadgeRecheckEvent, 1)

	mocks.publisher.EXPECT().
		PublishBadgeRecheckEvent(mock.Anything, mock.AnythingOfType("*service.BadgeRecheckEvent")).
		Run(func(ctx context.Context, event *service.BadgeRecheckEvent) {
			published <- event
		}).
		Return(nil)

	return published
}

func waitForRecheck(t *testing.T, published <-chan *service.BadgeRecheckEvent) *service.BadgeRecheckEvent {
	t.Helper()

	select {
	case event := <-published:
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("badge recheck event was never published")
		return nil
	}
}

func TestReviewService_CreateReview_Success(t *testing.T) {
	svc, mocks := newReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	bakeryID := uuid.New()

	mocks.bakeryRepo.EXPECT().FindByID(ctx, bakeryID).Return(&entity.Bakery{ID: bakeryID}, nil)
	mocks.reviewRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		Run(func(ctx context.Context, review *entity.Review) {
			assert.Equal(t, 5, review.Rating)
			assert.Equal(t, "소금빵이 예술입니다", review.Comment)
			assert.Empty(t, review.PhotoURL)
		}).
		Return(nil)
	published := expectRecheckPublish(mocks)

	review, err := svc.CreateReview(ctx, usecase.CreateReviewInput{
		BakeryID: bakeryID,
		UserID:   userID,
		Rating:   5,
		Comment:  "소금빵이 예술입니다",
	})

	require.NoError(t, err)
	assert.Equal(t, bakeryID, review.BakeryID)

	event := waitForRecheck(t, published)
	assert.Equal(t, userID.String(), event.UserID)
	assert.Equal(t, "review_created", event.Trigger)
}

func TestReviewService_CreateReview_UploadsPhoto(t *testing.T) {
	svc, mocks := newReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	bakeryID := uuid.New()

	mocks.bakeryRepo.EXPECT().FindByID(ctx, bakeryID).Return(&entity.Bakery{ID: bakeryID}, nil)
	mocks.storage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), "image/jpeg", mock.Anything).
		RunAndReturn(func(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
			assert.True(t, strings.HasPrefix(key, "reviews/"+userID.String()+"/"))
			assert.True(t, strings.HasSuffix(key, ".jpg"))
			return "https://cdn.breadmap.app/" + key, nil
		})
	mocks.reviewRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		Run(func(ctx context.Context, review *entity.Review) {
			assert.Contains(t, review.PhotoURL, "https://cdn.breadmap.app/reviews/")
		}).
		Return(nil)
	published := expectRecheckPublish(mocks)

	_, err := svc.CreateReview(ctx, usecase.CreateReviewInput{
		BakeryID: bakeryID,
		UserID:   userID,
		Rating:   4,
		Photo: &usecase.ReviewPhoto{
			FileName:    "bread.jpg",
			ContentType: "image/jpeg",
			Body:        strings.NewReader("not really a jpeg"),
		},
	})

	require.NoError(t, err)
	waitForRecheck(t, published)
}

func TestReviewService_CreateReview_InvalidRating(t *testing.T) {
	svc, _ := newReviewService(t)

	for _, rating := range []int{0, -1, 6} {
		_, err := svc.CreateReview(context.Background(), usecase.CreateReviewInput{
			BakeryID: uuid.New(),
			UserID:   uuid.New(),
			Rating:   rating,
		})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidRating, "rating %d", rating)
	}
}

func TestReviewService_CreateReview_UnknownBakery(t *testing.T) {
	svc, mocks := newReviewService(t)

	ctx := context.Background()
	bakeryID := uuid.New()

	mocks.bakeryRepo.EXPECT().FindByID(ctx, bakeryID).Return(nil, repository.ErrBakeryNotFound)

	_, err := svc.CreateReview(ctx, usecase.CreateReviewInput{
		BakeryID: bakeryID,
		UserID:   uuid.New(),
		Rating:   3,
	})

	assert.ErrorIs(t, err, domainerrors.ErrBakeryNotFound)
}

func TestReviewService_CreateReview_PublishFailureDoesNotSurface(t *testing.T) {
	svc, mocks := newReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	bakeryID := uuid.New()

	published := make(chan struct{})

	mocks.bakeryRepo.EXPECT().FindByID(ctx, bakeryID).Return(&entity.Bakery{ID: bakeryID}, nil)
	mocks.reviewRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)
	mocks.publisher.EXPECT().
		PublishBadgeRecheckEvent(mock.Anything, mock.AnythingOfType("*service.BadgeRecheckEvent")).
		Run(func(ctx context.Context, event *service.BadgeRecheckEvent) {
			close(published)
		}).
		Return(errors.New("broker unavailable"))

	_, err := svc.CreateReview(ctx, usecase.CreateReviewInput{
		BakeryID: bakeryID,
		UserID:   userID,
		Rating:   5,
	})

	require.NoError(t, err)

	select {
	case <-published:
	case <-time.After(2 * time.Second):
		t.Fatal("badge recheck event was never published")
	}
}

func TestReviewService_UpdateReview_Success(t *testing.T) {
	svc, mocks := newReviewService(t)

	ctx := context.Background()
	owner := uuid.New()
	reviewID := uuid.New()
	newRating := 4
	newComment := "재방문했는데 여전히 맛있어요"

	mocks.reviewRepo.EXPECT().
		FindByID(ctx, reviewID).
		Return(&entity.Review{
			ID:       reviewID,
			UserID:   owner,
			Rating:   5,
			Comment:  "소금빵이 예술입니다",
			PhotoURL: "https://cdn.breadmap.app/reviews/photo.jpg",
		}, nil)
	mocks.reviewRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Review")).
		Run(func(ctx context.Context, review *entity.Review) {
			assert.Equal(t, newRating, review.Rating)
			assert.Equal(t, newComment, review.Comment)
			// Absent fields keep their stored values.
			assert.Equal(t, "https://cdn.breadmap.app/reviews/photo.jpg", review.PhotoURL)
		}).
		Return(nil)
	published := expectRecheckPublish(mocks)

	review, err := svc.UpdateReview(ctx, owner, reviewID, usecase.UpdateReviewInput{
		Rating:  &newRating,
		Comment: &newComment,
	})

	require.NoError(t, err)
	assert.Equal(t, newRating, review.Rating)

	event := waitForRecheck(t, published)
	assert.Equal(t, owner.String(), event.UserID)
	assert.Equal(t, "review_updated", event.Trigger)
}

func TestReviewService_UpdateReview_OwnerOnly(t *testing.T) {
	svc, mocks := newReviewService(t)

	ctx := context.Background()
	owner := uuid.New()
	reviewID := uuid.New()
	newComment := "남의 리뷰입니다"

	mocks.reviewRepo.EXPECT().
		FindByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, UserID: owner}, nil)

	_, err := svc.UpdateReview(ctx, uuid.New(), reviewID, usecase.UpdateReviewInput{
		Comment: &newComment,
	})

	assert.ErrorIs(t, err, domainerrors.ErrNotReviewOwner)
}

func TestReviewService_UpdateReview_InvalidRating(t *testing.T) {
	svc, _ := newReviewService(t)

	ctx := context.Background()
	badRating := 6

	_, err := svc.UpdateReview(ctx, uuid.New(), uuid.New(), usecase.UpdateReviewInput{
		Rating: &badRating,
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidRating)
}

func TestReviewService_DeleteReview_OwnerOnly(t *testing.T) {
	svc, mocks := newReviewService(t)

	ctx := context.Background()
	owner := uuid.New()
	reviewID := uuid.New()

	mocks.reviewRepo.EXPECT().
		FindByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, UserID: owner}, nil)

	err := svc.DeleteReview(ctx, uuid.New(), reviewID)

	assert.ErrorIs(t, err, domainerrors.ErrNotReviewOwner)
}

func TestReviewService_DeleteReview_Success(t *testing.T) {
	svc, mocks := newReviewService(t)

	ctx := context.Background()
	owner := uuid.New()
	reviewID := uuid.New()

	mocks.reviewRepo.EXPECT().
		FindByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, UserID: owner}, nil)
	mocks.reviewRepo.EXPECT().Delete(ctx, reviewID).Return(nil)

	err := svc.DeleteReview(ctx, owner, reviewID)

	require.NoError(t, err)
}
