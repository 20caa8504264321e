package impl

import (
	"context"
	"log/slog"
	"testing"

	"breadmap/internal/domain/entity"
	"breadmap/internal/domain/repository"
	mockRepo "breadmap/internal/mocks/repository"
	mockSvc "breadmap/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type badgeServiceMocks struct {
	badgeRepo    *mockRepo.MockBadgeRepository
	reviewRepo   *mockRepo.MockReviewRepository
	deviceRepo   *mockRepo.MockDeviceRepository
	notification *mockSvc.MockNotificationService
}

func newBadgeService(t *testing.T) (*badgeService, badgeServiceMocks) {
	t.Helper()

	mocks := badgeServiceMocks{
		badgeRepo:    mockRepo.NewMockBadgeRepository(t),
		reviewRepo:   mockRepo.NewMockReviewRepository(t),
		deviceRepo:   mockRepo.NewMockDeviceRepository(t),
		notification: mockSvc.NewMockNotificationService(t),
	}

	svc := NewBadgeService(BadgeServiceParams{
		BadgeRepo:    mocks.badgeRepo,
		ReviewRepo:   mocks.reviewRepo,
		DeviceRepo:   mocks.deviceRepo,
		Notification: mocks.notification,
		Logger:       slog.Default(),
	})

	service, ok := svc.(*badgeService)
	require.True(t, ok)

	return service, mocks
}

func reviewCountBadge(name string, value int) *entity.Badge {
	return &entity.Badge{
		ID:             uuid.New(),
		Name:           name,
		Icon:           "🥐",
		ConditionType:  entity.ConditionReviewCount,
		ConditionValue: value,
	}
}

func TestBadgeService_Recheck_AwardsSatisfiedBadges(t *testing.T) {
	svc, mocks := newBadgeService(t)

	ctx := context.Background()
	userID := uuid.New()

	first := reviewCountBadge("첫 리뷰", 1)
	tenth := reviewCountBadge("리뷰 마스터", 10)

	mocks.reviewRepo.EXPECT().
		ActivityStatsByUser(ctx, userID).
		Return(&entity.ActivityStats{ReviewCount: 3}, nil)
	mocks.badgeRepo.EXPECT().
		FindAll(ctx).
		Return([]*entity.Badge{first, tenth}, nil)
	mocks.badgeRepo.EXPECT().
		FindEarnedByUser(ctx, userID).
		Return(nil, nil)
	mocks.badgeRepo.EXPECT().
		Award(ctx, userID, first.ID).
		Return(nil)
	mocks.deviceRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(nil, nil)

	result, err := svc.Recheck(ctx, userID)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.AwardedBadgesCount)
}

func TestBadgeService_Recheck_SkipsAlreadyEarned(t *testing.T) {
	svc, mocks := newBadgeService(t)

	ctx := context.Background()
	userID := uuid.New()

	badge := reviewCountBadge("첫 리뷰", 1)

	mocks.reviewRepo.EXPECT().
		ActivityStatsByUser(ctx, userID).
		Return(&entity.ActivityStats{ReviewCount: 5}, nil)
	mocks.badgeRepo.EXPECT().
		FindAll(ctx).
		Return([]*entity.Badge{badge}, nil)
	mocks.badgeRepo.EXPECT().
		FindEarnedByUser(ctx, userID).
		Return([]*entity.UserBadge{{UserID: userID, BadgeID: badge.ID}}, nil)

	result, err := svc.Recheck(ctx, userID)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 0, result.AwardedBadgesCount)
}

func TestBadgeService_Recheck_DuplicateAwardIsBenign(t *testing.T) {
	svc, mocks := newBadgeService(t)

	ctx := context.Background()
	userID := uuid.New()

	badge := reviewCountBadge("첫 리뷰", 1)

	mocks.reviewRepo.EXPECT().
		ActivityStatsByUser(ctx, userID).
		Return(&entity.ActivityStats{ReviewCount: 1}, nil)
	mocks.badgeRepo.EXPECT().
		FindAll(ctx).
		Return([]*entity.Badge{badge}, nil)
	mocks.badgeRepo.EXPECT().
		FindEarnedByUser(ctx, userID).
		Return(nil, nil)
	mocks.badgeRepo.EXPECT().
		Award(ctx, userID, badge.ID).
		Return(repository.ErrDuplicateUserBadge)

	result, err := svc.Recheck(ctx, userID)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 0, result.AwardedBadgesCount)
}

func TestBadgeService_Recheck_StatsFailureAborts(t *testing.T) {
	svc, mocks := newBadgeService(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.reviewRepo.EXPECT().
		ActivityStatsByUser(ctx, userID).
		Return(nil, errors.New("connection reset"))

	result, err := svc.Recheck(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestBadgeService_Recheck_AwardFailureAborts(t *testing.T) {
	svc, mocks := newBadgeService(t)

	ctx := context.Background()
	userID := uuid.New()

	badge := reviewCountBadge("첫 리뷰", 1)

	mocks.reviewRepo.EXPECT().
		ActivityStatsByUser(ctx, userID).
		Return(&entity.ActivityStats{ReviewCount: 1}, nil)
	mocks.badgeRepo.EXPECT().
		FindAll(ctx).
		Return([]*entity.Badge{badge}, nil)
	mocks.badgeRepo.EXPECT().
		FindEarnedByUser(ctx, userID).
		Return(nil, nil)
	mocks.badgeRepo.EXPECT().
		Award(ctx, userID, badge.ID).
		Return(errors.New("insert failed"))

	result, err := svc.Recheck(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestBadgeService_Recheck_SendsPushOnAward(t *testing.T) {
	svc, mocks := newBadgeService(t)

	ctx := context.Background()
	userID := uuid.New()

	badge := reviewCountBadge("첫 리뷰", 1)
	device := &entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: "token-1"}

	mocks.reviewRepo.EXPECT().
		ActivityStatsByUser(ctx, userID).
		Return(&entity.ActivityStats{ReviewCount: 1}, nil)
	mocks.badgeRepo.EXPECT().
		FindAll(ctx).
		Return([]*entity.Badge{badge}, nil)
	mocks.badgeRepo.EXPECT().
		FindEarnedByUser(ctx, userID).
		Return(nil, nil)
	mocks.badgeRepo.EXPECT().
		Award(ctx, userID, badge.ID).
		Return(nil)
	mocks.deviceRepo.EXPECT().
		FindByUser(ctx, userID).
		Return([]*entity.UserDevice{device}, nil)
	mocks.notification.EXPECT().
		SendBatchNotification(ctx, []string{"token-1"}, "새로운 배지를 획득했어요!", "🥐 첫 리뷰", map[string]string{
			"type":     "badge_awarded",
			"badge_id": badge.ID.String(),
		}).
		Return(1, 0, nil, nil)

	result, err := svc.Recheck(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, result.AwardedBadgesCount)
}

func TestBadgeService_Recheck_ThemeVisitCondition(t *testing.T) {
	svc, mocks := newBadgeService(t)

	ctx := context.Background()
	userID := uuid.New()

	croissant := &entity.Badge{
		ID:             uuid.New(),
		Name:           "크루아상 헌터",
		Icon:           "🥐",
		ConditionType:  "theme_visit:크루아상",
		ConditionValue: 3,
	}

	mocks.reviewRepo.EXPECT().
		ActivityStatsByUser(ctx, userID).
		Return(&entity.ActivityStats{
			ReviewCount:      4,
			ThemeVisitCounts: map[string]int{"크루아상": 3},
		}, nil)
	mocks.badgeRepo.EXPECT().
		FindAll(ctx).
		Return([]*entity.Badge{croissant}, nil)
	mocks.badgeRepo.EXPECT().
		FindEarnedByUser(ctx, userID).
		Return(nil, nil)
	mocks.badgeRepo.EXPECT().
		Award(ctx, userID, croissant.ID).
		Return(nil)
	mocks.deviceRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(nil, nil)

	result, err := svc.Recheck(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, result.AwardedBadgesCount)
}
