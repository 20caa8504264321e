package impl

import (
	"context"
	"testing"
	"time"

	"breadmap/internal/domain/entity"
	domainerrors "breadmap/internal/domain/errors"
	"breadmap/internal/domain/repository"
	mockRepo "breadmap/internal/mocks/repository"
	mockSvc "breadmap/internal/mocks/service"
	"breadmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceMocks struct {
	userRepo     *mockRepo.MockUserRepository
	reviewRepo   *mockRepo.MockReviewRepository
	favoriteRepo *mockRepo.MockFavoriteRepository
	hasher       *mockSvc.MockPasswordHasher
	tokens       *mockSvc.MockTokenService
}

func newUserService(t *testing.T) (usecase.UserUsecase, userServiceMocks) {
	t.Helper()

	mocks := userServiceMocks{
		userRepo:     mockRepo.NewMockUserRepository(t),
		reviewRepo:   mockRepo.NewMockReviewRepository(t),
		favoriteRepo: mockRepo.NewMockFavoriteRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokens:       mockSvc.NewMockTokenService(t),
	}

	svc := NewUserService(UserServiceParams{
		UserRepo:     mocks.userRepo,
		ReviewRepo:   mocks.reviewRepo,
		FavoriteRepo: mocks.favoriteRepo,
		Hasher:       mocks.hasher,
		Tokens:       mocks.tokens,
	})

	return svc, mocks
}

func TestUserService_Register_Success(t *testing.T) {
	svc, mocks := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	mocks.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "bread@example.com", user.Email)
			assert.Equal(t, "빵순이", user.Nickname)
			assert.Equal(t, "hashed", user.PasswordHash)
			user.ID = userID
		}).
		Return(nil)
	mocks.tokens.EXPECT().GenerateTokens(userID).Return("access", "refresh", nil)

	user, tokens, err := svc.Register(ctx, usecase.RegisterInput{
		Email:    "bread@example.com",
		Nickname: "빵순이",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "access", tokens.AccessToken)
	assert.Equal(t, "refresh", tokens.RefreshToken)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc, mocks := newUserService(t)

	ctx := context.Background()

	mocks.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	mocks.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateUser)

	_, _, err := svc.Register(ctx, usecase.RegisterInput{
		Email:    "bread@example.com",
		Nickname: "빵순이",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_HashFailure(t *testing.T) {
	svc, mocks := newUserService(t)

	mocks.hasher.EXPECT().Hash("secret123").Return("", errors.New("cost out of range"))

	_, _, err := svc.Register(context.Background(), usecase.RegisterInput{
		Email:    "bread@example.com",
		Nickname: "빵순이",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestUserService_Login_Success(t *testing.T) {
	svc, mocks := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.User{
		ID:           userID,
		Email:        "bread@example.com",
		PasswordHash: "hashed",
	}

	mocks.userRepo.EXPECT().FindByEmail(ctx, "bread@example.com").Return(stored, nil)
	mocks.hasher.EXPECT().Check("secret123", "hashed").Return(true)
	mocks.tokens.EXPECT().GenerateTokens(userID).Return("access", "refresh", nil)

	user, tokens, err := svc.Login(ctx, "bread@example.com", "secret123")

	require.NoError(t, err)
	assert.Equal(t, stored, user)
	assert.Equal(t, "access", tokens.AccessToken)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, mocks := newUserService(t)

	ctx := context.Background()
	stored := &entity.User{ID: uuid.New(), PasswordHash: "hashed"}

	mocks.userRepo.EXPECT().FindByEmail(ctx, "bread@example.com").Return(stored, nil)
	mocks.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, _, err := svc.Login(ctx, "bread@example.com", "wrong")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc, mocks := newUserService(t)

	ctx := context.Background()

	mocks.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, _, err := svc.Login(ctx, "ghost@example.com", "whatever")

	// Unknown emails produce the exact same error as wrong passwords.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_UpdateProfile_MergesNonEmptyFields(t *testing.T) {
	svc, mocks := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.User{
		ID:              userID,
		Nickname:        "빵순이",
		ProfileImageURL: "https://cdn.example.com/old.png",
	}

	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(stored, nil)
	mocks.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "빵돌이", user.Nickname)
			assert.Equal(t, "https://cdn.example.com/old.png", user.ProfileImageURL)
		}).
		Return(nil)

	updated, err := svc.UpdateProfile(ctx, userID, usecase.UpdateProfileInput{
		Nickname: "빵돌이",
	})

	require.NoError(t, err)
	assert.Equal(t, "빵돌이", updated.Nickname)
}

func TestUserService_GetProfileStats_ComposesDistributions(t *testing.T) {
	svc, mocks := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.reviewRepo.EXPECT().
		ActivityStatsByUser(ctx, userID).
		Return(&entity.ActivityStats{
			ReviewCount:        7,
			VisitedBakeryCount: 5,
			PerfectRatingCount: 2,
			AverageRating:      4.2,
			ThemeVisitCounts:   map[string]int{"소금빵": 1, "크루아상": 3, "베이글": 3},
		}, nil)
	mocks.favoriteRepo.EXPECT().CountByUser(ctx, userID).Return(4, nil)
	mocks.reviewRepo.EXPECT().
		RegionDistributionByUser(ctx, userID).
		Return([]entity.DistributionEntry{{Name: "성수", Value: 3}, {Name: "망원", Value: 2}}, nil)

	stats, err := svc.GetProfileStats(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 7, stats.ReviewCount)
	assert.Equal(t, 4, stats.FavoriteCount)
	assert.Equal(t, []entity.DistributionEntry{{Name: "성수", Value: 3}, {Name: "망원", Value: 2}}, stats.RegionDistribution)
	// Theme entries come out ordered by count descending, ties by name.
	assert.Equal(t, []entity.DistributionEntry{
		{Name: "베이글", Value: 3},
		{Name: "크루아상", Value: 3},
		{Name: "소금빵", Value: 1},
	}, stats.ThemeDistribution)
}

func TestUserService_GetRecentActivities_MergesNewestFirst(t *testing.T) {
	svc, mocks := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	base := time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)
	bakery := &entity.Bakery{ID: uuid.New(), Name: "성수연방", ImageURL: "https://cdn.breadmap.app/b.jpg"}

	mocks.reviewRepo.EXPECT().
		FindByUser(ctx, userID).
		Return([]*entity.Review{
			{
				ID:        uuid.New(),
				UserID:    userID,
				Rating:    5,
				Comment:   "소금빵이 예술입니다",
				CreatedAt: base.Add(2 * time.Hour),
				Bakery:    &entity.BakerySummary{ID: bakery.ID, Name: bakery.Name},
			},
		}, nil)
	mocks.favoriteRepo.EXPECT().
		FindByUser(ctx, userID).
		Return([]*entity.Favorite{
			{ID: uuid.New(), UserID: userID, BakeryID: bakery.ID, CreatedAt: base.Add(3 * time.Hour), Bakery: bakery},
			{ID: uuid.New(), UserID: userID, BakeryID: bakery.ID, CreatedAt: base, Bakery: bakery},
		}, nil)

	activities, err := svc.GetRecentActivities(ctx, userID)

	require.NoError(t, err)
	require.Len(t, activities, 3)
	assert.Equal(t, "favorite", activities[0].Type)
	assert.Equal(t, "review", activities[1].Type)
	assert.Equal(t, 5, activities[1].Rating)
	assert.Equal(t, "favorite", activities[2].Type)
	assert.Equal(t, "성수연방", activities[0].Bakery.Name)
}

func TestUserService_GetRecentActivities_CapsTheFeed(t *testing.T) {
	svc, mocks := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	base := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)

	reviews := make([]*entity.Review, 0, 10)
	for i := 0; i < 10; i++ {
		reviews = append(reviews, &entity.Review{
			ID:        uuid.New(),
			UserID:    userID,
			Rating:    4,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	favorites := make([]*entity.Favorite, 0, 10)
	for i := 10; i < 20; i++ {
		favorites = append(favorites, &entity.Favorite{
			ID:        uuid.New(),
			UserID:    userID,
			BakeryID:  uuid.New(),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}

	mocks.reviewRepo.EXPECT().FindByUser(ctx, userID).Return(reviews, nil)
	mocks.favoriteRepo.EXPECT().FindByUser(ctx, userID).Return(favorites, nil)

	activities, err := svc.GetRecentActivities(ctx, userID)

	require.NoError(t, err)
	require.Len(t, activities, 15)
	// All ten favorites are newer than every review, so they lead the feed.
	assert.Equal(t, "favorite", activities[0].Type)
	assert.Equal(t, "review", activities[14].Type)
	assert.True(t, activities[0].CreatedAt.After(activities[14].CreatedAt))
}

func TestUserService_GetProfileStats_StatsFailure(t *testing.T) {
	svc, mocks := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.reviewRepo.EXPECT().
		ActivityStatsByUser(ctx, userID).
		Return(nil, errors.New("connection refused"))

	_, err := svc.GetProfileStats(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrStatsUnavailable)
}
