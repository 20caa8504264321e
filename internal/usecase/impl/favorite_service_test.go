package impl

import (
	"context"
	"log/slog"
	"testing"

	"breadmap/internal/domain/entity"
	domainerrors "breadmap/internal/domain/errors"
	"breadmap/internal/domain/repository"
	mockRepo "breadmap/internal/mocks/repository"
	mockSvc "breadmap/internal/mocks/service"
	mockUC "breadmap/internal/mocks/usecase"
	"breadmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type favoriteServiceMocks struct {
	favoriteRepo *mockRepo.MockFavoriteRepository
	bakeryRepo   *mockRepo.MockBakeryRepository
	userRepo     *mockRepo.MockUserRepository
	qrcode       *mockSvc.MockQRCodeService
	challengeUC  *mockUC.MockChallengeUsecase
}

func newFavoriteService(t *testing.T) (usecase.FavoriteUsecase, favoriteServiceMocks) {
	t.Helper()

	mocks := favoriteServiceMocks{
		favoriteRepo: mockRepo.NewMockFavoriteRepository(t),
		bakeryRepo:   mockRepo.NewMockBakeryRepository(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		qrcode:       mockSvc.NewMockQRCodeService(t),
		challengeUC:  mockUC.NewMockChallengeUsecase(t),
	}

	svc := NewFavoriteService(FavoriteServiceParams{
		FavoriteRepo: mocks.favoriteRepo,
		BakeryRepo:   mocks.bakeryRepo,
		UserRepo:     mocks.userRepo,
		QRCode:       mocks.qrcode,
		ChallengeUC:  mocks.challengeUC,
		Logger:       slog.Default(),
	})

	return svc, mocks
}

func TestFavoriteService_AddFavorite_Success(t *testing.T) {
	svc, mocks := newFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()
	bakeryID := uuid.New()

	mocks.bakeryRepo.EXPECT().FindByID(ctx, bakeryID).Return(&entity.Bakery{ID: bakeryID}, nil)
	mocks.favoriteRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Favorite")).
		Run(func(ctx context.Context, favorite *entity.Favorite) {
			assert.Equal(t, userID, favorite.UserID)
			assert.Equal(t, bakeryID, favorite.BakeryID)
		}).
		Return(nil)

	favorite, err := svc.AddFavorite(ctx, userID, bakeryID)

	require.NoError(t, err)
	assert.Equal(t, bakeryID, favorite.BakeryID)
}

func TestFavoriteService_AddFavorite_UnknownBakery(t *testing.T) {
	svc, mocks := newFavoriteService(t)

	ctx := context.Background()
	bakeryID := uuid.New()

	mocks.bakeryRepo.EXPECT().FindByID(ctx, bakeryID).Return(nil, repository.ErrBakeryNotFound)

	_, err := svc.AddFavorite(ctx, uuid.New(), bakeryID)

	assert.ErrorIs(t, err, domainerrors.ErrBakeryNotFound)
}

func TestFavoriteService_AddFavorite_Duplicate(t *testing.T) {
	svc, mocks := newFavoriteService(t)

	ctx := context.Background()
	bakeryID := uuid.New()

	mocks.bakeryRepo.EXPECT().FindByID(ctx, bakeryID).Return(&entity.Bakery{ID: bakeryID}, nil)
	mocks.favoriteRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Favorite")).
		Return(repository.ErrDuplicateFavorite)

	_, err := svc.AddFavorite(ctx, uuid.New(), bakeryID)

	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestFavoriteService_RemoveFavorite_NotFound(t *testing.T) {
	svc, mocks := newFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()
	bakeryID := uuid.New()

	mocks.favoriteRepo.EXPECT().Delete(ctx, userID, bakeryID).Return(repository.ErrFavoriteNotFound)

	err := svc.RemoveFavorite(ctx, userID, bakeryID)

	assert.ErrorIs(t, err, domainerrors.ErrFavoriteNotFound)
}

func TestFavoriteService_ListFavorites(t *testing.T) {
	svc, mocks := newFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := []*entity.Favorite{
		{ID: uuid.New(), UserID: userID, BakeryID: uuid.New()},
		{ID: uuid.New(), UserID: userID, BakeryID: uuid.New()},
	}

	mocks.favoriteRepo.EXPECT().FindByUser(ctx, userID).Return(stored, nil)

	favorites, err := svc.ListFavorites(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, stored, favorites)
}

func TestFavoriteService_ShareFavorites_MintsTokenOnFirstCall(t *testing.T) {
	svc, mocks := newFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	mocks.favoriteRepo.EXPECT().
		FindShareByUser(ctx, userID).
		Return(nil, repository.ErrFavoriteShareNotFound)

	var minted string
	mocks.favoriteRepo.EXPECT().
		CreateShare(ctx, mock.AnythingOfType("*entity.FavoriteShare")).
		Run(func(ctx context.Context, share *entity.FavoriteShare) {
			assert.Equal(t, userID, share.UserID)
			assert.Len(t, share.ShareToken, 32)
			minted = share.ShareToken
		}).
		Return(nil)
	mocks.qrcode.EXPECT().
		GenerateFavoriteShareQR(mock.AnythingOfType("string")).
		Return(png, nil)
	mocks.qrcode.EXPECT().
		FavoriteShareURL(mock.AnythingOfType("string")).
		RunAndReturn(func(token string) string {
			assert.Equal(t, minted, token)

			return "https://breadmap.app/favorites/shared/" + token
		})

	gotPNG, shareURL, err := svc.ShareFavorites(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, png, gotPNG)
	assert.Equal(t, "https://breadmap.app/favorites/shared/"+minted, shareURL)
}

func TestFavoriteService_ShareFavorites_ReusesExistingToken(t *testing.T) {
	svc, mocks := newFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.FavoriteShare{
		ID:         uuid.New(),
		UserID:     userID,
		ShareToken: "b0e1f2a3b4c5d6e7f8090a1b2c3d4e5f",
	}
	png := []byte("png-bytes")

	mocks.favoriteRepo.EXPECT().FindShareByUser(ctx, userID).Return(existing, nil)
	mocks.qrcode.EXPECT().GenerateFavoriteShareQR(existing.ShareToken).Return(png, nil)
	mocks.qrcode.EXPECT().
		FavoriteShareURL(existing.ShareToken).
		Return("https://breadmap.app/favorites/shared/" + existing.ShareToken)

	gotPNG, shareURL, err := svc.ShareFavorites(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, png, gotPNG)
	assert.Contains(t, shareURL, existing.ShareToken)
}

func TestFavoriteService_UnshareFavorites_NotShared(t *testing.T) {
	svc, mocks := newFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.favoriteRepo.EXPECT().
		DeleteShareByUser(ctx, userID).
		Return(repository.ErrFavoriteShareNotFound)

	err := svc.UnshareFavorites(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrFavoriteShareNotFound)
}

func TestFavoriteService_GetSharedFavorites_Success(t *testing.T) {
	svc, mocks := newFavoriteService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	token := "a1b2c3d4e5f60718293a4b5c6d7e8f90"
	goneBakeryID := uuid.New()
	keptBakeryID := uuid.New()

	mocks.favoriteRepo.EXPECT().
		FindShareByToken(ctx, token).
		Return(&entity.FavoriteShare{ID: uuid.New(), UserID: ownerID, ShareToken: token}, nil)
	mocks.userRepo.EXPECT().
		FindByID(ctx, ownerID).
		Return(&entity.User{ID: ownerID, Nickname: "빵순이"}, nil)
	mocks.favoriteRepo.EXPECT().
		FindByUser(ctx, ownerID).
		Return([]*entity.Favorite{
			{ID: uuid.New(), UserID: ownerID, BakeryID: keptBakeryID},
			{ID: uuid.New(), UserID: ownerID, BakeryID: goneBakeryID},
		}, nil)
	mocks.bakeryRepo.EXPECT().
		FindByID(ctx, keptBakeryID).
		Return(&entity.Bakery{ID: keptBakeryID, Name: "성수연방"}, nil)
	mocks.bakeryRepo.EXPECT().
		FindByID(ctx, goneBakeryID).
		Return(nil, repository.ErrBakeryNotFound)

	shared, err := svc.GetSharedFavorites(ctx, token)

	require.NoError(t, err)
	assert.Equal(t, "빵순이", shared.Owner.Nickname)
	assert.Equal(t, token, shared.ShareToken)
	require.Len(t, shared.Bakeries, 1)
	assert.Equal(t, keptBakeryID, shared.Bakeries[0].ID)
	assert.Equal(t, 1, shared.BakeryCount)
}

func TestFavoriteService_GetSharedFavorites_UnknownToken(t *testing.T) {
	svc, mocks := newFavoriteService(t)

	ctx := context.Background()

	mocks.favoriteRepo.EXPECT().
		FindShareByToken(ctx, "no-such-token").
		Return(nil, repository.ErrFavoriteShareNotFound)

	_, err := svc.GetSharedFavorites(ctx, "no-such-token")

	assert.ErrorIs(t, err, domainerrors.ErrFavoriteShareNotFound)
}

func TestFavoriteService_SharedFavoritesToChallenge(t *testing.T) {
	svc, mocks := newFavoriteService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	visitorID := uuid.New()
	token := "0f1e2d3c4b5a69788796a5b4c3d2e1f0"
	firstBakeryID := uuid.New()
	secondBakeryID := uuid.New()

	mocks.favoriteRepo.EXPECT().
		FindShareByToken(ctx, token).
		Return(&entity.FavoriteShare{ID: uuid.New(), UserID: ownerID, ShareToken: token}, nil)
	mocks.userRepo.EXPECT().
		FindByID(ctx, ownerID).
		Return(&entity.User{ID: ownerID, Nickname: "빵순이"}, nil)
	// Newest first, the way the repository lists favorites.
	mocks.favoriteRepo.EXPECT().
		FindByUser(ctx, ownerID).
		Return([]*entity.Favorite{
			{ID: uuid.New(), UserID: ownerID, BakeryID: secondBakeryID},
			{ID: uuid.New(), UserID: ownerID, BakeryID: firstBakeryID},
		}, nil)

	created := &usecase.ChallengeWithProgress{}
	mocks.challengeUC.EXPECT().
		CreateChallenge(ctx, mock.AnythingOfType("usecase.CreateChallengeInput")).
		Run(func(ctx context.Context, input usecase.CreateChallengeInput) {
			assert.Equal(t, visitorID, input.UserID)
			assert.Equal(t, "빵순이님의 찜한 빵집", input.Name)
			assert.Equal(t, "빵순이님이 공유한 찜목록입니다.", input.Description)
			assert.False(t, input.IsPublic)
			// The challenge keeps the order the favorites were added in.
			assert.Equal(t, []uuid.UUID{firstBakeryID, secondBakeryID}, input.BakeryIDs)
		}).
		Return(created, nil)

	challenge, err := svc.SharedFavoritesToChallenge(ctx, visitorID, token)

	require.NoError(t, err)
	assert.Same(t, created, challenge)
}

func TestFavoriteService_SharedFavoritesToChallenge_EmptyList(t *testing.T) {
	svc, mocks := newFavoriteService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	token := "ffeeddccbbaa99887766554433221100"

	mocks.favoriteRepo.EXPECT().
		FindShareByToken(ctx, token).
		Return(&entity.FavoriteShare{ID: uuid.New(), UserID: ownerID, ShareToken: token}, nil)
	mocks.userRepo.EXPECT().
		FindByID(ctx, ownerID).
		Return(&entity.User{ID: ownerID, Nickname: "빵순이"}, nil)
	mocks.favoriteRepo.EXPECT().FindByUser(ctx, ownerID).Return(nil, nil)

	_, err := svc.SharedFavoritesToChallenge(ctx, uuid.New(), token)

	assert.ErrorIs(t, err, domainerrors.ErrEmptyFavorites)
}
