package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"breadmap/internal/domain/entity"
	domainerrors "breadmap/internal/domain/errors"
	"breadmap/internal/domain/repository"
	mockRepo "breadmap/internal/mocks/repository"
	mockSvc "breadmap/internal/mocks/service"
	"breadmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type challengeServiceMocks struct {
	txManager     *mockRepo.MockTransactionManager
	challengeRepo *mockRepo.MockChallengeRepository
	bakeryRepo    *mockRepo.MockBakeryRepository
	qrcode        *mockSvc.MockQRCodeService
}

func newChallengeService(t *testing.T) (usecase.ChallengeUsecase, challengeServiceMocks) {
	t.Helper()

	mocks := challengeServiceMocks{
		txManager:     mockRepo.NewMockTransactionManager(t),
		challengeRepo: mockRepo.NewMockChallengeRepository(t),
		bakeryRepo:    mockRepo.NewMockBakeryRepository(t),
		qrcode:        mockSvc.NewMockQRCodeService(t),
	}

	svc := NewChallengeService(ChallengeServiceParams{
		TxManager:     mocks.txManager,
		ChallengeRepo: mocks.challengeRepo,
		BakeryRepo:    mocks.bakeryRepo,
		QRCode:        mocks.qrcode,
		Logger:        slog.Default(),
	})

	return svc, mocks
}

func challengeWithItems(userID uuid.UUID, visited, total int) *entity.Challenge {
	challenge := &entity.Challenge{
		ID:       uuid.New(),
		UserID:   userID,
		Name:     "성수동 빵지순례",
		IsActive: true,
	}
	for i := 0; i < total; i++ {
		item := entity.ChallengeItem{
			ID:          uuid.New(),
			ChallengeID: challenge.ID,
			BakeryID:    uuid.New(),
			OrderNum:    i + 1,
		}
		if i < visited {
			now := time.Now()
			item.VisitedAt = &now
		}
		challenge.Items = append(challenge.Items, item)
	}

	return challenge
}

func TestChallengeService_ListChallenges_ComputesProgress(t *testing.T) {
	svc, mocks := newChallengeService(t)

	ctx := context.Background()
	userID := uuid.New()
	first := challengeWithItems(userID, 1, 3)
	second := challengeWithItems(userID, 0, 2)

	mocks.challengeRepo.EXPECT().
		FindByUser(ctx, userID).
		Return([]*entity.Challenge{first, second}, nil)

	result, err := svc.ListChallenges(ctx, userID)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, 33, result[0].Progress.ProgressPercentage)
	assert.Equal(t, 0, result[1].Progress.ProgressPercentage)
}

func TestChallengeService_GetChallenge_PrivateHiddenFromOthers(t *testing.T) {
	svc, mocks := newChallengeService(t)

	ctx := context.Background()
	owner := uuid.New()
	challenge := challengeWithItems(owner, 0, 1)
	challenge.IsPublic = false

	mocks.challengeRepo.EXPECT().FindByID(ctx, challenge.ID).Return(challenge, nil)

	_, err := svc.GetChallenge(ctx, uuid.New(), challenge.ID)

	assert.ErrorIs(t, err, domainerrors.ErrChallengeNotFound)
}

func TestChallengeService_GetChallenge_PublicVisibleToAnyone(t *testing.T) {
	svc, mocks := newChallengeService(t)

	ctx := context.Background()
	challenge := challengeWithItems(uuid.New(), 2, 2)
	challenge.IsPublic = true

	mocks.challengeRepo.EXPECT().FindByID(ctx, challenge.ID).Return(challenge, nil)

	result, err := svc.GetChallenge(ctx, uuid.New(), challenge.ID)

	require.NoError(t, err)
	assert.Equal(t, 100, result.Progress.ProgressPercentage)
}

func TestChallengeService_CreateChallenge_CreatesItemsInOrder(t *testing.T) {
	svc, mocks := newChallengeService(t)

	ctx := context.Background()
	userID := uuid.New()
	bakeryIDs := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	var createdID uuid.UUID

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txChallengeRepo := mockRepo.NewMockChallengeRepository(t)

			factory.EXPECT().NewChallengeRepository().Return(txChallengeRepo)
			txChallengeRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Challenge")).
				Run(func(ctx context.Context, challenge *entity.Challenge) {
					createdID = challenge.ID
					assert.True(t, challenge.IsActive)
				}).
				Return(nil)
			txChallengeRepo.EXPECT().
				CreateItems(ctx, mock.AnythingOfType("[]entity.ChallengeItem")).
				Run(func(ctx context.Context, items []entity.ChallengeItem) {
					require.Len(t, items, 3)
					for i, item := range items {
						assert.Equal(t, bakeryIDs[i], item.BakeryID)
						assert.Equal(t, i+1, item.OrderNum)
					}
				}).
				Return(nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil)
	mocks.challengeRepo.EXPECT().
		FindByID(ctx, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(ctx context.Context, id uuid.UUID) (*entity.Challenge, error) {
			assert.Equal(t, createdID, id)
			return &entity.Challenge{ID: id, UserID: userID, Name: "성수동 빵지순례"}, nil
		})

	result, err := svc.CreateChallenge(ctx, usecase.CreateChallengeInput{
		UserID:    userID,
		Name:      "성수동 빵지순례",
		BakeryIDs: bakeryIDs,
	})

	require.NoError(t, err)
	assert.Equal(t, "성수동 빵지순례", result.Name)
}

func TestChallengeService_CreateChallenge_EmptyNameRejected(t *testing.T) {
	svc, _ := newChallengeService(t)

	_, err := svc.CreateChallenge(context.Background(), usecase.CreateChallengeInput{
		UserID: uuid.New(),
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestChallengeService_DeleteChallenge_ForbiddenForOthers(t *testing.T) {
	svc, mocks := newChallengeService(t)

	ctx := context.Background()
	challenge := challengeWithItems(uuid.New(), 0, 1)

	mocks.challengeRepo.EXPECT().FindByID(ctx, challenge.ID).Return(challenge, nil)

	err := svc.DeleteChallenge(ctx, uuid.New(), challenge.ID)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestChallengeService_ToggleVisit_MarksVisited(t *testing.T) {
	svc, mocks := newChallengeService(t)

	ctx := context.Background()
	userID := uuid.New()
	challenge := challengeWithItems(userID, 0, 2)
	item := challenge.Items[0]

	mocks.challengeRepo.EXPECT().FindByID(ctx, challenge.ID).Return(challenge, nil).Once()
	mocks.challengeRepo.EXPECT().FindItem(ctx, item.ID).Return(&item, nil)
	mocks.challengeRepo.EXPECT().
		UpdateItem(ctx, mock.AnythingOfType("*entity.ChallengeItem")).
		Run(func(ctx context.Context, updated *entity.ChallengeItem) {
			require.NotNil(t, updated.VisitedAt)
			assert.Equal(t, "소금빵이 최고", updated.Memo)
		}).
		Return(nil)

	refreshed := challengeWithItems(userID, 1, 2)
	refreshed.ID = challenge.ID
	mocks.challengeRepo.EXPECT().FindByID(ctx, challenge.ID).Return(refreshed, nil).Once()

	result, err := svc.ToggleVisit(ctx, userID, challenge.ID, item.ID, "소금빵이 최고")

	require.NoError(t, err)
	assert.Equal(t, 1, result.Progress.VisitedCount)
	assert.Equal(t, 50, result.Progress.ProgressPercentage)
}

func TestChallengeService_ToggleVisit_UnmarksAndClearsMemo(t *testing.T) {
	svc, mocks := newChallengeService(t)

	ctx := context.Background()
	userID := uuid.New()
	challenge := challengeWithItems(userID, 1, 1)
	item := challenge.Items[0]
	item.Memo = "또 가고 싶다"

	mocks.challengeRepo.EXPECT().FindByID(ctx, challenge.ID).Return(challenge, nil).Once()
	mocks.challengeRepo.EXPECT().FindItem(ctx, item.ID).Return(&item, nil)
	mocks.challengeRepo.EXPECT().
		UpdateItem(ctx, mock.AnythingOfType("*entity.ChallengeItem")).
		Run(func(ctx context.Context, updated *entity.ChallengeItem) {
			assert.Nil(t, updated.VisitedAt)
			assert.Empty(t, updated.Memo)
		}).
		Return(nil)

	refreshed := challengeWithItems(userID, 0, 1)
	refreshed.ID = challenge.ID
	mocks.challengeRepo.EXPECT().FindByID(ctx, challenge.ID).Return(refreshed, nil).Once()

	_, err := svc.ToggleVisit(ctx, userID, challenge.ID, item.ID, "")

	require.NoError(t, err)
}

func TestChallengeService_ToggleVisit_ItemFromOtherChallenge(t *testing.T) {
	svc, mocks := newChallengeService(t)

	ctx := context.Background()
	userID := uuid.New()
	challenge := challengeWithItems(userID, 0, 1)
	foreign := &entity.ChallengeItem{ID: uuid.New(), ChallengeID: uuid.New()}

	mocks.challengeRepo.EXPECT().FindByID(ctx, challenge.ID).Return(challenge, nil)
	mocks.challengeRepo.EXPECT().FindItem(ctx, foreign.ID).Return(foreign, nil)

	_, err := svc.ToggleVisit(ctx, userID, challenge.ID, foreign.ID, "")

	assert.ErrorIs(t, err, domainerrors.ErrChallengeItemNotFound)
}

func TestChallengeService_ShareQR_MintsTokenOnFirstShare(t *testing.T) {
	svc, mocks := newChallengeService(t)

	ctx := context.Background()
	userID := uuid.New()
	challenge := challengeWithItems(userID, 0, 1)
	challenge.IsPublic = false

	var minted string

	mocks.challengeRepo.EXPECT().FindByID(ctx, challenge.ID).Return(challenge, nil)
	mocks.challengeRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Challenge")).
		Run(func(ctx context.Context, updated *entity.Challenge) {
			minted = updated.ShareToken
			assert.Len(t, minted, 32)
			assert.True(t, updated.IsPublic)
		}).
		Return(nil)
	mocks.qrcode.EXPECT().
		GenerateShareQR(mock.AnythingOfType("string")).
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)
	mocks.qrcode.EXPECT().
		ShareURL(mock.AnythingOfType("string")).
		RunAndReturn(func(token string) string {
			return "https://breadmap.app/challenges/shared/" + token
		})

	png, shareURL, err := svc.ShareQR(ctx, userID, challenge.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png)
	assert.Equal(t, "https://breadmap.app/challenges/shared/"+minted, shareURL)
}

func TestChallengeService_ShareQR_ReusesExistingToken(t *testing.T) {
	svc, mocks := newChallengeService(t)

	ctx := context.Background()
	userID := uuid.New()
	challenge := challengeWithItems(userID, 0, 1)
	challenge.ShareToken = "deadbeefdeadbeefdeadbeefdeadbeef"
	challenge.IsPublic = true

	mocks.challengeRepo.EXPECT().FindByID(ctx, challenge.ID).Return(challenge, nil)
	mocks.qrcode.EXPECT().
		GenerateShareQR("deadbeefdeadbeefdeadbeefdeadbeef").
		Return([]byte{1}, nil)
	mocks.qrcode.EXPECT().
		ShareURL("deadbeefdeadbeefdeadbeefdeadbeef").
		Return("https://breadmap.app/challenges/shared/deadbeefdeadbeefdeadbeefdeadbeef")

	_, shareURL, err := svc.ShareQR(ctx, userID, challenge.ID)

	require.NoError(t, err)
	assert.Contains(t, shareURL, challenge.ShareToken)
}

func TestChallengeService_GetSharedChallenge_UnknownToken(t *testing.T) {
	svc, mocks := newChallengeService(t)

	ctx := context.Background()

	mocks.challengeRepo.EXPECT().
		FindByShareToken(ctx, "nope").
		Return(nil, repository.ErrChallengeNotFound)

	_, err := svc.GetSharedChallenge(ctx, "nope")

	assert.ErrorIs(t, err, domainerrors.ErrChallengeNotFound)
}

func TestChallengeService_AddBakeries_SkipsDuplicatesAndContinuesOrder(t *testing.T) {
	svc, mocks := newChallengeService(t)

	ctx := context.Background()
	userID := uuid.New()
	challenge := challengeWithItems(userID, 0, 2)
	existingBakeryID := challenge.Items[0].BakeryID
	newBakeryID := uuid.New()

	mocks.challengeRepo.EXPECT().FindByID(ctx, challenge.ID).Return(challenge, nil).Once()
	mocks.bakeryRepo.EXPECT().FindByID(ctx, newBakeryID).Return(&entity.Bakery{ID: newBakeryID}, nil)
	mocks.challengeRepo.EXPECT().
		CreateItems(ctx, mock.AnythingOfType("[]entity.ChallengeItem")).
		Run(func(ctx context.Context, items []entity.ChallengeItem) {
			require.Len(t, items, 1)
			assert.Equal(t, newBakeryID, items[0].BakeryID)
			assert.Equal(t, 3, items[0].OrderNum)
		}).
		Return(nil)

	refreshed := challengeWithItems(userID, 0, 3)
	refreshed.ID = challenge.ID
	mocks.challengeRepo.EXPECT().FindByID(ctx, challenge.ID).Return(refreshed, nil).Once()

	result, err := svc.AddBakeries(ctx, userID, challenge.ID, []uuid.UUID{existingBakeryID, newBakeryID})

	require.NoError(t, err)
	assert.Equal(t, 3, result.Progress.TotalCount)
}

func TestChallengeService_AddBakeries_UnknownBakery(t *testing.T) {
	svc, mocks := newChallengeService(t)

	ctx := context.Background()
	userID := uuid.New()
	challenge := challengeWithItems(userID, 0, 1)
	unknownID := uuid.New()

	mocks.challengeRepo.EXPECT().FindByID(ctx, challenge.ID).Return(challenge, nil)
	mocks.bakeryRepo.EXPECT().FindByID(ctx, unknownID).Return(nil, repository.ErrBakeryNotFound)

	_, err := svc.AddBakeries(ctx, userID, challenge.ID, []uuid.UUID{unknownID})

	assert.ErrorIs(t, err, domainerrors.ErrBakeryNotFound)
}

func TestChallengeService_RemoveBakery_RefreshesProgress(t *testing.T) {
	svc, mocks := newChallengeService(t)

	ctx := context.Background()
	userID := uuid.New()
	challenge := challengeWithItems(userID, 1, 3)
	item := challenge.Items[2]

	mocks.challengeRepo.EXPECT().FindByID(ctx, challenge.ID).Return(challenge, nil).Once()
	mocks.challengeRepo.EXPECT().FindItem(ctx, item.ID).Return(&item, nil)
	mocks.challengeRepo.EXPECT().DeleteItem(ctx, item.ID).Return(nil)

	refreshed := challengeWithItems(userID, 1, 2)
	refreshed.ID = challenge.ID
	mocks.challengeRepo.EXPECT().FindByID(ctx, challenge.ID).Return(refreshed, nil).Once()

	result, err := svc.RemoveBakery(ctx, userID, challenge.ID, item.ID)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Progress.TotalCount)
	assert.Equal(t, 50, result.Progress.ProgressPercentage)
}

func TestChallengeService_RemoveBakery_ItemFromOtherChallenge(t *testing.T) {
	svc, mocks := newChallengeService(t)

	ctx := context.Background()
	userID := uuid.New()
	challenge := challengeWithItems(userID, 0, 1)
	foreign := entity.ChallengeItem{ID: uuid.New(), ChallengeID: uuid.New(), BakeryID: uuid.New()}

	mocks.challengeRepo.EXPECT().FindByID(ctx, challenge.ID).Return(challenge, nil)
	mocks.challengeRepo.EXPECT().FindItem(ctx, foreign.ID).Return(&foreign, nil)

	_, err := svc.RemoveBakery(ctx, userID, challenge.ID, foreign.ID)

	assert.ErrorIs(t, err, domainerrors.ErrChallengeItemNotFound)
}
