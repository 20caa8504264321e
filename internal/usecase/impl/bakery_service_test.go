package impl

import (
	"context"
	"testing"

	"breadmap/internal/domain/entity"
	domainerrors "breadmap/internal/domain/errors"
	"breadmap/internal/domain/repository"
	mockRepo "breadmap/internal/mocks/repository"
	"breadmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bakeryServiceMocks struct {
	bakeryRepo *mockRepo.MockBakeryRepository
	reviewRepo *mockRepo.MockReviewRepository
	themeRepo  *mockRepo.MockThemeRepository
}

func newBakeryService(t *testing.T) (usecase.BakeryUsecase, bakeryServiceMocks) {
	t.Helper()

	mocks := bakeryServiceMocks{
		bakeryRepo: mockRepo.NewMockBakeryRepository(t),
		reviewRepo: mockRepo.NewMockReviewRepository(t),
		themeRepo:  mockRepo.NewMockThemeRepository(t),
	}

	svc := NewBakeryService(BakeryServiceParams{
		BakeryRepo: mocks.bakeryRepo,
		ReviewRepo: mocks.reviewRepo,
		ThemeRepo:  mocks.themeRepo,
	})

	return svc, mocks
}

func TestBakeryService_CheckDuplicates_ByName(t *testing.T) {
	svc, mocks := newBakeryService(t)

	ctx := context.Background()
	existingID := uuid.New()

	mocks.bakeryRepo.EXPECT().
		FindByName(ctx, "성수연방").
		Return([]*entity.Bakery{
			{ID: existingID, Name: "성수연방", Address: "서울 성동구 성수이로14길 14", Lat: 37.5445, Lng: 127.0561},
		}, nil)

	result, err := svc.CheckDuplicates(ctx, usecase.DuplicateCheckInput{Name: "성수연방"})

	require.NoError(t, err)
	assert.True(t, result.HasDuplicates)
	require.Len(t, result.Duplicates, 1)
	assert.Equal(t, existingID, result.Duplicates[0].ID)
	assert.Equal(t, "same_name", result.Duplicates[0].MatchReason)
	assert.Nil(t, result.Duplicates[0].DistanceM)
	assert.Equal(t, 1, result.Count)
}

func TestBakeryService_CheckDuplicates_Nearby(t *testing.T) {
	svc, mocks := newBakeryService(t)

	ctx := context.Background()
	lat, lng := 37.5445, 127.0561
	nearID := uuid.New()

	// About 55 meters north of the given point; the second bakery is far away.
	mocks.bakeryRepo.EXPECT().
		FindAll(ctx, repository.BakeryFilter{}).
		Return([]*entity.Bakery{
			{ID: nearID, Name: "어니언", Lat: 37.5450, Lng: 127.0561},
			{ID: uuid.New(), Name: "태극당", Lat: 37.5594, Lng: 127.0057},
		}, nil)

	result, err := svc.CheckDuplicates(ctx, usecase.DuplicateCheckInput{Lat: &lat, Lng: &lng})

	require.NoError(t, err)
	require.Len(t, result.Duplicates, 1)
	assert.Equal(t, nearID, result.Duplicates[0].ID)
	assert.Equal(t, "nearby", result.Duplicates[0].MatchReason)
	require.NotNil(t, result.Duplicates[0].DistanceM)
	assert.InDelta(t, 55, *result.Duplicates[0].DistanceM, 5)
}

func TestBakeryService_CheckDuplicates_NameMatchGainsDistance(t *testing.T) {
	svc, mocks := newBakeryService(t)

	ctx := context.Background()
	lat, lng := 37.5445, 127.0561
	existing := &entity.Bakery{ID: uuid.New(), Name: "성수연방", Lat: 37.5450, Lng: 127.0561}

	mocks.bakeryRepo.EXPECT().FindByName(ctx, "성수연방").Return([]*entity.Bakery{existing}, nil)
	mocks.bakeryRepo.EXPECT().FindAll(ctx, repository.BakeryFilter{}).Return([]*entity.Bakery{existing}, nil)

	result, err := svc.CheckDuplicates(ctx, usecase.DuplicateCheckInput{
		Name: "성수연방",
		Lat:  &lat,
		Lng:  &lng,
	})

	require.NoError(t, err)
	// One candidate, not two: the name match absorbs the proximity hit.
	require.Len(t, result.Duplicates, 1)
	assert.Equal(t, "same_name", result.Duplicates[0].MatchReason)
	require.NotNil(t, result.Duplicates[0].DistanceM)
	assert.InDelta(t, 55, *result.Duplicates[0].DistanceM, 5)
}

func TestBakeryService_CheckDuplicates_RequiresNameOrCoordinates(t *testing.T) {
	svc, _ := newBakeryService(t)

	_, err := svc.CheckDuplicates(context.Background(), usecase.DuplicateCheckInput{})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestBakeryService_CheckDuplicates_NoMatches(t *testing.T) {
	svc, mocks := newBakeryService(t)

	ctx := context.Background()

	mocks.bakeryRepo.EXPECT().FindByName(ctx, "없는빵집").Return(nil, nil)

	result, err := svc.CheckDuplicates(ctx, usecase.DuplicateCheckInput{Name: "없는빵집"})

	require.NoError(t, err)
	assert.False(t, result.HasDuplicates)
	assert.Empty(t, result.Duplicates)
	assert.Equal(t, 0, result.Count)
}
