package impl

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"breadmap/config"
	"breadmap/internal/domain/entity"
	mockRepo "breadmap/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecommendationService(t *testing.T, bakeryRepo *mockRepo.MockBakeryRepository) *recommendationService {
	t.Helper()

	svc := NewRecommendationService(RecommendationServiceParams{
		BakeryRepo: bakeryRepo,
		Config:     &config.Config{},
		Logger:     slog.Default(),
	})

	service, ok := svc.(*recommendationService)
	require.True(t, ok)

	return service
}

func ratedBakery(name, district string, rating float64, reviews int) entity.RatedBakery {
	return entity.RatedBakery{
		Bakery: entity.Bakery{
			ID:       uuid.New(),
			Name:     name,
			District: district,
		},
		AverageRating: rating,
		ReviewCount:   reviews,
	}
}

func snapshotOf(n int) []entity.RatedBakery {
	districts := []string{"성수", "망원", "홍대", "강남", "서초", "연남"}
	snapshot := make([]entity.RatedBakery, 0, n)
	for i := 0; i < n; i++ {
		snapshot = append(snapshot, ratedBakery(
			fmt.Sprintf("bakery-%02d", i),
			districts[i%len(districts)],
			5.0-float64(i)*0.1,
			20-i,
		))
	}

	return snapshot
}

func TestWeekSeed(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("KST", 9*60*60)

	// January 1 falls one day after the day-zero anchor, so the first week
	// of the year is seed zero.
	jan1 := time.Date(2026, time.January, 1, 12, 0, 0, 0, loc)
	assert.Equal(t, 0, weekSeed(jan1))

	// Seven days later the seed advances.
	jan8 := time.Date(2026, time.January, 8, 12, 0, 0, 0, loc)
	assert.Equal(t, 1, weekSeed(jan8))

	// Every day inside one bucket shares the seed: days 21 through 27 are
	// all day-of-year 21..27, and 21/7 == 27/7 == 3.
	for day := 21; day < 28; day++ {
		d := time.Date(2026, time.January, day, 3, 0, 0, 0, loc)
		assert.Equal(t, 3, weekSeed(d), "day %d", day)
	}

	// The bucket boundary falls on day 28.
	jan28 := time.Date(2026, time.January, 28, 3, 0, 0, 0, loc)
	assert.Equal(t, 4, weekSeed(jan28))
}

func TestSeededShuffle_Deterministic(t *testing.T) {
	t.Parallel()

	items := snapshotOf(10)

	first := seededShuffle(items, 42)
	second := seededShuffle(items, 42)
	assert.Equal(t, first, second)

	// A different seed yields a different permutation for this input size.
	other := seededShuffle(items, 43)
	assert.NotEqual(t, first, other)
}

func TestSeededShuffle_IsPermutation(t *testing.T) {
	t.Parallel()

	items := snapshotOf(20)
	shuffled := seededShuffle(items, 7)

	require.Len(t, shuffled, len(items))

	seen := make(map[uuid.UUID]int)
	for i := range shuffled {
		seen[shuffled[i].ID]++
	}
	for i := range items {
		assert.Equal(t, 1, seen[items[i].ID], "bakery %s", items[i].Name)
	}

	// The input order is untouched.
	assert.Equal(t, "bakery-00", items[0].Name)
}

func TestSeededShuffle_SmallInputs(t *testing.T) {
	t.Parallel()

	assert.Empty(t, seededShuffle(nil, 5))

	one := snapshotOf(1)
	assert.Equal(t, one, seededShuffle(one, 5))
}

func TestRankByRating_RoundedAverageTieBreak(t *testing.T) {
	t.Parallel()

	// Both 3.84 and 3.75 display as 3.8, so the better-reviewed bakery must
	// rank first even though its raw average is lower.
	snapshot := []entity.RatedBakery{
		ratedBakery("few-reviews", "성수", 3.8, 2),
		ratedBakery("well-reviewed", "망원", 3.8, 10),
		ratedBakery("top", "홍대", 4.5, 3),
	}

	rankByRating(snapshot)

	require.Len(t, snapshot, 3)
	assert.Equal(t, "top", snapshot[0].Name)
	assert.Equal(t, "well-reviewed", snapshot[1].Name)
	assert.Equal(t, "few-reviews", snapshot[2].Name)
}

func TestWeeklyRecommendations_EmptySnapshot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	bakeryRepo := mockRepo.NewMockBakeryRepository(t)
	bakeryRepo.EXPECT().
		FindRatedSnapshot(ctx, defaultCandidatePoolSize).
		Return([]entity.RatedBakery{}, nil)

	svc := newRecommendationService(t, bakeryRepo)

	bundles, err := svc.WeeklyRecommendations(ctx, time.Now())
	require.NoError(t, err)
	assert.Empty(t, bundles)
}

func TestWeeklyRecommendations_SameWeekSameOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	snapshot := snapshotOf(20)

	bakeryRepo := mockRepo.NewMockBakeryRepository(t)
	bakeryRepo.EXPECT().
		FindRatedSnapshot(ctx, defaultCandidatePoolSize).
		Return(snapshot, nil)

	svc := newRecommendationService(t, bakeryRepo)

	// March 2 and March 3 2026 are day-of-year 61 and 62, both in bucket 8,
	// so two calls a day apart must shuffle identically.
	loc := time.FixedZone("KST", 9*60*60)
	monday := time.Date(2026, time.March, 2, 9, 0, 0, 0, loc)
	tuesday := time.Date(2026, time.March, 3, 21, 0, 0, 0, loc)

	first, err := svc.WeeklyRecommendations(ctx, monday)
	require.NoError(t, err)
	second, err := svc.WeeklyRecommendations(ctx, tuesday)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestWeeklyRecommendations_BundleShapes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	snapshot := snapshotOf(20)

	bakeryRepo := mockRepo.NewMockBakeryRepository(t)
	bakeryRepo.EXPECT().
		FindRatedSnapshot(ctx, defaultCandidatePoolSize).
		Return(snapshot, nil)

	svc := newRecommendationService(t, bakeryRepo)

	bundles, err := svc.WeeklyRecommendations(ctx, time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, bundles)

	byID := make(map[string]entity.RecommendedBundle)
	order := make([]string, 0, len(bundles))
	for _, bundle := range bundles {
		byID[bundle.ID] = bundle
		order = append(order, bundle.ID)
	}

	// Bundles keep their fixed order.
	expectedOrder := []string{}
	for _, id := range []string{"weekly-tour", "top-rated", "seoul-hotplace"} {
		if _, ok := byID[id]; ok {
			expectedOrder = append(expectedOrder, id)
		}
	}
	assert.Equal(t, expectedOrder, order)

	if tour, ok := byID["weekly-tour"]; ok {
		require.Len(t, tour.Bakeries, 3)
		assert.Equal(t, "이번주 3코스 빵투어", tour.Name)
		assert.Equal(t, "쉬움", tour.Difficulty)
	}
	if topRated, ok := byID["top-rated"]; ok {
		require.Len(t, topRated.Bakeries, 5)
		assert.Equal(t, "평점 맛집 5선", topRated.Name)
	}
	if hotspot, ok := byID["seoul-hotplace"]; ok {
		assert.GreaterOrEqual(t, len(hotspot.Bakeries), 3)
		assert.LessOrEqual(t, len(hotspot.Bakeries), 4)
	}
}

func TestBuildTourBundle_DistinctDistricts(t *testing.T) {
	t.Parallel()

	svc := &recommendationService{trendDistricts: defaultTrendDistricts}

	shuffled := []entity.RatedBakery{
		ratedBakery("a", "성수", 5, 10),
		ratedBakery("b", "성수", 4.9, 9),
		ratedBakery("c", "망원", 4.8, 8),
		ratedBakery("d", "홍대", 4.7, 7),
	}

	bundle, ok := svc.buildTourBundle(shuffled)
	require.True(t, ok)
	require.Len(t, bundle.Bakeries, 3)

	districts := map[string]bool{}
	for _, bakery := range bundle.Bakeries {
		districts[bakery.District] = true
	}
	assert.Len(t, districts, 3)
}

func TestBuildTourBundle_BackfillsWhenDistrictsRepeat(t *testing.T) {
	t.Parallel()

	svc := &recommendationService{trendDistricts: defaultTrendDistricts}

	shuffled := []entity.RatedBakery{
		ratedBakery("a", "성수", 5, 10),
		ratedBakery("b", "성수", 4.9, 9),
		ratedBakery("c", "성수", 4.8, 8),
	}

	bundle, ok := svc.buildTourBundle(shuffled)
	require.True(t, ok)
	assert.Len(t, bundle.Bakeries, 3)
}

func TestBuildTourBundle_OmittedWhenTooFew(t *testing.T) {
	t.Parallel()

	svc := &recommendationService{trendDistricts: defaultTrendDistricts}

	shuffled := []entity.RatedBakery{
		ratedBakery("a", "성수", 5, 10),
		ratedBakery("b", "망원", 4.9, 9),
	}

	_, ok := svc.buildTourBundle(shuffled)
	assert.False(t, ok)
}

func TestBuildTopRatedBundle_OmittedUnderFive(t *testing.T) {
	t.Parallel()

	svc := &recommendationService{}

	_, ok := svc.buildTopRatedBundle(snapshotOf(4))
	assert.False(t, ok)

	bundle, ok := svc.buildTopRatedBundle(snapshotOf(5))
	require.True(t, ok)
	assert.Len(t, bundle.Bakeries, 5)
}

func TestBuildHotspotBundle(t *testing.T) {
	t.Parallel()

	svc := &recommendationService{trendDistricts: defaultTrendDistricts}

	shuffled := []entity.RatedBakery{
		ratedBakery("a", "성수", 5, 10),
		ratedBakery("b", "강남", 4.9, 9), // not a trend district
		ratedBakery("c", "망원", 4.8, 8),
		ratedBakery("d", "홍대", 4.7, 7),
		ratedBakery("e", "연남", 4.6, 6),
		ratedBakery("f", "한남", 4.5, 5),
	}

	bundle, ok := svc.buildHotspotBundle(shuffled)
	require.True(t, ok)
	require.Len(t, bundle.Bakeries, 4)
	for _, bakery := range bundle.Bakeries {
		assert.NotEqual(t, "강남", bakery.District)
	}

	// Fewer than three trendy bakeries drops the bundle.
	_, ok = svc.buildHotspotBundle(shuffled[:3])
	assert.False(t, ok)
}
