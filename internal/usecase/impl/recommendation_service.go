package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"time"

	"breadmap/config"
	"breadmap/internal/domain/entity"
	"breadmap/internal/domain/repository"
	"breadmap/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultCandidatePoolSize = 100
	defaultTopRatedPoolSize  = 20

	tourBundleSize     = 3
	topRatedBundleSize = 5
	hotspotBundleCap   = 4
	hotspotBundleMin   = 3
)

// defaultTrendDistricts are the districts considered trendy for the hotspot
// bundle when none are configured.
var defaultTrendDistricts = []string{"성수", "망원", "홍대", "연남", "이태원", "경리단길", "한남"}

type recommendationService struct {
	bakeryRepo        repository.BakeryRepository
	logger            *slog.Logger
	candidatePoolSize int
	topRatedPoolSize  int
	trendDistricts    []string
}

// RecommendationServiceParams holds dependencies for RecommendationService, injected by Fx.
type RecommendationServiceParams struct {
	fx.In

	BakeryRepo repository.BakeryRepository
	Config     *config.Config
	Logger     *slog.Logger
}

// NewRecommendationService creates a new recommendation service instance
func NewRecommendationService(params RecommendationServiceParams) usecase.RecommendationUsecase {
	candidatePool := defaultCandidatePoolSize
	topRatedPool := defaultTopRatedPoolSize
	trendDistricts := defaultTrendDistricts
	if cfg := params.Config.Recommendation; cfg != nil {
		if cfg.CandidatePoolSize > 0 {
			candidatePool = cfg.CandidatePoolSize
		}
		if cfg.TopRatedPoolSize > 0 {
			topRatedPool = cfg.TopRatedPoolSize
		}
		if len(cfg.TrendDistricts) > 0 {
			trendDistricts = cfg.TrendDistricts
		}
	}

	return &recommendationService{
		bakeryRepo:        params.BakeryRepo,
		logger:            params.Logger,
		candidatePoolSize: candidatePool,
		topRatedPoolSize:  topRatedPool,
		trendDistricts:    trendDistricts,
	}
}

// WeeklyRecommendations assembles the themed bundles for the week containing now.
func (s *recommendationService) WeeklyRecommendations(ctx context.Context, now time.Time) ([]entity.RecommendedBundle, error) {
	snapshot, err := s.bakeryRepo.FindRatedSnapshot(ctx, s.candidatePoolSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load rated bakery snapshot")
	}

	if len(snapshot) == 0 {
		return []entity.RecommendedBundle{}, nil
	}

	seed := weekSeed(now)

	// Rank on the one-decimal average the clients display, so two bakeries
	// whose raw averages round to the same value are ordered by review count.
	rankByRating(snapshot)

	top := snapshot
	if len(top) > s.topRatedPoolSize {
		top = top[:s.topRatedPoolSize]
	}
	shuffled := seededShuffle(top, seed)

	recommendations := make([]entity.RecommendedBundle, 0, 3)
	if bundle, ok := s.buildTourBundle(shuffled); ok {
		recommendations = append(recommendations, bundle)
	}
	if bundle, ok := s.buildTopRatedBundle(shuffled); ok {
		recommendations = append(recommendations, bundle)
	}
	if bundle, ok := s.buildHotspotBundle(shuffled); ok {
		recommendations = append(recommendations, bundle)
	}

	s.logger.Debug("Weekly recommendations assembled",
		slog.Int("week_seed", seed),
		slog.Int("candidates", len(snapshot)),
		slog.Int("bundles", len(recommendations)),
	)

	return recommendations, nil
}

// buildTourBundle picks three bakeries from distinct districts, backfilling
// from the front of the shuffled order when fewer than three districts exist.
// The bundle is omitted entirely unless exactly three bakeries are found.
func (s *recommendationService) buildTourBundle(shuffled []entity.RatedBakery) (entity.RecommendedBundle, bool) {
	picked := make([]entity.RatedBakery, 0, tourBundleSize)
	usedDistricts := make(map[string]struct{})

	for i := range shuffled {
		if len(picked) >= tourBundleSize {
			break
		}
		district := shuffled[i].District
		if district == "" {
			continue
		}
		if _, used := usedDistricts[district]; used {
			continue
		}
		picked = append(picked, shuffled[i])
		usedDistricts[district] = struct{}{}
	}

	// Not enough distinct districts: backfill with the highest-ordered
	// bakeries not already picked.
	for i := range shuffled {
		if len(picked) >= tourBundleSize {
			break
		}
		if containsBakery(picked, &shuffled[i]) {
			continue
		}
		picked = append(picked, shuffled[i])
	}

	if len(picked) != tourBundleSize {
		return entity.RecommendedBundle{}, false
	}

	return entity.RecommendedBundle{
		ID:          "weekly-tour",
		Name:        "이번주 3코스 빵투어",
		Description: "에디터가 선정한 이번 주 꼭 가봐야 할 빵집 3곳",
		Icon:        "🗺️",
		Bakeries:    picked,
		Difficulty:  "쉬움",
	}, true
}

// buildTopRatedBundle takes the first five bakeries of the weekly order. The
// bundle is omitted entirely unless exactly five exist.
func (s *recommendationService) buildTopRatedBundle(shuffled []entity.RatedBakery) (entity.RecommendedBundle, bool) {
	if len(shuffled) < topRatedBundleSize {
		return entity.RecommendedBundle{}, false
	}

	return entity.RecommendedBundle{
		ID:          "top-rated",
		Name:        "평점 맛집 5선",
		Description: "높은 평점을 받은 검증된 빵집들",
		Icon:        "⭐",
		Bakeries:    slices.Clone(shuffled[:topRatedBundleSize]),
		Difficulty:  "보통",
	}, true
}

// buildHotspotBundle filters the weekly order down to trendy districts and
// takes up to four. The bundle is omitted when fewer than three remain.
func (s *recommendationService) buildHotspotBundle(shuffled []entity.RatedBakery) (entity.RecommendedBundle, bool) {
	picked := make([]entity.RatedBakery, 0, hotspotBundleCap)

	for i := range shuffled {
		if len(picked) >= hotspotBundleCap {
			break
		}
		if shuffled[i].District == "" {
			continue
		}
		if !slices.Contains(s.trendDistricts, shuffled[i].District) {
			continue
		}
		picked = append(picked, shuffled[i])
	}

	if len(picked) < hotspotBundleMin {
		return entity.RecommendedBundle{}, false
	}

	return entity.RecommendedBundle{
		ID:          "seoul-hotplace",
		Name:        "서울 핫플 투어",
		Description: "트렌디한 서울 핫플레이스 빵집 모음",
		Icon:        "🏙️",
		Bakeries:    picked,
		Difficulty:  "보통",
	}, true
}

// rankByRating orders candidates by rounded average rating descending, then
// review count descending. The snapshot's AverageRating is already rounded to
// one decimal, so equal display averages break on review count. The sort is
// stable to keep the ranking deterministic across calls.
func rankByRating(snapshot []entity.RatedBakery) {
	slices.SortStableFunc(snapshot, func(a, b entity.RatedBakery) int {
		if c := cmp.Compare(b.AverageRating, a.AverageRating); c != 0 {
			return c
		}

		return cmp.Compare(b.ReviewCount, a.ReviewCount)
	})
}

func containsBakery(list []entity.RatedBakery, candidate *entity.RatedBakery) bool {
	for i := range list {
		if list[i].ID == candidate.ID {
			return true
		}
	}

	return false
}

// weekSeed derives the shuffle seed from the week of the year in local time.
// Day zero is December 31 of the previous year, so the first seven days of
// January share week zero.
func weekSeed(now time.Time) int {
	start := time.Date(now.Year()-1, time.December, 31, 0, 0, 0, 0, now.Location())
	dayOfYear := int(now.Sub(start) / (24 * time.Hour))

	return dayOfYear / 7
}

// seededShuffle returns a deterministic permutation of items driven by a
// linear congruential generator. The same (items, seed) pair always produces
// the same order.
func seededShuffle(items []entity.RatedBakery, seed int) []entity.RatedBakery {
	shuffled := slices.Clone(items)
	state := int64(seed)

	for i := len(shuffled) - 1; i > 0; i-- {
		state = (state*9301 + 49297) % 233280
		j := state * int64(i+1) / 233280
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled
}
