package impl

import (
	"context"
	"math"
	"slices"

	"breadmap/internal/domain/entity"
	domainerrors "breadmap/internal/domain/errors"
	"breadmap/internal/domain/repository"
	"breadmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type bakeryService struct {
	bakeryRepo repository.BakeryRepository
	reviewRepo repository.ReviewRepository
	themeRepo  repository.ThemeRepository
}

// BakeryServiceParams holds dependencies for BakeryService, injected by Fx.
type BakeryServiceParams struct {
	fx.In

	BakeryRepo repository.BakeryRepository
	ReviewRepo repository.ReviewRepository
	ThemeRepo  repository.ThemeRepository
}

// NewBakeryService creates a new bakery service instance
func NewBakeryService(params BakeryServiceParams) usecase.BakeryUsecase {
	return &bakeryService{
		bakeryRepo: params.BakeryRepo,
		reviewRepo: params.ReviewRepo,
		themeRepo:  params.ThemeRepo,
	}
}

// ListBakeries retrieves bakeries matching the input, rating aggregates included
func (s *bakeryService) ListBakeries(ctx context.Context, input usecase.BakeryListInput) ([]*entity.Bakery, error) {
	bakeries, err := s.bakeryRepo.FindAll(ctx, repository.BakeryFilter{
		District: input.District,
		ThemeID:  input.ThemeID,
		Query:    input.Query,
		Limit:    input.Limit,
		Offset:   input.Offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bakeries")
	}

	if input.NearLat != nil && input.NearLng != nil {
		sortByDistance(bakeries, *input.NearLat, *input.NearLng)
	}

	return bakeries, nil
}

// sortByDistance orders bakeries by geodesic distance from the given point.
func sortByDistance(bakeries []*entity.Bakery, lat, lng float64) {
	origin := orb.Point{lng, lat}

	slices.SortStableFunc(bakeries, func(a, b *entity.Bakery) int {
		da := geo.Distance(origin, orb.Point{a.Lng, a.Lat})
		db := geo.Distance(origin, orb.Point{b.Lng, b.Lat})

		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		default:
			return 0
		}
	})
}

// GetBakery retrieves a single bakery with its rating aggregate and reviews
func (s *bakeryService) GetBakery(ctx context.Context, id uuid.UUID) (*entity.Bakery, []*entity.Review, error) {
	bakery, err := s.bakeryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBakeryNotFound) {
			return nil, nil, domainerrors.ErrBakeryNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find bakery")
	}

	reviews, err := s.reviewRepo.FindByBakery(ctx, id)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load bakery reviews")
	}

	return bakery, reviews, nil
}

// CreateBakery registers a new bakery
func (s *bakeryService) CreateBakery(ctx context.Context, input usecase.CreateBakeryInput) (*entity.Bakery, error) {
	createdBy := input.CreatedBy
	bakery := &entity.Bakery{
		Name:           input.Name,
		Address:        input.Address,
		District:       input.District,
		Lat:            input.Lat,
		Lng:            input.Lng,
		SignatureBread: input.SignatureBread,
		Description:    input.Description,
		ImageURL:       input.ImageURL,
		CreatedBy:      &createdBy,
	}

	if err := s.bakeryRepo.Create(ctx, bakery); err != nil {
		if errors.Is(err, repository.ErrDuplicateBakery) {
			return nil, domainerrors.ErrBakeryAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create bakery")
	}

	bakery.Rating = &entity.RatingAggregate{}

	return bakery, nil
}

// duplicateRadiusMeters bounds the "nearby" match in CheckDuplicates.
const duplicateRadiusMeters = 100.0

// CheckDuplicates looks for bakeries likely to be the same place as the one
// being registered, by exact name and by proximity.
func (s *bakeryService) CheckDuplicates(ctx context.Context, input usecase.DuplicateCheckInput) (*usecase.DuplicateCheckResult, error) {
	hasCoords := input.Lat != nil && input.Lng != nil
	if input.Name == "" && !hasCoords {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("이름 또는 좌표를 입력해주세요")
	}

	candidates := make([]usecase.DuplicateCandidate, 0)
	seen := make(map[uuid.UUID]int)

	if input.Name != "" {
		matched, err := s.bakeryRepo.FindByName(ctx, input.Name)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find bakeries by name")
		}

		for _, bakery := range matched {
			seen[bakery.ID] = len(candidates)
			candidates = append(candidates, usecase.DuplicateCandidate{
				ID:          bakery.ID,
				Name:        bakery.Name,
				Address:     bakery.Address,
				Lat:         bakery.Lat,
				Lng:         bakery.Lng,
				MatchReason: "same_name",
			})
		}
	}

	if hasCoords {
		origin := orb.Point{*input.Lng, *input.Lat}

		all, err := s.bakeryRepo.FindAll(ctx, repository.BakeryFilter{})
		if err != nil {
			return nil, errors.Wrap(err, "failed to load bakeries for proximity check")
		}

		for _, bakery := range all {
			distance := geo.Distance(origin, orb.Point{bakery.Lng, bakery.Lat})
			if distance > duplicateRadiusMeters {
				continue
			}

			meters := int(math.Round(distance))
			if idx, ok := seen[bakery.ID]; ok {
				// Name match within range keeps its reason but gains the distance.
				candidates[idx].DistanceM = &meters

				continue
			}

			candidates = append(candidates, usecase.DuplicateCandidate{
				ID:          bakery.ID,
				Name:        bakery.Name,
				Address:     bakery.Address,
				Lat:         bakery.Lat,
				Lng:         bakery.Lng,
				DistanceM:   &meters,
				MatchReason: "nearby",
			})
		}
	}

	return &usecase.DuplicateCheckResult{
		HasDuplicates: len(candidates) > 0,
		Duplicates:    candidates,
		Count:         len(candidates),
	}, nil
}

// ListThemes retrieves the theme catalog
func (s *bakeryService) ListThemes(ctx context.Context) ([]*entity.Theme, error) {
	themes, err := s.themeRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load themes")
	}

	return themes, nil
}
