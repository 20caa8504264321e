// Package impl contains the concrete implementations of the use case interfaces.
package impl

import (
	"context"
	"slices"
	"strings"

	"breadmap/internal/domain/entity"
	domainerrors "breadmap/internal/domain/errors"
	"breadmap/internal/domain/repository"
	"breadmap/internal/domain/service"
	"breadmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type userService struct {
	userRepo     repository.UserRepository
	reviewRepo   repository.ReviewRepository
	favoriteRepo repository.FavoriteRepository
	hasher       service.PasswordHasher
	tokens       service.TokenService
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	ReviewRepo   repository.ReviewRepository
	FavoriteRepo repository.FavoriteRepository
	Hasher       service.PasswordHasher
	Tokens       service.TokenService
}

// NewUserService creates a new user service instance
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		reviewRepo:   params.ReviewRepo,
		favoriteRepo: params.FavoriteRepo,
		hasher:       params.Hasher,
		tokens:       params.Tokens,
	}
}

// Register creates a new account and returns the user with a token pair
func (s *userService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, *usecase.AuthTokens, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		Email:        input.Email,
		Nickname:     input.Nickname,
		PasswordHash: hash,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, nil, errors.Wrap(err, "failed to create user")
	}

	tokens, err := s.issueTokens(user.ID)
	if err != nil {
		return nil, nil, err
	}

	return user, tokens, nil
}

// Login verifies credentials and returns the user with a token pair
func (s *userService) Login(ctx context.Context, email, password string) (*entity.User, *usecase.AuthTokens, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same error as a wrong password so login probing cannot tell
			// registered emails apart.
			return nil, nil, domainerrors.ErrInvalidCredentials
		}

		return nil, nil, errors.Wrap(err, "failed to find user by email")
	}

	if !s.hasher.Check(password, user.PasswordHash) {
		return nil, nil, domainerrors.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(user.ID)
	if err != nil {
		return nil, nil, err
	}

	return user, tokens, nil
}

// GetProfile retrieves a user's profile
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile updates a user's mutable profile fields
func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Nickname != "" {
		user.Nickname = input.Nickname
	}
	if input.ProfileImageURL != "" {
		user.ProfileImageURL = input.ProfileImageURL
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

// GetProfileStats computes the user's activity stats with chart distributions
func (s *userService) GetProfileStats(ctx context.Context, userID uuid.UUID) (*entity.ProfileStats, error) {
	activity, err := s.reviewRepo.ActivityStatsByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.ErrStatsUnavailable.WrapMessage(err.Error())
	}

	favoriteCount, err := s.favoriteRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.ErrStatsUnavailable.WrapMessage(err.Error())
	}
	activity.FavoriteCount = favoriteCount

	regions, err := s.reviewRepo.RegionDistributionByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.ErrStatsUnavailable.WrapMessage(err.Error())
	}

	themes := make([]entity.DistributionEntry, 0, len(activity.ThemeVisitCounts))
	for name, value := range activity.ThemeVisitCounts {
		themes = append(themes, entity.DistributionEntry{Name: name, Value: value})
	}
	sortDistribution(themes)

	return &entity.ProfileStats{
		ActivityStats:      *activity,
		RegionDistribution: regions,
		ThemeDistribution:  themes,
	}, nil
}

// recentActivityLimit caps the merged activity feed.
const recentActivityLimit = 15

// GetRecentActivities merges the user's reviews and favorites into one feed,
// newest first, capped at recentActivityLimit entries.
func (s *userService) GetRecentActivities(ctx context.Context, userID uuid.UUID) ([]usecase.Activity, error) {
	reviews, err := s.reviewRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user reviews")
	}

	favorites, err := s.favoriteRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user favorites")
	}

	activities := make([]usecase.Activity, 0, len(reviews)+len(favorites))
	for _, review := range reviews {
		activities = append(activities, usecase.Activity{
			ID:        review.ID,
			Type:      "review",
			Bakery:    review.Bakery,
			Rating:    review.Rating,
			Comment:   review.Comment,
			CreatedAt: review.CreatedAt,
		})
	}
	for _, favorite := range favorites {
		activity := usecase.Activity{
			ID:        favorite.ID,
			Type:      "favorite",
			CreatedAt: favorite.CreatedAt,
		}
		if favorite.Bakery != nil {
			activity.Bakery = &entity.BakerySummary{
				ID:       favorite.Bakery.ID,
				Name:     favorite.Bakery.Name,
				ImageURL: favorite.Bakery.ImageURL,
			}
		}
		activities = append(activities, activity)
	}

	slices.SortStableFunc(activities, func(a, b usecase.Activity) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	if len(activities) > recentActivityLimit {
		activities = activities[:recentActivityLimit]
	}

	return activities, nil
}

// sortDistribution orders entries by value descending, then name for stable output.
func sortDistribution(entries []entity.DistributionEntry) {
	slices.SortFunc(entries, func(a, b entity.DistributionEntry) int {
		if a.Value != b.Value {
			return b.Value - a.Value
		}

		return strings.Compare(a.Name, b.Name)
	})
}

func (s *userService) issueTokens(userID uuid.UUID) (*usecase.AuthTokens, error) {
	access, refresh, err := s.tokens.GenerateTokens(userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
