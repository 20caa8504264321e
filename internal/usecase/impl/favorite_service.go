package impl

import (
	"context"
	"log/slog"

	"breadmap/internal/domain/entity"
	domainerrors "breadmap/internal/domain/errors"
	"breadmap/internal/domain/repository"
	"breadmap/internal/domain/service"
	"breadmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// anonymousNickname stands in for owners without a nickname in shared views.
const anonymousNickname = "누군가"

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	bakeryRepo   repository.BakeryRepository
	userRepo     repository.UserRepository
	qrcode       service.QRCodeService
	challengeUC  usecase.ChallengeUsecase
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo repository.FavoriteRepository
	BakeryRepo   repository.BakeryRepository
	UserRepo     repository.UserRepository
	QRCode       service.QRCodeService
	ChallengeUC  usecase.ChallengeUsecase
	Logger       *slog.Logger
}

// NewFavoriteService creates a new favorite service instance
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: params.FavoriteRepo,
		bakeryRepo:   params.BakeryRepo,
		userRepo:     params.UserRepo,
		qrcode:       params.QRCode,
		challengeUC:  params.ChallengeUC,
		logger:       params.Logger,
	}
}

// ListFavorites retrieves the user's favorites, newest first, with bakeries loaded
func (s *favoriteService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	favorites, err := s.favoriteRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return favorites, nil
}

// AddFavorite marks a bakery as a favorite of the user
func (s *favoriteService) AddFavorite(ctx context.Context, userID, bakeryID uuid.UUID) (*entity.Favorite, error) {
	if _, err := s.bakeryRepo.FindByID(ctx, bakeryID); err != nil {
		if errors.Is(err, repository.ErrBakeryNotFound) {
			return nil, domainerrors.ErrBakeryNotFound
		}

		return nil, errors.Wrap(err, "failed to find bakery")
	}

	favorite := &entity.Favorite{
		ID:       uuid.New(),
		UserID:   userID,
		BakeryID: bakeryID,
	}

	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		if errors.Is(err, repository.ErrDuplicateFavorite) {
			return nil, domainerrors.ErrConflict.WrapMessage("이미 찜한 빵집입니다")
		}

		return nil, errors.Wrap(err, "failed to create favorite")
	}

	return favorite, nil
}

// RemoveFavorite removes the user's favorite for a bakery
func (s *favoriteService) RemoveFavorite(ctx context.Context, userID, bakeryID uuid.UUID) error {
	if err := s.favoriteRepo.Delete(ctx, userID, bakeryID); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return domainerrors.ErrFavoriteNotFound
		}

		return errors.Wrap(err, "failed to delete favorite")
	}

	return nil
}

// ShareFavorites returns a PNG QR code pointing at the user's favorites share
// URL. The first call mints the share token; later calls reuse it.
func (s *favoriteService) ShareFavorites(ctx context.Context, userID uuid.UUID) ([]byte, string, error) {
	share, err := s.favoriteRepo.FindShareByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrFavoriteShareNotFound) {
			return nil, "", errors.Wrap(err, "failed to find favorite share")
		}

		token, err := newShareToken()
		if err != nil {
			return nil, "", errors.Wrap(err, "failed to generate share token")
		}

		share = &entity.FavoriteShare{
			ID:         uuid.New(),
			UserID:     userID,
			ShareToken: token,
		}

		if err := s.favoriteRepo.CreateShare(ctx, share); err != nil {
			return nil, "", errors.Wrap(err, "failed to save favorite share")
		}

		s.logger.Info("Favorites share token minted",
			slog.String("user_id", userID.String()),
		)
	}

	png, err := s.qrcode.GenerateFavoriteShareQR(share.ShareToken)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to generate share QR code")
	}

	return png, s.qrcode.FavoriteShareURL(share.ShareToken), nil
}

// UnshareFavorites revokes the user's favorites share link
func (s *favoriteService) UnshareFavorites(ctx context.Context, userID uuid.UUID) error {
	if err := s.favoriteRepo.DeleteShareByUser(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrFavoriteShareNotFound) {
			return domainerrors.ErrFavoriteShareNotFound
		}

		return errors.Wrap(err, "failed to delete favorite share")
	}

	return nil
}

// GetSharedFavorites retrieves a shared favorites list by its token, with
// rating aggregates loaded per bakery.
func (s *favoriteService) GetSharedFavorites(ctx context.Context, token string) (*usecase.SharedFavorites, error) {
	share, err := s.favoriteRepo.FindShareByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrFavoriteShareNotFound) {
			return nil, domainerrors.ErrFavoriteShareNotFound
		}

		return nil, errors.Wrap(err, "failed to find favorite share")
	}

	owner, err := s.userRepo.FindByID(ctx, share.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load share owner")
	}

	favorites, err := s.favoriteRepo.FindByUser(ctx, share.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shared favorites")
	}

	bakeries := make([]*entity.Bakery, 0, len(favorites))
	for _, favorite := range favorites {
		bakery, err := s.bakeryRepo.FindByID(ctx, favorite.BakeryID)
		if err != nil {
			// A bakery deleted after being favorited just drops out of the view.
			if errors.Is(err, repository.ErrBakeryNotFound) {
				continue
			}

			return nil, errors.Wrap(err, "failed to load favorited bakery")
		}

		bakeries = append(bakeries, bakery)
	}

	return &usecase.SharedFavorites{
		Owner:       owner.Summary(),
		ShareToken:  share.ShareToken,
		Bakeries:    bakeries,
		BakeryCount: len(bakeries),
	}, nil
}

// SharedFavoritesToChallenge copies a shared favorites list into a new private
// challenge owned by the requesting user, keeping the order the favorites were
// added in.
func (s *favoriteService) SharedFavoritesToChallenge(ctx context.Context, userID uuid.UUID, token string) (*usecase.ChallengeWithProgress, error) {
	share, err := s.favoriteRepo.FindShareByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrFavoriteShareNotFound) {
			return nil, domainerrors.ErrFavoriteShareNotFound
		}

		return nil, errors.Wrap(err, "failed to find favorite share")
	}

	nickname := anonymousNickname
	owner, err := s.userRepo.FindByID(ctx, share.UserID)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to load share owner")
		}
	} else if owner.Nickname != "" {
		nickname = owner.Nickname
	}

	favorites, err := s.favoriteRepo.FindByUser(ctx, share.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shared favorites")
	}

	if len(favorites) == 0 {
		return nil, domainerrors.ErrEmptyFavorites
	}

	// FindByUser returns newest first; the challenge walks the list in the
	// order the favorites were added.
	bakeryIDs := make([]uuid.UUID, 0, len(favorites))
	for i := len(favorites) - 1; i >= 0; i-- {
		bakeryIDs = append(bakeryIDs, favorites[i].BakeryID)
	}

	return s.challengeUC.CreateChallenge(ctx, usecase.CreateChallengeInput{
		UserID:      userID,
		Name:        nickname + "님의 찜한 빵집",
		Description: nickname + "님이 공유한 찜목록입니다.",
		IsPublic:    false,
		BakeryIDs:   bakeryIDs,
	})
}
