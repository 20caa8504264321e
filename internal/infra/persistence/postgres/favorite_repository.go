package postgres

import (
	"context"

	"breadmap/internal/domain/entity"
	domainerrors "breadmap/internal/domain/errors"
	"breadmap/internal/domain/repository"
	"breadmap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

// FindByUser retrieves all favorites for a user, newest first, with bakeries loaded.
func (repo *favoriteRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	var favoriteModels []*model.FavoriteModel

	if err := repo.db.WithContext(ctx).
		Preload("Bakery").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favoriteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find favorites by user")
	}

	favorites := make([]*entity.Favorite, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		favorites = append(favorites, toFavoriteDomain(favoriteM))
	}

	return favorites, nil
}

// Exists reports whether the user has favorited the bakery.
func (repo *favoriteRepository) Exists(ctx context.Context, userID, bakeryID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ? AND bakery_id = ?", userID, bakeryID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check favorite existence")
	}

	return count > 0, nil
}

// Create persists a new favorite.
func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := fromFavoriteDomain(favorite)

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFavorite
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBakeryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	favorite.ID = favoriteM.ID
	favorite.CreatedAt = favoriteM.CreatedAt

	return nil
}

// Delete removes the favorite for the given (user, bakery) pair.
func (repo *favoriteRepository) Delete(ctx context.Context, userID, bakeryID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND bakery_id = ?", userID, bakeryID).
		Delete(&model.FavoriteModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete favorite")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// CountByUser counts the user's favorites for activity stats.
func (repo *favoriteRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count favorites by user")
	}

	return int(count), nil
}

// FindShareByUser retrieves the user's favorite share, if any.
func (repo *favoriteRepository) FindShareByUser(ctx context.Context, userID uuid.UUID) (*entity.FavoriteShare, error) {
	var shareM model.FavoriteShareModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&shareM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteShareNotFound
		}

		return nil, errors.Wrap(err, "failed to find favorite share by user")
	}

	return toFavoriteShareDomain(&shareM), nil
}

// FindShareByToken retrieves a favorite share by its public token.
func (repo *favoriteRepository) FindShareByToken(ctx context.Context, token string) (*entity.FavoriteShare, error) {
	var shareM model.FavoriteShareModel

	if err := repo.db.WithContext(ctx).
		Where("share_token = ?", token).
		First(&shareM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteShareNotFound
		}

		return nil, errors.Wrap(err, "failed to find favorite share by token")
	}

	return toFavoriteShareDomain(&shareM), nil
}

// CreateShare persists a new favorite share for a user.
func (repo *favoriteRepository) CreateShare(ctx context.Context, share *entity.FavoriteShare) error {
	shareM := &model.FavoriteShareModel{
		ID:         share.ID,
		UserID:     share.UserID,
		ShareToken: share.ShareToken,
	}

	if err := repo.db.WithContext(ctx).Create(shareM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite share")
	}

	share.ID = shareM.ID
	share.CreatedAt = shareM.CreatedAt

	return nil
}

// DeleteShareByUser revokes the user's favorite share.
func (repo *favoriteRepository) DeleteShareByUser(ctx context.Context, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.FavoriteShareModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete favorite share")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFavoriteShareNotFound
	}

	return nil
}

// toFavoriteShareDomain converts a GORM FavoriteShareModel to a domain FavoriteShare.
func toFavoriteShareDomain(data *model.FavoriteShareModel) *entity.FavoriteShare {
	return &entity.FavoriteShare{
		ID:         data.ID,
		UserID:     data.UserID,
		ShareToken: data.ShareToken,
		CreatedAt:  data.CreatedAt,
	}
}

// toFavoriteDomain converts a GORM FavoriteModel to a domain Favorite entity.
func toFavoriteDomain(data *model.FavoriteModel) *entity.Favorite {
	favorite := &entity.Favorite{
		ID:        data.ID,
		UserID:    data.UserID,
		BakeryID:  data.BakeryID,
		CreatedAt: data.CreatedAt,
	}

	if data.Bakery != nil {
		favorite.Bakery = toBareBakeryDomain(data.Bakery)
	}

	return favorite
}

// fromFavoriteDomain converts a domain Favorite entity to a GORM FavoriteModel.
func fromFavoriteDomain(data *entity.Favorite) *model.FavoriteModel {
	return &model.FavoriteModel{
		ID:       data.ID,
		UserID:   data.UserID,
		BakeryID: data.BakeryID,
	}
}
