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

// badgeRepository implements the repository.BadgeRepository interface.
type badgeRepository struct {
	db *gorm.DB
}

// NewBadgeRepository is the constructor for badgeRepository.
func NewBadgeRepository(db *gorm.DB) repository.BadgeRepository {
	return &badgeRepository{
		db: db,
	}
}

// FindAll retrieves the full badge catalog.
func (repo *badgeRepository) FindAll(ctx context.Context) ([]*entity.Badge, error) {
	var badgeModels []*model.BadgeModel

	if err := repo.db.WithContext(ctx).
		Order("condition_value ASC").
		Find(&badgeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load badge catalog")
	}

	badges := make([]*entity.Badge, 0, len(badgeModels))
	for _, badgeM := range badgeModels {
		badges = append(badges, toBadgeDomain(badgeM))
	}

	return badges, nil
}

// FindEarnedByUser retrieves the user's earned badges with badge definitions loaded.
func (repo *badgeRepository) FindEarnedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserBadge, error) {
	var userBadgeModels []*model.UserBadgeModel

	if err := repo.db.WithContext(ctx).
		Preload("Badge").
		Where("user_id = ?", userID).
		Order("earned_at DESC").
		Find(&userBadgeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find earned badges")
	}

	earned := make([]*entity.UserBadge, 0, len(userBadgeModels))
	for _, userBadgeM := range userBadgeModels {
		earned = append(earned, toUserBadgeDomain(userBadgeM))
	}

	return earned, nil
}

// Award records that the user earned the badge. Awards are append-only.
func (repo *badgeRepository) Award(ctx context.Context, userID, badgeID uuid.UUID) error {
	userBadgeM := &model.UserBadgeModel{
		UserID:  userID,
		BadgeID: badgeID,
	}

	if err := repo.db.WithContext(ctx).Create(userBadgeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateUserBadge
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBadgeNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to award badge")
	}

	return nil
}

// toBadgeDomain converts a GORM BadgeModel to a domain Badge entity.
func toBadgeDomain(data *model.BadgeModel) *entity.Badge {
	return &entity.Badge{
		ID:             data.ID,
		Name:           data.Name,
		Description:    data.Description,
		Icon:           data.Icon,
		ConditionType:  data.ConditionType,
		ConditionValue: data.ConditionValue,
		CreatedAt:      data.CreatedAt,
	}
}

// toUserBadgeDomain converts a GORM UserBadgeModel to a domain UserBadge entity.
func toUserBadgeDomain(data *model.UserBadgeModel) *entity.UserBadge {
	userBadge := &entity.UserBadge{
		ID:       data.ID,
		UserID:   data.UserID,
		BadgeID:  data.BadgeID,
		EarnedAt: data.EarnedAt,
	}

	if data.Badge != nil {
		userBadge.Badge = toBadgeDomain(data.Badge)
	}

	return userBadge
}
