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

// challengeRepository implements the repository.ChallengeRepository interface.
type challengeRepository struct {
	db *gorm.DB
}

// NewChallengeRepository is the constructor for challengeRepository.
func NewChallengeRepository(db *gorm.DB) repository.ChallengeRepository {
	return &challengeRepository{
		db: db,
	}
}

// FindByID retrieves a challenge by its ID with items and their bakeries loaded.
func (repo *challengeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error) {
	var challengeM model.ChallengeModel

	if err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("challenge_bakeries.order_num ASC")
		}).
		Preload("Items.Bakery").
		Where("id = ?", id).
		First(&challengeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChallengeNotFound
		}

		return nil, errors.Wrap(err, "failed to find challenge by ID")
	}

	return toChallengeDomain(&challengeM), nil
}

// FindByShareToken retrieves a public challenge by its share token.
func (repo *challengeRepository) FindByShareToken(ctx context.Context, token string) (*entity.Challenge, error) {
	var challengeM model.ChallengeModel

	if err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("challenge_bakeries.order_num ASC")
		}).
		Preload("Items.Bakery").
		Where("share_token = ? AND is_public = true", token).
		First(&challengeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChallengeNotFound
		}

		return nil, errors.Wrap(err, "failed to find challenge by share token")
	}

	return toChallengeDomain(&challengeM), nil
}

// FindByUser retrieves all challenges owned by a user, newest first, with items loaded.
func (repo *challengeRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Challenge, error) {
	var challengeModels []*model.ChallengeModel

	if err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("challenge_bakeries.order_num ASC")
		}).
		Preload("Items.Bakery").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&challengeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find challenges by user")
	}

	challenges := make([]*entity.Challenge, 0, len(challengeModels))
	for _, challengeM := range challengeModels {
		challenges = append(challenges, toChallengeDomain(challengeM))
	}

	return challenges, nil
}

// Create persists a new challenge entity to the storage.
func (repo *challengeRepository) Create(ctx context.Context, challenge *entity.Challenge) error {
	challengeM := fromChallengeDomain(challenge)

	if err := repo.db.WithContext(ctx).Omit("Items").Create(challengeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("share token already in use")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required challenge information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create challenge")
	}

	challenge.ID = challengeM.ID
	challenge.CreatedAt = challengeM.CreatedAt

	return nil
}

// Update modifies an existing challenge entity in the storage.
func (repo *challengeRepository) Update(ctx context.Context, challenge *entity.Challenge) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ChallengeModel{}).
		Where("id = ?", challenge.ID).
		Updates(map[string]any{
			"name":        challenge.Name,
			"description": challenge.Description,
			"is_public":   challenge.IsPublic,
			"is_active":   challenge.IsActive,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update challenge")
	}

	if result.RowsAffected == 0 {
		return repository.ErrChallengeNotFound
	}

	return nil
}

// Delete removes a challenge and its items by the challenge ID.
func (repo *challengeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("challenge_id = ?", id).
		Delete(&model.ChallengeBakeryModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete challenge items")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ChallengeModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete challenge")
	}

	if result.RowsAffected == 0 {
		return repository.ErrChallengeNotFound
	}

	return nil
}

// CreateItems persists challenge items in bulk.
func (repo *challengeRepository) CreateItems(ctx context.Context, items []entity.ChallengeItem) error {
	if len(items) == 0 {
		return nil
	}

	itemModels := make([]model.ChallengeBakeryModel, 0, len(items))
	for i := range items {
		itemModels = append(itemModels, *fromChallengeItemDomain(&items[i]))
	}

	if err := repo.db.WithContext(ctx).Create(&itemModels).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateChallengeItem
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBakeryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create challenge items")
	}

	for i := range items {
		items[i].ID = itemModels[i].ID
	}

	return nil
}

// FindItem retrieves a single challenge item by its ID.
func (repo *challengeRepository) FindItem(ctx context.Context, itemID uuid.UUID) (*entity.ChallengeItem, error) {
	var itemM model.ChallengeBakeryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", itemID).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChallengeItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find challenge item")
	}

	item := toChallengeItemDomain(&itemM)

	return &item, nil
}

// UpdateItem modifies a challenge item's visit state and memo.
func (repo *challengeRepository) UpdateItem(ctx context.Context, item *entity.ChallengeItem) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ChallengeBakeryModel{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"visited_at": item.VisitedAt,
			"memo":       item.Memo,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update challenge item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrChallengeItemNotFound
	}

	return nil
}

// DeleteItem removes a challenge item by its ID.
func (repo *challengeRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", itemID).
		Delete(&model.ChallengeBakeryModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete challenge item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrChallengeItemNotFound
	}

	return nil
}

// toChallengeDomain converts a GORM ChallengeModel to a domain Challenge entity.
func toChallengeDomain(data *model.ChallengeModel) *entity.Challenge {
	challenge := &entity.Challenge{
		ID:          data.ID,
		UserID:      data.UserID,
		Name:        data.Name,
		Description: data.Description,
		IsPublic:    data.IsPublic,
		IsActive:    data.IsActive,
		ShareToken:  data.ShareToken,
		CreatedAt:   data.CreatedAt,
	}

	if len(data.Items) > 0 {
		challenge.Items = make([]entity.ChallengeItem, 0, len(data.Items))
		for i := range data.Items {
			challenge.Items = append(challenge.Items, toChallengeItemDomain(&data.Items[i]))
		}
	}

	return challenge
}

// toChallengeItemDomain converts a GORM ChallengeBakeryModel to a domain ChallengeItem.
func toChallengeItemDomain(data *model.ChallengeBakeryModel) entity.ChallengeItem {
	item := entity.ChallengeItem{
		ID:          data.ID,
		ChallengeID: data.ChallengeID,
		BakeryID:    data.BakeryID,
		OrderNum:    data.OrderNum,
		VisitedAt:   data.VisitedAt,
		Memo:        data.Memo,
	}

	if data.Bakery != nil {
		item.Bakery = toBareBakeryDomain(data.Bakery)
	}

	return item
}

// fromChallengeDomain converts a domain Challenge entity to a GORM ChallengeModel.
func fromChallengeDomain(data *entity.Challenge) *model.ChallengeModel {
	return &model.ChallengeModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Name:        data.Name,
		Description: data.Description,
		IsPublic:    data.IsPublic,
		IsActive:    data.IsActive,
		ShareToken:  data.ShareToken,
	}
}

// fromChallengeItemDomain converts a domain ChallengeItem to a GORM ChallengeBakeryModel.
func fromChallengeItemDomain(data *entity.ChallengeItem) *model.ChallengeBakeryModel {
	return &model.ChallengeBakeryModel{
		ID:          data.ID,
		ChallengeID: data.ChallengeID,
		BakeryID:    data.BakeryID,
		OrderNum:    data.OrderNum,
		VisitedAt:   data.VisitedAt,
		Memo:        data.Memo,
	}
}
