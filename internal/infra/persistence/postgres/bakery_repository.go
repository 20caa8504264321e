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

// bakeryRepository implements the repository.BakeryRepository interface.
type bakeryRepository struct {
	db *gorm.DB
}

// NewBakeryRepository is the constructor for bakeryRepository.
func NewBakeryRepository(db *gorm.DB) repository.BakeryRepository {
	return &bakeryRepository{
		db: db,
	}
}

// ratedBakeryRow is the scan target for bakery queries joined with review aggregates.
type ratedBakeryRow struct {
	model.BakeryModel
	ReviewCount   int
	AverageRating float64
}

// bakeryAggregateSelect joins each bakery with its live review aggregate.
const bakeryAggregateSelect = `
	bakeries.*,
	COUNT(reviews.id) AS review_count,
	COALESCE(AVG(reviews.rating), 0) AS average_rating
`

// FindByID retrieves a bakery by its unique ID, with its rating aggregate loaded.
func (repo *bakeryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Bakery, error) {
	var row ratedBakeryRow

	err := repo.db.WithContext(ctx).
		Model(&model.BakeryModel{}).
		Select(bakeryAggregateSelect).
		Joins("LEFT JOIN reviews ON reviews.bakery_id = bakeries.id AND reviews.deleted_at IS NULL").
		Where("bakeries.id = ?", id).
		Group("bakeries.id").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBakeryNotFound
		}

		return nil, errors.Wrap(err, "failed to find bakery by ID")
	}

	return toBakeryDomain(&row), nil
}

// FindAll retrieves bakeries matching the filter, with rating aggregates loaded.
func (repo *bakeryRepository) FindAll(ctx context.Context, filter repository.BakeryFilter) ([]*entity.Bakery, error) {
	var rows []ratedBakeryRow

	query := repo.db.WithContext(ctx).
		Model(&model.BakeryModel{}).
		Select(bakeryAggregateSelect).
		Joins("LEFT JOIN reviews ON reviews.bakery_id = bakeries.id AND reviews.deleted_at IS NULL").
		Group("bakeries.id")

	if filter.District != "" {
		query = query.Where("bakeries.district = ?", filter.District)
	}
	if filter.ThemeID != nil {
		query = query.Where(
			"bakeries.id IN (SELECT bakery_id FROM bakery_themes WHERE theme_id = ?)",
			*filter.ThemeID,
		)
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("bakeries.name ILIKE ? OR bakeries.signature_bread ILIKE ?", pattern, pattern)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Order("bakeries.created_at DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find bakeries")
	}

	bakeries := make([]*entity.Bakery, 0, len(rows))
	for i := range rows {
		bakeries = append(bakeries, toBakeryDomain(&rows[i]))
	}

	return bakeries, nil
}

// FindRatedSnapshot retrieves up to limit bakeries joined with their review
// aggregates, ordered by one-decimal rounded average then review count
// descending. Bakeries without reviews are excluded. The order key must be
// the rounded average, not the raw one: 3.84 and 3.75 both display as 3.8,
// and on that tie the better-reviewed bakery ranks first.
func (repo *bakeryRepository) FindRatedSnapshot(ctx context.Context, limit int) ([]entity.RatedBakery, error) {
	var rows []ratedBakeryRow

	query := repo.db.WithContext(ctx).
		Model(&model.BakeryModel{}).
		Select(bakeryAggregateSelect).
		Joins("JOIN reviews ON reviews.bakery_id = bakeries.id AND reviews.deleted_at IS NULL").
		Group("bakeries.id").
		Order("ROUND(AVG(reviews.rating)::numeric, 1) DESC, COUNT(reviews.id) DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load rated bakery snapshot")
	}

	rated := make([]entity.RatedBakery, 0, len(rows))
	for i := range rows {
		rated = append(rated, toRatedBakeryDomain(&rows[i]))
	}

	return rated, nil
}

// FindByName retrieves bakeries whose name matches exactly, case-insensitive.
func (repo *bakeryRepository) FindByName(ctx context.Context, name string) ([]*entity.Bakery, error) {
	var bakeryModels []*model.BakeryModel

	if err := repo.db.WithContext(ctx).
		Where("name ILIKE ?", name).
		Find(&bakeryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find bakeries by name")
	}

	bakeries := make([]*entity.Bakery, 0, len(bakeryModels))
	for _, bakeryM := range bakeryModels {
		bakeries = append(bakeries, toBareBakeryDomain(bakeryM))
	}

	return bakeries, nil
}

// Create persists a new bakery entity to the storage.
func (repo *bakeryRepository) Create(ctx context.Context, bakery *entity.Bakery) error {
	bakeryM := fromBakeryDomain(bakery)

	if err := repo.db.WithContext(ctx).Create(bakeryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateBakery
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required bakery information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create bakery")
	}

	bakery.ID = bakeryM.ID
	bakery.CreatedAt = bakeryM.CreatedAt

	return nil
}

// Update modifies an existing bakery entity in the storage.
func (repo *bakeryRepository) Update(ctx context.Context, bakery *entity.Bakery) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BakeryModel{}).
		Where("id = ?", bakery.ID).
		Updates(map[string]any{
			"name":            bakery.Name,
			"address":         bakery.Address,
			"district":        bakery.District,
			"lat":             bakery.Lat,
			"lng":             bakery.Lng,
			"signature_bread": bakery.SignatureBread,
			"description":     bakery.Description,
			"image_url":       bakery.ImageURL,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update bakery")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBakeryNotFound
	}

	return nil
}

// Delete removes a bakery by its ID (soft delete).
func (repo *bakeryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BakeryModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete bakery")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBakeryNotFound
	}

	return nil
}

// toBakeryDomain converts an aggregate row to a domain Bakery entity.
func toBakeryDomain(data *ratedBakeryRow) *entity.Bakery {
	bakery := toBareBakeryDomain(&data.BakeryModel)
	bakery.Rating = &entity.RatingAggregate{
		Count:   data.ReviewCount,
		Average: entity.RoundRating(data.AverageRating),
	}

	return bakery
}

// toRatedBakeryDomain converts an aggregate row to a RatedBakery for the
// recommendation engine.
func toRatedBakeryDomain(data *ratedBakeryRow) entity.RatedBakery {
	return entity.RatedBakery{
		Bakery:        *toBareBakeryDomain(&data.BakeryModel),
		ReviewCount:   data.ReviewCount,
		AverageRating: entity.RoundRating(data.AverageRating),
	}
}

// toBareBakeryDomain converts a GORM BakeryModel to a domain Bakery entity
// without rating information.
func toBareBakeryDomain(data *model.BakeryModel) *entity.Bakery {
	return &entity.Bakery{
		ID:             data.ID,
		Name:           data.Name,
		Address:        data.Address,
		District:       data.District,
		Lat:            data.Lat,
		Lng:            data.Lng,
		SignatureBread: data.SignatureBread,
		Description:    data.Description,
		ImageURL:       data.ImageURL,
		CreatedBy:      data.CreatedBy,
		CreatedAt:      data.CreatedAt,
	}
}

// fromBakeryDomain converts a domain Bakery entity to a GORM BakeryModel.
func fromBakeryDomain(data *entity.Bakery) *model.BakeryModel {
	return &model.BakeryModel{
		ID:             data.ID,
		Name:           data.Name,
		Address:        data.Address,
		District:       data.District,
		Lat:            data.Lat,
		Lng:            data.Lng,
		SignatureBread: data.SignatureBread,
		Description:    data.Description,
		ImageURL:       data.ImageURL,
		CreatedBy:      data.CreatedBy,
	}
}
