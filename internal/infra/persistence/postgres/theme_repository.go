package postgres

import (
	"context"

	"breadmap/internal/domain/entity"
	"breadmap/internal/domain/repository"
	"breadmap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// themeRepository implements the repository.ThemeRepository interface.
type themeRepository struct {
	db *gorm.DB
}

// NewThemeRepository is the constructor for themeRepository.
func NewThemeRepository(db *gorm.DB) repository.ThemeRepository {
	return &themeRepository{
		db: db,
	}
}

// FindAll retrieves all themes.
func (repo *themeRepository) FindAll(ctx context.Context) ([]*entity.Theme, error) {
	var themeModels []*model.ThemeModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&themeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load themes")
	}

	themes := make([]*entity.Theme, 0, len(themeModels))
	for _, themeM := range themeModels {
		themes = append(themes, toThemeDomain(themeM))
	}

	return themes, nil
}

// FindByID retrieves a theme by its unique ID.
func (repo *themeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Theme, error) {
	var themeM model.ThemeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&themeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrThemeNotFound
		}

		return nil, errors.Wrap(err, "failed to find theme by ID")
	}

	return toThemeDomain(&themeM), nil
}

// toThemeDomain converts a GORM ThemeModel to a domain Theme entity.
func toThemeDomain(data *model.ThemeModel) *entity.Theme {
	return &entity.Theme{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Category:    data.Category,
		Icon:        data.Icon,
		Color:       data.Color,
		CreatedAt:   data.CreatedAt,
	}
}
