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

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// FindByID retrieves a review by its unique ID.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by ID")
	}

	return toReviewDomain(&reviewM), nil
}

// FindByBakery retrieves all reviews for a bakery, newest first, with reviewer summaries loaded.
func (repo *reviewRepository) FindByBakery(ctx context.Context, bakeryID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Preload("User").
		Where("bakery_id = ?", bakeryID).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by bakery")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// FindByUser retrieves all reviews written by a user, newest first, with bakery summaries loaded.
func (repo *reviewRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Preload("Bakery").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by user")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// Create persists a new review entity to the storage.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBakeryNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRating
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required review information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

// Update modifies the rating, comment and photo of an existing review.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", review.ID).
		Updates(map[string]any{
			"rating":    review.Rating,
			"comment":   review.Comment,
			"photo_url": review.PhotoURL,
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidRating
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// Delete removes a review by its ID.
func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ReviewModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// reviewAggregateRow is the scan target for the per-user review aggregate query.
type reviewAggregateRow struct {
	ReviewCount        int
	VisitedBakeryCount int
	PerfectRatingCount int
	AverageRating      float64
}

// ActivityStatsByUser computes the user's review counts for badge evaluation.
func (repo *reviewRepository) ActivityStatsByUser(ctx context.Context, userID uuid.UUID) (*entity.ActivityStats, error) {
	var row reviewAggregateRow

	err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select(`
			COUNT(*) AS review_count,
			COUNT(DISTINCT bakery_id) AS visited_bakery_count,
			COUNT(*) FILTER (WHERE rating = ?) AS perfect_rating_count,
			COALESCE(AVG(rating), 0) AS average_rating
		`, entity.PerfectRating).
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate user reviews")
	}

	themeCounts, err := repo.themeVisitCountsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &entity.ActivityStats{
		ReviewCount:        row.ReviewCount,
		VisitedBakeryCount: row.VisitedBakeryCount,
		PerfectRatingCount: row.PerfectRatingCount,
		AverageRating:      entity.RoundRating(row.AverageRating),
		ThemeVisitCounts:   themeCounts,
	}, nil
}

// themeVisitCountsByUser counts the user's distinct visited bakeries per theme name.
func (repo *reviewRepository) themeVisitCountsByUser(ctx context.Context, userID uuid.UUID) (map[string]int, error) {
	var entries []entity.DistributionEntry

	query := `
		SELECT t.name AS name, COUNT(DISTINCT r.bakery_id) AS value
		FROM reviews r
		JOIN bakery_themes bt ON bt.bakery_id = r.bakery_id
		JOIN themes t ON t.id = bt.theme_id
		WHERE r.user_id = ? AND r.deleted_at IS NULL
		GROUP BY t.name
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, userID).
		Scan(&entries).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count theme visits")
	}

	counts := make(map[string]int, len(entries))
	for _, entry := range entries {
		counts[entry.Name] = entry.Value
	}

	return counts, nil
}

// RegionDistributionByUser counts the user's distinct visited bakeries per district.
func (repo *reviewRepository) RegionDistributionByUser(ctx context.Context, userID uuid.UUID) ([]entity.DistributionEntry, error) {
	var entries []entity.DistributionEntry

	query := `
		SELECT b.district AS name, COUNT(DISTINCT r.bakery_id) AS value
		FROM reviews r
		JOIN bakeries b ON b.id = r.bakery_id
		WHERE r.user_id = ? AND r.deleted_at IS NULL AND b.deleted_at IS NULL
		GROUP BY b.district
		ORDER BY value DESC
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, userID).
		Scan(&entries).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count region visits")
	}

	return entries, nil
}

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	review := &entity.Review{
		ID:        data.ID,
		BakeryID:  data.BakeryID,
		UserID:    data.UserID,
		Rating:    data.Rating,
		Comment:   data.Comment,
		PhotoURL:  data.PhotoURL,
		CreatedAt: data.CreatedAt,
	}

	if data.User != nil {
		user := toUserDomain(data.User)
		summary := user.Summary()
		review.User = &summary
	}
	if data.Bakery != nil {
		review.Bakery = &entity.BakerySummary{
			ID:       data.Bakery.ID,
			Name:     data.Bakery.Name,
			ImageURL: data.Bakery.ImageURL,
		}
	}

	return review
}

// fromReviewDomain converts a domain Review entity to a GORM ReviewModel.
func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID:       data.ID,
		BakeryID: data.BakeryID,
		UserID:   data.UserID,
		Rating:   data.Rating,
		Comment:  data.Comment,
		PhotoURL: data.PhotoURL,
	}
}
