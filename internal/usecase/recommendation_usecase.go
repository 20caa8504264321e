package usecase

import (
	"context"
	"time"

	"breadmap/internal/domain/entity"
)

// RecommendationUsecase defines the interface for the weekly recommendation feed
type RecommendationUsecase interface {
	// WeeklyRecommendations assembles the themed bundles for the week
	// containing now. The same week always yields the same bundles.
	WeeklyRecommendations(ctx context.Context, now time.Time) ([]entity.RecommendedBundle, error)
}
