package usecase

import (
	"context"

	"breadmap/internal/domain/entity"

	"github.com/google/uuid"
)

// RecheckResult summarizes a badge re-evaluation run.
type RecheckResult struct {
	Success            bool `json:"success"`
	AwardedBadgesCount int  `json:"awardedBadgesCount"`
}

// BadgeUsecase defines the interface for badge evaluation use cases
type BadgeUsecase interface {
	// ListCatalog retrieves the full badge catalog
	ListCatalog(ctx context.Context) ([]*entity.Badge, error)

	// ListEarned retrieves the user's earned badges
	ListEarned(ctx context.Context, userID uuid.UUID) ([]*entity.UserBadge, error)

	// Recheck re-evaluates every badge condition against the user's current
	// activity and awards any newly satisfied badges. Awards are append-only;
	// stats dropping below a threshold never revokes a badge.
	Recheck(ctx context.Context, userID uuid.UUID) (*RecheckResult, error)
}
