// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"breadmap/internal/domain/entity"
	"breadmap/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for badge persistence.
var (
	// ErrBadgeNotFound is returned when a badge is not found in the catalog.
	ErrBadgeNotFound = errors.New("badge not found")
	// ErrDuplicateUserBadge is returned when the user already earned the badge.
	ErrDuplicateUserBadge = errors.New("user badge already exists")
)

// BadgeRepository defines the interface for badge-related database operations.
type BadgeRepository interface {
	// FindAll retrieves the full badge catalog.
	FindAll(ctx context.Context) ([]*entity.Badge, error)

	// FindEarnedByUser retrieves the user's earned badges with badge definitions loaded.
	FindEarnedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserBadge, error)

	// Award records that the user earned the badge. Returns ErrDuplicateUserBadge
	// when the (user, badge) pair already exists; awards are append-only and never revoked.
	Award(ctx context.Context, userID, badgeID uuid.UUID) error
}
