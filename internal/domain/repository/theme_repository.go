// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"breadmap/internal/domain/entity"
	"breadmap/internal/errors"

	"github.com/google/uuid"
)

// ErrThemeNotFound is returned when a theme is not found.
var ErrThemeNotFound = errors.New("theme not found")

// ThemeRepository defines the interface for theme-related database operations.
type ThemeRepository interface {
	// FindAll retrieves all themes.
	FindAll(ctx context.Context) ([]*entity.Theme, error)

	// FindByID retrieves a theme by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Theme, error)
}
