// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"breadmap/internal/domain/entity"
	"breadmap/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for bakery persistence.
var (
	// ErrBakeryNotFound is returned when a bakery is not found.
	ErrBakeryNotFound = errors.New("bakery not found")
	// ErrDuplicateBakery is returned when trying to register a bakery that already exists at the same address.
	ErrDuplicateBakery = errors.New("bakery already exists")
)

// BakeryFilter narrows bakery listings. Zero values mean no filtering.
type BakeryFilter struct {
	District string
	ThemeID  *uuid.UUID
	Query    string // matches name or signature bread
	Limit    int
	Offset   int
}

// BakeryRepository defines the interface for bakery-related database operations.
type BakeryRepository interface {
	// FindByID retrieves a bakery by its unique ID, with its rating aggregate loaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Bakery, error)

	// FindAll retrieves bakeries matching the filter, with rating aggregates loaded.
	FindAll(ctx context.Context, filter BakeryFilter) ([]*entity.Bakery, error)

	// FindRatedSnapshot retrieves up to limit bakeries joined with their review
	// aggregates, ordered by one-decimal rounded average then review count
	// descending. Bakeries without reviews are excluded. Used by the weekly
	// recommendation feed.
	FindRatedSnapshot(ctx context.Context, limit int) ([]entity.RatedBakery, error)

	// FindByName retrieves bakeries whose name matches exactly, case-insensitive.
	// Used by the duplicate check before registering a new bakery.
	FindByName(ctx context.Context, name string) ([]*entity.Bakery, error)

	// Create persists a new bakery entity to the storage.
	Create(ctx context.Context, bakery *entity.Bakery) error

	// Update modifies an existing bakery entity in the storage.
	Update(ctx context.Context, bakery *entity.Bakery) error

	// Delete removes a bakery by its ID (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
