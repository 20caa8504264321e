// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"breadmap/internal/domain/entity"
	"breadmap/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to register a device token that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for push device database operations.
type DeviceRepository interface {
	// Upsert registers a device token for a user, refreshing it when the token
	// is already registered.
	Upsert(ctx context.Context, device *entity.UserDevice) error

	// FindByUser retrieves all registered devices for a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// Delete removes a device by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
