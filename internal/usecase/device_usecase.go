package usecase

import (
	"context"

	"breadmap/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo carries the fields needed to register a push device.
type DeviceInfo struct {
	FCMToken string
	Platform string
}

// DeviceUsecase defines the interface for push device use cases
type DeviceUsecase interface {
	// RegisterDevice registers or refreshes a push token for the user
	RegisterDevice(ctx context.Context, userID uuid.UUID, info DeviceInfo) (*entity.UserDevice, error)

	// RemoveDevice removes a registered device
	RemoveDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
