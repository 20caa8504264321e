package impl

import (
	"context"
	"log/slog"

	"breadmap/internal/domain/entity"
	domainerrors "breadmap/internal/domain/errors"
	"breadmap/internal/domain/repository"
	"breadmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

// RegisterDevice registers or refreshes a push token for the user
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, info usecase.DeviceInfo) (*entity.UserDevice, error) {
	if info.FCMToken == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("fcm token is required")
	}

	device := &entity.UserDevice{
		ID:       uuid.New(),
		UserID:   userID,
		FCMToken: info.FCMToken,
		Platform: info.Platform,
	}

	if err := s.deviceRepo.Upsert(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	s.logger.Debug("push device registered", "userID", userID, "platform", info.Platform)

	return device, nil
}

// RemoveDevice removes a registered device
func (s *deviceService) RemoveDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	devices, err := s.deviceRepo.FindByUser(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to list devices")
	}

	owned := false
	for _, device := range devices {
		if device.ID == deviceID {
			owned = true
			break
		}
	}
	if !owned {
		return domainerrors.ErrNotFound.WrapMessage("device not found")
	}

	if err := s.deviceRepo.Delete(ctx, deviceID); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("device not found")
		}

		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}
