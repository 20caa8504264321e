package impl

import (
	"context"
	"log/slog"
	"testing"

	"breadmap/internal/domain/entity"
	domainerrors "breadmap/internal/domain/errors"
	mockRepo "breadmap/internal/mocks/repository"
	"breadmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeviceService(t *testing.T) (usecase.DeviceUsecase, *mockRepo.MockDeviceRepository) {
	t.Helper()

	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewDeviceService(DeviceServiceParams{
		DeviceRepo: deviceRepo,
		Logger:     slog.Default(),
	})

	return svc, deviceRepo
}

func TestDeviceService_RegisterDevice_Success(t *testing.T) {
	svc, deviceRepo := newDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Run(func(ctx context.Context, device *entity.UserDevice) {
			assert.Equal(t, userID, device.UserID)
			assert.Equal(t, "fcm-token-abc", device.FCMToken)
			assert.Equal(t, "android", device.Platform)
		}).
		Return(nil)

	device, err := svc.RegisterDevice(ctx, userID, usecase.DeviceInfo{
		FCMToken: "fcm-token-abc",
		Platform: "android",
	})

	require.NoError(t, err)
	assert.Equal(t, "fcm-token-abc", device.FCMToken)
}

func TestDeviceService_RegisterDevice_EmptyToken(t *testing.T) {
	svc, _ := newDeviceService(t)

	_, err := svc.RegisterDevice(context.Background(), uuid.New(), usecase.DeviceInfo{
		Platform: "ios",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDeviceService_RemoveDevice_Success(t *testing.T) {
	svc, deviceRepo := newDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	deviceRepo.EXPECT().
		FindByUser(ctx, userID).
		Return([]*entity.UserDevice{{ID: deviceID, UserID: userID}}, nil)
	deviceRepo.EXPECT().Delete(ctx, deviceID).Return(nil)

	err := svc.RemoveDevice(ctx, userID, deviceID)

	require.NoError(t, err)
}

func TestDeviceService_RemoveDevice_NotOwned(t *testing.T) {
	svc, deviceRepo := newDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().
		FindByUser(ctx, userID).
		Return([]*entity.UserDevice{{ID: uuid.New(), UserID: userID}}, nil)

	err := svc.RemoveDevice(ctx, userID, uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
