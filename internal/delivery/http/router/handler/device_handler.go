package handler

import (
	"log/slog"
	"net/http"

	"breadmap/internal/delivery/http/response"
	"breadmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type registerDeviceRequest struct {
	FCMToken string `json:"fcmToken" validate:"required"`
	Platform string `json:"platform" validate:"omitempty,oneof=ios android web"`
}

// DeviceHandler holds dependencies for push device handlers.
type DeviceHandler struct {
	uc     usecase.DeviceUsecase
	logger *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler, injected by Fx.
func NewDeviceHandler(uc usecase.DeviceUsecase, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles registering or refreshing a push token.
func (h *DeviceHandler) Register(c echo.Context) error {
	userID, err := AuthenticatedUserID(c)
	if err != nil {
		return err
	}

	var req registerDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	device, err := h.uc.RegisterDevice(c.Request().Context(), userID, usecase.DeviceInfo{
		FCMToken: req.FCMToken,
		Platform: req.Platform,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, device, "Device registered successfully")
}

// Remove handles removing a registered device.
func (h *DeviceHandler) Remove(c echo.Context) error {
	userID, err := AuthenticatedUserID(c)
	if err != nil {
		return err
	}

	deviceID, err := PathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.RemoveDevice(c.Request().Context(), userID, deviceID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Device removed successfully")
}
