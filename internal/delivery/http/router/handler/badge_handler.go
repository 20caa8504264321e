package handler

import (
	"log/slog"
	"net/http"

	"breadmap/internal/delivery/http/response"
	"breadmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BadgeHandler holds dependencies for badge handlers.
type BadgeHandler struct {
	uc     usecase.BadgeUsecase
	logger *slog.Logger
}

// NewBadgeHandler is the constructor for BadgeHandler, injected by Fx.
func NewBadgeHandler(uc usecase.BadgeUsecase, logger *slog.Logger) *BadgeHandler {
	return &BadgeHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListCatalog handles listing the full badge catalog.
func (h *BadgeHandler) ListCatalog(c echo.Context) error {
	badges, err := h.uc.ListCatalog(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, badges, "Badges retrieved successfully")
}

// ListEarned handles listing the current user's earned badges.
func (h *BadgeHandler) ListEarned(c echo.Context) error {
	userID, err := AuthenticatedUserID(c)
	if err != nil {
		return err
	}

	badges, err := h.uc.ListEarned(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, badges, "Earned badges retrieved successfully")
}

// Recheck re-evaluates the current user's badge conditions synchronously.
// The result is returned raw so clients see the award count directly.
func (h *BadgeHandler) Recheck(c echo.Context) error {
	userID, err := AuthenticatedUserID(c)
	if err != nil {
		return err
	}

	result, err := h.uc.Recheck(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, result)
}
