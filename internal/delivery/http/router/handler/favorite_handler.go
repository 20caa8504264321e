package handler

import (
	"log/slog"
	"net/http"

	"breadmap/internal/delivery/http/response"
	"breadmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FavoriteHandler holds dependencies for favorite handlers.
type FavoriteHandler struct {
	uc     usecase.FavoriteUsecase
	logger *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoriteUsecase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the request for the current user's favorites.
func (h *FavoriteHandler) List(c echo.Context) error {
	userID, err := AuthenticatedUserID(c)
	if err != nil {
		return err
	}

	favorites, err := h.uc.ListFavorites(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, favorites, "Favorites retrieved successfully")
}

// Add handles favoriting a bakery.
func (h *FavoriteHandler) Add(c echo.Context) error {
	userID, err := AuthenticatedUserID(c)
	if err != nil {
		return err
	}

	bakeryID, err := PathUUID(c, "id")
	if err != nil {
		return err
	}

	favorite, err := h.uc.AddFavorite(c.Request().Context(), userID, bakeryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, favorite, "Favorite added successfully")
}

// Share handles generating a share QR code image for the user's favorites.
// The share URL rides along in the X-Share-Url header.
func (h *FavoriteHandler) Share(c echo.Context) error {
	userID, err := AuthenticatedUserID(c)
	if err != nil {
		return err
	}

	png, shareURL, err := h.uc.ShareFavorites(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set("X-Share-Url", shareURL)

	return c.Blob(http.StatusOK, "image/png", png)
}

// Unshare handles revoking the user's favorites share link.
func (h *FavoriteHandler) Unshare(c echo.Context) error {
	userID, err := AuthenticatedUserID(c)
	if err != nil {
		return err
	}

	if err := h.uc.UnshareFavorites(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Favorites share revoked successfully")
}

// GetShared handles the public view of a shared favorites list.
func (h *FavoriteHandler) GetShared(c echo.Context) error {
	token := c.Param("token")
	if token == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Share token is required")
	}

	shared, err := h.uc.GetSharedFavorites(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shared, "Shared favorites retrieved successfully")
}

// ToChallenge handles copying a shared favorites list into a new challenge
// owned by the current user.
func (h *FavoriteHandler) ToChallenge(c echo.Context) error {
	userID, err := AuthenticatedUserID(c)
	if err != nil {
		return err
	}

	token := c.Param("token")
	if token == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Share token is required")
	}

	challenge, err := h.uc.SharedFavoritesToChallenge(c.Request().Context(), userID, token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, challenge, "Challenge created from shared favorites")
}

// Remove handles unfavoriting a bakery.
func (h *FavoriteHandler) Remove(c echo.Context) error {
	userID, err := AuthenticatedUserID(c)
	if err != nil {
		return err
	}

	bakeryID, err := PathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.RemoveFavorite(c.Request().Context(), userID, bakeryID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Favorite removed successfully")
}
