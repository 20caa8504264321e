package handler

import (
	"log/slog"
	"net/http"
	"time"

	"breadmap/internal/delivery/http/response"
	"breadmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type createChallengeRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=100"`
	Description string   `json:"description" validate:"max=500"`
	IsPublic    bool     `json:"isPublic"`
	BakeryIDs   []string `json:"bakeryIds" validate:"required,min=1,dive,uuid"`
}

type updateChallengeRequest struct {
	Name        string `json:"name" validate:"omitempty,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
	IsPublic    bool   `json:"isPublic"`
	IsActive    bool   `json:"isActive"`
}

type toggleVisitRequest struct {
	Memo string `json:"memo" validate:"max=500"`
}

type addBakeriesRequest struct {
	BakeryIDs []string `json:"bakeryIds" validate:"required,min=1,dive,uuid"`
}

// ChallengeHandler holds dependencies for challenge handlers.
type ChallengeHandler struct {
	uc               usecase.ChallengeUsecase
	recommendationUC usecase.RecommendationUsecase
	logger           *slog.Logger
}

// NewChallengeHandler is the constructor for ChallengeHandler, injected by Fx.
func NewChallengeHandler(
	uc usecase.ChallengeUsecase,
	recommendationUC usecase.RecommendationUsecase,
	logger *slog.Logger,
) *ChallengeHandler {
	return &ChallengeHandler{
		uc:               uc,
		recommendationUC: recommendationUC,
		logger:           logger,
	}
}

// List handles listing the current user's challenges with progress.
func (h *ChallengeHandler) List(c echo.Context) error {
	userID, err := AuthenticatedUserID(c)
	if err != nil {
		return err
	}

	challenges, err := h.uc.ListChallenges(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, challenges, "Challenges retrieved successfully")
}

// Get handles retrieving a single challenge with items and progress.
func (h *ChallengeHandler) Get(c echo.Context) error {
	userID, err := AuthenticatedUserID(c)
	if err != nil {
		return err
	}

	challengeID, err := PathUUID(c, "id")
	if err != nil {
		return err
	}

	challenge, err := h.uc.GetChallenge(c.Request().Context(), userID, challengeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, challenge, "Challenge retrieved successfully")
}

// GetShared handles retrieving a public challenge by its share token. No
// authentication is required.
func (h *ChallengeHandler) GetShared(c echo.Context) error {
	token := c.Param("token")
	if token == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Share token is required")
	}

	challenge, err := h.uc.GetSharedChallenge(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, challenge, "Challenge retrieved successfully")
}

// Create handles creating a challenge with its initial bakery list.
func (h *ChallengeHandler) Create(c echo.Context) error {
	userID, err := AuthenticatedUserID(c)
	if err != nil {
		return err
	}

	var req createChallengeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	bakeryIDs := make([]uuid.UUID, 0, len(req.BakeryIDs))
	for _, raw := range req.BakeryIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid bakery id: "+raw)
		}
		bakeryIDs = append(bakeryIDs, id)
	}

	challenge, err := h.uc.CreateChallenge(c.Request().Context(), usecase.CreateChallengeInput{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    req.IsPublic,
		BakeryIDs:   bakeryIDs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, challenge, "Challenge created successfully")
}

// Update handles updating an owned challenge.
func (h *ChallengeHandler) Update(c echo.Context) error {
	userID, err := AuthenticatedUserID(c)
	if err != nil {
		return err
	}

	challengeID, err := PathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateChallengeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	challenge, err := h.uc.UpdateChallenge(c.Request().Context(), userID, challengeID, usecase.UpdateChallengeInput{
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    req.IsPublic,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, challenge, "Challenge updated successfully")
}

// Delete handles deleting an owned challenge.
func (h *ChallengeHandler) Delete(c echo.Context) error {
	userID, err := AuthenticatedUserID(c)
	if err != nil {
		return err
	}

	challengeID, err := PathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteChallenge(c.Request().Context(), userID, challengeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Challenge deleted successfully")
}

// AddBakeries handles appending bakeries to an owned challenge.
func (h *ChallengeHandler) AddBakeries(c echo.Context) error {
	userID, err := AuthenticatedUserID(c)
	if err != nil {
		return err
	}

	challengeID, err := PathUUID(c, "id")
	if err != nil {
		return err
	}

	var req addBakeriesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	bakeryIDs := make([]uuid.UUID, 0, len(req.BakeryIDs))
	for _, raw := range req.BakeryIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid bakery id: "+raw)
		}
		bakeryIDs = append(bakeryIDs, id)
	}

	challenge, err := h.uc.AddBakeries(c.Request().Context(), userID, challengeID, bakeryIDs)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, challenge, "Bakeries added successfully")
}

// RemoveBakery handles removing a bakery slot from an owned challenge.
func (h *ChallengeHandler) RemoveBakery(c echo.Context) error {
	userID, err := AuthenticatedUserID(c)
	if err != nil {
		return err
	}

	challengeID, err := PathUUID(c, "id")
	if err != nil {
		return err
	}

	itemID, err := PathUUID(c, "itemId")
	if err != nil {
		return err
	}

	challenge, err := h.uc.RemoveBakery(c.Request().Context(), userID, challengeID, itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, challenge, "Bakery removed successfully")
}

// ToggleVisit handles flipping the visited state of a challenge item.
func (h *ChallengeHandler) ToggleVisit(c echo.Context) error {
	userID, err := AuthenticatedUserID(c)
	if err != nil {
		return err
	}

	challengeID, err := PathUUID(c, "id")
	if err != nil {
		return err
	}

	itemID, err := PathUUID(c, "itemId")
	if err != nil {
		return err
	}

	var req toggleVisitRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	challenge, err := h.uc.ToggleVisit(c.Request().Context(), userID, challengeID, itemID, req.Memo)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, challenge, "Visit toggled successfully")
}

// ShareQR handles generating a share QR code image for an owned challenge.
// The first call mints the share token and makes the challenge public.
func (h *ChallengeHandler) ShareQR(c echo.Context) error {
	userID, err := AuthenticatedUserID(c)
	if err != nil {
		return err
	}

	challengeID, err := PathUUID(c, "id")
	if err != nil {
		return err
	}

	png, shareURL, err := h.uc.ShareQR(c.Request().Context(), userID, challengeID)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set("X-Share-Url", shareURL)

	return c.Blob(http.StatusOK, "image/png", png)
}

// Recommendations handles the weekly recommendation feed. The bundles are
// deterministic within a week, so the handler returns them raw without the
// usual response envelope.
func (h *ChallengeHandler) Recommendations(c echo.Context) error {
	bundles, err := h.recommendationUC.WeeklyRecommendations(c.Request().Context(), time.Now())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"recommendations": bundles,
	})
}
