package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"breadmap/internal/delivery/http/response"
	"breadmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BakeryHandler holds dependencies for bakery discovery handlers.
type BakeryHandler struct {
	uc     usecase.BakeryUsecase
	logger *slog.Logger
}

// NewBakeryHandler is the constructor for BakeryHandler, injected by Fx.
func NewBakeryHandler(uc usecase.BakeryUsecase, logger *slog.Logger) *BakeryHandler {
	return &BakeryHandler{
		uc:     uc,
		logger: logger,
	}
}

type createBakeryRequest struct {
	Name           string  `json:"name" validate:"required"`
	Address        string  `json:"address" validate:"required"`
	District       string  `json:"district" validate:"required"`
	Lat            float64 `json:"lat" validate:"required"`
	Lng            float64 `json:"lng" validate:"required"`
	SignatureBread string  `json:"signature_bread"`
	Description    string  `json:"description"`
	ImageURL       string  `json:"image_url"`
}

// ListBakeries handles the bakery listing request with optional filters.
func (h *BakeryHandler) ListBakeries(c echo.Context) error {
	input := usecase.BakeryListInput{
		District: c.QueryParam("district"),
		Query:    c.QueryParam("q"),
	}

	if themeID := c.QueryParam("themeId"); themeID != "" {
		id, err := uuid.Parse(themeID)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid themeId format")
		}
		input.ThemeID = &id
	}

	if limit := c.QueryParam("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid limit")
		}
		input.Limit = n
	}
	if offset := c.QueryParam("offset"); offset != "" {
		n, err := strconv.Atoi(offset)
		if err != nil || n < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid offset")
		}
		input.Offset = n
	}

	// Both coordinates are needed for distance ordering.
	latParam, lngParam := c.QueryParam("nearLat"), c.QueryParam("nearLng")
	if latParam != "" && lngParam != "" {
		lat, latErr := strconv.ParseFloat(latParam, 64)
		lng, lngErr := strconv.ParseFloat(lngParam, 64)
		if latErr != nil || lngErr != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid nearLat/nearLng coordinates")
		}
		input.NearLat, input.NearLng = &lat, &lng
	}

	bakeries, err := h.uc.ListBakeries(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, bakeries, "Bakeries retrieved successfully")
}

// GetBakery handles the bakery detail request.
func (h *BakeryHandler) GetBakery(c echo.Context) error {
	id, err := PathUUID(c, "id")
	if err != nil {
		return err
	}

	bakery, reviews, err := h.uc.GetBakery(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"bakery":  bakery,
		"reviews": reviews,
	}, "Bakery retrieved successfully")
}

// CreateBakery handles the bakery registration request.
func (h *BakeryHandler) CreateBakery(c echo.Context) error {
	userID, err := AuthenticatedUserID(c)
	if err != nil {
		return err
	}

	var req createBakeryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bakery input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	bakery, err := h.uc.CreateBakery(c.Request().Context(), usecase.CreateBakeryInput{
		Name:           req.Name,
		Address:        req.Address,
		District:       req.District,
		Lat:            req.Lat,
		Lng:            req.Lng,
		SignatureBread: req.SignatureBread,
		Description:    req.Description,
		ImageURL:       req.ImageURL,
		CreatedBy:      userID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, bakery, "Bakery registered successfully")
}

// CheckDuplicate handles the pre-registration duplicate lookup. At least one
// of a name or a coordinate pair must be given.
func (h *BakeryHandler) CheckDuplicate(c echo.Context) error {
	input := usecase.DuplicateCheckInput{
		Name: c.QueryParam("name"),
	}

	latParam, lngParam := c.QueryParam("lat"), c.QueryParam("lng")
	if latParam != "" && lngParam != "" {
		lat, latErr := strconv.ParseFloat(latParam, 64)
		lng, lngErr := strconv.ParseFloat(lngParam, 64)
		if latErr != nil || lngErr != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid lat/lng coordinates")
		}
		input.Lat, input.Lng = &lat, &lng
	}

	result, err := h.uc.CheckDuplicates(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Duplicate check completed")
}

// ListThemes handles the theme catalog request.
func (h *BakeryHandler) ListThemes(c echo.Context) error {
	themes, err := h.uc.ListThemes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, themes, "Themes retrieved successfully")
}
