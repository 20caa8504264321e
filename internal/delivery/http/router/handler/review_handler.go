package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"breadmap/internal/delivery/http/response"
	"breadmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// reviewPhotoMaxBytes caps uploaded review photos at 5 MiB.
const reviewPhotoMaxBytes = 5 << 20

// ReviewHandler holds dependencies for review handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListByBakery handles the review listing request for a bakery.
func (h *ReviewHandler) ListByBakery(c echo.Context) error {
	bakeryID, err := PathUUID(c, "id")
	if err != nil {
		return err
	}

	reviews, err := h.uc.ListByBakery(c.Request().Context(), bakeryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "Reviews retrieved successfully")
}

// ListMine handles the request for the current user's own reviews.
func (h *ReviewHandler) ListMine(c echo.Context) error {
	userID, err := AuthenticatedUserID(c)
	if err != nil {
		return err
	}

	reviews, err := h.uc.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "Reviews retrieved successfully")
}

// Create handles the review creation request. The body is multipart form data
// so an optional photo can ride along with the rating and comment.
func (h *ReviewHandler) Create(c echo.Context) error {
	userID, err := AuthenticatedUserID(c)
	if err != nil {
		return err
	}

	bakeryID, err := PathUUID(c, "id")
	if err != nil {
		return err
	}

	rating, err := strconv.Atoi(c.FormValue("rating"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Rating must be an integer between 1 and 5")
	}

	input := usecase.CreateReviewInput{
		BakeryID: bakeryID,
		UserID:   userID,
		Rating:   rating,
		Comment:  c.FormValue("comment"),
	}

	if file, err := c.FormFile("photo"); err == nil {
		if file.Size > reviewPhotoMaxBytes {
			return response.BadRequest(c, "PHOTO_TOO_LARGE", "Photo must be 5MB or smaller")
		}

		src, err := file.Open()
		if err != nil {
			return errors.Wrap(err, "failed to open uploaded photo")
		}
		defer src.Close()

		input.Photo = &usecase.ReviewPhoto{
			FileName:    file.Filename,
			ContentType: file.Header.Get("Content-Type"),
			Body:        src,
		}
	}

	review, err := h.uc.CreateReview(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review created successfully")
}

type updateReviewRequest struct {
	Rating   *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment  *string `json:"comment" validate:"omitempty,max=1000"`
	PhotoURL *string `json:"photo_url" validate:"omitempty,url"`
}

// Update handles the partial review edit request. Absent fields keep their
// stored values.
func (h *ReviewHandler) Update(c echo.Context) error {
	userID, err := AuthenticatedUserID(c)
	if err != nil {
		return err
	}

	reviewID, err := PathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.uc.UpdateReview(c.Request().Context(), userID, reviewID, usecase.UpdateReviewInput{
		Rating:   req.Rating,
		Comment:  req.Comment,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review, "Review updated successfully")
}

// Delete handles the review deletion request.
func (h *ReviewHandler) Delete(c echo.Context) error {
	userID, err := AuthenticatedUserID(c)
	if err != nil {
		return err
	}

	reviewID, err := PathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteReview(c.Request().Context(), userID, reviewID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Review deleted successfully")
}
