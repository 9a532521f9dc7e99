package handler

import (
	"net/http"

	"gasradar/internal/delivery/api/middleware"
	"gasradar/internal/delivery/api/response"
	"gasradar/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ReviewHandler serves station reviews
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(reviewUC usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{reviewUC: reviewUC}
}

// AddReviewRequest represents the request body for rating a station
type AddReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=1000"`
}

// AddReview handles POST /api/v1/stations/:idEESS/reviews
func (h *ReviewHandler) AddReview(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	idEESS, ok := stationParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid station ID")
	}

	var req AddReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	review, err := h.reviewUC.AddReview(c.Request().Context(), userID, idEESS, req.Rating, req.Comment)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, review)
}

// ListReviews handles GET /api/v1/stations/:idEESS/reviews
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	idEESS, ok := stationParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid station ID")
	}

	reviews, err := h.reviewUC.ListReviews(c.Request().Context(), idEESS)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, reviews)
}
