package handler

import (
	"net/http"

	"gasradar/internal/delivery/api/middleware"
	"gasradar/internal/delivery/api/response"
	"gasradar/internal/usecase"

	"github.com/labstack/echo/v4"
)

// FavoriteHandler serves a user's saved stations
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(favoriteUC usecase.FavoriteUsecase) *FavoriteHandler {
	return &FavoriteHandler{favoriteUC: favoriteUC}
}

// SaveStation handles POST /api/v1/favorites/:idEESS
func (h *FavoriteHandler) SaveStation(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	idEESS, ok := stationParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid station ID")
	}

	if err := h.favoriteUC.SaveStation(c.Request().Context(), userID, idEESS); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"message": "Station saved"})
}

// RemoveStation handles DELETE /api/v1/favorites/:idEESS
func (h *FavoriteHandler) RemoveStation(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	idEESS, ok := stationParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid station ID")
	}

	if err := h.favoriteUC.RemoveStation(c.Request().Context(), userID, idEESS); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Station removed"})
}

// ListFavorites handles GET /api/v1/favorites
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	favorites, err := h.favoriteUC.ListFavorites(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, favorites)
}
