package usecase

import (
	"context"
	"time"

	"gasradar/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteStation is a saved station with its latest prices.
type FavoriteStation struct {
	Station  *entity.Station `json:"station"`
	Prices   entity.Prices   `json:"prices"`
	PricesAt *time.Time      `json:"prices_at"`
}

// FavoriteUsecase manages a user's saved stations.
type FavoriteUsecase interface {
	SaveStation(ctx context.Context, userID uuid.UUID, idEESS string) error
	RemoveStation(ctx context.Context, userID uuid.UUID, idEESS string) error
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]*FavoriteStation, error)
}
