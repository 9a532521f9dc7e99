package impl

import (
	"context"

	"gasradar/internal/domain/entity"
	"gasradar/internal/domain/repository"
	"gasradar/internal/errors"
	"gasradar/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type favoriteService struct {
	userRepo    repository.UserRepository
	stationRepo repository.StationRepository
	historyRepo repository.PriceHistoryRepository
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	StationRepo repository.StationRepository
	HistoryRepo repository.PriceHistoryRepository
}

// NewFavoriteService creates a new favourites service instance
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		userRepo:    params.UserRepo,
		stationRepo: params.StationRepo,
		historyRepo: params.HistoryRepo,
	}
}

// SaveStation adds a station to the user's favourites
func (s *favoriteService) SaveStation(ctx context.Context, userID uuid.UUID, idEESS string) error {
	station, err := s.stationRepo.FindByExternalID(ctx, idEESS)
	if err != nil {
		return err
	}

	return s.userRepo.SaveStation(ctx, userID, station.ID)
}

// RemoveStation removes a station from the user's favourites
func (s *favoriteService) RemoveStation(ctx context.Context, userID uuid.UUID, idEESS string) error {
	station, err := s.stationRepo.FindByExternalID(ctx, idEESS)
	if err != nil {
		return err
	}

	return s.userRepo.RemoveStation(ctx, userID, station.ID)
}

// ListFavorites returns the saved stations, most recently saved first, with their latest prices
func (s *favoriteService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*usecase.FavoriteStation, error) {
	ids, err := s.userRepo.ListSavedStationIDs(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "list saved stations")
	}
	if len(ids) == 0 {
		return []*usecase.FavoriteStation{}, nil
	}

	stations, err := s.stationRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "load saved stations")
	}
	stationByID := make(map[uuid.UUID]*entity.Station, len(stations))
	for _, station := range stations {
		stationByID[station.ID] = station
	}

	latest, err := s.historyRepo.LatestForStations(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "load latest prices")
	}

	favorites := make([]*usecase.FavoriteStation, 0, len(ids))
	for _, id := range ids {
		station, ok := stationByID[id]
		if !ok {
			continue
		}

		favorite := &usecase.FavoriteStation{Station: station}
		if entry, ok := latest[id]; ok {
			favorite.Prices = entry.Prices.Available()
			favorite.PricesAt = &entry.CreatedAt
		}
		favorites = append(favorites, favorite)
	}

	return favorites, nil
}
