package impl

import (
	"context"
	"testing"
	"time"

	"gasradar/internal/domain/entity"
	domainerrors "gasradar/internal/domain/errors"
	mockRepo "gasradar/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type favoriteFixtures struct {
	service     *favoriteService
	userRepo    *mockRepo.MockUserRepository
	stationRepo *mockRepo.MockStationRepository
	historyRepo *mockRepo.MockPriceHistoryRepository
}

func createTestFavoriteService(t *testing.T) favoriteFixtures {
	fx := favoriteFixtures{
		userRepo:    mockRepo.NewMockUserRepository(t),
		stationRepo: mockRepo.NewMockStationRepository(t),
		historyRepo: mockRepo.NewMockPriceHistoryRepository(t),
	}

	fx.service = NewFavoriteService(FavoriteServiceParams{
		UserRepo:    fx.userRepo,
		StationRepo: fx.stationRepo,
		HistoryRepo: fx.historyRepo,
	}).(*favoriteService)

	return fx
}

func TestFavoriteService_SaveStation(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("saves known station", func(t *testing.T) {
		fx := createTestFavoriteService(t)
		station := testStation("1001", 40.42, -3.70)
		fx.stationRepo.EXPECT().FindByExternalID(ctx, "1001").Return(station, nil)
		fx.userRepo.EXPECT().SaveStation(ctx, userID, station.ID).Return(nil)

		assert.NoError(t, fx.service.SaveStation(ctx, userID, "1001"))
	})

	t.Run("unknown station", func(t *testing.T) {
		fx := createTestFavoriteService(t)
		fx.stationRepo.EXPECT().FindByExternalID(ctx, "0000").Return(nil, domainerrors.ErrStationNotFound)

		err := fx.service.SaveStation(ctx, userID, "0000")
		assert.ErrorIs(t, err, domainerrors.ErrStationNotFound)
		fx.userRepo.AssertNotCalled(t, "SaveStation", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestFavoriteService_RemoveStation(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	userID := uuid.New()
	station := testStation("1001", 40.42, -3.70)

	fx.stationRepo.EXPECT().FindByExternalID(ctx, "1001").Return(station, nil)
	fx.userRepo.EXPECT().RemoveStation(ctx, userID, station.ID).Return(nil)

	assert.NoError(t, fx.service.RemoveStation(ctx, userID, "1001"))
}

func TestFavoriteService_ListFavorites(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("keeps saved order and joins prices", func(t *testing.T) {
		fx := createTestFavoriteService(t)
		first := testStation("1001", 40.42, -3.70)
		second := testStation("1002", 40.43, -3.71)
		ids := []uuid.UUID{second.ID, first.ID}
		at := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

		fx.userRepo.EXPECT().ListSavedStationIDs(ctx, userID).Return(ids, nil)
		fx.stationRepo.EXPECT().FindByIDs(ctx, ids).Return([]*entity.Station{first, second}, nil)
		fx.historyRepo.EXPECT().LatestForStations(ctx, ids).Return(map[uuid.UUID]*entity.PriceHistoryEntry{
			first.ID: {StationID: first.ID, Prices: pricesOf(map[entity.FuelType]float64{entity.FuelDiesel: 1.4}), CreatedAt: at},
		}, nil)

		favorites, err := fx.service.ListFavorites(ctx, userID)
		require.NoError(t, err)
		require.Len(t, favorites, 2)

		assert.Equal(t, "1002", favorites[0].Station.IDEESS)
		assert.Nil(t, favorites[0].PricesAt)
		assert.Equal(t, "1001", favorites[1].Station.IDEESS)
		require.NotNil(t, favorites[1].PricesAt)
		assert.Equal(t, at, *favorites[1].PricesAt)
		assert.Len(t, favorites[1].Prices, 1)
	})

	t.Run("no favorites", func(t *testing.T) {
		fx := createTestFavoriteService(t)
		fx.userRepo.EXPECT().ListSavedStationIDs(ctx, userID).Return(nil, nil)

		favorites, err := fx.service.ListFavorites(ctx, userID)
		require.NoError(t, err)
		assert.NotNil(t, favorites)
		assert.Empty(t, favorites)
	})
}
