package impl

import (
	"context"
	"testing"
	"time"

	"gasradar/config"
	"gasradar/internal/domain/entity"
	domainerrors "gasradar/internal/domain/errors"
	"gasradar/internal/domain/service"
	"gasradar/internal/infra/cache"
	mockRepo "gasradar/internal/mocks/repository"
	mockSvc "gasradar/internal/mocks/service"
	"gasradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	madridLat = 40.4168
	madridLon = -3.7038
)

// Saturday 11:30 in Madrid.
var queryNow = time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)

type stationQueryFixtures struct {
	service     *stationQueryService
	stationRepo *mockRepo.MockStationRepository
	historyRepo *mockRepo.MockPriceHistoryRepository
}

func queryConfig(cacheTTL time.Duration) *config.Config {
	return &config.Config{
		Query: config.QueryConfig{
			DefaultRadiusKm: 5,
			MaxRadiusKm:     50,
			CacheTTL:        cacheTTL,
			Timezone:        "Europe/Madrid",
		},
	}
}

func createTestStationQueryService(t *testing.T, queryCache service.QueryCache) stationQueryFixtures {
	fx := stationQueryFixtures{
		stationRepo: mockRepo.NewMockStationRepository(t),
		historyRepo: mockRepo.NewMockPriceHistoryRepository(t),
	}

	svc, err := NewStationQueryService(StationQueryServiceParams{
		StationRepo: fx.stationRepo,
		HistoryRepo: fx.historyRepo,
		QueryCache:  queryCache,
		Config:      queryConfig(0),
		Logger:      discardLogger(),
	})
	require.NoError(t, err)

	fx.service = svc.(*stationQueryService)
	fx.service.now = fixedClock(queryNow)

	return fx
}

// missCache returns a cache mock that never hits and accepts a store.
func missCache(t *testing.T) *mockSvc.MockQueryCache {
	queryCache := mockSvc.NewMockQueryCache(t)
	queryCache.EXPECT().Key(mock.Anything).Return("key")
	queryCache.EXPECT().Get("key").Return(nil, false)

	return queryCache
}

func latestEntry(station *entity.Station, prices entity.Prices) *entity.PriceHistoryEntry {
	return &entity.PriceHistoryEntry{
		ID:        uuid.New(),
		StationID: station.ID,
		Prices:    prices,
		CreatedAt: queryNow.Add(-time.Hour),
	}
}

func TestStationQueryService_FindNearby_OrdersByDistanceAndDropsUnpriced(t *testing.T) {
	queryCache := missCache(t)
	queryCache.EXPECT().Set("key", mock.Anything).Return()
	fx := createTestStationQueryService(t, queryCache)
	ctx := context.Background()

	near := testStation("1001", 40.4195, madridLon)
	far := testStation("1002", 40.4348, madridLon)
	unpriced := testStation("1003", 40.4240, madridLon)

	fx.stationRepo.EXPECT().FindNear(ctx, mock.MatchedBy(func(q *entity.NearQuery) bool {
		return q.RadiusMeters == 5000 && q.Limit == 0
	})).Return([]*entity.StationDistance{
		{Station: near, DistanceMeters: 300},
		{Station: unpriced, DistanceMeters: 800},
		{Station: far, DistanceMeters: 2000},
	}, nil)
	fx.historyRepo.EXPECT().LatestForStations(ctx, []uuid.UUID{near.ID, unpriced.ID, far.ID}).
		Return(map[uuid.UUID]*entity.PriceHistoryEntry{
			near.ID: latestEntry(near, pricesOf(map[entity.FuelType]float64{entity.FuelDiesel: 1.389})),
			far.ID:  latestEntry(far, pricesOf(map[entity.FuelType]float64{entity.FuelDiesel: 1.409})),
		}, nil)

	results, err := fx.service.FindNearby(ctx, &usecase.NearbyQuery{Latitude: madridLat, Longitude: madridLon})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "1001", results[0].IDEESS)
	assert.InDelta(t, 0.3, results[0].Distance, 1e-9)
	assert.Equal(t, "1002", results[1].IDEESS)
	assert.InDelta(t, 2.0, results[1].Distance, 1e-9)

	require.NotNil(t, results[0].IsOpen)
	assert.True(t, *results[0].IsOpen)
	assert.Len(t, results[0].Prices, 1)
	assert.Nil(t, results[0].Price)
}

func TestStationQueryService_FindNearby_FuelFilter(t *testing.T) {
	queryCache := missCache(t)
	queryCache.EXPECT().Set("key", mock.Anything).Return()
	fx := createTestStationQueryService(t, queryCache)
	ctx := context.Background()

	dieselOnly := testStation("2001", 40.42, madridLon)
	petrolOnly := testStation("2002", 40.43, madridLon)

	// The limit is not pushed down when results are filtered afterwards.
	fx.stationRepo.EXPECT().FindNear(ctx, mock.MatchedBy(func(q *entity.NearQuery) bool {
		return q.Limit == 0
	})).Return([]*entity.StationDistance{
		{Station: dieselOnly, DistanceMeters: 400},
		{Station: petrolOnly, DistanceMeters: 1500},
	}, nil)
	fx.historyRepo.EXPECT().LatestForStations(ctx, mock.Anything).Return(map[uuid.UUID]*entity.PriceHistoryEntry{
		dieselOnly.ID: latestEntry(dieselOnly, pricesOf(map[entity.FuelType]float64{entity.FuelDiesel: 1.399})),
		petrolOnly.ID: latestEntry(petrolOnly, pricesOf(map[entity.FuelType]float64{entity.FuelPetrol95: 1.559})),
	}, nil)

	results, err := fx.service.FindNearby(ctx, &usecase.NearbyQuery{
		Latitude:  madridLat,
		Longitude: madridLon,
		FuelType:  entity.FuelPetrol95,
		Limit:     5,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "2002", results[0].IDEESS)
	assert.Equal(t, "petrol95", results[0].FuelType)
	require.NotNil(t, results[0].Price)
	assert.InDelta(t, 1.559, *results[0].Price, 1e-9)
	assert.Nil(t, results[0].Prices)
}

func TestStationQueryService_FindNearby_Availability(t *testing.T) {
	open := testStation("3001", 40.42, madridLon)
	closed := testStation("3002", 40.43, madridLon)
	closed.Schedule = "L-V: 07:00-08:00"
	unknown := testStation("3003", 40.44, madridLon)
	unknown.Schedule = "cerrado temporalmente"

	tests := []struct {
		name         string
		availability entity.Availability
		want         []string
	}{
		{name: "all keeps every station", availability: entity.AvailabilityAll, want: []string{"3001", "3002", "3003"}},
		{name: "open", availability: entity.AvailabilityOpen, want: []string{"3001"}},
		{name: "closed", availability: entity.AvailabilityClosed, want: []string{"3002"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			queryCache := missCache(t)
			queryCache.EXPECT().Set("key", mock.Anything).Return()
			fx := createTestStationQueryService(t, queryCache)
			ctx := context.Background()

			prices := pricesOf(map[entity.FuelType]float64{entity.FuelDiesel: 1.4})
			fx.stationRepo.EXPECT().FindNear(ctx, mock.Anything).Return([]*entity.StationDistance{
				{Station: open, DistanceMeters: 100},
				{Station: closed, DistanceMeters: 200},
				{Station: unknown, DistanceMeters: 300},
			}, nil)
			fx.historyRepo.EXPECT().LatestForStations(ctx, mock.Anything).Return(map[uuid.UUID]*entity.PriceHistoryEntry{
				open.ID:    latestEntry(open, prices),
				closed.ID:  latestEntry(closed, prices),
				unknown.ID: latestEntry(unknown, prices),
			}, nil)

			results, err := fx.service.FindNearby(ctx, &usecase.NearbyQuery{
				Latitude:     madridLat,
				Longitude:    madridLon,
				Availability: tt.availability,
			})
			require.NoError(t, err)

			got := make([]string, 0, len(results))
			for _, r := range results {
				got = append(got, r.IDEESS)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStationQueryService_FindNearby_PushesLimitDown(t *testing.T) {
	queryCache := missCache(t)
	fx := createTestStationQueryService(t, queryCache)
	ctx := context.Background()

	station := testStation("4001", 40.42, madridLon)
	fx.stationRepo.EXPECT().FindNear(ctx, mock.MatchedBy(func(q *entity.NearQuery) bool {
		return q.Limit == 1 && q.RadiusMeters == 50000
	})).Return([]*entity.StationDistance{{Station: station, DistanceMeters: 100}}, nil)
	fx.historyRepo.EXPECT().LatestForStations(ctx, []uuid.UUID{station.ID}).Return(map[uuid.UUID]*entity.PriceHistoryEntry{
		station.ID: latestEntry(station, pricesOf(map[entity.FuelType]float64{entity.FuelDiesel: 1.4})),
	}, nil)

	results, err := fx.service.FindNearby(ctx, &usecase.NearbyQuery{
		Latitude:  madridLat,
		Longitude: madridLon,
		RadiusKm:  500,
		Limit:     1,
	})
	require.NoError(t, err)
	assert.Len(t, results, 1)
	queryCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestStationQueryService_FindNearby_EmptyArea(t *testing.T) {
	queryCache := missCache(t)
	queryCache.EXPECT().Set("key", mock.Anything).Return()
	fx := createTestStationQueryService(t, queryCache)
	ctx := context.Background()

	fx.stationRepo.EXPECT().FindNear(ctx, mock.Anything).Return(nil, nil)

	results, err := fx.service.FindNearby(ctx, &usecase.NearbyQuery{Latitude: 28.1, Longitude: -15.4})
	require.NoError(t, err)
	assert.Empty(t, results)
	fx.historyRepo.AssertNotCalled(t, "LatestForStations", mock.Anything, mock.Anything)
}

func TestStationQueryService_FindNearby_Validation(t *testing.T) {
	tests := []struct {
		name  string
		query *usecase.NearbyQuery
	}{
		{name: "nil query", query: nil},
		{name: "latitude out of range", query: &usecase.NearbyQuery{Latitude: 91}},
		{name: "longitude out of range", query: &usecase.NearbyQuery{Longitude: -181}},
		{name: "negative radius", query: &usecase.NearbyQuery{RadiusKm: -1}},
		{name: "negative limit", query: &usecase.NearbyQuery{Limit: -3}},
		{name: "rating above five", query: &usecase.NearbyQuery{MinRating: ptr(5.5)}},
		{name: "unknown fuel", query: &usecase.NearbyQuery{FuelType: "kerosene"}},
		{name: "unknown availability", query: &usecase.NearbyQuery{Availability: "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestStationQueryService(t, mockSvc.NewMockQueryCache(t))

			_, err := fx.service.FindNearby(context.Background(), tt.query)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestStationQueryService_FindNearby_CachedSearchMatchesStore(t *testing.T) {
	fx := createTestStationQueryService(t, cache.NewQueryCache(queryConfig(time.Minute)))
	ctx := context.Background()

	near := testStation("5001", 40.4195, madridLon)
	// On a sphere this one sits just past 5 km; the store's spheroid puts it inside.
	edge := testStation("5002", madridLat+0.04495, madridLon)

	fx.stationRepo.EXPECT().FindNear(ctx, mock.Anything).Return([]*entity.StationDistance{
		{Station: near, DistanceMeters: 300},
		{Station: edge, DistanceMeters: 4996.5},
	}, nil).Once()
	fx.historyRepo.EXPECT().LatestForStations(ctx, mock.Anything).Return(map[uuid.UUID]*entity.PriceHistoryEntry{
		near.ID: latestEntry(near, pricesOf(map[entity.FuelType]float64{entity.FuelDiesel: 1.389})),
		edge.ID: latestEntry(edge, pricesOf(map[entity.FuelType]float64{entity.FuelDiesel: 1.409})),
	}, nil).Once()

	query := &usecase.NearbyQuery{Latitude: madridLat, Longitude: madridLon}
	first, err := fx.service.FindNearby(ctx, query)
	require.NoError(t, err)

	second, err := fx.service.FindNearby(ctx, query)
	require.NoError(t, err)

	require.Len(t, first, 2)
	assert.Equal(t, first, second)
	assert.Equal(t, "5002", second[1].IDEESS)
	assert.InDelta(t, 5.0, second[1].Distance, 0.001)
}

func TestStationQueryService_FindNearby_MovedCentreMissesCache(t *testing.T) {
	fx := createTestStationQueryService(t, cache.NewQueryCache(queryConfig(time.Minute)))
	ctx := context.Background()

	station := testStation("5003", 40.4195, madridLon)
	fx.stationRepo.EXPECT().FindNear(ctx, mock.Anything).Return([]*entity.StationDistance{
		{Station: station, DistanceMeters: 300},
	}, nil).Twice()
	fx.historyRepo.EXPECT().LatestForStations(ctx, mock.Anything).Return(map[uuid.UUID]*entity.PriceHistoryEntry{
		station.ID: latestEntry(station, pricesOf(map[entity.FuelType]float64{entity.FuelDiesel: 1.389})),
	}, nil).Twice()

	_, err := fx.service.FindNearby(ctx, &usecase.NearbyQuery{Latitude: madridLat, Longitude: madridLon})
	require.NoError(t, err)

	// One metre north still falls in the same geohash cell.
	_, err = fx.service.FindNearby(ctx, &usecase.NearbyQuery{Latitude: madridLat + 0.00001, Longitude: madridLon})
	require.NoError(t, err)
}

func TestStationQueryService_GetStation(t *testing.T) {
	ctx := context.Background()

	t.Run("with prices", func(t *testing.T) {
		fx := createTestStationQueryService(t, mockSvc.NewMockQueryCache(t))
		station := testStation("6001", 40.42, madridLon)
		entry := latestEntry(station, pricesOf(map[entity.FuelType]float64{entity.FuelGPL: 0.899}))

		fx.stationRepo.EXPECT().FindByExternalID(ctx, "6001").Return(station, nil)
		fx.historyRepo.EXPECT().Latest(ctx, station.ID).Return(entry, nil)

		detail, err := fx.service.GetStation(ctx, "6001")
		require.NoError(t, err)
		assert.Len(t, detail.Prices, 1)
		require.NotNil(t, detail.PricesAt)
		assert.Equal(t, entry.CreatedAt, *detail.PricesAt)
	})

	t.Run("without history", func(t *testing.T) {
		fx := createTestStationQueryService(t, mockSvc.NewMockQueryCache(t))
		station := testStation("6002", 40.42, madridLon)

		fx.stationRepo.EXPECT().FindByExternalID(ctx, "6002").Return(station, nil)
		fx.historyRepo.EXPECT().Latest(ctx, station.ID).Return(nil, domainerrors.ErrPriceHistoryNotFound)

		detail, err := fx.service.GetStation(ctx, "6002")
		require.NoError(t, err)
		assert.Nil(t, detail.PricesAt)
		assert.Empty(t, detail.Prices)
	})

	t.Run("unknown station", func(t *testing.T) {
		fx := createTestStationQueryService(t, mockSvc.NewMockQueryCache(t))
		fx.stationRepo.EXPECT().FindByExternalID(ctx, "0000").Return(nil, domainerrors.ErrStationNotFound)

		_, err := fx.service.GetStation(ctx, "0000")
		assert.ErrorIs(t, err, domainerrors.ErrStationNotFound)
	})
}
