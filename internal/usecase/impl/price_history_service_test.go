package impl

import (
	"context"
	"testing"
	"time"

	"gasradar/internal/domain/entity"
	domainerrors "gasradar/internal/domain/errors"
	mockRepo "gasradar/internal/mocks/repository"
	mockSvc "gasradar/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type priceHistoryFixtures struct {
	service     *priceHistoryService
	feedClient  *mockSvc.MockFeedClient
	converter   *mockSvc.MockStationConverter
	stationRepo *mockRepo.MockStationRepository
	historyRepo *mockRepo.MockPriceHistoryRepository
	queryCache  *mockSvc.MockQueryCache
	now         time.Time
}

func createTestPriceHistoryService(t *testing.T) priceHistoryFixtures {
	fx := priceHistoryFixtures{
		feedClient:  mockSvc.NewMockFeedClient(t),
		converter:   mockSvc.NewMockStationConverter(t),
		stationRepo: mockRepo.NewMockStationRepository(t),
		historyRepo: mockRepo.NewMockPriceHistoryRepository(t),
		queryCache:  mockSvc.NewMockQueryCache(t),
		now:         time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC),
	}

	fx.service = NewPriceHistoryService(PriceHistoryServiceParams{
		FeedClient:  fx.feedClient,
		Converter:   fx.converter,
		StationRepo: fx.stationRepo,
		HistoryRepo: fx.historyRepo,
		QueryCache:  fx.queryCache,
		Logger:      discardLogger(),
	}).(*priceHistoryService)
	fx.service.now = fixedClock(fx.now)

	return fx
}

func TestPriceHistoryService_RecordPrices(t *testing.T) {
	fx := createTestPriceHistoryService(t)
	ctx := context.Background()

	changedPrices := pricesOf(map[entity.FuelType]float64{entity.FuelDiesel: 1.459})
	samePrices := pricesOf(map[entity.FuelType]float64{entity.FuelDiesel: 1.389})
	changed := testRecord("1001", 40.41, -3.70, changedPrices)
	same := testRecord("1002", 40.42, -3.71, samePrices)
	failing := testRecord("1003", 40.43, -3.72, samePrices)

	fx.feedClient.EXPECT().FetchSnapshot(ctx).Return(&entity.FeedSnapshot{
		Date:    "01/03/2025 10:00:00",
		Records: []entity.RawStationRecord{rawRecord("1001"), rawRecord("1002"), rawRecord("1003")},
	}, nil)
	fx.converter.EXPECT().Convert(rawRecord("1001")).Return(changed)
	fx.converter.EXPECT().Convert(rawRecord("1002")).Return(same)
	fx.converter.EXPECT().Convert(rawRecord("1003")).Return(failing)

	local := []*entity.Station{
		testStation("1001", 40.41, -3.70),
		testStation("1002", 40.42, -3.71),
		testStation("1003", 40.43, -3.72),
		testStation("9999", 40.44, -3.73),
	}
	fx.stationRepo.EXPECT().ListAll(ctx).Return(local, nil)

	fx.historyRepo.EXPECT().AppendIfChanged(ctx, local[0].ID, changedPrices).Return(true, nil)
	fx.historyRepo.EXPECT().AppendIfChanged(ctx, local[1].ID, samePrices).Return(false, nil)
	fx.historyRepo.EXPECT().AppendIfChanged(ctx, local[2].ID, samePrices).Return(false, errors.New("lock timeout"))
	fx.queryCache.EXPECT().Flush().Return()

	report, err := fx.service.RecordPrices(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, report.Stations)
	assert.Equal(t, 1, report.Created)
	assert.Equal(t, 1, report.Unchanged)
	assert.Equal(t, 1, report.Missing)
	assert.Equal(t, 1, report.Failed)
}

func TestPriceHistoryService_RecordPrices_FeedFailure(t *testing.T) {
	fx := createTestPriceHistoryService(t)
	ctx := context.Background()

	fx.feedClient.EXPECT().FetchSnapshot(ctx).Return(nil, domainerrors.ErrFeedUnavailable)

	_, err := fx.service.RecordPrices(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrFeedUnavailable)
	fx.stationRepo.AssertNotCalled(t, "ListAll", mock.Anything)
}

func TestPriceHistoryService_GetStationHistory(t *testing.T) {
	station := testStation("1001", 40.41, -3.70)

	tests := []struct {
		name      string
		days      int
		setupMock func(fx priceHistoryFixtures, ctx context.Context)
		wantErr   error
		wantLen   int
	}{
		{
			name: "defaults to thirty days oldest first",
			days: 0,
			setupMock: func(fx priceHistoryFixtures, ctx context.Context) {
				fx.stationRepo.EXPECT().FindByExternalID(ctx, "1001").Return(station, nil)
				fx.historyRepo.EXPECT().Recent(ctx, station.ID, entity.HistoryRange{
					Since: fx.now.AddDate(0, 0, -30),
					Order: entity.OldestFirst,
				}).Return([]*entity.PriceHistoryEntry{{}, {}}, nil)
			},
			wantLen: 2,
		},
		{
			name:      "rejects out of range days",
			days:      400,
			setupMock: func(fx priceHistoryFixtures, ctx context.Context) {},
			wantErr:   domainerrors.ErrValidationFailed,
		},
		{
			name: "unknown station",
			days: 7,
			setupMock: func(fx priceHistoryFixtures, ctx context.Context) {
				fx.stationRepo.EXPECT().FindByExternalID(ctx, "1001").Return(nil, domainerrors.ErrStationNotFound)
			},
			wantErr: domainerrors.ErrStationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPriceHistoryService(t)
			ctx := context.Background()
			tt.setupMock(fx, ctx)

			entries, err := fx.service.GetStationHistory(ctx, "1001", tt.days)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Len(t, entries, tt.wantLen)
		})
	}
}
