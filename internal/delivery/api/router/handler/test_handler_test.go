package handler

import (
	"net/http"
	"testing"

	"gasradar/internal/delivery/api/middleware"
	"gasradar/internal/domain/constants"
	domainerrors "gasradar/internal/domain/errors"
	mockUsecase "gasradar/internal/mocks/usecase"
	"gasradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTestHandler_RunJob(t *testing.T) {
	tests := []struct {
		name      string
		job       string
		setupMock func(sync *mockUsecase.MockStationSyncUsecase, record *mockUsecase.MockPriceHistoryUsecase, notify *mockUsecase.MockLowPriceUsecase)
		wantCode  int
	}{
		{
			name: "sync",
			job:  constants.JobStationSync,
			setupMock: func(sync *mockUsecase.MockStationSyncUsecase, _ *mockUsecase.MockPriceHistoryUsecase, _ *mockUsecase.MockLowPriceUsecase) {
				sync.EXPECT().SyncStations(mock.Anything).Return(&usecase.SyncReport{Created: 3}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "record with feed down",
			job:  constants.JobPriceHistory,
			setupMock: func(_ *mockUsecase.MockStationSyncUsecase, record *mockUsecase.MockPriceHistoryUsecase, _ *mockUsecase.MockLowPriceUsecase) {
				record.EXPECT().RecordPrices(mock.Anything).Return(nil, domainerrors.ErrFeedUnavailable)
			},
			wantCode: http.StatusBadGateway,
		},
		{
			name: "notify",
			job:  constants.JobLowPriceAlert,
			setupMock: func(_ *mockUsecase.MockStationSyncUsecase, _ *mockUsecase.MockPriceHistoryUsecase, notify *mockUsecase.MockLowPriceUsecase) {
				notify.EXPECT().NotifyLowPrices(mock.Anything).Return(&usecase.LowPriceReport{Sent: 1}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "unknown job",
			job:       "reindex",
			setupMock: func(_ *mockUsecase.MockStationSyncUsecase, _ *mockUsecase.MockPriceHistoryUsecase, _ *mockUsecase.MockLowPriceUsecase) {},
			wantCode:  http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			syncUC := mockUsecase.NewMockStationSyncUsecase(t)
			recordUC := mockUsecase.NewMockPriceHistoryUsecase(t)
			notifyUC := mockUsecase.NewMockLowPriceUsecase(t)
			tt.setupMock(syncUC, recordUC, notifyUC)

			h := NewTestHandler(TestHandlerParams{
				StationSyncUC:  syncUC,
				PriceHistoryUC: recordUC,
				LowPriceUC:     notifyUC,
			})

			c, rec := newTestContext(http.MethodPost, "/api/v1/test/jobs/"+tt.job+"/run")
			c.SetParamNames("job")
			c.SetParamValues(tt.job)

			require.NoError(t, h.RunJob(c))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestTestHandler_Whoami(t *testing.T) {
	h := NewTestHandler(TestHandlerParams{})

	t.Run("authenticated", func(t *testing.T) {
		userID := uuid.New()
		c, rec := newTestContext(http.MethodGet, "/api/v1/test/whoami")
		middleware.SetIdentity(c, userID, []string{"user", "operator"})

		require.NoError(t, h.Whoami(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), userID.String())
		assert.Contains(t, rec.Body.String(), "operator")
	})

	t.Run("no claims", func(t *testing.T) {
		c, rec := newTestContext(http.MethodGet, "/api/v1/test/whoami")

		require.NoError(t, h.Whoami(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
