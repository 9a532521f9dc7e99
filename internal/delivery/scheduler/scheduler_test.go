package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gasradar/config"
	"gasradar/internal/delivery/scheduler/job"
	"gasradar/internal/domain/constants"
	mockUsecase "gasradar/internal/mocks/usecase"
	"gasradar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuildControllers_OnlyEnabledJobs(t *testing.T) {
	cfg := &config.Config{}
	cfg.Jobs.Sync = config.JobConfig{Enabled: true, Interval: 24 * time.Hour}
	cfg.Jobs.PriceHistory = config.JobConfig{Enabled: false, Interval: 30 * time.Minute}
	cfg.Jobs.LowPrice.Enabled = true
	cfg.Jobs.LowPrice.Interval = 2 * time.Hour

	controllers := buildControllers(Params{
		Cfg:            cfg,
		Logger:         discardLogger(),
		StationSyncUC:  mockUsecase.NewMockStationSyncUsecase(t),
		PriceHistoryUC: mockUsecase.NewMockPriceHistoryUsecase(t),
		LowPriceUC:     mockUsecase.NewMockLowPriceUsecase(t),
	})

	require.Len(t, controllers, 2)
	assert.Equal(t, constants.JobStationSync, controllers[0].Name())
	assert.Equal(t, constants.JobLowPriceAlert, controllers[1].Name())
	for _, c := range controllers {
		assert.Equal(t, job.Stopped, c.State())
	}
}

func TestScheduler_ServeAndStop(t *testing.T) {
	syncUC := mockUsecase.NewMockStationSyncUsecase(t)
	ran := make(chan struct{}, 1)
	syncUC.EXPECT().SyncStations(mock.Anything).RunAndReturn(func(ctx context.Context) (*usecase.SyncReport, error) {
		select {
		case ran <- struct{}{}:
		default:
		}

		return &usecase.SyncReport{Total: 1, Created: 1}, nil
	}).Maybe()

	cfg := &config.Config{}
	cfg.Jobs.Sync = config.JobConfig{Enabled: true, Interval: time.Hour}

	s := newScheduler(discardLogger(), buildControllers(Params{
		Cfg:           cfg,
		Logger:        discardLogger(),
		StationSyncUC: syncUC,
	}))

	served := make(chan error, 1)
	go func() { served <- s.Serve(context.Background()) }()

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("sync did not run on start")
	}
	assert.Equal(t, job.Scheduled, s.controllers[0].State())

	require.NoError(t, s.stop(context.Background()))
	require.NoError(t, <-served)
	assert.Equal(t, job.Stopped, s.controllers[0].State())

	// A second stop from fx is harmless.
	require.NoError(t, s.stop(context.Background()))
}

func TestScheduler_NoJobs(t *testing.T) {
	s := newScheduler(discardLogger(), nil)

	require.NoError(t, s.Serve(context.Background()))
	require.NoError(t, s.stop(context.Background()))
}
