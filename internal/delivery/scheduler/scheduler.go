// Package scheduler runs the periodic background jobs as a delivery of the main process.
package scheduler

import (
	"context"
	"log/slog"
	"sync"

	"gasradar/config"
	"gasradar/internal/delivery"
	"gasradar/internal/delivery/scheduler/job"
	"gasradar/internal/domain/constants"
	"gasradar/internal/domain/lifecycle"
	"gasradar/internal/usecase"

	"go.uber.org/fx"
)

// Params holds dependencies for the scheduler, injected by Fx.
type Params struct {
	fx.In

	Lc             fx.Lifecycle
	Cfg            *config.Config
	Logger         *slog.Logger
	StationSyncUC  usecase.StationSyncUsecase
	PriceHistoryUC usecase.PriceHistoryUsecase
	LowPriceUC     usecase.LowPriceUsecase
}

type scheduler struct {
	logger      *slog.Logger
	controllers []*job.Controller
	done        chan struct{}
	closeOnce   sync.Once
}

// NewScheduler builds one controller per enabled job and stops them on shutdown.
func NewScheduler(params Params) (delivery.Delivery, error) {
	s := newScheduler(params.Logger, buildControllers(params))

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func newScheduler(logger *slog.Logger, controllers []*job.Controller) *scheduler {
	return &scheduler{
		logger:      logger,
		controllers: controllers,
		done:        make(chan struct{}),
	}
}

func buildControllers(params Params) []*job.Controller {
	jobs := params.Cfg.Jobs
	var controllers []*job.Controller

	if jobs.Sync.Enabled {
		controllers = append(controllers, job.NewController(constants.JobStationSync, jobs.Sync.Interval,
			func(ctx context.Context) (any, error) { return params.StationSyncUC.SyncStations(ctx) },
			params.Logger,
		))
	}
	if jobs.PriceHistory.Enabled {
		controllers = append(controllers, job.NewController(constants.JobPriceHistory, jobs.PriceHistory.Interval,
			func(ctx context.Context) (any, error) { return params.PriceHistoryUC.RecordPrices(ctx) },
			params.Logger,
		))
	}
	if jobs.LowPrice.Enabled {
		controllers = append(controllers, job.NewController(constants.JobLowPriceAlert, jobs.LowPrice.Interval,
			func(ctx context.Context) (any, error) { return params.LowPriceUC.NotifyLowPrices(ctx) },
			params.Logger,
		))
	}

	return controllers
}

// Serve starts every controller and blocks until shutdown.
func (s *scheduler) Serve(ctx context.Context) error {
	if len(s.controllers) == 0 {
		s.logger.Info("[Scheduler] no jobs enabled")

		return nil
	}

	for _, c := range s.controllers {
		c.Start(ctx)
	}

	<-s.done

	return nil
}

// stop cancels future ticks, then waits for running cycles up to the shutdown timeout.
func (s *scheduler) stop(ctx context.Context) error {
	s.closeOnce.Do(func() { close(s.done) })

	for _, c := range s.controllers {
		c.Stop()
	}

	waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	for _, c := range s.controllers {
		if err := c.Wait(waitCtx); err != nil {
			s.logger.Warn("[Scheduler] job still running at shutdown",
				slog.String("job", c.Name()),
				slog.Any("error", err),
			)
		}
	}

	return nil
}
