package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "gasradar/internal/delivery/context"
	"gasradar/internal/domain/entity"
	"gasradar/internal/domain/repository"
	"gasradar/internal/domain/service"
	"gasradar/internal/errors"
	"gasradar/internal/usecase"
	"gasradar/internal/util"

	"go.uber.org/fx"
)

type stationSyncService struct {
	feedClient  service.FeedClient
	converter   service.StationConverter
	stationRepo repository.StationRepository
	queryCache  service.QueryCache
	logger      *slog.Logger
	now         func() time.Time
}

// StationSyncServiceParams holds dependencies for StationSyncService, injected by Fx.
type StationSyncServiceParams struct {
	fx.In

	FeedClient  service.FeedClient
	Converter   service.StationConverter
	StationRepo repository.StationRepository
	QueryCache  service.QueryCache
	Logger      *slog.Logger
}

// NewStationSyncService creates the feed-to-store reconciliation use case
func NewStationSyncService(params StationSyncServiceParams) usecase.StationSyncUsecase {
	return &stationSyncService{
		feedClient:  params.FeedClient,
		converter:   params.Converter,
		stationRepo: params.StationRepo,
		queryCache:  params.QueryCache,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// SyncStations fetches the feed and reconciles it into the station store
func (s *stationSyncService) SyncStations(ctx context.Context) (*usecase.SyncReport, error) {
	logger := deliverycontext.Logger(ctx, s.logger)
	started := s.now()

	snapshot, err := s.feedClient.FetchSnapshot(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetch feed snapshot")
	}

	report := &usecase.SyncReport{
		FeedDate: snapshot.Date,
		Total:    len(snapshot.Records),
	}

	for _, raw := range snapshot.Records {
		if err := ctx.Err(); err != nil {
			return report, errors.WithStack(err)
		}

		record := s.converter.Convert(raw)
		if record == nil || record.IDEESS == "" || !record.HasValidLocation() {
			report.Skipped++

			continue
		}

		outcome, err := s.stationRepo.Upsert(ctx, record)
		if err != nil {
			report.Failed++
			logger.Warn("[Sync] Failed to upsert station",
				slog.String("id_eess", record.IDEESS),
				slog.Any("error", err),
			)

			continue
		}

		switch outcome {
		case entity.UpsertCreated:
			report.Created++
		case entity.UpsertUpdated:
			report.Updated++
		default:
			report.Unchanged++
		}
	}

	if report.Created+report.Updated > 0 {
		s.queryCache.Flush()
	}

	report.Duration = s.now().Sub(started)

	logger.Info("[Sync] Station sync completed",
		slog.String("feed_date", report.FeedDate),
		slog.Int("total", report.Total),
		slog.Int("created", report.Created),
		slog.Int("updated", report.Updated),
		slog.Int("unchanged", report.Unchanged),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
		slog.String("duration", util.FormatDuration(report.Duration)),
	)

	return report, nil
}
