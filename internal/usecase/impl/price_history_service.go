package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "gasradar/internal/delivery/context"
	"gasradar/internal/domain/entity"
	domainerrors "gasradar/internal/domain/errors"
	"gasradar/internal/domain/repository"
	"gasradar/internal/domain/service"
	"gasradar/internal/errors"
	"gasradar/internal/usecase"
	"gasradar/internal/util"

	"go.uber.org/fx"
)

const (
	defaultHistoryDays = 30
	maxHistoryDays     = 365
)

type priceHistoryService struct {
	feedClient  service.FeedClient
	converter   service.StationConverter
	stationRepo repository.StationRepository
	historyRepo repository.PriceHistoryRepository
	queryCache  service.QueryCache
	logger      *slog.Logger
	now         func() time.Time
}

// PriceHistoryServiceParams holds dependencies for PriceHistoryService, injected by Fx.
type PriceHistoryServiceParams struct {
	fx.In

	FeedClient  service.FeedClient
	Converter   service.StationConverter
	StationRepo repository.StationRepository
	HistoryRepo repository.PriceHistoryRepository
	QueryCache  service.QueryCache
	Logger      *slog.Logger
}

// NewPriceHistoryService creates the price recorder and history reader
func NewPriceHistoryService(params PriceHistoryServiceParams) usecase.PriceHistoryUsecase {
	return &priceHistoryService{
		feedClient:  params.FeedClient,
		converter:   params.Converter,
		stationRepo: params.StationRepo,
		historyRepo: params.HistoryRepo,
		queryCache:  params.QueryCache,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// RecordPrices appends the feed prices of every known station that changed since the last entry
func (s *priceHistoryService) RecordPrices(ctx context.Context) (*usecase.RecordReport, error) {
	logger := deliverycontext.Logger(ctx, s.logger)
	started := s.now()

	snapshot, err := s.feedClient.FetchSnapshot(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetch feed snapshot")
	}

	byIDEESS := make(map[string]*entity.StationRecord, len(snapshot.Records))
	for _, raw := range snapshot.Records {
		record := s.converter.Convert(raw)
		if record == nil || record.IDEESS == "" {
			continue
		}
		byIDEESS[record.IDEESS] = record
	}

	stations, err := s.stationRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list stations")
	}

	report := &usecase.RecordReport{
		FeedDate: snapshot.Date,
		Stations: len(stations),
	}

	for _, station := range stations {
		if err := ctx.Err(); err != nil {
			return report, errors.WithStack(err)
		}

		record, ok := byIDEESS[station.IDEESS]
		if !ok {
			report.Missing++
			logger.Debug("[Record] Station missing from feed",
				slog.String("id_eess", station.IDEESS),
				slog.Any("reason", domainerrors.ErrConversionSkipped),
			)

			continue
		}

		created, err := s.historyRepo.AppendIfChanged(ctx, station.ID, record.Prices)
		if err != nil {
			report.Failed++
			logger.Warn("[Record] Failed to append price history",
				slog.String("id_eess", station.IDEESS),
				slog.Any("error", err),
			)

			continue
		}

		if created {
			report.Created++
		} else {
			report.Unchanged++
		}
	}

	if report.Created > 0 {
		s.queryCache.Flush()
	}

	report.Duration = s.now().Sub(started)

	logger.Info("[Record] Price recording completed",
		slog.String("feed_date", report.FeedDate),
		slog.Int("stations", report.Stations),
		slog.Int("created", report.Created),
		slog.Int("unchanged", report.Unchanged),
		slog.Int("missing", report.Missing),
		slog.Int("failed", report.Failed),
		slog.String("duration", util.FormatDuration(report.Duration)),
	)

	return report, nil
}

// GetStationHistory returns the station's entries of the last days, oldest first
func (s *priceHistoryService) GetStationHistory(ctx context.Context, idEESS string, days int) ([]*entity.PriceHistoryEntry, error) {
	if days == 0 {
		days = defaultHistoryDays
	}
	if days < 0 || days > maxHistoryDays {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("days must be between 1 and 365")
	}

	station, err := s.stationRepo.FindByExternalID(ctx, idEESS)
	if err != nil {
		return nil, err
	}

	entries, err := s.historyRepo.Recent(ctx, station.ID, entity.HistoryRange{
		Since: s.now().AddDate(0, 0, -days),
		Order: entity.OldestFirst,
	})
	if err != nil {
		return nil, errors.Wrap(err, "read price history")
	}

	return entries, nil
}
