package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gasradar/config"
	deliverycontext "gasradar/internal/delivery/context"
	"gasradar/internal/domain/entity"
	"gasradar/internal/domain/repository"
	"gasradar/internal/domain/service"
	"gasradar/internal/errors"
	"gasradar/internal/usecase"
	"gasradar/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	lowPriceTitle           = "⛽ ¡Precio bajo detectado!"
	defaultLowPricePageSize = 200
)

// builtinThresholds apply when the config names no threshold for a fuel type.
var builtinThresholds = map[entity.FuelType]float64{
	entity.FuelDiesel:               0.05,
	entity.FuelDieselPremium:        0.05,
	entity.FuelPetrol95:             0.05,
	entity.FuelPetrol95E10:          0.05,
	entity.FuelPetrol98:             0.06,
	entity.FuelPetrol95E5Premium:    0.06,
	entity.FuelPetrol98E10:          0.06,
	entity.FuelGPL:                  0.03,
	entity.FuelBiodiesel:            0.04,
	entity.FuelBioethanol:           0.04,
	entity.FuelGasNaturalLicuado:    0.08,
	entity.FuelGasNaturalComprimido: 0.08,
	entity.FuelHydrogen:             0.20,
}

type lowPriceService struct {
	userRepo         repository.UserRepository
	vehicleRepo      repository.VehicleRepository
	stationRepo      repository.StationRepository
	historyRepo      repository.PriceHistoryRepository
	notificationRepo repository.NotificationRepository
	publisher        service.EventPublisher
	cfg              config.LowPriceConfig
	logger           *slog.Logger
	now              func() time.Time
}

// LowPriceServiceParams holds dependencies for LowPriceService, injected by Fx.
type LowPriceServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	VehicleRepo      repository.VehicleRepository
	StationRepo      repository.StationRepository
	HistoryRepo      repository.PriceHistoryRepository
	NotificationRepo repository.NotificationRepository
	Publisher        service.EventPublisher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewLowPriceService creates the low-price notifier
func NewLowPriceService(params LowPriceServiceParams) usecase.LowPriceUsecase {
	cfg := params.Config.Jobs.LowPrice
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultLowPricePageSize
	}

	return &lowPriceService{
		userRepo:         params.UserRepo,
		vehicleRepo:      params.VehicleRepo,
		stationRepo:      params.StationRepo,
		historyRepo:      params.HistoryRepo,
		notificationRepo: params.NotificationRepo,
		publisher:        params.Publisher,
		cfg:              cfg,
		logger:           params.Logger,
		now:              time.Now,
	}
}

// lowPriceAlert is one triggering fuel type at one station.
type lowPriceAlert struct {
	fuelType entity.FuelType
	current  decimal.Decimal
	average  decimal.Decimal
}

// NotifyLowPrices scans every user's saved stations and alerts on significant drops
func (s *lowPriceService) NotifyLowPrices(ctx context.Context) (*usecase.LowPriceReport, error) {
	logger := deliverycontext.Logger(ctx, s.logger)
	started := s.now()
	report := &usecase.LowPriceReport{}

	for offset := 0; ; offset += s.cfg.PageSize {
		if err := ctx.Err(); err != nil {
			return report, errors.WithStack(err)
		}

		users, err := s.userRepo.ListUsersWithSavedStations(ctx, offset, s.cfg.PageSize)
		if err != nil {
			return report, errors.Wrap(err, "list users with saved stations")
		}

		for _, user := range users {
			report.Users++
			s.scanUser(ctx, logger, user, report)
		}

		if len(users) < s.cfg.PageSize {
			break
		}
	}

	report.Duration = s.now().Sub(started)

	logger.Info("[Notify] Low-price scan completed",
		slog.Int("users", report.Users),
		slog.Int("stations", report.Stations),
		slog.Int("sent", report.Sent),
		slog.Int("inbox_only", report.InboxOnly),
		slog.Int("suppressed", report.Suppressed),
		slog.Int("failed", report.Failed),
		slog.String("duration", util.FormatDuration(report.Duration)),
	)

	return report, nil
}

func (s *lowPriceService) scanUser(ctx context.Context, logger *slog.Logger, user *entity.UserWithStations, report *usecase.LowPriceReport) {
	userLogger := logger.With(slog.String("user_id", user.User.ID.String()))

	vehicles, err := s.vehicleRepo.ListByUser(ctx, user.User.ID)
	if err != nil {
		report.Failed++
		userLogger.Warn("[Notify] Failed to load vehicles", slog.Any("error", err))

		return
	}
	fuelTypes := entity.FuelPreferences(vehicles)

	stations, err := s.stationRepo.FindByIDs(ctx, user.StationIDs)
	if err != nil {
		report.Failed++
		userLogger.Warn("[Notify] Failed to load saved stations", slog.Any("error", err))

		return
	}
	stationByID := make(map[uuid.UUID]*entity.Station, len(stations))
	for _, station := range stations {
		stationByID[station.ID] = station
	}

	for _, stationID := range user.StationIDs {
		station, ok := stationByID[stationID]
		if !ok {
			continue
		}
		report.Stations++

		if err := s.scanStation(ctx, user.User, station, fuelTypes, report); err != nil {
			report.Failed++
			userLogger.Warn("[Notify] Failed to evaluate station",
				slog.String("id_eess", station.IDEESS),
				slog.Any("error", err),
			)
		}
	}
}

func (s *lowPriceService) scanStation(ctx context.Context, user *entity.User, station *entity.Station, fuelTypes []entity.FuelType, report *usecase.LowPriceReport) error {
	entries, err := s.historyRepo.Recent(ctx, station.ID, entity.HistoryRange{
		Limit: s.cfg.HistoryLimit,
		Order: entity.NewestFirst,
	})
	if err != nil {
		return errors.Wrap(err, "read price history")
	}
	if len(entries) < s.cfg.MinHistoryEntries {
		return nil
	}

	now := s.now()
	alert, ok := s.findAlert(entries, fuelTypes, now.Add(-s.cfg.AverageWindow))
	if !ok {
		return nil
	}

	exists, err := s.notificationRepo.ExistsForStationSince(ctx, user.ID, station.ID, now.Add(-s.cfg.DedupeWindow))
	if err != nil {
		return errors.Wrap(err, "check recent notifications")
	}
	if exists {
		report.Suppressed++

		return nil
	}

	stationID := station.ID
	notification := &entity.Notification{
		ID:        uuid.New(),
		UserID:    user.ID,
		StationID: &stationID,
		Title:     lowPriceTitle,
		Message:   lowPriceMessage(station, alert),
		Type:      entity.NotificationInfo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return errors.Wrap(err, "create notification")
	}

	// Users who turned notifications off still get the inbox entry, just no push.
	if !user.NotificationsEnabled {
		report.InboxOnly++

		return nil
	}

	// The stored notification keeps the dedupe window even when publishing fails.
	event := &service.PriceAlertEvent{
		RequestID:      deliverycontext.RequestIDFromContext(ctx),
		NotificationID: notification.ID.String(),
		UserID:         user.ID.String(),
		StationID:      station.ID.String(),
		IDEESS:         station.IDEESS,
		FuelType:       string(alert.fuelType),
		CurrentPrice:   alert.current.InexactFloat64(),
		AveragePrice:   alert.average.InexactFloat64(),
		Title:          notification.Title,
		Body:           notification.Message,
	}
	if err := s.publisher.PublishPriceAlert(ctx, event); err != nil {
		s.logger.Error("[Notify] Failed to publish price alert",
			slog.String("notification_id", event.NotificationID),
			slog.Any("error", err),
		)
	}

	report.Sent++

	return nil
}

// findAlert returns the first preferred fuel type whose current price is significantly below its average.
func (s *lowPriceService) findAlert(entries []*entity.PriceHistoryEntry, fuelTypes []entity.FuelType, windowStart time.Time) (*lowPriceAlert, bool) {
	newest := entries[0]

	for _, fuelType := range fuelTypes {
		currentPrice := newest.Prices.Get(fuelType)
		if currentPrice == nil || *currentPrice <= 0 {
			continue
		}

		average, ok := averagePrice(entries, fuelType, windowStart)
		if !ok {
			continue
		}

		current := decimal.NewFromFloat(*currentPrice)
		if isSignificantlyLower(current, average, s.threshold(fuelType)) {
			return &lowPriceAlert{fuelType: fuelType, current: current, average: average}, true
		}
	}

	return nil, false
}

func (s *lowPriceService) threshold(fuelType entity.FuelType) decimal.Decimal {
	if thr, ok := s.cfg.Thresholds[string(fuelType)]; ok {
		return decimal.NewFromFloat(thr)
	}
	if thr, ok := builtinThresholds[fuelType]; ok {
		return decimal.NewFromFloat(thr)
	}

	return decimal.NewFromFloat(s.cfg.DefaultThreshold)
}

// averagePrice averages the positive prices of entries created at or after windowStart.
func averagePrice(entries []*entity.PriceHistoryEntry, fuelType entity.FuelType, windowStart time.Time) (decimal.Decimal, bool) {
	sum := decimal.Zero
	count := 0
	for _, entry := range entries {
		if entry.CreatedAt.Before(windowStart) {
			continue
		}
		price := entry.Prices.Get(fuelType)
		if price == nil || *price <= 0 {
			continue
		}
		sum = sum.Add(decimal.NewFromFloat(*price))
		count++
	}

	if count == 0 {
		return decimal.Zero, false
	}

	return sum.Div(decimal.NewFromInt(int64(count))), true
}

// isSignificantlyLower reports whether the drop strictly exceeds the threshold.
func isSignificantlyLower(current, average, threshold decimal.Decimal) bool {
	return average.Sub(current).GreaterThan(threshold)
}

func lowPriceMessage(station *entity.Station, alert *lowPriceAlert) string {
	return fmt.Sprintf("%s en %s (%s) está a %s. ¡Ahorras %s!",
		alert.fuelType.DisplayName(),
		station.Brand,
		station.Address,
		formatPrice(alert.current),
		formatPrice(alert.average.Sub(alert.current)),
	)
}

func formatPrice(price decimal.Decimal) string {
	return price.StringFixed(3) + "€/L"
}
