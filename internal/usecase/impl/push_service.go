package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	deliverycontext "gasradar/internal/delivery/context"
	"gasradar/internal/domain/entity"
	domainerrors "gasradar/internal/domain/errors"
	"gasradar/internal/domain/repository"
	"gasradar/internal/domain/service"
	"gasradar/internal/errors"
	"gasradar/internal/usecase"
	"gasradar/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	// Alerts older than one notifier cycle are stale.
	alertTTL = 2 * time.Hour

	logStatusSent   = "sent"
	logStatusFailed = "failed"
)

type pushService struct {
	deviceRepo       repository.DeviceRepository
	notificationRepo repository.NotificationRepository
	notificationSvc  service.NotificationService
	logger           *slog.Logger
	now              func() time.Time
}

// PushServiceParams holds dependencies for PushService, injected by Fx.
type PushServiceParams struct {
	fx.In

	DeviceRepo       repository.DeviceRepository
	NotificationRepo repository.NotificationRepository
	NotificationSvc  service.NotificationService
	Logger           *slog.Logger
}

// NewPushService creates the push delivery use case used by the worker
func NewPushService(params PushServiceParams) usecase.PushDeliveryUsecase {
	return &pushService{
		deviceRepo:       params.DeviceRepo,
		notificationRepo: params.NotificationRepo,
		notificationSvc:  params.NotificationSvc,
		logger:           params.Logger,
		now:              time.Now,
	}
}

// DeliverPriceAlert pushes the alert to every active device of the user
func (s *pushService) DeliverPriceAlert(ctx context.Context, event *service.PriceAlertEvent) (*usecase.PushReport, error) {
	logger := deliverycontext.Logger(ctx, s.logger)

	notificationID, err := uuid.Parse(event.NotificationID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithCause(errors.Wrap(err, "notification_id"))
	}
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithCause(errors.Wrap(err, "user_id"))
	}

	devices, err := s.deviceRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.ErrStoreUnavailable.WithCause(err)
	}

	report := &usecase.PushReport{Devices: len(devices)}
	if len(devices) == 0 {
		logger.Info("[Worker] No devices found for user",
			slog.String("notification_id", event.NotificationID),
		)

		return report, nil
	}

	deviceMap := make(map[string]*entity.UserDevice, len(devices))
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		deviceMap[device.FCMToken] = device
		tokens = append(tokens, device.FCMToken)
	}

	notificationLogs, invalidTokens := s.sendBatches(ctx, logger, tokens, deviceMap, event, notificationID, report)
	report.InvalidTokens = len(invalidTokens)

	for _, token := range invalidTokens {
		device, ok := deviceMap[token]
		if !ok {
			continue
		}
		if err := s.deviceRepo.Purge(ctx, device.ID); err != nil {
			logger.Warn("[Worker] Failed to purge unregistered device",
				slog.String("device_id", device.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	if len(notificationLogs) > 0 {
		if err := s.notificationRepo.BatchCreateLogs(ctx, notificationLogs); err != nil {
			logger.Error("[Worker] Failed to create notification logs", slog.Any("error", err))
		}
	}

	logger.Info("[Worker] Price alert delivered",
		slog.String("notification_id", event.NotificationID),
		slog.Int("devices", report.Devices),
		slog.Int("total_sent", report.Sent),
		slog.Int("total_failed", report.Failed),
		slog.Int("invalid_tokens", report.InvalidTokens),
	)

	return report, nil
}

// sendBatches fans the alert out in multicast-sized batches and records one log per device.
// It returns the tokens the provider reported as unregistered.
func (s *pushService) sendBatches(
	ctx context.Context,
	logger *slog.Logger,
	tokens []string,
	deviceMap map[string]*entity.UserDevice,
	event *service.PriceAlertEvent,
	notificationID uuid.UUID,
	report *usecase.PushReport,
) ([]*entity.NotificationLog, []string) {
	msg := &service.PushMessage{
		Title: event.Title,
		Body:  event.Body,
		Data: map[string]string{
			"notification_id": event.NotificationID,
			"station_id":      event.StationID,
			"id_eess":         event.IDEESS,
			"fuel_type":       event.FuelType,
			"current_price":   util.PriceString(event.CurrentPrice),
			"average_price":   util.PriceString(event.AveragePrice),
		},
		TTL: alertTTL,
	}

	var (
		notificationLogs []*entity.NotificationLog
		invalidTokens    []string
	)

	for batch := range slices.Chunk(tokens, service.MaxMulticastTokens) {
		outcomes, sendErr := s.notificationSvc.Multicast(ctx, batch, msg)
		if sendErr != nil {
			logger.Error("[Worker] Failed to send batch",
				slog.Int("batch_size", len(batch)),
				slog.Any("error", sendErr),
			)
			outcomes = make([]service.PushOutcome, len(batch))
			for i, token := range batch {
				outcomes[i] = service.PushOutcome{Token: token, Err: sendErr}
			}
		}

		for _, outcome := range outcomes {
			device, ok := deviceMap[outcome.Token]
			if !ok {
				continue
			}

			status, errorMsg := logStatusSent, ""
			if outcome.Err != nil {
				status, errorMsg = logStatusFailed, outcome.Err.Error()
				report.Failed++
			} else {
				report.Sent++
			}
			if outcome.Unregistered {
				invalidTokens = append(invalidTokens, outcome.Token)
			}

			notificationLogs = append(notificationLogs, &entity.NotificationLog{
				ID:             uuid.New(),
				NotificationID: notificationID,
				UserID:         device.UserID,
				DeviceID:       device.ID,
				Status:         status,
				ErrorMessage:   errorMsg,
				SentAt:         s.now(),
			})
		}
	}

	return notificationLogs, invalidTokens
}
