package impl

import (
	"context"
	"testing"
	"time"

	"gasradar/internal/domain/entity"
	domainerrors "gasradar/internal/domain/errors"
	"gasradar/internal/domain/service"
	mockRepo "gasradar/internal/mocks/repository"
	mockSvc "gasradar/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pushFixtures struct {
	service          *pushService
	deviceRepo       *mockRepo.MockDeviceRepository
	notificationRepo *mockRepo.MockNotificationRepository
	notificationSvc  *mockSvc.MockNotificationService
}

func createTestPushService(t *testing.T) pushFixtures {
	fx := pushFixtures{
		deviceRepo:       mockRepo.NewMockDeviceRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		notificationSvc:  mockSvc.NewMockNotificationService(t),
	}

	fx.service = NewPushService(PushServiceParams{
		DeviceRepo:       fx.deviceRepo,
		NotificationRepo: fx.notificationRepo,
		NotificationSvc:  fx.notificationSvc,
		Logger:           discardLogger(),
	}).(*pushService)
	fx.service.now = fixedClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

	return fx
}

func priceAlert(userID uuid.UUID) *service.PriceAlertEvent {
	return &service.PriceAlertEvent{
		NotificationID: uuid.NewString(),
		UserID:         userID.String(),
		StationID:      uuid.NewString(),
		IDEESS:         "1001",
		FuelType:       "diesel",
		CurrentPrice:   1.389,
		AveragePrice:   1.459,
		Title:          lowPriceTitle,
		Body:           "Diésel en REPSOL",
	}
}

func userDevice(userID uuid.UUID, token string) *entity.UserDevice {
	return &entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: token, IsActive: true}
}

func TestPushService_DeliverPriceAlert(t *testing.T) {
	fx := createTestPushService(t)
	ctx := context.Background()
	userID := uuid.New()
	event := priceAlert(userID)
	good := userDevice(userID, "token-good")
	stale := userDevice(userID, "token-stale")

	fx.deviceRepo.EXPECT().ListActiveByUser(ctx, userID).Return([]*entity.UserDevice{good, stale}, nil)
	fx.notificationSvc.EXPECT().Multicast(ctx, []string{"token-good", "token-stale"},
		mock.MatchedBy(func(msg *service.PushMessage) bool {
			return msg.Title == event.Title && msg.TTL == alertTTL &&
				msg.Data["id_eess"] == "1001" && msg.Data["current_price"] == "1.389" && msg.Data["average_price"] == "1.459"
		})).Return([]service.PushOutcome{
		{Token: "token-good"},
		{Token: "token-stale", Err: errors.New("registration-token-not-registered"), Unregistered: true},
	}, nil)
	fx.deviceRepo.EXPECT().Purge(ctx, stale.ID).Return(nil)
	fx.notificationRepo.EXPECT().BatchCreateLogs(ctx, mock.MatchedBy(func(logs []*entity.NotificationLog) bool {
		return len(logs) == 2 && logs[0].Status == logStatusSent && logs[1].Status == logStatusFailed
	})).Return(nil)

	report, err := fx.service.DeliverPriceAlert(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Devices)
	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.InvalidTokens)
}

func TestPushService_DeliverPriceAlert_NoDevices(t *testing.T) {
	fx := createTestPushService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().ListActiveByUser(ctx, userID).Return(nil, nil)

	report, err := fx.service.DeliverPriceAlert(ctx, priceAlert(userID))
	require.NoError(t, err)
	assert.Equal(t, 0, report.Devices)
	fx.notificationSvc.AssertNotCalled(t, "Multicast", mock.Anything, mock.Anything, mock.Anything)
}

func TestPushService_DeliverPriceAlert_BatchError(t *testing.T) {
	fx := createTestPushService(t)
	ctx := context.Background()
	userID := uuid.New()
	device := userDevice(userID, "token-a")

	fx.deviceRepo.EXPECT().ListActiveByUser(ctx, userID).Return([]*entity.UserDevice{device}, nil)
	fx.notificationSvc.EXPECT().Multicast(ctx, mock.Anything, mock.Anything).
		Return(nil, errors.New("fcm unavailable"))
	fx.notificationRepo.EXPECT().BatchCreateLogs(ctx, mock.MatchedBy(func(logs []*entity.NotificationLog) bool {
		return len(logs) == 1 && logs[0].Status == logStatusFailed && logs[0].DeviceID == device.ID
	})).Return(nil)

	report, err := fx.service.DeliverPriceAlert(ctx, priceAlert(userID))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 0, report.Sent)
}

func TestPushService_DeliverPriceAlert_TransientFailureKeepsDevice(t *testing.T) {
	fx := createTestPushService(t)
	ctx := context.Background()
	userID := uuid.New()
	device := userDevice(userID, "token-a")

	fx.deviceRepo.EXPECT().ListActiveByUser(ctx, userID).Return([]*entity.UserDevice{device}, nil)
	fx.notificationSvc.EXPECT().Multicast(ctx, mock.Anything, mock.Anything).
		Return([]service.PushOutcome{{Token: "token-a", Err: errors.New("quota exceeded")}}, nil)
	fx.notificationRepo.EXPECT().BatchCreateLogs(ctx, mock.MatchedBy(func(logs []*entity.NotificationLog) bool {
		return len(logs) == 1 && logs[0].ErrorMessage == "quota exceeded"
	})).Return(nil)

	report, err := fx.service.DeliverPriceAlert(ctx, priceAlert(userID))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 0, report.InvalidTokens)
	fx.deviceRepo.AssertNotCalled(t, "Purge", mock.Anything, mock.Anything)
}

func TestPushService_DeliverPriceAlert_Errors(t *testing.T) {
	t.Run("malformed notification id", func(t *testing.T) {
		fx := createTestPushService(t)
		event := priceAlert(uuid.New())
		event.NotificationID = "not-a-uuid"

		_, err := fx.service.DeliverPriceAlert(context.Background(), event)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("device lookup failure is retryable", func(t *testing.T) {
		fx := createTestPushService(t)
		ctx := context.Background()
		userID := uuid.New()
		fx.deviceRepo.EXPECT().ListActiveByUser(ctx, userID).Return(nil, errors.New("too many connections"))

		_, err := fx.service.DeliverPriceAlert(ctx, priceAlert(userID))
		assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
	})
}
