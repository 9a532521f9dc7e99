package impl

import (
	"context"
	"testing"

	"gasradar/internal/domain/entity"
	domainerrors "gasradar/internal/domain/errors"
	"gasradar/internal/domain/repository"
	mockRepo "gasradar/internal/mocks/repository"
	"gasradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	return deviceServiceFixtures{
		service:    NewDeviceService(deviceRepo),
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		info      *usecase.DeviceInfo
		setupMock func(fx deviceServiceFixtures, ctx context.Context)
		wantErr   error
		errMsg    string
	}{
		{
			name: "registers an active device",
			info: &usecase.DeviceInfo{FCMToken: "token-1", DeviceID: "iphone-15", Platform: "ios"},
			setupMock: func(fx deviceServiceFixtures, ctx context.Context) {
				fx.deviceRepo.EXPECT().
					Upsert(ctx, mock.MatchedBy(func(d *entity.UserDevice) bool {
						return d.UserID == userID && d.FCMToken == "token-1" &&
							d.Platform == entity.PlatformIOS && d.IsActive
					})).
					RunAndReturn(func(_ context.Context, d *entity.UserDevice) (*entity.UserDevice, error) {
						stored := *d
						stored.ID = uuid.New()

						return &stored, nil
					})
			},
		},
		{
			name:    "unsupported platform",
			info:    &usecase.DeviceInfo{FCMToken: "token-1", DeviceID: "pager", Platform: "blackberry"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "missing token",
			info:    &usecase.DeviceInfo{DeviceID: "pixel", Platform: "android"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name: "token owned by another device",
			info: &usecase.DeviceInfo{FCMToken: "shared", DeviceID: "pixel", Platform: "android"},
			setupMock: func(fx deviceServiceFixtures, ctx context.Context) {
				fx.deviceRepo.EXPECT().Upsert(ctx, mock.Anything).Return(nil, repository.ErrTokenInUse)
			},
			wantErr: domainerrors.ErrConflict,
		},
		{
			name: "storage failure",
			info: &usecase.DeviceInfo{FCMToken: "token-2", DeviceID: "browser", Platform: "web"},
			setupMock: func(fx deviceServiceFixtures, ctx context.Context) {
				fx.deviceRepo.EXPECT().Upsert(ctx, mock.Anything).Return(nil, errors.New("connection reset"))
			},
			errMsg: "failed to register device",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)
			ctx := context.Background()
			if tt.setupMock != nil {
				tt.setupMock(fx, ctx)
			}

			device, err := fx.service.RegisterDevice(ctx, userID, tt.info)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, device)
			case tt.errMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			default:
				require.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, device.ID)
				assert.Equal(t, entity.PlatformIOS, device.Platform)
			}
		})
	}
}

func TestDeviceService_UpdatePushToken(t *testing.T) {
	userID := uuid.New()
	deviceID := uuid.New()

	tests := []struct {
		name      string
		setupMock func(fx deviceServiceFixtures, ctx context.Context)
		wantErr   error
	}{
		{
			name: "success",
			setupMock: func(fx deviceServiceFixtures, ctx context.Context) {
				fx.deviceRepo.EXPECT().FindByID(ctx, deviceID).
					Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
				fx.deviceRepo.EXPECT().UpdateToken(ctx, deviceID, "new-token").Return(nil)
			},
		},
		{
			name: "device not found",
			setupMock: func(fx deviceServiceFixtures, ctx context.Context) {
				fx.deviceRepo.EXPECT().FindByID(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)
			},
			wantErr: domainerrors.ErrDeviceNotFound,
		},
		{
			name: "device of another user",
			setupMock: func(fx deviceServiceFixtures, ctx context.Context) {
				fx.deviceRepo.EXPECT().FindByID(ctx, deviceID).
					Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)
			},
			wantErr: domainerrors.ErrDeviceNotFound,
		},
		{
			name: "token in use",
			setupMock: func(fx deviceServiceFixtures, ctx context.Context) {
				fx.deviceRepo.EXPECT().FindByID(ctx, deviceID).
					Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
				fx.deviceRepo.EXPECT().UpdateToken(ctx, deviceID, "new-token").Return(repository.ErrTokenInUse)
			},
			wantErr: domainerrors.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)
			ctx := context.Background()
			tt.setupMock(fx, ctx)

			err := fx.service.UpdatePushToken(ctx, userID, deviceID, "new-token")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDeviceService_ListDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.UserDevice{
		{ID: uuid.New(), UserID: userID, Platform: entity.PlatformAndroid, IsActive: true},
		{ID: uuid.New(), UserID: userID, Platform: entity.PlatformWeb, IsActive: true},
	}

	fx.deviceRepo.EXPECT().ListActiveByUser(ctx, userID).Return(expected, nil)

	devices, err := fx.service.ListDevices(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, expected, devices)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	userID := uuid.New()
	deviceID := uuid.New()

	t.Run("deactivates", func(t *testing.T) {
		fx := createTestDeviceService(t)
		ctx := context.Background()

		fx.deviceRepo.EXPECT().FindByID(ctx, deviceID).
			Return(&entity.UserDevice{ID: deviceID, UserID: userID, IsActive: true}, nil)
		fx.deviceRepo.EXPECT().Deactivate(ctx, deviceID).Return(nil)

		require.NoError(t, fx.service.DeactivateDevice(ctx, userID, deviceID))
	})

	t.Run("storage failure", func(t *testing.T) {
		fx := createTestDeviceService(t)
		ctx := context.Background()

		fx.deviceRepo.EXPECT().FindByID(ctx, deviceID).
			Return(&entity.UserDevice{ID: deviceID, UserID: userID, IsActive: true}, nil)
		fx.deviceRepo.EXPECT().Deactivate(ctx, deviceID).Return(errors.New("database error"))

		err := fx.service.DeactivateDevice(ctx, userID, deviceID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to deactivate device")
	})
}
