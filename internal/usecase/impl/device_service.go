// Package impl implements the use cases on top of the domain repositories and services.
package impl

import (
	"context"
	"time"

	"gasradar/internal/domain/entity"
	domainerrors "gasradar/internal/domain/errors"
	"gasradar/internal/domain/repository"
	"gasradar/internal/errors"
	"gasradar/internal/usecase"

	"github.com/google/uuid"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	now        func() time.Time
}

// NewDeviceService creates the push target registry
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		now:        time.Now,
	}
}

func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, info *usecase.DeviceInfo) (*entity.UserDevice, error) {
	platform := entity.DevicePlatform(info.Platform)
	if !platform.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unsupported platform " + info.Platform)
	}
	if info.FCMToken == "" || info.DeviceID == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("push token and device id are required")
	}

	now := s.now()
	device, err := s.deviceRepo.Upsert(ctx, &entity.UserDevice{
		UserID:    userID,
		FCMToken:  info.FCMToken,
		DeviceID:  info.DeviceID,
		Platform:  platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		if errors.Is(err, repository.ErrTokenInUse) {
			return nil, domainerrors.ErrConflict.WrapMessage("push token is registered to another device")
		}

		return nil, errors.Wrap(err, "failed to register device")
	}

	return device, nil
}

// UpdatePushToken also reactivates the device.
func (s *deviceService) UpdatePushToken(ctx context.Context, userID, deviceID uuid.UUID, fcmToken string) error {
	if _, err := s.findOwnedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateToken(ctx, deviceID, fcmToken); err != nil {
		if errors.Is(err, repository.ErrTokenInUse) {
			return domainerrors.ErrConflict.WrapMessage("push token is registered to another device")
		}

		return errors.Wrap(err, "failed to update push token")
	}

	return nil
}

func (s *deviceService) ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	return devices, nil
}

func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if _, err := s.findOwnedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.Deactivate(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to deactivate device")
	}

	return nil
}

func (s *deviceService) findOwnedDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.UserDevice, error) {
	device, err := s.deviceRepo.FindByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	// Another user's device is reported as missing so ids cannot be probed.
	if device.UserID != userID {
		return nil, domainerrors.ErrDeviceNotFound
	}

	return device, nil
}
