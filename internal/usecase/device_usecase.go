package usecase

import (
	"context"

	"gasradar/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo is a client's push registration.
type DeviceInfo struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// DeviceUsecase manages where a user's price alerts are pushed.
type DeviceUsecase interface {
	// RegisterDevice stores the device, or refreshes the token of the same client device.
	RegisterDevice(ctx context.Context, userID uuid.UUID, info *DeviceInfo) (*entity.UserDevice, error)

	UpdatePushToken(ctx context.Context, userID, deviceID uuid.UUID, fcmToken string) error

	// ListDevices returns the devices that currently receive alerts.
	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateDevice turns alerts off for one device.
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
