// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"gasradar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrDeviceNotFound = errors.New("device not found")
	// ErrTokenInUse is returned when the push token is registered to another live device.
	ErrTokenInUse = errors.New("push token already registered")
)

// DeviceRepository stores the push targets of price alerts.
type DeviceRepository interface {
	// Upsert inserts the device, or refreshes token, platform and active flag of the user's
	// live device with the same DeviceID. It returns the stored row.
	Upsert(ctx context.Context, device *entity.UserDevice) (*entity.UserDevice, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// ListActiveByUser returns the devices alerts are sent to, newest first.
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	UpdateToken(ctx context.Context, id uuid.UUID, fcmToken string) error

	// Deactivate stops alerts to the device and keeps the row.
	Deactivate(ctx context.Context, id uuid.UUID) error

	// Purge removes a device whose token FCM reported as unregistered.
	Purge(ctx context.Context, id uuid.UUID) error
}
