package repository

import (
	"context"
	"time"

	"gasradar/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationRepository stores inbox notifications and push delivery logs.
type NotificationRepository interface {
	// Create persists a notification and fills its generated fields.
	Create(ctx context.Context, notification *entity.Notification) error

	// ExistsForStationSince reports whether the user already got a notification about the station after since.
	ExistsForStationSince(ctx context.Context, userID, stationID uuid.UUID, since time.Time) (bool, error)

	// ListByUser returns a page of the user's notifications, newest first, and the total count.
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.Notification, int64, error)

	// MarkRead flags a notification of the user as read or returns errors.ErrNotificationNotFound.
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error

	// BatchCreateLogs stores push delivery attempts.
	BatchCreateLogs(ctx context.Context, logs []*entity.NotificationLog) error
}
