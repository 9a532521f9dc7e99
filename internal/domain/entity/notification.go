package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies an inbox notification.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
)

// Notification is a message stored in a user's inbox.
type Notification struct {
	ID        uuid.UUID        `json:"id"`         // The Global Unique Identifier (GUID) for the notification.
	UserID    uuid.UUID        `json:"user_id"`    // Recipient.
	StationID *uuid.UUID       `json:"station_id"` // Station the notification refers to, if any. Used for deduplication.
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// NotificationLog records one push attempt to one device.
type NotificationLog struct {
	ID             uuid.UUID `json:"id"`              // The Global Unique Identifier (GUID) for the log entry.
	NotificationID uuid.UUID `json:"notification_id"` // The notification this attempt delivered.
	UserID         uuid.UUID `json:"user_id"`         // The user who owns the device.
	DeviceID       uuid.UUID `json:"device_id"`       // The device targeted.
	Status         string    `json:"status"`          // sent or failed.
	ErrorMessage   string    `json:"error_message"`   // Error message if the push failed.
	SentAt         time.Time `json:"sent_at"`
}
