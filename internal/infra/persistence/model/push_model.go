package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDeviceModel is one phone registered for pushes. Soft-deleted rows free
// both the (user_id, device_id) slot and the token, see uq_user_devices_fcm_token.
type UserDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	DeviceID  string    `gorm:"type:varchar(255);not null"`
	Platform  string    `gorm:"type:varchar(16);not null"`
	FCMToken  string    `gorm:"column:fcm_token;type:varchar(255);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (UserDeviceModel) TableName() string { return "user_devices" }

// NotificationModel is an inbox row. Price alerts carry StationID, which the
// notifier's dedupe window looks up through idx_notifications_user_station_created.
type NotificationModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null"`
	StationID *uuid.UUID `gorm:"type:uuid"`
	Title     string     `gorm:"type:text;not null"`
	Message   string     `gorm:"type:text;not null"`
	Type      string     `gorm:"type:varchar(16);not null;default:'info'"`
	Read      bool       `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (NotificationModel) TableName() string { return "notifications" }

// NotificationLogModel records one push attempt to one device.
type NotificationLogModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NotificationID uuid.UUID `gorm:"type:uuid;not null"`
	UserID         uuid.UUID `gorm:"type:uuid;not null"`
	DeviceID       uuid.UUID `gorm:"type:uuid;not null"`
	Status         string    `gorm:"type:text;not null"`
	ErrorMessage   string    `gorm:"type:text"`
	SentAt         time.Time `gorm:"autoCreateTime"`
}

func (NotificationLogModel) TableName() string { return "notification_logs" }
