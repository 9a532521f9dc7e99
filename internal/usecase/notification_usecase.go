package usecase

import (
	"context"

	"gasradar/internal/domain/entity"
	"gasradar/internal/domain/service"

	"github.com/google/uuid"
)

// NotificationPage is one page of a user's inbox.
type NotificationPage struct {
	Items    []*entity.Notification `json:"items"`
	Total    int64                  `json:"total"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"page_size"`
}

// PushReport summarizes one push delivery.
type PushReport struct {
	Devices       int `json:"devices"`
	Sent          int `json:"sent"`
	Failed        int `json:"failed"`
	InvalidTokens int `json:"invalid_tokens"`
}

// NotificationUsecase reads and updates a user's inbox.
type NotificationUsecase interface {
	ListNotifications(ctx context.Context, userID uuid.UUID, page, pageSize int) (*NotificationPage, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
}

// PushDeliveryUsecase sends a published alert to the user's devices.
type PushDeliveryUsecase interface {
	// DeliverPriceAlert pushes the alert to every active device of the user. Store failures are
	// returned so the transport can retry; per-device send failures are only logged.
	DeliverPriceAlert(ctx context.Context, event *service.PriceAlertEvent) (*PushReport, error)
}
