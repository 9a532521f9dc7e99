package service

import (
	"context"
)

// PriceAlertEvent asks the push worker to deliver a low-price alert to a user's devices.
type PriceAlertEvent struct {
	RequestID      string  `json:"request_id,omitempty"` // For distributed tracing
	NotificationID string  `json:"notification_id"`      // Inbox notification already persisted for the alert.
	UserID         string  `json:"user_id"`
	StationID      string  `json:"station_id"`
	IDEESS         string  `json:"id_eess"`
	FuelType       string  `json:"fuel_type"`
	CurrentPrice   float64 `json:"current_price"`
	AveragePrice   float64 `json:"average_price"`
	Title          string  `json:"title"`
	Body           string  `json:"body"`
}

// EventPublisher is the notification sink: it hands alerts to the push transport.
type EventPublisher interface {
	// PublishPriceAlert publishes a price alert for async delivery
	PublishPriceAlert(ctx context.Context, event *PriceAlertEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
