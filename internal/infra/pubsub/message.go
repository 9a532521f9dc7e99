// Package pubsub hands price alerts to the push worker, through Google Pub/Sub
// in production or a direct HTTP push locally.
package pubsub

import (
	"encoding/json"

	"gasradar/internal/domain/constants"
	"gasradar/internal/domain/service"

	"github.com/pkg/errors"
)

// alertMessage is the transport-neutral form of a published alert.
type alertMessage struct {
	id         string
	data       []byte
	attributes map[string]string
}

// newAlertMessage encodes event as JSON. Attributes repeat the routing fields
// so subscriptions can filter without decoding the payload.
func newAlertMessage(event *service.PriceAlertEvent) (*alertMessage, error) {
	if event.NotificationID == "" {
		return nil, errors.New("price alert has no notification id")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode price alert")
	}

	attributes := map[string]string{
		constants.AttrEventType: constants.EventTypePriceAlert,
		"notification_id":       event.NotificationID,
		"user_id":               event.UserID,
		"station_id":            event.StationID,
		"id_eess":               event.IDEESS,
		"fuel_type":             event.FuelType,
	}
	if event.RequestID != "" {
		attributes[constants.AttrRequestID] = event.RequestID
	}

	return &alertMessage{
		id:         event.NotificationID,
		data:       data,
		attributes: attributes,
	}, nil
}
