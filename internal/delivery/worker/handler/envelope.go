package handler

import (
	"encoding/base64"
	"encoding/json"

	"gasradar/internal/domain/constants"
	"gasradar/internal/domain/service"
	"gasradar/internal/errors"
)

// PushRequest is the body Pub/Sub POSTs to a push subscription.
type PushRequest struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

func (r *PushRequest) attr(key string) string {
	return r.Message.Attributes[key]
}

// isPriceAlert treats untagged messages as alerts; older publishers set no event_type.
func (r *PushRequest) isPriceAlert() bool {
	eventType := r.attr(constants.AttrEventType)

	return eventType == "" || eventType == constants.EventTypePriceAlert
}

// decodeAlert unpacks the base64 JSON payload.
func (r *PushRequest) decodeAlert() (*service.PriceAlertEvent, error) {
	data, err := base64.StdEncoding.DecodeString(r.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "message data is not base64")
	}

	var event service.PriceAlertEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "message data is not a price alert")
	}

	return &event, nil
}
