package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"gasradar/config"
	"gasradar/internal/domain/constants"
	"gasradar/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalPublisher_PublishPriceAlert(t *testing.T) {
	t.Parallel()

	var received PushEnvelope
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := newLocalPublisher(server.URL, discardLogger())
	event := &service.PriceAlertEvent{
		RequestID:      "req-1",
		NotificationID: "n-1",
		UserID:         "u-1",
		StationID:      "s-1",
		IDEESS:         "4375",
		FuelType:       "diesel",
		CurrentPrice:   1.399,
		AveragePrice:   1.489,
	}

	require.NoError(t, publisher.PublishPriceAlert(context.Background(), event))

	assert.Equal(t, "n-1", received.Message.MessageID)
	assert.Equal(t, constants.EventTypePriceAlert, received.Message.Attributes[constants.AttrEventType])
	assert.Equal(t, "req-1", received.Message.Attributes[constants.AttrRequestID])
	assert.Equal(t, "4375", received.Message.Attributes["id_eess"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.PriceAlertEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalPublisher_RetriesUnavailableWorker(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := newLocalPublisher(server.URL, discardLogger())
	publisher.backoff = 0

	require.NoError(t, publisher.PublishPriceAlert(context.Background(), &service.PriceAlertEvent{NotificationID: "n-1"}))
	assert.Equal(t, int32(3), calls.Load())
}

func TestLocalPublisher_WorkerFailure(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := newLocalPublisher(server.URL, discardLogger())
	err := publisher.PublishPriceAlert(context.Background(), &service.PriceAlertEvent{NotificationID: "n-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Equal(t, int32(1), calls.Load())
}

func TestNewAlertMessage_RequiresNotificationID(t *testing.T) {
	t.Parallel()

	_, err := newAlertMessage(&service.PriceAlertEvent{UserID: "u-1"})
	assert.Error(t, err)
}

func TestNewPublisher(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
		noop    bool
	}{
		{name: "not configured", cfg: nil, noop: true},
		{name: "empty provider", cfg: &config.PubSubConfig{}, noop: true},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: true},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			publisher, err := newPublisher(context.Background(), tt.cfg, discardLogger())
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			_, isNoop := publisher.(*noopPublisher)
			assert.Equal(t, tt.noop, isNoop)
		})
	}
}
