package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"gasradar/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localSubscription    = "projects/local/subscriptions/price-alerts"
	localMaxAttempts     = 3
	localRetryBackoff    = 500 * time.Millisecond
	localPublishDeadline = 30 * time.Second
)

// PushEnvelope is the body Pub/Sub posts to a push subscription.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// localPublisher posts alerts straight to the push worker and retries
// 503 answers the way a push subscription redelivers them.
type localPublisher struct {
	endpoint string
	client   *http.Client
	backoff  time.Duration
	logger   *slog.Logger
}

func newLocalPublisher(endpoint string, logger *slog.Logger) *localPublisher {
	return &localPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPublishDeadline},
		backoff:  localRetryBackoff,
		logger:   logger.With(slog.String("endpoint", endpoint)),
	}
}

func (p *localPublisher) PublishPriceAlert(ctx context.Context, event *service.PriceAlertEvent) error {
	msg, err := newAlertMessage(event)
	if err != nil {
		return err
	}

	var envelope PushEnvelope
	envelope.Subscription = localSubscription
	envelope.Message.Data = base64.StdEncoding.EncodeToString(msg.data)
	envelope.Message.Attributes = msg.attributes
	envelope.Message.MessageID = msg.id
	envelope.Message.PublishTime = time.Now().UTC().Format(time.RFC3339Nano)

	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.WithStack(err)
	}

	for attempt := 1; ; attempt++ {
		status, err := p.post(ctx, body, event.RequestID)
		switch {
		case err != nil:
			return err
		case status >= 200 && status < 300:
			p.logger.DebugContext(ctx, "[PubSub] alert pushed locally",
				slog.String("notification_id", msg.id),
				slog.Int("attempt", attempt),
			)

			return nil
		case status != http.StatusServiceUnavailable || attempt == localMaxAttempts:
			return errors.Errorf("push worker answered %d for alert %s", status, msg.id)
		}

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(p.backoff * time.Duration(attempt)):
		}
	}
}

func (p *localPublisher) post(ctx context.Context, body []byte, requestID string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, errors.Wrap(err, "failed to reach push worker")
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}

func (p *localPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
