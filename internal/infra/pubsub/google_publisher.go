package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"gasradar/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

type googlePublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topic     string
	logger    *slog.Logger
}

// newGooglePublisher fails fast when the topic does not exist.
func newGooglePublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (*googlePublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	topic := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "topic %s is not reachable", topic)
	}

	return &googlePublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		topic:     topic,
		logger:    logger.With(slog.String("topic", topic)),
	}, nil
}

// PublishPriceAlert blocks until the server acknowledged the message.
func (p *googlePublisher) PublishPriceAlert(ctx context.Context, event *service.PriceAlertEvent) error {
	msg, err := newAlertMessage(event)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       msg.data,
		Attributes: msg.attributes,
	}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to publish alert %s", msg.id)
	}

	p.logger.DebugContext(ctx, "[PubSub] alert published",
		slog.String("notification_id", msg.id),
		slog.String("message_id", serverID),
	)

	return nil
}

// Close flushes pending messages before closing the client.
func (p *googlePublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
