// Package pubsub publishes low-price alert events for the push worker.
package pubsub

import (
	"context"
	"log/slog"

	"gasradar/config"
	"gasradar/internal/domain/constants"
	"gasradar/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type factory func(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error)

var factories = map[string]factory{
	constants.PubSubProviderLocal: func(_ context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}

		return newLocalPublisher(cfg.LocalEndpoint, logger), nil
	},
	constants.PubSubProviderGoogle: func(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}

		p, err := newGooglePublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

		return p, nil
	},
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher selects the transport named by pubsub.provider and closes it on shutdown.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.StopHook(publisher.Close))

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	logger = logger.With(slog.String("component", "pubsub"))

	if cfg == nil || cfg.Provider == "" {
		logger.Info("[PubSub] no provider configured, alerts are inbox only")

		return &noopPublisher{logger: logger}, nil
	}

	create, ok := factories[cfg.Provider]
	if !ok {
		return nil, errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}

	publisher, err := create(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("[PubSub] publisher ready", slog.String("provider", cfg.Provider))

	return publisher, nil
}

// noopPublisher drops alerts when no transport is configured. Inbox entries are still written.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishPriceAlert(ctx context.Context, event *service.PriceAlertEvent) error {
	p.logger.DebugContext(ctx, "[PubSub] disabled, alert not pushed",
		slog.String("notification_id", event.NotificationID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}
