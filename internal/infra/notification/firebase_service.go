// Package notification delivers push notifications through Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"gasradar/config"
	"gasradar/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
}

// Params defines the dependencies of the Firebase service.
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New creates the FCM sender from the firebase config section.
// Without a credentials path the application default credentials are used.
func New(params Params) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil {
		return nil, errors.New("firebase configuration is missing")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(params.Ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize firebase app")
	}

	client, err := app.Messaging(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create messaging client")
	}

	params.Logger.Info("[FCM] messaging ready", slog.String("project_id", cfg.ProjectID))

	return &firebaseService{client: client}, nil
}

func (s *firebaseService) Multicast(ctx context.Context, tokens []string, msg *service.PushMessage) ([]service.PushOutcome, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	if len(tokens) > service.MaxMulticastTokens {
		return nil, errors.Errorf("%d tokens exceed the multicast limit of %d", len(tokens), service.MaxMulticastTokens)
	}

	resp, err := s.client.SendEachForMulticast(ctx, buildMulticast(tokens, msg))
	if err != nil {
		return nil, errors.Wrap(err, "fcm multicast failed")
	}

	outcomes := make([]service.PushOutcome, len(tokens))
	for i, token := range tokens {
		outcomes[i].Token = token
		if i >= len(resp.Responses) || resp.Responses[i].Error == nil {
			continue
		}
		sendErr := resp.Responses[i].Error
		outcomes[i].Err = sendErr
		outcomes[i].Unregistered = messaging.IsUnregistered(sendErr) || messaging.IsInvalidArgument(sendErr)
	}

	return outcomes, nil
}

// buildMulticast marks alerts high priority so they wake Android devices in doze
// and play the default sound on iOS.
func buildMulticast(tokens []string, msg *service.PushMessage) *messaging.MulticastMessage {
	android := &messaging.AndroidConfig{Priority: "high"}
	if msg.TTL > 0 {
		ttl := msg.TTL
		android.TTL = &ttl
	}

	return &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data:    msg.Data,
		Android: android,
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: "default"},
			},
		},
	}
}
