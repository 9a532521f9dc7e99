// Package handler contains the push endpoint of the notification worker.
package handler

import (
	"cmp"
	"log/slog"
	"net/http"

	"gasradar/config"
	deliverycontext "gasradar/internal/delivery/context"
	"gasradar/internal/domain/constants"
	domainerrors "gasradar/internal/domain/errors"
	"gasradar/internal/errors"
	"gasradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PushHandler turns Pub/Sub push messages into device notifications
type PushHandler struct {
	// verify is nil when pushes are not authenticated.
	verify         func(req *http.Request) error
	logger         *slog.Logger
	pushDeliveryUC usecase.PushDeliveryUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	PushDeliveryUC usecase.PushDeliveryUsecase
}

func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:         params.Logger.With(slog.String("component", "worker")),
		pushDeliveryUC: params.PushDeliveryUC,
	}

	// Only Google deliveries outside development carry a token.
	ps := params.Config.PubSub
	if ps != nil && ps.Provider == constants.PubSubProviderGoogle && params.Config.Env.Env != constants.EnvDevelop {
		h.verify = newOIDCVerifier(ps.PushAudience, ps.PushServiceAccount).Verify
	}

	return h
}

// HandlePush handles POST /push.
//
// 400 drops a malformed message, 503 asks Pub/Sub to redeliver after a storage
// failure, and 200 acknowledges everything else, including partial send failures.
func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] rejected unauthenticated push", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var req PushRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("[Worker] unreadable push body", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	if !req.isPriceAlert() {
		h.logger.Warn("[Worker] skipping unknown event type",
			slog.String("event_type", req.attr(constants.AttrEventType)),
			slog.String("message_id", req.Message.MessageID),
		)

		return c.NoContent(http.StatusOK)
	}

	event, err := req.decodeAlert()
	if err != nil {
		h.logger.Error("[Worker] dropping malformed message",
			slog.String("message_id", req.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	ctx := c.Request().Context()
	requestID := cmp.Or(
		req.attr(constants.AttrRequestID),
		event.RequestID,
		deliverycontext.RequestIDFromContext(ctx),
		uuid.NewString(),
	)
	logger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("notification_id", event.NotificationID),
	)
	ctx = deliverycontext.WithLogger(deliverycontext.WithRequestID(ctx, requestID), logger)

	logger.Info("[Worker] delivering price alert",
		slog.String("user_id", event.UserID),
		slog.String("id_eess", event.IDEESS),
		slog.String("fuel_type", event.FuelType),
	)

	report, err := h.pushDeliveryUC.DeliverPriceAlert(ctx, event)
	if err != nil {
		retryable := errors.IsAny(err, domainerrors.ErrStoreUnavailable, domainerrors.ErrTransactionFailed)
		logger.Error("[Worker] price alert not delivered", slog.Any("error", err), slog.Bool("retryable", retryable))
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	logger.Info("[Worker] price alert delivered",
		slog.Int("devices", report.Devices),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
		slog.Int("invalid_tokens", report.InvalidTokens),
	)

	return c.NoContent(http.StatusOK)
}
