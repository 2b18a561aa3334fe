// Package handler contains the Pub/Sub push handler of the notifier worker.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"verdeluxe/config"
	deliverycontext "verdeluxe/internal/delivery/context"
	"verdeluxe/internal/domain/constants"
	"verdeluxe/internal/domain/service"
	"verdeluxe/internal/infra/pubsub"
	"verdeluxe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// TokenValidator validates a Google-signed OIDC token for an audience.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler handles Pub/Sub push deliveries of order events.
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	serviceAccount string
	validate       TokenValidator
	logger         *slog.Logger
	notificationUC usecase.NotificationUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
	Validator      TokenValidator `optional:"true"`
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google push requests carry an OIDC token.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop &&
		params.Config.Env.Env != constants.EnvLocal

	validate := params.Validator
	if validate == nil {
		validate = idtoken.Validate
	}

	h := &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validate:       validate,
		logger:         params.Logger,
		notificationUC: params.NotificationUC,
	}
	if params.Config.Notifier != nil {
		h.audience = params.Config.Notifier.PushAudience
		h.serviceAccount = params.Config.Notifier.PushServiceAccount
	}

	return h
}

// HandlePush acknowledges with 2xx unless the event should be redelivered.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope pubsub.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := envelope.DecodeOrderEvent()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode order event",
			slog.String("message_id", envelope.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &envelope, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing order event",
		slog.String("message_id", envelope.Message.MessageID),
		slog.String("event_type", string(event.Type)),
		slog.String("order_id", event.OrderID),
	)

	if err := h.notificationUC.HandleOrderEvent(ctx, event); err != nil {
		retryable := usecase.IsRetryableError(err)
		reqLogger.Error("[Worker] Failed to process order event",
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		// 503 asks Pub/Sub to redeliver; permanent failures are acked.
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Order event processed", slog.String("order_id", event.OrderID))

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event payload, then
// the X-Request-Id of the push request.
func (h *PushHandler) extractRequestID(ctx context.Context, envelope *pubsub.PushEnvelope, event *service.OrderEvent) string {
	if requestID := envelope.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the OIDC token Pub/Sub attaches to push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	if h.serviceAccount != "" {
		if email, _ := payload.Claims["email"].(string); email != h.serviceAccount {
			return errors.Errorf("unexpected push service account: %s", email)
		}
	}

	return nil
}
