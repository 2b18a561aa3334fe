package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"verdeluxe/config"
	deliverycontext "verdeluxe/internal/delivery/context"
	"verdeluxe/internal/domain/constants"
	"verdeluxe/internal/domain/service"
	"verdeluxe/internal/infra/pubsub"
	mockUsecase "verdeluxe/internal/mocks/usecase"
	"verdeluxe/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func testEvent() *service.OrderEvent {
	return &service.OrderEvent{
		RequestID:   "req-checkout-1",
		Type:        service.OrderEventPlaced,
		OrderID:     "0b6f6f5e-3c4a-4a53-9d5a-1f2b3c4d5e6f",
		OrderNumber: "VL-20250314092653-ABCDEF",
		UserID:      "5d1f5c2e-8a8e-4d59-b6a7-0c1d2e3f4a5b",
		Status:      "pending",
		TotalAmount: "21.60",
	}
}

func pushBody(t *testing.T, event *service.OrderEvent) []byte {
	t.Helper()

	envelope, err := pubsub.NewPushEnvelope(event, "msg-1", "projects/verdeluxe/subscriptions/order-events-push")
	require.NoError(t, err)

	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	return body
}

func newTestPushHandler(t *testing.T, cfg *config.Config, validate TokenValidator) (*PushHandler, *mockUsecase.MockNotificationUsecase) {
	t.Helper()

	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:         cfg,
		Logger:         slog.New(slog.DiscardHandler),
		NotificationUC: notificationUC,
		Validator:      validate,
	})

	return h, notificationUC
}

func servePush(h *PushHandler, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = h.HandlePush(c)

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	t.Run("processes the event with the publisher's request id", func(t *testing.T) {
		h, notificationUC := newTestPushHandler(t, &config.Config{}, nil)

		notificationUC.EXPECT().HandleOrderEvent(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "req-checkout-1"
		}), mock.MatchedBy(func(e *service.OrderEvent) bool {
			return e.Type == service.OrderEventPlaced && e.OrderNumber == "VL-20250314092653-ABCDEF"
		})).Return(nil).Once()

		rec := servePush(h, pushBody(t, testEvent()), nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("retryable failure asks for redelivery", func(t *testing.T) {
		h, notificationUC := newTestPushHandler(t, &config.Config{}, nil)

		notificationUC.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).
			Return(usecase.NewRetryableError(errors.New("fcm unavailable"))).Once()

		rec := servePush(h, pushBody(t, testEvent()), nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("permanent failure is acknowledged", func(t *testing.T) {
		h, notificationUC := newTestPushHandler(t, &config.Config{}, nil)

		notificationUC.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).
			Return(errors.New("invalid user id")).Once()

		rec := servePush(h, pushBody(t, testEvent()), nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed envelope is rejected", func(t *testing.T) {
		h, _ := newTestPushHandler(t, &config.Config{}, nil)

		rec := servePush(h, []byte(`{"message":`), nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = servePush(h, []byte(`{"message":{"data":"%%%not-base64"}}`), nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("event without order id is rejected", func(t *testing.T) {
		h, _ := newTestPushHandler(t, &config.Config{}, nil)

		event := testEvent()
		event.OrderID = ""
		rec := servePush(h, pushBody(t, event), nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func googlePushConfig() *config.Config {
	cfg := &config.Config{
		PubSub:   &config.PubSubConfig{Provider: constants.PubSubProviderGoogle},
		Notifier: &config.NotifierConfig{PushAudience: "https://notifier.verdeluxe.test/push", PushServiceAccount: "push@verdeluxe.iam.gserviceaccount.com"},
	}
	cfg.Env.Env = constants.EnvProduction

	return cfg
}

func TestPushHandler_VerifiesPushToken(t *testing.T) {
	validPayload := &idtoken.Payload{
		Issuer: "https://accounts.google.com",
		Claims: map[string]any{"email": "push@verdeluxe.iam.gserviceaccount.com", "email_verified": true},
	}

	t.Run("missing token", func(t *testing.T) {
		h, _ := newTestPushHandler(t, googlePushConfig(), func(context.Context, string, string) (*idtoken.Payload, error) {
			t.Fatal("validator must not be called without a token")

			return nil, nil
		})

		rec := servePush(h, pushBody(t, testEvent()), nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token for the configured audience", func(t *testing.T) {
		var gotAudience string
		h, notificationUC := newTestPushHandler(t, googlePushConfig(), func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			gotAudience = audience
			assert.Equal(t, "oidc-token", token)

			return validPayload, nil
		})
		notificationUC.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).Return(nil).Once()

		rec := servePush(h, pushBody(t, testEvent()), map[string]string{"Authorization": "Bearer oidc-token"})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://notifier.verdeluxe.test/push", gotAudience)
	})

	t.Run("wrong service account", func(t *testing.T) {
		h, _ := newTestPushHandler(t, googlePushConfig(), func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{
				Issuer: "accounts.google.com",
				Claims: map[string]any{"email": "someone@else.test", "email_verified": true},
			}, nil
		})

		rec := servePush(h, pushBody(t, testEvent()), map[string]string{"Authorization": "Bearer oidc-token"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		h, _ := newTestPushHandler(t, googlePushConfig(), func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example", Claims: validPayload.Claims}, nil
		})

		rec := servePush(h, pushBody(t, testEvent()), map[string]string{"Authorization": "Bearer oidc-token"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("development skips verification", func(t *testing.T) {
		cfg := googlePushConfig()
		cfg.Env.Env = constants.EnvDevelop
		h, notificationUC := newTestPushHandler(t, cfg, nil)
		notificationUC.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).Return(nil).Once()

		rec := servePush(h, pushBody(t, testEvent()), nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
