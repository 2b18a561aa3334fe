// Package notification sends push notifications through Firebase Cloud Messaging.
package notification

import (
	"context"

	"verdeluxe/internal/domain/service"
	"verdeluxe/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
)

// MaxMulticastTokens is the FCM limit for one multicast request.
const MaxMulticastTokens = 500

// messagingClient is the subset of *messaging.Client used here.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client messagingClient
}

func NewFirebaseService(ctx context.Context, app *firebase.App) (service.NotificationService, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

func (s *firebaseService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	_, err := s.client.Send(ctx, &messaging.Message{
		Token:        token,
		Notification: &messaging.Notification{Title: title, Body: body},
		Data:         data,
	})

	return errors.Wrap(err, "failed to send notification")
}

func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}
	if len(tokens) > MaxMulticastTokens {
		return 0, 0, nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), MaxMulticastTokens)
	}

	response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: &messaging.Notification{Title: title, Body: body},
		Data:         data,
	})
	if err != nil {
		return 0, 0, nil, errors.Wrap(err, "failed to send multicast notification")
	}

	invalidTokens = make([]string, 0)
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			invalidTokens = append(invalidTokens, tokens[idx])
		}
	}

	return response.SuccessCount, response.FailureCount, invalidTokens, nil
}
