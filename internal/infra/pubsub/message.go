// Package pubsub publishes order events to Google Pub/Sub, to a local
// push endpoint during development, or nowhere.
package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"verdeluxe/internal/domain/service"

	"github.com/pkg/errors"
)

// PushEnvelope is the body Pub/Sub POSTs to push subscriptions.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// DecodeOrderEvent extracts the order event carried by a push envelope.
func (e *PushEnvelope) DecodeOrderEvent() (*service.OrderEvent, error) {
	data, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.OrderEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "parse order event")
	}
	if event.Type == "" || event.OrderID == "" {
		return nil, errors.New("order event is missing type or order id")
	}

	return &event, nil
}

// NewPushEnvelope wraps an event the way Pub/Sub push delivery does.
func NewPushEnvelope(event *service.OrderEvent, messageID, subscription string) (*PushEnvelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	envelope := &PushEnvelope{Subscription: subscription}
	envelope.Message.Data = base64.StdEncoding.EncodeToString(data)
	envelope.Message.Attributes = eventAttributes(event)
	envelope.Message.MessageID = messageID
	envelope.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	return envelope, nil
}

// eventAttributes are set on every message for subscription filtering and tracing.
func eventAttributes(event *service.OrderEvent) map[string]string {
	attributes := map[string]string{
		"event_type": string(event.Type),
		"order_id":   event.OrderID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
