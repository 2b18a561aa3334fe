package service

import (
	"context"
)

type OrderEventType string

const (
	OrderEventPlaced        OrderEventType = "order.placed"
	OrderEventStatusChanged OrderEventType = "order.status_changed"
)

// OrderEvent is published after an order is committed or its status changes,
// and consumed by the notifier worker.
type OrderEvent struct {
	RequestID   string         `json:"request_id,omitempty"`
	Type        OrderEventType `json:"type"`
	OrderID     string         `json:"order_id"`
	OrderNumber string         `json:"order_number"`
	UserID      string         `json:"user_id"`
	Status      string         `json:"status"`
	TotalAmount string         `json:"total_amount"`
	OccurredAt  string         `json:"occurred_at"` // RFC 3339
}

// EventPublisher publishes order events to a message queue.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
