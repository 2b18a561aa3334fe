package usecase

import (
	"context"
	"errors"

	"verdeluxe/internal/domain/service"
)

// NotificationUsecase turns order events into push notifications.
type NotificationUsecase interface {
	// HandleOrderEvent notifies the order's customer on all active devices.
	// A returned error is transient and the event should be redelivered.
	HandleOrderEvent(ctx context.Context, event *service.OrderEvent) error
}

// retryableError marks a failure that should trigger a Pub/Sub redelivery.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return "retryable: " + e.err.Error()
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// NewRetryableError wraps err as retryable.
func NewRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryableError reports whether err or anything it wraps is retryable.
func IsRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}
