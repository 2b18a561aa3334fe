package service

import (
	"context"
)

// NotificationService sends push notifications to devices.
type NotificationService interface {
	// SendBatchNotification sends to multiple device tokens and reports
	// which tokens the provider rejected as invalid or unregistered.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
