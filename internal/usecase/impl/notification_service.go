package impl

import (
	"context"
	"fmt"
	"log/slog"

	"verdeluxe/internal/domain/entity"
	"verdeluxe/internal/domain/repository"
	"verdeluxe/internal/domain/service"
	"verdeluxe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Firebase multicast limit
const firebaseBatchSize = 500

var statusMessages = map[entity.OrderStatus]string{
	entity.OrderStatusPending:    "has been received",
	entity.OrderStatusProcessing: "is being prepared",
	entity.OrderStatusShipped:    "has shipped",
	entity.OrderStatusDelivered:  "has been delivered",
	entity.OrderStatusCancelled:  "was cancelled",
}

type notificationService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

func NewNotificationService(
	deviceRepo repository.DeviceRepository,
	notificationSvc service.NotificationService,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

func (s *notificationService) HandleOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	logger := loggerFrom(ctx, s.logger).With(
		slog.String("order_id", event.OrderID),
		slog.String("event_type", string(event.Type)),
	)

	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return errors.Wrap(err, "invalid user id in order event")
	}

	title, body, ok := notificationContent(event)
	if !ok {
		logger.Info("[Worker] Event type has no notification, skipping")

		return nil
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return usecase.NewRetryableError(errors.WithStack(err))
	}
	if len(devices) == 0 {
		logger.Info("[Worker] Customer has no registered devices")

		return nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	data := map[string]string{
		"type":         string(event.Type),
		"order_id":     event.OrderID,
		"order_number": event.OrderNumber,
		"status":       event.Status,
	}

	var (
		totalSent     int
		totalFailed   int
		failedBatches int
		invalidTokens []string
	)
	for idx := 0; idx < len(tokens); idx += firebaseBatchSize {
		batch := tokens[idx:min(idx+firebaseBatchSize, len(tokens))]

		sent, failed, batchInvalid, sendErr := s.notificationSvc.SendBatchNotification(ctx, batch, title, body, data)
		if sendErr != nil {
			logger.Error("[Worker] Failed to send batch",
				slog.Int("batch_start", idx),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", sendErr),
			)
			failedBatches++
			totalFailed += len(batch)

			continue
		}

		totalSent += sent
		totalFailed += failed
		invalidTokens = append(invalidTokens, batchInvalid...)
	}

	if len(invalidTokens) > 0 {
		deactivated, err := s.deviceRepo.DeactivateByTokens(ctx, invalidTokens)
		if err != nil {
			logger.Warn("[Worker] Failed to deactivate invalid devices", slog.Any("error", err))
		} else {
			logger.Info("[Worker] Deactivated devices with invalid tokens", slog.Int64("count", deactivated))
		}
	}

	logger.Info("[Worker] Notification sending completed",
		slog.Int("total_sent", totalSent),
		slog.Int("total_failed", totalFailed),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)

	// Nothing reached FCM at all, so a redelivery can still succeed.
	if failedBatches == (len(tokens)+firebaseBatchSize-1)/firebaseBatchSize {
		return usecase.NewRetryableError(errors.New("all notification batches failed"))
	}

	return nil
}

func notificationContent(event *service.OrderEvent) (title, body string, ok bool) {
	switch event.Type {
	case service.OrderEventPlaced:
		return "Order confirmed",
			fmt.Sprintf("Your order %s totalling %s has been placed.", event.OrderNumber, event.TotalAmount),
			true
	case service.OrderEventStatusChanged:
		message, known := statusMessages[entity.OrderStatus(event.Status)]
		if !known {
			message = "was updated to " + event.Status
		}

		return "Order update", fmt.Sprintf("Your order %s %s.", event.OrderNumber, message), true
	default:
		return "", "", false
	}
}
