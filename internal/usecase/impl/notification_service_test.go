package impl

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"verdeluxe/internal/domain/entity"
	"verdeluxe/internal/domain/service"
	mockRepo "verdeluxe/internal/mocks/repository"
	mockService "verdeluxe/internal/mocks/service"
	"verdeluxe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	service         usecase.NotificationUsecase
	deviceRepo      *mockRepo.MockDeviceRepository
	notificationSvc *mockService.MockNotificationService
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockService.NewMockNotificationService(t)

	return notificationServiceFixtures{
		service:         NewNotificationService(deviceRepo, notificationSvc, slog.New(slog.DiscardHandler)),
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
	}
}

func testOrderEvent(eventType service.OrderEventType, userID uuid.UUID) *service.OrderEvent {
	return &service.OrderEvent{
		Type:        eventType,
		OrderID:     uuid.NewString(),
		OrderNumber: "VL-20250314092653-ABCDEF",
		UserID:      userID.String(),
		Status:      string(entity.OrderStatusShipped),
		TotalAmount: "21.60",
	}
}

func testDevices(userID uuid.UUID, count int) []*entity.UserDevice {
	devices := make([]*entity.UserDevice, 0, count)
	for i := range count {
		devices = append(devices, &entity.UserDevice{
			ID:       uuid.New(),
			UserID:   userID,
			FCMToken: fmt.Sprintf("token-%d", i),
			IsActive: true,
		})
	}

	return devices
}

func TestNotificationService_HandleOrderEvent_OrderPlaced(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	event := testOrderEvent(service.OrderEventPlaced, userID)

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(testDevices(userID, 2), nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-0", "token-1"}, "Order confirmed",
			"Your order VL-20250314092653-ABCDEF totalling 21.60 has been placed.",
			mock.MatchedBy(func(data map[string]string) bool {
				return data["order_id"] == event.OrderID && data["type"] == string(service.OrderEventPlaced)
			})).
		Return(1, 1, []string{"token-1"}, nil)
	fx.deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"token-1"}).Return(int64(1), nil)

	require.NoError(t, fx.service.HandleOrderEvent(ctx, event))
}

func TestNotificationService_HandleOrderEvent_StatusChanged(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	event := testOrderEvent(service.OrderEventStatusChanged, userID)

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(testDevices(userID, 1), nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-0"}, "Order update",
			"Your order VL-20250314092653-ABCDEF has shipped.", mock.Anything).
		Return(1, 0, nil, nil)

	require.NoError(t, fx.service.HandleOrderEvent(ctx, event))
}

func TestNotificationService_HandleOrderEvent_SplitsIntoBatches(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	event := testOrderEvent(service.OrderEventPlaced, userID)

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(testDevices(userID, 501), nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 500 }), mock.Anything, mock.Anything, mock.Anything).
		Return(500, 0, nil, nil).
		Once()
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-500"}, mock.Anything, mock.Anything, mock.Anything).
		Return(1, 0, nil, nil).
		Once()

	require.NoError(t, fx.service.HandleOrderEvent(ctx, event))
}

func TestNotificationService_HandleOrderEvent_NoDevices(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return([]*entity.UserDevice{}, nil)

	require.NoError(t, fx.service.HandleOrderEvent(ctx, testOrderEvent(service.OrderEventPlaced, userID)))
}

func TestNotificationService_HandleOrderEvent_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed user id is permanent", func(t *testing.T) {
		fx := createTestNotificationService(t)
		event := testOrderEvent(service.OrderEventPlaced, uuid.New())
		event.UserID = "not-a-uuid"

		err := fx.service.HandleOrderEvent(ctx, event)
		require.Error(t, err)
		assert.False(t, usecase.IsRetryableError(err))
	})

	t.Run("device lookup failure is retryable", func(t *testing.T) {
		fx := createTestNotificationService(t)
		userID := uuid.New()
		fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(nil, errors.New("connection refused"))

		err := fx.service.HandleOrderEvent(ctx, testOrderEvent(service.OrderEventPlaced, userID))
		assert.True(t, usecase.IsRetryableError(err))
	})

	t.Run("every batch failing is retryable", func(t *testing.T) {
		fx := createTestNotificationService(t)
		userID := uuid.New()
		fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(testDevices(userID, 3), nil)
		fx.notificationSvc.EXPECT().
			SendBatchNotification(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(0, 0, nil, errors.New("fcm unavailable"))

		err := fx.service.HandleOrderEvent(ctx, testOrderEvent(service.OrderEventPlaced, userID))
		assert.True(t, usecase.IsRetryableError(err))
	})

	t.Run("unknown event type is ignored", func(t *testing.T) {
		fx := createTestNotificationService(t)

		err := fx.service.HandleOrderEvent(ctx, testOrderEvent("order.archived", uuid.New()))
		assert.NoError(t, err)
	})
}
