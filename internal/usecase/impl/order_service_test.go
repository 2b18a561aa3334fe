package impl

import (
	"context"
	"log/slog"
	"testing"

	"verdeluxe/internal/domain/entity"
	domainerrors "verdeluxe/internal/domain/errors"
	"verdeluxe/internal/domain/repository"
	"verdeluxe/internal/domain/service"
	mockRepo "verdeluxe/internal/mocks/repository"
	mockService "verdeluxe/internal/mocks/service"
	"verdeluxe/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	orderRepo *mockRepo.MockOrderRepository
	publisher *mockService.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	return orderServiceFixtures{
		service:   NewOrderService(orderRepo, publisher, slog.New(slog.DiscardHandler)),
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

func testOrder(status entity.OrderStatus) *entity.Order {
	return &entity.Order{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		OrderNumber: "VL-20250314092653-ABCDEF",
		Status:      status,
		TotalAmount: decimal.RequireFromString("21.60"),
	}
}

func TestOrderService_UpdateStatus_AllowedTransitions(t *testing.T) {
	tests := []struct {
		from entity.OrderStatus
		to   entity.OrderStatus
	}{
		{entity.OrderStatusPending, entity.OrderStatusProcessing},
		{entity.OrderStatusPending, entity.OrderStatusCancelled},
		{entity.OrderStatusProcessing, entity.OrderStatusShipped},
		{entity.OrderStatusProcessing, entity.OrderStatusCancelled},
		{entity.OrderStatusShipped, entity.OrderStatusDelivered},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+" to "+string(tt.to), func(t *testing.T) {
			fx := createTestOrderService(t)

			ctx := context.Background()
			order := testOrder(tt.from)
			fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
			fx.orderRepo.EXPECT().UpdateStatus(ctx, order.ID, tt.from, tt.to).Return(nil)
			fx.publisher.EXPECT().
				PublishOrderEvent(ctx, mock.MatchedBy(func(event *service.OrderEvent) bool {
					return event.Type == service.OrderEventStatusChanged && event.Status == string(tt.to)
				})).
				Return(nil)

			updated, err := fx.service.UpdateStatus(ctx, order.ID, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.to, updated.Status)
		})
	}
}

func TestOrderService_UpdateStatus_RejectedTransitions(t *testing.T) {
	tests := []struct {
		from entity.OrderStatus
		to   entity.OrderStatus
	}{
		{entity.OrderStatusPending, entity.OrderStatusShipped},
		{entity.OrderStatusShipped, entity.OrderStatusCancelled},
		{entity.OrderStatusDelivered, entity.OrderStatusProcessing},
		{entity.OrderStatusCancelled, entity.OrderStatusPending},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+" to "+string(tt.to), func(t *testing.T) {
			fx := createTestOrderService(t)

			ctx := context.Background()
			order := testOrder(tt.from)
			fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

			_, err := fx.service.UpdateStatus(ctx, order.ID, tt.to)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
		})
	}
}

func TestOrderService_UpdateStatus_UnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.UpdateStatus(context.Background(), uuid.New(), "lost")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_UpdateStatus_ConcurrentChange(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := testOrder(entity.OrderStatusPending)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusProcessing).
		Return(repository.ErrOrderStatusConflict)

	_, err := fx.service.UpdateStatus(ctx, order.ID, entity.OrderStatusProcessing)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
}

func TestOrderService_GetUserOrder_HidesOtherCustomersOrders(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := testOrder(entity.OrderStatusPending)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil).Twice()

	found, err := fx.service.GetUserOrder(ctx, order.UserID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)

	_, err = fx.service.GetUserOrder(ctx, uuid.New(), order.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ListUserOrders(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.orderRepo.EXPECT().
		List(ctx, repository.OrderFilter{UserID: &userID, Page: repository.Page{Limit: repository.DefaultPageLimit}}).
		Return(nil, int64(0), nil)

	list, err := fx.service.ListUserOrders(ctx, userID, repository.Page{})
	require.NoError(t, err)
	assert.NotNil(t, list.Orders)
	assert.Empty(t, list.Orders)
	assert.Zero(t, list.Total)
}

func TestOrderService_ListOrders_ByStatus(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	status := entity.OrderStatusShipped
	order := testOrder(status)
	fx.orderRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(filter repository.OrderFilter) bool {
			return filter.UserID == nil && filter.Status != nil && *filter.Status == status
		})).
		Return([]*entity.Order{order}, int64(1), nil)

	list, err := fx.service.ListOrders(ctx, &status, repository.Page{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, list.Orders, 1)
	assert.Equal(t, int64(1), list.Total)
}
