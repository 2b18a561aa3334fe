package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "verdeluxe/internal/delivery/context"
	"verdeluxe/internal/domain/entity"
	domainerrors "verdeluxe/internal/domain/errors"
	"verdeluxe/internal/domain/repository"
	"verdeluxe/internal/domain/service"
	"verdeluxe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type orderService struct {
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

func NewOrderService(orderRepo repository.OrderRepository, publisher service.EventPublisher, logger *slog.Logger) usecase.OrderUsecase {
	return &orderService{
		orderRepo: orderRepo,
		publisher: publisher,
		logger:    logger,
	}
}

func (srv *orderService) ListUserOrders(ctx context.Context, userID uuid.UUID, page repository.Page) (*usecase.OrderList, error) {
	if userID == uuid.Nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	return srv.list(ctx, repository.OrderFilter{UserID: &userID, Page: page.Normalize()})
}

func (srv *orderService) GetUserOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	if userID == uuid.Nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, translateError(err, "failed to find order")
	}
	if order.UserID != userID {
		return nil, errors.WithStack(domainerrors.ErrOrderNotFound)
	}

	return order, nil
}

func (srv *orderService) ListOrders(ctx context.Context, status *entity.OrderStatus, page repository.Page) (*usecase.OrderList, error) {
	if status != nil && !status.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown order status"))
	}

	return srv.list(ctx, repository.OrderFilter{Status: status, Page: page.Normalize()})
}

func (srv *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown order status"))
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, translateError(err, "failed to find order")
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, errors.WithStack(domainerrors.ErrInvalidStatusTransition.WithDetails(string(order.Status) + " -> " + string(status)))
	}

	if err := srv.orderRepo.UpdateStatus(ctx, orderID, order.Status, status); err != nil {
		return nil, translateError(err, "failed to update order status")
	}

	previous := order.Status
	order.Status = status
	order.UpdatedAt = time.Now().UTC()

	loggerFrom(ctx, srv.logger).Info("Order status changed",
		slog.String("order_id", orderID.String()),
		slog.String("from", string(previous)),
		slog.String("to", string(status)),
	)

	event := &service.OrderEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		Type:        service.OrderEventStatusChanged,
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID.String(),
		Status:      string(status),
		TotalAmount: order.TotalAmount.StringFixed(2),
		OccurredAt:  order.UpdatedAt.Format(time.RFC3339),
	}
	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		loggerFrom(ctx, srv.logger).Warn("Failed to publish order event", slog.String("order_id", event.OrderID), slog.Any("error", err))
	}

	return order, nil
}

func (srv *orderService) list(ctx context.Context, filter repository.OrderFilter) (*usecase.OrderList, error) {
	orders, total, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, translateError(err, "failed to list orders")
	}
	if orders == nil {
		orders = []*entity.Order{}
	}

	return &usecase.OrderList{Orders: orders, Total: total}, nil
}
