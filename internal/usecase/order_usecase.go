package usecase

import (
	"context"

	"verdeluxe/internal/domain/entity"
	"verdeluxe/internal/domain/repository"

	"github.com/google/uuid"
)

type OrderList struct {
	Orders []*entity.Order `json:"orders"`
	Total  int64           `json:"total"`
}

type OrderUsecase interface {
	ListUserOrders(ctx context.Context, userID uuid.UUID, page repository.Page) (*OrderList, error)
	// GetUserOrder hides orders of other users as not found.
	GetUserOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	ListOrders(ctx context.Context, status *entity.OrderStatus, page repository.Page) (*OrderList, error)
	// UpdateStatus applies an admin status transition and publishes
	// order.status_changed.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
}
