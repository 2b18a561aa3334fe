package repository

import (
	"context"

	"verdeluxe/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderNumberConflict = errors.New("order number already exists")
	ErrOrderStatusConflict = errors.New("order status changed concurrently")
)

type OrderFilter struct {
	UserID *uuid.UUID
	Status *entity.OrderStatus
	Page   Page
}

type OrderRepository interface {
	// Create returns ErrOrderNumberConflict on a duplicate order number.
	Create(ctx context.Context, order *entity.Order) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// List returns orders newest first with the total match count.
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, int64, error)

	// UpdateStatus moves an order from one status to another, failing with
	// ErrOrderStatusConflict when the stored status is no longer from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error
}
