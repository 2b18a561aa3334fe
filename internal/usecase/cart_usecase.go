package usecase

import (
	"context"

	"verdeluxe/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase manages a signed-in customer's cart. A nil user id fails with
// ErrUnauthenticated.
type CartUsecase interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)
	// AddItem adds quantity of an active plant, incrementing an existing line.
	AddItem(ctx context.Context, userID, plantID uuid.UUID, quantity int) (*entity.CartItem, error)
	// UpdateItem overwrites the quantity; zero or less removes the line.
	UpdateItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) error
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error
	ClearCart(ctx context.Context, userID uuid.UUID) error
}
