package repository

import (
	"context"

	"verdeluxe/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrCartItemNotFound = errors.New("cart item not found")

type CartRepository interface {
	// ListByUser returns the user's items with Plant loaded, oldest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)

	// FindByID scopes the lookup to userID so other users' items read as missing.
	FindByID(ctx context.Context, userID, itemID uuid.UUID) (*entity.CartItem, error)

	// AddOrIncrement inserts the item or, when the user already has the
	// plant in the cart, adds quantity to it in the same statement.
	AddOrIncrement(ctx context.Context, userID, plantID uuid.UUID, quantity int) (*entity.CartItem, error)

	UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) error

	Delete(ctx context.Context, userID, itemID uuid.UUID) error

	// DeleteByUser removes every item of the user in one statement.
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
