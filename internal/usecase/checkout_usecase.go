package usecase

import (
	"context"

	"verdeluxe/internal/domain/entity"
	"verdeluxe/internal/domain/service"

	"github.com/google/uuid"
)

// PaymentInput is the payment form. Full card numbers never reach the server.
type PaymentInput struct {
	Method         service.PaymentMethod `json:"method" validate:"required,oneof=card"`
	CardholderName string                `json:"cardholderName" validate:"required,max=120"`
	CardLast4      string                `json:"cardLast4" validate:"required,len=4,numeric"`
}

type CheckoutInput struct {
	ShippingAddress entity.ShippingAddress `json:"shippingAddress"`
	Payment         PaymentInput           `json:"payment"`
}

// CheckoutUsecase turns a cart into a paid order.
type CheckoutUsecase interface {
	// PlaceOrder charges the cart total plus tax, then writes the order,
	// decrements stock and clears the cart in one transaction.
	PlaceOrder(ctx context.Context, userID uuid.UUID, input *CheckoutInput) (*entity.Order, error)
}
