package service

import (
	"context"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const PaymentMethodCard PaymentMethod = "card"

// PaymentRequest never carries a full card number.
type PaymentRequest struct {
	OrderNumber    string
	Amount         decimal.Decimal
	Currency       string
	Method         PaymentMethod
	CardholderName string
	CardLast4      string
}

type PaymentResult struct {
	Approved  bool
	Reference string
}

// PaymentGateway charges a customer for an order.
type PaymentGateway interface {
	Charge(ctx context.Context, req *PaymentRequest) (*PaymentResult, error)
}
