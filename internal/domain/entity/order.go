package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether an admin may move an order from s to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// ShippingAddress is embedded in the order as entered at checkout.
type ShippingAddress struct {
	FullName string `json:"fullName" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
	Address  string `json:"address" validate:"required,max=255"`
	City     string `json:"city" validate:"required,max=120"`
	State    string `json:"state" validate:"omitempty,max=120"`
	ZipCode  string `json:"zipCode" validate:"required,max=20"`
	Country  string `json:"country" validate:"required,max=80"`
}

// OrderItem is a snapshot of a cart line at checkout time.
type OrderItem struct {
	PlantID  uuid.UUID       `json:"plantId"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// LineTotal is price × quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order items and amounts never change after creation; only Status does.
type Order struct {
	ID               uuid.UUID       `json:"id"`
	UserID           uuid.UUID       `json:"userId"`
	OrderNumber      string          `json:"orderNumber"`
	Status           OrderStatus     `json:"status"`
	Items            []OrderItem     `json:"items"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	Tax              decimal.Decimal `json:"tax"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	ShippingAddress  ShippingAddress `json:"shippingAddress"`
	PaymentStatus    PaymentStatus   `json:"paymentStatus"`
	PaymentReference string          `json:"paymentReference,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// OrderTotals holds the money math of a checkout.
type OrderTotals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeOrderTotals sums line totals and applies a flat tax rate. Tax and
// total are rounded to cents.
func ComputeOrderTotals(items []OrderItem, taxRate decimal.Decimal) OrderTotals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	subtotal = subtotal.Round(2)
	tax := subtotal.Mul(taxRate).Round(2)

	return OrderTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
