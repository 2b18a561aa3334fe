package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is one line of a customer's cart. There is at most one item per
// (UserID, PlantID).
type CartItem struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	PlantID   uuid.UUID `json:"plantId"`
	Quantity  int       `json:"quantity"`
	Plant     *Plant    `json:"plant,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Cart is a derived view; totals are computed on read and never stored.
type Cart struct {
	Items      []*CartItem     `json:"items"`
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// NewCart computes totals for items. Items without a loaded plant count
// towards TotalItems but not TotalPrice.
func NewCart(items []*CartItem) *Cart {
	if items == nil {
		items = []*CartItem{}
	}

	cart := &Cart{Items: items, TotalPrice: decimal.Zero}
	for _, item := range items {
		cart.TotalItems += item.Quantity
		if item.Plant != nil {
			cart.TotalPrice = cart.TotalPrice.Add(item.Plant.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}

	return cart
}
