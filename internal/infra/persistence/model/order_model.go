package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItemModel mirrors the 'cart_items' table, unique on (user_id, plant_id).
type CartItemModel struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_user_plant"`
	PlantID   uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_user_plant"`
	Quantity  int         `gorm:"not null"`
	Plant     *PlantModel `gorm:"foreignKey:PlantID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CartItemModel) TableName() string {
	return "cart_items"
}

// OrderItemModel is stored as a JSON array on the order row.
type OrderItemModel struct {
	PlantID  uuid.UUID       `json:"plantId"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// ShippingAddressModel is embedded into 'orders' with a shipping_ prefix.
type ShippingAddressModel struct {
	FullName string `gorm:"type:varchar(120);not null"`
	Email    string `gorm:"type:varchar(255);not null"`
	Phone    string `gorm:"type:varchar(32)"`
	Address  string `gorm:"type:varchar(255);not null"`
	City     string `gorm:"type:varchar(120);not null"`
	State    string `gorm:"type:varchar(120)"`
	ZipCode  string `gorm:"type:varchar(20);not null"`
	Country  string `gorm:"type:varchar(80);not null"`
}

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID               uuid.UUID            `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID            `gorm:"type:uuid;not null;index"`
	OrderNumber      string               `gorm:"type:varchar(40);uniqueIndex;not null"`
	Status           string               `gorm:"type:varchar(16);not null;index"`
	Items            []OrderItemModel     `gorm:"type:jsonb;serializer:json;not null"`
	Subtotal         decimal.Decimal      `gorm:"type:decimal(10,2);not null"`
	Tax              decimal.Decimal      `gorm:"type:decimal(10,2);not null"`
	TotalAmount      decimal.Decimal      `gorm:"type:decimal(10,2);not null"`
	Shipping         ShippingAddressModel `gorm:"embedded;embeddedPrefix:shipping_"`
	PaymentStatus    string               `gorm:"type:varchar(16);not null"`
	PaymentReference string               `gorm:"type:varchar(64)"`
	CreatedAt        time.Time            `gorm:"index"`
	UpdatedAt        time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}
