package entity

import (
	"time"

	"github.com/google/uuid"
)

type WishlistItem struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	PlantID   uuid.UUID `json:"plantId"`
	Plant     *Plant    `json:"plant,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
