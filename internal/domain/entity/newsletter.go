package entity

import (
	"time"

	"github.com/google/uuid"
)

type NewsletterSubscriber struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"` // Stored lower-cased.
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}
