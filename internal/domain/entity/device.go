package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice is a customer device registered for push notifications.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	FCMToken  string    `json:"fcmToken"`
	DeviceID  string    `json:"deviceId"` // Client-generated installation id.
	Platform  Platform  `json:"platform"`
	IsActive  bool      `json:"isActive"` // Cleared when FCM reports the token as unregistered.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformWeb     Platform = "web"
)

func (p Platform) IsValid() bool {
	switch p {
	case PlatformIOS, PlatformAndroid, PlatformWeb:
		return true
	default:
		return false
	}
}
