package model

import (
	"time"

	"github.com/google/uuid"
)

// UserDeviceModel mirrors the 'user_devices' table, unique on (user_id, device_id).
type UserDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_devices_user_device"`
	FCMToken  string    `gorm:"type:varchar(255);not null;index"`
	DeviceID  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_devices_user_device"`
	Platform  string    `gorm:"type:varchar(16);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserDeviceModel) TableName() string {
	return "user_devices"
}
