// Package model holds the GORM table structs. Entities never carry gorm tags;
// repositories map between the two.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirebaseUID string    `gorm:"type:varchar(128);uniqueIndex;not null"`
	Email       string    `gorm:"type:varchar(255)"`
	DisplayName string    `gorm:"type:varchar(120)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (UserModel) TableName() string {
	return "users"
}

// AdminCredentialModel mirrors the 'admin_credentials' table.
type AdminCredentialModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Email        string    `gorm:"type:varchar(255);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time
}

func (AdminCredentialModel) TableName() string {
	return "admin_credentials"
}
