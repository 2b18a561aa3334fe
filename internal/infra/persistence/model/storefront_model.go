package model

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItemModel mirrors the 'wishlist_items' table, unique on (user_id, plant_id).
type WishlistItemModel struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_items_user_plant"`
	PlantID   uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_items_user_plant"`
	Plant     *PlantModel `gorm:"foreignKey:PlantID"`
	CreatedAt time.Time
}

func (WishlistItemModel) TableName() string {
	return "wishlist_items"
}

// NewsletterSubscriberModel mirrors the 'newsletter_subscribers' table.
type NewsletterSubscriberModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
}

func (NewsletterSubscriberModel) TableName() string {
	return "newsletter_subscribers"
}

// SiteContentModel mirrors the 'site_content' table.
type SiteContentModel struct {
	Key       string `gorm:"type:varchar(120);primaryKey"`
	Title     string `gorm:"type:varchar(255)"`
	Body      string `gorm:"type:text"`
	UpdatedAt time.Time
}

func (SiteContentModel) TableName() string {
	return "site_content"
}
