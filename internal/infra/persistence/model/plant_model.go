package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlantModel mirrors the 'plants' table.
type PlantModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name              string          `gorm:"type:varchar(200);not null"`
	Slug              string          `gorm:"type:varchar(200);uniqueIndex;not null"`
	Description       string          `gorm:"type:text"`
	Price             decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CategoryID        *uuid.UUID      `gorm:"type:uuid;index"`
	ImageURLs         []string        `gorm:"column:image_urls;type:jsonb;serializer:json"`
	Stock             int             `gorm:"not null;default:0"`
	Featured          bool            `gorm:"not null;default:false"`
	Tags              []string        `gorm:"type:jsonb;serializer:json"`
	IsActive          bool            `gorm:"not null;default:true"`
	CareLevel         string          `gorm:"type:varchar(32)"`
	LightRequirement  string          `gorm:"type:varchar(64)"`
	WateringFrequency string          `gorm:"type:varchar(64)"`
	Size              string          `gorm:"type:varchar(32)"`
	CreatedAt         time.Time       `gorm:"index"`
	UpdatedAt         time.Time
}

func (PlantModel) TableName() string {
	return "plants"
}

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(120);not null"`
	Slug        string    `gorm:"type:varchar(120);uniqueIndex;not null"`
	Description string    `gorm:"type:text"`
	ImageURL    string    `gorm:"type:varchar(512)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CategoryModel) TableName() string {
	return "categories"
}

// PhotoModel mirrors the 'plant_photos' table.
type PhotoModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PlantID     uuid.UUID `gorm:"type:uuid;not null;index"`
	FileName    string    `gorm:"type:varchar(255);not null"`
	ContentType string    `gorm:"type:varchar(64);not null"`
	Size        int64     `gorm:"not null"`
	StorageKey  string    `gorm:"type:varchar(512);not null"`
	URL         string    `gorm:"column:url;type:varchar(512);not null"`
	SortOrder   int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
}

func (PhotoModel) TableName() string {
	return "plant_photos"
}
