// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"io"

	"verdeluxe/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogUsecase serves the customer-facing catalog. Inactive plants are
// never returned.
type CatalogUsecase interface {
	// ListPlants returns active plants matching filter, newest first, with
	// photo URLs merged into ImageURLs. No plants is an empty list.
	ListPlants(ctx context.Context, filter entity.PlantFilter) ([]*entity.CatalogPlant, error)
	GetPlant(ctx context.Context, id uuid.UUID) (*entity.CatalogPlant, error)
	GetPlantBySlug(ctx context.Context, slug string) (*entity.CatalogPlant, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	ListPlantPhotos(ctx context.Context, plantID uuid.UUID) ([]*entity.Photo, error)

	// PlantQRCode renders a PNG QR code linking to the plant's AR preview.
	PlantQRCode(ctx context.Context, plantID uuid.UUID) ([]byte, error)
}

// PlantInput carries the admin-editable fields of a plant.
type PlantInput struct {
	Name              string          `json:"name" validate:"required,max=200"`
	Slug              string          `json:"slug" validate:"omitempty,max=200"`
	Description       string          `json:"description"`
	Price             decimal.Decimal `json:"price"`
	CategoryID        *uuid.UUID      `json:"categoryId"`
	ImageURLs         []string        `json:"imageUrls"`
	Stock             int             `json:"stock" validate:"gte=0"`
	Featured          bool            `json:"featured"`
	Tags              []string        `json:"tags"`
	IsActive          *bool           `json:"isActive"`
	CareLevel         string          `json:"careLevel" validate:"max=50"`
	LightRequirement  string          `json:"lightRequirement" validate:"max=50"`
	WateringFrequency string          `json:"wateringFrequency" validate:"max=50"`
	Size              string          `json:"size" validate:"max=50"`
}

type CategoryInput struct {
	Name        string `json:"name" validate:"required,max=120"`
	Slug        string `json:"slug" validate:"omitempty,max=120"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,max=500"`
}

// PhotoUpload is a photo binary received from the admin UI.
type PhotoUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// CatalogAdminUsecase manages plants, categories and photos. Every write
// invalidates the catalog cache.
type CatalogAdminUsecase interface {
	// ListAllPlants includes inactive plants.
	ListAllPlants(ctx context.Context) ([]*entity.Plant, error)
	CreatePlant(ctx context.Context, input *PlantInput) (*entity.Plant, error)
	UpdatePlant(ctx context.Context, id uuid.UUID, input *PlantInput) (*entity.Plant, error)
	// DeletePlant soft deletes by clearing IsActive.
	DeletePlant(ctx context.Context, id uuid.UUID) error

	CreateCategory(ctx context.Context, input *CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, input *CategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	UploadPhoto(ctx context.Context, plantID uuid.UUID, upload *PhotoUpload) (*entity.Photo, error)
	// DeletePhoto removes both the metadata row and the stored binary.
	DeletePhoto(ctx context.Context, photoID uuid.UUID) error

	// OpenPhoto streams a stored photo binary by storage key.
	OpenPhoto(ctx context.Context, key string) (io.ReadCloser, string, error)
}
