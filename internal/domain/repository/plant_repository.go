package repository

import (
	"context"

	"verdeluxe/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrPlantNotFound     = errors.New("plant not found")
	ErrPlantSlugTaken    = errors.New("plant slug already exists")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrPlantInactive     = errors.New("plant is no longer available")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategorySlugTaken = errors.New("category slug already exists")
	ErrPhotoNotFound     = errors.New("photo not found")
)

type PlantRepository interface {
	// List returns plants matching filter ordered by creation time, newest
	// first. No rows is an empty slice, not an error.
	List(ctx context.Context, filter entity.PlantFilter) ([]*entity.Plant, error)

	// FindByID returns inactive plants too; callers decide visibility.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Plant, error)

	FindBySlug(ctx context.Context, slug string) (*entity.Plant, error)

	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Plant, error)

	Create(ctx context.Context, plant *entity.Plant) error

	Update(ctx context.Context, plant *entity.Plant) error

	// SetActive flips the soft-delete flag.
	SetActive(ctx context.Context, id uuid.UUID, active bool) error

	// DecrementStock lowers stock of an active plant by quantity. It returns
	// ErrPlantInactive for a deactivated plant and ErrInsufficientStock when
	// fewer than quantity units remain.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error
}

type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	// Delete detaches plants from the category before removing it.
	Delete(ctx context.Context, id uuid.UUID) error
}

type PhotoRepository interface {
	// ListByPlant returns photos in display order.
	ListByPlant(ctx context.Context, plantID uuid.UUID) ([]*entity.Photo, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Photo, error)
	Create(ctx context.Context, photo *entity.Photo) error
	Delete(ctx context.Context, id uuid.UUID) error
}
