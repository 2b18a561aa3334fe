package postgres

import (
	"context"
	"time"

	"verdeluxe/internal/domain/entity"
	domainerrors "verdeluxe/internal/domain/errors"
	"verdeluxe/internal/domain/repository"
	"verdeluxe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var plantUpdateColumns = []string{
	"name", "slug", "description", "price", "category_id", "image_urls", "stock",
	"featured", "tags", "is_active", "care_level", "light_requirement",
	"watering_frequency", "size", "updated_at",
}

type plantRepository struct {
	db *gorm.DB
}

func NewPlantRepository(db *gorm.DB) repository.PlantRepository {
	return &plantRepository{db: db}
}

func (repo *plantRepository) List(ctx context.Context, filter entity.PlantFilter) ([]*entity.Plant, error) {
	query := repo.db.WithContext(ctx).Model(&model.PlantModel{})
	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}

	var plantModels []*model.PlantModel
	if err := query.Order("created_at DESC").Find(&plantModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list plants")
	}

	return toPlantDomains(plantModels), nil
}

func (repo *plantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Plant, error) {
	var plantM model.PlantModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&plantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlantNotFound
		}

		return nil, errors.Wrap(err, "failed to find plant by ID")
	}

	return toPlantDomain(&plantM), nil
}

func (repo *plantRepository) FindBySlug(ctx context.Context, slug string) (*entity.Plant, error) {
	var plantM model.PlantModel
	if err := repo.db.WithContext(ctx).Where("slug = ?", slug).First(&plantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlantNotFound
		}

		return nil, errors.Wrap(err, "failed to find plant by slug")
	}

	return toPlantDomain(&plantM), nil
}

func (repo *plantRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Plant, error) {
	if len(ids) == 0 {
		return []*entity.Plant{}, nil
	}

	var plantModels []*model.PlantModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&plantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find plants by IDs")
	}

	return toPlantDomains(plantModels), nil
}

func (repo *plantRepository) Create(ctx context.Context, plant *entity.Plant) error {
	plantM := fromPlantDomain(plant)
	if err := repo.db.WithContext(ctx).Create(plantM).Error; err != nil {
		return translatePlantWriteError(err, "failed to create plant")
	}

	plant.CreatedAt = plantM.CreatedAt
	plant.UpdatedAt = plantM.UpdatedAt

	return nil
}

func (repo *plantRepository) Update(ctx context.Context, plant *entity.Plant) error {
	plantM := fromPlantDomain(plant)
	plantM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.PlantModel{}).
		Where("id = ?", plant.ID).
		Select(plantUpdateColumns).
		Updates(plantM)
	if result.Error != nil {
		return translatePlantWriteError(result.Error, "failed to update plant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlantNotFound
	}
	plant.UpdatedAt = plantM.UpdatedAt

	return nil
}

func (repo *plantRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PlantModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_active": active, "updated_at": time.Now()})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update plant visibility")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlantNotFound
	}

	return nil
}

func (repo *plantRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PlantModel{}).
		Where("id = ? AND is_active = ? AND stock >= ?", id, true, quantity).
		Updates(map[string]any{
			"stock":      gorm.Expr("stock - ?", quantity),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to decrement stock")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	plant, err := repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !plant.IsActive {
		return repository.ErrPlantInactive
	}

	return repository.ErrInsufficientStock
}

func translatePlantWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return repository.ErrPlantSlugTaken
	case isForeignKeyConstraintViolation(err):
		return repository.ErrCategoryNotFound
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails(details)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by ID")
	}

	return toCategoryDomain(&categoryM), nil
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)
	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCategorySlugTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}
	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ?", category.ID).
		Updates(map[string]any{
			"name":        category.Name,
			"slug":        category.Slug,
			"description": category.Description,
			"image_url":   category.ImageURL,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrCategorySlugTaken
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

func (repo *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.PlantModel{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return errors.Wrap(err, "failed to detach plants from category")
		}

		result := tx.Where("id = ?", id).Delete(&model.CategoryModel{})
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to delete category")
		}
		if result.RowsAffected == 0 {
			return repository.ErrCategoryNotFound
		}

		return nil
	})
}

type photoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) repository.PhotoRepository {
	return &photoRepository{db: db}
}

func (repo *photoRepository) ListByPlant(ctx context.Context, plantID uuid.UUID) ([]*entity.Photo, error) {
	var photoModels []*model.PhotoModel
	if err := repo.db.WithContext(ctx).
		Where("plant_id = ?", plantID).
		Order("sort_order ASC, created_at ASC").
		Find(&photoModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list plant photos")
	}

	photos := make([]*entity.Photo, 0, len(photoModels))
	for _, photoM := range photoModels {
		photos = append(photos, toPhotoDomain(photoM))
	}

	return photos, nil
}

func (repo *photoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Photo, error) {
	var photoM model.PhotoModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&photoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPhotoNotFound
		}

		return nil, errors.Wrap(err, "failed to find photo by ID")
	}

	return toPhotoDomain(&photoM), nil
}

func (repo *photoRepository) Create(ctx context.Context, photo *entity.Photo) error {
	photoM := fromPhotoDomain(photo)
	if err := repo.db.WithContext(ctx).Create(photoM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPlantNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create photo")
	}
	photo.CreatedAt = photoM.CreatedAt

	return nil
}

func (repo *photoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PhotoModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete photo")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPhotoNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPlantDomains(plantModels []*model.PlantModel) []*entity.Plant {
	plants := make([]*entity.Plant, 0, len(plantModels))
	for _, plantM := range plantModels {
		plants = append(plants, toPlantDomain(plantM))
	}

	return plants
}

func toPlantDomain(data *model.PlantModel) *entity.Plant {
	if data == nil {
		return nil
	}

	imageURLs := data.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}
	tags := data.Tags
	if tags == nil {
		tags = []string{}
	}

	return &entity.Plant{
		ID:                data.ID,
		Name:              data.Name,
		Slug:              data.Slug,
		Description:       data.Description,
		Price:             data.Price,
		CategoryID:        data.CategoryID,
		ImageURLs:         imageURLs,
		Stock:             data.Stock,
		Featured:          data.Featured,
		Tags:              tags,
		IsActive:          data.IsActive,
		CareLevel:         data.CareLevel,
		LightRequirement:  data.LightRequirement,
		WateringFrequency: data.WateringFrequency,
		Size:              data.Size,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromPlantDomain(data *entity.Plant) *model.PlantModel {
	if data == nil {
		return nil
	}

	return &model.PlantModel{
		ID:                data.ID,
		Name:              data.Name,
		Slug:              data.Slug,
		Description:       data.Description,
		Price:             data.Price,
		CategoryID:        data.CategoryID,
		ImageURLs:         data.ImageURLs,
		Stock:             data.Stock,
		Featured:          data.Featured,
		Tags:              data.Tags,
		IsActive:          data.IsActive,
		CareLevel:         data.CareLevel,
		LightRequirement:  data.LightRequirement,
		WateringFrequency: data.WateringFrequency,
		Size:              data.Size,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	return &entity.Category{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	return &model.CategoryModel{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toPhotoDomain(data *model.PhotoModel) *entity.Photo {
	return &entity.Photo{
		ID:          data.ID,
		PlantID:     data.PlantID,
		FileName:    data.FileName,
		ContentType: data.ContentType,
		Size:        data.Size,
		StorageKey:  data.StorageKey,
		URL:         data.URL,
		SortOrder:   data.SortOrder,
		CreatedAt:   data.CreatedAt,
	}
}

func fromPhotoDomain(data *entity.Photo) *model.PhotoModel {
	return &model.PhotoModel{
		ID:          data.ID,
		PlantID:     data.PlantID,
		FileName:    data.FileName,
		ContentType: data.ContentType,
		Size:        data.Size,
		StorageKey:  data.StorageKey,
		URL:         data.URL,
		SortOrder:   data.SortOrder,
		CreatedAt:   data.CreatedAt,
	}
}
