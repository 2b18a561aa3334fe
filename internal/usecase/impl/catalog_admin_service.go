package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"verdeluxe/config"
	"verdeluxe/internal/domain/constants"
	"verdeluxe/internal/domain/entity"
	domainerrors "verdeluxe/internal/domain/errors"
	"verdeluxe/internal/domain/repository"
	"verdeluxe/internal/domain/service"
	"verdeluxe/internal/usecase"
	"verdeluxe/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMaxUploadSize = 10 << 20

// photoExtensions lists accepted photo content types and the extension
// stored objects get.
var photoExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type catalogAdminService struct {
	plantRepo     repository.PlantRepository
	categoryRepo  repository.CategoryRepository
	photoRepo     repository.PhotoRepository
	storage       service.PhotoStorage
	cache         service.CatalogCache
	maxUploadSize int64
	logger        *slog.Logger
}

type CatalogAdminServiceParams struct {
	fx.In

	PlantRepo    repository.PlantRepository
	CategoryRepo repository.CategoryRepository
	PhotoRepo    repository.PhotoRepository
	Storage      service.PhotoStorage
	Cache        service.CatalogCache
	Config       *config.Config
	Logger       *slog.Logger
}

func NewCatalogAdminService(params CatalogAdminServiceParams) usecase.CatalogAdminUsecase {
	maxUploadSize := int64(defaultMaxUploadSize)
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.MaxUploadSize > 0 {
		maxUploadSize = params.Config.Storage.MaxUploadSize
	}

	return &catalogAdminService{
		plantRepo:     params.PlantRepo,
		categoryRepo:  params.CategoryRepo,
		photoRepo:     params.PhotoRepo,
		storage:       params.Storage,
		cache:         params.Cache,
		maxUploadSize: maxUploadSize,
		logger:        params.Logger,
	}
}

func (srv *catalogAdminService) ListAllPlants(ctx context.Context) ([]*entity.Plant, error) {
	plants, err := srv.plantRepo.List(ctx, entity.PlantFilter{IncludeInactive: true})
	if err != nil {
		return nil, translateError(err, "failed to list plants")
	}

	return plants, nil
}

func (srv *catalogAdminService) CreatePlant(ctx context.Context, input *usecase.PlantInput) (*entity.Plant, error) {
	now := time.Now()
	plant := &entity.Plant{
		ID:        uuid.New(),
		IsActive:  true,
		CreatedAt: now,
	}
	if err := applyPlantInput(plant, input); err != nil {
		return nil, err
	}
	plant.UpdatedAt = now

	if err := srv.plantRepo.Create(ctx, plant); err != nil {
		return nil, translateError(err, "failed to create plant")
	}

	loggerFrom(ctx, srv.logger).Info("Plant created", slog.String("plant_id", plant.ID.String()), slog.String("slug", plant.Slug))
	srv.invalidate(ctx)

	return plant, nil
}

func (srv *catalogAdminService) UpdatePlant(ctx context.Context, id uuid.UUID, input *usecase.PlantInput) (*entity.Plant, error) {
	plant, err := srv.plantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateError(err, "failed to find plant")
	}

	if err := applyPlantInput(plant, input); err != nil {
		return nil, err
	}
	plant.UpdatedAt = time.Now()

	if err := srv.plantRepo.Update(ctx, plant); err != nil {
		return nil, translateError(err, "failed to update plant")
	}

	srv.invalidate(ctx)

	return plant, nil
}

func (srv *catalogAdminService) DeletePlant(ctx context.Context, id uuid.UUID) error {
	if err := srv.plantRepo.SetActive(ctx, id, false); err != nil {
		return translateError(err, "failed to deactivate plant")
	}

	loggerFrom(ctx, srv.logger).Info("Plant deactivated", slog.String("plant_id", id.String()))
	srv.invalidate(ctx)

	return nil
}

func (srv *catalogAdminService) CreateCategory(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	now := time.Now()
	category := &entity.Category{ID: uuid.New(), CreatedAt: now}
	if err := applyCategoryInput(category, input); err != nil {
		return nil, err
	}
	category.UpdatedAt = now

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, translateError(err, "failed to create category")
	}

	srv.invalidate(ctx)

	return category, nil
}

func (srv *catalogAdminService) UpdateCategory(ctx context.Context, id uuid.UUID, input *usecase.CategoryInput) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateError(err, "failed to find category")
	}

	if err := applyCategoryInput(category, input); err != nil {
		return nil, err
	}
	category.UpdatedAt = time.Now()

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return nil, translateError(err, "failed to update category")
	}

	srv.invalidate(ctx)

	return category, nil
}

func (srv *catalogAdminService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		return translateError(err, "failed to delete category")
	}

	srv.invalidate(ctx)

	return nil
}

func (srv *catalogAdminService) UploadPhoto(ctx context.Context, plantID uuid.UUID, upload *usecase.PhotoUpload) (*entity.Photo, error) {
	ext, ok := photoExtensions[strings.ToLower(upload.ContentType)]
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrUnsupportedMediaType.WithDetails(upload.ContentType))
	}
	if upload.Size > srv.maxUploadSize {
		return nil, errors.WithStack(srv.photoTooLarge())
	}

	if _, err := srv.plantRepo.FindByID(ctx, plantID); err != nil {
		return nil, translateError(err, "failed to find plant")
	}

	existing, err := srv.photoRepo.ListByPlant(ctx, plantID)
	if err != nil {
		return nil, translateError(err, "failed to list plant photos")
	}

	photoID := uuid.New()
	key := fmt.Sprintf("%s/%s/%s%s", constants.PhotoKeyPrefix, plantID, photoID, ext)

	// Read one byte past the limit so oversized bodies are detected even
	// when the declared size lied.
	written, err := srv.storage.Put(ctx, key, upload.ContentType, io.LimitReader(upload.Content, srv.maxUploadSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to store photo")
	}
	if written > srv.maxUploadSize {
		srv.deleteObject(ctx, key)

		return nil, errors.WithStack(srv.photoTooLarge())
	}

	photo := &entity.Photo{
		ID:          photoID,
		PlantID:     plantID,
		FileName:    upload.FileName,
		ContentType: upload.ContentType,
		Size:        written,
		StorageKey:  key,
		URL:         srv.storage.URL(key),
		SortOrder:   len(existing),
		CreatedAt:   time.Now(),
	}
	if err := srv.photoRepo.Create(ctx, photo); err != nil {
		srv.deleteObject(ctx, key)

		return nil, translateError(err, "failed to save photo metadata")
	}

	loggerFrom(ctx, srv.logger).Info("Photo uploaded",
		slog.String("plant_id", plantID.String()),
		slog.String("photo_id", photoID.String()),
		slog.Int64("size", written),
	)
	srv.invalidate(ctx)

	return photo, nil
}

func (srv *catalogAdminService) DeletePhoto(ctx context.Context, photoID uuid.UUID) error {
	photo, err := srv.photoRepo.FindByID(ctx, photoID)
	if err != nil {
		return translateError(err, "failed to find photo")
	}

	if err := srv.photoRepo.Delete(ctx, photoID); err != nil {
		return translateError(err, "failed to delete photo metadata")
	}
	srv.deleteObject(ctx, photo.StorageKey)
	srv.invalidate(ctx)

	return nil
}

func (srv *catalogAdminService) OpenPhoto(ctx context.Context, key string) (io.ReadCloser, string, error) {
	reader, contentType, err := srv.storage.Open(ctx, key)
	if err != nil {
		return nil, "", errors.WithStack(err)
	}

	return reader, contentType, nil
}

// deleteObject removes a stored binary. Orphans are logged, not returned.
func (srv *catalogAdminService) deleteObject(ctx context.Context, key string) {
	if err := srv.storage.Delete(ctx, key); err != nil {
		loggerFrom(ctx, srv.logger).Warn("Failed to delete photo object", slog.String("key", key), slog.Any("error", err))
	}
}

func (srv *catalogAdminService) invalidate(ctx context.Context) {
	if err := srv.cache.Invalidate(ctx); err != nil {
		loggerFrom(ctx, srv.logger).Warn("Failed to invalidate catalog cache", slog.Any("error", err))
	}
}

func applyPlantInput(plant *entity.Plant, input *usecase.PlantInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("name is required"))
	}
	if input.Price.IsNegative() || input.Price.IsZero() {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("price must be positive"))
	}
	if input.Stock < 0 {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("stock must not be negative"))
	}

	slug := entity.Slugify(input.Slug)
	if slug == "" {
		slug = entity.Slugify(name)
	}
	if slug == "" {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("slug must contain letters or digits"))
	}

	imageURLs := input.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}

	plant.Name = name
	plant.Slug = slug
	plant.Description = input.Description
	plant.Price = input.Price.Round(2)
	plant.CategoryID = input.CategoryID
	plant.ImageURLs = imageURLs
	plant.Stock = input.Stock
	plant.Featured = input.Featured
	plant.Tags = entity.NormalizeTags(input.Tags)
	plant.CareLevel = input.CareLevel
	plant.LightRequirement = input.LightRequirement
	plant.WateringFrequency = input.WateringFrequency
	plant.Size = input.Size
	if input.IsActive != nil {
		plant.IsActive = *input.IsActive
	}

	return nil
}

func applyCategoryInput(category *entity.Category, input *usecase.CategoryInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("name is required"))
	}

	slug := entity.Slugify(input.Slug)
	if slug == "" {
		slug = entity.Slugify(name)
	}
	if slug == "" {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("slug must contain letters or digits"))
	}

	category.Name = name
	category.Slug = slug
	category.Description = input.Description
	category.ImageURL = input.ImageURL

	return nil
}

func (srv *catalogAdminService) photoTooLarge() error {
	return domainerrors.ErrPhotoTooLarge.WithDetails("limit is " + util.FormatBytes(srv.maxUploadSize))
}
