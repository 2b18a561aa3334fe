package impl

import (
	"context"
	"log/slog"

	"verdeluxe/internal/domain/entity"
	domainerrors "verdeluxe/internal/domain/errors"
	"verdeluxe/internal/domain/repository"
	"verdeluxe/internal/domain/service"
	"verdeluxe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	plantRepo    repository.PlantRepository
	categoryRepo repository.CategoryRepository
	photoRepo    repository.PhotoRepository
	cache        service.CatalogCache
	qrcode       service.QRCodeService
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for the catalog read path, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	PlantRepo    repository.PlantRepository
	CategoryRepo repository.CategoryRepository
	PhotoRepo    repository.PhotoRepository
	Cache        service.CatalogCache
	QRCode       service.QRCodeService
	Logger       *slog.Logger
}

func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		plantRepo:    params.PlantRepo,
		categoryRepo: params.CategoryRepo,
		photoRepo:    params.PhotoRepo,
		cache:        params.Cache,
		qrcode:       params.QRCode,
		logger:       params.Logger,
	}
}

func (srv *catalogService) ListPlants(ctx context.Context, filter entity.PlantFilter) ([]*entity.CatalogPlant, error) {
	filter.IncludeInactive = false

	plants, err := srv.cache.GetOrLoad(ctx, filter, func(ctx context.Context) ([]*entity.CatalogPlant, bool, error) {
		plants, err := srv.plantRepo.List(ctx, filter)
		if err != nil {
			return nil, false, err
		}

		complete := true
		catalog := make([]*entity.CatalogPlant, 0, len(plants))
		for _, plant := range plants {
			item, ok := srv.withPhotos(ctx, plant)
			complete = complete && ok
			catalog = append(catalog, item)
		}

		return catalog, complete, nil
	})
	if err != nil {
		return nil, translateError(err, "failed to list plants")
	}

	return plants, nil
}

func (srv *catalogService) GetPlant(ctx context.Context, id uuid.UUID) (*entity.CatalogPlant, error) {
	plant, err := srv.plantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateError(err, "failed to find plant")
	}
	if !plant.IsActive {
		return nil, errors.WithStack(domainerrors.ErrPlantNotFound)
	}

	item, _ := srv.withPhotos(ctx, plant)

	return item, nil
}

func (srv *catalogService) GetPlantBySlug(ctx context.Context, slug string) (*entity.CatalogPlant, error) {
	plant, err := srv.plantRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, translateError(err, "failed to find plant by slug")
	}
	if !plant.IsActive {
		return nil, errors.WithStack(domainerrors.ErrPlantNotFound)
	}

	item, _ := srv.withPhotos(ctx, plant)

	return item, nil
}

func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, translateError(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *catalogService) ListPlantPhotos(ctx context.Context, plantID uuid.UUID) ([]*entity.Photo, error) {
	if _, err := srv.GetPlant(ctx, plantID); err != nil {
		return nil, err
	}

	photos, err := srv.photoRepo.ListByPlant(ctx, plantID)
	if err != nil {
		return nil, translateError(err, "failed to list plant photos")
	}

	return photos, nil
}

func (srv *catalogService) PlantQRCode(ctx context.Context, plantID uuid.UUID) ([]byte, error) {
	plant, err := srv.plantRepo.FindByID(ctx, plantID)
	if err != nil {
		return nil, translateError(err, "failed to find plant")
	}
	if !plant.IsActive {
		return nil, errors.WithStack(domainerrors.ErrPlantNotFound)
	}

	png, err := srv.qrcode.GeneratePlantARQR(plant.Slug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}

// withPhotos merges photo URLs into the plant. A failed photo lookup
// degrades to no photos for that plant and reports false.
func (srv *catalogService) withPhotos(ctx context.Context, plant *entity.Plant) (*entity.CatalogPlant, bool) {
	ok := true
	photos, err := srv.photoRepo.ListByPlant(ctx, plant.ID)
	if err != nil {
		ok = false
		loggerFrom(ctx, srv.logger).Warn("Failed to load plant photos, serving plant without them",
			slog.String("plant_id", plant.ID.String()),
			slog.Any("error", err),
		)
		photos = []*entity.Photo{}
	}
	if photos == nil {
		photos = []*entity.Photo{}
	}

	plant.ImageURLs = entity.MergePhotoURLs(plant.ImageURLs, photos)

	return &entity.CatalogPlant{Plant: plant, Photos: photos}, ok
}
