package impl

import (
	"context"
	"log/slog"

	"verdeluxe/internal/domain/repository"
	"verdeluxe/internal/domain/service"
	"verdeluxe/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	importCategories  = "categories"
	importPlants      = "plants"
	importUsers       = "users"
	importOrders      = "orders"
	importWishlist    = "wishlist_items"
	importSubscribers = "newsletter_subscribers"
	importContent     = "site_content"
)

type ImportServiceParams struct {
	fx.In

	CategoryRepo   repository.CategoryRepository
	PlantRepo      repository.PlantRepository
	UserRepo       repository.UserRepository
	OrderRepo      repository.OrderRepository
	WishlistRepo   repository.WishlistRepository
	NewsletterRepo repository.NewsletterRepository
	ContentRepo    repository.ContentRepository
	Logger         *slog.Logger
}

type importService struct {
	categoryRepo   repository.CategoryRepository
	plantRepo      repository.PlantRepository
	userRepo       repository.UserRepository
	orderRepo      repository.OrderRepository
	wishlistRepo   repository.WishlistRepository
	newsletterRepo repository.NewsletterRepository
	contentRepo    repository.ContentRepository
	logger         *slog.Logger
}

func NewImportService(params ImportServiceParams) usecase.ImportUsecase {
	return &importService{
		categoryRepo:   params.CategoryRepo,
		plantRepo:      params.PlantRepo,
		userRepo:       params.UserRepo,
		orderRepo:      params.OrderRepo,
		wishlistRepo:   params.WishlistRepo,
		newsletterRepo: params.NewsletterRepo,
		contentRepo:    params.ContentRepo,
		logger:         params.Logger,
	}
}

// Import writes collections in dependency order. Rows whose id already
// exists are skipped, so a second run only adds what is new.
func (s *importService) Import(ctx context.Context, snapshot *service.LegacySnapshot) (*usecase.ImportReport, error) {
	report := &usecase.ImportReport{
		Imported: make(map[string]int),
		Skipped:  make(map[string]int),
	}
	if snapshot == nil {
		return report, nil
	}

	for _, category := range snapshot.Categories {
		_, err := s.categoryRepo.FindByID(ctx, category.ID)
		switch {
		case err == nil:
			report.Skipped[importCategories]++
		case errors.Is(err, repository.ErrCategoryNotFound):
			if err := s.categoryRepo.Create(ctx, category); err != nil {
				if errors.Is(err, repository.ErrCategorySlugTaken) {
					report.Skipped[importCategories]++

					continue
				}

				return report, errors.Wrapf(err, "failed to import category %s", category.Slug)
			}
			report.Imported[importCategories]++
		default:
			return report, errors.Wrap(err, "failed to look up category")
		}
	}

	for _, plant := range snapshot.Plants {
		_, err := s.plantRepo.FindByID(ctx, plant.ID)
		switch {
		case err == nil:
			report.Skipped[importPlants]++
		case errors.Is(err, repository.ErrPlantNotFound):
			if err := s.plantRepo.Create(ctx, plant); err != nil {
				if errors.Is(err, repository.ErrPlantSlugTaken) {
					s.logger.Warn("Skipping plant with duplicate slug", slog.String("slug", plant.Slug))
					report.Skipped[importPlants]++

					continue
				}

				return report, errors.Wrapf(err, "failed to import plant %s", plant.Slug)
			}
			report.Imported[importPlants]++
		default:
			return report, errors.Wrap(err, "failed to look up plant")
		}
	}

	for _, user := range snapshot.Users {
		_, err := s.userRepo.FindByFirebaseUID(ctx, user.FirebaseUID)
		switch {
		case err == nil:
			report.Skipped[importUsers]++
		case errors.Is(err, repository.ErrUserNotFound):
			if err := s.userRepo.Create(ctx, user); err != nil {
				if errors.Is(err, repository.ErrUserAlreadyExists) {
					report.Skipped[importUsers]++

					continue
				}

				return report, errors.Wrap(err, "failed to import user")
			}
			report.Imported[importUsers]++
		default:
			return report, errors.Wrap(err, "failed to look up user")
		}
	}

	for _, order := range snapshot.Orders {
		_, err := s.orderRepo.FindByID(ctx, order.ID)
		switch {
		case err == nil:
			report.Skipped[importOrders]++
		case errors.Is(err, repository.ErrOrderNotFound):
			if err := s.orderRepo.Create(ctx, order); err != nil {
				if errors.Is(err, repository.ErrOrderNumberConflict) {
					report.Skipped[importOrders]++

					continue
				}

				return report, errors.Wrapf(err, "failed to import order %s", order.OrderNumber)
			}
			report.Imported[importOrders]++
		default:
			return report, errors.Wrap(err, "failed to look up order")
		}
	}

	for _, item := range snapshot.WishlistItems {
		if _, err := s.wishlistRepo.Add(ctx, item.UserID, item.PlantID); err != nil {
			if errors.Is(err, repository.ErrPlantNotFound) {
				report.Skipped[importWishlist]++

				continue
			}

			return report, errors.Wrap(err, "failed to import wishlist item")
		}
		report.Imported[importWishlist]++
	}

	for _, email := range snapshot.Subscribers {
		if err := fieldValidator.Var(email, "required,email,max=254"); err != nil {
			report.Skipped[importSubscribers]++

			continue
		}
		if _, err := s.newsletterRepo.Subscribe(ctx, email); err != nil {
			return report, errors.Wrap(err, "failed to import subscriber")
		}
		report.Imported[importSubscribers]++
	}

	for _, content := range snapshot.Content {
		if err := s.contentRepo.Upsert(ctx, content); err != nil {
			return report, errors.Wrapf(err, "failed to import content %s", content.Key)
		}
		report.Imported[importContent]++
	}

	s.logger.Info("Legacy import finished",
		slog.Any("imported", report.Imported),
		slog.Any("skipped", report.Skipped),
	)

	return report, nil
}
