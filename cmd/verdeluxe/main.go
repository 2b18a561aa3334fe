// Command verdeluxe serves the storefront and admin REST API.
package main

import (
	"context"
	"log/slog"
	"os"

	"verdeluxe/config"
	"verdeluxe/internal/delivery"
	"verdeluxe/internal/delivery/http"
	"verdeluxe/internal/delivery/http/middleware"
	"verdeluxe/internal/delivery/http/router/handler"
	"verdeluxe/internal/domain/service"
	"verdeluxe/internal/infra/auth"
	"verdeluxe/internal/infra/cache"
	"verdeluxe/internal/infra/firebase"
	logs "verdeluxe/internal/infra/log"
	"verdeluxe/internal/infra/payment"
	"verdeluxe/internal/infra/persistence/postgres"
	"verdeluxe/internal/infra/pubsub"
	"verdeluxe/internal/infra/qrcode"
	"verdeluxe/internal/infra/storage"
	"verdeluxe/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.WithLogger(logs.FxLogger),
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		firebase.NewApp,
		fx.Annotate(
			postgres.NewHealthChecker,
			fx.As(new(handler.HealthChecker)),
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewAdminRepository,
			postgres.NewPlantRepository,
			postgres.NewCategoryRepository,
			postgres.NewPhotoRepository,
			postgres.NewCartRepository,
			postgres.NewOrderRepository,
			postgres.NewWishlistRepository,
			postgres.NewNewsletterRepository,
			postgres.NewContentRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewFirebaseVerifier,
			cache.NewCatalogCache,
			storage.NewPhotoStorage,
			payment.NewSimulatedGateway,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService falls back to 256px, medium recovery when unconfigured.
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewCatalogAdminService,
			impl.NewCartService,
			impl.NewCheckoutService,
			impl.NewOrderService,
			impl.NewAdminService,
			impl.NewUserService,
			impl.NewWishlistService,
			impl.NewNewsletterService,
			impl.NewContentService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewCustomerAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewCatalogHandler,
			handler.NewCatalogAdminHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewUserHandler,
			handler.NewAdminHandler,
			handler.NewStorefrontHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
