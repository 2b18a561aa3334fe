// Command firestore-import copies the legacy Firestore collections into
// Postgres. It is safe to run more than once.
package main

import (
	"context"
	"log/slog"
	"os"
	"sort"

	"verdeluxe/config"
	"verdeluxe/internal/domain/service"
	"verdeluxe/internal/infra/firebase"
	"verdeluxe/internal/infra/legacy"
	logs "verdeluxe/internal/infra/log"
	"verdeluxe/internal/infra/persistence/postgres"
	"verdeluxe/internal/usecase"
	"verdeluxe/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		fx.WithLogger(logs.FxLogger),
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			firebase.NewApp,
			legacy.NewFirestoreSource,
			postgres.NewCategoryRepository,
			postgres.NewPlantRepository,
			postgres.NewUserRepository,
			postgres.NewOrderRepository,
			postgres.NewWishlistRepository,
			postgres.NewNewsletterRepository,
			postgres.NewContentRepository,
			impl.NewImportService,
		),
		fx.Invoke(registerImport),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		slog.Error("Import failed", slog.Any("error", err))
		os.Exit(1)
	}
	if err := app.Stop(ctx); err != nil {
		slog.Error("Failed to shut down cleanly", slog.Any("error", err))
		os.Exit(1)
	}
}

func registerImport(lc fx.Lifecycle, source service.LegacySource, importUC usecase.ImportUsecase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			snapshot, err := source.Snapshot(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to read Firestore snapshot")
			}

			report, err := importUC.Import(ctx, snapshot)
			if err != nil {
				return err
			}

			collections := make([]string, 0, len(report.Imported))
			for name := range report.Imported {
				collections = append(collections, name)
			}
			sort.Strings(collections)
			for _, name := range collections {
				logger.Info("Collection imported",
					slog.String("collection", name),
					slog.Int("imported", report.Imported[name]),
					slog.Int("skipped", report.Skipped[name]),
				)
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return source.Close()
		},
	})
}
