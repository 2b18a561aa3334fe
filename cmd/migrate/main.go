// Command migrate applies the embedded schema migrations.
//
//	migrate [-direction up|down] [-steps n]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"verdeluxe/config"
	logs "verdeluxe/internal/infra/log"
	"verdeluxe/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateFlags struct {
	direction postgres.MigrateDirection
	steps     int
}

func main() {
	direction := flag.String("direction", string(postgres.MigrateUp), "Migration direction (up, down)")
	steps := flag.Int("steps", 0, "Number of steps to apply, 0 for all")
	flag.Parse()

	flags := migrateFlags{direction: postgres.MigrateDirection(*direction), steps: *steps}
	if flags.direction != postgres.MigrateUp && flags.direction != postgres.MigrateDown {
		fmt.Fprintf(os.Stderr, "unknown direction %q\n", *direction)
		os.Exit(2)
	}
	if flags.steps < 0 {
		fmt.Fprintln(os.Stderr, "steps must not be negative")
		os.Exit(2)
	}

	app := fx.New(
		fx.WithLogger(logs.FxLogger),
		fx.Supply(flags),
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(registerMigration),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
	if err := app.Stop(ctx); err != nil {
		slog.Error("Failed to close database", slog.Any("error", err))
		os.Exit(1)
	}
}

// registerMigration runs after the database start hook has verified the connection.
func registerMigration(lc fx.Lifecycle, db *gorm.DB, logger *slog.Logger, flags migrateFlags) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return errors.Wrap(err, "failed to get sql.DB")
			}

			return postgres.RunMigrations(sqlDB, logger, flags.direction, flags.steps)
		},
	})
}
