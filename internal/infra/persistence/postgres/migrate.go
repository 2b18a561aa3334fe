package postgres

import (
	"database/sql"
	"log/slog"

	"verdeluxe/internal/errors"
	"verdeluxe/migrations"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

type MigrateDirection string

const (
	MigrateUp   MigrateDirection = "up"
	MigrateDown MigrateDirection = "down"
)

// RunMigrations applies the embedded schema migrations. Steps of 0 means
// all pending migrations in the given direction.
func RunMigrations(sqlDB *sql.DB, logger *slog.Logger, direction MigrateDirection, steps int) error {
	m, err := newMigrator(sqlDB)
	if err != nil {
		return err
	}

	switch {
	case steps > 0 && direction == MigrateDown:
		err = m.Steps(-steps)
	case steps > 0:
		err = m.Steps(steps)
	case direction == MigrateDown:
		err = m.Down()
	default:
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrapf(err, "could not run %s migrations", direction)
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return errors.Wrap(verr, "could not read migration version")
	}
	logger.Info("Migrations applied",
		slog.String("direction", string(direction)),
		slog.Uint64("version", uint64(version)),
		slog.Bool("dirty", dirty),
	)

	return nil
}

func newMigrator(sqlDB *sql.DB) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, errors.Wrap(err, "could not open embedded migrations")
	}

	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "could not create migration driver")
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, errors.Wrap(err, "could not create migrate instance")
	}

	return m, nil
}
