package migrations

import (
	"fmt"

	"github.com/VladPetriv/category_manager/pkg/logger"
	"github.com/jmoiron/sqlx"
	"github.com/lopezator/migrator"
)

const migrationsTable = "category_manager_migrations"

// MigrateDB applies pending migrations to the database.
func MigrateDB(log *logger.Logger, db *sqlx.DB, dbName string, migrations []any) error {
	logger := log.With().Str("name", "MigrateDB").Str("dbName", dbName).Logger()

	m, err := migrator.New(
		migrator.TableName(migrationsTable),
		migrator.WithLogger(migrator.LoggerFunc(func(msg string, args ...interface{}) {
			logger.Debug().Msgf(msg, args...)
		})),
		migrator.Migrations(migrations...),
	)
	if err != nil {
		return fmt.Errorf("init migrator: %w", err)
	}

	pending, err := m.Pending(db.DB)
	if err != nil {
		// migrations table doesn't exist yet, so everything is pending
		logger.Warn().Err(err).Msg("could not get pending migrations")
		pending = make([]any, len(migrations))
	}

	logger.Info().
		Int("dbVersion", len(migrations)-len(pending)).
		Int("pending", len(pending)).
		Msg("current database version")

	if len(pending) == 0 {
		logger.Info().Msg("no new migrations were found")
		return nil
	}

	err = m.Migrate(db.DB)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	logger.Info().Int("updatedDatabaseVersion", len(migrations)).Msg("migrations were successfully completed")
	return nil
}
