package database

import (
	"embed"
	"errors"
	"fmt"
	"time"

	"invitegate/internal/config"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	sqlitedb "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

//go:embed migrations
var migrationsFS embed.FS

func init() {
	// modernc registers itself as "sqlite", which sqlx does not know by default
	sqlx.BindDriver(config.DriverSQLite, sqlx.QUESTION)
}

// Connect opens the configured database with retries
func Connect(cfg config.DatabaseConfig, logger *zap.Logger) (*sqlx.DB, error) {
	var db *sqlx.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second
	if cfg.Driver == config.DriverSQLite {
		// a local file either opens or it doesn't
		maxRetries = 1
	}

	for i := 0; i < maxRetries; i++ {
		db, err = sqlx.Open(cfg.Driver, cfg.DSN())
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.String("driver", cfg.Driver),
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.String("driver", cfg.Driver),
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			if i+1 < maxRetries {
				time.Sleep(retryDelay)
			}
			continue
		}

		configurePool(db, cfg.Driver)
		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

func configurePool(db *sqlx.DB, driver string) {
	if driver == config.DriverSQLite {
		// SQLite serializes writers, a single connection avoids SQLITE_BUSY
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
		return
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
}

// Migrate applies the embedded schema migrations for the driver in use
func Migrate(db *sqlx.DB, logger *zap.Logger) error {
	driverName := db.DriverName()

	src, err := iofs.New(migrationsFS, "migrations/"+driverName)
	if err != nil {
		return fmt.Errorf("failed to open migration source: %w", err)
	}

	var m *migrate.Migrate
	switch driverName {
	case config.DriverSQLite:
		driver, err := sqlitedb.WithInstance(db.DB, &sqlitedb.Config{})
		if err != nil {
			return fmt.Errorf("failed to create migration driver: %w", err)
		}
		m, err = migrate.NewWithInstance("iofs", src, driverName, driver)
		if err != nil {
			return fmt.Errorf("failed to create migration instance: %w", err)
		}
	case config.DriverPostgres:
		driver, err := postgresdb.WithInstance(db.DB, &postgresdb.Config{})
		if err != nil {
			return fmt.Errorf("failed to create migration driver: %w", err)
		}
		m, err = migrate.NewWithInstance("iofs", src, driverName, driver)
		if err != nil {
			return fmt.Errorf("failed to create migration instance: %w", err)
		}
	default:
		return fmt.Errorf("unsupported database driver %q", driverName)
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Migrations applied successfully")
	return nil
}
