package database

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/gorm"

	"github.com/nakedifyai/backend/errs"
)

// Migrate runs every pending SQL migration from migrationDir against the
// connected database. A database already at the newest version is not an
// error.
func Migrate(db *gorm.DB, migrationDir string) error {
	if migrationDir == "" {
		return errs.BadRequest("migration directory cannot be empty")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("getting raw connection: %w", err)
	}

	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("initializing migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+migrationDir, "postgres", driver)
	if err != nil {
		return fmt.Errorf("initializing migrations from %s: %w", migrationDir, err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}

// MigrateStep moves the schema forward or back by the given number of
// migrations. Used from the command line when rolling back a bad deploy.
func MigrateStep(db *gorm.DB, migrationDir string, steps int) error {
	if migrationDir == "" {
		return errs.BadRequest("migration directory cannot be empty")
	}
	if steps == 0 {
		return errs.BadRequest("steps cannot be zero")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("getting raw connection: %w", err)
	}

	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("initializing migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+migrationDir, "postgres", driver)
	if err != nil {
		return fmt.Errorf("initializing migrations from %s: %w", migrationDir, err)
	}

	if err := m.Steps(steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("stepping migrations by %d: %w", steps, err)
	}
	return nil
}
