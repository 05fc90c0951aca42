// Package migrations has the embedded schema of the local session database.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/slok/fitrack/internal/log"
)

//go:embed sql/*.sql
var schemaFiles embed.FS

// Migrator applies the session schema to a SQLite database.
type Migrator struct {
	db     *sql.DB
	logger log.Logger
}

// NewMigrator returns a migrator for the database.
func NewMigrator(db *sql.DB, logger log.Logger) (*Migrator, error) {
	if db == nil {
		return nil, fmt.Errorf("db is required")
	}
	if logger == nil {
		logger = log.Noop
	}

	return &Migrator{
		db:     db,
		logger: logger.WithValues(log.Kv{"svc": "sqlite.Migrator"}),
	}, nil
}

// Up brings the schema to the latest version. An up to date schema is not an error.
func (m *Migrator) Up(ctx context.Context) error {
	return m.run(ctx, "up", (*migrate.Migrate).Up)
}

// Down removes the whole schema, the stored session is lost.
func (m *Migrator) Down(ctx context.Context) error {
	return m.run(ctx, "down", (*migrate.Migrate).Down)
}

func (m *Migrator) run(_ context.Context, direction string, apply func(*migrate.Migrate) error) error {
	driver, err := sqlite3.WithInstance(m.db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	src, err := iofs.New(schemaFiles, "sql")
	if err != nil {
		return fmt.Errorf("could not read embedded schema: %w", err)
	}
	defer func() {
		if err := src.Close(); err != nil {
			m.logger.Warningf("Could not close embedded schema: %s", err)
		}
	}()

	inst, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	err = apply(inst)
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		m.logger.Debugf("Schema %s: no change", direction)
		return nil
	case err != nil:
		return fmt.Errorf("could not migrate schema %s: %w", direction, err)
	}

	version, _, err := inst.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		m.logger.Debugf("Schema %s: empty schema", direction)
	case err != nil:
		m.logger.Warningf("Could not read schema version: %s", err)
	default:
		m.logger.Debugf("Schema %s: version %d", direction, version)
	}

	return nil
}
