package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/slok/fitrack/internal/log"
	"github.com/slok/fitrack/internal/model"
	"github.com/slok/fitrack/internal/storage"
	"github.com/slok/fitrack/internal/storage/sqlite/migrations"
)

// RepositoryConfig is the configuration for the SQLite repository.
type RepositoryConfig struct {
	DBPath string
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.DBPath == "" {
		return fmt.Errorf("db path is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.SQLite"})
	return nil
}

// Repository is a SQLite implementation of storage.Repository.
type Repository struct {
	db     *sql.DB
	logger log.Logger
}

// NewRepository creates a new SQLite repository.
func NewRepository(ctx context.Context, cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	dir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("could not create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", cfg.DBPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	migrator, err := migrations.NewMigrator(db, cfg.Logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create migrator: %w", err)
	}
	if err := migrator.Up(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not run migrations: %w", err)
	}

	cfg.Logger.Debugf("SQLite repository initialized at %s", cfg.DBPath)

	return &Repository{db: db, logger: cfg.Logger}, nil
}

var _ storage.Repository = &Repository{}

// Close closes the database connection.
func (r *Repository) Close() error { return r.db.Close() }

// SaveSession stores the session replacing the previous one.
func (r *Repository) SaveSession(ctx context.Context, s model.Session) error {
	if s.User.ID == "" {
		return fmt.Errorf("session user id is required: %w", model.ErrNotValid)
	}

	var userCreatedAt *int64
	if !s.User.CreatedAt.IsZero() {
		u := s.User.CreatedAt.Unix()
		userCreatedAt = &u
	}

	query := `
		INSERT INTO sessions (
			slot, user_id, first_name, last_name, email,
			user_created_at, api_url, logged_in_at
		)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET
			user_id = excluded.user_id,
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			email = excluded.email,
			user_created_at = excluded.user_created_at,
			api_url = excluded.api_url,
			logged_in_at = excluded.logged_in_at
	`

	_, err := r.db.ExecContext(ctx, query,
		s.User.ID,
		s.User.FirstName,
		s.User.LastName,
		s.User.Email,
		userCreatedAt,
		s.APIURL,
		s.LoggedInAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("could not save session: %w", err)
	}

	r.logger.Debugf("Saved session of user %s", s.User.ID)
	return nil
}

// GetSession returns the stored session.
func (r *Repository) GetSession(ctx context.Context) (*model.Session, error) {
	query := `
		SELECT
			user_id, first_name, last_name, email,
			user_created_at, api_url, logged_in_at
		FROM sessions
		WHERE slot = 1
	`

	var (
		s             model.Session
		userCreatedAt sql.NullInt64
		loggedInAt    int64
	)
	err := r.db.QueryRowContext(ctx, query).Scan(
		&s.User.ID,
		&s.User.FirstName,
		&s.User.LastName,
		&s.User.Email,
		&userCreatedAt,
		&s.APIURL,
		&loggedInAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("session: %w", model.ErrNotFound)
		}
		return nil, fmt.Errorf("could not query session: %w", err)
	}

	if userCreatedAt.Valid {
		s.User.CreatedAt = time.Unix(userCreatedAt.Int64, 0).UTC()
	}
	s.LoggedInAt = time.Unix(loggedInAt, 0).UTC()

	return &s, nil
}

// DeleteSession removes the stored session if any.
func (r *Repository) DeleteSession(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE slot = 1`)
	if err != nil {
		return fmt.Errorf("could not delete session: %w", err)
	}

	r.logger.Debugf("Deleted session")
	return nil
}
