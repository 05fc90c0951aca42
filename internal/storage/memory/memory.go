package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/slok/fitrack/internal/log"
	"github.com/slok/fitrack/internal/model"
	"github.com/slok/fitrack/internal/storage"
)

// RepositoryConfig is the configuration for the memory repository.
type RepositoryConfig struct {
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.Memory"})
	return nil
}

// Repository is an in-memory implementation of storage.Repository.
type Repository struct {
	session *model.Session
	mu      sync.RWMutex
	logger  log.Logger
}

// NewRepository creates a new memory repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Repository{logger: cfg.Logger}, nil
}

var _ storage.Repository = &Repository{}

// SaveSession stores the session replacing the previous one.
func (r *Repository) SaveSession(ctx context.Context, s model.Session) error {
	if s.User.ID == "" {
		return fmt.Errorf("session user id is required: %w", model.ErrNotValid)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.session = &s
	r.logger.Debugf("Saved session of user %s", s.User.ID)

	return nil
}

// GetSession returns the stored session.
func (r *Repository) GetSession(ctx context.Context) (*model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.session == nil {
		return nil, fmt.Errorf("session: %w", model.ErrNotFound)
	}

	// Return a copy
	sessionCopy := *r.session
	return &sessionCopy, nil
}

// DeleteSession removes the stored session if any.
func (r *Repository) DeleteSession(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.session = nil
	return nil
}
