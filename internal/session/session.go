// Package session manages the lifecycle of the local user session: it is
// started on login, read by whoever needs the current user and ended on logout.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/slok/fitrack/internal/log"
	"github.com/slok/fitrack/internal/model"
	"github.com/slok/fitrack/internal/storage"
)

// ErrNotLoggedIn is returned when there is no session for the configured API.
var ErrNotLoggedIn = fmt.Errorf("not logged in: %w", model.ErrNotFound)

// ManagerConfig is the configuration of the session manager.
type ManagerConfig struct {
	Repository storage.Repository
	// APIURL is the remote store sessions belong to. Sessions of another API
	// are treated as absent.
	APIURL  string
	TimeNow func() time.Time
	Logger  log.Logger
}

func (c *ManagerConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}
	if c.TimeNow == nil {
		c.TimeNow = func() time.Time { return time.Now().UTC() }
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "session.Manager"})
	return nil
}

// Manager manages the local session.
type Manager struct {
	repo    storage.Repository
	apiURL  string
	timeNow func() time.Time
	logger  log.Logger
}

// NewManager returns a new session manager.
func NewManager(cfg ManagerConfig) (*Manager, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Manager{
		repo:    cfg.Repository,
		apiURL:  cfg.APIURL,
		timeNow: cfg.TimeNow,
		logger:  cfg.Logger,
	}, nil
}

// Start stores a new session for the user replacing any previous one.
func (m *Manager) Start(ctx context.Context, user model.User) (*model.Session, error) {
	s := model.Session{
		User:       user,
		APIURL:     m.apiURL,
		LoggedInAt: m.timeNow(),
	}
	if err := m.repo.SaveSession(ctx, s); err != nil {
		return nil, fmt.Errorf("could not save session: %w", err)
	}

	m.logger.Debugf("Session started for user %s", user.ID)
	return &s, nil
}

// Current returns the current session or ErrNotLoggedIn.
func (m *Manager) Current(ctx context.Context) (*model.Session, error) {
	s, err := m.repo.GetSession(ctx)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("could not get session: %w", err)
	}

	if m.apiURL != "" && s.APIURL != m.apiURL {
		m.logger.Debugf("Ignoring session of %s, configured API is %s", s.APIURL, m.apiURL)
		return nil, ErrNotLoggedIn
	}

	return s, nil
}

// End removes the session, ending a missing session is not an error.
func (m *Manager) End(ctx context.Context) error {
	if err := m.repo.DeleteSession(ctx); err != nil {
		return fmt.Errorf("could not delete session: %w", err)
	}

	m.logger.Debugf("Session ended")
	return nil
}
