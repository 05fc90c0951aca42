package logout

import (
	"context"
	"errors"
	"fmt"

	"github.com/slok/fitrack/internal/log"
	"github.com/slok/fitrack/internal/model"
	"github.com/slok/fitrack/internal/session"
)

// ServiceConfig is the configuration for the logout service.
type ServiceConfig struct {
	Sessions *session.Manager
	Logger   log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Sessions == nil {
		return fmt.Errorf("session manager is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Logout"})
	return nil
}

// Service logs users out.
type Service struct {
	sessions *session.Manager
	logger   log.Logger
}

// NewService creates a new logout service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		sessions: cfg.Sessions,
		logger:   cfg.Logger,
	}, nil
}

// Request represents the logout request parameters.
type Request struct{}

// Run ends the current session and returns the user that was logged in, nil
// if nobody was.
func (s *Service) Run(ctx context.Context, req Request) (*model.User, error) {
	var user *model.User
	sess, err := s.sessions.Current(ctx)
	switch {
	case err == nil:
		user = &sess.User
	case !errors.Is(err, model.ErrNotFound):
		return nil, err
	}

	if err := s.sessions.End(ctx); err != nil {
		return nil, err
	}

	if user != nil {
		s.logger.Infof("user %s logged out", user.Email)
	}
	return user, nil
}
