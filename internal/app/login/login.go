package login

import (
	"context"
	"fmt"

	"github.com/slok/fitrack/internal/log"
	"github.com/slok/fitrack/internal/model"
	"github.com/slok/fitrack/internal/remote"
	"github.com/slok/fitrack/internal/session"
)

// ServiceConfig is the configuration for the login service.
type ServiceConfig struct {
	UserStore remote.UserStore
	Sessions  *session.Manager
	Logger    log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.UserStore == nil {
		return fmt.Errorf("user store is required")
	}
	if c.Sessions == nil {
		return fmt.Errorf("session manager is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Login"})
	return nil
}

// Service logs users in.
type Service struct {
	users    remote.UserStore
	sessions *session.Manager
	logger   log.Logger
}

// NewService creates a new login service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		users:    cfg.UserStore,
		sessions: cfg.Sessions,
		logger:   cfg.Logger,
	}, nil
}

// Request represents the login request parameters.
type Request struct {
	Credentials model.Credentials
}

// Run logs the user in and starts a new session. On failure the previous
// session is kept.
func (s *Service) Run(ctx context.Context, req Request) (*model.Session, error) {
	if err := req.Credentials.Validate(); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", err)
	}

	user, err := s.users.LoginUser(ctx, req.Credentials)
	if err != nil {
		return nil, fmt.Errorf("could not log in: %w", err)
	}

	sess, err := s.sessions.Start(ctx, *user)
	if err != nil {
		return nil, err
	}

	s.logger.Infof("user %s logged in", user.Email)
	return sess, nil
}
