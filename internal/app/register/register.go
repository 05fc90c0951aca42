package register

import (
	"context"
	"fmt"

	"github.com/slok/fitrack/internal/log"
	"github.com/slok/fitrack/internal/model"
	"github.com/slok/fitrack/internal/remote"
)

// ServiceConfig is the configuration for the register service.
type ServiceConfig struct {
	UserStore remote.UserStore
	Logger    log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.UserStore == nil {
		return fmt.Errorf("user store is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Register"})
	return nil
}

// Service registers new users.
type Service struct {
	users  remote.UserStore
	logger log.Logger
}

// NewService creates a new register service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		users:  cfg.UserStore,
		logger: cfg.Logger,
	}, nil
}

// Request represents the register request parameters.
type Request struct {
	Registration model.Registration
}

// Run registers a new user. Registering doesn't log the user in.
func (s *Service) Run(ctx context.Context, req Request) (*model.User, error) {
	if err := req.Registration.Validate(); err != nil {
		return nil, fmt.Errorf("invalid registration: %w", err)
	}

	user, err := s.users.RegisterUser(ctx, req.Registration)
	if err != nil {
		return nil, fmt.Errorf("could not register user: %w", err)
	}

	s.logger.Infof("registered user %s", user.Email)
	return user, nil
}
