package show

import (
	"context"
	"fmt"
	"strings"

	"github.com/slok/fitrack/internal/log"
	"github.com/slok/fitrack/internal/model"
	"github.com/slok/fitrack/internal/remote"
)

// ServiceConfig is the configuration for the show service.
type ServiceConfig struct {
	Store  remote.ActivityStore
	Logger log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Store == nil {
		return fmt.Errorf("activity store is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	return nil
}

// Service gets the full record of one activity.
type Service struct {
	store  remote.ActivityStore
	logger log.Logger
}

// NewService creates a new show service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		store:  cfg.Store,
		logger: cfg.Logger,
	}, nil
}

// Request represents the show request parameters.
type Request struct {
	ID string
}

// Run returns the activity.
func (s *Service) Run(ctx context.Context, req Request) (*model.Activity, error) {
	id := strings.TrimSpace(req.ID)
	if id == "" {
		return nil, fmt.Errorf("activity id is required: %w", model.ErrNotValid)
	}

	a, err := s.store.GetActivity(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get activity %s: %w", id, err)
	}

	return a, nil
}
