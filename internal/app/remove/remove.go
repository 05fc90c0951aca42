package remove

import (
	"context"
	"fmt"
	"strings"

	"github.com/slok/fitrack/internal/log"
	"github.com/slok/fitrack/internal/model"
	"github.com/slok/fitrack/internal/remote"
)

// ServiceConfig is the configuration for the remove service.
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

// Service removes activities.
type Service struct {
	store  remote.ActivityStore
	logger log.Logger
}

// NewService creates a new remove service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		store:  cfg.Store,
		logger: cfg.Logger,
	}, nil
}

// Request represents the remove request parameters.
type Request struct {
	// IDs are the activities to remove, in order.
	IDs []string
}

// Run removes the activities one by one and stops on the first failure.
// It returns the IDs that were removed.
func (s *Service) Run(ctx context.Context, req Request) ([]string, error) {
	if len(req.IDs) == 0 {
		return nil, fmt.Errorf("at least one activity id is required: %w", model.ErrNotValid)
	}

	removed := make([]string, 0, len(req.IDs))
	for _, id := range req.IDs {
		id = strings.TrimSpace(id)
		s.logger.Debugf("removing activity: %s", id)

		if err := s.store.DeleteActivity(ctx, id); err != nil {
			return removed, fmt.Errorf("could not remove activity %s: %w", id, err)
		}

		s.logger.Infof("removed activity: %s", id)
		removed = append(removed, id)
	}

	return removed, nil
}
