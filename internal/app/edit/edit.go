package edit

import (
	"context"
	"fmt"
	"strings"

	"github.com/slok/fitrack/internal/log"
	"github.com/slok/fitrack/internal/model"
	"github.com/slok/fitrack/internal/remote"
)

// ServiceConfig is the configuration for the edit service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Edit"})
	return nil
}

// Service edits existing activities.
type Service struct {
	store  remote.ActivityStore
	logger log.Logger
}

// NewService creates a new edit service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		store:  cfg.Store,
		logger: cfg.Logger,
	}, nil
}

// Request represents the edit request parameters. Exactly one of Patch or
// Replacement is required.
type Request struct {
	ID          string
	Patch       *model.ActivityPatch
	Replacement *model.Activity
}

func (r Request) validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("activity id is required: %w", model.ErrNotValid)
	}
	if (r.Patch == nil) == (r.Replacement == nil) {
		return fmt.Errorf("exactly one of patch or replacement is required: %w", model.ErrNotValid)
	}
	if r.Patch != nil && r.Patch.IsEmpty() {
		return fmt.Errorf("nothing to change: %w", model.ErrNotValid)
	}
	return nil
}

// Run loads the current activity, applies the changes and stores the result.
// The activity type can't be changed.
func (s *Service) Run(ctx context.Context, req Request) (*model.Activity, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	id := strings.TrimSpace(req.ID)

	current, err := s.store.GetActivity(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get activity %s: %w", id, err)
	}

	var updated model.Activity
	if req.Replacement != nil {
		updated = *req.Replacement
		updated.ID = current.ID
		updated.UserID = current.UserID
		updated.CreatedAt = current.CreatedAt
		updated.UpdatedAt = current.UpdatedAt
		if updated.Type == "" {
			updated.Type = current.Type
		}
	} else {
		updated, err = req.Patch.Apply(*current)
		if err != nil {
			return nil, fmt.Errorf("invalid changes: %w", err)
		}
	}

	if err := model.ValidateUpdate(*current, updated); err != nil {
		return nil, fmt.Errorf("invalid activity: %w", err)
	}

	result, err := s.store.UpdateActivity(ctx, id, updated)
	if err != nil {
		return nil, fmt.Errorf("could not update activity %s: %w", id, err)
	}
	// The store may reply without the record.
	if result == nil {
		result = &updated
	}

	s.logger.Infof("updated activity %s", id)
	return result, nil
}
