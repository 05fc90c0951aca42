package create

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/slok/fitrack/internal/log"
	"github.com/slok/fitrack/internal/model"
	"github.com/slok/fitrack/internal/remote"
	"github.com/slok/fitrack/internal/session"
)

// ServiceConfig is the configuration for the create service.
type ServiceConfig struct {
	Store remote.ActivityStore
	// Sessions is optional, when set the logged in user owns the new activities.
	Sessions *session.Manager
	// Today returns the default date of new activities.
	Today  func() time.Time
	Logger log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Store == nil {
		return fmt.Errorf("activity store is required")
	}
	if c.Today == nil {
		c.Today = model.Today
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Create"})
	return nil
}

// Service handles activity creation.
type Service struct {
	store    remote.ActivityStore
	sessions *session.Manager
	today    func() time.Time
	logger   log.Logger
}

// NewService creates a new create service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		store:    cfg.Store,
		sessions: cfg.Sessions,
		today:    cfg.Today,
		logger:   cfg.Logger,
	}, nil
}

// Request represents the create request parameters.
type Request struct {
	// Activity is the new activity, the ID is ignored. Missing status defaults
	// to planned and missing date to today.
	Activity model.Activity
}

// Run validates and creates the activity.
func (s *Service) Run(ctx context.Context, req Request) (*model.Activity, error) {
	a := req.Activity
	a.ID = ""
	if a.Status == "" {
		a.Status = model.ActivityStatusPlanned
	}
	if a.Date.IsZero() {
		a.Date = s.today()
	}
	if a.Details == nil {
		a.Details = model.EmptyDetails(a.Type)
	}

	if a.UserID == "" && s.sessions != nil {
		sess, err := s.sessions.Current(ctx)
		switch {
		case err == nil:
			a.UserID = sess.User.ID
		case errors.Is(err, model.ErrNotFound):
			s.logger.Debugf("Not logged in, creating activity without owner")
		default:
			return nil, err
		}
	}

	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("invalid activity: %w", err)
	}

	created, err := s.store.CreateActivity(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("could not create activity: %w", err)
	}

	s.logger.Infof("created %s activity %s", created.Type, created.ID)
	return created, nil
}
