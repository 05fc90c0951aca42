package profile

import (
	"context"
	"fmt"

	"github.com/slok/fitrack/internal/log"
	"github.com/slok/fitrack/internal/model"
	"github.com/slok/fitrack/internal/remote"
	"github.com/slok/fitrack/internal/session"
)

// RecentActivitiesLimit is the number of activities the profile shows.
const RecentActivitiesLimit = 5

// ServiceConfig is the configuration for the profile service.
type ServiceConfig struct {
	Store    remote.ActivityStore
	Sessions *session.Manager
	Logger   log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Store == nil {
		return fmt.Errorf("activity store is required")
	}
	if c.Sessions == nil {
		return fmt.Errorf("session manager is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Profile"})
	return nil
}

// Service builds the profile of the logged in user.
type Service struct {
	store    remote.ActivityStore
	sessions *session.Manager
	logger   log.Logger
}

// NewService creates a new profile service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		store:    cfg.Store,
		sessions: cfg.Sessions,
		logger:   cfg.Logger,
	}, nil
}

// Request represents the profile request parameters.
type Request struct{}

// Response is the profile of a user.
type Response struct {
	User  model.User
	Stats model.ProfileStats
	// Recent are the first activities of the user as listed by the store.
	Recent []model.Activity
	// ActivitiesErr is set when the activities could not be loaded, the
	// profile is still returned with zero stats.
	ActivitiesErr error
}

// Run returns the profile of the logged in user.
func (s *Service) Run(ctx context.Context, req Request) (*Response, error) {
	sess, err := s.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}

	resp := &Response{User: sess.User}

	activities, err := s.store.ListUserActivities(ctx, sess.User.ID)
	if err != nil {
		s.logger.Warningf("could not load activities of user %s: %s", sess.User.ID, err)
		resp.ActivitiesErr = err
		return resp, nil
	}

	resp.Stats = model.ComputeProfileStats(activities)
	resp.Recent = activities
	if len(resp.Recent) > RecentActivitiesLimit {
		resp.Recent = resp.Recent[:RecentActivitiesLimit]
	}

	return resp, nil
}
