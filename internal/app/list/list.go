package list

import (
	"context"
	"fmt"

	"github.com/slok/fitrack/internal/listsync"
	"github.com/slok/fitrack/internal/log"
	"github.com/slok/fitrack/internal/metrics"
	"github.com/slok/fitrack/internal/model"
	"github.com/slok/fitrack/internal/remote"
)

// ServiceConfig is the configuration for the list service.
type ServiceConfig struct {
	Lister          remote.ActivityLister
	MetricsRecorder metrics.Recorder
	Logger          log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Lister == nil {
		return fmt.Errorf("activity lister is required")
	}

	if c.MetricsRecorder == nil {
		c.MetricsRecorder = metrics.Noop
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Service lists activities with optional filtering.
type Service struct {
	lister   remote.ActivityLister
	recorder metrics.Recorder
	logger   log.Logger
}

// NewService creates a new list service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		lister:   cfg.Lister,
		recorder: cfg.MetricsRecorder,
		logger:   cfg.Logger,
	}, nil
}

// Request represents the list request parameters.
type Request struct {
	Filter model.ActivityFilter
}

// Run loads the dashboard list with the filter and returns it.
func (s *Service) Run(ctx context.Context, req Request) ([]model.Activity, error) {
	l, err := listsync.NewList(listsync.ListConfig{
		Lister:          s.lister,
		MetricsRecorder: s.recorder,
		Logger:          s.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create activity list: %w", err)
	}

	if err := l.Reload(ctx, req.Filter); err != nil {
		return nil, fmt.Errorf("%s: %w", listsync.ErrMessageLoadFailed, err)
	}

	activities := l.Activities()
	s.logger.Debugf("found %d activities", len(activities))
	return activities, nil
}
