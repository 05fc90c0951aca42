package setstatus

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/slok/fitrack/internal/listsync"
	"github.com/slok/fitrack/internal/log"
	"github.com/slok/fitrack/internal/metrics"
	"github.com/slok/fitrack/internal/model"
	"github.com/slok/fitrack/internal/remote"
	"github.com/slok/fitrack/internal/statusctl"
)

// ServiceConfig is the configuration for the set status service.
type ServiceConfig struct {
	Store           remote.ActivityStore
	MetricsRecorder metrics.Recorder
	Logger          log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Store == nil {
		return fmt.Errorf("activity store is required")
	}
	if c.MetricsRecorder == nil {
		c.MetricsRecorder = metrics.Noop
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.SetStatus"})
	return nil
}

// Service changes the status of activities the way the dashboard does: one
// status controller per activity, all of them feeding a dashboard list.
type Service struct {
	store    remote.ActivityStore
	recorder metrics.Recorder
	logger   log.Logger
}

// NewService creates a new set status service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		store:    cfg.Store,
		recorder: cfg.MetricsRecorder,
		logger:   cfg.Logger,
	}, nil
}

// Change is a requested status of one activity.
type Change struct {
	ActivityID string
	Status     model.ActivityStatus
}

// Request represents the set status request parameters.
type Request struct {
	Changes []Change
	// Filter is the dashboard list filter.
	Filter model.ActivityFilter
}

func (r Request) validate() error {
	if len(r.Changes) == 0 {
		return fmt.Errorf("at least one status change is required: %w", model.ErrNotValid)
	}

	seen := map[string]bool{}
	for _, c := range r.Changes {
		if strings.TrimSpace(c.ActivityID) == "" {
			return fmt.Errorf("activity id is required: %w", model.ErrNotValid)
		}
		if !c.Status.Valid() {
			return fmt.Errorf("invalid status %q for activity %s: %w", c.Status, c.ActivityID, model.ErrNotValid)
		}
		if seen[c.ActivityID] {
			return fmt.Errorf("activity %s is repeated: %w", c.ActivityID, model.ErrNotValid)
		}
		seen[c.ActivityID] = true
	}

	return nil
}

// Result is the result of one requested change.
type Result struct {
	Change  Change
	Attempt statusctl.Attempt
	// Ignored is true when the activity already had the status.
	Ignored bool
	// Err is set when the change failed, including the activity lookup.
	Err error
}

// Response is the result of all the changes plus the dashboard list after them.
type Response struct {
	// Results are in request order.
	Results    []Result
	Activities []model.Activity
	ListErr    error
}

// Failed returns the number of failed changes.
func (r Response) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Run applies all the changes concurrently. A failed change doesn't stop the
// others, failures are reported per change.
func (s *Service) Run(ctx context.Context, req Request) (*Response, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	list, err := listsync.NewList(listsync.ListConfig{
		Lister:          s.store,
		MetricsRecorder: s.recorder,
		Logger:          s.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create activity list: %w", err)
	}

	resp := &Response{Results: make([]Result, len(req.Changes))}
	if err := list.Reload(ctx, req.Filter); err != nil {
		resp.ListErr = err
	}

	loaded := map[string]model.Activity{}
	for _, a := range list.Activities() {
		loaded[a.ID] = a
	}

	var wg sync.WaitGroup
	for i, change := range req.Changes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp.Results[i] = s.apply(ctx, change, loaded, list)
		}()
	}
	wg.Wait()

	resp.Activities = list.Activities()
	return resp, nil
}

func (s *Service) apply(ctx context.Context, change Change, loaded map[string]model.Activity, list *listsync.List) Result {
	res := Result{Change: change}

	current, ok := loaded[change.ActivityID]
	if !ok {
		a, err := s.store.GetActivity(ctx, change.ActivityID)
		if err != nil {
			res.Err = fmt.Errorf("could not get activity %s: %w", change.ActivityID, err)
			return res
		}
		current = *a
	}

	ctrl, err := statusctl.NewController(statusctl.ControllerConfig{
		ActivityID:      change.ActivityID,
		Status:          current.Status,
		Updater:         s.store,
		MetricsRecorder: s.recorder,
		Logger:          s.logger,
	})
	if err != nil {
		res.Err = fmt.Errorf("could not create status controller: %w", err)
		return res
	}
	ctrl.OnConfirmed(list.ApplyConfirmedStatusChange)

	attempt, ok := ctrl.RequestStatusChange(ctx, change.Status)
	if !ok {
		res.Ignored = true
		return res
	}

	res.Attempt = attempt
	if attempt.Outcome == statusctl.OutcomeFailed {
		res.Err = fmt.Errorf("%s: %w", ctrl.Snapshot().LastError, attempt.Err)
	}

	return res
}
