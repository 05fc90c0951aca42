// Package statusctl manages the displayed status of a single activity: it
// applies optimistic status changes, confirms them with the remote store and
// rolls them back on failure.
package statusctl

import (
	"context"
	"fmt"
	"sync"

	"github.com/slok/fitrack/internal/log"
	"github.com/slok/fitrack/internal/metrics"
	"github.com/slok/fitrack/internal/model"
	"github.com/slok/fitrack/internal/remote"
)

// ErrMessageUpdateFailed is the user facing message of any failed status update.
const ErrMessageUpdateFailed = "Failed to update status"

// Listener is notified once per confirmed status change.
type Listener func(activityID string, status model.ActivityStatus)

// ControllerConfig is the configuration of a Controller.
type ControllerConfig struct {
	ActivityID string
	// Status is the status of the activity as loaded.
	Status          model.ActivityStatus
	Updater         remote.StatusUpdater
	MetricsRecorder metrics.Recorder
	Logger          log.Logger
}

func (c *ControllerConfig) defaults() error {
	if c.ActivityID == "" {
		return fmt.Errorf("activity id is required")
	}
	if !c.Status.Valid() {
		return fmt.Errorf("invalid status %q: %w", c.Status, model.ErrNotValid)
	}
	if c.Updater == nil {
		return fmt.Errorf("status updater is required")
	}
	if c.MetricsRecorder == nil {
		c.MetricsRecorder = metrics.Noop
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "statusctl.Controller", "activity-id": c.ActivityID})
	return nil
}

// Controller owns the displayed status of one activity. There is at most one
// status update in flight per controller.
type Controller struct {
	activityID string
	updater    remote.StatusUpdater
	recorder   metrics.Recorder
	logger     log.Logger

	mu        sync.Mutex
	state     State
	listeners []Listener
	detached  bool
}

// NewController returns a new controller in the Stable(status) state.
func NewController(cfg ControllerConfig) (*Controller, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Controller{
		activityID: cfg.ActivityID,
		updater:    cfg.Updater,
		recorder:   cfg.MetricsRecorder,
		logger:     cfg.Logger,
		state:      Stable(cfg.Status),
	}, nil
}

// ActivityID returns the activity the controller belongs to.
func (c *Controller) ActivityID() string { return c.activityID }

// Snapshot returns the current state for rendering.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// OnConfirmed registers a listener for confirmed status changes.
func (c *Controller) OnConfirmed(l Listener) {
	if l == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, l)
}

// Detach stops the controller from applying results. An update in flight will
// still finish remotely but its result will be discarded and no listener will
// be notified. Further requests are ignored.
func (c *Controller) Detach() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.detached = true
}

// RequestStatusChange changes the status and waits for the remote store result.
// It returns false, without any side effect, when the request is ignored: same
// status, invalid status, an update already in flight or a detached controller.
func (c *Controller) RequestStatusChange(ctx context.Context, status model.ActivityStatus) (Attempt, bool) {
	result, ok := c.RequestStatusChangeAsync(ctx, status)
	if !ok {
		return Attempt{}, false
	}
	return <-result, true
}

// RequestStatusChangeAsync applies the optimistic transition before returning
// and resolves it in the background. The final attempt is sent on the returned
// channel once. See RequestStatusChange for the ignored requests.
func (c *Controller) RequestStatusChangeAsync(ctx context.Context, status model.ActivityStatus) (<-chan Attempt, bool) {
	attempt, ok := c.begin(status)
	if !ok {
		return nil, false
	}

	result := make(chan Attempt, 1)
	go func() {
		result <- c.resolve(ctx, attempt)
	}()

	return result, true
}

func (c *Controller) begin(status model.ActivityStatus) (Attempt, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.detached {
		return Attempt{}, false
	}

	prev := c.state
	next := Reduce(prev, ChangeRequested{Status: status})
	if next == prev {
		c.logger.Debugf("Status change to %q ignored", status)
		return Attempt{}, false
	}
	c.state = next

	return Attempt{
		ActivityID: c.activityID,
		Previous:   prev.Status,
		Requested:  status,
		Outcome:    OutcomePending,
	}, true
}

func (c *Controller) resolve(ctx context.Context, attempt Attempt) Attempt {
	_, err := c.updater.UpdateStatus(ctx, attempt.ActivityID, attempt.Requested)

	var ev Event = UpdateSucceeded{}
	attempt.Outcome = OutcomeSuccess
	if err != nil {
		ev = UpdateFailed{Message: ErrMessageUpdateFailed}
		attempt.Outcome = OutcomeFailed
		attempt.Err = err
	}
	c.recorder.StatusUpdateAttempt(ctx, string(attempt.Outcome))

	c.mu.Lock()
	if c.detached {
		c.mu.Unlock()
		attempt.Discarded = true
		c.logger.Debugf("Status update result discarded, controller detached")
		return attempt
	}
	c.state = Reduce(c.state, ev)
	listeners := append([]Listener(nil), c.listeners...)
	c.mu.Unlock()

	if err != nil {
		c.logger.Warningf("Status update from %s to %s failed: %s", attempt.Previous, attempt.Requested, err)
		return attempt
	}

	c.logger.Infof("Status updated from %s to %s", attempt.Previous, attempt.Requested)
	for _, l := range listeners {
		l(attempt.ActivityID, attempt.Requested)
	}

	return attempt
}
