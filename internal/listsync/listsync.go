// Package listsync holds the activity collection of a dashboard and keeps it
// consistent with the status changes confirmed by the status controllers.
package listsync

import (
	"context"
	"fmt"
	"sync"

	"github.com/slok/fitrack/internal/log"
	"github.com/slok/fitrack/internal/metrics"
	"github.com/slok/fitrack/internal/model"
	"github.com/slok/fitrack/internal/remote"
)

// ErrMessageLoadFailed is the user facing message of a failed reload.
const ErrMessageLoadFailed = "Failed to load activities"

// ListConfig is the configuration of a List.
type ListConfig struct {
	Lister          remote.ActivityLister
	MetricsRecorder metrics.Recorder
	Logger          log.Logger
}

func (c *ListConfig) defaults() error {
	if c.Lister == nil {
		return fmt.Errorf("activity lister is required")
	}
	if c.MetricsRecorder == nil {
		c.MetricsRecorder = metrics.Noop
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "listsync.List"})
	return nil
}

// List is an ordered activity collection. The collection is only mutated by
// Reload and ApplyConfirmedStatusChange. Safe for concurrent use.
type List struct {
	lister   remote.ActivityLister
	recorder metrics.Recorder
	logger   log.Logger

	mu         sync.RWMutex
	activities []model.Activity
	loadErr    error
	loading    bool
	filter     model.ActivityFilter
	// generation identifies the latest started reload, older reloads results are dropped.
	generation uint64
}

// NewList returns a new empty list.
func NewList(cfg ListConfig) (*List, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &List{
		lister:   cfg.Lister,
		recorder: cfg.MetricsRecorder,
		logger:   cfg.Logger,
	}, nil
}

// Activities returns a deep copy of the held collection, changing it doesn't
// change the list.
func (l *List) Activities() []model.Activity {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]model.Activity, len(l.activities))
	for i, a := range l.activities {
		a.Details = model.CopyDetails(a.Details)
		result[i] = a
	}
	return result
}

// Err returns the failure of the last applied reload, if any.
func (l *List) Err() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loadErr
}

// ErrMessage returns the user facing message of the last reload failure, empty
// when the last reload succeeded.
func (l *List) ErrMessage() string {
	if l.Err() == nil {
		return ""
	}
	return ErrMessageLoadFailed
}

// Loading returns true while a reload is in flight.
func (l *List) Loading() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loading
}

// Filter returns the filter of the last started reload.
func (l *List) Filter() model.ActivityFilter {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.filter
}

// ApplyConfirmedStatusChange replaces the status of the activity with the id.
// Unknown ids are ignored.
func (l *List) ApplyConfirmedStatusChange(activityID string, status model.ActivityStatus) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.activities {
		if l.activities[i].ID == activityID {
			l.activities[i].Status = status
			l.logger.Debugf("Applied confirmed status %s to activity %s", status, activityID)
			return
		}
	}

	l.logger.Debugf("Confirmed status of activity %s ignored, not in the list", activityID)
}

// Reload replaces the whole collection with the remote activities matching the
// filter. With a date range the range is fetched remotely and type and status
// are filtered locally, without it type and status are sent to the remote
// store. On failure the collection is emptied and the error is kept.
//
// When reloads overlap only the last started one is applied, the returned
// error is the one of this call even if its result was dropped.
func (l *List) Reload(ctx context.Context, filter model.ActivityFilter) error {
	if filter.DateRange != nil {
		if err := filter.DateRange.Validate(); err != nil {
			err = fmt.Errorf("invalid filter: %w", err)

			l.mu.Lock()
			defer l.mu.Unlock()
			l.generation++
			l.loading = false
			l.filter = filter
			l.activities = nil
			l.loadErr = err
			l.logger.Warningf("Could not load activities: %s", err)
			return err
		}
	}

	l.mu.Lock()
	l.generation++
	gen := l.generation
	l.loading = true
	l.filter = filter
	l.mu.Unlock()

	activities, err := l.fetch(ctx, filter)
	l.recorder.ListReload(ctx, err == nil)

	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.generation {
		l.logger.Debugf("Reload result dropped, a newer reload was started")
		return err
	}
	l.loading = false

	if err != nil {
		l.activities = nil
		l.loadErr = err
		l.logger.Warningf("Could not load activities: %s", err)
		return err
	}

	l.activities = activities
	l.loadErr = nil
	l.logger.Debugf("Loaded %d activities", len(activities))

	return nil
}

func (l *List) fetch(ctx context.Context, filter model.ActivityFilter) ([]model.Activity, error) {
	if filter.DateRange == nil {
		activities, err := l.lister.ListActivities(ctx, filter.Type, filter.Status)
		if err != nil {
			return nil, fmt.Errorf("could not list activities: %w", err)
		}
		return activities, nil
	}

	all, err := l.lister.ListActivitiesByDateRange(ctx, filter.DateRange.Start, filter.DateRange.End)
	if err != nil {
		return nil, fmt.Errorf("could not list activities by date range: %w", err)
	}

	activities := make([]model.Activity, 0, len(all))
	for _, a := range all {
		if filter.Match(a) {
			activities = append(activities, a)
		}
	}

	return activities, nil
}
