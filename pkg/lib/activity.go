package lib

import (
	"context"
	"fmt"

	"github.com/slok/fitrack/internal/app/create"
	"github.com/slok/fitrack/internal/app/edit"
	"github.com/slok/fitrack/internal/app/list"
	"github.com/slok/fitrack/internal/app/profile"
	"github.com/slok/fitrack/internal/app/remove"
	"github.com/slok/fitrack/internal/app/setstatus"
	"github.com/slok/fitrack/internal/app/show"
)

// ListActivities lists the activities that match the filter, newest first.
//
// When the filter has a date range, the activities are listed by date and
// the type and status criteria are applied locally.
func (c *Client) ListActivities(ctx context.Context, filter ActivityFilter) ([]Activity, error) {
	svc, err := list.NewService(list.ServiceConfig{
		Lister:          c.store,
		MetricsRecorder: c.recorder,
		Logger:          c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	activities, err := svc.Run(ctx, list.Request{Filter: filter})
	if err != nil {
		return nil, mapError(err)
	}

	return activities, nil
}

// GetActivity returns a single activity.
func (c *Client) GetActivity(ctx context.Context, id string) (*Activity, error) {
	svc, err := show.NewService(show.ServiceConfig{
		Store:  c.store,
		Logger: c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	a, err := svc.Run(ctx, show.Request{ID: id})
	if err != nil {
		return nil, mapError(err)
	}

	return a, nil
}

// CreateActivity creates a new activity owned by the logged in user.
//
// A missing status defaults to planned, a missing date to today and missing
// details to the empty details of the activity type.
func (c *Client) CreateActivity(ctx context.Context, a Activity) (*Activity, error) {
	svc, err := create.NewService(create.ServiceConfig{
		Store:    c.store,
		Sessions: c.sessions,
		Logger:   c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	created, err := svc.Run(ctx, create.Request{Activity: a})
	if err != nil {
		return nil, mapError(err)
	}

	return created, nil
}

// UpdateActivity applies a partial update to an activity.
func (c *Client) UpdateActivity(ctx context.Context, id string, patch ActivityPatch) (*Activity, error) {
	return c.edit(ctx, edit.Request{ID: id, Patch: &patch})
}

// ReplaceActivity replaces every editable field of an activity. The ID, owner
// and type of the activity can't be changed.
func (c *Client) ReplaceActivity(ctx context.Context, id string, a Activity) (*Activity, error) {
	return c.edit(ctx, edit.Request{ID: id, Replacement: &a})
}

func (c *Client) edit(ctx context.Context, req edit.Request) (*Activity, error) {
	svc, err := edit.NewService(edit.ServiceConfig{
		Store:  c.store,
		Logger: c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	a, err := svc.Run(ctx, req)
	if err != nil {
		return nil, mapError(err)
	}

	return a, nil
}

// DeleteActivity removes an activity.
func (c *Client) DeleteActivity(ctx context.Context, id string) error {
	svc, err := remove.NewService(remove.ServiceConfig{
		Store:  c.store,
		Logger: c.logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	if _, err := svc.Run(ctx, remove.Request{IDs: []string{id}}); err != nil {
		return mapError(err)
	}

	return nil
}

// SetStatus changes the status of activities optimistically. Failed changes
// are rolled back and reported per change, the returned error is only set
// when the request itself is not valid.
//
// The activity list is loaded with the filter and kept in sync with the
// confirmed changes.
func (c *Client) SetStatus(ctx context.Context, changes []StatusChange, filter ActivityFilter) (*SetStatusResult, error) {
	svc, err := setstatus.NewService(setstatus.ServiceConfig{
		Store:           c.store,
		MetricsRecorder: c.recorder,
		Logger:          c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	req := setstatus.Request{Filter: filter}
	for _, ch := range changes {
		req.Changes = append(req.Changes, setstatus.Change{ActivityID: ch.ActivityID, Status: ch.Status})
	}

	resp, err := svc.Run(ctx, req)
	if err != nil {
		return nil, mapError(err)
	}

	return fromInternalSetStatusResponse(*resp), nil
}

// Profile returns the profile of the logged in user.
func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	svc, err := profile.NewService(profile.ServiceConfig{
		Store:    c.store,
		Sessions: c.sessions,
		Logger:   c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	resp, err := svc.Run(ctx, profile.Request{})
	if err != nil {
		return nil, mapError(err)
	}

	return &Profile{
		User:          resp.User,
		Stats:         resp.Stats,
		Recent:        resp.Recent,
		ActivitiesErr: mapError(resp.ActivitiesErr),
	}, nil
}

func fromInternalSetStatusResponse(resp setstatus.Response) *SetStatusResult {
	result := &SetStatusResult{
		Results:    make([]StatusChangeResult, 0, len(resp.Results)),
		Activities: resp.Activities,
		ListErr:    mapError(resp.ListErr),
	}

	for _, r := range resp.Results {
		res := StatusChangeResult{
			Change:   StatusChange{ActivityID: r.Change.ActivityID, Status: r.Change.Status},
			Previous: r.Attempt.Previous,
			Ignored:  r.Ignored,
			Err:      mapError(r.Err),
		}
		if r.Ignored {
			res.Previous = r.Change.Status
		}
		result.Results = append(result.Results, res)
	}

	return result
}
