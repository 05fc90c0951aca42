package lib

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/slok/fitrack/internal/statusctl"
	"github.com/slok/fitrack/internal/tui"
)

// StatusController owns the displayed status of one activity.
//
// A status change is shown straight away and confirmed with the API in the
// background. On failure the previous status is restored and the state gets
// the "Failed to update status" error. Only one change can be in flight, new
// requests are ignored until it finishes.
//
// Call Detach when the activity stops being displayed (e.g. the list was
// reloaded). Results that arrive after that are discarded.
type StatusController = statusctl.Controller

// StatusOutcome is the result of a status change attempt.
type StatusOutcome = statusctl.Outcome

const (
	StatusOutcomePending = statusctl.OutcomePending
	StatusOutcomeSuccess = statusctl.OutcomeSuccess
	StatusOutcomeFailed  = statusctl.OutcomeFailed
)

// NewStatusController returns a status controller for a loaded activity.
//
//	ctrl, _ := client.NewStatusController(activity)
//	attempt, ok := ctrl.RequestStatusChange(ctx, lib.ActivityStatusCompleted)
func (c *Client) NewStatusController(a Activity) (*StatusController, error) {
	ctrl, err := statusctl.NewController(statusctl.ControllerConfig{
		ActivityID:      a.ID,
		Status:          a.Status,
		Updater:         c.store,
		MetricsRecorder: c.recorder,
		Logger:          c.logger,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return ctrl, nil
}

// NewDashboard returns the interactive activity dashboard as a Bubble Tea model,
// ready to be run with tea.NewProgram or embedded in another model. The context
// is used on every API call made by the dashboard.
func (c *Client) NewDashboard(ctx context.Context, filter ActivityFilter) (tea.Model, error) {
	user, err := c.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	d, err := tui.NewDashboard(ctx, tui.DashboardConfig{
		Store:           c.store,
		Filter:          filter,
		User:            user,
		MetricsRecorder: c.recorder,
		Logger:          c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create dashboard: %w", err)
	}

	return d, nil
}
