package tui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/fitrack/internal/model"
	"github.com/slok/fitrack/internal/remote/memory"
)

func date(d int) time.Time { return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC) }

func fixtures() []model.Activity {
	return []model.Activity{
		{ID: "1", Type: model.ActivityTypeWorkout, Status: model.ActivityStatusPlanned, Name: "Run", Date: date(3), Details: model.WorkoutDetails{}},
		{ID: "2", Type: model.ActivityTypeMeal, Status: model.ActivityStatusCompleted, Name: "Lunch", Date: date(2), Details: model.MealDetails{}},
		{ID: "3", Type: model.ActivityTypeSteps, Status: model.ActivityStatusInProgress, Name: "Walk", Date: date(1), Details: model.StepsDetails{}},
	}
}

// blockingStore wraps the memory store and blocks status updates until released.
type blockingStore struct {
	*memory.Store
	release chan struct{}
	err     error
	listErr error
	mu      sync.Mutex
}

func (b *blockingStore) UpdateStatus(ctx context.Context, id string, status model.ActivityStatus) (*model.Activity, error) {
	<-b.release
	if b.err != nil {
		return nil, b.err
	}
	return b.Store.UpdateStatus(ctx, id, status)
}

func (b *blockingStore) ListActivities(ctx context.Context, t *model.ActivityType, s *model.ActivityStatus) ([]model.Activity, error) {
	b.mu.Lock()
	err := b.listErr
	b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return b.Store.ListActivities(ctx, t, s)
}

func newTestDashboard(t *testing.T) (*Dashboard, *blockingStore) {
	t.Helper()

	s, err := memory.NewStore(memory.StoreConfig{Activities: fixtures()})
	require.NoError(t, err)
	store := &blockingStore{Store: s, release: make(chan struct{})}

	d, err := NewDashboard(context.Background(), DashboardConfig{
		Store: store,
		User:  &model.User{FirstName: "Jane", LastName: "Doe"},
	})
	require.NoError(t, err)

	// Load the initial list.
	d.Update(d.reload()())

	return d, store
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewDashboard(t *testing.T) {
	_, err := NewDashboard(context.Background(), DashboardConfig{})
	assert.Error(t, err)
}

func TestDashboardInitialLoad(t *testing.T) {
	d, _ := newTestDashboard(t)

	view := d.View()
	assert.Contains(t, view, "Activities of Jane Doe")
	assert.Contains(t, view, "type: all  status: all")
	assert.Contains(t, view, "Run")
	assert.Contains(t, view, "Lunch")
	assert.Contains(t, view, "Walk")
	assert.Len(t, d.controllers, 3)
}

func TestDashboardStatusChangeSuccess(t *testing.T) {
	d, store := newTestDashboard(t)

	// Row 0 is "Run", the most recent.
	_, cmd := d.Update(key("3"))
	require.NotNil(t, cmd)

	state := d.controllers["1"].Snapshot()
	assert.True(t, state.Updating)
	assert.Equal(t, model.ActivityStatusCompleted, state.Status)
	assert.Contains(t, d.View(), "updating...")

	// A new request while updating is ignored.
	_, cmd2 := d.Update(key("2"))
	assert.Nil(t, cmd2)

	close(store.release)
	d.Update(cmd())

	state = d.controllers["1"].Snapshot()
	assert.False(t, state.Updating)
	assert.Equal(t, model.ActivityStatusCompleted, state.Status)
	assert.Equal(t, model.ActivityStatusCompleted, d.list.Activities()[0].Status)
	assert.NotContains(t, d.View(), "updating...")
}

func TestDashboardStatusChangeFailure(t *testing.T) {
	d, store := newTestDashboard(t)
	store.err = errors.New("boom")

	d.Update(key("down"))
	_, cmd := d.Update(key("1"))
	require.NotNil(t, cmd)

	close(store.release)
	d.Update(cmd())

	state := d.controllers["2"].Snapshot()
	assert.False(t, state.Updating)
	assert.Equal(t, model.ActivityStatusCompleted, state.Status)
	assert.Equal(t, "Failed to update status", state.LastError)
	assert.Equal(t, model.ActivityStatusCompleted, d.list.Activities()[1].Status)
	assert.Contains(t, d.View(), "Failed to update status")
}

func TestDashboardSameStatusIsIgnored(t *testing.T) {
	d, _ := newTestDashboard(t)

	_, cmd := d.Update(key("1"))
	assert.Nil(t, cmd)
	assert.False(t, d.controllers["1"].Snapshot().Updating)
}

func TestDashboardSelection(t *testing.T) {
	d, _ := newTestDashboard(t)

	d.Update(key("up"))
	assert.Equal(t, 0, d.selected)

	for range 5 {
		d.Update(key("down"))
	}
	assert.Equal(t, 2, d.selected)

	d.Update(key("k"))
	assert.Equal(t, 1, d.selected)
}

func TestDashboardFilters(t *testing.T) {
	d, _ := newTestDashboard(t)

	_, cmd := d.Update(key("t"))
	require.NotNil(t, cmd)
	d.Update(cmd())

	require.NotNil(t, d.filter.Type)
	assert.Equal(t, model.ActivityTypeWorkout, *d.filter.Type)
	assert.Contains(t, d.View(), "type: Workout")
	require.Len(t, d.list.Activities(), 1)
	assert.Len(t, d.controllers, 1)

	// Status filter on top, no planned workouts other than "Run".
	_, cmd = d.Update(key("s"))
	d.Update(cmd())
	assert.Contains(t, d.View(), "status: Planned")
	assert.Len(t, d.list.Activities(), 1)

	_, cmd = d.Update(key("s"))
	d.Update(cmd())
	assert.Empty(t, d.list.Activities())
	assert.Contains(t, d.View(), "No activities found.")
}

func TestDashboardReloadDetachesOldControllers(t *testing.T) {
	d, store := newTestDashboard(t)

	_, cmd := d.Update(key("2"))
	require.NotNil(t, cmd)
	old := d.controllers["1"]

	_, reload := d.Update(key("r"))
	d.Update(reload())
	assert.NotSame(t, old, d.controllers["1"])

	close(store.release)
	msg := cmd()
	resolved, ok := msg.(statusResolvedMsg)
	require.True(t, ok)
	assert.True(t, resolved.attempt.Discarded)
	d.Update(msg)

	// The list still has the status loaded on the reload.
	assert.Equal(t, model.ActivityStatusPlanned, d.list.Activities()[0].Status)
}

func TestDashboardReloadFailure(t *testing.T) {
	d, store := newTestDashboard(t)
	store.mu.Lock()
	store.listErr = errors.New("boom")
	store.mu.Unlock()

	_, cmd := d.Update(key("r"))
	d.Update(cmd())

	view := d.View()
	assert.Contains(t, view, "Failed to load activities")
	assert.Contains(t, view, "No activities found.")
	assert.Empty(t, d.controllers)
	assert.Equal(t, 0, d.selected)
}

func TestDashboardInvalidDateRangeShowsBanner(t *testing.T) {
	d, _ := newTestDashboard(t)
	require.NotEmpty(t, d.list.Activities())

	d.filter.DateRange = &model.DateRange{Start: date(3), End: date(1)}
	d.Update(d.reload()())

	view := d.View()
	assert.Contains(t, view, "Failed to load activities")
	assert.Contains(t, view, "No activities found.")
	assert.Empty(t, d.controllers)
}

func TestDashboardQuit(t *testing.T) {
	d, _ := newTestDashboard(t)

	_, cmd := d.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, ok := d.controllers["1"].RequestStatusChangeAsync(context.Background(), model.ActivityStatusCompleted)
	assert.False(t, ok)
}

func TestNextOption(t *testing.T) {
	opts := []string{"a", "b"}

	var cur *string
	cur = nextOption(cur, opts)
	require.NotNil(t, cur)
	assert.Equal(t, "a", *cur)

	cur = nextOption(cur, opts)
	require.NotNil(t, cur)
	assert.Equal(t, "b", *cur)

	cur = nextOption(cur, opts)
	assert.Nil(t, cur)
}
