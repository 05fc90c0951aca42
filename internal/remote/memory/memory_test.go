package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/fitrack/internal/model"
	"github.com/slok/fitrack/internal/remote/memory"
)

func date(d int) time.Time { return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC) }

func intPtr(i int) *int { return &i }

func fixtures() []model.Activity {
	return []model.Activity{
		{ID: "1", UserID: "u1", Type: model.ActivityTypeWorkout, Status: model.ActivityStatusPlanned, Name: "Run", Date: date(1), Details: model.WorkoutDetails{}},
		{ID: "2", UserID: "u1", Type: model.ActivityTypeMeal, Status: model.ActivityStatusCompleted, Name: "Lunch", Date: date(3), Details: model.MealDetails{MealType: model.MealTypeLunch}},
		{ID: "3", UserID: "u2", Type: model.ActivityTypeSteps, Status: model.ActivityStatusInProgress, Name: "Walk", Date: date(5), Details: model.StepsDetails{StepsCount: intPtr(100)}},
	}
}

func newStore(t *testing.T) *memory.Store {
	t.Helper()
	s, err := memory.NewStore(memory.StoreConfig{
		Activities: fixtures(),
		TimeNow:    func() time.Time { return date(10) },
	})
	require.NoError(t, err)
	return s
}

func ids(as []model.Activity) []string {
	var r []string
	for _, a := range as {
		r = append(r, a.ID)
	}
	return r
}

func TestStoreListActivities(t *testing.T) {
	workout := model.ActivityTypeWorkout
	completed := model.ActivityStatusCompleted

	tests := map[string]struct {
		list   func(ctx context.Context, s *memory.Store) ([]model.Activity, error)
		expIDs []string
		expErr error
	}{
		"Listing without filters should return all newest first.": {
			list: func(ctx context.Context, s *memory.Store) ([]model.Activity, error) {
				return s.ListActivities(ctx, nil, nil)
			},
			expIDs: []string{"3", "2", "1"},
		},
		"Listing by type should filter.": {
			list: func(ctx context.Context, s *memory.Store) ([]model.Activity, error) {
				return s.ListActivities(ctx, &workout, nil)
			},
			expIDs: []string{"1"},
		},
		"Listing by status should filter.": {
			list: func(ctx context.Context, s *memory.Store) ([]model.Activity, error) {
				return s.ListActivities(ctx, nil, &completed)
			},
			expIDs: []string{"2"},
		},
		"Listing by date range should be inclusive.": {
			list: func(ctx context.Context, s *memory.Store) ([]model.Activity, error) {
				return s.ListActivitiesByDateRange(ctx, date(1), date(3))
			},
			expIDs: []string{"2", "1"},
		},
		"Listing by an inverted date range should fail.": {
			list: func(ctx context.Context, s *memory.Store) ([]model.Activity, error) {
				return s.ListActivitiesByDateRange(ctx, date(3), date(1))
			},
			expErr: model.ErrNotValid,
		},
		"Listing by user should filter.": {
			list: func(ctx context.Context, s *memory.Store) ([]model.Activity, error) {
				return s.ListUserActivities(ctx, "u1")
			},
			expIDs: []string{"2", "1"},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := test.list(context.Background(), newStore(t))
			if test.expErr != nil {
				assert.ErrorIs(t, err, test.expErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expIDs, ids(got))
		})
	}
}

func TestStoreUpdateStatus(t *testing.T) {
	tests := map[string]struct {
		id        string
		status    model.ActivityStatus
		expErr    error
		expStatus model.ActivityStatus
	}{
		"Updating the status of an existing activity should succeed.": {
			id:        "1",
			status:    model.ActivityStatusCompleted,
			expStatus: model.ActivityStatusCompleted,
		},
		"Updating the status of a missing activity should fail.": {
			id:     "99",
			status: model.ActivityStatusCompleted,
			expErr: model.ErrNotFound,
		},
		"Updating to an invalid status should fail.": {
			id:     "1",
			status: "Cancelled",
			expErr: model.ErrNotValid,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := newStore(t)

			got, err := s.UpdateStatus(ctx, test.id, test.status)
			if test.expErr != nil {
				assert.ErrorIs(t, err, test.expErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expStatus, got.Status)
			assert.Equal(t, date(10), got.UpdatedAt)

			stored, err := s.GetActivity(ctx, test.id)
			require.NoError(t, err)
			assert.Equal(t, test.expStatus, stored.Status)
			assert.Equal(t, "Run", stored.Name)
		})
	}
}

func TestStoreActivityLifecycle(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	ctx := context.Background()
	s := newStore(t)

	created, err := s.CreateActivity(ctx, model.Activity{
		UserID:  "u1",
		Type:    model.ActivityTypeMeal,
		Status:  model.ActivityStatusPlanned,
		Name:    "Dinner",
		Date:    date(4),
		Details: model.MealDetails{MealType: model.MealTypeDinner, Calories: intPtr(700)},
	})
	require.NoError(err)
	assert.Equal("4", created.ID)
	assert.Equal(date(10), created.CreatedAt)

	// Type can't change on edit.
	changed := *created
	changed.Type = model.ActivityTypeSteps
	changed.Details = model.StepsDetails{}
	_, err = s.UpdateActivity(ctx, created.ID, changed)
	assert.ErrorIs(err, model.ErrNotValid)

	edited := *created
	edited.Name = "Late dinner"
	got, err := s.UpdateActivity(ctx, created.ID, edited)
	require.NoError(err)
	assert.Equal("Late dinner", got.Name)
	assert.Equal(date(10), got.CreatedAt)

	require.NoError(s.DeleteActivity(ctx, created.ID))
	_, err = s.GetActivity(ctx, created.ID)
	assert.ErrorIs(err, model.ErrNotFound)
	assert.ErrorIs(s.DeleteActivity(ctx, created.ID), model.ErrNotFound)

	// Invalid activities are rejected.
	_, err = s.CreateActivity(ctx, model.Activity{Type: model.ActivityTypeMeal, Status: model.ActivityStatusPlanned})
	assert.ErrorIs(err, model.ErrNotValid)
}

func TestStoreUsers(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	ctx := context.Background()
	s := newStore(t)

	reg := model.Registration{FirstName: "Jane", LastName: "Doe", Email: "Jane@Example.com", Password: "secret"}
	u, err := s.RegisterUser(ctx, reg)
	require.NoError(err)
	assert.Equal("jane@example.com", u.Email)

	_, err = s.RegisterUser(ctx, reg)
	assert.ErrorIs(err, model.ErrAlreadyExists)

	_, err = s.LoginUser(ctx, model.Credentials{Email: "jane@example.com", Password: "wrong"})
	assert.ErrorIs(err, model.ErrUnauthorized)

	got, err := s.LoginUser(ctx, model.Credentials{Email: "jane@example.com", Password: "secret"})
	require.NoError(err)
	assert.Equal(u, got)
}

func TestNewStoreDuplicatedActivities(t *testing.T) {
	_, err := memory.NewStore(memory.StoreConfig{Activities: []model.Activity{{ID: "1"}, {ID: "1"}}})
	assert.ErrorIs(t, err, model.ErrAlreadyExists)
}
