package listsync_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/slok/fitrack/internal/listsync"
	"github.com/slok/fitrack/internal/model"
	"github.com/slok/fitrack/internal/remote/remotemock"
)

func date(d int) time.Time { return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC) }

func intPtr(i int) *int { return &i }

func activities() []model.Activity {
	return []model.Activity{
		{ID: "1", Type: model.ActivityTypeWorkout, Status: model.ActivityStatusPlanned, Name: "Run", Date: date(1), Details: model.WorkoutDetails{DurationMinutes: intPtr(30)}},
		{ID: "2", Type: model.ActivityTypeMeal, Status: model.ActivityStatusCompleted, Name: "Lunch", Date: date(2), Details: model.MealDetails{MealType: model.MealTypeLunch}},
		{ID: "3", Type: model.ActivityTypeWorkout, Status: model.ActivityStatusCompleted, Name: "Swim", Date: date(3), Details: model.WorkoutDetails{}},
	}
}

func newLoadedList(t *testing.T, as []model.Activity) *listsync.List {
	t.Helper()

	mStore := remotemock.NewMockStore(t)
	mStore.On("ListActivities", mock.Anything, (*model.ActivityType)(nil), (*model.ActivityStatus)(nil)).Once().Return(as, nil)

	l, err := listsync.NewList(listsync.ListConfig{Lister: mStore})
	require.NoError(t, err)
	require.NoError(t, l.Reload(context.Background(), model.ActivityFilter{}))
	return l
}

func TestNewList(t *testing.T) {
	_, err := listsync.NewList(listsync.ListConfig{})
	assert.Error(t, err)
}

func TestListApplyConfirmedStatusChange(t *testing.T) {
	tests := map[string]struct {
		activities []model.Activity
		id         string
		status     model.ActivityStatus
		exp        []model.Activity
	}{
		"Changing a present activity should only change its status.": {
			activities: []model.Activity{
				{ID: "1", Status: model.ActivityStatusPlanned},
				{ID: "2", Status: model.ActivityStatusCompleted},
			},
			id:     "1",
			status: model.ActivityStatusInProgress,
			exp: []model.Activity{
				{ID: "1", Status: model.ActivityStatusInProgress},
				{ID: "2", Status: model.ActivityStatusCompleted},
			},
		},
		"Changing a present activity should keep the other fields and order.": {
			activities: activities(),
			id:         "2",
			status:     model.ActivityStatusPlanned,
			exp: func() []model.Activity {
				as := activities()
				as[1].Status = model.ActivityStatusPlanned
				return as
			}(),
		},
		"Changing a missing activity should be ignored.": {
			activities: activities(),
			id:         "99",
			status:     model.ActivityStatusPlanned,
			exp:        activities(),
		},
		"Changing on an empty list should be ignored.": {
			activities: []model.Activity{},
			id:         "1",
			status:     model.ActivityStatusPlanned,
			exp:        []model.Activity{},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			l := newLoadedList(t, test.activities)
			l.ApplyConfirmedStatusChange(test.id, test.status)
			assert.Equal(t, test.exp, l.Activities())
		})
	}
}

func TestListActivitiesIsACopy(t *testing.T) {
	l := newLoadedList(t, activities())

	got := l.Activities()
	got[0].Status = model.ActivityStatusCompleted
	got[0].Name = "changed"
	*got[0].Details.(model.WorkoutDetails).DurationMinutes = 90

	assert.Equal(t, activities(), l.Activities())
}

func TestListReload(t *testing.T) {
	workout := model.ActivityTypeWorkout
	completed := model.ActivityStatusCompleted
	dateRange := &model.DateRange{Start: date(1), End: date(3)}

	tests := map[string]struct {
		filter        model.ActivityFilter
		mock          func(m *remotemock.MockStore)
		expActivities []model.Activity
		expErr        bool
		expErrMessage string
	}{
		"Without filter all the activities should be loaded.": {
			mock: func(m *remotemock.MockStore) {
				m.On("ListActivities", mock.Anything, (*model.ActivityType)(nil), (*model.ActivityStatus)(nil)).Once().Return(activities(), nil)
			},
			expActivities: activities(),
		},
		"Type and status without date range should be filtered remotely.": {
			filter: model.ActivityFilter{Type: &workout, Status: &completed},
			mock: func(m *remotemock.MockStore) {
				m.On("ListActivities", mock.Anything, &workout, &completed).Once().Return(activities()[2:], nil)
			},
			expActivities: activities()[2:],
		},
		"A date range should be fetched remotely and type and status filtered locally.": {
			filter: model.ActivityFilter{Type: &workout, Status: &completed, DateRange: dateRange},
			mock: func(m *remotemock.MockStore) {
				m.On("ListActivitiesByDateRange", mock.Anything, date(1), date(3)).Once().Return(activities(), nil)
			},
			expActivities: activities()[2:],
		},
		"A date range without other filters should keep all the range.": {
			filter: model.ActivityFilter{DateRange: dateRange},
			mock: func(m *remotemock.MockStore) {
				m.On("ListActivitiesByDateRange", mock.Anything, date(1), date(3)).Once().Return(activities(), nil)
			},
			expActivities: activities(),
		},
		"A remote failure should empty the list and set the error.": {
			mock: func(m *remotemock.MockStore) {
				m.On("ListActivities", mock.Anything, (*model.ActivityType)(nil), (*model.ActivityStatus)(nil)).Once().Return(nil, errors.New("something"))
			},
			expActivities: []model.Activity{},
			expErr:        true,
			expErrMessage: "Failed to load activities",
		},
		"A remote date range failure should empty the list and set the error.": {
			filter: model.ActivityFilter{DateRange: dateRange},
			mock: func(m *remotemock.MockStore) {
				m.On("ListActivitiesByDateRange", mock.Anything, date(1), date(3)).Once().Return(nil, errors.New("something"))
			},
			expActivities: []model.Activity{},
			expErr:        true,
			expErrMessage: "Failed to load activities",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			mStore := remotemock.NewMockStore(t)
			// Every test starts from a loaded list.
			mStore.On("ListActivities", mock.Anything, (*model.ActivityType)(nil), (*model.ActivityStatus)(nil)).Once().Return([]model.Activity{{ID: "old"}}, nil)
			test.mock(mStore)

			l, err := listsync.NewList(listsync.ListConfig{Lister: mStore})
			require.NoError(t, err)
			require.NoError(t, l.Reload(context.Background(), model.ActivityFilter{}))

			err = l.Reload(context.Background(), test.filter)

			if test.expErr {
				assert.Error(err)
				assert.Error(l.Err())
			} else {
				assert.NoError(err)
				assert.NoError(l.Err())
			}
			assert.Equal(test.expErrMessage, l.ErrMessage())
			assert.False(l.Loading())
			assert.Equal(test.filter, l.Filter())

			got := l.Activities()
			if len(test.expActivities) == 0 {
				assert.Empty(got)
			} else {
				assert.Equal(test.expActivities, got)
			}
		})
	}
}

func TestListReloadInvalidDateRange(t *testing.T) {
	l := newLoadedList(t, activities())

	err := l.Reload(context.Background(), model.ActivityFilter{DateRange: &model.DateRange{Start: date(3), End: date(1)}})
	assert.ErrorIs(t, err, model.ErrNotValid)
	assert.Empty(t, l.Activities())
	assert.False(t, l.Loading())
	assert.Equal(t, listsync.ErrMessageLoadFailed, l.ErrMessage())
}

func TestListReloadSuccessClearsError(t *testing.T) {
	mStore := remotemock.NewMockStore(t)
	mStore.On("ListActivities", mock.Anything, (*model.ActivityType)(nil), (*model.ActivityStatus)(nil)).Once().Return(nil, errors.New("something"))
	mStore.On("ListActivities", mock.Anything, (*model.ActivityType)(nil), (*model.ActivityStatus)(nil)).Once().Return(activities(), nil)

	l, err := listsync.NewList(listsync.ListConfig{Lister: mStore})
	require.NoError(t, err)

	assert.Error(t, l.Reload(context.Background(), model.ActivityFilter{}))
	assert.NotEmpty(t, l.ErrMessage())

	assert.NoError(t, l.Reload(context.Background(), model.ActivityFilter{}))
	assert.Empty(t, l.ErrMessage())
	assert.Equal(t, activities(), l.Activities())
}

func TestListOverlappingReloadsLastStartedWins(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	workout := model.ActivityTypeWorkout
	started := make(chan struct{})
	release := make(chan struct{})

	mStore := remotemock.NewMockStore(t)
	// The first reload is slow and answers after the second one.
	mStore.On("ListActivities", mock.Anything, (*model.ActivityType)(nil), (*model.ActivityStatus)(nil)).Once().
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return(activities(), nil)
	mStore.On("ListActivities", mock.Anything, &workout, (*model.ActivityStatus)(nil)).Once().Return(activities()[:1], nil)

	l, err := listsync.NewList(listsync.ListConfig{Lister: mStore})
	require.NoError(err)

	firstDone := make(chan error)
	go func() {
		firstDone <- l.Reload(context.Background(), model.ActivityFilter{})
	}()
	<-started
	assert.True(l.Loading())

	require.NoError(l.Reload(context.Background(), model.ActivityFilter{Type: &workout}))
	close(release)
	require.NoError(<-firstDone)

	assert.Equal(activities()[:1], l.Activities())
	assert.Equal(model.ActivityFilter{Type: &workout}, l.Filter())
	assert.False(l.Loading())
}
