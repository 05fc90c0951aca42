package profile_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/slok/fitrack/internal/app/profile"
	"github.com/slok/fitrack/internal/model"
	"github.com/slok/fitrack/internal/remote/remotemock"
	"github.com/slok/fitrack/internal/session"
	"github.com/slok/fitrack/internal/storage/memory"
)

func intPtr(i int) *int { return &i }

func activities(n int) []model.Activity {
	as := make([]model.Activity, 0, n)
	for i := range n {
		as = append(as, model.Activity{
			ID:      fmt.Sprint(i + 1),
			Type:    model.ActivityTypeWorkout,
			Status:  model.ActivityStatusCompleted,
			Date:    time.Date(2026, 3, 1+i, 0, 0, 0, 0, time.UTC),
			Details: model.WorkoutDetails{Calories: intPtr(100), DurationMinutes: intPtr(10)},
		})
	}
	return as
}

func TestServiceRun(t *testing.T) {
	user := model.User{ID: "1", Email: "jane@example.com"}

	tests := map[string]struct {
		loggedIn bool
		mock     func(m *remotemock.MockStore)
		expResp  *profile.Response
		expErr   error
	}{
		"Not logged in should fail.": {
			mock:   func(m *remotemock.MockStore) {},
			expErr: session.ErrNotLoggedIn,
		},
		"The profile should have the stats of all activities and the recent ones.": {
			loggedIn: true,
			mock: func(m *remotemock.MockStore) {
				m.On("ListUserActivities", mock.Anything, "1").Once().Return(activities(7), nil)
			},
			expResp: &profile.Response{
				User: user,
				Stats: model.ProfileStats{
					TotalActivities:      7,
					CompletedActivities:  7,
					TotalWorkouts:        7,
					TotalCalories:        700,
					TotalDurationMinutes: 70,
					CompletionRate:       100,
				},
				Recent: activities(5),
			},
		},
		"Failing to load activities should still return the user.": {
			loggedIn: true,
			mock: func(m *remotemock.MockStore) {
				m.On("ListUserActivities", mock.Anything, "1").Once().Return(nil, errors.New("something"))
			},
			expResp: &profile.Response{
				User:          user,
				ActivitiesErr: errors.New("something"),
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			mStore := remotemock.NewMockStore(t)
			test.mock(mStore)

			repo, err := memory.NewRepository(memory.RepositoryConfig{})
			require.NoError(t, err)
			sessions, err := session.NewManager(session.ManagerConfig{Repository: repo})
			require.NoError(t, err)
			if test.loggedIn {
				_, err := sessions.Start(ctx, user)
				require.NoError(t, err)
			}

			svc, err := profile.NewService(profile.ServiceConfig{Store: mStore, Sessions: sessions})
			require.NoError(t, err)

			got, err := svc.Run(ctx, profile.Request{})
			if test.expErr != nil {
				assert.ErrorIs(t, err, test.expErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expResp, got)
		})
	}
}
