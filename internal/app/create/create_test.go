package create_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/slok/fitrack/internal/app/create"
	"github.com/slok/fitrack/internal/model"
	"github.com/slok/fitrack/internal/remote/remotemock"
	"github.com/slok/fitrack/internal/session"
	"github.com/slok/fitrack/internal/storage/memory"
)

var today = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

func intPtr(i int) *int { return &i }

func TestNewService(t *testing.T) {
	tests := map[string]struct {
		config create.ServiceConfig
		expErr bool
	}{
		"valid config should create service": {
			config: create.ServiceConfig{Store: &remotemock.MockStore{}},
		},
		"missing store should fail": {
			config: create.ServiceConfig{},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			svc, err := create.NewService(test.config)
			if test.expErr {
				assert.Error(t, err)
				assert.Nil(t, svc)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, svc)
		})
	}
}

func TestServiceRun(t *testing.T) {
	tests := map[string]struct {
		loggedIn *model.User
		req      create.Request
		mock     func(m *remotemock.MockStore)
		expErr   error
	}{
		"A minimal activity should get the defaults.": {
			req: create.Request{Activity: model.Activity{Type: model.ActivityTypeWorkout, Name: "Run"}},
			mock: func(m *remotemock.MockStore) {
				exp := model.Activity{
					Type:    model.ActivityTypeWorkout,
					Name:    "Run",
					Status:  model.ActivityStatusPlanned,
					Date:    today,
					Details: model.WorkoutDetails{},
				}
				m.On("CreateActivity", mock.Anything, exp).Once().Return(&model.Activity{ID: "1", Type: model.ActivityTypeWorkout}, nil)
			},
		},
		"The logged in user should own the activity.": {
			loggedIn: &model.User{ID: "7"},
			req: create.Request{Activity: model.Activity{
				ID:      "ignored",
				Type:    model.ActivityTypeSteps,
				Status:  model.ActivityStatusCompleted,
				Name:    "Walk",
				Date:    today.AddDate(0, 0, -1),
				Details: model.StepsDetails{StepsCount: intPtr(5000)},
			}},
			mock: func(m *remotemock.MockStore) {
				exp := model.Activity{
					UserID:  "7",
					Type:    model.ActivityTypeSteps,
					Status:  model.ActivityStatusCompleted,
					Name:    "Walk",
					Date:    today.AddDate(0, 0, -1),
					Details: model.StepsDetails{StepsCount: intPtr(5000)},
				}
				m.On("CreateActivity", mock.Anything, exp).Once().Return(&model.Activity{ID: "2", Type: model.ActivityTypeSteps}, nil)
			},
		},
		"An activity without name should fail without calling the store.": {
			req:    create.Request{Activity: model.Activity{Type: model.ActivityTypeMeal}},
			mock:   func(m *remotemock.MockStore) {},
			expErr: model.ErrNotValid,
		},
		"Details of another type should fail.": {
			req: create.Request{Activity: model.Activity{
				Type:    model.ActivityTypeMeal,
				Name:    "Lunch",
				Details: model.StepsDetails{},
			}},
			mock:   func(m *remotemock.MockStore) {},
			expErr: model.ErrNotValid,
		},
		"A store rejection should fail.": {
			req: create.Request{Activity: model.Activity{Type: model.ActivityTypeMeal, Name: "Lunch"}},
			mock: func(m *remotemock.MockStore) {
				m.On("CreateActivity", mock.Anything, mock.Anything).Once().Return(nil, model.ErrNotValid)
			},
			expErr: model.ErrNotValid,
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
			if test.loggedIn != nil {
				_, err := sessions.Start(ctx, *test.loggedIn)
				require.NoError(t, err)
			}

			svc, err := create.NewService(create.ServiceConfig{
				Store:    mStore,
				Sessions: sessions,
				Today:    func() time.Time { return today },
			})
			require.NoError(t, err)

			got, err := svc.Run(ctx, test.req)
			if test.expErr != nil {
				assert.ErrorIs(t, err, test.expErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
		})
	}
}
