package httpapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/fitrack/internal/model"
	"github.com/slok/fitrack/internal/remote/httpapi"
)

func newTestClient(t *testing.T, h http.Handler) *httpapi.Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := httpapi.NewClient(httpapi.ClientConfig{BaseURL: srv.URL + "/api"})
	require.NoError(t, err)
	return c
}

func intPtr(i int) *int { return &i }

func TestNewClient(t *testing.T) {
	tests := map[string]struct {
		cfg    httpapi.ClientConfig
		expErr bool
	}{
		"Empty config should use defaults.": {
			cfg: httpapi.ClientConfig{},
		},
		"A valid base URL should be accepted.": {
			cfg: httpapi.ClientConfig{BaseURL: "https://fit.example.com/api/"},
		},
		"A base URL without scheme should fail.": {
			cfg:    httpapi.ClientConfig{BaseURL: "fit.example.com/api"},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			c, err := httpapi.NewClient(test.cfg)
			if test.expErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, c)
			}
		})
	}
}

func TestClientListActivities(t *testing.T) {
	workout := model.ActivityTypeWorkout
	planned := model.ActivityStatusPlanned

	tests := map[string]struct {
		activityType *model.ActivityType
		status       *model.ActivityStatus
		expQuery     string
	}{
		"Without filters no query should be sent.": {
			expQuery: "",
		},
		"Type and status filters should be sent as query.": {
			activityType: &workout,
			status:       &planned,
			expQuery:     "status=Planned&type=Workout",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			assert := assert.New(t)

			var gotQuery string
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal("/api/activities", r.URL.Path)
				assert.Equal(http.MethodGet, r.Method)
				assert.NotEmpty(r.Header.Get("X-Request-ID"))
				gotQuery = r.URL.RawQuery
				_, _ = w.Write([]byte(`[
					{"id": 1, "userId": 7, "type": "Workout", "name": "Run", "description": "easy", "date": "2026-03-01T00:00:00", "status": "Planned", "durationMinutes": 30, "calories": 300, "stepsCount": null, "mealType": null, "createdAt": "2026-02-28T10:00:00Z"},
					{"id": "abc", "type": "Steps", "name": "Walk", "date": "2026-03-02", "status": "Completed", "stepsCount": 9000, "calories": 50}
				]`))
			}))

			got, err := c.ListActivities(context.Background(), test.activityType, test.status)
			require.NoError(err)
			assert.Equal(test.expQuery, gotQuery)

			exp := []model.Activity{
				{
					ID:          "1",
					UserID:      "7",
					Type:        model.ActivityTypeWorkout,
					Status:      model.ActivityStatusPlanned,
					Name:        "Run",
					Description: "easy",
					Date:        time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
					Details:     model.WorkoutDetails{DurationMinutes: intPtr(30), Calories: intPtr(300)},
					CreatedAt:   time.Date(2026, 2, 28, 10, 0, 0, 0, time.UTC),
				},
				{
					ID:      "abc",
					Type:    model.ActivityTypeSteps,
					Status:  model.ActivityStatusCompleted,
					Name:    "Walk",
					Date:    time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
					Details: model.StepsDetails{StepsCount: intPtr(9000)},
				},
			}
			assert.Equal(exp, got)
		})
	}
}

func TestClientListActivitiesByDateRange(t *testing.T) {
	require := require.New(t)

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/activities/range", r.URL.Path)
		assert.Equal(t, "2026-03-01", r.URL.Query().Get("startDate"))
		assert.Equal(t, "2026-03-07", r.URL.Query().Get("endDate"))
		_, _ = w.Write([]byte(`[]`))
	}))

	got, err := c.ListActivitiesByDateRange(context.Background(),
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC))
	require.NoError(err)
	assert.Empty(t, got)
}

func TestClientActivityDateKeepsCalendarDay(t *testing.T) {
	tests := map[string]struct {
		date    string
		expDate time.Time
	}{
		"A plain date should be kept.": {
			date:    "2026-03-15",
			expDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		"A date with a positive offset should keep its day.": {
			date:    "2026-03-15T00:00:00+02:00",
			expDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		"A date with a negative offset should keep its day.": {
			date:    "2026-03-15T23:30:00-05:00",
			expDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		"A date without zone should keep its day.": {
			date:    "2026-03-15T00:00:00",
			expDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			assert := assert.New(t)

			var putDate string
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method == http.MethodPut {
					var body map[string]any
					_ = json.NewDecoder(r.Body).Decode(&body)
					putDate, _ = body["date"].(string)
					w.WriteHeader(http.StatusNoContent)
					return
				}
				_, _ = w.Write([]byte(`{"id": 4, "type": "Steps", "name": "Walk", "date": "` + test.date + `", "status": "Planned"}`))
			}))

			got, err := c.GetActivity(context.Background(), "4")
			require.NoError(err)
			assert.Equal(test.expDate, got.Date)

			// Sending the activity back should not move its day.
			_, err = c.UpdateActivity(context.Background(), "4", *got)
			require.NoError(err)
			assert.Equal("2026-03-15", putDate)
		})
	}
}

func TestClientUpdateStatus(t *testing.T) {
	tests := map[string]struct {
		handler  http.HandlerFunc
		status   model.ActivityStatus
		expErr   error
		expMsg   string
		expNil   bool
		expCalls int
	}{
		"A successful update should send the status body.": {
			status: model.ActivityStatusInProgress,
			handler: func(w http.ResponseWriter, r *http.Request) {
				b, _ := io.ReadAll(r.Body)
				assert.JSONEq(t, `{"status":"InProgress"}`, string(b))
				_, _ = w.Write([]byte(`{"id": 4, "type": "Meal", "name": "Lunch", "date": "2026-03-01", "status": "InProgress", "mealType": "Lunch", "calories": 600}`))
			},
			expCalls: 1,
		},
		"An update replied with no content should succeed without record.": {
			status: model.ActivityStatusCompleted,
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
			expNil:   true,
			expCalls: 1,
		},
		"A not found rejection should be a typed not found failure.": {
			status: model.ActivityStatusCompleted,
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			expErr:   model.ErrNotFound,
			expMsg:   "Failed to update status",
			expCalls: 1,
		},
		"A validation rejection should use the API message.": {
			status: model.ActivityStatusCompleted,
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"message":"invalid transition"}`))
			},
			expErr:   model.ErrNotValid,
			expMsg:   "invalid transition",
			expCalls: 1,
		},
		"An invalid status should never be sent.": {
			status: model.ActivityStatus("Cancelled"),
			handler: func(w http.ResponseWriter, r *http.Request) {
				t.Errorf("unexpected request")
			},
			expErr:   model.ErrNotValid,
			expCalls: 0,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			assert := assert.New(t)

			calls := 0
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				assert.Equal(http.MethodPatch, r.Method)
				assert.Equal("/api/activities/4/status", r.URL.Path)
				test.handler(w, r)
			}))

			got, err := c.UpdateStatus(context.Background(), "4", test.status)
			assert.Equal(test.expCalls, calls)

			if test.expErr != nil {
				require.Error(err)
				assert.ErrorIs(err, test.expErr)
				if test.expMsg != "" {
					apiErr, ok := httpapi.IsAPIError(err)
					require.True(ok)
					assert.Equal(test.expMsg, apiErr.Message)
				}
				return
			}

			require.NoError(err)
			if test.expNil {
				assert.Nil(got)
				return
			}
			require.NotNil(got)
			assert.Equal(model.ActivityStatusInProgress, got.Status)
			assert.Equal(model.MealDetails{MealType: model.MealTypeLunch, Calories: intPtr(600)}, got.Details)
		})
	}
}

func TestClientCreateActivity(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(http.MethodPost, r.Method)
		assert.NotEmpty(r.Header.Get("Idempotency-Key"))

		var body map[string]any
		assert.NoError(json.NewDecoder(r.Body).Decode(&body))
		assert.Equal("Meal", body["type"])
		assert.Equal("2026-03-01", body["date"])
		assert.Equal("Dinner", body["mealType"])
		assert.Equal(float64(1), body["userId"])
		assert.Nil(body["stepsCount"])
		_, hasID := body["id"]
		assert.False(hasID)

		body["id"] = 10
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(body)
	}))

	got, err := c.CreateActivity(context.Background(), model.Activity{
		UserID:  "1",
		Type:    model.ActivityTypeMeal,
		Status:  model.ActivityStatusPlanned,
		Name:    "Pasta",
		Date:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Details: model.MealDetails{MealType: model.MealTypeDinner, Calories: intPtr(800)},
	})
	require.NoError(err)
	assert.Equal("10", got.ID)
	assert.Equal(model.MealDetails{MealType: model.MealTypeDinner, Calories: intPtr(800)}, got.Details)
}

func TestClientLoginUser(t *testing.T) {
	tests := map[string]struct {
		handler http.HandlerFunc
		expUser *model.User
		expErr  error
		expMsg  string
	}{
		"A successful login should return the user record.": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"userId": 3, "firstName": "John", "lastName": "Doe", "email": "john@example.com", "createdAt": "2026-01-01T09:00:00"}`))
			},
			expUser: &model.User{
				ID:        "3",
				FirstName: "John",
				LastName:  "Doe",
				Email:     "john@example.com",
				CreatedAt: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
			},
		},
		"Bad credentials should return the API message.": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"message":"Invalid email or password"}`))
			},
			expErr: model.ErrUnauthorized,
			expMsg: "Invalid email or password",
		},
		"A rejection without message should use the default one.": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`oops`))
			},
			expMsg: "Login failed",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			assert := assert.New(t)

			c := newTestClient(t, test.handler)
			got, err := c.LoginUser(context.Background(), model.Credentials{Email: "john@example.com", Password: "x"})

			if test.expMsg != "" {
				require.Error(err)
				if test.expErr != nil {
					assert.ErrorIs(err, test.expErr)
				}
				apiErr, ok := httpapi.IsAPIError(err)
				require.True(ok)
				assert.Equal(test.expMsg, apiErr.Message)
				return
			}

			require.NoError(err)
			assert.Equal(test.expUser, got)
		})
	}
}

func TestClientTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := httpapi.NewClient(httpapi.ClientConfig{BaseURL: url + "/api"})
	require.NoError(t, err)

	_, err = c.GetActivity(context.Background(), "1")
	require.Error(t, err)
	_, isAPIErr := httpapi.IsAPIError(err)
	assert.False(t, isAPIErr)
	assert.False(t, errors.Is(err, model.ErrNotFound))
}

func TestClientCheckHealth(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"Healthy","database":"up"}`))
	}))

	h, err := c.CheckHealth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Healthy", h.Status)
	assert.Equal(t, map[string]any{"database": "up"}, h.Details)
}
