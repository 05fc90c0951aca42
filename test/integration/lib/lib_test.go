package lib_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdklib "github.com/slok/fitrack/pkg/lib"
	intlib "github.com/slok/fitrack/test/integration/lib"
)

func TestLibHealth(t *testing.T) {
	config := intlib.NewConfig(t)
	c := intlib.NewClient(t, config)

	results, err := c.Health(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, sdklib.CheckStatusOK, results[0].Status, results[0].Message)
}

func TestLibUserAndActivityLifecycle(t *testing.T) {
	config := intlib.NewConfig(t)
	assert := assert.New(t)
	require := require.New(t)
	c := intlib.NewClient(t, config)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// Register and log in.
	email := intlib.UniqueEmail("lifecycle")
	_, err := c.Register(ctx, sdklib.Registration{FirstName: "Integration", LastName: "Test", Email: email, Password: "integration-secret"})
	require.NoError(err)

	_, err = c.Login(ctx, sdklib.Credentials{Email: email, Password: "wrong"})
	assert.Error(err)

	user, err := c.Login(ctx, sdklib.Credentials{Email: email, Password: "integration-secret"})
	require.NoError(err)

	// Create.
	duration := 40
	a, err := c.CreateActivity(ctx, sdklib.Activity{
		Type:    sdklib.ActivityTypeWorkout,
		Name:    "Integration workout",
		Details: sdklib.WorkoutDetails{DurationMinutes: &duration},
	})
	require.NoError(err)
	intlib.CleanupActivity(t, c, a.ID)
	assert.Equal(user.ID, a.UserID)
	assert.Equal(sdklib.ActivityStatusPlanned, a.Status)

	// Optimistic status change.
	ctrl, err := c.NewStatusController(*a)
	require.NoError(err)
	attempt, ok := ctrl.RequestStatusChange(ctx, sdklib.ActivityStatusCompleted)
	require.True(ok)
	require.Equal(sdklib.StatusOutcomeSuccess, attempt.Outcome, "err: %v", attempt.Err)

	got, err := c.GetActivity(ctx, a.ID)
	require.NoError(err)
	assert.Equal(sdklib.ActivityStatusCompleted, got.Status)

	// Profile.
	p, err := c.Profile(ctx)
	require.NoError(err)
	require.NoError(p.ActivitiesErr)
	assert.Equal(1, p.Stats.TotalActivities)
	assert.Equal(100, p.Stats.CompletionRate)

	// Remove.
	require.NoError(c.DeleteActivity(ctx, a.ID))
	_, err = c.GetActivity(ctx, a.ID)
	assert.ErrorIs(err, sdklib.ErrNotFound)

	loggedOut, err := c.Logout(ctx)
	require.NoError(err)
	require.NotNil(loggedOut)
	assert.Equal(email, loggedOut.Email)
}
