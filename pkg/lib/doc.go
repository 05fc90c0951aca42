// Package lib provides a Go SDK for the fitrack fitness tracker.
//
// This package allows applications to register users, manage activities and
// change their status without shelling out to the fitrack CLI binary. It is
// useful for scripting, automation and building other frontends on top of the
// same remote store.
//
// # Quick Start
//
// Create a client, log in and list the activities:
//
//	client, err := lib.New(ctx, lib.Config{APIURL: "http://localhost:5110/api"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	user, err := client.Login(ctx, lib.Credentials{Email: "jane@example.com", Password: "secret"})
//	activities, err := client.ListActivities(ctx, lib.ActivityFilter{})
//
// # Activities
//
// Activities are workouts, meals or steps. The details of each activity type
// are set with [WorkoutDetails], [MealDetails] or [StepsDetails]:
//
//	a, err := client.CreateActivity(ctx, lib.Activity{
//	    Type:    lib.ActivityTypeWorkout,
//	    Name:    "Morning run",
//	    Details: lib.WorkoutDetails{DurationMinutes: &thirty},
//	})
//
//	status := lib.ActivityStatusCompleted
//	a, err = client.UpdateActivity(ctx, a.ID, lib.ActivityPatch{Status: &status})
//
// # Status Changes
//
// [Client.SetStatus] applies a batch of status changes the same way the
// dashboard does: every change is shown optimistically and rolled back when
// the remote store rejects it.
//
// UIs that keep a list on screen can use [Client.NewStatusController] to own the
// displayed status of a single activity, or embed the whole Bubble Tea
// dashboard returned by [Client.NewDashboard].
//
// # Sessions
//
// The logged in user is stored in a local SQLite database (~/.fitrack/fitrack.db
// by default) and scoped to the API URL, so logging in against one API does not
// log in against another.
//
// # Error Handling
//
// All methods return errors that can be inspected with [errors.Is]:
//
//   - [ErrNotFound]: The activity or session does not exist.
//   - [ErrAlreadyExists]: A user with the same email is already registered.
//   - [ErrNotValid]: Invalid input (e.g. missing name or an unknown status).
//   - [ErrUnauthorized]: The remote store rejected the credentials.
//
// # Testing
//
// Set [Config].Fake and a temporary database path to write tests without a
// running API. The fake API keeps everything in memory:
//
//	client, _ := lib.New(ctx, lib.Config{
//	    DBPath: filepath.Join(t.TempDir(), "test.db"),
//	    Fake:   true,
//	})
//	defer client.Close()
//
// # Thread Safety
//
// A [Client] is safe for concurrent use from multiple goroutines.
package lib
