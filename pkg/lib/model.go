package lib

import (
	"errors"

	"github.com/slok/fitrack/internal/model"
	"github.com/slok/fitrack/internal/statusctl"
)

// Activity is a fitness activity of a user.
type Activity = model.Activity

// ActivityType identifies the kind of activity.
type ActivityType = model.ActivityType

const (
	ActivityTypeWorkout = model.ActivityTypeWorkout
	ActivityTypeMeal    = model.ActivityTypeMeal
	ActivityTypeSteps   = model.ActivityTypeSteps
)

// ActivityStatus is the progress of an activity.
//
// The status can move freely between the three values.
type ActivityStatus = model.ActivityStatus

const (
	ActivityStatusPlanned    = model.ActivityStatusPlanned
	ActivityStatusInProgress = model.ActivityStatusInProgress
	ActivityStatusCompleted  = model.ActivityStatusCompleted
)

// MealType is the meal of a meal activity.
type MealType = model.MealType

const (
	MealTypeBreakfast = model.MealTypeBreakfast
	MealTypeLunch     = model.MealTypeLunch
	MealTypeDinner    = model.MealTypeDinner
	MealTypeSnack     = model.MealTypeSnack
)

// ActivityDetails are the type specific fields of an activity. Use
// [WorkoutDetails], [MealDetails] or [StepsDetails].
type ActivityDetails = model.ActivityDetails

// WorkoutDetails are the details of a workout activity.
type WorkoutDetails = model.WorkoutDetails

// MealDetails are the details of a meal activity.
type MealDetails = model.MealDetails

// StepsDetails are the details of a steps activity.
type StepsDetails = model.StepsDetails

// ActivityPatch is a partial update of an activity, nil fields are left as they are.
type ActivityPatch = model.ActivityPatch

// ActivityFilter selects activities. All fields are optional.
type ActivityFilter = model.ActivityFilter

// DateRange is an inclusive range of days.
type DateRange = model.DateRange

// User is a registered user.
type User = model.User

// Registration is the data needed to register a new user.
type Registration = model.Registration

// Credentials are the login credentials of a user.
type Credentials = model.Credentials

// ProfileStats are the activity stats of a user.
type ProfileStats = model.ProfileStats

// CheckResult is the result of a single health check.
type CheckResult = model.CheckResult

// Profile is the profile page data of the logged in user.
type Profile struct {
	User  User
	Stats ProfileStats
	// Recent are the latest activities of the user.
	Recent []Activity
	// ActivitiesErr is set when the activities could not be loaded. The
	// profile is still returned, with zero stats.
	ActivitiesErr error
}

// StatusChange asks to move one activity to a new status.
type StatusChange struct {
	ActivityID string
	Status     ActivityStatus
}

// StatusChangeResult is the outcome of a single [StatusChange].
type StatusChangeResult struct {
	Change StatusChange
	// Previous is the status the activity had before the change.
	Previous ActivityStatus
	// Ignored is true when the activity already had the requested status.
	Ignored bool
	// Err is set when the change failed, the status was rolled back.
	Err error
}

// SetStatusResult is the result of [Client.SetStatus].
type SetStatusResult struct {
	// Results are in the same order as the requested changes.
	Results []StatusChangeResult
	// Activities is the activity list after the changes were confirmed.
	Activities []Activity
	// ListErr is set when the activity list could not be loaded.
	ListErr error
}

// Failed returns the number of failed changes.
func (r SetStatusResult) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// StatusState is the displayed status of one activity owned by a [StatusController].
type StatusState = statusctl.State

// StatusAttempt is the record of one status change request.
type StatusAttempt = statusctl.Attempt

var (
	// ErrNotFound is returned when the activity, user or session does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when the resource already exists.
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotValid is returned on invalid input.
	ErrNotValid = errors.New("not valid")
	// ErrUnauthorized is returned when the remote store rejects the caller.
	ErrUnauthorized = errors.New("unauthorized")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return joinErrors(err, ErrNotFound)
	case errors.Is(err, model.ErrAlreadyExists):
		return joinErrors(err, ErrAlreadyExists)
	case errors.Is(err, model.ErrNotValid):
		return joinErrors(err, ErrNotValid)
	case errors.Is(err, model.ErrUnauthorized):
		return joinErrors(err, ErrUnauthorized)
	default:
		return err
	}
}

func joinErrors(original, sentinel error) error {
	return &mappedError{original: original, sentinel: sentinel}
}

type mappedError struct {
	original error
	sentinel error
}

func (e *mappedError) Error() string { return e.original.Error() }

func (e *mappedError) Is(target error) bool {
	return target == e.sentinel
}

func (e *mappedError) Unwrap() error { return e.original }

// CheckStatus is the status of a health check.
type CheckStatus = model.CheckStatus

const (
	CheckStatusOK      = model.CheckStatusOK
	CheckStatusWarning = model.CheckStatusWarning
	CheckStatusError   = model.CheckStatusError
)
