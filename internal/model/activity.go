package model

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar day layout used for activity dates and date ranges.
const DateLayout = "2006-01-02"

// ActivityType is the kind of tracked event. It can't change after creation.
type ActivityType string

const (
	ActivityTypeWorkout ActivityType = "Workout"
	ActivityTypeMeal    ActivityType = "Meal"
	ActivityTypeSteps   ActivityType = "Steps"
)

// ActivityTypes are all the valid activity types in display order.
var ActivityTypes = []ActivityType{ActivityTypeWorkout, ActivityTypeMeal, ActivityTypeSteps}

// Valid returns true if the type is one of the known activity types.
func (t ActivityType) Valid() bool {
	switch t {
	case ActivityTypeWorkout, ActivityTypeMeal, ActivityTypeSteps:
		return true
	}
	return false
}

// ParseActivityType parses an activity type case insensitively.
func ParseActivityType(s string) (ActivityType, error) {
	for _, t := range ActivityTypes {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid activity type %q (must be: Workout, Meal, Steps): %w", s, ErrNotValid)
}

// ActivityStatus is the progress of an activity.
type ActivityStatus string

const (
	ActivityStatusPlanned    ActivityStatus = "Planned"
	ActivityStatusInProgress ActivityStatus = "InProgress"
	ActivityStatusCompleted  ActivityStatus = "Completed"
)

// ActivityStatuses are all the valid activity statuses in lifecycle order.
var ActivityStatuses = []ActivityStatus{ActivityStatusPlanned, ActivityStatusInProgress, ActivityStatusCompleted}

// Valid returns true if the status is one of the known activity statuses.
func (s ActivityStatus) Valid() bool {
	switch s {
	case ActivityStatusPlanned, ActivityStatusInProgress, ActivityStatusCompleted:
		return true
	}
	return false
}

// Label returns the human readable status.
func (s ActivityStatus) Label() string {
	if s == ActivityStatusInProgress {
		return "In Progress"
	}
	return string(s)
}

// ParseActivityStatus parses an activity status case insensitively, it accepts
// the label form ("in progress", "in-progress") too.
func ParseActivityStatus(s string) (ActivityStatus, error) {
	norm := strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.TrimSpace(s))
	for _, st := range ActivityStatuses {
		if strings.EqualFold(string(st), norm) {
			return st, nil
		}
	}
	return "", fmt.Errorf("invalid activity status %q (must be: Planned, InProgress, Completed): %w", s, ErrNotValid)
}

// MealType is the meal of the day a meal activity belongs to.
type MealType string

const (
	MealTypeBreakfast MealType = "Breakfast"
	MealTypeLunch     MealType = "Lunch"
	MealTypeDinner    MealType = "Dinner"
	MealTypeSnack     MealType = "Snack"
)

// ParseMealType parses a meal type case insensitively.
func ParseMealType(s string) (MealType, error) {
	for _, mt := range []MealType{MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack} {
		if strings.EqualFold(string(mt), strings.TrimSpace(s)) {
			return mt, nil
		}
	}
	return "", fmt.Errorf("invalid meal type %q (must be: Breakfast, Lunch, Dinner, Snack): %w", s, ErrNotValid)
}

// ActivityDetails are the type specific measurements of an activity. Each
// activity type has its own variant and only carries the fields that apply.
type ActivityDetails interface {
	// Type returns the activity type the details belong to.
	Type() ActivityType
	validate() error
}

// WorkoutDetails are the measurements of a workout.
type WorkoutDetails struct {
	DurationMinutes *int
	Calories        *int
}

func (WorkoutDetails) Type() ActivityType { return ActivityTypeWorkout }

func (d WorkoutDetails) validate() error {
	if d.DurationMinutes != nil && *d.DurationMinutes <= 0 {
		return fmt.Errorf("duration must be greater than 0: %w", ErrNotValid)
	}
	if d.Calories != nil && *d.Calories <= 0 {
		return fmt.Errorf("calories must be greater than 0: %w", ErrNotValid)
	}
	return nil
}

// MealDetails are the measurements of a meal.
type MealDetails struct {
	MealType MealType
	Calories *int
}

func (MealDetails) Type() ActivityType { return ActivityTypeMeal }

func (d MealDetails) validate() error {
	if d.MealType != "" {
		if _, err := ParseMealType(string(d.MealType)); err != nil {
			return err
		}
	}
	if d.Calories != nil && *d.Calories <= 0 {
		return fmt.Errorf("calories must be greater than 0: %w", ErrNotValid)
	}
	return nil
}

// StepsDetails are the measurements of a step count.
type StepsDetails struct {
	StepsCount *int
}

func (StepsDetails) Type() ActivityType { return ActivityTypeSteps }

func (d StepsDetails) validate() error {
	if d.StepsCount != nil && *d.StepsCount <= 0 {
		return fmt.Errorf("step count must be greater than 0: %w", ErrNotValid)
	}
	return nil
}

// EmptyDetails returns the details variant with no measurements for a type.
func EmptyDetails(t ActivityType) ActivityDetails {
	switch t {
	case ActivityTypeWorkout:
		return WorkoutDetails{}
	case ActivityTypeMeal:
		return MealDetails{}
	case ActivityTypeSteps:
		return StepsDetails{}
	}
	return nil
}

// CopyDetails returns the details with their own copy of the measures.
func CopyDetails(d ActivityDetails) ActivityDetails {
	switch d := d.(type) {
	case WorkoutDetails:
		return WorkoutDetails{DurationMinutes: copyInt(d.DurationMinutes), Calories: copyInt(d.Calories)}
	case MealDetails:
		return MealDetails{MealType: d.MealType, Calories: copyInt(d.Calories)}
	case StepsDetails:
		return StepsDetails{StepsCount: copyInt(d.StepsCount)}
	}
	return d
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Activity is a tracked fitness event.
type Activity struct {
	ID          string
	UserID      string
	Type        ActivityType
	Status      ActivityStatus
	Name        string
	Description string
	// Date is the calendar day of the activity, at UTC midnight.
	Date    time.Time
	Details ActivityDetails
	// Set by the remote store.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate validates the client side presence checks of an activity.
func (a *Activity) Validate() error {
	if !a.Type.Valid() {
		return fmt.Errorf("invalid activity type %q: %w", a.Type, ErrNotValid)
	}
	if !a.Status.Valid() {
		return fmt.Errorf("invalid activity status %q: %w", a.Status, ErrNotValid)
	}
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("name is required: %w", ErrNotValid)
	}
	if a.Date.IsZero() {
		return fmt.Errorf("date is required: %w", ErrNotValid)
	}
	if a.Details == nil {
		return nil
	}
	if a.Details.Type() != a.Type {
		return fmt.Errorf("%s details can't be set on a %s activity: %w", a.Details.Type(), a.Type, ErrNotValid)
	}
	return a.Details.validate()
}

// ValidateUpdate validates that updated is a valid edit of current.
func ValidateUpdate(current, updated Activity) error {
	if current.Type != updated.Type {
		return fmt.Errorf("activity type can't be changed from %s to %s: %w", current.Type, updated.Type, ErrNotValid)
	}
	return updated.Validate()
}

// ParseDate parses a calendar day in DateLayout.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (must be YYYY-MM-DD): %w", s, ErrNotValid)
	}
	return t, nil
}

// Today returns the current calendar day.
func Today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
