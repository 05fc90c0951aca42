package model

import (
	"fmt"
	"strings"
	"time"
)

// ActivityPatch is a partial change of an activity, nil fields are kept.
// Measurement fields must belong to the activity type.
type ActivityPatch struct {
	Name            *string
	Description     *string
	Date            *time.Time
	Status          *ActivityStatus
	DurationMinutes *int
	Calories        *int
	StepsCount      *int
	MealType        *MealType
}

// IsEmpty returns true if the patch changes nothing.
func (p ActivityPatch) IsEmpty() bool {
	return p == ActivityPatch{}
}

// Apply returns a copy of the activity with the patch applied. The result is
// not validated.
func (p ActivityPatch) Apply(a Activity) (Activity, error) {
	if p.Name != nil {
		a.Name = strings.TrimSpace(*p.Name)
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.Status != nil {
		a.Status = *p.Status
	}

	details := a.Details
	if details == nil {
		details = EmptyDetails(a.Type)
	}

	switch d := details.(type) {
	case WorkoutDetails:
		if p.StepsCount != nil || p.MealType != nil {
			return a, fmt.Errorf("steps and meal type can't be set on a workout: %w", ErrNotValid)
		}
		if p.DurationMinutes != nil {
			d.DurationMinutes = p.DurationMinutes
		}
		if p.Calories != nil {
			d.Calories = p.Calories
		}
		a.Details = d
	case MealDetails:
		if p.DurationMinutes != nil || p.StepsCount != nil {
			return a, fmt.Errorf("duration and steps can't be set on a meal: %w", ErrNotValid)
		}
		if p.MealType != nil {
			d.MealType = *p.MealType
		}
		if p.Calories != nil {
			d.Calories = p.Calories
		}
		a.Details = d
	case StepsDetails:
		if p.DurationMinutes != nil || p.Calories != nil || p.MealType != nil {
			return a, fmt.Errorf("duration, calories and meal type can't be set on a step count: %w", ErrNotValid)
		}
		if p.StepsCount != nil {
			d.StepsCount = p.StepsCount
		}
		a.Details = d
	default:
		if p.DurationMinutes != nil || p.Calories != nil || p.StepsCount != nil || p.MealType != nil {
			return a, fmt.Errorf("measurements can't be set on a %q activity: %w", a.Type, ErrNotValid)
		}
	}

	return a, nil
}
