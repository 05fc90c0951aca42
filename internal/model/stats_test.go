package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slok/fitrack/internal/model"
)

func TestComputeProfileStats(t *testing.T) {
	tests := map[string]struct {
		activities []model.Activity
		exp        model.ProfileStats
	}{
		"No activities should return zero stats": {
			exp: model.ProfileStats{},
		},

		"Only completed activities should count calories and duration": {
			activities: []model.Activity{
				{Type: model.ActivityTypeWorkout, Status: model.ActivityStatusCompleted, Details: model.WorkoutDetails{DurationMinutes: intPtr(30), Calories: intPtr(300)}},
				{Type: model.ActivityTypeWorkout, Status: model.ActivityStatusPlanned, Details: model.WorkoutDetails{DurationMinutes: intPtr(60), Calories: intPtr(600)}},
				{Type: model.ActivityTypeMeal, Status: model.ActivityStatusCompleted, Details: model.MealDetails{Calories: intPtr(500)}},
				{Type: model.ActivityTypeSteps, Status: model.ActivityStatusInProgress, Details: model.StepsDetails{StepsCount: intPtr(4000)}},
				{Type: model.ActivityTypeSteps, Status: model.ActivityStatusPlanned, Details: model.StepsDetails{}},
			},
			exp: model.ProfileStats{
				TotalActivities:      5,
				CompletedActivities:  2,
				InProgressActivities: 1,
				PlannedActivities:    2,
				TotalWorkouts:        2,
				TotalMeals:           1,
				TotalStepsEntries:    2,
				TotalSteps:           4000,
				TotalCalories:        800,
				TotalDurationMinutes: 30,
				CompletionRate:       40,
			},
		},

		"Completion rate should be rounded": {
			activities: []model.Activity{
				{Type: model.ActivityTypeSteps, Status: model.ActivityStatusCompleted},
				{Type: model.ActivityTypeSteps, Status: model.ActivityStatusCompleted},
				{Type: model.ActivityTypeSteps, Status: model.ActivityStatusPlanned},
			},
			exp: model.ProfileStats{
				TotalActivities:     3,
				CompletedActivities: 2,
				PlannedActivities:   1,
				TotalStepsEntries:   3,
				CompletionRate:      67,
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.exp, model.ComputeProfileStats(test.activities))
		})
	}
}
