package model

import "math"

// ProfileStats are the aggregated numbers of a user activities.
type ProfileStats struct {
	TotalActivities      int
	CompletedActivities  int
	InProgressActivities int
	PlannedActivities    int
	TotalWorkouts        int
	TotalMeals           int
	TotalStepsEntries    int
	TotalSteps           int
	// Only completed activities count.
	TotalCalories int
	// Only completed workouts count.
	TotalDurationMinutes int
	// Percentage of completed activities, rounded.
	CompletionRate int
}

// ComputeProfileStats aggregates the stats of a set of activities.
func ComputeProfileStats(activities []Activity) ProfileStats {
	var s ProfileStats
	s.TotalActivities = len(activities)

	for _, a := range activities {
		completed := a.Status == ActivityStatusCompleted
		switch a.Status {
		case ActivityStatusCompleted:
			s.CompletedActivities++
		case ActivityStatusInProgress:
			s.InProgressActivities++
		case ActivityStatusPlanned:
			s.PlannedActivities++
		}

		switch d := a.Details.(type) {
		case WorkoutDetails:
			if completed {
				s.TotalCalories += deref(d.Calories)
				s.TotalDurationMinutes += deref(d.DurationMinutes)
			}
		case MealDetails:
			if completed {
				s.TotalCalories += deref(d.Calories)
			}
		case StepsDetails:
			s.TotalSteps += deref(d.StepsCount)
		}

		switch a.Type {
		case ActivityTypeWorkout:
			s.TotalWorkouts++
		case ActivityTypeMeal:
			s.TotalMeals++
		case ActivityTypeSteps:
			s.TotalStepsEntries++
		}
	}

	if s.TotalActivities > 0 {
		s.CompletionRate = int(math.Round(float64(s.CompletedActivities) * 100 / float64(s.TotalActivities)))
	}

	return s
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
