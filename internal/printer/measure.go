package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/slok/fitrack/internal/model"
)

// FormatDetails returns the measurements of an activity in a single line.
// Examples: "30 min, 250 kcal", "lunch, 600 kcal", "8,000 steps".
func FormatDetails(d model.ActivityDetails) string {
	var parts []string
	switch v := d.(type) {
	case model.WorkoutDetails:
		if v.DurationMinutes != nil {
			parts = append(parts, fmt.Sprintf("%d min", *v.DurationMinutes))
		}
		if v.Calories != nil {
			parts = append(parts, fmt.Sprintf("%s kcal", FormatThousands(*v.Calories)))
		}
	case model.MealDetails:
		if v.MealType != "" {
			parts = append(parts, strings.ToLower(string(v.MealType)))
		}
		if v.Calories != nil {
			parts = append(parts, fmt.Sprintf("%s kcal", FormatThousands(*v.Calories)))
		}
	case model.StepsDetails:
		if v.StepsCount != nil {
			parts = append(parts, fmt.Sprintf("%s steps", FormatThousands(*v.StepsCount)))
		}
	}

	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

// FormatThousands returns the number with comma thousand separators.
func FormatThousands(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	s := strconv.Itoa(n)
	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}

	return sign + b.String()
}
