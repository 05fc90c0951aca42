package printer

import (
	"fmt"
	"time"

	"github.com/slok/fitrack/internal/model"
)

// FormatDate returns the calendar day in the API date layout.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(model.DateLayout)
}

// RelativeDay returns a human-readable distance from today to a calendar day.
// Examples: "today", "tomorrow", "3 days ago", "in 2 days".
func RelativeDay(day, today time.Time) string {
	d := truncateDay(day)
	t := truncateDay(today)
	days := int(d.Sub(t).Hours() / 24)

	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days == -1:
		return "yesterday"
	case days > 1:
		return fmt.Sprintf("in %d days", days)
	default:
		return fmt.Sprintf("%d days ago", -days)
	}
}

// FormatTimestamp returns a formatted timestamp string in UTC.
// Format: "2006-01-02 15:04:05 UTC".
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("2006-01-02 15:04:05 UTC")
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
