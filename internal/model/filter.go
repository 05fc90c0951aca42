package model

import (
	"fmt"
	"time"
)

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Validate validates the date range.
func (r DateRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return fmt.Errorf("date range requires start and end: %w", ErrNotValid)
	}
	if r.End.Before(r.Start) {
		return fmt.Errorf("date range end %s is before start %s: %w", r.End.Format(DateLayout), r.Start.Format(DateLayout), ErrNotValid)
	}
	return nil
}

// ActivityFilter selects the activities of a listing. All fields are optional.
type ActivityFilter struct {
	Type      *ActivityType
	Status    *ActivityStatus
	DateRange *DateRange
}

// Match returns true if the activity passes the type and status criteria.
// The date range is not checked, the remote store applies it.
func (f ActivityFilter) Match(a Activity) bool {
	if f.Type != nil && a.Type != *f.Type {
		return false
	}
	if f.Status != nil && a.Status != *f.Status {
		return false
	}
	return true
}
