package printer

import "github.com/slok/fitrack/internal/model"

// Printer knows how to print fitness information in different formats.
type Printer interface {
	PrintActivities(activities []model.Activity) error
	PrintActivity(activity model.Activity) error
	PrintUser(user model.User) error
	PrintProfile(user model.User, stats model.ProfileStats, recent []model.Activity) error
	PrintStatusChanges(changes []StatusChange) error
	PrintMessage(msg string) error
}

// StatusChange is the printable result of a requested status change.
type StatusChange struct {
	ActivityID string
	From       model.ActivityStatus
	To         model.ActivityStatus
	// Result is one of "updated", "ignored" or "failed".
	Result string
	Error  string
}

// Status change results.
const (
	StatusChangeUpdated = "updated"
	StatusChangeIgnored = "ignored"
	StatusChangeFailed  = "failed"
)
