// Package remote has the contracts of the remote fitness store. All durable
// state and identity live behind these interfaces.
package remote

import (
	"context"
	"time"

	"github.com/slok/fitrack/internal/model"
)

// ActivityStore is the remote activity store.
type ActivityStore interface {
	CreateActivity(ctx context.Context, a model.Activity) (*model.Activity, error)
	GetActivity(ctx context.Context, id string) (*model.Activity, error)
	// ListActivities lists activities, type and status are optional server side filters.
	ListActivities(ctx context.Context, activityType *model.ActivityType, status *model.ActivityStatus) ([]model.Activity, error)
	ListActivitiesByDateRange(ctx context.Context, start, end time.Time) ([]model.Activity, error)
	ListUserActivities(ctx context.Context, userID string) ([]model.Activity, error)
	// UpdateActivity and UpdateStatus may return a nil activity when the store replies without a body.
	UpdateActivity(ctx context.Context, id string, a model.Activity) (*model.Activity, error)
	UpdateStatus(ctx context.Context, id string, status model.ActivityStatus) (*model.Activity, error)
	DeleteActivity(ctx context.Context, id string) error
}

// UserStore is the remote user registry.
type UserStore interface {
	RegisterUser(ctx context.Context, r model.Registration) (*model.User, error)
	LoginUser(ctx context.Context, c model.Credentials) (*model.User, error)
}

// HealthChecker reports the remote store health.
type HealthChecker interface {
	CheckHealth(ctx context.Context) (*model.APIHealth, error)
}

// Store is the full remote store.
//
//go:generate mockery --case underscore --output remotemock --outpkg remotemock --structname MockStore --filename mocks.go --name Store
type Store interface {
	ActivityStore
	UserStore
	HealthChecker
}

// StatusUpdater is the single remote operation the status controller needs.
type StatusUpdater interface {
	UpdateStatus(ctx context.Context, id string, status model.ActivityStatus) (*model.Activity, error)
}

// ActivityLister is the remote listing the dashboard list needs.
type ActivityLister interface {
	ListActivities(ctx context.Context, activityType *model.ActivityType, status *model.ActivityStatus) ([]model.Activity, error)
	ListActivitiesByDateRange(ctx context.Context, start, end time.Time) ([]model.Activity, error)
}

var (
	_ StatusUpdater  = ActivityStore(nil)
	_ ActivityLister = ActivityStore(nil)
)
