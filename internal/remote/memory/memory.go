// Package memory is an in-memory implementation of the remote fitness store.
// It mimics the remote API rules so the client can run without a server.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/slok/fitrack/internal/log"
	"github.com/slok/fitrack/internal/model"
	"github.com/slok/fitrack/internal/remote"
)

// StoreConfig is the configuration for the memory store.
type StoreConfig struct {
	// Activities are the initial activities, IDs are assigned when missing.
	Activities []model.Activity
	// TimeNow is used to set the creation and update timestamps.
	TimeNow func() time.Time
	Logger  log.Logger
}

func (c *StoreConfig) defaults() error {
	if c.TimeNow == nil {
		c.TimeNow = func() time.Time { return time.Now().UTC() }
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "remote.Memory"})
	return nil
}

type userRecord struct {
	user     model.User
	password string
}

// Store is an in-memory remote.Store.
type Store struct {
	activities map[string]model.Activity
	users      map[string]userRecord // By email.
	nextID     int
	timeNow    func() time.Time
	mu         sync.RWMutex
	logger     log.Logger
}

// NewStore creates a new memory store.
func NewStore(cfg StoreConfig) (*Store, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	s := &Store{
		activities: make(map[string]model.Activity),
		users:      make(map[string]userRecord),
		timeNow:    cfg.TimeNow,
		logger:     cfg.Logger,
	}

	for _, a := range cfg.Activities {
		if a.ID == "" {
			a.ID = s.newID()
		} else if n, err := strconv.Atoi(a.ID); err == nil && n > s.nextID {
			s.nextID = n
		}
		if _, ok := s.activities[a.ID]; ok {
			return nil, fmt.Errorf("activity %s: %w", a.ID, model.ErrAlreadyExists)
		}
		s.activities[a.ID] = a
	}

	return s, nil
}

var _ remote.Store = &Store{}

func (s *Store) newID() string {
	s.nextID++
	return strconv.Itoa(s.nextID)
}

func (s *Store) RegisterUser(ctx context.Context, r model.Registration) (*model.User, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(strings.TrimSpace(r.Email))
	if _, ok := s.users[email]; ok {
		return nil, fmt.Errorf("user with email %s: %w", r.Email, model.ErrAlreadyExists)
	}

	u := model.User{
		ID:        s.newID(),
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     email,
		CreatedAt: s.timeNow(),
	}
	s.users[email] = userRecord{user: u, password: r.Password}
	s.logger.Debugf("Registered user %s", u.ID)

	return &u, nil
}

func (s *Store) LoginUser(ctx context.Context, c model.Credentials) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.users[strings.ToLower(strings.TrimSpace(c.Email))]
	if !ok || rec.password != c.Password {
		return nil, fmt.Errorf("invalid email or password: %w", model.ErrUnauthorized)
	}

	u := rec.user
	return &u, nil
}

func (s *Store) CreateActivity(ctx context.Context, a model.Activity) (*model.Activity, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = s.newID()
	a.CreatedAt = s.timeNow()
	a.UpdatedAt = time.Time{}
	s.activities[a.ID] = a
	s.logger.Debugf("Created activity %s", a.ID)

	return &a, nil
}

func (s *Store) GetActivity(ctx context.Context, id string) (*model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.activities[id]
	if !ok {
		return nil, fmt.Errorf("activity %s: %w", id, model.ErrNotFound)
	}
	return &a, nil
}

func (s *Store) ListActivities(ctx context.Context, activityType *model.ActivityType, status *model.ActivityStatus) ([]model.Activity, error) {
	f := model.ActivityFilter{Type: activityType, Status: status}
	return s.list(f.Match), nil
}

func (s *Store) ListActivitiesByDateRange(ctx context.Context, start, end time.Time) ([]model.Activity, error) {
	r := model.DateRange{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	start, end = day(start), day(end)

	return s.list(func(a model.Activity) bool {
		d := day(a.Date)
		return !d.Before(start) && !d.After(end)
	}), nil
}

func (s *Store) ListUserActivities(ctx context.Context, userID string) ([]model.Activity, error) {
	return s.list(func(a model.Activity) bool { return a.UserID == userID }), nil
}

func (s *Store) UpdateActivity(ctx context.Context, id string, a model.Activity) (*model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.activities[id]
	if !ok {
		return nil, fmt.Errorf("activity %s: %w", id, model.ErrNotFound)
	}
	a.ID = id
	if a.UserID == "" {
		a.UserID = current.UserID
	}
	if err := model.ValidateUpdate(current, a); err != nil {
		return nil, err
	}

	a.CreatedAt = current.CreatedAt
	a.UpdatedAt = s.timeNow()
	s.activities[id] = a

	return &a, nil
}

func (s *Store) UpdateStatus(ctx context.Context, id string, status model.ActivityStatus) (*model.Activity, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid status %q: %w", status, model.ErrNotValid)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[id]
	if !ok {
		return nil, fmt.Errorf("activity %s: %w", id, model.ErrNotFound)
	}
	a.Status = status
	a.UpdatedAt = s.timeNow()
	s.activities[id] = a

	return &a, nil
}

func (s *Store) DeleteActivity(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.activities[id]; !ok {
		return fmt.Errorf("activity %s: %w", id, model.ErrNotFound)
	}
	delete(s.activities, id)
	s.logger.Debugf("Deleted activity %s", id)

	return nil
}

func (s *Store) CheckHealth(ctx context.Context) (*model.APIHealth, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return &model.APIHealth{
		Status: "Healthy",
		Details: map[string]any{
			"backend":    "memory",
			"activities": len(s.activities),
			"users":      len(s.users),
		},
	}, nil
}

// list returns the matching activities newest date first, like the remote API.
func (s *Store) list(match func(model.Activity) bool) []model.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Activity, 0, len(s.activities))
	for _, a := range s.activities {
		if match(a) {
			result = append(result, a)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.After(result[j].Date)
		}
		return numericLess(result[j].ID, result[i].ID)
	})

	return result
}

func numericLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return na < nb
	}
	return a < b
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
