package statusctl

import "github.com/slok/fitrack/internal/model"

// State is the displayed status of one activity.
//
// While Updating is false the state is Stable(Status). While Updating is true
// the state is Pending(Previous, Status), Status holds the optimistic value.
type State struct {
	Status    model.ActivityStatus
	Previous  model.ActivityStatus
	Updating  bool
	LastError string
}

// Stable returns the initial state of a loaded activity.
func Stable(s model.ActivityStatus) State {
	return State{Status: s}
}

// Event is something that happens to a displayed status.
type Event interface {
	event()
}

// ChangeRequested is the user asking for a new status.
type ChangeRequested struct {
	Status model.ActivityStatus
}

// UpdateSucceeded is the remote store confirming the requested status.
type UpdateSucceeded struct{}

// UpdateFailed is the remote store rejecting the requested status, or the
// request never reaching it.
type UpdateFailed struct {
	Message string
}

func (ChangeRequested) event() {}
func (UpdateSucceeded) event() {}
func (UpdateFailed) event()    {}

// Reduce returns the state after applying the event. Events that don't apply
// to the current state return the state unchanged:
//
//   - A change to the current status, to an invalid status or while updating.
//   - A result while not updating.
func Reduce(s State, e Event) State {
	switch e := e.(type) {
	case ChangeRequested:
		if s.Updating || e.Status == s.Status || !e.Status.Valid() {
			return s
		}
		return State{
			Status:   e.Status,
			Previous: s.Status,
			Updating: true,
		}

	case UpdateSucceeded:
		if !s.Updating {
			return s
		}
		return State{Status: s.Status}

	case UpdateFailed:
		if !s.Updating {
			return s
		}
		return State{
			Status:    s.Previous,
			LastError: e.Message,
		}
	}

	return s
}
