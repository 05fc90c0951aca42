package statusctl

import "github.com/slok/fitrack/internal/model"

// Outcome is the result of a status update attempt.
type Outcome string

const (
	OutcomePending Outcome = "pending"
	OutcomeSuccess Outcome = "success"
	OutcomeFailed  Outcome = "failed"
)

// Attempt is the record of one status change request. It is never stored.
type Attempt struct {
	ActivityID string
	Previous   model.ActivityStatus
	Requested  model.ActivityStatus
	Outcome    Outcome
	// Err is the remote failure cause when the outcome is failed.
	Err error
	// Discarded is true when the result arrived after the controller was detached.
	Discarded bool
}
