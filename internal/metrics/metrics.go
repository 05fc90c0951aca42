// Package metrics has the metrics recorder abstraction, implementations live
// in subpackages.
package metrics

import (
	"context"
	"time"
)

// Recorder knows how to record client metrics.
type Recorder interface {
	// ObserveAPIRequest records a finished remote store request. Code is the
	// HTTP status code or 0 when the request never got a response.
	ObserveAPIRequest(ctx context.Context, op string, code int, duration time.Duration)
	// StatusUpdateAttempt records the terminal outcome of an optimistic status change.
	StatusUpdateAttempt(ctx context.Context, outcome string)
	// ListReload records a dashboard list reload.
	ListReload(ctx context.Context, success bool)
}

// Noop is a recorder that doesn't record anything.
var Noop = noop(0)

type noop int

func (noop) ObserveAPIRequest(_ context.Context, _ string, _ int, _ time.Duration) {}
func (noop) StatusUpdateAttempt(_ context.Context, _ string)                       {}
func (noop) ListReload(_ context.Context, _ bool)                                  {}

var _ Recorder = Noop
