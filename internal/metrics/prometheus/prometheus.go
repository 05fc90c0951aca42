// Package prometheus is the Prometheus implementation of the metrics recorder.
package prometheus

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/slok/fitrack/internal/metrics"
)

const (
	namespace = "fitrack"
	// JobName is the pushgateway job used when pushing client metrics.
	JobName = "fitrack"
)

// Config is the configuration of the Prometheus recorder.
type Config struct {
	Registry *prometheus.Registry
}

func (c *Config) defaults() error {
	if c.Registry == nil {
		c.Registry = prometheus.NewRegistry()
	}
	return nil
}

// Recorder records client metrics on Prometheus collectors.
type Recorder struct {
	registry *prometheus.Registry

	apiRequestDuration *prometheus.HistogramVec
	statusAttempts     *prometheus.CounterVec
	listReloads        *prometheus.CounterVec
}

// NewRecorder returns a new Prometheus recorder with its collectors registered.
func NewRecorder(cfg Config) (*Recorder, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	r := &Recorder{
		registry: cfg.Registry,
		apiRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "Duration of the remote store requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op", "code"}),
		statusAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "status",
			Name:      "update_attempts_total",
			Help:      "Number of optimistic status changes grouped by outcome.",
		}, []string{"outcome"}),
		listReloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dashboard",
			Name:      "list_reloads_total",
			Help:      "Number of dashboard list reloads grouped by result.",
		}, []string{"success"}),
	}

	for _, c := range []prometheus.Collector{r.apiRequestDuration, r.statusAttempts, r.listReloads} {
		if err := r.registry.Register(c); err != nil {
			return nil, fmt.Errorf("could not register collector: %w", err)
		}
	}

	return r, nil
}

func (r *Recorder) ObserveAPIRequest(_ context.Context, op string, code int, duration time.Duration) {
	r.apiRequestDuration.WithLabelValues(op, strconv.Itoa(code)).Observe(duration.Seconds())
}

func (r *Recorder) StatusUpdateAttempt(_ context.Context, outcome string) {
	r.statusAttempts.WithLabelValues(outcome).Inc()
}

func (r *Recorder) ListReload(_ context.Context, success bool) {
	r.listReloads.WithLabelValues(strconv.FormatBool(success)).Inc()
}

// Registry returns the registry the collectors are registered on.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Push pushes the recorded metrics to a Prometheus pushgateway.
func (r *Recorder) Push(ctx context.Context, url string) error {
	err := push.New(url, JobName).Gatherer(r.registry).PushContext(ctx)
	if err != nil {
		return fmt.Errorf("could not push metrics: %w", err)
	}
	return nil
}

var _ metrics.Recorder = &Recorder{}
