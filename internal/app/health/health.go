package health

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/slok/fitrack/internal/log"
	"github.com/slok/fitrack/internal/model"
	"github.com/slok/fitrack/internal/remote"
	"github.com/slok/fitrack/internal/session"
)

// Check IDs.
const (
	CheckAPIHealth = "api_health"
	CheckSession   = "session"
)

// ServiceConfig is the configuration for the health service.
type ServiceConfig struct {
	Checker remote.HealthChecker
	// Sessions is optional, without it the session check is skipped.
	Sessions *session.Manager
	Logger   log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Checker == nil {
		return fmt.Errorf("health checker is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	return nil
}

// Service runs the client checks.
type Service struct {
	checker  remote.HealthChecker
	sessions *session.Manager
	logger   log.Logger
}

// NewService creates a new health service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		checker:  cfg.Checker,
		sessions: cfg.Sessions,
		logger:   cfg.Logger,
	}, nil
}

// Request represents the health request parameters.
type Request struct{}

// Run runs all the checks, failed checks are results, not errors.
func (s *Service) Run(ctx context.Context, req Request) []model.CheckResult {
	results := []model.CheckResult{s.checkAPI(ctx)}
	if s.sessions != nil {
		results = append(results, s.checkSession(ctx))
	}
	return results
}

func (s *Service) checkAPI(ctx context.Context) model.CheckResult {
	h, err := s.checker.CheckHealth(ctx)
	if err != nil {
		return model.CheckResult{ID: CheckAPIHealth, Status: model.CheckStatusError, Message: fmt.Sprintf("API unreachable: %s", err)}
	}

	if h.Status != "" && !strings.EqualFold(h.Status, "healthy") {
		return model.CheckResult{ID: CheckAPIHealth, Status: model.CheckStatusWarning, Message: fmt.Sprintf("API reports status %q", h.Status)}
	}

	return model.CheckResult{ID: CheckAPIHealth, Status: model.CheckStatusOK, Message: "API is healthy"}
}

func (s *Service) checkSession(ctx context.Context) model.CheckResult {
	sess, err := s.sessions.Current(ctx)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return model.CheckResult{ID: CheckSession, Status: model.CheckStatusWarning, Message: "Not logged in"}
	case err != nil:
		return model.CheckResult{ID: CheckSession, Status: model.CheckStatusError, Message: fmt.Sprintf("Could not read session: %s", err)}
	}

	return model.CheckResult{ID: CheckSession, Status: model.CheckStatusOK, Message: fmt.Sprintf("Logged in as %s", sess.User.Email)}
}
