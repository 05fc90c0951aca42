package lib

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	sdklib "github.com/slok/fitrack/pkg/lib"
)

// Config holds integration test configuration loaded from environment variables.
type Config struct {
	APIURL string
}

func (c *Config) defaults() error {
	if c.APIURL == "" {
		return fmt.Errorf("API URL is required (FITRACK_INTEGRATION_API_URL)")
	}
	return nil
}

// NewConfig loads integration test configuration from environment variables.
// If the activation env var is not set, the test is skipped.
func NewConfig(t *testing.T) Config {
	t.Helper()

	const (
		envActivation = "FITRACK_INTEGRATION"
		envAPIURL     = "FITRACK_INTEGRATION_API_URL"
	)

	if os.Getenv(envActivation) != "true" {
		t.Skipf("Skipping integration test: %s is not set to 'true'", envActivation)
	}

	c := Config{
		APIURL: os.Getenv(envAPIURL),
	}

	if err := c.defaults(); err != nil {
		t.Skipf("Skipping due to invalid config: %s", err)
	}

	return c
}

// NewClient creates an SDK client against the real API with an isolated session database.
func NewClient(t *testing.T, config Config) *sdklib.Client {
	t.Helper()

	c, err := sdklib.New(context.Background(), sdklib.Config{
		APIURL: config.APIURL,
		DBPath: filepath.Join(t.TempDir(), "fitrack.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return c
}

// UniqueEmail returns a new email for each call so tests don't collide on a shared API.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@fitrack.test", prefix, time.Now().UnixNano())
}

// CleanupActivity registers a best effort removal of an activity.
func CleanupActivity(t *testing.T, c *sdklib.Client, id string) {
	t.Helper()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_ = c.DeleteActivity(ctx, id)
	})
}
