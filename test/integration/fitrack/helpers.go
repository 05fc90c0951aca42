package fitrack

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/slok/fitrack/test/integration/testutils"
)

// Config holds integration test configuration loaded from environment variables.
type Config struct {
	Binary string
}

func (c *Config) defaults() error {
	if c.Binary == "" {
		return fmt.Errorf("fitrack binary path is required (FITRACK_INTEGRATION_BINARY)")
	}

	// go test changes the CWD to the test package directory.
	if !filepath.IsAbs(c.Binary) {
		return fmt.Errorf("FITRACK_INTEGRATION_BINARY must be an absolute path, got %q", c.Binary)
	}
	if _, err := os.Stat(c.Binary); err != nil {
		return fmt.Errorf("fitrack binary not found at %q: %w", c.Binary, err)
	}

	return nil
}

// NewConfig loads integration test configuration from environment variables.
// If the config is invalid or the activation env var is not set, the test is skipped.
func NewConfig(t *testing.T) Config {
	t.Helper()

	const (
		envActivation = "FITRACK_INTEGRATION"
		envBinary     = "FITRACK_INTEGRATION_BINARY"
	)

	if os.Getenv(envActivation) != "true" {
		t.Skipf("Skipping integration test: %s is not set to 'true'", envActivation)
	}

	c := Config{
		Binary: os.Getenv(envBinary),
	}

	if err := c.defaults(); err != nil {
		t.Skipf("Skipping due to invalid config: %s", err)
	}

	return c
}

// RunFakeCmd runs a fitrack command against the in-memory API with a specific db path.
// Every run starts from the same demo activities, changes are not kept between runs.
func RunFakeCmd(ctx context.Context, config Config, dbPath, cmdArgs string) (stdout, stderr []byte, err error) {
	args := fmt.Sprintf("--fake-api --db-path %s %s", dbPath, cmdArgs)
	return testutils.RunFitrack(ctx, nil, config.Binary, args, true)
}

// RunList lists the activities in JSON format.
func RunList(ctx context.Context, config Config, dbPath, filterArgs string) (stdout, stderr []byte, err error) {
	return RunFakeCmd(ctx, config, dbPath, "list --format json "+filterArgs)
}

// RunStatusSet changes the status of activities, specs are ID=STATUS.
func RunStatusSet(ctx context.Context, config Config, dbPath string, specs ...string) (stdout, stderr []byte, err error) {
	args := []string{"--fake-api", "--db-path", dbPath, "status", "set", "--format", "json"}
	args = append(args, specs...)
	return testutils.RunFitrackArgs(ctx, nil, config.Binary, args, true)
}

// RunHealth runs the health checks.
func RunHealth(ctx context.Context, config Config, dbPath string) (stdout, stderr []byte, err error) {
	return RunFakeCmd(ctx, config, dbPath, "health")
}
