package lib

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/slok/fitrack/internal/app/health"
	"github.com/slok/fitrack/internal/conventions"
	"github.com/slok/fitrack/internal/log"
	"github.com/slok/fitrack/internal/metrics"
	"github.com/slok/fitrack/internal/remote"
	"github.com/slok/fitrack/internal/remote/httpapi"
	"github.com/slok/fitrack/internal/remote/memory"
	"github.com/slok/fitrack/internal/session"
	"github.com/slok/fitrack/internal/storage/sqlite"
)

// fakeAPIURL scopes the sessions of the fake API.
const fakeAPIURL = "fake"

// Config configures the SDK client.
//
// All fields are optional. An empty Config{} talks to the default local API
// and keeps the session in ~/.fitrack/fitrack.db.
type Config struct {
	// APIURL is the base URL of the remote fitness API.
	// Default: http://localhost:5110/api.
	APIURL string

	// Timeout is the timeout of every API request.
	// Default: 15s.
	Timeout time.Duration

	// HTTPClient is the HTTP client used for API requests.
	// Default: [http.DefaultClient].
	HTTPClient *http.Client

	// DBPath is the SQLite database path where the session is kept.
	// Default: ~/.fitrack/fitrack.db.
	DBPath string

	// Logger receives structured log output from the SDK.
	// Default: noop (silent). See the log sub-package for the interface.
	Logger log.Logger

	// Fake replaces the HTTP API with an in-memory one. Use this for testing
	// without a running API.
	Fake bool

	// FakeActivities are the initial activities of the fake API.
	// Only used when Fake is set.
	FakeActivities []Activity

	// MetricsRecorder records API, status update and list metrics.
	// Default: noop.
	MetricsRecorder metrics.Recorder
}

func (c *Config) defaults() error {
	if c.APIURL == "" {
		c.APIURL = httpapi.DefaultBaseURL
	}

	if c.Timeout == 0 {
		c.Timeout = 15 * time.Second
	}

	if c.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("could not get user home dir: %w", err)
		}
		c.DBPath = conventions.DBPath(home)
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	if c.MetricsRecorder == nil {
		c.MetricsRecorder = metrics.Noop
	}

	return nil
}

// Client is the main SDK entry point.
//
// Create a Client with [New] and release its resources with [Client.Close].
// A Client is safe for concurrent use.
type Client struct {
	store    remote.Store
	sessions *session.Manager
	recorder metrics.Recorder
	logger   log.Logger
	closeFn  func() error
}

// New creates a new SDK client.
//
// The caller must call [Client.Close] when done to release the database
// connection. Typically used with defer:
//
//	client, err := lib.New(ctx, lib.Config{})
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
func New(ctx context.Context, cfg Config) (*Client, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	store, apiURL, err := newStore(cfg)
	if err != nil {
		return nil, err
	}

	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: cfg.DBPath,
		Logger: cfg.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create repository: %w", err)
	}

	sessions, err := session.NewManager(session.ManagerConfig{
		Repository: repo,
		APIURL:     apiURL,
		Logger:     cfg.Logger,
	})
	if err != nil {
		_ = repo.Close()
		return nil, fmt.Errorf("could not create session manager: %w", err)
	}

	return &Client{
		store:    store,
		sessions: sessions,
		recorder: cfg.MetricsRecorder,
		logger:   cfg.Logger,
		closeFn:  repo.Close,
	}, nil
}

func newStore(cfg Config) (remote.Store, string, error) {
	if cfg.Fake {
		s, err := memory.NewStore(memory.StoreConfig{
			Activities: cfg.FakeActivities,
			Logger:     cfg.Logger,
		})
		if err != nil {
			return nil, "", fmt.Errorf("could not create fake API: %w", err)
		}
		return s, fakeAPIURL, nil
	}

	c, err := httpapi.NewClient(httpapi.ClientConfig{
		BaseURL:         cfg.APIURL,
		HTTPClient:      cfg.HTTPClient,
		Timeout:         cfg.Timeout,
		MetricsRecorder: cfg.MetricsRecorder,
		Logger:          cfg.Logger,
	})
	if err != nil {
		return nil, "", fmt.Errorf("could not create API client: %w", err)
	}
	return c, cfg.APIURL, nil
}

// Close releases resources held by the client, including the database connection.
// After Close returns, the client must not be used.
func (c *Client) Close() error {
	if c.closeFn != nil {
		return c.closeFn()
	}
	return nil
}

// Health checks the remote API and the local session.
//
// Returns a slice of [CheckResult] describing each check's outcome.
func (c *Client) Health(ctx context.Context) ([]CheckResult, error) {
	svc, err := health.NewService(health.ServiceConfig{
		Checker:  c.store,
		Sessions: c.sessions,
		Logger:   c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	return svc.Run(ctx, health.Request{}), nil
}
