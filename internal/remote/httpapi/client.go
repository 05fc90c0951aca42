// Package httpapi is the HTTP+JSON implementation of the remote fitness store.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/slok/fitrack/internal/log"
	"github.com/slok/fitrack/internal/metrics"
	"github.com/slok/fitrack/internal/model"
	"github.com/slok/fitrack/internal/remote"
)

const (
	// DefaultBaseURL is the default remote store API base URL.
	DefaultBaseURL = "http://localhost:5110/api"

	headerRequestID      = "X-Request-ID"
	headerIdempotencyKey = "Idempotency-Key"
)

// APIError is the typed failure of a rejected request (non 2xx response).
type APIError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Message, e.StatusCode)
}

// Is maps the rejection to the domain sentinel errors.
func (e *APIError) Is(target error) bool {
	switch target {
	case model.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case model.ErrNotValid:
		return e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusUnprocessableEntity
	case model.ErrAlreadyExists:
		return e.StatusCode == http.StatusConflict
	case model.ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	}
	return false
}

// ClientConfig is the configuration of the HTTP remote store client.
type ClientConfig struct {
	// BaseURL is the API base URL, including the `/api` prefix.
	BaseURL string
	// HTTPClient is the HTTP client for API requests.
	HTTPClient *http.Client
	// Timeout is the per request timeout, 0 disables it.
	Timeout         time.Duration
	MetricsRecorder metrics.Recorder
	Logger          log.Logger
}

func (c *ClientConfig) defaults() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid base url %q", c.BaseURL)
	}
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")

	if c.HTTPClient == nil {
		c.HTTPClient = http.DefaultClient
	}
	if c.MetricsRecorder == nil {
		c.MetricsRecorder = metrics.Noop
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "remote.HTTPAPI"})
	return nil
}

// Client talks to the remote store over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	recorder   metrics.Recorder
	logger     log.Logger
}

// NewClient returns a new HTTP remote store client.
func NewClient(cfg ClientConfig) (*Client, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
		timeout:    cfg.Timeout,
		recorder:   cfg.MetricsRecorder,
		logger:     cfg.Logger,
	}, nil
}

var _ remote.Store = &Client{}

func (c *Client) RegisterUser(ctx context.Context, r model.Registration) (*model.User, error) {
	req := registrationJSON{FirstName: r.FirstName, LastName: r.LastName, Email: r.Email, Password: r.Password}

	var resp userJSON
	err := c.do(ctx, call{
		op:         "RegisterUser",
		method:     http.MethodPost,
		path:       "/users/register",
		body:       req,
		out:        &resp,
		defaultErr: "Registration failed",
	})
	if err != nil {
		return nil, err
	}

	user := resp.toModel()
	if user.Email == "" {
		user.FirstName, user.LastName, user.Email = r.FirstName, r.LastName, r.Email
	}
	return user, nil
}

func (c *Client) LoginUser(ctx context.Context, cr model.Credentials) (*model.User, error) {
	var resp userJSON
	err := c.do(ctx, call{
		op:         "LoginUser",
		method:     http.MethodPost,
		path:       "/users/login",
		body:       credentialsJSON{Email: cr.Email, Password: cr.Password},
		out:        &resp,
		defaultErr: "Login failed",
	})
	if err != nil {
		return nil, err
	}

	return resp.toModel(), nil
}

func (c *Client) CreateActivity(ctx context.Context, a model.Activity) (*model.Activity, error) {
	req := activityToJSON(a)
	req.ID = ""

	var resp activityJSON
	err := c.do(ctx, call{
		op:             "CreateActivity",
		method:         http.MethodPost,
		path:           "/activities",
		body:           req,
		out:            &resp,
		defaultErr:     "Failed to create activity",
		idempotencyKey: uuid.NewString(),
	})
	if err != nil {
		return nil, err
	}

	return resp.toModel()
}

func (c *Client) GetActivity(ctx context.Context, id string) (*model.Activity, error) {
	var resp activityJSON
	err := c.do(ctx, call{
		op:         "GetActivity",
		method:     http.MethodGet,
		path:       "/activities/" + url.PathEscape(id),
		out:        &resp,
		defaultErr: "Activity not found",
	})
	if err != nil {
		return nil, err
	}

	return resp.toModel()
}

func (c *Client) ListActivities(ctx context.Context, activityType *model.ActivityType, status *model.ActivityStatus) ([]model.Activity, error) {
	q := url.Values{}
	if activityType != nil {
		q.Set("type", string(*activityType))
	}
	if status != nil {
		q.Set("status", string(*status))
	}

	var resp []activityJSON
	err := c.do(ctx, call{
		op:         "ListActivities",
		method:     http.MethodGet,
		path:       "/activities",
		query:      q,
		out:        &resp,
		defaultErr: "Failed to fetch activities",
	})
	if err != nil {
		return nil, err
	}

	return activitiesToModel(resp)
}

func (c *Client) ListActivitiesByDateRange(ctx context.Context, start, end time.Time) ([]model.Activity, error) {
	q := url.Values{}
	q.Set("startDate", start.Format(model.DateLayout))
	q.Set("endDate", end.Format(model.DateLayout))

	var resp []activityJSON
	err := c.do(ctx, call{
		op:         "ListActivitiesByDateRange",
		method:     http.MethodGet,
		path:       "/activities/range",
		query:      q,
		out:        &resp,
		defaultErr: "Failed to fetch activities",
	})
	if err != nil {
		return nil, err
	}

	return activitiesToModel(resp)
}

func (c *Client) ListUserActivities(ctx context.Context, userID string) ([]model.Activity, error) {
	var resp []activityJSON
	err := c.do(ctx, call{
		op:         "ListUserActivities",
		method:     http.MethodGet,
		path:       "/activities/user/" + url.PathEscape(userID),
		out:        &resp,
		defaultErr: "Failed to fetch user activities",
	})
	if err != nil {
		return nil, err
	}

	return activitiesToModel(resp)
}

func (c *Client) UpdateActivity(ctx context.Context, id string, a model.Activity) (*model.Activity, error) {
	req := activityToJSON(a)
	req.ID = wireID(id)

	var resp activityJSON
	err := c.do(ctx, call{
		op:         "UpdateActivity",
		method:     http.MethodPut,
		path:       "/activities/" + url.PathEscape(id),
		body:       req,
		out:        &resp,
		defaultErr: "Failed to update activity",
	})
	if err != nil {
		return nil, err
	}

	return optionalActivity(resp)
}

func (c *Client) UpdateStatus(ctx context.Context, id string, status model.ActivityStatus) (*model.Activity, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid status %q: %w", status, model.ErrNotValid)
	}

	var resp activityJSON
	err := c.do(ctx, call{
		op:         "UpdateStatus",
		method:     http.MethodPatch,
		path:       "/activities/" + url.PathEscape(id) + "/status",
		body:       statusJSON{Status: string(status)},
		out:        &resp,
		defaultErr: "Failed to update status",
	})
	if err != nil {
		return nil, err
	}

	return optionalActivity(resp)
}

func (c *Client) DeleteActivity(ctx context.Context, id string) error {
	return c.do(ctx, call{
		op:         "DeleteActivity",
		method:     http.MethodDelete,
		path:       "/activities/" + url.PathEscape(id),
		defaultErr: "Failed to delete activity",
	})
}

func (c *Client) CheckHealth(ctx context.Context) (*model.APIHealth, error) {
	var resp map[string]any
	err := c.do(ctx, call{
		op:         "CheckHealth",
		method:     http.MethodGet,
		path:       "/health",
		out:        &resp,
		defaultErr: "API health check failed",
	})
	if err != nil {
		return nil, err
	}

	h := &model.APIHealth{Details: map[string]any{}}
	for k, v := range resp {
		if strings.EqualFold(k, "status") {
			h.Status = fmt.Sprint(v)
			continue
		}
		h.Details[k] = v
	}
	return h, nil
}

// optionalActivity maps a response that may come without a body, some API
// versions reply to updates with 204.
func optionalActivity(resp activityJSON) (*model.Activity, error) {
	if resp.Type == "" {
		return nil, nil
	}
	return resp.toModel()
}

type call struct {
	op             string
	method         string
	path           string
	query          url.Values
	body           any
	out            any
	defaultErr     string
	idempotencyKey string
}

func (c *Client) do(ctx context.Context, cl call) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	u := c.baseURL + cl.path
	if len(cl.query) > 0 {
		u += "?" + cl.query.Encode()
	}

	var body io.Reader
	if cl.body != nil {
		b, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("%s: could not encode request: %w", cl.op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, u, body)
	if err != nil {
		return fmt.Errorf("%s: could not create request: %w", cl.op, err)
	}
	requestID := ulid.Make().String()
	req.Header.Set(headerRequestID, requestID)
	req.Header.Set("Accept", "application/json")
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cl.idempotencyKey != "" {
		req.Header.Set(headerIdempotencyKey, cl.idempotencyKey)
	}

	logger := c.logger.WithValues(log.Kv{"op": cl.op, "request-id": requestID})
	logger.Debugf("%s %s", cl.method, u)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.recorder.ObserveAPIRequest(ctx, cl.op, 0, time.Since(start))
		return fmt.Errorf("%s: request failed: %w", cl.op, err)
	}
	defer resp.Body.Close()
	c.recorder.ObserveAPIRequest(ctx, cl.op, resp.StatusCode, time.Since(start))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: could not read response: %w", cl.op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Op: cl.op, StatusCode: resp.StatusCode, Message: cl.defaultErr}
		var ej errorJSON
		if json.Unmarshal(data, &ej) == nil {
			switch {
			case ej.Message != "":
				apiErr.Message = ej.Message
			case ej.Title != "":
				apiErr.Message = ej.Title
			}
		}
		logger.Debugf("request rejected with status %d", resp.StatusCode)
		return apiErr
	}

	if cl.out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, cl.out); err != nil {
		return fmt.Errorf("%s: could not decode response: %w", cl.op, err)
	}

	return nil
}

// IsAPIError returns the typed API failure of err if any.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}
