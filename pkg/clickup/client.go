// Package clickup is a minimal client for the ClickUp v2 REST API,
// covering only the endpoints the workspace setup flow needs.
package clickup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
)

// DefaultBaseURL is the public ClickUp v2 API endpoint.
const DefaultBaseURL = "https://api.clickup.com/api/v2"

const (
	// DefaultRequestDelay is slept after every successful call as a
	// baseline rate limit.
	DefaultRequestDelay = 500 * time.Millisecond
	// DefaultRateLimitWait is how long a 429 response is waited out
	// before the single retry.
	DefaultRateLimitWait = 60 * time.Second
	// DefaultHTTPTimeout bounds each individual HTTP exchange.
	DefaultHTTPTimeout = 30 * time.Second
)

// Options tune the client. Zero values fall back to the defaults
// above; RequestDelay may be set negative to disable the delay.
type Options struct {
	BaseURL       string
	RequestDelay  time.Duration
	RateLimitWait time.Duration
	HTTPTimeout   time.Duration
	Logger        *logrus.Logger
}

// Client issues sequential, blocking calls against one ClickUp team.
// It retries a request exactly once when the API answers 429, after a
// fixed wait, and surfaces every other failure as an error the caller
// is expected to log and treat as "operation did not happen".
type Client struct {
	baseURL string
	token   string
	teamID  string
	http    *http.Client
	delay   time.Duration
	log     *logrus.Logger
}

// New builds a client for the given API token and team.
func New(token, teamID string, opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.RequestDelay == 0 {
		opts.RequestDelay = DefaultRequestDelay
	}
	if opts.RateLimitWait == 0 {
		opts.RateLimitWait = DefaultRateLimitWait
	}
	if opts.HTTPTimeout == 0 {
		opts.HTTPTimeout = DefaultHTTPTimeout
	}
	if opts.Logger == nil {
		opts.Logger = logrus.New()
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = 1
	rc.Logger = nil
	rc.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		if err != nil {
			return false, err
		}
		return resp != nil && resp.StatusCode == http.StatusTooManyRequests, nil
	}
	wait := opts.RateLimitWait
	rc.Backoff = func(min, max time.Duration, attemptNum int, resp *http.Response) time.Duration {
		return wait
	}
	rc.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, attempt int) {
		if attempt > 0 {
			opts.Logger.Warnf("rate limit hit, retrying %s %s after %s", req.Method, req.URL.Path, wait)
		}
	}
	// The timeout bounds each attempt, not the whole retry loop: the
	// outer StandardClient wrapper would count the rate-limit wait
	// against it and cancel the retry before it fires.
	rc.HTTPClient.Timeout = opts.HTTPTimeout

	return &Client{
		baseURL: opts.BaseURL,
		token:   token,
		teamID:  teamID,
		http:    rc.StandardClient(),
		delay:   opts.RequestDelay,
		log:     opts.Logger,
	}
}

// do sends one JSON request and decodes the response body into out
// when it is non-empty. A nil out discards the body.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+path, rdr)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, path, err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("clickup api error %d on %s %s: %s", resp.StatusCode, method, path, bytes.TrimSpace(data))
	}

	if c.delay > 0 {
		time.Sleep(c.delay)
	}

	if out != nil && len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", method, path, err)
		}
	}
	return nil
}

// CreateSpace creates a space in the team and returns its ID.
func (c *Client) CreateSpace(ctx context.Context, req CreateSpaceRequest) (string, error) {
	var out idResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("team/%s/space", c.teamID), req, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

// GetSpaces lists the spaces in the team.
func (c *Client) GetSpaces(ctx context.Context) ([]Space, error) {
	var out spacesResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("team/%s/space", c.teamID), nil, &out); err != nil {
		return nil, err
	}
	return out.Spaces, nil
}

// CreateFolder creates a folder inside a space and returns its ID.
func (c *Client) CreateFolder(ctx context.Context, spaceID, name string) (string, error) {
	var out idResponse
	body := map[string]string{"name": name}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("space/%s/folder", spaceID), body, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

// CreateList creates a list inside a folder and returns its ID.
func (c *Client) CreateList(ctx context.Context, folderID, name string) (string, error) {
	var out idResponse
	body := map[string]string{"name": name}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("folder/%s/list", folderID), body, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

// CreateCustomField attaches a custom field to a list and returns the
// field ID.
func (c *Client) CreateCustomField(ctx context.Context, listID string, field CustomFieldRequest) (string, error) {
	var out fieldResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("list/%s/field", listID), field, &out); err != nil {
		return "", err
	}
	if out.id() == "" {
		return "", fmt.Errorf("create field %q: response carried no field id", field.Name)
	}
	return out.id(), nil
}

// CreateTask creates a task in a list and returns its ID.
func (c *Client) CreateTask(ctx context.Context, listID string, task TaskRequest) (string, error) {
	var out idResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("list/%s/task", listID), task, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

// UpdateTask applies changes to an existing task.
func (c *Client) UpdateTask(ctx context.Context, taskID string, task TaskRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("task/%s", taskID), task, nil)
}

// CreateSubtask creates a child task under a parent and returns its ID.
func (c *Client) CreateSubtask(ctx context.Context, parentID string, task TaskRequest) (string, error) {
	var out idResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("task/%s/subtask", parentID), task, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

// ListStatuses fetches the status names currently attached to a list.
// The API cannot create statuses, so callers only ever verify them.
func (c *Client) ListStatuses(ctx context.Context, listID string) ([]string, error) {
	var out listResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("list/%s", listID), nil, &out); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(out.Statuses))
	for _, s := range out.Statuses {
		names = append(names, s.Status)
	}
	return names, nil
}

// CreateView creates a space view and returns its ID. The views API is
// only partially supported upstream; failures are expected and left to
// the caller to report.
func (c *Client) CreateView(ctx context.Context, spaceID string, view ViewRequest) (string, error) {
	var out idResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("space/%s/view", spaceID), view, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}
