// Package api is the HTTP client for the FLIITS platform admin API.
//
// Every call is a single attempt with no retries; the console is
// human-paced and a failed call is surfaced to the operator instead.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/fliits/fliitsctl/pkg/logging"
)

// apiPrefix is prepended to every resource path under the base URL.
const apiPrefix = "/api"

// Client talks to the admin API. The bearer token is part of the client's
// construction rather than looked up ambiently, so a client is always
// explicitly authenticated (or explicitly not).
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets the bearer token attached to every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithTimeout sets the HTTP timeout for the client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the request logger. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates an admin API client for the given base URL
// (e.g. "https://api.fliits.com").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do performs a JSON request against the admin API and classifies the
// response. 2xx returns the raw body (nil for 204 No Content); non-2xx
// returns a *RequestError; transport failure returns a *ConnectionError.
func (c *Client) do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	fullURL := c.baseURL + apiPrefix + path

	var bodyReader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.logger.Debug("admin API request", "method", method, "url", fullURL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ConnectionError{URL: c.baseURL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, parseError(resp.StatusCode, respBody)
	}
	return respBody, nil
}

// get performs an HTTP GET request.
func (c *Client) get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// parseError decodes an {error, message} body into a RequestError.
func parseError(status int, body []byte) error {
	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return &RequestError{
			StatusCode: status,
			Code:       errResp.Error,
			Message:    errResp.Message,
		}
	}
	return &RequestError{
		StatusCode: status,
		Code:       "unknown_error",
		Message:    fmt.Sprintf("server returned status %d", status),
	}
}
