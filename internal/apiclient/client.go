// Package apiclient talks to the remote tour guides backend.
// It is the only package that knows the backend's URLs, status codes, and
// JSON shapes; everything it returns is already a domain type.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/pkordes/tourguide-gateway/internal/domain"
)

// DefaultTimeout bounds every backend request unless WithTimeout overrides it.
const DefaultTimeout = 10 * time.Second

const contentType = "application/json; charset=UTF-8"

// Client performs typed requests against the backend base URL,
// e.g. "http://guides.somee.com/api".
// A Client is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	limiter *rate.Limiter
	log     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-request timeout. Zero or negative disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithRateLimit throttles outbound requests to rps per second with the given
// burst. rps <= 0 leaves requests unthrottled.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithLogger sets the logger used for per-request debug lines.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New constructs a Client for baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		timeout: DefaultTimeout,
		limiter: rate.NewLimiter(rate.Inf, 0),
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do sends one request and returns the status code and the raw response body.
// Transport failures (including timeouts and cancellation) come back wrapped
// in domain.ErrNetwork. Interpreting the status is left to the caller, since
// each backend operation names different codes.
func (c *Client) do(ctx context.Context, method, path string, body any) (int, []byte, error) {
	op := method + " " + path

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("%s: marshal request: %w", op, err)
		}
		reqBody = bytes.NewReader(b)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return 0, nil, fmt.Errorf("%s: %w: %w", op, domain.ErrNetwork, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("Accept", contentType)
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: %w: %w", op, domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: read response: %w: %w", op, domain.ErrNetwork, err)
	}

	c.log.DebugContext(ctx, "backend request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return resp.StatusCode, data, nil
}

// getList performs a GET expecting a JSON array. Any non-2xx status becomes a
// *domain.FetchError. The result is never nil.
func getList[W any](ctx context.Context, c *Client, path string) ([]W, error) {
	op := http.MethodGet + " " + path
	status, data, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		return nil, &domain.FetchError{Op: op, Status: status}
	}
	var out []W
	if err := decode(data, &out); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}
	if out == nil {
		out = []W{}
	}
	return out, nil
}

// decode unmarshals data into v. An empty body leaves v untouched; some
// backend endpoints answer 201 with nothing in it.
func decode(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

// warnBody logs a success response whose body could not be read. Used by
// writes the backend has already committed, where the status is the answer.
func (c *Client) warnBody(ctx context.Context, op string, err error) {
	c.log.WarnContext(ctx, "ignoring unreadable backend response",
		"op", op,
		"error", err,
	)
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// unexpected wraps a status the operation's contract does not name.
// The result matches both domain.ErrNetwork and *domain.FetchError.
func unexpected(op string, status int) error {
	return fmt.Errorf("%w: %w", domain.ErrNetwork, &domain.FetchError{Op: op, Status: status})
}
