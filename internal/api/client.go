// Package api is the client for the CPD Events backend REST API.
//
// All resource wrappers share one Client, which injects the bearer
// token, retries transient failures, normalizes pagination envelopes,
// and unwraps the backend's error envelope. A 401 from any endpoint
// except login clears the stored token and surfaces ErrSessionExpired.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

const (
	// DefaultUserAgent identifies this client
	DefaultUserAgent = "cpd-events-cli/1.0"
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 15 * time.Second
	// DefaultRateLimit is 10 requests per second
	DefaultRateLimit = rate.Limit(10.0)
	// MaxRetries for transient errors
	MaxRetries = 2
	// RetryBaseDelay is the initial backoff delay
	RetryBaseDelay = 1 * time.Second
)

// TokenSource supplies the bearer token and is asked to discard it when
// the backend reports the session as expired.
type TokenSource interface {
	Token() string
	Clear() error
}

// StaticToken is a fixed, non-clearable token. Useful in tests and for
// service integrations that manage their own credentials.
type StaticToken string

func (t StaticToken) Token() string { return string(t) }
func (t StaticToken) Clear() error  { return nil }

// Client handles communication with the CPD Events backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	tokens     TokenSource
	limiter    *rate.Limiter
	cache      *cache.Cache
	cacheTTL   time.Duration
	logger     zerolog.Logger
	tracer     trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithRateLimit sets a custom rate limit (requests per second).
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithCache enables read caching of GET responses for ttl. Any write
// through the client invalidates cached entries under the same
// resource root.
func WithCache(ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache.New(ttl, 2*ttl)
		c.cacheTTL = ttl
	}
}

// WithLogger sets the structured logger used for request-level logging.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client for the backend at baseURL. The token
// source may be nil for unauthenticated use (health checks, verify).
func NewClient(baseURL string, tokens TokenSource, opts ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: DefaultUserAgent,
		tokens:    tokens,
		limiter:   rate.NewLimiter(DefaultRateLimit, 1),
		logger:    zerolog.Nop(),
		tracer:    otel.Tracer("github.com/Rutvikrj26/cpd-events-cli/internal/api"),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// request describes one call against the backend. Resource paths use
// the backend's trailing-slash convention ("/events/").
type request struct {
	method string
	path   string // resource path, or an absolute URL when following pagination links
	query  url.Values
	body   any
	out    any
	noAuth bool   // login and other pre-auth endpoints
	accept string // defaults to application/json
}

// get performs a GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, request{method: http.MethodGet, path: path, query: query, out: out})
}

// getRaw performs a GET and returns the raw response body (PDF downloads).
func (c *Client) getRaw(ctx context.Context, path string, accept string) ([]byte, error) {
	var body []byte
	err := c.do(ctx, request{method: http.MethodGet, path: path, out: &body, accept: accept})
	return body, err
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, request{method: http.MethodPost, path: path, body: body, out: out})
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, request{method: http.MethodPatch, path: path, body: body, out: out})
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: path})
}

// do executes a request with rate limiting. GETs are retried with
// exponential backoff on network errors, 429, and 5xx responses.
func (c *Client) do(ctx context.Context, r request) error {
	requestURL := r.path
	if !strings.HasPrefix(requestURL, "http://") && !strings.HasPrefix(requestURL, "https://") {
		requestURL = c.baseURL + r.path
	}
	if len(r.query) > 0 {
		requestURL += "?" + r.query.Encode()
	}

	ctx, span := c.tracer.Start(ctx, r.method+" "+r.path,
		trace.WithAttributes(
			attribute.String("http.method", r.method),
			attribute.String("http.url", requestURL),
		))
	defer span.End()

	if r.method == http.MethodGet && c.cache != nil {
		if cached, found := c.cache.Get(requestURL); found {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return assignResponse(r.out, cached.([]byte))
		}
	}

	var payload []byte
	if r.body != nil {
		var err error
		payload, err = json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
	}

	body, status, err := c.doWithRetry(ctx, r, requestURL, payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetAttributes(attribute.Int("http.status_code", status))

	if r.method == http.MethodGet {
		if c.cache != nil {
			c.cache.Set(requestURL, body, cache.DefaultExpiration)
		}
	} else {
		c.invalidate(r.path)
	}

	return assignResponse(r.out, body)
}

// doWithRetry issues the request. Only GETs are retried: the backend
// may commit a write before the connection fails, and re-sending a
// POST would duplicate the registration, invite, or checkout session.
func (c *Client) doWithRetry(ctx context.Context, r request, requestURL string, payload []byte) ([]byte, int, error) {
	var lastErr error

	attempts := 1
	if r.method == http.MethodGet {
		attempts = MaxRetries + 1
	}

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			// Exponential backoff: 1s, 2s, 4s, ...
			delay := RetryBaseDelay * time.Duration(1<<uint(attempt-1))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, 0, ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, 0, fmt.Errorf("rate limiter: %w", err)
		}

		var reqBody io.Reader
		if payload != nil {
			reqBody = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, r.method, requestURL, reqBody)
		if err != nil {
			return nil, 0, fmt.Errorf("create request: %w", err)
		}

		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("X-Request-ID", newRequestID())
		if r.accept != "" {
			req.Header.Set("Accept", r.accept)
		} else {
			req.Header.Set("Accept", "application/json")
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if !r.noAuth && c.tokens != nil {
			if token := c.tokens.Token(); token != "" {
				req.Header.Set("Authorization", "Bearer "+token)
			}
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("http request: %w", err)
			continue // Retry on network errors
		}

		respBody, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()

		if err != nil {
			lastErr = fmt.Errorf("read response: %w", err)
			continue // Retry on read errors
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			lastErr = decodeAPIError(resp.StatusCode, respBody)
			continue // Retried for GETs, returned as-is for writes
		}

		if resp.StatusCode == http.StatusUnauthorized && !r.noAuth {
			// Session is gone: drop the stored token so the next
			// command prompts for login instead of failing again.
			if c.tokens != nil {
				if clearErr := c.tokens.Clear(); clearErr != nil {
					c.logger.Warn().Err(clearErr).Msg("failed to clear stored token")
				}
			}
			return nil, resp.StatusCode, ErrSessionExpired
		}

		if resp.StatusCode >= 400 {
			return nil, resp.StatusCode, decodeAPIError(resp.StatusCode, respBody)
		}

		c.logger.Debug().
			Str("method", r.method).
			Str("path", r.path).
			Int("status", resp.StatusCode).
			Msg("api request")

		return respBody, resp.StatusCode, nil
	}

	if attempts > 1 {
		return nil, 0, fmt.Errorf("max retries exceeded: %w", lastErr)
	}
	return nil, 0, lastErr
}

// assignResponse decodes body into out. A *[]byte out receives the raw
// body unchanged (binary downloads).
func assignResponse(out any, body []byte) error {
	if out == nil || len(body) == 0 {
		return nil
	}
	if raw, ok := out.(*[]byte); ok {
		*raw = body
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}
	return nil
}

// crossInvalidates lists resource roots whose cached reads a write
// under the key's root also makes stale: enrolling creates an
// enrollment, completing one issues CPD credit and a certificate
// server-side, and applying a promo code changes the subscription.
var crossInvalidates = map[string][]string{
	"courses":     {"enrollments"},
	"enrollments": {"cpd", "certificates"},
	"promo-codes": {"subscription", "billing"},
}

// invalidate drops cached GET responses under the written resource's
// root and any dependent roots, so a write is visible to the next read.
func (c *Client) invalidate(path string) {
	if c.cache == nil {
		return
	}
	root := resourceRoot(path)
	if root == "" {
		c.cache.Flush()
		return
	}
	for _, root := range append([]string{root}, crossInvalidates[root]...) {
		prefix := c.baseURL + "/" + root
		for key := range c.cache.Items() {
			if strings.HasPrefix(key, prefix) {
				c.cache.Delete(key)
			}
		}
	}
}

// resourceRoot extracts the first path segment ("/events/123/" -> "events").
func resourceRoot(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i > 0 {
		return path[:i]
	}
	return path
}

// newRequestID returns a fresh ULID. ulid.Make is safe for the
// concurrent requests issued by dashboard-style parallel loads.
func newRequestID() string {
	return ulid.Make().String()
}
