// Package sources contains the adapters for the external bibliographic
// providers. Every adapter implements book.Source; failures never escape
// an adapter, they are folded into the returned book.Outcome.
package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/lepinkainen/biblio/internal/book"
	bibErrors "github.com/lepinkainen/biblio/internal/errors"
	"github.com/lepinkainen/biblio/internal/isbn"
	"github.com/lepinkainen/biblio/internal/ratelimit"
)

const userAgent = "biblio/1.0 (+https://github.com/lepinkainen/biblio)"

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// client is the HTTP plumbing shared by all adapters.
type client struct {
	name       string
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient HTTPDoer
	limiter    *ratelimit.Limiter
}

// Option is a functional option for configuring an adapter.
type Option func(*client)

// WithBaseURL overrides the provider's base URL.
func WithBaseURL(base string) Option {
	return func(c *client) {
		if base != "" {
			c.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(h HTTPDoer) Option {
	return func(c *client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithTimeout overrides the per-query timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithRateLimiter replaces the adapter's rate limiter.
func WithRateLimiter(l *ratelimit.Limiter) Option {
	return func(c *client) {
		if l != nil {
			c.limiter = l
		}
	}
}

// WithAPIKey sets the provider API key, for providers that take one.
func WithAPIKey(key string) Option {
	return func(c *client) {
		c.apiKey = key
	}
}

func newClient(name, baseURL string, timeout time.Duration, ratePerSecond float64, opts []Option) client {
	c := client{
		name:       name,
		baseURL:    baseURL,
		timeout:    timeout,
		httpClient: &http.Client{},
		limiter:    ratelimit.New(name, ratePerSecond),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Name returns the provider label used for provenance.
func (c *client) Name() string {
	return c.name
}

// Timeout returns the per-query budget.
func (c *client) Timeout() time.Duration {
	return c.timeout
}

// run executes fetch under the adapter timeout and converts its result to
// an Outcome. Not-found and identifier mismatches become Empty; any other
// error or a panic becomes Failure.
func (c *client) run(ctx context.Context, id string, fetch func(context.Context) (*book.PartialRecord, error)) (out book.Outcome) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			slog.Warn("Source panicked", "source", c.name, "isbn", id, "panic", r)
			out = book.Failure(fmt.Errorf("%s: panic: %v", c.name, r))
		}
	}()

	rec, err := fetch(ctx)
	switch {
	case err == nil:
		if rec != nil {
			rec.Source = c.name
		}
		return book.Success(rec)
	case bibErrors.IsNotFound(err):
		slog.Debug("Source has no record", "source", c.name, "isbn", id)
		return book.Empty()
	case bibErrors.IsIdentifierMismatch(err):
		slog.Debug("Source returned a different book", "source", c.name, "isbn", id, "error", err)
		return book.Empty()
	default:
		slog.Debug("Source query failed", "source", c.name, "isbn", id, "error", err)
		return book.Failure(err)
	}
}

func (c *client) getJSON(ctx context.Context, endpoint string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return bibErrors.NewTransportError(c.name, err)
	}
	return c.do(req, target)
}

func (c *client) postJSON(ctx context.Context, endpoint string, body any, headers map[string]string, target any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%s: encode request: %w", c.name, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return bibErrors.NewTransportError(c.name, err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return c.do(req, target)
}

func (c *client) do(req *http.Request, target any) error {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return bibErrors.NewTransportError(c.name, err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return bibErrors.NewTransportError(c.name, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", c.name, bibErrors.ErrNotFound)
	case resp.StatusCode == http.StatusTooManyRequests:
		return bibErrors.NewRateLimitErrorWithRetry(c.name, "rate limit exceeded", retryAfter(resp.Header.Get("Retry-After")))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return bibErrors.NewStatusError(c.name, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return bibErrors.NewTransportError(c.name, err)
	}
	if err := json.Unmarshal(body, target); err != nil {
		return bibErrors.NewParseError(c.name, err)
	}
	return nil
}

func retryAfter(header string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

// checkIdentifier returns a mismatch error when the provider echoed
// identifiers and none of them is the queried one. Providers that echo
// nothing are trusted.
func checkIdentifier(source string, id isbn.ISBN, returned ...string) error {
	var first string
	for _, r := range returned {
		if isbn.Normalize(r) == "" {
			continue
		}
		if id.Matches(r) {
			return nil
		}
		if first == "" {
			first = r
		}
	}
	if first == "" {
		return nil
	}
	return bibErrors.Mismatch(source, id.String(), first)
}

// joinAuthors joins non-blank author names with "; ".
func joinAuthors(names []string) string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return strings.Join(out, "; ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
