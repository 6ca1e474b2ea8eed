// Package cover discovers and validates cover image URLs for a book.
package cover

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/disintegration/imaging"
)

const (
	defaultValidateTimeout = 5 * time.Second
	// Images with both sides at or below this size are "no cover" placeholders.
	placeholderMaxSide = 10
	maxImageBytes      = 10 << 20
)

// ErrPlaceholder is returned for images that are a provider's "no cover" sentinel.
var ErrPlaceholder = errors.New("placeholder image")

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Validator checks that a URL serves a real cover image.
type Validator struct {
	client  HTTPDoer
	timeout time.Duration
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c HTTPDoer) ValidatorOption {
	return func(v *Validator) {
		if c != nil {
			v.client = c
		}
	}
}

// WithTimeout sets the per-URL validation timeout.
func WithTimeout(d time.Duration) ValidatorOption {
	return func(v *Validator) {
		if d > 0 {
			v.timeout = d
		}
	}
}

// NewValidator creates a Validator with a 5 second per-URL timeout.
func NewValidator(opts ...ValidatorOption) *Validator {
	v := &Validator{
		client:  http.DefaultClient,
		timeout: defaultValidateTimeout,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate downloads and decodes the image at url. It returns nil when the
// image is usable, ErrPlaceholder for sentinel images, or the download or
// decode error.
func (v *Validator) Validate(ctx context.Context, url string) error {
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d loading cover", resp.StatusCode)
	}

	img, err := imaging.Decode(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return fmt.Errorf("decode cover: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= placeholderMaxSide && bounds.Dy() <= placeholderMaxSide {
		return ErrPlaceholder
	}
	return nil
}

// Valid is Validate reduced to a boolean; failures are logged at debug level.
func (v *Validator) Valid(ctx context.Context, url string) bool {
	if err := v.Validate(ctx, url); err != nil {
		slog.Debug("Cover rejected", "url", url, "error", err)
		return false
	}
	return true
}
