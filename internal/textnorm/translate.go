package textnorm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lepinkainen/biblio/internal/ratelimit"
)

const (
	defaultTranslateBaseURL = "https://translate.googleapis.com"
	defaultTranslateTimeout = 5 * time.Second
	defaultBatchSize        = 5
)

// Translator translates one string remotely.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// HTTPTranslator calls a translate_a/single style endpoint.
type HTTPTranslator struct {
	baseURL    string
	sourceLang string
	targetLang string
	timeout    time.Duration
	httpClient HTTPDoer
	limiter    *ratelimit.Limiter
}

// TranslatorOption configures an HTTPTranslator.
type TranslatorOption func(*HTTPTranslator)

// WithTranslateBaseURL overrides the endpoint host.
func WithTranslateBaseURL(base string) TranslatorOption {
	return func(t *HTTPTranslator) {
		if base != "" {
			t.baseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithLanguages sets the source and target language codes.
func WithLanguages(source, target string) TranslatorOption {
	return func(t *HTTPTranslator) {
		if source != "" {
			t.sourceLang = source
		}
		if target != "" {
			t.targetLang = target
		}
	}
}

// WithTranslateTimeout bounds every translation call.
func WithTranslateTimeout(d time.Duration) TranslatorOption {
	return func(t *HTTPTranslator) {
		if d > 0 {
			t.timeout = d
		}
	}
}

// WithTranslateHTTPClient sets a custom HTTP client.
func WithTranslateHTTPClient(c HTTPDoer) TranslatorOption {
	return func(t *HTTPTranslator) {
		if c != nil {
			t.httpClient = c
		}
	}
}

// WithTranslateRateLimiter sets the limiter shared by all calls.
func WithTranslateRateLimiter(l *ratelimit.Limiter) TranslatorOption {
	return func(t *HTTPTranslator) {
		if l != nil {
			t.limiter = l
		}
	}
}

// NewHTTPTranslator creates a translator from English to Portuguese by default.
func NewHTTPTranslator(opts ...TranslatorOption) *HTTPTranslator {
	t := &HTTPTranslator{
		baseURL:    defaultTranslateBaseURL,
		sourceLang: "en",
		targetLang: "pt",
		timeout:    defaultTranslateTimeout,
		httpClient: &http.Client{},
		limiter:    ratelimit.New("Translate", 5),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Translate sends text to the endpoint and joins the translated segments.
func (t *HTTPTranslator) Translate(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	if err := t.limiter.Wait(ctx); err != nil {
		return "", err
	}

	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", t.sourceLang)
	q.Set("tl", t.targetLang)
	q.Set("dt", "t")
	q.Set("q", text)
	endpoint := fmt.Sprintf("%s/translate_a/single?%s", t.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("creating translate request: %w", err)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("translate returned status %d", resp.StatusCode)
	}

	// [[["translated","source",...],...],null,"en",...]
	var raw []any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", fmt.Errorf("decoding translate response: %w", err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("empty translate response")
	}
	segments, ok := raw[0].([]any)
	if !ok {
		return "", fmt.Errorf("unexpected translate response shape")
	}

	var b strings.Builder
	for _, seg := range segments {
		parts, ok := seg.([]any)
		if !ok || len(parts) == 0 {
			continue
		}
		if s, ok := parts[0].(string); ok {
			b.WriteString(s)
		}
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", fmt.Errorf("translate returned no text")
	}
	return out, nil
}

// Normalizer applies the dictionary and the remote fallback to categories,
// subjects and descriptions.
type Normalizer struct {
	translator Translator
	memo       Memo
	batchSize  int
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithTranslator enables the remote fallback.
func WithTranslator(t Translator) Option {
	return func(n *Normalizer) {
		n.translator = t
	}
}

// WithMemo injects the translation memo.
func WithMemo(m Memo) Option {
	return func(n *Normalizer) {
		if m != nil {
			n.memo = m
		}
	}
}

// WithBatchSize sets how many remote translations run at once.
func WithBatchSize(size int) Option {
	return func(n *Normalizer) {
		if size > 0 {
			n.batchSize = size
		}
	}
}

// NewNormalizer creates a Normalizer. Without WithTranslator only the static
// dictionary is used.
func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{
		memo:      NewMemoryMemo(),
		batchSize: defaultBatchSize,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Translate maps s through the category dictionary. When the dictionary
// leaves it unchanged and it reads as English, the remote translator is
// tried. Any failure returns s untouched.
func (n *Normalizer) Translate(ctx context.Context, s string) string {
	if strings.TrimSpace(s) == "" {
		return s
	}
	if local := TranslateCategory(s); local != s {
		return local
	}
	if !LooksEnglish(s) {
		return s
	}
	return n.remote(ctx, s)
}

// TranslateAll translates items in batches, waiting for each batch before
// starting the next so at most batchSize remote calls are outstanding.
func (n *Normalizer) TranslateAll(ctx context.Context, items []string) []string {
	out := make([]string, len(items))
	for start := 0; start < len(items); start += n.batchSize {
		end := min(start+n.batchSize, len(items))
		var g errgroup.Group
		for i := start; i < end; i++ {
			g.Go(func() error {
				out[i] = n.Translate(ctx, items[i])
				return nil
			})
		}
		_ = g.Wait()
	}
	return out
}

// Description sanitizes a description and translates it when it reads as
// English prose.
func (n *Normalizer) Description(ctx context.Context, s string) string {
	clean := SanitizeDescription(s)
	if clean == "" || !IsLikelyEnglish(clean) {
		return clean
	}
	return n.remote(ctx, clean)
}

func (n *Normalizer) remote(ctx context.Context, s string) string {
	if n.translator == nil {
		return s
	}
	key := MemoKey(s)
	if v, ok := n.memo.Get(key); ok {
		return v
	}
	translated, err := n.translator.Translate(ctx, s)
	if err != nil || strings.TrimSpace(translated) == "" {
		slog.Debug("Translation failed, keeping original", "text", truncate(s, 60), "error", err)
		return s
	}
	n.memo.Set(key, translated)
	return translated
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
