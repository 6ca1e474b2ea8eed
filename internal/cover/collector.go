package cover

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/lepinkainen/biblio/internal/book"
	"github.com/lepinkainen/biblio/internal/isbn"
)

const (
	defaultMaxCandidates = 6
	defaultSearchLimit   = 5
	defaultConcurrency   = 8
)

// Finder searches a provider for cover URLs by title and author.
type Finder interface {
	Name() string
	FindCovers(ctx context.Context, title, author string, limit int) []string
}

// Query is the input of one collection run.
type Query struct {
	ISBN   isbn.ISBN
	Title  string
	Author string

	// Records are the partial records gathered by the resolver.
	Records []*book.PartialRecord
}

// Collector gathers cover candidates from every known place and keeps
// the ones that validate.
type Collector struct {
	validator     *Validator
	coversBaseURL string
	finders       []Finder
	maxCandidates int
	searchLimit   int
	concurrency   int
}

// Option configures a Collector.
type Option func(*Collector)

// WithCoversBaseURL sets the host used for direct-by-ISBN cover URLs.
func WithCoversBaseURL(base string) Option {
	return func(c *Collector) {
		if base != "" {
			c.coversBaseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithFinders sets the title/author cover searchers, queried in order.
func WithFinders(finders ...Finder) Option {
	return func(c *Collector) {
		c.finders = finders
	}
}

// WithMaxCandidates caps the number of returned candidates.
func WithMaxCandidates(n int) Option {
	return func(c *Collector) {
		if n > 0 {
			c.maxCandidates = n
		}
	}
}

// WithSearchLimit caps the results taken from each finder.
func WithSearchLimit(n int) Option {
	return func(c *Collector) {
		if n > 0 {
			c.searchLimit = n
		}
	}
}

// WithConcurrency bounds the number of simultaneous validations.
func WithConcurrency(n int) Option {
	return func(c *Collector) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// NewCollector creates a Collector. A nil validator gets the default one.
func NewCollector(v *Validator, opts ...Option) *Collector {
	if v == nil {
		v = NewValidator()
	}
	c := &Collector{
		validator:     v,
		coversBaseURL: DefaultCoversBaseURL,
		maxCandidates: defaultMaxCandidates,
		searchLimit:   defaultSearchLimit,
		concurrency:   defaultConcurrency,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect returns up to the configured maximum of validated candidates,
// in discovery order: Open Library by identifier (primary, then
// alternate), Google Books thumbnails, other record covers, then finder
// search results.
func (c *Collector) Collect(ctx context.Context, q Query) []book.CoverCandidate {
	discovered := c.discover(ctx, q)
	if len(discovered) == 0 {
		return []book.CoverCandidate{}
	}

	valid := make([]bool, len(discovered))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, cand := range discovered {
		if cand.Validated {
			valid[i] = true
			continue
		}
		g.Go(func() error {
			valid[i] = c.validator.Valid(gctx, cand.URL)
			return nil
		})
	}
	_ = g.Wait()

	out := make([]book.CoverCandidate, 0, c.maxCandidates)
	for i, cand := range discovered {
		if !valid[i] {
			continue
		}
		cand.Validated = true
		out = append(out, cand)
		if len(out) == c.maxCandidates {
			break
		}
	}
	slog.Debug("Cover candidates collected", "discovered", len(discovered), "valid", len(out))
	return out
}

func (c *Collector) discover(ctx context.Context, q Query) []book.CoverCandidate {
	var list candidateList

	checked := make(map[string]bool)
	for _, r := range q.Records {
		if r != nil && r.CoverChecked && r.CoverURL != "" {
			checked[r.CoverURL] = true
		}
	}

	if q.ISBN.Valid() {
		list.add(ISBNCoverURL(c.coversBaseURL, q.ISBN.String()), book.SourceOpenLibrary, checked)
		if alt, ok := q.ISBN.Alternate(); ok {
			list.add(ISBNCoverURL(c.coversBaseURL, alt.String()), book.SourceOpenLibrary, checked)
		}
	}

	for _, r := range q.Records {
		if r != nil && r.Source == book.SourceGoogleBooks {
			list.add(UpgradeGoogleThumbnail(r.CoverURL), r.Source, checked)
		}
	}
	for _, r := range q.Records {
		if r != nil && r.Source != book.SourceGoogleBooks {
			list.add(r.CoverURL, r.Source, checked)
		}
	}

	if strings.TrimSpace(q.Title) == "" || len(c.finders) == 0 {
		return list.items
	}

	results := make([][]string, len(c.finders))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range c.finders {
		g.Go(func() error {
			urls := f.FindCovers(gctx, q.Title, q.Author, c.searchLimit)
			if len(urls) > c.searchLimit {
				urls = urls[:c.searchLimit]
			}
			results[i] = urls
			return nil
		})
	}
	_ = g.Wait()

	for i, f := range c.finders {
		for _, u := range results[i] {
			list.add(u, f.Name(), checked)
		}
	}
	return list.items
}

type candidateList struct {
	items []book.CoverCandidate
	seen  map[string]bool
}

func (l *candidateList) add(url, source string, checked map[string]bool) {
	url = strings.TrimSpace(url)
	if url == "" {
		return
	}
	if l.seen == nil {
		l.seen = make(map[string]bool)
	}
	if l.seen[url] {
		return
	}
	l.seen[url] = true
	l.items = append(l.items, book.CoverCandidate{URL: url, Source: source, Validated: checked[url]})
}
