// Package resolver turns an identifier or a title/author pair into one
// resolved record by querying the source adapters in a fixed order and
// merging what they return.
package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lepinkainen/biblio/internal/book"
	"github.com/lepinkainen/biblio/internal/cover"
	"github.com/lepinkainen/biblio/internal/isbn"
	"github.com/lepinkainen/biblio/internal/textnorm"
)

// DefaultDeadline bounds a whole resolution, fallbacks and cover checks included.
const DefaultDeadline = 30 * time.Second

// NotFoundProvenance is reported when no source returned anything.
const NotFoundProvenance = "Not found in free sources, fill in manually"

// Sources assigns adapters to their roles. A nil role is skipped.
type Sources struct {
	Registry         book.Source
	GoogleBooks      book.Source
	OpenLibrary      book.Source
	BrasilAPI        book.Source
	MercadoEditorial book.Source
	Crossref         book.Source

	// Searchers answer ResolveByTitle. Their records are merged in the
	// usual source precedence.
	Searchers []book.Searcher
}

// CoverCollector finds validated cover candidates for a resolution.
type CoverCollector interface {
	Collect(ctx context.Context, q cover.Query) []book.CoverCandidate
}

// Resolver coordinates one resolution per call. It holds no per-request
// state and is safe for concurrent use.
type Resolver struct {
	sources    Sources
	normalizer *textnorm.Normalizer
	covers     CoverCollector
	deadline   time.Duration
	newID      func() string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithNormalizer sets the text normalizer used for categories, subjects
// and descriptions.
func WithNormalizer(n *textnorm.Normalizer) Option {
	return func(r *Resolver) {
		if n != nil {
			r.normalizer = n
		}
	}
}

// WithCoverCollector enables cover discovery. Without it only covers the
// adapters already validated are reported.
func WithCoverCollector(c CoverCollector) Option {
	return func(r *Resolver) {
		r.covers = c
	}
}

// WithDeadline sets the overall time budget of a resolution.
func WithDeadline(d time.Duration) Option {
	return func(r *Resolver) {
		if d > 0 {
			r.deadline = d
		}
	}
}

// WithRequestIDFunc replaces the request id generator.
func WithRequestIDFunc(fn func() string) Option {
	return func(r *Resolver) {
		if fn != nil {
			r.newID = fn
		}
	}
}

// New creates a Resolver over the given sources.
func New(sources Sources, opts ...Option) *Resolver {
	r := &Resolver{
		sources:    sources,
		normalizer: textnorm.NewNormalizer(),
		deadline:   DefaultDeadline,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve looks up raw, which may contain hyphens or spaces. A book no
// source knows is reported through Resolution.Found, not as an error.
func (r *Resolver) Resolve(ctx context.Context, raw string) *book.Resolution {
	started := time.Now()
	id := isbn.Parse(raw)
	res := &book.Resolution{RequestID: r.newID(), Query: id.String()}

	ctx, cancel := context.WithTimeout(ctx, r.deadline)
	defer cancel()

	g := &gathered{}
	if id == "" {
		slog.Warn("Identifier is empty after normalization", "request_id", res.RequestID, "input", raw)
	} else {
		if !id.Valid() {
			slog.Debug("Identifier has unexpected length, no alternate form", "request_id", res.RequestID, "isbn", id)
		}
		r.runPlan(ctx, res.RequestID, r.plan(id), g)
	}

	r.finish(ctx, res, g, cover.Query{ISBN: id})
	r.logSummary(res, started)
	return res
}

// ResolveByTitle searches every configured Searcher concurrently and merges
// the hits.
func (r *Resolver) ResolveByTitle(ctx context.Context, title, author string) *book.Resolution {
	started := time.Now()
	title, author = strings.TrimSpace(title), strings.TrimSpace(author)
	res := &book.Resolution{RequestID: r.newID(), Query: searchQuery(title, author)}

	ctx, cancel := context.WithTimeout(ctx, r.deadline)
	defer cancel()

	g := &gathered{}
	if title != "" {
		calls := make([]call, 0, len(r.sources.Searchers))
		for _, s := range r.sources.Searchers {
			if s == nil {
				continue
			}
			calls = append(calls, call{name: s.Name(), run: func(ctx context.Context) book.Outcome {
				return s.Search(ctx, title, author)
			}})
		}
		r.runStep(ctx, res.RequestID, calls, g)
	}

	q := cover.Query{Title: title, Author: author}
	for _, rec := range g.records {
		if rec.ISBN != "" {
			q.ISBN = isbn.Parse(rec.ISBN)
			break
		}
	}
	r.finish(ctx, res, g, q)
	r.logSummary(res, started)
	return res
}

func searchQuery(title, author string) string {
	if author == "" {
		return title
	}
	return title + " / " + author
}

// gathered accumulates adapter results in the order the steps ran.
type gathered struct {
	records  []*book.PartialRecord
	attempts []book.Attempt
}

func (g *gathered) sufficient() bool {
	merged := book.NewPriorityMerger().Merge(g.records)
	return merged.IsSufficient()
}

// call is one adapter invocation within a step.
type call struct {
	name string
	id   isbn.ISBN
	run  func(ctx context.Context) book.Outcome
}

// step is a group of calls issued together. Fallback steps only run while
// the gathered data still lacks a title or an author.
type step struct {
	calls    []call
	fallback bool
}

func queryCalls(id isbn.ISBN, sources ...book.Source) []call {
	calls := make([]call, 0, len(sources))
	for _, src := range sources {
		if src == nil {
			continue
		}
		calls = append(calls, call{name: src.Name(), id: id, run: func(ctx context.Context) book.Outcome {
			return src.Query(ctx, id)
		}})
	}
	return calls
}

// plan lists the steps for id: the registry first for domestic
// identifiers, then Google Books and Open Library together, then the
// fallback chain.
func (r *Resolver) plan(id isbn.ISBN) []step {
	s := r.sources
	domestic := id.IsDomestic()

	var steps []step
	if domestic {
		steps = append(steps, step{calls: queryCalls(id, s.Registry)})
	}
	steps = append(steps,
		step{calls: queryCalls(id, s.GoogleBooks, s.OpenLibrary)},
		step{calls: queryCalls(id, s.BrasilAPI), fallback: true},
		step{calls: queryCalls(id, s.MercadoEditorial), fallback: true},
	)
	if alt, ok := id.Alternate(); ok {
		// The registry always searches by ISBN-13, so the alternate form
		// only reaches it when it names a different identifier.
		if domestic && alt.ISBN13() != id.ISBN13() {
			steps = append(steps, step{calls: queryCalls(alt, s.Registry), fallback: true})
		}
		steps = append(steps, step{calls: queryCalls(alt, s.GoogleBooks, s.OpenLibrary), fallback: true})
	}
	steps = append(steps, step{calls: queryCalls(id, s.Crossref), fallback: true})
	if !domestic {
		steps = append(steps, step{calls: queryCalls(id, s.Registry), fallback: true})
	}
	return steps
}

func (r *Resolver) runPlan(ctx context.Context, requestID string, steps []step, g *gathered) {
	for _, st := range steps {
		if len(st.calls) == 0 {
			continue
		}
		if st.fallback {
			if g.sufficient() {
				return
			}
			if ctx.Err() != nil {
				slog.Debug("Deadline reached, skipping remaining sources", "request_id", requestID)
				return
			}
		}
		r.runStep(ctx, requestID, st.calls, g)
	}
}

// runStep issues the calls concurrently and waits for all of them. Results
// are appended in call order regardless of completion order.
func (r *Resolver) runStep(ctx context.Context, requestID string, calls []call, g *gathered) {
	results := make([]book.Attempt, len(calls))
	outcomes := make([]book.Outcome, len(calls))

	var eg errgroup.Group
	for i, c := range calls {
		eg.Go(func() error {
			outcomes[i], results[i] = attempt(ctx, c)
			return nil
		})
	}
	_ = eg.Wait()

	for i, out := range outcomes {
		a := results[i]
		slog.Debug("Source attempt", "request_id", requestID, "source", a.Source, "isbn", a.ISBN,
			"outcome", a.Outcome, "reason", a.Reason, "duration", a.Duration)
		g.attempts = append(g.attempts, a)
		if out.OK() {
			g.records = append(g.records, out.Record)
		}
	}
}

// attempt runs one call, converting a panic into a Failure.
func attempt(ctx context.Context, c call) (out book.Outcome, a book.Attempt) {
	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			out = book.Failure(fmt.Errorf("%s panicked: %v", c.name, p))
		}
		a = book.Attempt{
			Source:   c.name,
			ISBN:     c.id.String(),
			Outcome:  out.Kind.String(),
			Duration: time.Since(start),
		}
		if out.Reason != nil {
			a.Reason = out.Reason.Error()
		}
	}()
	out = c.run(ctx)
	if out.Kind == book.OutcomeSuccess && out.Record == nil {
		out = book.Empty()
	}
	return out, a
}
