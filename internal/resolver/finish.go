package resolver

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/lepinkainen/biblio/internal/book"
	"github.com/lepinkainen/biblio/internal/cover"
	"github.com/lepinkainen/biblio/internal/cutter"
	"github.com/lepinkainen/biblio/internal/tags"
	"github.com/lepinkainen/biblio/internal/textnorm"
)

// finish builds the resolved record from the gathered partial records.
// Every stage is guarded: a stage that panics leaves its fields empty and
// the rest of the record intact.
func (r *Resolver) finish(ctx context.Context, res *book.Resolution, g *gathered, q cover.Query) {
	res.Attempts = g.attempts
	if res.Attempts == nil {
		res.Attempts = []book.Attempt{}
	}
	res.Found = len(g.records) > 0

	var rec book.ResolvedRecord
	var subjects []string

	guard(res.RequestID, "merge", func() {
		merger := book.NewPriorityMerger(book.WithDescriptionCleaner(textnorm.SanitizeDescription))
		rec = merger.Merge(g.records)
	})

	guard(res.RequestID, "translate", func() {
		rec.Description = r.normalizer.Description(ctx, rec.Description)
		rec.Category = r.normalizer.Translate(ctx, rec.Category)
		subjects = r.normalizer.TranslateAll(ctx, collectSubjects(g.records))
	})

	guard(res.RequestID, "covers", func() {
		if r.covers == nil {
			rec.CoverCandidates = checkedCovers(g.records)
		} else {
			q.Title = firstNonBlank(rec.Title, q.Title)
			q.Author = firstNonBlank(rec.Author, q.Author)
			q.Records = g.records
			rec.CoverCandidates = r.covers.Collect(ctx, q)
		}
		if len(rec.CoverCandidates) > 0 {
			rec.CoverURL = rec.CoverCandidates[0].URL
		}
	})

	guard(res.RequestID, "tags", func() {
		rec.Tags = tags.Derive(tags.Input{
			Title:          rec.Title,
			Category:       rec.Category,
			TargetAudience: rec.TargetAudience,
			Description:    rec.Description,
			Keywords:       rec.Keywords,
			Subjects:       subjects,
		})
	})

	guard(res.RequestID, "classify", func() {
		rec.ClassificationCode = cutter.Classify(rec.Author, rec.Title)
	})

	if rec.Keywords == nil {
		rec.Keywords = []string{}
	}
	if rec.Tags == nil {
		rec.Tags = []string{}
	}
	if rec.CoverCandidates == nil {
		rec.CoverCandidates = []book.CoverCandidate{}
	}
	if rec.SourcesUsed == nil {
		rec.SourcesUsed = []string{}
	}
	res.Record = rec
	res.Provenance = provenance(rec.SourcesUsed)
}

func guard(requestID, stage string, fn func()) {
	defer func() {
		if p := recover(); p != nil {
			slog.Error("Resolution stage failed", "request_id", requestID, "stage", stage, "panic", p)
		}
	}()
	fn()
}

// provenance summarizes the contributing sources for notifications.
func provenance(sources []string) string {
	if len(sources) == 0 {
		return NotFoundProvenance
	}
	return "Sources: " + strings.Join(sources, ", ")
}

// collectSubjects returns the subjects of all records, de-duplicated
// case-insensitively, in gathered order.
func collectSubjects(records []*book.PartialRecord) []string {
	seen := make(map[string]bool)
	var out []string
	for _, rec := range records {
		for _, s := range rec.Subjects {
			s = strings.TrimSpace(s)
			key := strings.ToLower(s)
			if s == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, s)
		}
	}
	return out
}

// checkedCovers returns the covers adapters validated themselves.
func checkedCovers(records []*book.PartialRecord) []book.CoverCandidate {
	out := []book.CoverCandidate{}
	seen := make(map[string]bool)
	for _, rec := range records {
		if !rec.CoverChecked || rec.CoverURL == "" || seen[rec.CoverURL] {
			continue
		}
		seen[rec.CoverURL] = true
		out = append(out, book.CoverCandidate{URL: rec.CoverURL, Source: rec.Source, Validated: true})
	}
	return out
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func (r *Resolver) logSummary(res *book.Resolution, started time.Time) {
	if !res.Found {
		slog.Info("Resolution finished without data", "request_id", res.RequestID, "query", res.Query,
			"attempts", len(res.Attempts), "error", book.ErrNoDataFound, "duration", time.Since(started))
		return
	}
	slog.Info("Resolution finished", "request_id", res.RequestID, "query", res.Query,
		"title", res.Record.Title, "sources", strings.Join(res.Record.SourcesUsed, ", "),
		"attempts", len(res.Attempts), "duration", time.Since(started))
}
