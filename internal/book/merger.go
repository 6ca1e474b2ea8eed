package book

import (
	"sort"
	"strings"
)

// DefaultOrder is the merge precedence when the registry has not answered
// with a title. Lower index wins.
var DefaultOrder = []string{
	SourceGoogleBooks,
	SourceOpenLibrary,
	SourceBrasilAPI,
	SourceMercadoEditorial,
	SourceCrossref,
	SourceRegistry,
}

// registryFirst lists the fields the registry overrides when it returned a title.
var registryFirst = map[string]bool{
	"title":            true,
	"subtitle":         true,
	"author":           true,
	"publisher":        true,
	"category":         true,
	"description":      true,
	"edition":          true,
	"language":         true,
	"publication_date": true,
	"page_count":       true,
}

// Candidate is one source's value for a field.
type Candidate struct {
	Value    string
	Priority int
	Source   string
}

// PickBest returns the first candidate, in ascending priority, whose trimmed
// value is non-empty. Candidates with equal priority keep their given order.
func PickBest(candidates []Candidate) (Candidate, bool) {
	sorted := make([]Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})
	for _, c := range sorted {
		if v := strings.TrimSpace(c.Value); v != "" {
			c.Value = v
			return c, true
		}
	}
	return Candidate{}, false
}

// Merger combines partial records into a resolved record.
type Merger interface {
	// Merge combines records, given in the order they were gathered.
	Merge(records []*PartialRecord) ResolvedRecord
}

// PriorityMerger implements Merger using per-source precedence with the
// registry override.
type PriorityMerger struct {
	order       map[string]int
	description func(string) string
}

// MergeOption configures a PriorityMerger.
type MergeOption func(*PriorityMerger)

// WithDescriptionCleaner runs every description candidate through fn before
// picking, so a discarded description never shadows a usable one.
func WithDescriptionCleaner(fn func(string) string) MergeOption {
	return func(m *PriorityMerger) {
		m.description = fn
	}
}

// WithOrder replaces the default source precedence.
func WithOrder(labels []string) MergeOption {
	return func(m *PriorityMerger) {
		m.order = indexOrder(labels)
	}
}

// NewPriorityMerger creates a new PriorityMerger.
func NewPriorityMerger(opts ...MergeOption) *PriorityMerger {
	m := &PriorityMerger{order: indexOrder(DefaultOrder)}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func indexOrder(labels []string) map[string]int {
	order := make(map[string]int, len(labels))
	for i, l := range labels {
		order[l] = i
	}
	return order
}

// Merge combines records field by field. SourcesUsed lists each source that
// won at least one field, in the order the records were gathered.
func (m *PriorityMerger) Merge(records []*PartialRecord) ResolvedRecord {
	var present []*PartialRecord
	registryOverride := false
	for _, r := range records {
		if r == nil {
			continue
		}
		present = append(present, r)
		if r.Source == SourceRegistry && r.HasTitle() {
			registryOverride = true
		}
	}

	var out ResolvedRecord
	if len(present) == 0 {
		return out
	}

	won := make(map[string]bool)
	pick := func(field string, get func(*PartialRecord) string) string {
		candidates := make([]Candidate, 0, len(present))
		for _, r := range present {
			candidates = append(candidates, Candidate{
				Value:    get(r),
				Priority: m.priority(r.Source, field, registryOverride),
				Source:   r.Source,
			})
		}
		best, ok := PickBest(candidates)
		if !ok {
			return ""
		}
		won[best.Source] = true
		return best.Value
	}

	out.Title = pick("title", func(r *PartialRecord) string { return r.Title })
	out.Subtitle = pick("subtitle", func(r *PartialRecord) string { return r.Subtitle })
	out.Author = pick("author", func(r *PartialRecord) string { return r.Author })
	out.Publisher = pick("publisher", func(r *PartialRecord) string { return r.Publisher })
	out.PublicationDate = pick("publication_date", func(r *PartialRecord) string { return r.PublicationDate })
	out.Language = pick("language", func(r *PartialRecord) string { return r.Language })
	out.Category = pick("category", func(r *PartialRecord) string { return r.Category })
	out.Description = pick("description", func(r *PartialRecord) string {
		if m.description != nil {
			return m.description(r.Description)
		}
		return r.Description
	})
	out.Edition = pick("edition", func(r *PartialRecord) string { return r.Edition })
	out.Format = pick("format", func(r *PartialRecord) string { return r.Format })
	out.TargetAudience = pick("target_audience", func(r *PartialRecord) string { return r.TargetAudience })
	out.City = pick("city", func(r *PartialRecord) string { return r.City })
	out.State = pick("state", func(r *PartialRecord) string { return r.State })
	out.Country = pick("country", func(r *PartialRecord) string { return r.Country })

	out.PageCount = m.pickPages(present, registryOverride, won)
	out.Keywords = m.pickKeywords(present, registryOverride, won)

	for _, r := range present {
		if won[r.Source] {
			out.AddSource(r.Source)
		}
	}
	return out
}

func (m *PriorityMerger) priority(source, field string, registryOverride bool) int {
	if registryOverride && source == SourceRegistry && registryFirst[field] {
		return -1
	}
	if p, ok := m.order[source]; ok {
		return p
	}
	return len(m.order)
}

func (m *PriorityMerger) pickPages(records []*PartialRecord, registryOverride bool, won map[string]bool) int {
	best, bestPriority, source := 0, 0, ""
	for _, r := range records {
		if r.PageCount <= 0 {
			continue
		}
		p := m.priority(r.Source, "page_count", registryOverride)
		if source == "" || p < bestPriority {
			best, bestPriority, source = r.PageCount, p, r.Source
		}
	}
	if source != "" {
		won[source] = true
	}
	return best
}

func (m *PriorityMerger) pickKeywords(records []*PartialRecord, registryOverride bool, won map[string]bool) []string {
	var best []string
	bestPriority, source := 0, ""
	for _, r := range records {
		kw := nonBlank(r.Keywords)
		if len(kw) == 0 {
			continue
		}
		p := m.priority(r.Source, "keywords", registryOverride)
		if source == "" || p < bestPriority {
			best, bestPriority, source = kw, p, r.Source
		}
	}
	if source != "" {
		won[source] = true
	}
	return best
}

// nonBlank returns the trimmed, non-empty values of in, without duplicates.
func nonBlank(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
