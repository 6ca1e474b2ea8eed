package book

import "strings"

// PartialRecord contains the metadata one source returned for one query.
// Empty strings and zero values mean "not provided". A record is not
// modified after the adapter returns it.
type PartialRecord struct {
	Title           string   `json:"title,omitempty"`
	Subtitle        string   `json:"subtitle,omitempty"`
	Author          string   `json:"author,omitempty"`
	Publisher       string   `json:"publisher,omitempty"`
	PublicationDate string   `json:"publication_date,omitempty"`
	PageCount       int      `json:"page_count,omitempty"`
	Language        string   `json:"language,omitempty"`
	Category        string   `json:"category,omitempty"`
	Description     string   `json:"description,omitempty"`
	CoverURL        string   `json:"cover_url,omitempty"`
	Edition         string   `json:"edition,omitempty"`
	Format          string   `json:"format,omitempty"`
	TargetAudience  string   `json:"target_audience,omitempty"`
	City            string   `json:"city,omitempty"`
	State           string   `json:"state,omitempty"`
	Country         string   `json:"country,omitempty"`
	Keywords        []string `json:"keywords,omitempty"`

	// Subjects are raw subject headings or categories, fed to the tag engine.
	Subjects []string `json:"subjects,omitempty"`

	// ISBN is the identifier echoed back by the provider, if any.
	ISBN string `json:"isbn,omitempty"`

	// CoverChecked is set when the adapter already validated CoverURL.
	CoverChecked bool `json:"cover_checked,omitempty"`

	// Source is the label of the adapter that produced the record.
	Source string `json:"source"`
}

// HasTitle reports whether the record carries a non-blank title.
func (r *PartialRecord) HasTitle() bool {
	return r != nil && strings.TrimSpace(r.Title) != ""
}

// IsEmpty reports whether no descriptive field is populated.
func (r *PartialRecord) IsEmpty() bool {
	if r == nil {
		return true
	}
	for _, v := range r.stringFields() {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return r.PageCount <= 0 && len(r.Keywords) == 0 && len(r.Subjects) == 0
}

func (r *PartialRecord) stringFields() []string {
	return []string{
		r.Title, r.Subtitle, r.Author, r.Publisher, r.PublicationDate,
		r.Language, r.Category, r.Description, r.CoverURL, r.Edition,
		r.Format, r.TargetAudience, r.City, r.State, r.Country,
	}
}

// CoverCandidate is a cover image URL discovered during resolution.
type CoverCandidate struct {
	URL       string `json:"url"`
	Source    string `json:"source"`
	Validated bool   `json:"validated"`
}

// ResolvedRecord is the merged result of a resolution.
type ResolvedRecord struct {
	Title           string   `json:"title" yaml:"title"`
	Subtitle        string   `json:"subtitle" yaml:"subtitle"`
	Author          string   `json:"author" yaml:"author"`
	Publisher       string   `json:"publisher" yaml:"publisher"`
	PublicationDate string   `json:"publication_date" yaml:"publication_date"`
	PageCount       int      `json:"page_count" yaml:"page_count"`
	Language        string   `json:"language" yaml:"language"`
	Category        string   `json:"category" yaml:"category"`
	Description     string   `json:"description" yaml:"description"`
	CoverURL        string   `json:"cover_url" yaml:"cover_url"`
	Edition         string   `json:"edition" yaml:"edition"`
	Format          string   `json:"format" yaml:"format"`
	TargetAudience  string   `json:"target_audience" yaml:"target_audience"`
	City            string   `json:"city" yaml:"city"`
	State           string   `json:"state" yaml:"state"`
	Country         string   `json:"country" yaml:"country"`
	Keywords        []string `json:"keywords" yaml:"keywords"`

	Tags               []string         `json:"tags" yaml:"tags"`
	CoverCandidates    []CoverCandidate `json:"cover_candidates" yaml:"cover_candidates"`
	ClassificationCode string           `json:"classification_code" yaml:"classification_code"`
	SourcesUsed        []string         `json:"sources_used" yaml:"sources_used"`
}

// IsSufficient reports whether the record already carries a title and an
// author, the point at which fallback sources stop being queried.
func (r *ResolvedRecord) IsSufficient() bool {
	return r != nil && strings.TrimSpace(r.Title) != "" && strings.TrimSpace(r.Author) != ""
}

// AddSource appends a provenance label once, preserving insertion order.
func (r *ResolvedRecord) AddSource(label string) {
	for _, s := range r.SourcesUsed {
		if s == label {
			return
		}
	}
	r.SourcesUsed = append(r.SourcesUsed, label)
}
