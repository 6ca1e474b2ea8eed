package book

import "time"

// Attempt records one adapter call made during a resolution.
type Attempt struct {
	Source   string        `json:"source" yaml:"source"`
	ISBN     string        `json:"isbn,omitempty" yaml:"isbn,omitempty"`
	Outcome  string        `json:"outcome" yaml:"outcome"`
	Reason   string        `json:"reason,omitempty" yaml:"reason,omitempty"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Resolution is what the resolver hands back to its caller.
type Resolution struct {
	RequestID string `json:"request_id" yaml:"request_id"`

	// Query is the normalized identifier, or "title / author" for searches.
	Query string `json:"query" yaml:"query"`

	Record ResolvedRecord `json:"record" yaml:"record"`

	// Found is false when no source returned any data. That is an
	// expected outcome, not an error.
	Found bool `json:"found" yaml:"found"`

	// Provenance is a human-readable summary for notifications.
	Provenance string `json:"provenance" yaml:"provenance"`

	Attempts []Attempt `json:"attempts" yaml:"attempts"`
}
