// Package book holds the bibliographic data model shared by the source
// adapters and the resolver, and the priority-based field merger.
package book

import (
	"context"
	"time"

	"github.com/lepinkainen/biblio/internal/isbn"
)

// Source labels, used for provenance and merge priority.
const (
	SourceRegistry         = "Official Registry"
	SourceGoogleBooks      = "Google Books"
	SourceOpenLibrary      = "Open Library"
	SourceBrasilAPI        = "BrasilAPI"
	SourceMercadoEditorial = "Mercado Editorial"
	SourceCrossref         = "Crossref"
)

// Source is one external bibliographic provider.
type Source interface {
	// Name returns the human-readable label used in provenance (e.g., "Open Library").
	Name() string

	// Timeout is the per-call budget the adapter runs under.
	Timeout() time.Duration

	// Query looks the identifier up. It never panics or returns an error:
	// every failure is folded into the Outcome.
	Query(ctx context.Context, id isbn.ISBN) Outcome
}

// Searcher is implemented by sources that can look books up by title and author.
type Searcher interface {
	Name() string
	Search(ctx context.Context, title, author string) Outcome
}
