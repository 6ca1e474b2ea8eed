package sources

import (
	"context"
	"fmt"
	"time"

	"github.com/lepinkainen/biblio/internal/book"
	bibErrors "github.com/lepinkainen/biblio/internal/errors"
	"github.com/lepinkainen/biblio/internal/isbn"
)

const (
	brasilAPIBaseURL = "https://brasilapi.com.br"
	brasilAPITimeout = 5 * time.Second
	brasilAPIRate    = 2
)

// BrasilAPI is the regional free-database adapter.
type BrasilAPI struct {
	client
}

var _ book.Source = (*BrasilAPI)(nil)

// NewBrasilAPI creates the BrasilAPI adapter.
func NewBrasilAPI(opts ...Option) *BrasilAPI {
	return &BrasilAPI{client: newClient(book.SourceBrasilAPI, brasilAPIBaseURL, brasilAPITimeout, brasilAPIRate, opts)}
}

type brasilAPIBook struct {
	ISBN      flexString  `json:"isbn"`
	Title     flexString  `json:"title"`
	Subtitle  flexString  `json:"subtitle"`
	Authors   flexStrings `json:"authors"`
	Publisher flexString  `json:"publisher"`
	Synopsis  flexString  `json:"synopsis"`
	Year      flexString  `json:"year"`
	Format    flexString  `json:"format"`
	PageCount flexString  `json:"page_count"`
	Subjects  flexStrings `json:"subjects"`
	Location  flexString  `json:"location"`
	CoverURL  flexString  `json:"cover_url"`
}

// Query looks the identifier up. An answer without a title counts as
// nothing found.
func (b *BrasilAPI) Query(ctx context.Context, id isbn.ISBN) book.Outcome {
	return b.run(ctx, id.String(), func(ctx context.Context) (*book.PartialRecord, error) {
		var resp brasilAPIBook
		if err := b.getJSON(ctx, fmt.Sprintf("%s/api/isbn/v1/%s", b.baseURL, id), &resp); err != nil {
			return nil, err
		}
		if err := checkIdentifier(b.name, id, resp.ISBN.String()); err != nil {
			return nil, err
		}
		if resp.Title.String() == "" {
			return nil, fmt.Errorf("%s: no title: %w", b.name, bibErrors.ErrNotFound)
		}
		rec := &book.PartialRecord{
			Title:           resp.Title.String(),
			Subtitle:        resp.Subtitle.String(),
			Author:          joinAuthors(resp.Authors),
			Publisher:       resp.Publisher.String(),
			PublicationDate: resp.Year.String(),
			PageCount:       resp.PageCount.Int(),
			Description:     resp.Synopsis.String(),
			Format:          resp.Format.String(),
			City:            resp.Location.String(),
			CoverURL:        resp.CoverURL.String(),
			Subjects:        []string(resp.Subjects),
			ISBN:            resp.ISBN.String(),
		}
		if len(resp.Subjects) > 0 {
			rec.Category = resp.Subjects[0]
		}
		return rec, nil
	})
}
