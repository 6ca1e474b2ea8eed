package sources

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/lepinkainen/biblio/internal/book"
	bibErrors "github.com/lepinkainen/biblio/internal/errors"
	"github.com/lepinkainen/biblio/internal/isbn"
)

const (
	crossrefBaseURL = "https://api.crossref.org"
	crossrefTimeout = 8 * time.Second
	crossrefRate    = 2
)

// Crossref is the cross-reference metadata adapter: author, title,
// publisher and year only.
type Crossref struct {
	client
}

var _ book.Source = (*Crossref)(nil)

// NewCrossref creates the Crossref adapter.
func NewCrossref(opts ...Option) *Crossref {
	return &Crossref{client: newClient(book.SourceCrossref, crossrefBaseURL, crossrefTimeout, crossrefRate, opts)}
}

type crossrefResponse struct {
	Message struct {
		Items []crossrefWork `json:"items"`
	} `json:"message"`
}

type crossrefWork struct {
	Title     flexStrings `json:"title"`
	Publisher flexString  `json:"publisher"`
	ISBN      flexStrings `json:"ISBN"`
	Author    []struct {
		Given  string `json:"given"`
		Family string `json:"family"`
		Name   string `json:"name"`
	} `json:"author"`
	Issued struct {
		DateParts [][]int `json:"date-parts"`
	} `json:"issued"`
}

// Query looks the identifier up in the works index.
func (c *Crossref) Query(ctx context.Context, id isbn.ISBN) book.Outcome {
	return c.run(ctx, id.String(), func(ctx context.Context) (*book.PartialRecord, error) {
		params := url.Values{}
		params.Set("filter", "isbn:"+id.String())
		params.Set("rows", "1")

		var resp crossrefResponse
		if err := c.getJSON(ctx, c.baseURL+"/works?"+params.Encode(), &resp); err != nil {
			return nil, err
		}
		if len(resp.Message.Items) == 0 {
			return nil, fmt.Errorf("%s: %w", c.name, bibErrors.ErrNotFound)
		}

		w := resp.Message.Items[0]
		if err := checkIdentifier(c.name, id, w.ISBN...); err != nil {
			return nil, err
		}

		authors := make([]string, 0, len(w.Author))
		for _, a := range w.Author {
			authors = append(authors, firstNonEmpty(strings.TrimSpace(a.Given+" "+a.Family), a.Name))
		}
		rec := &book.PartialRecord{
			Author:    joinAuthors(authors),
			Publisher: w.Publisher.String(),
			ISBN:      id.String(),
		}
		if len(w.Title) > 0 {
			rec.Title = w.Title[0]
		}
		if len(w.Issued.DateParts) > 0 && len(w.Issued.DateParts[0]) > 0 && w.Issued.DateParts[0][0] > 0 {
			rec.PublicationDate = strconv.Itoa(w.Issued.DateParts[0][0])
		}
		return rec, nil
	})
}
