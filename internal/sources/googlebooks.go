package sources

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/lepinkainen/biblio/internal/book"
	"github.com/lepinkainen/biblio/internal/cover"
	bibErrors "github.com/lepinkainen/biblio/internal/errors"
	"github.com/lepinkainen/biblio/internal/isbn"
)

const (
	googleBooksBaseURL = "https://www.googleapis.com/books/v1"
	googleBooksTimeout = 5 * time.Second
	googleBooksRate    = 2
)

// GoogleBooks is the general catalog adapter.
type GoogleBooks struct {
	client
}

var (
	_ book.Source   = (*GoogleBooks)(nil)
	_ book.Searcher = (*GoogleBooks)(nil)
	_ cover.Finder  = (*GoogleBooks)(nil)
)

// NewGoogleBooks creates the Google Books adapter. An API key is optional.
func NewGoogleBooks(opts ...Option) *GoogleBooks {
	return &GoogleBooks{client: newClient(book.SourceGoogleBooks, googleBooksBaseURL, googleBooksTimeout, googleBooksRate, opts)}
}

type googleBooksResponse struct {
	TotalItems int              `json:"totalItems"`
	Items      []googleBookItem `json:"items"`
}

type googleBookItem struct {
	VolumeInfo struct {
		Title               string      `json:"title"`
		Subtitle            string      `json:"subtitle"`
		Authors             flexStrings `json:"authors"`
		Publisher           string      `json:"publisher"`
		PublishedDate       string      `json:"publishedDate"`
		Description         string      `json:"description"`
		PageCount           int         `json:"pageCount"`
		Categories          flexStrings `json:"categories"`
		Language            string      `json:"language"`
		IndustryIdentifiers []struct {
			Type       string `json:"type"`
			Identifier string `json:"identifier"`
		} `json:"industryIdentifiers"`
		ImageLinks struct {
			Thumbnail      string `json:"thumbnail"`
			SmallThumbnail string `json:"smallThumbnail"`
		} `json:"imageLinks"`
	} `json:"volumeInfo"`
}

func (it *googleBookItem) identifiers() []string {
	ids := make([]string, 0, len(it.VolumeInfo.IndustryIdentifiers))
	for _, ii := range it.VolumeInfo.IndustryIdentifiers {
		if strings.HasPrefix(ii.Type, "ISBN") {
			ids = append(ids, ii.Identifier)
		}
	}
	return ids
}

func (it *googleBookItem) record() *book.PartialRecord {
	v := it.VolumeInfo
	rec := &book.PartialRecord{
		Title:           v.Title,
		Subtitle:        v.Subtitle,
		Author:          joinAuthors(v.Authors),
		Publisher:       v.Publisher,
		PublicationDate: v.PublishedDate,
		PageCount:       v.PageCount,
		Language:        v.Language,
		Description:     v.Description,
		CoverURL:        cover.UpgradeGoogleThumbnail(firstNonEmpty(v.ImageLinks.Thumbnail, v.ImageLinks.SmallThumbnail)),
		Subjects:        []string(v.Categories),
	}
	if len(v.Categories) > 0 {
		rec.Category = v.Categories[0]
	}
	return rec
}

// Query looks the identifier up with an isbn: search.
func (g *GoogleBooks) Query(ctx context.Context, id isbn.ISBN) book.Outcome {
	return g.run(ctx, id.String(), func(ctx context.Context) (*book.PartialRecord, error) {
		return g.fetch(ctx, id)
	})
}

func (g *GoogleBooks) fetch(ctx context.Context, id isbn.ISBN) (*book.PartialRecord, error) {
	resp, err := g.volumes(ctx, "isbn:"+id.String(), 5)
	if err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("%s: %w", g.name, bibErrors.ErrNotFound)
	}

	var mismatch error
	for i := range resp.Items {
		item := &resp.Items[i]
		ids := item.identifiers()
		if err := checkIdentifier(g.name, id, ids...); err != nil {
			if mismatch == nil {
				mismatch = err
			}
			continue
		}
		rec := item.record()
		if len(ids) > 0 {
			rec.ISBN = id.String()
		}
		return rec, nil
	}
	return nil, mismatch
}

// Search returns the best title/author match.
func (g *GoogleBooks) Search(ctx context.Context, title, author string) book.Outcome {
	return g.run(ctx, title, func(ctx context.Context) (*book.PartialRecord, error) {
		resp, err := g.volumes(ctx, searchTerms(title, author), 5)
		if err != nil {
			return nil, err
		}
		if len(resp.Items) == 0 {
			return nil, fmt.Errorf("%s: %w", g.name, bibErrors.ErrNotFound)
		}
		rec := resp.Items[0].record()
		for _, id := range resp.Items[0].identifiers() {
			if normalized := isbn.Normalize(id); len(normalized) == 13 {
				rec.ISBN = normalized
				break
			}
		}
		return rec, nil
	})
}

// FindCovers returns upgraded thumbnail links of the top search results.
func (g *GoogleBooks) FindCovers(ctx context.Context, title, author string, limit int) []string {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.volumes(ctx, searchTerms(title, author), limit)
	if err != nil {
		return nil
	}
	var urls []string
	for i := range resp.Items {
		links := resp.Items[i].VolumeInfo.ImageLinks
		if u := cover.UpgradeGoogleThumbnail(firstNonEmpty(links.Thumbnail, links.SmallThumbnail)); u != "" {
			urls = append(urls, u)
		}
		if len(urls) == limit {
			break
		}
	}
	return urls
}

func (g *GoogleBooks) volumes(ctx context.Context, q string, maxResults int) (*googleBooksResponse, error) {
	params := url.Values{}
	params.Set("q", q)
	params.Set("maxResults", fmt.Sprint(maxResults))
	if g.apiKey != "" {
		params.Set("key", g.apiKey)
	}

	var resp googleBooksResponse
	if err := g.getJSON(ctx, g.baseURL+"/volumes?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func searchTerms(title, author string) string {
	q := "intitle:" + strings.TrimSpace(title)
	if a := strings.TrimSpace(author); a != "" {
		q += " inauthor:" + a
	}
	return q
}
