package sources

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/lepinkainen/biblio/internal/book"
	"github.com/lepinkainen/biblio/internal/cover"
	bibErrors "github.com/lepinkainen/biblio/internal/errors"
	"github.com/lepinkainen/biblio/internal/isbn"
)

const (
	openLibraryBaseURL = "https://openlibrary.org"
	openLibraryTimeout = 8 * time.Second
	openLibraryRate    = 3
	maxAuthorLookups   = 3
)

// OpenLibrary adapts the Open Library edition, work, author and cover APIs.
type OpenLibrary struct {
	client
	coversBaseURL string
	validator     *cover.Validator
}

var (
	_ book.Source   = (*OpenLibrary)(nil)
	_ book.Searcher = (*OpenLibrary)(nil)
	_ cover.Finder  = (*OpenLibrary)(nil)
)

// NewOpenLibrary creates the Open Library adapter. coversBaseURL and
// validator may be left empty to use the public covers host and a
// validator sharing the adapter's HTTP client.
func NewOpenLibrary(coversBaseURL string, validator *cover.Validator, opts ...Option) *OpenLibrary {
	o := &OpenLibrary{
		client:        newClient(book.SourceOpenLibrary, openLibraryBaseURL, openLibraryTimeout, openLibraryRate, opts),
		coversBaseURL: cover.DefaultCoversBaseURL,
		validator:     validator,
	}
	if coversBaseURL != "" {
		o.coversBaseURL = strings.TrimRight(coversBaseURL, "/")
	}
	if o.validator == nil {
		o.validator = cover.NewValidator(cover.WithHTTPClient(o.httpClient))
	}
	return o
}

type keyRef struct {
	Key string `json:"key"`
}

type olEdition struct {
	Title         string      `json:"title"`
	Subtitle      string      `json:"subtitle"`
	Publishers    flexStrings `json:"publishers"`
	PublishDate   string      `json:"publish_date"`
	NumberOfPages int         `json:"number_of_pages"`
	Description   textValue   `json:"description"`
	Languages     []keyRef    `json:"languages"`
	Authors       []keyRef    `json:"authors"`
	Works         []keyRef    `json:"works"`
	ISBN10        flexStrings `json:"isbn_10"`
	ISBN13        flexStrings `json:"isbn_13"`
	Subjects      flexStrings `json:"subjects"`
}

type olWork struct {
	Description textValue   `json:"description"`
	Subjects    flexStrings `json:"subjects"`
	Authors     []struct {
		Author keyRef `json:"author"`
	} `json:"authors"`
}

type olAuthor struct {
	Name         string `json:"name"`
	PersonalName string `json:"personal_name"`
}

type olSearchResponse struct {
	NumFound int           `json:"numFound"`
	Docs     []olSearchDoc `json:"docs"`
}

type olSearchDoc struct {
	Key                 string      `json:"key"`
	Title               string      `json:"title"`
	Subtitle            string      `json:"subtitle"`
	AuthorNames         flexStrings `json:"author_name"`
	Publishers          flexStrings `json:"publisher"`
	FirstPublishYear    int         `json:"first_publish_year"`
	NumberOfPagesMedian int         `json:"number_of_pages_median"`
	ISBN                flexStrings `json:"isbn"`
	CoverI              int         `json:"cover_i"`
	Subjects            flexStrings `json:"subject"`
	Languages           flexStrings `json:"language"`
}

// Query runs the edition lookup, then the work and author lookups, then the
// cover existence check.
func (o *OpenLibrary) Query(ctx context.Context, id isbn.ISBN) book.Outcome {
	return o.run(ctx, id.String(), func(ctx context.Context) (*book.PartialRecord, error) {
		return o.fetch(ctx, id)
	})
}

func (o *OpenLibrary) fetch(ctx context.Context, id isbn.ISBN) (*book.PartialRecord, error) {
	var ed olEdition
	if err := o.getJSON(ctx, fmt.Sprintf("%s/isbn/%s.json", o.baseURL, id), &ed); err != nil {
		return nil, err
	}
	returned := append(append([]string{}, ed.ISBN13...), ed.ISBN10...)
	if err := checkIdentifier(o.name, id, returned...); err != nil {
		return nil, err
	}

	rec := &book.PartialRecord{
		Title:           ed.Title,
		Subtitle:        ed.Subtitle,
		PublicationDate: ed.PublishDate,
		PageCount:       ed.NumberOfPages,
		Description:     string(ed.Description),
		Subjects:        []string(ed.Subjects),
		ISBN:            id.String(),
	}
	if len(ed.Publishers) > 0 {
		rec.Publisher = ed.Publishers[0]
	}
	if len(ed.Languages) > 0 {
		rec.Language = path.Base(ed.Languages[0].Key)
	}

	authorKeys := refKeys(ed.Authors)

	// The work record is optional: description, subjects and authors fall back to it.
	if len(ed.Works) > 0 && (rec.Description == "" || len(rec.Subjects) == 0 || len(authorKeys) == 0) {
		var work olWork
		if err := o.getJSON(ctx, o.baseURL+ed.Works[0].Key+".json", &work); err != nil {
			slog.Debug("Work lookup failed", "source", o.name, "work", ed.Works[0].Key, "error", err)
		} else {
			if rec.Description == "" {
				rec.Description = string(work.Description)
			}
			if len(rec.Subjects) == 0 {
				rec.Subjects = []string(work.Subjects)
			}
			if len(authorKeys) == 0 {
				for _, a := range work.Authors {
					if a.Author.Key != "" {
						authorKeys = append(authorKeys, a.Author.Key)
					}
				}
			}
		}
	}

	rec.Author = joinAuthors(o.authorNames(ctx, authorKeys))

	if rec.HasTitle() {
		coverURL := cover.ISBNCoverURL(o.coversBaseURL, id.String())
		if o.validator.Valid(ctx, coverURL) {
			rec.CoverURL = coverURL
			rec.CoverChecked = true
		}
	}
	return rec, nil
}

func (o *OpenLibrary) authorNames(ctx context.Context, keys []string) []string {
	if len(keys) > maxAuthorLookups {
		keys = keys[:maxAuthorLookups]
	}
	names := make([]string, 0, len(keys))
	for _, key := range keys {
		var a olAuthor
		if err := o.getJSON(ctx, o.baseURL+key+".json", &a); err != nil {
			slog.Debug("Author lookup failed", "source", o.name, "author", key, "error", err)
			continue
		}
		if name := firstNonEmpty(a.Name, a.PersonalName); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Search returns the best title/author match from search.json.
func (o *OpenLibrary) Search(ctx context.Context, title, author string) book.Outcome {
	return o.run(ctx, title, func(ctx context.Context) (*book.PartialRecord, error) {
		resp, err := o.search(ctx, title, author, 5)
		if err != nil {
			return nil, err
		}
		if len(resp.Docs) == 0 {
			return nil, fmt.Errorf("%s: %w", o.name, bibErrors.ErrNotFound)
		}
		doc := resp.Docs[0]
		rec := &book.PartialRecord{
			Title:     doc.Title,
			Subtitle:  doc.Subtitle,
			Author:    joinAuthors(doc.AuthorNames),
			PageCount: doc.NumberOfPagesMedian,
			Subjects:  []string(doc.Subjects),
		}
		if len(doc.Publishers) > 0 {
			rec.Publisher = doc.Publishers[0]
		}
		if doc.FirstPublishYear > 0 {
			rec.PublicationDate = strconv.Itoa(doc.FirstPublishYear)
		}
		if len(doc.Languages) > 0 {
			rec.Language = doc.Languages[0]
		}
		for _, candidate := range doc.ISBN {
			if n := isbn.Normalize(candidate); len(n) == 13 {
				rec.ISBN = n
				break
			}
		}
		if doc.CoverI > 0 {
			rec.CoverURL = cover.IDCoverURL(o.coversBaseURL, doc.CoverI)
		}
		return rec, nil
	})
}

// FindCovers returns cover URLs of the top search results, by cover id when
// known and by identifier otherwise.
func (o *OpenLibrary) FindCovers(ctx context.Context, title, author string, limit int) []string {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	resp, err := o.search(ctx, title, author, limit)
	if err != nil {
		return nil
	}
	var urls []string
	for _, doc := range resp.Docs {
		switch {
		case doc.CoverI > 0:
			urls = append(urls, cover.IDCoverURL(o.coversBaseURL, doc.CoverI))
		case len(doc.ISBN) > 0:
			urls = append(urls, cover.ISBNCoverURL(o.coversBaseURL, isbn.Normalize(doc.ISBN[0])))
		}
		if len(urls) == limit {
			break
		}
	}
	return urls
}

func (o *OpenLibrary) search(ctx context.Context, title, author string, limit int) (*olSearchResponse, error) {
	params := url.Values{}
	params.Set("title", strings.TrimSpace(title))
	if a := strings.TrimSpace(author); a != "" {
		params.Set("author", a)
	}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("fields", "key,title,subtitle,author_name,publisher,first_publish_year,number_of_pages_median,isbn,cover_i,subject,language")

	var resp olSearchResponse
	if err := o.getJSON(ctx, o.baseURL+"/search.json?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func refKeys(refs []keyRef) []string {
	keys := make([]string, 0, len(refs))
	for _, r := range refs {
		if r.Key != "" {
			keys = append(keys, r.Key)
		}
	}
	return keys
}
