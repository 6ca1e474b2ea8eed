package sources

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/biblio/internal/book"
	bibErrors "github.com/lepinkainen/biblio/internal/errors"
	"github.com/lepinkainen/biblio/internal/isbn"
	"github.com/lepinkainen/biblio/internal/ratelimit"
	"github.com/lepinkainen/biblio/internal/testutil"
)

const cortico = "9788535914849"

func newMux(t *testing.T, routes map[string]http.HandlerFunc) string {
	t.Helper()

	mux := http.NewServeMux()
	for pattern, h := range routes {
		mux.HandleFunc(pattern, h)
	}
	return testutil.NewIPv4Server(t, mux).URL
}

func jsonHandler(t *testing.T, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func testOpts(base string) []Option {
	return []Option{WithBaseURL(base), WithRateLimiter(ratelimit.Unlimited("test"))}
}

type panicDoer struct{}

func (panicDoer) Do(*http.Request) (*http.Response, error) {
	panic("boom")
}

func TestRegistry_Query(t *testing.T) {
	base := newMux(t, map[string]http.HandlerFunc{
		"/indexes/isbn-index/docs/search": func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "secret", r.Header.Get("api-key"))

			var req registryRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, cortico, req.Search)

			testutil.WriteJSON(t, w, map[string]any{
				"@odata.count": 1,
				"value": []map[string]any{{
					"RowKey":        cortico,
					"Title":         "O CORTIÇO",
					"Subtitle":      "Romance",
					"Authors":       []string{"AZEVEDO, Aluísio"},
					"Imprint":       "Editora Ática",
					"Subject":       "Literatura brasileira",
					"Sinopse":       "Romance naturalista.",
					"Edicao":        "2",
					"Formato":       "Papel",
					"PublicoAlvo":   "Juvenil",
					"Cidade":        "São Paulo",
					"UF":            "SP",
					"Pais":          "Brasil",
					"PalavrasChave": "naturalismo; cortiço",
					"Ano":           2011,
					"Paginas":       "312 p.",
					"Idioma":        "Português",
				}},
			})
		},
	})

	r := NewRegistry(append(testOpts(base), WithAPIKey("secret"))...)
	out := r.Query(context.Background(), isbn.Parse(cortico))

	require.True(t, out.OK(), "reason: %v", out.Reason)
	rec := out.Record
	require.Equal(t, book.SourceRegistry, rec.Source)
	require.Equal(t, "O CORTIÇO", rec.Title)
	require.Equal(t, "AZEVEDO, Aluísio", rec.Author)
	require.Equal(t, "Editora Ática", rec.Publisher)
	require.Equal(t, "2011", rec.PublicationDate)
	require.Equal(t, 312, rec.PageCount)
	require.Equal(t, "Papel", rec.Format)
	require.Equal(t, "SP", rec.State)
	require.Equal(t, []string{"naturalismo", "cortiço"}, rec.Keywords)
}

func TestRegistry_MissingKey(t *testing.T) {
	out := NewRegistry(testOpts("http://127.0.0.1:1")...).Query(context.Background(), isbn.Parse(cortico))

	require.Equal(t, book.OutcomeFailure, out.Kind)
	require.ErrorIs(t, out.Reason, ErrMissingAPIKey)
}

func TestRegistry_MismatchAndEmpty(t *testing.T) {
	tests := map[string]string{
		"mismatch": `{"value":[{"RowKey":"9780000000002","Title":"Outro livro"}]}`,
		"empty":    `{"value":[]}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			base := newMux(t, map[string]http.HandlerFunc{"/indexes/isbn-index/docs/search": jsonHandler(t, body)})
			out := NewRegistry(append(testOpts(base), WithAPIKey("k"))...).Query(context.Background(), isbn.Parse(cortico))
			require.Equal(t, book.OutcomeEmpty, out.Kind)
		})
	}
}

const googleVolume = `{
  "totalItems": 1,
  "items": [{
    "volumeInfo": {
      "title": "O Cortiço",
      "authors": ["Aluísio Azevedo"],
      "publisher": "Ática",
      "publishedDate": "2011",
      "description": "A classic.",
      "pageCount": 232,
      "categories": ["Fiction", "Brazilian fiction"],
      "language": "pt",
      "industryIdentifiers": [
        {"type": "ISBN_10", "identifier": "8535914845"},
        {"type": "ISBN_13", "identifier": "9788535914849"}
      ],
      "imageLinks": {"thumbnail": "http://books.google.com/books/content?id=x&zoom=1&edge=curl"}
    }
  }]
}`

func TestGoogleBooks_Query(t *testing.T) {
	base := newMux(t, map[string]http.HandlerFunc{
		"/volumes": func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "isbn:"+cortico, r.URL.Query().Get("q"))
			require.Equal(t, "gkey", r.URL.Query().Get("key"))
			jsonHandler(t, googleVolume)(w, r)
		},
	})

	g := NewGoogleBooks(append(testOpts(base), WithAPIKey("gkey"))...)
	out := g.Query(context.Background(), isbn.Parse(cortico))

	require.True(t, out.OK(), "reason: %v", out.Reason)
	rec := out.Record
	require.Equal(t, book.SourceGoogleBooks, rec.Source)
	require.Equal(t, "O Cortiço", rec.Title)
	require.Equal(t, "Aluísio Azevedo", rec.Author)
	require.Equal(t, 232, rec.PageCount)
	require.Equal(t, "Fiction", rec.Category)
	require.Equal(t, []string{"Fiction", "Brazilian fiction"}, rec.Subjects)
	require.Contains(t, rec.CoverURL, "zoom=3")
	require.NotContains(t, rec.CoverURL, "edge")
	require.Equal(t, cortico, rec.ISBN)
}

func TestGoogleBooks_Mismatch(t *testing.T) {
	base := newMux(t, map[string]http.HandlerFunc{"/volumes": jsonHandler(t, googleVolume)})

	out := NewGoogleBooks(testOpts(base)...).Query(context.Background(), isbn.Parse("9780000000002"))
	require.Equal(t, book.OutcomeEmpty, out.Kind)
}

func TestGoogleBooks_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		kind    book.OutcomeKind
		check   func(error) bool
	}{
		{
			name:    "no items",
			handler: jsonHandler(t, `{"totalItems":0}`),
			kind:    book.OutcomeEmpty,
		},
		{
			name:    "not found status",
			handler: http.NotFound,
			kind:    book.OutcomeEmpty,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "down", http.StatusInternalServerError)
			},
			kind:  book.OutcomeFailure,
			check: bibErrors.IsTransportError,
		},
		{
			name: "rate limited",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Retry-After", "30")
				w.WriteHeader(http.StatusTooManyRequests)
			},
			kind:  book.OutcomeFailure,
			check: bibErrors.IsRateLimitError,
		},
		{
			name:    "malformed body",
			handler: jsonHandler(t, `{"items": "nope"`),
			kind:    book.OutcomeFailure,
			check:   bibErrors.IsParseError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := newMux(t, map[string]http.HandlerFunc{"/volumes": tt.handler})
			out := NewGoogleBooks(testOpts(base)...).Query(context.Background(), isbn.Parse(cortico))

			require.Equal(t, tt.kind, out.Kind)
			if tt.check != nil {
				require.True(t, tt.check(out.Reason), "unexpected reason: %v", out.Reason)
			}
		})
	}
}

func TestGoogleBooks_Timeout(t *testing.T) {
	base := newMux(t, map[string]http.HandlerFunc{
		"/volumes": func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		},
	})

	start := time.Now()
	out := NewGoogleBooks(append(testOpts(base), WithTimeout(50*time.Millisecond))...).Query(context.Background(), isbn.Parse(cortico))

	require.Equal(t, book.OutcomeFailure, out.Kind)
	require.True(t, bibErrors.IsTransportError(out.Reason))
	require.Less(t, time.Since(start), time.Second)
}

func TestGoogleBooks_SearchAndCovers(t *testing.T) {
	base := newMux(t, map[string]http.HandlerFunc{
		"/volumes": func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "intitle:O Cortiço inauthor:Azevedo", r.URL.Query().Get("q"))
			jsonHandler(t, googleVolume)(w, r)
		},
	})
	g := NewGoogleBooks(testOpts(base)...)

	out := g.Search(context.Background(), "O Cortiço", "Azevedo")
	require.True(t, out.OK())
	require.Equal(t, "O Cortiço", out.Record.Title)
	require.Equal(t, cortico, out.Record.ISBN)

	covers := g.FindCovers(context.Background(), "O Cortiço", "Azevedo", 5)
	require.Len(t, covers, 1)
	require.Contains(t, covers[0], "zoom=3")
}

func TestBoundary_RecoversPanic(t *testing.T) {
	g := NewGoogleBooks(WithHTTPClient(panicDoer{}), WithRateLimiter(ratelimit.Unlimited("test")))
	out := g.Query(context.Background(), isbn.Parse(cortico))

	require.Equal(t, book.OutcomeFailure, out.Kind)
	require.Contains(t, out.Reason.Error(), "panic")
}

func TestOpenLibrary_Query(t *testing.T) {
	covers := newMux(t, map[string]http.HandlerFunc{
		"/b/isbn/" + cortico + "-L.jpg": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write(testutil.PNG(t, 180, 270))
		},
	})
	base := newMux(t, map[string]http.HandlerFunc{
		"/isbn/" + cortico + ".json": jsonHandler(t, `{
			"title": "O Cortiço",
			"publishers": ["Ática"],
			"publish_date": "2011",
			"number_of_pages": 232,
			"languages": [{"key": "/languages/por"}],
			"works": [{"key": "/works/OL1W"}],
			"isbn_13": ["9788535914849"]
		}`),
		"/works/OL1W.json": jsonHandler(t, `{
			"description": {"type": "/type/text", "value": "Romance naturalista."},
			"subjects": ["Brazilian fiction"],
			"authors": [{"author": {"key": "/authors/OL1A"}}]
		}`),
		"/authors/OL1A.json": jsonHandler(t, `{"name": "Aluísio Azevedo"}`),
	})

	ol := NewOpenLibrary(covers, nil, testOpts(base)...)
	out := ol.Query(context.Background(), isbn.Parse(cortico))

	require.True(t, out.OK(), "reason: %v", out.Reason)
	rec := out.Record
	require.Equal(t, book.SourceOpenLibrary, rec.Source)
	require.Equal(t, "O Cortiço", rec.Title)
	require.Equal(t, "Ática", rec.Publisher)
	require.Equal(t, "Aluísio Azevedo", rec.Author)
	require.Equal(t, "Romance naturalista.", rec.Description)
	require.Equal(t, []string{"Brazilian fiction"}, rec.Subjects)
	require.Equal(t, "por", rec.Language)
	require.Equal(t, 232, rec.PageCount)
	require.Equal(t, covers+"/b/isbn/"+cortico+"-L.jpg", rec.CoverURL)
	require.True(t, rec.CoverChecked)
}

func TestOpenLibrary_PlaceholderCover(t *testing.T) {
	covers := newMux(t, map[string]http.HandlerFunc{
		"/": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write(testutil.PNG(t, 1, 1))
		},
	})
	base := newMux(t, map[string]http.HandlerFunc{
		"/isbn/" + cortico + ".json": jsonHandler(t, `{"title": "O Cortiço", "authors": [{"key": "/authors/OL1A"}]}`),
		"/authors/OL1A.json":         jsonHandler(t, `{"personal_name": "Aluísio Azevedo"}`),
	})

	out := NewOpenLibrary(covers, nil, testOpts(base)...).Query(context.Background(), isbn.Parse(cortico))

	require.True(t, out.OK())
	require.Equal(t, "Aluísio Azevedo", out.Record.Author)
	require.Empty(t, out.Record.CoverURL)
	require.False(t, out.Record.CoverChecked)
}

func TestOpenLibrary_NotFoundAndMismatch(t *testing.T) {
	base := newMux(t, map[string]http.HandlerFunc{
		"/isbn/9780000000002.json": jsonHandler(t, `{"title": "Other", "isbn_13": ["9781111111111"]}`),
	})
	ol := NewOpenLibrary(base, nil, testOpts(base)...)

	require.Equal(t, book.OutcomeEmpty, ol.Query(context.Background(), isbn.Parse(cortico)).Kind)
	require.Equal(t, book.OutcomeEmpty, ol.Query(context.Background(), isbn.Parse("9780000000002")).Kind)
}

func TestOpenLibrary_AcceptsISBN10Echo(t *testing.T) {
	base := newMux(t, map[string]http.HandlerFunc{
		"/isbn/9780306406157.json": jsonHandler(t, `{"title": "Physics", "isbn_10": ["0306406152"]}`),
	})

	out := NewOpenLibrary(base, nil, testOpts(base)...).Query(context.Background(), isbn.Parse("9780306406157"))

	require.True(t, out.OK(), "reason: %v", out.Reason)
	require.Equal(t, "Physics", out.Record.Title)
	require.Equal(t, "9780306406157", out.Record.ISBN)
}

func TestOpenLibrary_SearchAndCovers(t *testing.T) {
	base := newMux(t, map[string]http.HandlerFunc{
		"/search.json": func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "Dom Casmurro", r.URL.Query().Get("title"))
			require.Equal(t, "Machado de Assis", r.URL.Query().Get("author"))
			jsonHandler(t, `{"numFound": 2, "docs": [
				{"title": "Dom Casmurro", "author_name": ["Machado de Assis"], "first_publish_year": 1899, "cover_i": 123, "isbn": ["8535911189", "9788535911183"]},
				{"title": "Dom Casmurro (edição)", "isbn": ["978-85-7232-000-0"]}
			]}`)(w, r)
		},
	})
	ol := NewOpenLibrary("https://covers.example", nil, testOpts(base)...)

	out := ol.Search(context.Background(), "Dom Casmurro", "Machado de Assis")
	require.True(t, out.OK())
	require.Equal(t, "1899", out.Record.PublicationDate)
	require.Equal(t, "9788535911183", out.Record.ISBN)
	require.Equal(t, "https://covers.example/b/id/123-L.jpg", out.Record.CoverURL)

	urls := ol.FindCovers(context.Background(), "Dom Casmurro", "Machado de Assis", 5)
	require.Equal(t, []string{
		"https://covers.example/b/id/123-L.jpg",
		"https://covers.example/b/isbn/9788572320000-L.jpg",
	}, urls)
}

func TestBrasilAPI_Query(t *testing.T) {
	base := newMux(t, map[string]http.HandlerFunc{
		"/api/isbn/v1/" + cortico: jsonHandler(t, `{
			"isbn": "9788535914849",
			"title": "O cortiço",
			"authors": ["Aluísio Azevedo"],
			"publisher": "Companhia das Letras",
			"synopsis": "Clássico do naturalismo.",
			"year": 2011,
			"page_count": 312,
			"subjects": ["Ficção brasileira"],
			"location": "São Paulo"
		}`),
		"/api/isbn/v1/9780000000002": jsonHandler(t, `{"isbn": "9780000000002", "title": ""}`),
	})
	b := NewBrasilAPI(testOpts(base)...)

	out := b.Query(context.Background(), isbn.Parse(cortico))
	require.True(t, out.OK(), "reason: %v", out.Reason)
	require.Equal(t, book.SourceBrasilAPI, out.Record.Source)
	require.Equal(t, "2011", out.Record.PublicationDate)
	require.Equal(t, 312, out.Record.PageCount)
	require.Equal(t, "Ficção brasileira", out.Record.Category)

	// A validity answer without a title is not accepted.
	require.Equal(t, book.OutcomeEmpty, b.Query(context.Background(), isbn.Parse("9780000000002")).Kind)
	// Unknown identifiers 404.
	require.Equal(t, book.OutcomeEmpty, b.Query(context.Background(), isbn.Parse("9781111111116")).Kind)
}

func TestMercadoEditorial_Query(t *testing.T) {
	base := newMux(t, map[string]http.HandlerFunc{
		"/api/v1.2/book": func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("isbn") != cortico {
				jsonHandler(t, `{"books": []}`)(w, r)
				return
			}
			jsonHandler(t, `{"books": [{
				"isbn": "9788535914849",
				"titulo": "O Cortiço",
				"autores": [{"nome": "Aluísio Azevedo"}],
				"editora": {"nome_fantasia": "Penguin"},
				"data_publicacao": "2011-05-01",
				"sinopse": "Romance."
			}]}`)(w, r)
		},
	})
	m := NewMercadoEditorial(testOpts(base)...)

	out := m.Query(context.Background(), isbn.Parse(cortico))
	require.True(t, out.OK(), "reason: %v", out.Reason)
	require.Equal(t, "Penguin", out.Record.Publisher)
	require.Equal(t, "Aluísio Azevedo", out.Record.Author)
	require.Equal(t, book.SourceMercadoEditorial, out.Record.Source)

	require.Equal(t, book.OutcomeEmpty, m.Query(context.Background(), isbn.Parse("9780000000002")).Kind)
}

func TestCrossref_Query(t *testing.T) {
	base := newMux(t, map[string]http.HandlerFunc{
		"/works": func(w http.ResponseWriter, r *http.Request) {
			filter := r.URL.Query().Get("filter")
			isbnParam := strings.TrimPrefix(filter, "isbn:")
			jsonHandler(t, `{"message": {"items": [{
				"title": ["O Cortiço"],
				"publisher": "Editora Exemplo",
				"ISBN": ["`+isbnParam+`"],
				"author": [{"given": "Aluísio", "family": "Azevedo"}],
				"issued": {"date-parts": [[2011, 3]]}
			}]}}`)(w, r)
		},
	})

	out := NewCrossref(testOpts(base)...).Query(context.Background(), isbn.Parse(cortico))
	require.True(t, out.OK(), "reason: %v", out.Reason)
	require.Equal(t, "Aluísio Azevedo", out.Record.Author)
	require.Equal(t, "2011", out.Record.PublicationDate)
	require.Equal(t, book.SourceCrossref, out.Record.Source)
}

func TestCrossref_Mismatch(t *testing.T) {
	base := newMux(t, map[string]http.HandlerFunc{
		"/works": jsonHandler(t, `{"message": {"items": [{"title": ["Other"], "ISBN": ["9781111111116"]}]}}`),
	})

	out := NewCrossref(testOpts(base)...).Query(context.Background(), isbn.Parse(cortico))
	require.Equal(t, book.OutcomeEmpty, out.Kind)
}

func TestCheckIdentifier(t *testing.T) {
	id := isbn.Parse(cortico)

	require.NoError(t, checkIdentifier("x", id))
	require.NoError(t, checkIdentifier("x", id, ""))
	require.NoError(t, checkIdentifier("x", id, "85-359-1484-5"))
	require.NoError(t, checkIdentifier("x", isbn.Parse("9780306406157"), "0306406152"))
	err := checkIdentifier("x", id, "9780000000002")
	require.True(t, errors.Is(err, bibErrors.ErrIdentifierMismatch))
}

func TestFlexTypes(t *testing.T) {
	var doc struct {
		A flexString  `json:"a"`
		B flexString  `json:"b"`
		C flexString  `json:"c"`
		D flexStrings `json:"d"`
		E flexStrings `json:"e"`
		F textValue   `json:"f"`
		G textValue   `json:"g"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{
		"a": " text ", "b": 42, "c": null,
		"d": ["x", "", 3], "e": "one, two;three",
		"f": "plain", "g": {"value": "wrapped"}
	}`), &doc))

	require.Equal(t, "text", doc.A.String())
	require.Equal(t, 42, doc.B.Int())
	require.Equal(t, "", doc.C.String())
	require.Equal(t, []string{"x", "3"}, []string(doc.D))
	require.Equal(t, []string{"one", "two", "three"}, []string(doc.E))
	require.Equal(t, "plain", string(doc.F))
	require.Equal(t, "wrapped", string(doc.G))
}
