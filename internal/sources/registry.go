package sources

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lepinkainen/biblio/internal/book"
	bibErrors "github.com/lepinkainen/biblio/internal/errors"
	"github.com/lepinkainen/biblio/internal/isbn"
)

const (
	registryBaseURL = "https://isbn-search-br.search.windows.net"
	registryPath    = "/indexes/isbn-index/docs/search?api-version=2016-09-01"
	registryTimeout = 6 * time.Second
	registryRate    = 2
)

// ErrMissingAPIKey is returned by adapters that cannot work without a key.
var ErrMissingAPIKey = errors.New("api key not configured")

var registrySelect = "Authors,Colection,Countries,Date,Imprint,Title,RowKey,PartitionKey,RecordId,FormattedKey,Subject,Veiculacao,Ano,Sinopse,Edicao,Formato,PublicoAlvo,Cidade,UF,Pais,PalavrasChave,Paginas,Idioma,Subtitle"

// Registry queries the national ISBN agency's search index. It is the
// authoritative source for domestic identifiers.
type Registry struct {
	client
}

var _ book.Source = (*Registry)(nil)

// NewRegistry creates the official registry adapter. The index requires an
// API key (WithAPIKey).
func NewRegistry(opts ...Option) *Registry {
	return &Registry{client: newClient(book.SourceRegistry, registryBaseURL, registryTimeout, registryRate, opts)}
}

type registryRequest struct {
	Count       bool   `json:"count"`
	QueryType   string `json:"queryType"`
	Search      string `json:"search"`
	SearchMode  string `json:"searchMode"`
	SearchField string `json:"searchFields"`
	Select      string `json:"select"`
	Skip        int    `json:"skip"`
	Top         int    `json:"top"`
}

type registryResponse struct {
	Value []registryDoc `json:"value"`
}

type registryDoc struct {
	RowKey        flexString  `json:"RowKey"`
	FormattedKey  flexString  `json:"FormattedKey"`
	Title         flexString  `json:"Title"`
	Subtitle      flexString  `json:"Subtitle"`
	Authors       flexStrings `json:"Authors"`
	Imprint       flexString  `json:"Imprint"`
	Subject       flexString  `json:"Subject"`
	Sinopse       flexString  `json:"Sinopse"`
	Edicao        flexString  `json:"Edicao"`
	Formato       flexString  `json:"Formato"`
	PublicoAlvo   flexString  `json:"PublicoAlvo"`
	Cidade        flexString  `json:"Cidade"`
	UF            flexString  `json:"UF"`
	Pais          flexString  `json:"Pais"`
	PalavrasChave flexStrings `json:"PalavrasChave"`
	Ano           flexString  `json:"Ano"`
	Paginas       flexString  `json:"Paginas"`
	Idioma        flexString  `json:"Idioma"`
}

// Query looks the identifier up in the registry index.
func (r *Registry) Query(ctx context.Context, id isbn.ISBN) book.Outcome {
	return r.run(ctx, id.String(), func(ctx context.Context) (*book.PartialRecord, error) {
		return r.fetch(ctx, id)
	})
}

func (r *Registry) fetch(ctx context.Context, id isbn.ISBN) (*book.PartialRecord, error) {
	if r.apiKey == "" {
		return nil, fmt.Errorf("%s: %w", r.name, ErrMissingAPIKey)
	}

	req := registryRequest{
		Count:       true,
		QueryType:   "full",
		Search:      id.ISBN13(),
		SearchMode:  "any",
		SearchField: "FormattedKey,RowKey",
		Select:      registrySelect,
		Top:         5,
	}
	var resp registryResponse
	if err := r.postJSON(ctx, r.baseURL+registryPath, req, map[string]string{"api-key": r.apiKey}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Value) == 0 {
		return nil, fmt.Errorf("%s: %w", r.name, bibErrors.ErrNotFound)
	}

	var doc *registryDoc
	for i := range resp.Value {
		if id.Matches(resp.Value[i].RowKey.String()) || id.Matches(resp.Value[i].FormattedKey.String()) {
			doc = &resp.Value[i]
			break
		}
	}
	if doc == nil {
		return nil, bibErrors.Mismatch(r.name, id.String(), resp.Value[0].RowKey.String())
	}

	return &book.PartialRecord{
		Title:           doc.Title.String(),
		Subtitle:        doc.Subtitle.String(),
		Author:          joinAuthors(doc.Authors),
		Publisher:       doc.Imprint.String(),
		PublicationDate: doc.Ano.String(),
		PageCount:       doc.Paginas.Int(),
		Language:        doc.Idioma.String(),
		Category:        doc.Subject.String(),
		Description:     doc.Sinopse.String(),
		Edition:         doc.Edicao.String(),
		Format:          doc.Formato.String(),
		TargetAudience:  doc.PublicoAlvo.String(),
		City:            doc.Cidade.String(),
		State:           doc.UF.String(),
		Country:         doc.Pais.String(),
		Keywords:        []string(doc.PalavrasChave),
		ISBN:            doc.RowKey.String(),
	}, nil
}
