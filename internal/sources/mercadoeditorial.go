package sources

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/lepinkainen/biblio/internal/book"
	bibErrors "github.com/lepinkainen/biblio/internal/errors"
	"github.com/lepinkainen/biblio/internal/isbn"
)

const (
	mercadoEditorialBaseURL = "https://api.mercadoeditorial.org"
	mercadoEditorialTimeout = 3 * time.Second
	mercadoEditorialRate    = 1
)

// MercadoEditorial is the secondary regional adapter.
type MercadoEditorial struct {
	client
}

var _ book.Source = (*MercadoEditorial)(nil)

// NewMercadoEditorial creates the Mercado Editorial adapter.
func NewMercadoEditorial(opts ...Option) *MercadoEditorial {
	return &MercadoEditorial{client: newClient(book.SourceMercadoEditorial, mercadoEditorialBaseURL, mercadoEditorialTimeout, mercadoEditorialRate, opts)}
}

type mercadoResponse struct {
	Books []mercadoBook `json:"books"`
}

type mercadoBook struct {
	ISBN      flexString `json:"isbn"`
	Titulo    flexString `json:"titulo"`
	Subtitulo flexString `json:"subtitulo"`
	Autores   []struct {
		Nome flexString `json:"nome"`
	} `json:"autores"`
	Editora struct {
		NomeFantasia flexString `json:"nome_fantasia"`
	} `json:"editora"`
	DataPublicacao flexString `json:"data_publicacao"`
	Sinopse        flexString `json:"sinopse"`
	Idioma         flexString `json:"idioma"`
	Imagens        struct {
		PrimeiraCapa struct {
			Grande flexString `json:"grande"`
		} `json:"imagem_primeira_capa"`
	} `json:"imagens"`
}

// Query looks the identifier up.
func (m *MercadoEditorial) Query(ctx context.Context, id isbn.ISBN) book.Outcome {
	return m.run(ctx, id.String(), func(ctx context.Context) (*book.PartialRecord, error) {
		var resp mercadoResponse
		endpoint := m.baseURL + "/api/v1.2/book?" + url.Values{"isbn": {id.String()}}.Encode()
		if err := m.getJSON(ctx, endpoint, &resp); err != nil {
			return nil, err
		}
		if len(resp.Books) == 0 {
			return nil, fmt.Errorf("%s: %w", m.name, bibErrors.ErrNotFound)
		}

		b := resp.Books[0]
		if err := checkIdentifier(m.name, id, b.ISBN.String()); err != nil {
			return nil, err
		}
		authors := make([]string, 0, len(b.Autores))
		for _, a := range b.Autores {
			authors = append(authors, a.Nome.String())
		}
		return &book.PartialRecord{
			Title:           b.Titulo.String(),
			Subtitle:        b.Subtitulo.String(),
			Author:          joinAuthors(authors),
			Publisher:       b.Editora.NomeFantasia.String(),
			PublicationDate: b.DataPublicacao.String(),
			Description:     b.Sinopse.String(),
			Language:        b.Idioma.String(),
			CoverURL:        b.Imagens.PrimeiraCapa.Grande.String(),
			ISBN:            b.ISBN.String(),
		}, nil
	})
}
