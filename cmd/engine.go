package cmd

import (
	"fmt"
	"log/slog"

	"github.com/lepinkainen/biblio/internal/book"
	"github.com/lepinkainen/biblio/internal/cache"
	"github.com/lepinkainen/biblio/internal/config"
	"github.com/lepinkainen/biblio/internal/cover"
	"github.com/lepinkainen/biblio/internal/ratelimit"
	"github.com/lepinkainen/biblio/internal/resolver"
	"github.com/lepinkainen/biblio/internal/sources"
	"github.com/lepinkainen/biblio/internal/textnorm"
)

// engine is a resolver plus the resources it holds open.
type engine struct {
	*resolver.Resolver
	memo *cache.TranslationStore
}

func (e *engine) Close() error {
	if e.memo == nil {
		return nil
	}
	return e.memo.Close()
}

// newEngine wires the adapters, cover collector and text normalizer
// described by cfg.
func newEngine(cfg *config.Config) (*engine, error) {
	e := &engine{}

	normOpts := []textnorm.Option{}
	if cfg.Translation.Enabled {
		t := cfg.Translation
		normOpts = append(normOpts,
			textnorm.WithTranslator(textnorm.NewHTTPTranslator(
				textnorm.WithTranslateBaseURL(t.BaseURL),
				textnorm.WithLanguages(t.SourceLang, t.TargetLang),
				textnorm.WithTranslateTimeout(t.Timeout),
				textnorm.WithTranslateRateLimiter(limiter("translate", t.Rate)),
			)),
			textnorm.WithBatchSize(t.BatchSize),
		)
		if t.CacheFile != "" {
			store, err := cache.OpenTranslationStore(t.CacheFile, t.CacheTTL)
			if err != nil {
				return nil, fmt.Errorf("open translation cache: %w", err)
			}
			e.memo = store
			normOpts = append(normOpts, textnorm.WithMemo(store))
		}
	}

	validator := cover.NewValidator(cover.WithTimeout(cfg.Covers.Timeout))

	registry := sources.NewRegistry(sourceOptions(cfg, config.Registry)...)
	googleBooks := sources.NewGoogleBooks(sourceOptions(cfg, config.GoogleBooks)...)
	openLibrary := sources.NewOpenLibrary(cfg.Covers.BaseURL, validator, sourceOptions(cfg, config.OpenLibrary)...)

	collector := cover.NewCollector(validator,
		cover.WithCoversBaseURL(cfg.Covers.BaseURL),
		cover.WithFinders(googleBooks, openLibrary),
		cover.WithMaxCandidates(cfg.Covers.MaxCandidates),
		cover.WithSearchLimit(cfg.Covers.SearchLimit),
		cover.WithConcurrency(cfg.Covers.Concurrency),
	)

	e.Resolver = resolver.New(resolver.Sources{
		Registry:         registry,
		GoogleBooks:      googleBooks,
		OpenLibrary:      openLibrary,
		BrasilAPI:        sources.NewBrasilAPI(sourceOptions(cfg, config.BrasilAPI)...),
		MercadoEditorial: sources.NewMercadoEditorial(sourceOptions(cfg, config.MercadoEditorial)...),
		Crossref:         sources.NewCrossref(sourceOptions(cfg, config.Crossref)...),
		Searchers:        []book.Searcher{googleBooks, openLibrary},
	},
		resolver.WithNormalizer(textnorm.NewNormalizer(normOpts...)),
		resolver.WithCoverCollector(collector),
		resolver.WithDeadline(cfg.Deadline),
	)

	slog.Debug("Engine ready", "translation", cfg.Translation.Enabled,
		"translation_cache", cfg.Translation.CacheFile, "deadline", cfg.Deadline)
	return e, nil
}

func sourceOptions(cfg *config.Config, name string) []sources.Option {
	sc := cfg.Sources[name]
	opts := []sources.Option{
		sources.WithBaseURL(sc.BaseURL),
		sources.WithTimeout(sc.Timeout),
		sources.WithRateLimiter(limiter(name, sc.Rate)),
	}
	if sc.APIKey != "" {
		opts = append(opts, sources.WithAPIKey(sc.APIKey))
	}
	return opts
}

func limiter(name string, rate float64) *ratelimit.Limiter {
	if rate <= 0 {
		return ratelimit.Unlimited(name)
	}
	return ratelimit.New(name, rate)
}
