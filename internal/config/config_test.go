package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/biblio/internal/testutil"
)

func TestLoadDefaults(t *testing.T) {
	testutil.ResetConfig(t)
	SetDefaults()

	cfg := Load()

	require.Len(t, cfg.Sources, len(SourceNames))
	require.Equal(t, Source{
		BaseURL: "https://www.googleapis.com/books/v1",
		Timeout: 5 * time.Second,
		Rate:    2,
	}, cfg.Sources[GoogleBooks])
	require.Equal(t, 3*time.Second, cfg.Sources[MercadoEditorial].Timeout)
	require.Equal(t, 8*time.Second, cfg.Sources[Crossref].Timeout)
	require.Empty(t, cfg.Sources[Registry].APIKey)

	require.Equal(t, 6, cfg.Covers.MaxCandidates)
	require.Equal(t, 5, cfg.Covers.SearchLimit)
	require.Equal(t, 5*time.Second, cfg.Covers.Timeout)

	require.True(t, cfg.Translation.Enabled)
	require.Equal(t, "en", cfg.Translation.SourceLang)
	require.Equal(t, "pt", cfg.Translation.TargetLang)
	require.Equal(t, 5, cfg.Translation.BatchSize)
	require.Empty(t, cfg.Translation.CacheFile)
	require.Equal(t, 720*time.Hour, cfg.Translation.CacheTTL)

	require.Equal(t, 30*time.Second, cfg.Deadline)
}

func TestLoadOverrides(t *testing.T) {
	testutil.ResetConfig(t)
	SetDefaults()

	testutil.SetViperValue(t, "sources.registry.api_key", "secret")
	testutil.SetViperValue(t, "sources.open_library.base_url", "http://127.0.0.1:9999")
	testutil.SetViperValue(t, "resolver.deadline", "12s")
	testutil.SetViperValue(t, "translation.enabled", false)

	cfg := Load()

	require.Equal(t, "secret", cfg.Sources[Registry].APIKey)
	require.Equal(t, "http://127.0.0.1:9999", cfg.Sources[OpenLibrary].BaseURL)
	require.Equal(t, 12*time.Second, cfg.Deadline)
	require.False(t, cfg.Translation.Enabled)
}

func TestLoadEnvironment(t *testing.T) {
	testutil.ResetConfig(t)
	SetDefaults()
	BindEnv()

	t.Setenv("BIBLIO_SOURCES_GOOGLE_BOOKS_API_KEY", "from-env")
	t.Setenv("BIBLIO_COVERS_MAX_CANDIDATES", "3")

	cfg := Load()

	require.Equal(t, "from-env", cfg.Sources[GoogleBooks].APIKey)
	require.Equal(t, 3, cfg.Covers.MaxCandidates)
}

func TestLoadTranslationCache(t *testing.T) {
	testutil.ResetConfig(t)
	SetDefaults()
	env := testutil.NewTestEnv(t)

	path := testutil.SetupTranslationCache(t, env)

	require.Equal(t, path, Load().Translation.CacheFile)
}
