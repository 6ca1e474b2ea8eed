// Package config maps viper settings onto the typed configuration the
// resolver is built from.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. BIBLIO_RESOLVER_DEADLINE.
const EnvPrefix = "BIBLIO"

// Source keys as used in the configuration file.
const (
	Registry         = "registry"
	GoogleBooks      = "google_books"
	OpenLibrary      = "open_library"
	BrasilAPI        = "brasilapi"
	MercadoEditorial = "mercado_editorial"
	Crossref         = "crossref"
)

// SourceNames lists the source keys in resolution order.
var SourceNames = []string{Registry, GoogleBooks, OpenLibrary, BrasilAPI, MercadoEditorial, Crossref}

type sourceDefaults struct {
	baseURL string
	timeout time.Duration
	rate    float64
}

var defaultSources = map[string]sourceDefaults{
	Registry:         {"https://isbn-search-br.search.windows.net", 6 * time.Second, 2},
	GoogleBooks:      {"https://www.googleapis.com/books/v1", 5 * time.Second, 2},
	OpenLibrary:      {"https://openlibrary.org", 8 * time.Second, 3},
	BrasilAPI:        {"https://brasilapi.com.br", 5 * time.Second, 2},
	MercadoEditorial: {"https://api.mercadoeditorial.org", 3 * time.Second, 1},
	Crossref:         {"https://api.crossref.org", 8 * time.Second, 2},
}

// Source holds the settings of one adapter.
type Source struct {
	BaseURL string
	Timeout time.Duration
	// Rate is the request budget per second. Zero or less disables pacing.
	Rate   float64
	APIKey string
}

// Covers holds the cover collector settings.
type Covers struct {
	BaseURL       string
	Timeout       time.Duration
	MaxCandidates int
	SearchLimit   int
	Concurrency   int
}

// Translation holds the remote translator and memo settings.
type Translation struct {
	Enabled    bool
	BaseURL    string
	SourceLang string
	TargetLang string
	Timeout    time.Duration
	Rate       float64
	BatchSize  int
	// CacheFile enables the persistent memo when non-empty.
	CacheFile string
	CacheTTL  time.Duration
}

// Config is the complete runtime configuration.
type Config struct {
	Sources     map[string]Source
	Covers      Covers
	Translation Translation
	Deadline    time.Duration
}

// SetDefaults registers the default value of every key.
func SetDefaults() {
	for name, d := range defaultSources {
		viper.SetDefault(sourceKey(name, "base_url"), d.baseURL)
		viper.SetDefault(sourceKey(name, "timeout"), d.timeout.String())
		viper.SetDefault(sourceKey(name, "rate"), d.rate)
		viper.SetDefault(sourceKey(name, "api_key"), "")
	}

	viper.SetDefault("covers.base_url", "https://covers.openlibrary.org")
	viper.SetDefault("covers.timeout", "5s")
	viper.SetDefault("covers.max_candidates", 6)
	viper.SetDefault("covers.search_limit", 5)
	viper.SetDefault("covers.concurrency", 8)

	viper.SetDefault("translation.enabled", true)
	viper.SetDefault("translation.base_url", "https://translate.googleapis.com")
	viper.SetDefault("translation.source_lang", "en")
	viper.SetDefault("translation.target_lang", "pt")
	viper.SetDefault("translation.timeout", "5s")
	viper.SetDefault("translation.rate", 5)
	viper.SetDefault("translation.batch_size", 5)
	viper.SetDefault("translation.cache_file", "")
	viper.SetDefault("translation.cache_ttl", "720h")

	viper.SetDefault("resolver.deadline", "30s")
}

// BindEnv enables BIBLIO_* environment variables for every key, with dots
// replaced by underscores.
func BindEnv() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// Load reads the current viper state into a Config.
func Load() *Config {
	cfg := &Config{
		Sources: make(map[string]Source, len(SourceNames)),
		Covers: Covers{
			BaseURL:       viper.GetString("covers.base_url"),
			Timeout:       viper.GetDuration("covers.timeout"),
			MaxCandidates: viper.GetInt("covers.max_candidates"),
			SearchLimit:   viper.GetInt("covers.search_limit"),
			Concurrency:   viper.GetInt("covers.concurrency"),
		},
		Translation: Translation{
			Enabled:    viper.GetBool("translation.enabled"),
			BaseURL:    viper.GetString("translation.base_url"),
			SourceLang: viper.GetString("translation.source_lang"),
			TargetLang: viper.GetString("translation.target_lang"),
			Timeout:    viper.GetDuration("translation.timeout"),
			Rate:       viper.GetFloat64("translation.rate"),
			BatchSize:  viper.GetInt("translation.batch_size"),
			CacheFile:  viper.GetString("translation.cache_file"),
			CacheTTL:   viper.GetDuration("translation.cache_ttl"),
		},
		Deadline: viper.GetDuration("resolver.deadline"),
	}
	for _, name := range SourceNames {
		cfg.Sources[name] = Source{
			BaseURL: viper.GetString(sourceKey(name, "base_url")),
			Timeout: viper.GetDuration(sourceKey(name, "timeout")),
			Rate:    viper.GetFloat64(sourceKey(name, "rate")),
			APIKey:  viper.GetString(sourceKey(name, "api_key")),
		}
	}
	return cfg
}

func sourceKey(name, field string) string {
	return "sources." + name + "." + field
}
