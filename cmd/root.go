package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"

	"github.com/lepinkainen/biblio/internal/book"
	"github.com/lepinkainen/biblio/internal/cache"
	"github.com/lepinkainen/biblio/internal/config"
	"github.com/lepinkainen/biblio/internal/cutter"
	"github.com/lepinkainen/biblio/internal/isbn"
)

// bookResolver is the part of the engine the commands use.
type bookResolver interface {
	Resolve(ctx context.Context, raw string) *book.Resolution
	ResolveByTitle(ctx context.Context, title, author string) *book.Resolution
	Close() error
}

var openResolver = func(cfg *config.Config) (bookResolver, error) {
	e, err := newEngine(cfg)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// ErrNoTranslationCache is returned by "cache clear" when no cache file is configured.
var ErrNoTranslationCache = errors.New("no translation cache configured (set translation.cache_file)")

// CLI represents the complete command structure for the biblio application
type CLI struct {
	Verbose bool   `short:"v" help:"Enable debug logging"`
	Config  string `help:"Path to a config file (defaults to ./config.yaml if present)" type:"path"`

	Resolve  ResolveCmd  `cmd:"" help:"Resolve an ISBN into a bibliographic record. The official registry needs BIBLIO_SOURCES_REGISTRY_API_KEY (or sources.registry.api_key) and fails without it."`
	Search   SearchCmd   `cmd:"" help:"Resolve a book by title and author"`
	Classify ClassifyCmd `cmd:"" help:"Print the shelf classification code for an author and title"`
	ISBN     ISBNCmd     `cmd:"" name:"isbn" help:"Normalize an ISBN and show both forms"`
	Cache    CacheCmd    `cmd:"" help:"Manage the translation cache"`
}

// ResolveCmd represents the resolve command
type ResolveCmd struct {
	ISBN   string `arg:"" help:"ISBN-10 or ISBN-13, hyphens and spaces allowed"`
	Format string `short:"o" enum:"json,yaml,table" default:"json" help:"Output format (json, yaml, table)"`
}

// SearchCmd represents the search command
type SearchCmd struct {
	Title  string `short:"t" required:"" help:"Book title"`
	Author string `short:"a" help:"Author name"`
	Format string `short:"o" enum:"json,yaml,table" default:"json" help:"Output format (json, yaml, table)"`
}

// ClassifyCmd represents the classify command
type ClassifyCmd struct {
	Author string `short:"a" required:"" help:"Author name, either \"Surname, Given\" or \"Given Surname\""`
	Title  string `short:"t" help:"Book title"`
}

// ISBNCmd represents the isbn command
type ISBNCmd struct {
	Raw string `arg:"" help:"Identifier to normalize"`
}

// CacheCmd groups the cache subcommands
type CacheCmd struct {
	Clear CacheClearCmd `cmd:"" help:"Remove every cached translation"`
}

// CacheClearCmd represents the cache clear command
type CacheClearCmd struct{}

// runEnv is bound into every Run method.
type runEnv struct {
	ctx context.Context
	out io.Writer
	cfg *config.Config
}

// Execute runs the Kong-based CLI
func Execute() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("biblio"),
		kong.Description("Resolve ISBNs into bibliographic records from free sources."),
		kong.UsageOnError(),
	)

	initLogging(os.Stderr, cli.Verbose)
	if err := initConfig(cli.Config); err != nil {
		slog.Error("Fatal error in config file", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := kctx.Run(&runEnv{ctx: ctx, out: os.Stdout, cfg: config.Load()})
	if err != nil {
		slog.Error("Command failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func initLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := humanlog.NewHandler(w, &humanlog.Options{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// initConfig registers defaults and environment bindings, then reads the
// config file. A missing default config file is not an error.
func initConfig(path string) error {
	config.SetDefaults()
	config.BindEnv()

	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			slog.Debug("Config file not found, using defaults")
			return nil
		}
		return err
	}
	slog.Debug("Config file loaded", "path", viper.ConfigFileUsed())
	return nil
}

// Run methods for each command

func (r *ResolveCmd) Run(env *runEnv) error {
	if isbn.Parse(r.ISBN) == "" {
		return fmt.Errorf("%q contains no ISBN digits", r.ISBN)
	}
	res, err := withResolver(env, func(br bookResolver) *book.Resolution {
		return br.Resolve(env.ctx, r.ISBN)
	})
	if err != nil {
		return err
	}
	return writeResolution(env.out, res, r.Format)
}

func (s *SearchCmd) Run(env *runEnv) error {
	res, err := withResolver(env, func(br bookResolver) *book.Resolution {
		return br.ResolveByTitle(env.ctx, s.Title, s.Author)
	})
	if err != nil {
		return err
	}
	return writeResolution(env.out, res, s.Format)
}

func withResolver(env *runEnv, fn func(bookResolver) *book.Resolution) (*book.Resolution, error) {
	br, err := openResolver(env.cfg)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := br.Close(); err != nil {
			slog.Warn("Failed to close resolver", "error", err)
		}
	}()
	return fn(br), nil
}

func (c *ClassifyCmd) Run(env *runEnv) error {
	code := cutter.Classify(c.Author, c.Title)
	if code == "" {
		return fmt.Errorf("no surname found in %q", c.Author)
	}
	_, err := fmt.Fprintln(env.out, code)
	return err
}

func (i *ISBNCmd) Run(env *runEnv) error {
	id := isbn.Parse(i.Raw)
	if id == "" {
		return fmt.Errorf("%q contains no ISBN digits", i.Raw)
	}

	isbn10, isbn13 := "", id.ISBN13()
	if len(id) == 10 {
		isbn10 = id.String()
	} else if alt, ok := id.Alternate(); ok {
		isbn10 = alt.String()
	}

	rows := [][]string{
		{"Normalized", id.String()},
		{"ISBN-10", isbn10},
		{"ISBN-13", isbn13},
		{"Valid length", strconv.FormatBool(id.Valid())},
		{"Domestic", strconv.FormatBool(id.IsDomestic())},
	}
	_, err := fmt.Fprintln(env.out, fieldTable("Form", "Value", rows))
	return err
}

func (c *CacheClearCmd) Run(env *runEnv) error {
	path := env.cfg.Translation.CacheFile
	if path == "" {
		return ErrNoTranslationCache
	}
	store, err := cache.OpenTranslationStore(path, env.cfg.Translation.CacheTTL)
	if err != nil {
		return fmt.Errorf("open translation cache: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Warn("Failed to close translation cache", "error", err)
		}
	}()

	n, err := store.Clear()
	if err != nil {
		return err
	}
	slog.Info("Translation cache cleared", "path", path, "rows", n)
	_, err = fmt.Fprintf(env.out, "Removed %d cached translations from %s\n", n, path)
	return err
}
