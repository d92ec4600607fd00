package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"recast"
	"recast/enrich"
	"recast/gemini"
	"recast/goquery"
	recasthttp "recast/http"
	"recast/openai"
	"recast/readability"
	"recast/scrape"
	recastslog "recast/slog"
	"recast/sqlite"
	"recast/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Service for end-to-end testing.
	ArticleService recast.ArticleService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Load .env if present; environment variables win.
	_ = godotenv.Load()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("recast"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'recast --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Root flags may precede the command name, so args[0] is not a
	// reliable command indicator; kong knows which command was selected.
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	// Use the external store when configured, the local database
	// otherwise.
	if cli.StoreURL != "" {
		m.ArticleService = recasthttp.NewArticleService(cli.StoreURL)
	} else {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set RECAST_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		m.ArticleService = sqlite.NewArticleService(m.DB)
		deps.DB = m.DB
	}
	defer m.Close()

	deps.Articles = m.ArticleService

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	if cmd == "scrape" {
		fetcher := recastslog.NewLoggingFetcher(recasthttp.NewFetcher(), logger)
		deps.Scraper = &scrape.Scraper{
			Fetcher:    fetcher,
			Listing:    goquery.NewListingParser(),
			Extractor:  goquery.NewArticleExtractor(),
			Articles:   m.ArticleService,
			Limiter:    scrape.NewDomainLimiter(cli.Scrape.Rate),
			Logger:     logger,
			CohortSize: cli.Scrape.Count,
		}
	}

	if cmd == "enrich" {
		generator, err := newGenerator(ctx, cli.Enrich.Provider, stderr)
		if err != nil {
			return err
		}

		serpKey := os.Getenv("SERPAPI_KEY")
		if serpKey == "" {
			fmt.Fprintln(stderr, "SERPAPI_KEY environment variable not set. Get an API key at https://serpapi.com")
			return recast.Errorf(recast.ECONFIG, "SERPAPI_KEY not set")
		}

		var extractor recast.ReadableExtractor
		switch cli.Enrich.Extractor {
		case "trafilatura":
			extractor = trafilatura.NewExtractor()
		default:
			extractor = readability.NewExtractor()
		}

		fetcher := recastslog.NewLoggingFetcher(recasthttp.NewFetcher(), logger)
		deps.Enricher = &enrich.Enricher{
			Articles: m.ArticleService,
			References: &enrich.Finder{
				Search:       recastslog.NewLoggingSearch(recasthttp.NewSearchService(serpKey), logger),
				Fetcher:      fetcher,
				Extractor:    extractor,
				Logger:       logger,
				OriginDomain: cli.Enrich.Origin,
			},
			Generator: recastslog.NewLoggingGenerator(generator, logger),
			Logger:    logger,
			BatchSize: cli.Enrich.Batch,
		}
	}

	return kongCtx.Run(deps)
}

// newGenerator selects the text generation provider. With "auto", an
// OpenAI key takes precedence over a Gemini key.
func newGenerator(ctx context.Context, provider string, stderr io.Writer) (recast.Generator, error) {
	openaiKey := os.Getenv("OPENAI_API_KEY")
	geminiKey := os.Getenv("GEMINI_API_KEY")

	switch provider {
	case "openai":
		if openaiKey == "" {
			fmt.Fprintln(stderr, "OPENAI_API_KEY environment variable not set. Get an API key at https://platform.openai.com/api-keys")
			return nil, recast.Errorf(recast.ECONFIG, "OPENAI_API_KEY not set")
		}
		return openai.NewGenerator(openaiKey), nil
	case "gemini":
		if geminiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, recast.Errorf(recast.ECONFIG, "GEMINI_API_KEY not set")
		}
		client, err := gemini.NewClient(ctx, geminiKey)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewGenerator(client, gemini.DefaultModel), nil
	default:
		if openaiKey != "" {
			return openai.NewGenerator(openaiKey), nil
		}
		if geminiKey != "" {
			client, err := gemini.NewClient(ctx, geminiKey)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			return gemini.NewGenerator(client, gemini.DefaultModel), nil
		}
		fmt.Fprintln(stderr, "Set OPENAI_API_KEY or GEMINI_API_KEY to enable article rewriting")
		return nil, recast.Errorf(recast.ECONFIG, "no generation provider configured")
	}
}

func defaultDBPath() string {
	if path := os.Getenv("RECAST_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "recast.db"
	}
	dir := filepath.Join(home, ".recast")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "recast.db")
}
