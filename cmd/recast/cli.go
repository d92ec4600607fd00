package main

import (
	"context"
	"io"

	"recast"
	"recast/enrich"
	"recast/scrape"
	"recast/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Articles recast.ArticleService
	Scraper  *scrape.Scraper
	Enricher *enrich.Enricher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	StoreURL string `env:"RECAST_STORE_URL" help:"External article store base URL (default: local SQLite database)"`

	Scrape ScrapeCmd `cmd:"" help:"Ingest the oldest articles from a blog listing"`
	Enrich EnrichCmd `cmd:"" help:"Rewrite stored articles using external references"`
	List   ListCmd   `cmd:"" help:"List stored articles"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL   string  `arg:"" help:"Blog listing URL"`
	Count int     `short:"n" default:"5" help:"How many of the oldest articles to ingest"`
	Rate  float64 `default:"1" help:"Max requests per second per domain"`
}

// EnrichCmd is the "enrich" subcommand.
type EnrichCmd struct {
	Batch     int    `default:"50" help:"Max original articles to process in one run"`
	Provider  string `enum:"auto,openai,gemini" default:"auto" help:"Generation provider"`
	Extractor string `enum:"readability,trafilatura" default:"readability" help:"Content extractor for reference candidates"`
	Origin    string `env:"RECAST_ORIGIN" help:"Origin domain excluded from reference search (default: derived from each article's source URL)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Type  string `help:"Filter by record type (original or updated)"`
	Limit int    `default:"20" help:"Max articles to show"`
}
