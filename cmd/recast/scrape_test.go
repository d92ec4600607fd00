package main_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recast"
	main "recast/cmd/recast"
	"recast/mock"
	"recast/scrape"
)

func TestScrapeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints a run summary", func(t *testing.T) {
		t.Parallel()

		scraper := &scrape.Scraper{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return "<html></html>", nil
				},
			},
			Listing: &mock.ListingParser{
				LastPageFn: func(_ string) int { return 1 },
				ArticleLinksFn: func(_ string, _ string) ([]string, error) {
					return []string{
						"https://example.com/blogs/first/",
						"https://example.com/blogs/second/",
					}, nil
				},
			},
			Extractor: &mock.ArticleExtractor{
				ExtractArticleFn: func(_ string, pageURL string) (*recast.ArticleContent, error) {
					return &recast.ArticleContent{Title: pageURL, ContentHTML: "<p>body</p>"}, nil
				},
			},
			Articles: &mock.ArticleService{
				UpsertArticleFn: func(_ context.Context, _ *recast.Article) (bool, error) {
					return true, nil
				},
			},
			Limiter: &mock.DomainLimiter{},
			Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Scraper: scraper,
		}

		cmd := &main.ScrapeCmd{URL: "https://example.com/blogs/"}

		err := cmd.Run(deps)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "found 2 article links")
		assert.Contains(t, output, "Saved 2 article(s)")
	})

	t.Run("reports listing failures on stderr", func(t *testing.T) {
		t.Parallel()

		scraper := &scrape.Scraper{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return "", recast.Errorf(recast.ENETWORK, "connection refused")
				},
			},
			Limiter: &mock.DomainLimiter{},
			Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Scraper: scraper,
		}

		cmd := &main.ScrapeCmd{URL: "https://example.com/blogs/"}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
