// Package scrape provides ingestion orchestration. It coordinates
// pagination resolution, article link harvesting, content extraction, and
// idempotent storage of original article records.
package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"recast"
)

// DefaultCohortSize is the number of oldest articles ingested per run.
const DefaultCohortSize = 5

// Scraper orchestrates the ingestion path. Articles are processed strictly
// sequentially to respect the origin site's rate limits.
type Scraper struct {
	Fetcher   recast.Fetcher
	Listing   recast.ListingParser
	Extractor recast.ArticleExtractor
	Articles  recast.ArticleService
	Limiter   recast.DomainLimiter
	Logger    *slog.Logger

	// CohortSize bounds how many of the oldest articles are ingested.
	// Zero selects DefaultCohortSize.
	CohortSize int
}

// Result holds the outcome of an ingestion run.
type Result struct {
	LastPage int
	Found    int
	Saved    int
	Skipped  int
	Failed   int
}

// Run ingests the oldest cohort of articles from the listing at
// listingURL. The last listing page is assumed to hold the chronologically
// oldest entries, with harvest order within the page approximating
// chronological order; the trailing CohortSize window of harvested links
// forms the cohort. Per-article failures are logged and skipped; the run
// only fails outright when the listing itself cannot be resolved.
func (s *Scraper) Run(ctx context.Context, listingURL string) (*Result, error) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	listing := normalizeListingURL(listingURL)
	domain, err := urlDomain(listing)
	if err != nil {
		return nil, recast.Errorf(recast.EINVALID, "invalid listing URL %q: %v", listingURL, err)
	}

	if err := s.wait(ctx, domain); err != nil {
		return nil, err
	}
	rootHTML, err := s.Fetcher.Fetch(ctx, listing)
	if err != nil {
		return nil, fmt.Errorf("fetch listing: %w", err)
	}

	result := &Result{LastPage: s.Listing.LastPage(rootHTML)}
	logger.Info("pagination resolved", "listing", listing, "last_page", result.LastPage)

	pageURL := listing
	pageHTML := rootHTML
	if result.LastPage > 1 {
		pageURL = fmt.Sprintf("%spage/%d/", listing, result.LastPage)
		if err := s.wait(ctx, domain); err != nil {
			return nil, err
		}
		pageHTML, err = s.Fetcher.Fetch(ctx, pageURL)
		if err != nil {
			return nil, fmt.Errorf("fetch last page: %w", err)
		}
	}

	links, err := s.Listing.ArticleLinks(pageHTML, pageURL)
	if err != nil {
		return nil, fmt.Errorf("harvest links: %w", err)
	}
	result.Found = len(links)

	cohort := selectOldest(links, s.cohortSize())
	logger.Info("cohort selected", "found", result.Found, "cohort", len(cohort))

	for _, articleURL := range cohort {
		if err := s.ingest(ctx, domain, articleURL, result); err != nil {
			// Per-article failures never abort the remaining cohort.
			result.Failed++
			logger.Error("article ingestion failed", "url", articleURL, "err", err)
		}
	}

	return result, nil
}

// ingest fetches, extracts, and upserts a single article.
func (s *Scraper) ingest(ctx context.Context, domain, articleURL string, result *Result) error {
	if err := s.wait(ctx, domain); err != nil {
		return err
	}

	html, err := s.Fetcher.Fetch(ctx, articleURL)
	if err != nil {
		return err
	}

	content, err := s.Extractor.ExtractArticle(html, articleURL)
	if err != nil {
		return err
	}

	article := &recast.Article{
		Title:           content.Title,
		Content:         content.ContentHTML,
		OriginalContent: content.ContentHTML,
		SourceURL:       articleURL,
		PublishedDate:   content.PublishedDate,
		Type:            recast.TypeOriginal,
		References:      []string{},
	}

	inserted, err := s.Articles.UpsertArticle(ctx, article)
	if err != nil {
		return err
	}
	if inserted {
		result.Saved++
	} else {
		result.Skipped++
	}
	return nil
}

func (s *Scraper) cohortSize() int {
	if s.CohortSize > 0 {
		return s.CohortSize
	}
	return DefaultCohortSize
}

func (s *Scraper) wait(ctx context.Context, domain string) error {
	if s.Limiter == nil {
		return nil
	}
	return s.Limiter.Wait(ctx, domain)
}

// selectOldest returns the trailing n-sized window of the harvested link
// sequence, preserving order.
func selectOldest(links []string, n int) []string {
	if len(links) <= n {
		return links
	}
	return links[len(links)-n:]
}

// normalizeListingURL guarantees a trailing slash so page URLs compose
// cleanly.
func normalizeListingURL(u string) string {
	if strings.HasSuffix(u, "/") {
		return u
	}
	return u + "/"
}

func urlDomain(u string) (string, error) {
	parsed, err := url.Parse(u)
	if err != nil {
		return "", err
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("missing host in %q", u)
	}
	return parsed.Host, nil
}
