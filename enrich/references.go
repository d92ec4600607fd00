// Package enrich provides the enrichment path: discovery of corroborating
// external references, deterministic prompt construction, and orchestration
// of reference-grounded article rewrites.
package enrich

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"

	"recast"
)

// Reference discovery defaults.
const (
	// DefaultReferenceTarget is how many validated references a rewrite
	// needs.
	DefaultReferenceTarget = 2

	// DefaultMinTextLen is the plain-text length a candidate must exceed
	// to count as a substantial article.
	DefaultMinTextLen = 800

	// DefaultSearchLimit bounds how many result links a query requests.
	DefaultSearchLimit = 10
)

// Ensure Finder implements recast.ReferenceFinder at compile time.
var _ recast.ReferenceFinder = (*Finder)(nil)

// Finder discovers validated external references for an article via a
// search API and readability extraction. Candidates from the article's
// origin domain are excluded so references actually corroborate
// independently.
type Finder struct {
	Search    recast.SearchService
	Fetcher   recast.Fetcher
	Extractor recast.ReadableExtractor
	Logger    *slog.Logger

	// OriginDomain overrides the excluded domain (e.g. "example.com").
	// When empty, the domain is derived from each article's SourceURL.
	OriginDomain string

	// Target, MinTextLen, and SearchLimit fall back to package defaults
	// when zero.
	Target      int
	MinTextLen  int
	SearchLimit int
}

// FindReferences returns up to Target validated references for the
// article. A primary exact-phrase query runs first; if it yields too few
// accepted candidates, a single secondary query derived from title
// keywords runs once, accumulating onto the accepted set. Per-candidate
// fetch or extraction failures skip the candidate, never the discovery.
func (f *Finder) FindReferences(ctx context.Context, article *recast.Article) ([]*recast.Reference, error) {
	logger := f.Logger
	if logger == nil {
		logger = slog.Default()
	}

	title := article.Title
	origin := f.origin(article)

	accepted, err := f.collect(ctx, logger, searchQuery(title, origin), origin, nil)
	if err != nil {
		return nil, err
	}
	if len(accepted) >= f.target() {
		return accepted, nil
	}

	keywords := keywordsFromTitle(title)
	if keywords == "" {
		return accepted, nil
	}

	secondary := searchQuery(keywords, origin)
	logger.Info("retrying reference discovery with keywords", "title", title, "query", secondary)
	return f.collect(ctx, logger, secondary, origin, accepted)
}

// origin returns the domain to exclude from discovery: the configured
// override, or the article's own host with any "www." prefix dropped.
func (f *Finder) origin(article *recast.Article) string {
	if f.OriginDomain != "" {
		return f.OriginDomain
	}
	u, err := url.Parse(article.SourceURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Host, "www.")
}

// searchQuery quotes the phrase and appends the origin exclusion. An
// unresolvable origin yields a bare phrase query, never a dangling
// "-site:" term.
func searchQuery(phrase, origin string) string {
	if origin == "" {
		return fmt.Sprintf("%q", phrase)
	}
	return fmt.Sprintf("%q -site:%s", phrase, origin)
}

// collect issues one query and validates candidates in provider order,
// accumulating onto accepted until the target is reached.
func (f *Finder) collect(ctx context.Context, logger *slog.Logger, query string, origin string, accepted []*recast.Reference) ([]*recast.Reference, error) {
	links, err := f.Search.Search(ctx, query, f.searchLimit())
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(accepted))
	for _, r := range accepted {
		seen[r.URL] = true
	}

	for _, link := range links {
		if len(accepted) >= f.target() {
			break
		}
		if seen[link] || !isValidCandidateURL(link, origin) {
			continue
		}
		seen[link] = true

		ref, ok := f.validate(ctx, logger, link)
		if !ok {
			continue
		}
		accepted = append(accepted, ref)
	}

	return accepted, nil
}

// validate fetches and extracts a candidate, applying the article-path and
// minimum-length heuristics. Failures are swallowed; the candidate is
// simply not accepted.
func (f *Finder) validate(ctx context.Context, logger *slog.Logger, link string) (*recast.Reference, bool) {
	html, err := f.Fetcher.Fetch(ctx, link)
	if err != nil {
		logger.Debug("reference candidate fetch failed", "url", link, "err", err)
		return nil, false
	}

	readable, err := f.Extractor.ExtractReadable(html, link)
	if err != nil {
		logger.Debug("reference candidate extraction failed", "url", link, "err", err)
		return nil, false
	}

	if !looksLikeArticle(link) || len(readable.TextContent) <= f.minTextLen() {
		return nil, false
	}

	title := readable.Title
	if title == "" {
		title = link
	}

	return &recast.Reference{
		URL:   link,
		Title: title,
		HTML:  readable.ContentHTML,
		Text:  readable.TextContent,
	}, true
}

func (f *Finder) target() int {
	if f.Target > 0 {
		return f.Target
	}
	return DefaultReferenceTarget
}

func (f *Finder) minTextLen() int {
	if f.MinTextLen > 0 {
		return f.MinTextLen
	}
	return DefaultMinTextLen
}

func (f *Finder) searchLimit() int {
	if f.SearchLimit > 0 {
		return f.SearchLimit
	}
	return DefaultSearchLimit
}

// isValidCandidateURL keeps well-formed absolute http(s) URLs that do not
// belong to the origin domain.
func isValidCandidateURL(link, originDomain string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	if originDomain != "" && strings.Contains(u.Host, originDomain) {
		return false
	}
	return true
}

// datePathRe matches common date-based article paths like /2023/07/.
var datePathRe = regexp.MustCompile(`/\d{4}/\d{2}/`)

// articlePathSegments is the fixed set of path markers that make a URL
// look like an article rather than a product or landing page.
var articlePathSegments = []string{"/blog", "/blogs", "/article", "/posts/", "/news/", "/insights/"}

// looksLikeArticle applies the path heuristic to a candidate URL.
func looksLikeArticle(link string) bool {
	lower := strings.ToLower(link)
	for _, segment := range articlePathSegments {
		if strings.Contains(lower, segment) {
			return true
		}
	}
	return datePathRe.MatchString(lower)
}

// stopwords excluded from keyword queries.
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"of": true, "for": true, "to": true, "in": true, "on": true,
	"with": true, "without": true, "by": true, "about": true,
	"is": true, "are": true, "was": true, "were": true,
	"be": true, "being": true, "been": true,
	"how": true, "what": true, "which": true, "why": true, "when": true,
}

var nonAlphanumericRe = regexp.MustCompile(`[^a-z0-9\s]`)

// keywordsFromTitle derives a secondary search query from a title:
// lowercase, alphanumerics only, stopwords and short tokens dropped,
// first five unique tokens joined by spaces.
func keywordsFromTitle(title string) string {
	cleaned := nonAlphanumericRe.ReplaceAllString(strings.ToLower(title), " ")

	var keywords []string
	seen := make(map[string]bool)
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= 3 || stopwords[word] || seen[word] {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
		if len(keywords) == 5 {
			break
		}
	}

	return strings.Join(keywords, " ")
}
