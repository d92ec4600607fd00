// Package goquery provides CSS-selector based implementations of the
// recast listing parser and article extractor. All functions operate on
// already-fetched HTML strings and tolerate malformed markup.
package goquery

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"recast"
)

// Ensure ListingParser implements recast.ListingParser at compile time.
var _ recast.ListingParser = (*ListingParser)(nil)

// ListingParser resolves pagination and harvests article links from
// listing pages.
type ListingParser struct{}

// NewListingParser creates a new ListingParser.
func NewListingParser() *ListingParser {
	return &ListingParser{}
}

var (
	numericTextRe = regexp.MustCompile(`^\d+$`)
	pagePathRe    = regexp.MustCompile(`/page/(\d+)`)
	pageQueryRe   = regexp.MustCompile(`[?&]page=(\d+)`)
)

// LastPage scans every anchor and returns the highest page number found.
// Two heuristics run on each anchor independently: purely numeric anchor
// text, and a page number embedded in the href path or query. Listings
// with no recognizable pagination return 1.
func (p *ListingParser) LastPage(html string) int {
	max := 1

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return max
	}

	doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if numericTextRe.MatchString(text) {
			if n, err := strconv.Atoi(text); err == nil && n > max {
				max = n
			}
		}

		href, _ := sel.Attr("href")
		m := pagePathRe.FindStringSubmatch(href)
		if m == nil {
			m = pageQueryRe.FindStringSubmatch(href)
		}
		if m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > max {
				max = n
			}
		}
	})

	return max
}

// ArticleLinks harvests candidate article URLs from a listing page.
// Anchors are kept when they carry visible text and point at a same-origin
// absolute URL or an origin-relative path under the listing's section.
// Results are resolved to absolute form, deduplicated in page order, and
// finally filtered to URLs whose path still contains the section marker.
func (p *ListingParser) ArticleLinks(html string, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, recast.Errorf(recast.EINVALID, "invalid base URL: %v", err)
	}

	section := sectionMarker(base)
	origin := base.Scheme + "://" + base.Host

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, recast.Errorf(recast.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []string

	doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}

		// Icon-only navigation anchors carry no text.
		if strings.TrimSpace(sel.Text()) == "" {
			return
		}

		sameOriginAbsolute := strings.HasPrefix(href, origin)
		sectionRelative := strings.HasPrefix(href, section) && !isSectionRoot(href, section)
		if !sameOriginAbsolute && !sectionRelative {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref)
		resolved.Fragment = ""

		u := resolved.String()
		if seen[u] {
			return
		}
		seen[u] = true
		links = append(links, u)
	})

	// Absolute links can share the origin but have left the section;
	// keep only URLs whose path still carries the section marker.
	filtered := links[:0]
	for _, u := range links {
		parsed, err := url.Parse(u)
		if err != nil {
			continue
		}
		if !strings.Contains(parsed.Path, section) {
			continue
		}
		if isSectionRoot(parsed.Path, section) {
			continue
		}
		filtered = append(filtered, u)
	}

	return filtered, nil
}

// sectionMarker derives the article-section path marker from the listing
// URL, e.g. "/blogs/" for both "/blogs/" and "/blogs/page/3/".
func sectionMarker(base *url.URL) string {
	segments := strings.Split(strings.Trim(base.Path, "/"), "/")
	if len(segments) == 0 || segments[0] == "" {
		return "/"
	}
	return "/" + segments[0] + "/"
}

// isSectionRoot reports whether the path points at the bare section root
// rather than an article beneath it.
func isSectionRoot(path string, section string) bool {
	return path == section || path == strings.TrimSuffix(section, "/")
}
