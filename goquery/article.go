package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"recast"
)

// Ensure ArticleExtractor implements recast.ArticleExtractor at compile time.
var _ recast.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor derives title, published date, and main content from an
// article page. Each field runs an ordered list of heuristic strategies
// and keeps the first non-empty result, so malformed or unexpected markup
// degrades to fallbacks instead of failing.
type ArticleExtractor struct{}

// NewArticleExtractor creates a new ArticleExtractor.
func NewArticleExtractor() *ArticleExtractor {
	return &ArticleExtractor{}
}

// strategy produces a candidate value from a parsed document, or "" when
// its heuristic does not apply.
type strategy func(doc *goquery.Document) string

// firstNonEmpty runs strategies in priority order and returns the first
// non-empty result.
func firstNonEmpty(doc *goquery.Document, strategies []strategy) string {
	for _, s := range strategies {
		if v := s(doc); v != "" {
			return v
		}
	}
	return ""
}

var titleStrategies = []strategy{
	func(doc *goquery.Document) string {
		return strings.TrimSpace(doc.Find("h1").First().Text())
	},
	func(doc *goquery.Document) string {
		content, _ := doc.Find(`meta[property="og:title"]`).Attr("content")
		return content
	},
	func(doc *goquery.Document) string {
		return strings.TrimSpace(doc.Find("title").Text())
	},
}

var dateStrategies = []strategy{
	func(doc *goquery.Document) string {
		datetime, _ := doc.Find("time").First().Attr("datetime")
		return datetime
	},
	func(doc *goquery.Document) string {
		return strings.TrimSpace(doc.Find("time").First().Text())
	},
	func(doc *goquery.Document) string {
		content, _ := doc.Find(`meta[property="article:published_time"]`).Attr("content")
		return content
	},
}

var contentStrategies = []strategy{
	containerHTML("main"),
	containerHTML("article"),
	containerHTML("section"),
	func(doc *goquery.Document) string {
		var parts []string
		doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
			if html, err := goquery.OuterHtml(sel); err == nil {
				parts = append(parts, html)
			}
		})
		return strings.Join(parts, "\n")
	},
}

// containerHTML returns a strategy yielding the inner HTML of the first
// matching container element.
func containerHTML(selector string) strategy {
	return func(doc *goquery.Document) string {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			return ""
		}
		html, err := sel.Html()
		if err != nil {
			return ""
		}
		return html
	}
}

// ExtractArticle processes the page HTML. Title is guaranteed non-empty
// (the page URL is its terminal fallback); published date and content may
// be empty when no heuristic matches.
func (e *ArticleExtractor) ExtractArticle(html string, pageURL string) (*recast.ArticleContent, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return &recast.ArticleContent{Title: pageURL}, nil
	}

	title := firstNonEmpty(doc, titleStrategies)
	if title == "" {
		title = pageURL
	}

	return &recast.ArticleContent{
		Title:         title,
		PublishedDate: firstNonEmpty(doc, dateStrategies),
		ContentHTML:   firstNonEmpty(doc, contentStrategies),
	}, nil
}
