// Package readability wraps go-readability to isolate the primary textual
// content of arbitrary article pages.
package readability

import (
	"net/url"
	"strings"

	"github.com/go-shiori/go-readability"

	"recast"
)

// Ensure Extractor implements recast.ReadableExtractor at compile time.
var _ recast.ReadableExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML,
// stripping navigation, ads, and boilerplate.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractReadable processes raw HTML against the page URL. Malformed HTML
// or pages without a clear main block yield empty content rather than an
// error; the title falls back to the document title element.
func (e *Extractor) ExtractReadable(rawHTML string, pageURL string) (*recast.ReadableResult, error) {
	if rawHTML == "" {
		return nil, recast.Errorf(recast.EINVALID, "empty HTML input")
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, recast.Errorf(recast.EINVALID, "invalid page URL %q: %v", pageURL, err)
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), base)
	if err != nil {
		// Readability failure is absorbed; the page simply has no
		// extractable main block.
		return &recast.ReadableResult{}, nil
	}

	return &recast.ReadableResult{
		Title:       article.Title,
		ContentHTML: article.Content,
		TextContent: article.TextContent,
	}, nil
}
