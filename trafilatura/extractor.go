// Package trafilatura provides an alternative readable-content extractor
// backed by go-trafilatura.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"

	"recast"
)

// Ensure Extractor implements recast.ReadableExtractor at compile time.
var _ recast.ReadableExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractReadable processes raw HTML against the page URL. Pages without
// an extractable main block yield empty content rather than an error.
func (e *Extractor) ExtractReadable(rawHTML string, pageURL string) (*recast.ReadableResult, error) {
	if rawHTML == "" {
		return nil, recast.Errorf(recast.EINVALID, "empty HTML input")
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, recast.Errorf(recast.EINVALID, "invalid page URL %q: %v", pageURL, err)
	}

	opts := trafilatura.Options{
		EnableFallback: true,
		OriginalURL:    base,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return &recast.ReadableResult{}, nil
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &recast.ReadableResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
		TextContent: result.ContentText,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
