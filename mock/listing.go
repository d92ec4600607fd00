package mock

import "recast"

var _ recast.ListingParser = (*ListingParser)(nil)

// ListingParser is a mock implementation of recast.ListingParser.
type ListingParser struct {
	LastPageFn     func(html string) int
	ArticleLinksFn func(html string, baseURL string) ([]string, error)
}

func (p *ListingParser) LastPage(html string) int {
	return p.LastPageFn(html)
}

func (p *ListingParser) ArticleLinks(html string, baseURL string) ([]string, error) {
	return p.ArticleLinksFn(html, baseURL)
}
