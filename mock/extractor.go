package mock

import "recast"

var _ recast.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of recast.ArticleExtractor.
type ArticleExtractor struct {
	ExtractArticleFn func(html string, pageURL string) (*recast.ArticleContent, error)
}

func (e *ArticleExtractor) ExtractArticle(html string, pageURL string) (*recast.ArticleContent, error) {
	return e.ExtractArticleFn(html, pageURL)
}

var _ recast.ReadableExtractor = (*ReadableExtractor)(nil)

// ReadableExtractor is a mock implementation of recast.ReadableExtractor.
type ReadableExtractor struct {
	ExtractReadableFn func(html string, pageURL string) (*recast.ReadableResult, error)
}

func (e *ReadableExtractor) ExtractReadable(html string, pageURL string) (*recast.ReadableResult, error) {
	return e.ExtractReadableFn(html, pageURL)
}
