package mock

import (
	"context"

	"recast"
)

var _ recast.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of recast.ArticleService.
type ArticleService struct {
	CreateArticleFn func(ctx context.Context, article *recast.Article) error
	UpsertArticleFn func(ctx context.Context, article *recast.Article) (bool, error)
	FindArticlesFn  func(ctx context.Context, filter recast.ArticleFilter) ([]*recast.Article, error)
}

func (s *ArticleService) CreateArticle(ctx context.Context, article *recast.Article) error {
	return s.CreateArticleFn(ctx, article)
}

func (s *ArticleService) UpsertArticle(ctx context.Context, article *recast.Article) (bool, error) {
	return s.UpsertArticleFn(ctx, article)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter recast.ArticleFilter) ([]*recast.Article, error) {
	return s.FindArticlesFn(ctx, filter)
}
