package mock

import (
	"context"

	"recast"
)

var _ recast.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of recast.SearchService.
type SearchService struct {
	SearchFn func(ctx context.Context, query string, limit int) ([]string, error)
}

func (s *SearchService) Search(ctx context.Context, query string, limit int) ([]string, error) {
	return s.SearchFn(ctx, query, limit)
}
