package mock

import (
	"context"

	"recast"
)

var _ recast.ReferenceFinder = (*ReferenceFinder)(nil)

// ReferenceFinder is a mock implementation of recast.ReferenceFinder.
type ReferenceFinder struct {
	FindReferencesFn func(ctx context.Context, article *recast.Article) ([]*recast.Reference, error)
}

func (f *ReferenceFinder) FindReferences(ctx context.Context, article *recast.Article) ([]*recast.Reference, error) {
	return f.FindReferencesFn(ctx, article)
}
