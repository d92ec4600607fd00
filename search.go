package recast

import "context"

// SearchService issues web search queries and returns result links.
type SearchService interface {
	// Search returns up to limit organic result URLs for the query, in
	// provider order. No ranking guarantee exists beyond that order.
	Search(ctx context.Context, query string, limit int) ([]string, error)
}
