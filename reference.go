package recast

import "context"

// Reference is a validated external article used to ground a rewrite.
// References are transient; only their URLs are persisted.
type Reference struct {
	URL   string
	Title string
	HTML  string
	Text  string
}

// ReferenceFinder discovers corroborating external articles for a stored
// article. Implementations must exclude the article's own origin site so
// references corroborate independently.
type ReferenceFinder interface {
	// FindReferences returns zero, one, or two validated references for
	// the article. Fewer than two means discovery ran out of acceptable
	// candidates; the caller decides sufficiency. Per-candidate fetch or
	// extraction failures are swallowed, not surfaced.
	FindReferences(ctx context.Context, article *Article) ([]*Reference, error)
}
