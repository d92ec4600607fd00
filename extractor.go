package recast

// ArticleContent holds the fields extracted from an article page.
type ArticleContent struct {
	// Title is never empty: the page URL is the terminal fallback.
	Title string

	// PublishedDate is best-effort and may be empty.
	PublishedDate string

	// ContentHTML is the main content markup, or empty if no heuristic
	// matched.
	ContentHTML string
}

// ArticleExtractor derives title, published date, and main content from an
// article page using ordered fallback heuristics. It must never fail on
// malformed or unexpected markup; every field has a terminal fallback.
type ArticleExtractor interface {
	// ExtractArticle processes the page HTML. The pageURL serves as the
	// terminal title fallback.
	ExtractArticle(html string, pageURL string) (*ArticleContent, error)
}

// ReadableResult holds the output of readability-style extraction.
type ReadableResult struct {
	Title       string
	ContentHTML string
	TextContent string
}

// ReadableExtractor isolates the primary textual content block of an
// arbitrary page, stripping navigation, ads, and boilerplate. Absence of a
// clear main block yields empty content rather than an error.
type ReadableExtractor interface {
	// ExtractReadable processes raw HTML. The pageURL is used for link
	// resolution and as context for title extraction.
	ExtractReadable(html string, pageURL string) (*ReadableResult, error)
}
