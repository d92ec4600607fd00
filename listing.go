package recast

// ListingParser extracts pagination and article links from listing pages.
type ListingParser interface {
	// LastPage scans all anchors in the listing HTML and returns the
	// highest page number found, using two independent heuristics: anchor
	// text that is purely numeric, and hrefs carrying a page number in
	// the path ("/page/N") or query ("?page=N"). Listings with no
	// recognizable pagination return 1.
	LastPage(html string) int

	// ArticleLinks returns the absolute URLs of article links found in
	// the listing HTML, in page order, deduplicated. Only same-origin
	// links whose path stays under the listing's section and whose
	// anchor carries visible text are kept; the bare section root is
	// excluded. The baseURL is the listing URL the HTML was fetched from.
	ArticleLinks(html string, baseURL string) ([]string, error)
}
