package recast

import "context"

// Fetcher retrieves raw HTML documents from URLs.
type Fetcher interface {
	// Fetch performs a GET against the URL and returns the response body.
	// A transport failure, timeout, or non-2xx status yields an ENETWORK
	// error. The context controls cancellation; callers own retry policy.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases client resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
