package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"recast"
)

// DefaultSearchBaseURL is the SerpAPI endpoint.
const DefaultSearchBaseURL = "https://serpapi.com/search.json"

// Ensure SearchService implements recast.SearchService at compile time.
var _ recast.SearchService = (*SearchService)(nil)

// SearchService issues Google queries through SerpAPI and returns organic
// result links in provider order.
type SearchService struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// SearchOption configures a SearchService.
type SearchOption func(*SearchService)

// WithSearchBaseURL overrides the SerpAPI endpoint. Used in tests.
func WithSearchBaseURL(u string) SearchOption {
	return func(s *SearchService) {
		s.baseURL = u
	}
}

// WithSearchTimeout sets the timeout for search requests.
// Defaults to DefaultFetchTimeout (20s).
func WithSearchTimeout(d time.Duration) SearchOption {
	return func(s *SearchService) {
		s.client.Timeout = d
	}
}

// NewSearchService creates a new SerpAPI-backed SearchService.
func NewSearchService(apiKey string, opts ...SearchOption) *SearchService {
	s := &SearchService{
		client:  &http.Client{Timeout: DefaultFetchTimeout},
		baseURL: DefaultSearchBaseURL,
		apiKey:  apiKey,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// searchResponse mirrors the subset of the SerpAPI response we consume.
type searchResponse struct {
	OrganicResults []struct {
		Link string `json:"link"`
	} `json:"organic_results"`
}

// Search returns up to limit organic result URLs for the query.
func (s *SearchService) Search(ctx context.Context, query string, limit int) ([]string, error) {
	if s.apiKey == "" {
		return nil, recast.Errorf(recast.ECONFIG, "search API key required")
	}

	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", query)
	params.Set("api_key", s.apiKey)
	params.Set("num", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, recast.Errorf(recast.EINVALID, "invalid search request: %v", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, recast.Errorf(recast.ENETWORK, "search %q: %v", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, recast.Errorf(recast.ENETWORK, "search HTTP %d for %q", resp.StatusCode, query)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, recast.Errorf(recast.ENETWORK, "read search response: %v", err)
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, recast.Errorf(recast.EINTERNAL, "decode search response: %v", err)
	}

	links := make([]string, 0, len(sr.OrganicResults))
	for _, r := range sr.OrganicResults {
		if r.Link == "" {
			continue
		}
		links = append(links, r.Link)
	}
	return links, nil
}
