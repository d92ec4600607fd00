package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"recast"
)

// Ensure ArticleService implements recast.ArticleService at compile time.
var _ recast.ArticleService = (*ArticleService)(nil)

// ArticleService is a REST client for an external article store exposing
// GET /api/articles (with type/search/limit query parameters, returning an
// items envelope) and POST /api/articles.
type ArticleService struct {
	client  *http.Client
	baseURL string
}

// NewArticleService creates a client for the store at baseURL
// (e.g. "http://localhost:5000").
func NewArticleService(baseURL string) *ArticleService {
	return &ArticleService{
		client:  &http.Client{Timeout: DefaultFetchTimeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// listResponse mirrors the store's list envelope.
type listResponse struct {
	Items []*recast.Article `json:"items"`
}

// CreateArticle persists a new article via POST and copies the assigned ID
// back onto the article.
func (s *ArticleService) CreateArticle(ctx context.Context, article *recast.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(article)
	if err != nil {
		return recast.Errorf(recast.EINTERNAL, "encode article: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/articles", bytes.NewReader(payload))
	if err != nil {
		return recast.Errorf(recast.EINVALID, "invalid store request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return recast.Errorf(recast.ENETWORK, "store create: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return recast.Errorf(recast.ENETWORK, "store create HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return recast.Errorf(recast.ENETWORK, "read store response: %v", err)
	}

	var saved recast.Article
	if err := json.Unmarshal(body, &saved); err == nil && saved.ID != "" {
		article.ID = saved.ID
	}
	return nil
}

// UpsertArticle inserts the article unless a record with the same
// (Title, SourceURL) already exists. The store has no native upsert, so
// existence is probed with a title search before creating.
func (s *ArticleService) UpsertArticle(ctx context.Context, article *recast.Article) (bool, error) {
	if err := article.Validate(); err != nil {
		return false, err
	}

	existing, err := s.findArticles(ctx, recast.ArticleFilter{Type: &article.Type}, article.Title)
	if err != nil {
		return false, err
	}
	for _, a := range existing {
		if a.Title == article.Title && a.SourceURL == article.SourceURL {
			return false, nil
		}
	}

	if err := s.CreateArticle(ctx, article); err != nil {
		return false, err
	}
	return true, nil
}

// FindArticles retrieves articles matching the filter, newest first.
func (s *ArticleService) FindArticles(ctx context.Context, filter recast.ArticleFilter) ([]*recast.Article, error) {
	return s.findArticles(ctx, filter, "")
}

func (s *ArticleService) findArticles(ctx context.Context, filter recast.ArticleFilter, search string) ([]*recast.Article, error) {
	params := url.Values{}
	if filter.Type != nil {
		params.Set("type", *filter.Type)
	}
	if filter.Limit > 0 {
		params.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Offset > 0 && filter.Limit > 0 {
		params.Set("page", strconv.Itoa(filter.Offset/filter.Limit+1))
	}
	if search != "" {
		params.Set("search", search)
	}

	endpoint := s.baseURL + "/api/articles"
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, recast.Errorf(recast.EINVALID, "invalid store request: %v", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, recast.Errorf(recast.ENETWORK, "store list: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, recast.Errorf(recast.ENETWORK, "store list HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, recast.Errorf(recast.ENETWORK, "read store response: %v", err)
	}

	var lr listResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return nil, recast.Errorf(recast.EINTERNAL, "decode store response: %v", err)
	}
	return lr.Items, nil
}
