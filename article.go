package recast

import (
	"context"
	"time"
)

// Article type constants.
const (
	TypeOriginal = "original"
	TypeUpdated  = "updated"
)

// Article represents a stored article record. An "original" record holds
// content exactly as extracted from the source site. An "updated" record is
// a reference-grounded rewrite of an original; it shares the original's
// SourceURL and OriginalContent and carries its own References. The two
// records coexist and are correlated by (Title, SourceURL), not by a
// foreign key.
type Article struct {
	ID    string `json:"id"`
	Title string `json:"title"`

	// Content is the current body: equal to OriginalContent for original
	// records, the rewritten body for updated records.
	Content string `json:"content"`

	// OriginalContent is set once at ingestion and never mutated.
	OriginalContent string `json:"originalContent"`

	SourceURL     string `json:"sourceUrl"`
	PublishedDate string `json:"publishedDate,omitempty"`
	Type          string `json:"type"`

	// References holds external reference URLs in acceptance order.
	// Empty for original records, exactly two for updated records
	// produced by this pipeline.
	References []string `json:"references"`

	ContentHash string    `json:"contentHash,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	if a.SourceURL == "" {
		return Errorf(EINVALID, "article source URL required")
	}
	if a.Type != TypeOriginal && a.Type != TypeUpdated {
		return Errorf(EINVALID, "article type must be %q or %q", TypeOriginal, TypeUpdated)
	}
	return nil
}

// ArticleService represents a service for managing stored articles.
// Records are never updated or deleted by the pipeline once created.
type ArticleService interface {
	// CreateArticle creates a new article record.
	CreateArticle(ctx context.Context, article *Article) error

	// UpsertArticle inserts the article unless a record with the same
	// (Title, SourceURL) already exists, in which case it is a no-op and
	// no fields are overwritten. Returns true if a record was inserted.
	UpsertArticle(ctx context.Context, article *Article) (bool, error)

	// FindArticles retrieves articles matching the filter, newest first.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	Type *string `json:"type"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
