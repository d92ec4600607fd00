package sqlite

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"recast"
)

// Compile-time interface verification.
var _ recast.ArticleService = (*ArticleService)(nil)

// ArticleService implements recast.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// CreateArticle creates a new article record.
func (s *ArticleService) CreateArticle(ctx context.Context, article *recast.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	article.ID = uuid.New().String()
	article.CreatedAt = time.Now().UTC()
	article.ContentHash = hashContent(article.Content)

	refs, err := encodeReferences(article.References)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO articles (id, title, content, original_content, source_url, published_date, type, refs, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, article.ID, article.Title, article.Content, article.OriginalContent, article.SourceURL,
		article.PublishedDate, article.Type, refs, article.ContentHash,
		article.CreatedAt.Format(time.RFC3339))

	return err
}

// UpsertArticle inserts the article unless an original record with the
// same (Title, SourceURL) exists. The partial unique index makes the
// insert a silent no-op on conflict; no fields of the existing record are
// touched. Returns true if a record was inserted.
func (s *ArticleService) UpsertArticle(ctx context.Context, article *recast.Article) (bool, error) {
	if err := article.Validate(); err != nil {
		return false, err
	}

	article.ID = uuid.New().String()
	article.CreatedAt = time.Now().UTC()
	article.ContentHash = hashContent(article.Content)

	refs, err := encodeReferences(article.References)
	if err != nil {
		return false, err
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO articles (id, title, content, original_content, source_url, published_date, type, refs, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`, article.ID, article.Title, article.Content, article.OriginalContent, article.SourceURL,
		article.PublishedDate, article.Type, refs, article.ContentHash,
		article.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// FindArticles retrieves articles matching the filter, newest first.
func (s *ArticleService) FindArticles(ctx context.Context, filter recast.ArticleFilter) ([]*recast.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, title, content, original_content, source_url, published_date, type, refs, content_hash, created_at FROM articles WHERE 1=1")

	if filter.Type != nil {
		query.WriteString(" AND type = ?")
		args = append(args, *filter.Type)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")

	// OFFSET requires a LIMIT clause; -1 means unlimited.
	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	} else if filter.Offset > 0 {
		query.WriteString(" LIMIT -1")
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*recast.Article
	for rows.Next() {
		var a recast.Article
		var refs, createdAt string

		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.OriginalContent, &a.SourceURL,
			&a.PublishedDate, &a.Type, &refs, &a.ContentHash, &createdAt); err != nil {
			return nil, err
		}

		if err := json.Unmarshal([]byte(refs), &a.References); err != nil {
			return nil, recast.Errorf(recast.EINTERNAL, "decode references for %s: %v", a.ID, err)
		}
		a.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, recast.Errorf(recast.EINTERNAL, "parse created_at for %s: %v", a.ID, err)
		}

		articles = append(articles, &a)
	}

	return articles, rows.Err()
}

// encodeReferences stores reference URLs as a JSON array, never null.
func encodeReferences(refs []string) (string, error) {
	if refs == nil {
		refs = []string{}
	}
	b, err := json.Marshal(refs)
	if err != nil {
		return "", recast.Errorf(recast.EINTERNAL, "encode references: %v", err)
	}
	return string(b), nil
}
