package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recast"
	main "recast/cmd/recast"
	"recast/mock"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists articles with ID, type, and title", func(t *testing.T) {
		t.Parallel()

		articles := &mock.ArticleService{
			FindArticlesFn: func(_ context.Context, filter recast.ArticleFilter) ([]*recast.Article, error) {
				assert.Nil(t, filter.Type)
				assert.Equal(t, 20, filter.Limit)
				return []*recast.Article{
					{ID: "art-1", Title: "Scaling Support Bots", Type: recast.TypeOriginal},
					{ID: "art-2", Title: "Scaling Support Bots", Type: recast.TypeUpdated},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Articles: articles,
		}

		cmd := &main.ListCmd{Limit: 20}

		err := cmd.Run(deps)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "art-1")
		assert.Contains(t, output, "art-2")
		assert.Contains(t, output, "original")
		assert.Contains(t, output, "updated")
		assert.Contains(t, output, "Scaling Support Bots")
	})

	t.Run("passes the type filter through", func(t *testing.T) {
		t.Parallel()

		articles := &mock.ArticleService{
			FindArticlesFn: func(_ context.Context, filter recast.ArticleFilter) ([]*recast.Article, error) {
				require.NotNil(t, filter.Type)
				assert.Equal(t, recast.TypeUpdated, *filter.Type)
				return nil, nil
			},
		}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   &bytes.Buffer{},
			Articles: articles,
		}

		cmd := &main.ListCmd{Type: recast.TypeUpdated, Limit: 20}
		require.NoError(t, cmd.Run(deps))
	})

	t.Run("shows helpful message when no articles exist", func(t *testing.T) {
		t.Parallel()

		articles := &mock.ArticleService{
			FindArticlesFn: func(_ context.Context, _ recast.ArticleFilter) ([]*recast.Article, error) {
				return []*recast.Article{}, nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Articles: articles,
		}

		cmd := &main.ListCmd{Limit: 20}

		err := cmd.Run(deps)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No articles")
	})

	t.Run("returns error when FindArticles fails", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database connection failed")

		articles := &mock.ArticleService{
			FindArticlesFn: func(_ context.Context, _ recast.ArticleFilter) ([]*recast.Article, error) {
				return nil, dbErr
			},
		}

		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Articles: articles,
		}

		cmd := &main.ListCmd{Limit: 20}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, dbErr, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
