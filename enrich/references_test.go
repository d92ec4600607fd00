package enrich_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recast"
	"recast/enrich"
	"recast/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// candidatePage builds a fetcher and extractor pair that serve fixed text
// content per URL.
func candidatePage(texts map[string]string) (*mock.Fetcher, *mock.ReadableExtractor) {
	fetcher := &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			return "<html>" + url + "</html>", nil
		},
	}
	extractor := &mock.ReadableExtractor{
		ExtractReadableFn: func(_ string, pageURL string) (*recast.ReadableResult, error) {
			text := texts[pageURL]
			return &recast.ReadableResult{
				Title:       "Candidate: " + pageURL,
				ContentHTML: "<p>" + text + "</p>",
				TextContent: text,
			}, nil
		},
	}
	return fetcher, extractor
}

func TestFinder_FindReferences(t *testing.T) {
	t.Parallel()

	t.Run("accepts article-like candidates above the length threshold", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("a", 801)
		fetcher, extractor := candidatePage(map[string]string{
			"https://one.example/blog/first":  long,
			"https://two.example/blog/second": long,
		})

		var gotQuery string
		finder := &enrich.Finder{
			Search: &mock.SearchService{
				SearchFn: func(_ context.Context, query string, limit int) ([]string, error) {
					gotQuery = query
					assert.Equal(t, enrich.DefaultSearchLimit, limit)
					return []string{
						"https://one.example/blog/first",
						"https://two.example/blog/second",
						"https://three.example/blog/third",
					}, nil
				},
			},
			Fetcher:      fetcher,
			Extractor:    extractor,
			Logger:       discardLogger(),
			OriginDomain: "origin.example",
		}

		refs, err := finder.FindReferences(context.Background(), &recast.Article{Title: "Scaling Support Bots"})
		require.NoError(t, err)
		require.Len(t, refs, 2)
		assert.Equal(t, `"Scaling Support Bots" -site:origin.example`, gotQuery)
		assert.Equal(t, "https://one.example/blog/first", refs[0].URL)
		assert.Equal(t, "https://two.example/blog/second", refs[1].URL)
		assert.Equal(t, "Candidate: https://one.example/blog/first", refs[0].Title)
	})

	t.Run("rejects text at or below the length threshold", func(t *testing.T) {
		t.Parallel()

		fetcher, extractor := candidatePage(map[string]string{
			"https://a.example/blog/short":  strings.Repeat("x", 799),
			"https://b.example/blog/exact":  strings.Repeat("x", 800),
			"https://c.example/blog/longer": strings.Repeat("x", 801),
		})

		finder := &enrich.Finder{
			Search: &mock.SearchService{
				SearchFn: func(_ context.Context, _ string, _ int) ([]string, error) {
					return []string{
						"https://a.example/blog/short",
						"https://b.example/blog/exact",
						"https://c.example/blog/longer",
					}, nil
				},
			},
			Fetcher:      fetcher,
			Extractor:    extractor,
			Logger:       discardLogger(),
			OriginDomain: "origin.example",
		}

		refs, err := finder.FindReferences(context.Background(), &recast.Article{})
		require.NoError(t, err)
		require.Len(t, refs, 1)
		assert.Equal(t, "https://c.example/blog/longer", refs[0].URL)
	})

	t.Run("rejects non-article paths", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("a", 1000)
		fetcher, extractor := candidatePage(map[string]string{
			"https://shop.example/products/widget": long,
			"https://press.example/2023/07/launch": long,
		})

		finder := &enrich.Finder{
			Search: &mock.SearchService{
				SearchFn: func(_ context.Context, _ string, _ int) ([]string, error) {
					return []string{
						"https://shop.example/products/widget",
						"https://press.example/2023/07/launch",
					}, nil
				},
			},
			Fetcher:      fetcher,
			Extractor:    extractor,
			Logger:       discardLogger(),
			OriginDomain: "origin.example",
		}

		refs, err := finder.FindReferences(context.Background(), &recast.Article{})
		require.NoError(t, err)
		require.Len(t, refs, 1)
		assert.Equal(t, "https://press.example/2023/07/launch", refs[0].URL)
	})

	t.Run("stops at the target even with more valid candidates", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("a", 1000)
		texts := make(map[string]string)
		links := make([]string, 5)
		for i := range links {
			links[i] = "https://site.example/blog/post-" + string(rune('a'+i))
			texts[links[i]] = long
		}
		fetcher, extractor := candidatePage(texts)

		var fetched int
		inner := fetcher.FetchFn
		fetcher.FetchFn = func(ctx context.Context, url string) (string, error) {
			fetched++
			return inner(ctx, url)
		}

		finder := &enrich.Finder{
			Search: &mock.SearchService{
				SearchFn: func(_ context.Context, _ string, _ int) ([]string, error) {
					return links, nil
				},
			},
			Fetcher:      fetcher,
			Extractor:    extractor,
			Logger:       discardLogger(),
			OriginDomain: "origin.example",
		}

		refs, err := finder.FindReferences(context.Background(), &recast.Article{})
		require.NoError(t, err)
		assert.Len(t, refs, 2)
		assert.Equal(t, 2, fetched, "validation must stop once the target is reached")
	})

	t.Run("excludes origin domain and malformed links", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("a", 1000)
		fetcher, extractor := candidatePage(map[string]string{
			"https://other.example/blog/ok": long,
		})

		finder := &enrich.Finder{
			Search: &mock.SearchService{
				SearchFn: func(_ context.Context, _ string, _ int) ([]string, error) {
					return []string{
						"https://origin.example/blog/self",
						"ftp://files.example/blog/archive",
						"https://other.example/blog/ok",
					}, nil
				},
			},
			Fetcher:      fetcher,
			Extractor:    extractor,
			Logger:       discardLogger(),
			OriginDomain: "origin.example",
		}

		refs, err := finder.FindReferences(context.Background(), &recast.Article{})
		require.NoError(t, err)
		require.Len(t, refs, 1)
		assert.Equal(t, "https://other.example/blog/ok", refs[0].URL)
	})

	t.Run("falls back to a keyword query when the primary yields too few", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("a", 1000)
		fetcher, extractor := candidatePage(map[string]string{
			"https://one.example/blog/primary":   long,
			"https://two.example/blog/secondary": long,
		})

		var queries []string
		finder := &enrich.Finder{
			Search: &mock.SearchService{
				SearchFn: func(_ context.Context, query string, _ int) ([]string, error) {
					queries = append(queries, query)
					if len(queries) == 1 {
						return []string{"https://one.example/blog/primary"}, nil
					}
					return []string{
						"https://one.example/blog/primary",
						"https://two.example/blog/secondary",
					}, nil
				},
			},
			Fetcher:      fetcher,
			Extractor:    extractor,
			Logger:       discardLogger(),
			OriginDomain: "origin.example",
		}

		refs, err := finder.FindReferences(context.Background(), &recast.Article{Title: "How to Scale the Chatbots for Enterprise Support Teams"})
		require.NoError(t, err)
		require.Len(t, refs, 2)

		require.Len(t, queries, 2)
		assert.Equal(t, `"scale chatbots enterprise support teams" -site:origin.example`, queries[1])
		assert.Equal(t, "https://one.example/blog/primary", refs[0].URL)
		assert.Equal(t, "https://two.example/blog/secondary", refs[1].URL)
	})

	t.Run("swallows per-candidate fetch failures", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("a", 1000)
		_, extractor := candidatePage(map[string]string{
			"https://ok.example/blog/works": long,
		})
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				if strings.Contains(url, "broken") {
					return "", recast.Errorf(recast.ENETWORK, "connection refused")
				}
				return "<html></html>", nil
			},
		}

		finder := &enrich.Finder{
			Search: &mock.SearchService{
				SearchFn: func(_ context.Context, _ string, _ int) ([]string, error) {
					return []string{
						"https://broken.example/blog/down",
						"https://ok.example/blog/works",
					}, nil
				},
			},
			Fetcher:      fetcher,
			Extractor:    extractor,
			Logger:       discardLogger(),
			OriginDomain: "origin.example",
		}

		refs, err := finder.FindReferences(context.Background(), &recast.Article{})
		require.NoError(t, err)
		require.Len(t, refs, 1)
		assert.Equal(t, "https://ok.example/blog/works", refs[0].URL)
	})

	t.Run("derives the excluded domain from the article source URL", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("a", 1000)
		fetcher, extractor := candidatePage(map[string]string{
			"https://origin.example/blogs/self-reference": long,
			"https://other.example/blog/independent":      long,
		})

		var queries []string
		finder := &enrich.Finder{
			Search: &mock.SearchService{
				SearchFn: func(_ context.Context, query string, _ int) ([]string, error) {
					queries = append(queries, query)
					return []string{
						"https://origin.example/blogs/self-reference",
						"https://other.example/blog/independent",
					}, nil
				},
			},
			Fetcher:   fetcher,
			Extractor: extractor,
			Logger:    discardLogger(),
		}

		refs, err := finder.FindReferences(context.Background(), &recast.Article{
			Title:     "Scaling Support Bots",
			SourceURL: "https://www.origin.example/blogs/scaling-support-bots/",
		})
		require.NoError(t, err)

		require.NotEmpty(t, queries)
		assert.Equal(t, `"Scaling Support Bots" -site:origin.example`, queries[0])
		require.Len(t, refs, 1)
		assert.Equal(t, "https://other.example/blog/independent", refs[0].URL,
			"an article must not corroborate itself via its own origin site")
	})

	t.Run("omits the site exclusion when no origin is resolvable", func(t *testing.T) {
		t.Parallel()

		var gotQuery string
		finder := &enrich.Finder{
			Search: &mock.SearchService{
				SearchFn: func(_ context.Context, query string, _ int) ([]string, error) {
					gotQuery = query
					return nil, nil
				},
			},
			Logger: discardLogger(),
		}

		_, err := finder.FindReferences(context.Background(), &recast.Article{Title: "Why Not"})
		require.NoError(t, err)
		assert.Equal(t, `"Why Not"`, gotQuery)
		assert.NotContains(t, gotQuery, "-site:")
	})

	t.Run("propagates search errors", func(t *testing.T) {
		t.Parallel()

		finder := &enrich.Finder{
			Search: &mock.SearchService{
				SearchFn: func(_ context.Context, _ string, _ int) ([]string, error) {
					return nil, recast.Errorf(recast.ENETWORK, "search unavailable")
				},
			},
			Logger:       discardLogger(),
			OriginDomain: "origin.example",
		}

		_, err := finder.FindReferences(context.Background(), &recast.Article{Title: "Anything"})
		require.Error(t, err)
		assert.Equal(t, recast.ENETWORK, recast.ErrorCode(err))
	})
}
