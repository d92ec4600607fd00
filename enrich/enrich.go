package enrich

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"recast"
)

// DefaultBatchSize is how many original articles one enrichment run
// processes.
const DefaultBatchSize = 50

// Outcome classifies how a single article fared during an enrichment run.
type Outcome string

const (
	OutcomeEnriched Outcome = "enriched"
	OutcomeSkipped  Outcome = "skipped"
	OutcomeFailed   Outcome = "failed"
)

// ItemResult records the outcome for one article.
type ItemResult struct {
	Title   string
	Outcome Outcome
	Err     error
}

// Result is the run report for one enrichment pass.
type Result struct {
	Items    []ItemResult
	Enriched int
	Skipped  int
	Failed   int
}

// Enricher rewrites stored original articles using validated external
// references and a text generator, saving each rewrite as a new updated
// record alongside the original.
type Enricher struct {
	Articles   recast.ArticleService
	References recast.ReferenceFinder
	Generator  recast.Generator
	Logger     *slog.Logger

	// BatchSize falls back to DefaultBatchSize when zero.
	BatchSize int

	// MinReferences falls back to DefaultReferenceTarget when zero.
	MinReferences int
}

// Run enriches one batch of original articles sequentially. Per-article
// failures and skips are recorded in the result; only configuration and
// listing errors abort the run.
func (e *Enricher) Run(ctx context.Context) (*Result, error) {
	logger := e.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if e.Generator == nil {
		return nil, recast.Errorf(recast.ECONFIG, "no text generator configured")
	}

	originalType := recast.TypeOriginal
	articles, err := e.Articles.FindArticles(ctx, recast.ArticleFilter{
		Type:  &originalType,
		Limit: e.batchSize(),
	})
	if err != nil {
		return nil, fmt.Errorf("list original articles: %w", err)
	}

	result := &Result{}
	for _, article := range articles {
		item := e.enrichOne(ctx, logger, article)
		result.Items = append(result.Items, item)
		switch item.Outcome {
		case OutcomeEnriched:
			result.Enriched++
		case OutcomeSkipped:
			result.Skipped++
		case OutcomeFailed:
			result.Failed++
		}
	}

	logger.Info("enrichment run complete",
		"processed", len(result.Items),
		"enriched", result.Enriched,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)

	return result, nil
}

func (e *Enricher) enrichOne(ctx context.Context, logger *slog.Logger, article *recast.Article) ItemResult {
	refs, err := e.References.FindReferences(ctx, article)
	if err != nil {
		logger.Error("reference discovery failed", "title", article.Title, "err", err)
		return ItemResult{Title: article.Title, Outcome: OutcomeFailed, Err: err}
	}
	if len(refs) < e.minReferences() {
		logger.Warn("skipping article: not enough valid references",
			"title", article.Title, "found", len(refs), "required", e.minReferences())
		return ItemResult{Title: article.Title, Outcome: OutcomeSkipped}
	}

	// The prompt rewrites the originally extracted content, not whatever
	// currently fills Content.
	sourceHTML := article.OriginalContent
	if sourceHTML == "" {
		sourceHTML = article.Content
	}

	prompt := BuildPrompt(article.Title, sourceHTML, refs)
	rewritten, err := e.Generator.Generate(ctx, prompt)
	if err != nil {
		logger.Error("generation failed", "title", article.Title, "err", err)
		return ItemResult{Title: article.Title, Outcome: OutcomeFailed, Err: err}
	}

	urls := make([]string, len(refs))
	for i, ref := range refs {
		urls[i] = ref.URL
	}

	updated := &recast.Article{
		Title:           article.Title,
		Content:         rewritten + referencesSection(refs),
		OriginalContent: sourceHTML,
		SourceURL:       article.SourceURL,
		PublishedDate:   article.PublishedDate,
		Type:            recast.TypeUpdated,
		References:      urls,
	}

	if err := e.Articles.CreateArticle(ctx, updated); err != nil {
		logger.Error("saving updated article failed", "title", article.Title, "err", err)
		return ItemResult{Title: article.Title, Outcome: OutcomeFailed, Err: err}
	}

	logger.Info("updated article saved", "id", updated.ID, "title", updated.Title)
	return ItemResult{Title: article.Title, Outcome: OutcomeEnriched}
}

func (e *Enricher) batchSize() int {
	if e.BatchSize > 0 {
		return e.BatchSize
	}
	return DefaultBatchSize
}

func (e *Enricher) minReferences() int {
	if e.MinReferences > 0 {
		return e.MinReferences
	}
	return DefaultReferenceTarget
}

// referencesSection renders the trailing references block appended to
// every rewritten article.
func referencesSection(refs []*recast.Reference) string {
	var items []string
	for _, ref := range refs {
		label := ref.Title
		if label == "" {
			label = ref.URL
		}
		items = append(items, fmt.Sprintf(`<li><a href=%q target="_blank" rel="noopener">%s</a></li>`, ref.URL, label))
	}

	return "\n\n<hr/>\n<section>\n<h3>References</h3>\n<ul>\n" +
		strings.Join(items, "\n") +
		"\n</ul>\n</section>"
}
