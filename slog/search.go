package slog

import (
	"context"
	"log/slog"
	"time"

	"recast"
)

// Ensure LoggingSearch implements recast.SearchService.
var _ recast.SearchService = (*LoggingSearch)(nil)

// LoggingSearch wraps a SearchService with structured logging of every
// query.
type LoggingSearch struct {
	next   recast.SearchService
	logger *slog.Logger
}

// NewLoggingSearch creates a new LoggingSearch.
func NewLoggingSearch(next recast.SearchService, logger *slog.Logger) *LoggingSearch {
	return &LoggingSearch{next: next, logger: logger}
}

// Search delegates to the wrapped service and logs the query, result
// count, and duration.
func (s *LoggingSearch) Search(ctx context.Context, query string, limit int) ([]string, error) {
	begin := time.Now()
	links, err := s.next.Search(ctx, query, limit)
	if err != nil {
		s.logger.Error("search",
			"query", query,
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}
	s.logger.Info("search",
		"query", query,
		"results", len(links),
		"duration", time.Since(begin),
	)
	return links, nil
}
