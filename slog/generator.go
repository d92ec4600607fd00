package slog

import (
	"context"
	"log/slog"
	"time"

	"recast"
)

// Ensure LoggingGenerator implements recast.Generator.
var _ recast.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with structured logging of every
// generation call.
type LoggingGenerator struct {
	next   recast.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next recast.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator and logs prompt and output
// sizes with the duration.
func (g *LoggingGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	begin := time.Now()
	text, err := g.next.Generate(ctx, prompt)
	if err != nil {
		g.logger.Error("generate",
			"prompt_bytes", len(prompt),
			"duration", time.Since(begin),
			"err", err,
		)
		return "", err
	}
	g.logger.Info("generate",
		"prompt_bytes", len(prompt),
		"output_bytes", len(text),
		"duration", time.Since(begin),
	)
	return text, nil
}
