package mock

import (
	"context"

	"recast"
)

var _ recast.Generator = (*Generator)(nil)

// Generator is a mock implementation of recast.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, prompt string) (string, error)
}

func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.GenerateFn(ctx, prompt)
}
