package recast

import "context"

// Generator produces rewritten article text from a prompt. Implementations
// wrap interchangeable generation providers and surface provider-side
// failures as EGENERATION errors without leaking provider-specific shapes.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
