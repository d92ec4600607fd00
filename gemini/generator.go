// Package gemini implements the recast Generator backed by Google Gemini.
package gemini

import (
	"context"

	"google.golang.org/genai"

	"recast"
)

// DefaultModel is the generation model used when none is configured.
const DefaultModel = "gemini-1.5-flash"

// Ensure Generator implements recast.Generator at compile time.
var _ recast.Generator = (*Generator)(nil)

// Generator implements recast.Generator using Google Gemini.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a new Generator. An empty model selects
// DefaultModel.
func NewGenerator(client *genai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// NewClient connects to the Gemini API with the given key.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, recast.Errorf(recast.ECONFIG, "gemini API key required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, recast.Errorf(recast.ECONFIG, "gemini client: %v", err)
	}
	return client, nil
}

// Generate produces rewritten text for the prompt.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", recast.Errorf(recast.EINVALID, "prompt required")
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		buildConfig(),
	)
	if err != nil {
		return "", recast.Errorf(recast.EGENERATION, "gemini generate: %v", err)
	}
	if result == nil {
		return "", recast.Errorf(recast.EGENERATION, "gemini returned nil result")
	}

	return result.Text(), nil
}

// buildConfig returns the GenerateContentConfig for Gemini API calls.
func buildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful writing assistant.",
			}},
		},
		Temperature: &temp,
	}
}
