// Package openai implements the recast Generator against OpenAI-compatible
// chat completion APIs over plain HTTP.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"recast"
)

// DefaultEndpoint is the OpenAI chat completions endpoint.
const DefaultEndpoint = "https://api.openai.com/v1/chat/completions"

// DefaultModel is the generation model used when none is configured.
const DefaultModel = "gpt-4o-mini"

const systemPrompt = "You are a helpful writing assistant."

// Ensure Generator implements recast.Generator at compile time.
var _ recast.Generator = (*Generator)(nil)

// Generator implements recast.Generator using chat completions.
type Generator struct {
	client   *http.Client
	endpoint string
	model    string
	apiKey   string
}

// Option configures a Generator.
type Option func(*Generator)

// WithEndpoint overrides the chat completions endpoint. Used for
// OpenAI-compatible gateways and in tests.
func WithEndpoint(endpoint string) Option {
	return func(g *Generator) {
		g.endpoint = endpoint
	}
}

// WithModel overrides the generation model.
func WithModel(model string) Option {
	return func(g *Generator) {
		g.model = model
	}
}

// NewGenerator creates a new Generator with the given API key.
func NewGenerator(apiKey string, opts ...Option) *Generator {
	g := &Generator{
		client:   &http.Client{Timeout: 120 * time.Second},
		endpoint: DefaultEndpoint,
		model:    DefaultModel,
		apiKey:   apiKey,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// chatRequest is the chat completions request payload.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse mirrors the subset of the response we consume.
type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate produces rewritten text for the prompt.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", recast.Errorf(recast.ECONFIG, "openai API key required")
	}
	if prompt == "" {
		return "", recast.Errorf(recast.EINVALID, "prompt required")
	}

	body, err := json.Marshal(chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.4,
	})
	if err != nil {
		return "", recast.Errorf(recast.EINTERNAL, "encode chat request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", recast.Errorf(recast.EINVALID, "invalid chat request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", recast.Errorf(recast.EGENERATION, "chat completion: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", recast.Errorf(recast.EGENERATION, "chat completion HTTP %d: %s",
			resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", recast.Errorf(recast.EGENERATION, "read chat response: %v", err)
	}

	var cr chatResponse
	if err := json.Unmarshal(respBody, &cr); err != nil {
		return "", recast.Errorf(recast.EGENERATION, "decode chat response: %v", err)
	}
	if len(cr.Choices) == 0 {
		return "", recast.Errorf(recast.EGENERATION, "chat completion returned no choices")
	}

	return cr.Choices[0].Message.Content, nil
}
