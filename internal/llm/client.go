// Package llm provides the text-generation and embedding client abstractions
// used by the document pipeline. Generation and retrieval treat the model as
// a black box; sampling parameters are part of the request.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// SamplingParams carries the sampling configuration for one generation
// request. The pipeline uses low temperature with broad nucleus sampling and
// a moderate frequency penalty for consistent, non-repetitive legal prose.
type SamplingParams struct {
	Temperature      float32
	TopP             float32
	FrequencyPenalty float32
}

// DefaultSampling returns the sampling parameters used for section synthesis
func DefaultSampling() SamplingParams {
	return SamplingParams{
		Temperature:      0.2,
		TopP:             0.95,
		FrequencyPenalty: 0.5,
	}
}

// Client is an abstraction over LLM providers
type Client interface {
	// Complete generates text for a prompt using the given sampling parameters
	Complete(ctx context.Context, prompt string, params SamplingParams) (string, error)
	// EmbedText returns the embedding vector for a text passage
	EmbedText(ctx context.Context, text string) ([]float32, error)
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return NewGeminiClient(ctx, config, apiKey)
	}
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// Complete generates text for a prompt using the given sampling parameters
func (c *GeminiClient) Complete(ctx context.Context, prompt string, params SamplingParams) (string, error) {
	modelName := c.config.GenerationModel
	if modelName == "" {
		return "", fmt.Errorf("no generation model configured")
	}

	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(params.Temperature)
	model.SetTopP(params.TopP)
	if params.FrequencyPenalty != 0 {
		penalty := params.FrequencyPenalty
		model.FrequencyPenalty = &penalty
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractTextFromResponse(resp)
}

// EmbedText returns the embedding vector for a text passage
func (c *GeminiClient) EmbedText(ctx context.Context, text string) ([]float32, error) {
	modelName := c.config.EmbeddingModel
	if modelName == "" {
		return nil, fmt.Errorf("no embedding model configured")
	}

	model := c.client.EmbeddingModel(modelName)
	resp, err := model.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("failed to embed text: %w", err)
	}
	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, fmt.Errorf("empty embedding in response")
	}

	return resp.Embedding.Values, nil
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from a Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
