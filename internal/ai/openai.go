package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

const (
	defaultModel        = openai.GPT4oMini
	defaultSystemPrompt = "You are a helpful Discord assistant."
	defaultMaxTokens    = 250
)

// Config holds configuration for the OpenAI-backed client
type Config struct {
	// APIKey authenticates against the OpenAI API
	APIKey string

	// Model overrides the default chat model
	Model string

	// SystemPrompt overrides the default system instruction
	SystemPrompt string

	// MaxTokens bounds the generated output length
	MaxTokens int

	// BaseURL overrides the API endpoint, used in tests
	BaseURL string
}

// openaiClient implements the Client interface using the OpenAI chat API
type openaiClient struct {
	client       *openai.Client
	model        string
	systemPrompt string
	maxTokens    int
}

// NewOpenAI creates a new OpenAI-backed completion client
func NewOpenAI(cfg *Config) (*openaiClient, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.APIKey == "" {
		return nil, errors.New("API key cannot be empty")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	systemPrompt := cfg.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = defaultSystemPrompt
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	return &openaiClient{
		client:       openai.NewClientWithConfig(clientConfig),
		model:        model,
		systemPrompt: systemPrompt,
		maxTokens:    maxTokens,
	}, nil
}

// Complete generates a reply for a user prompt
func (c *openaiClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: c.systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
