package chat

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/sashabaranov/go-openai"

	"audio-summarizer/internal/app/api"
	apperrors "audio-summarizer/internal/app/errors"
)

// Config selects the chat model used for summaries.
type Config struct {
	Model string `yaml:"model"`
	Seed  int    `yaml:"seed"`
}

// Summarizer produces summaries with OpenAI chat completions.
type Summarizer struct {
	client *openai.Client
	config Config
}

var _ api.Summarizer = (*Summarizer)(nil)

// NewSummarizer creates a chat-backed Summarizer.
func NewSummarizer(client *openai.Client, config Config) *Summarizer {
	if config.Model == "" {
		config.Model = openai.GPT4oMini
	}
	if config.Seed == 0 {
		config.Seed = api.DefaultSeed
	}
	return &Summarizer{client: client, config: config}
}

// Request builds the chat completion request for text.
func (s *Summarizer) Request(text string, bounds api.LengthBounds) openai.ChatCompletionRequest {
	seed := s.config.Seed
	return openai.ChatCompletionRequest{
		Model: s.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: api.SummaryPrompt(bounds)},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		// A zero temperature is dropped by omitempty and the API would
		// fall back to its sampling default.
		Temperature: math.SmallestNonzeroFloat32,
		Seed:        &seed,
		MaxTokens:   bounds.Max * 2,
	}
}

// Summarize condenses text within bounds.
func (s *Summarizer) Summarize(ctx context.Context, text string, bounds api.LengthBounds) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, s.Request(text, bounds))
	if err != nil {
		return "", apperrors.Mark(fmt.Errorf("createChatCompletion failed: %w", err), apperrors.ErrSummarization)
	}

	if len(resp.Choices) == 0 {
		return "", apperrors.Mark(apperrors.ErrEmptyResponse, apperrors.ErrSummarization)
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", apperrors.Mark(apperrors.ErrEmptyResponse, apperrors.ErrSummarization)
	}
	return summary, nil
}
