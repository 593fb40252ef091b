// Package gemini implements the Summarizer interface on Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"audio-summarizer/internal/app/api"
	apperrors "audio-summarizer/internal/app/errors"
)

const DefaultModel = "gemini-2.5-flash"

// Config selects the Gemini model and endpoint.
type Config struct {
	APIKey  string
	Model   string
	Seed    int32
	BaseURL string
}

// Summarizer produces summaries with Gemini GenerateContent.
type Summarizer struct {
	client *genai.Client
	model  string
	seed   int32
}

var _ api.Summarizer = (*Summarizer)(nil)

// NewSummarizer creates the genai client for cfg.
func NewSummarizer(ctx context.Context, cfg Config) (*Summarizer, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, apperrors.Wrap(apperrors.ErrMissingAPIKey, "GEMINI_API_KEY is not set")
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Seed == 0 {
		cfg.Seed = api.DefaultSeed
	}

	return &Summarizer{client: client, model: cfg.Model, seed: cfg.Seed}, nil
}

// GenerateConfig disables sampling and caps output for bounds.
func GenerateConfig(bounds api.LengthBounds, seed int32) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: api.SummaryPrompt(bounds)}},
		},
		Temperature:     genai.Ptr[float32](0),
		Seed:            genai.Ptr(seed),
		MaxOutputTokens: int32(bounds.Max * 2),
	}
}

// Summarize condenses text within bounds.
func (s *Summarizer) Summarize(ctx context.Context, text string, bounds api.LengthBounds) (string, error) {
	result, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(text), GenerateConfig(bounds, s.seed))
	if err != nil {
		return "", apperrors.Mark(fmt.Errorf("generate content: %w", err), apperrors.ErrSummarization)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", apperrors.Mark(apperrors.ErrEmptyResponse, apperrors.ErrSummarization)
	}

	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			sb.WriteString(part.Text)
		}
	}

	summary := strings.TrimSpace(sb.String())
	if summary == "" {
		return "", apperrors.Mark(apperrors.ErrEmptyResponse, apperrors.ErrSummarization)
	}
	return summary, nil
}
