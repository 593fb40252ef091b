package openai

import (
	"strings"

	"github.com/sashabaranov/go-openai"

	apperrors "audio-summarizer/internal/app/errors"
)

// ClientConfig holds what is needed to reach the OpenAI API or a compatible endpoint.
type ClientConfig struct {
	APIKey  string
	BaseURL string
}

// NewClient builds a go-openai client. Callers own the returned client; there
// is no package-level singleton.
func NewClient(cfg ClientConfig) (*openai.Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, apperrors.Wrap(apperrors.ErrMissingAPIKey, "OPENAI_API_KEY is not set")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	return openai.NewClientWithConfig(clientConfig), nil
}
