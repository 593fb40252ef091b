package registry

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"audio-summarizer/internal/app/api"
	"audio-summarizer/internal/app/api/gemini"
	openaiclient "audio-summarizer/internal/app/api/openai"
	"audio-summarizer/internal/app/api/openai/chat"
	"audio-summarizer/internal/app/api/openai/whisper"
	"audio-summarizer/internal/app/api/whisper_cpp"
	"audio-summarizer/internal/config"
)

// FromConfig builds a registry whose factories follow the configured providers.
func FromConfig(cfg *config.Config, logger *zap.Logger) *Registry {
	return New(TranscriberFor(cfg.Transcriber, logger), SummarizerFor(cfg.Summarizer), logger)
}

// TranscriberFor returns the factory for the configured transcriber provider.
func TranscriberFor(cfg config.TranscriberConfig, logger *zap.Logger) TranscriberFactory {
	return func(ctx context.Context) (api.Transcriber, error) {
		switch cfg.Provider {
		case config.ProviderOpenAI:
			client, err := openaiclient.NewClient(openaiclient.ClientConfig{APIKey: cfg.APIKey, BaseURL: cfg.BaseURL})
			if err != nil {
				return nil, err
			}
			return whisper.NewRemoteTranscriber(client, whisper.Config{
				Model:    cfg.Model,
				Language: cfg.Language,
				Prompt:   cfg.Prompt,
			}), nil
		case config.ProviderWhisperCpp:
			return whisper_cpp.NewLocalTranscriber(whisper_cpp.Config{
				BinaryPath: cfg.BinaryPath,
				ModelPath:  cfg.ModelPath,
				Language:   cfg.Language,
				Prompt:     cfg.Prompt,
				Threads:    cfg.Threads,
			}, logger.Named("whisper_cpp")), nil
		default:
			return nil, fmt.Errorf("unsupported transcriber provider: %s", cfg.Provider)
		}
	}
}

// SummarizerFor returns the factory for the configured summarizer provider.
func SummarizerFor(cfg config.SummarizerConfig) SummarizerFactory {
	return func(ctx context.Context) (api.Summarizer, error) {
		switch cfg.Provider {
		case config.ProviderOpenAI:
			client, err := openaiclient.NewClient(openaiclient.ClientConfig{APIKey: cfg.APIKey, BaseURL: cfg.BaseURL})
			if err != nil {
				return nil, err
			}
			return chat.NewSummarizer(client, chat.Config{Model: cfg.Model, Seed: cfg.Seed}), nil
		case config.ProviderGemini:
			summarizer, err := gemini.NewSummarizer(ctx, gemini.Config{
				APIKey:  cfg.APIKey,
				Model:   cfg.Model,
				Seed:    int32(cfg.Seed),
				BaseURL: cfg.BaseURL,
			})
			if err != nil {
				return nil, err
			}
			return summarizer, nil
		default:
			return nil, fmt.Errorf("unsupported summarizer provider: %s", cfg.Provider)
		}
	}
}
