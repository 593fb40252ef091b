package app

import (
	"go.uber.org/zap"

	"audio-summarizer/internal/app/api"
	"audio-summarizer/internal/app/pipeline"
	"audio-summarizer/internal/app/registry"
	"audio-summarizer/internal/config"
)

// provideRegistry builds the model handles for the configured providers. The
// cleanup releases them on shutdown.
func provideRegistry(cfg *config.Config, logger *zap.Logger) (*registry.Registry, func()) {
	r := registry.FromConfig(cfg, logger.Named("registry"))
	return r, func() {
		if err := r.Close(); err != nil {
			logger.Warn("failed to close model registry", zap.Error(err))
		}
	}
}

func provideOptions(cfg *config.Config) pipeline.Options {
	return pipeline.Options{
		OutputDir: cfg.OutputDir,
		Bounds: api.LengthBounds{
			Min: cfg.Summarizer.MinLength,
			Max: cfg.Summarizer.MaxLength,
		},
	}
}
