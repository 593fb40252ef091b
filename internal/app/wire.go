//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"audio-summarizer/internal/app/pipeline"
	"audio-summarizer/internal/app/registry"
	"audio-summarizer/internal/config"
)

// InitializeRunner wires a pipeline Runner over lazily loaded model handles.
func InitializeRunner(cfg *config.Config, logger *zap.Logger, reg prometheus.Registerer) (*pipeline.Runner, func()) {
	wire.Build(
		provideRegistry,
		provideOptions,
		pipeline.NewMetrics,
		pipeline.NewRunner,
		wire.Bind(new(pipeline.Handles), new(*registry.Registry)),
	)
	return nil, nil
}
