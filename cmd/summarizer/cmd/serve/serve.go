package serve

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"audio-summarizer/cmd/summarizer/cmd/bootstrap"
	"audio-summarizer/internal/api/server"
	"audio-summarizer/internal/api/v1/services"
	"audio-summarizer/internal/app"
)

var (
	host            string
	port            string
	shutdownTimeout time.Duration
)

func init() {
	Cmd.Flags().StringVar(&host, "host", "", "listen host, overrides server.host")
	Cmd.Flags().StringVarP(&port, "port", "p", "", "listen port, overrides server.port")
	Cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 15*time.Second, "grace period for in-flight requests")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web page and JSON API",
	Long: `Start the web page and JSON API.

- GET / renders the upload form
- POST /api/v1/runs runs the pipeline on an uploaded file
- /metrics exposes Prometheus metrics and /swagger the API docs`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap.Load(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		if host != "" {
			cfg.Server.Host = host
		}
		if port != "" {
			cfg.Server.Port = port
		}

		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		runner, cleanup := app.InitializeRunner(cfg, logger, registry)
		defer cleanup()

		runService := services.NewRunService(runner, logger)
		srv := server.NewServer(cfg.Server, runService, registry, logger)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errs := srv.Start()
		select {
		case err := <-errs:
			if err != nil {
				return err
			}
		case <-ctx.Done():
			logger.Info("signal received", zap.Error(context.Cause(ctx)))
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}
