// Package bootstrap loads configuration and logging shared by the subcommands.
package bootstrap

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"audio-summarizer/internal/app/common"
	"audio-summarizer/internal/config"
)

const (
	ConfigFlag  = "config"
	VerboseFlag = "verbose"
)

// Load reads the config named by --config and builds a logger. --verbose
// forces debug level.
func Load(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	path, _ := cmd.Flags().GetString(ConfigFlag)
	verbose, _ := cmd.Flags().GetBool(VerboseFlag)

	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err := common.NewLogger(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
