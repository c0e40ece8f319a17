package main

import (
	"github.com/spf13/cobra"

	"github.com/honeycarbs/jobspy-proxy/internal/config"
	"github.com/honeycarbs/jobspy-proxy/pkg/logging"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "jobspy-proxy",
	Short: "HTTP proxy for LinkedIn and Indeed job scrapes",
	Long:  "jobspy-proxy validates job search queries, forwards them to a JobSpy API and returns normalized JSON.",
	// With no subcommand the binary serves HTTP.
	RunE:         runServe,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to YAML config (default: "+config.EnvConfigPath+" env var)")
}

func setup() (config.Config, *logging.Logger, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return cfg, nil, err
	}

	logger := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	return cfg, logger, nil
}
