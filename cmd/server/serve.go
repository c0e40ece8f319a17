package main

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/honeycarbs/jobspy-proxy/internal/app"
	"github.com/honeycarbs/jobspy-proxy/pkg/shutdown"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scrape endpoints over HTTP",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	srv, err := app.InitializeServer(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize server", "err", err)
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = shutdown.Graceful(
			ctx,
			[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
			cfg.Server.ShutdownTimeout,
			logger,
			srv,
		)
	}()

	logger.Info("jobspy-proxy starting", "addr", srv.Addr(), "jobspy", cfg.JobSpy.BaseURL)

	if err := srv.Run(); err != nil {
		logger.Error("HTTP server exited with error", "err", err)
		cancel()
		<-done
		return err
	}

	<-done
	logger.Info("HTTP server stopped")
	return nil
}
