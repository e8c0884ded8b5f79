package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thaitax/pit-calculator/internal/calculation"
	"github.com/thaitax/pit-calculator/internal/config"
	"github.com/thaitax/pit-calculator/internal/logging"
	"github.com/thaitax/pit-calculator/internal/server"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var (
		port    int
		envFile string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			envLoaded, err := config.LoadEnvFile(envFile)
			if err != nil {
				return err
			}
			cfg, err := config.LoadAppConfig()
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.HTTP.Port = port
			}
			if root.logLevel != "" {
				cfg.Logging.Level = root.logLevel
			}
			if root.logFormat != "" {
				cfg.Logging.Format = root.logFormat
			}
			logger := logging.New(cfg.Logging)
			if envLoaded {
				logger.WithField("file", envFile).Debug("loaded environment file")
			}

			engine := calculation.NewCalculationEngine()
			engine.SetLogger(logger)
			router := server.NewRouter(logger, server.RouterDependencies{
				Tax:            server.NewTaxHandlers(logger, engine),
				AllowedOrigins: cfg.HTTP.AllowedOrigins,
			})
			srv := server.New(logger, cfg.HTTP, router)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			return <-errCh
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port; overrides SERVER_PORT")
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file read before the environment; skipped when absent")
	return cmd
}
