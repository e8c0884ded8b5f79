package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/thaitax/pit-calculator/internal/config"
	"github.com/thaitax/pit-calculator/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "thaitax",
		Short:         "Thai personal income tax calculator",
		Long:          "Calculates Thai personal income tax from salary, deductions, donations and withholding tax.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error); defaults to LOG_LEVEL or info")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "log format (text, json); defaults to LOG_FORMAT or text")

	cmd.AddCommand(
		newCalculateCmd(opts),
		newQuickCmd(opts),
		newServeCmd(opts),
		newExampleCmd(),
		newBracketsCmd(),
	)
	return cmd
}

// loggingConfig merges flag values over the environment.
func (o *rootOptions) loggingConfig() config.LoggingConfig {
	cfg := config.LoggingConfig{
		Level:  os.Getenv("LOG_LEVEL"),
		Format: os.Getenv("LOG_FORMAT"),
	}
	if o.logLevel != "" {
		cfg.Level = o.logLevel
	}
	if o.logFormat != "" {
		cfg.Format = o.logFormat
	}
	return cfg
}

func (o *rootOptions) logger(cmd *cobra.Command) *logrus.Logger {
	return logging.NewWithOutput(o.loggingConfig(), cmd.ErrOrStderr())
}
