package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thaitax/pit-calculator/internal/calculation"
	"github.com/thaitax/pit-calculator/internal/config"
	"github.com/thaitax/pit-calculator/internal/domain"
	"github.com/thaitax/pit-calculator/internal/output"
)

func newCalculateCmd(root *rootOptions) *cobra.Command {
	var inputFile, format, outputDir string

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate every filing in a configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := root.logger(cmd)

			cfg, err := config.NewInputParser().LoadFromFile(inputFile)
			if err != nil {
				return err
			}

			engine := calculation.NewCalculationEngine()
			engine.SetLogger(logger)
			results, err := engine.RunFilings(cfg)
			if err != nil {
				return err
			}

			if outputDir != "" {
				files, err := output.GenerateReport(results, format, outputDir)
				if err != nil {
					return err
				}
				for _, f := range files {
					logger.WithField("file", f).Info("report written")
				}
				return nil
			}
			return writeReport(cmd, results, format)
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "filing configuration file (YAML or JSON)")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "write the report to a file in this directory instead of stdout")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

// writeReport prints a formatted comparison to the command's stdout.
func writeReport(cmd *cobra.Command, results *domain.FilingComparison, format string) error {
	f := output.GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, format)
	}
	data, err := f.Format(results)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
