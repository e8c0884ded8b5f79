package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thaitax/pit-calculator/internal/config"
	"github.com/thaitax/pit-calculator/internal/output"
)

func newExampleCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example filing configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if err := output.SaveConfiguration(cfg, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "output", "o", "example_config.yaml", "destination file")
	return cmd
}
