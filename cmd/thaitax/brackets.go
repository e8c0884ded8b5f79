package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/thaitax/pit-calculator/internal/calculation"
	"github.com/thaitax/pit-calculator/internal/output"
)

func newBracketsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "brackets",
		Short: "Print the progressive tax schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, rows := calculation.ApplyProgressiveBrackets(decimal.Zero, calculation.ThaiBrackets())

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NET INCOME (THB)\tRATE")
			for _, r := range rows {
				fmt.Fprintf(w, "%s\t%s\n", r.Range, output.FormatRate(r.Rate))
			}
			return w.Flush()
		},
	}
}
