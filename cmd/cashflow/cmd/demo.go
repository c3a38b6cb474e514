package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	demoFormat  string
	demoOut     string
	demoSummary bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Metrics for the Rebeccas Coffee sample company",
	Long: `Computes the four-year Rebeccas Coffee sample series.

Examples:
  cashflow demo
  cashflow demo --summary
  cashflow demo --format csv --out rebeccas.csv`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().StringVar(&demoFormat, "format", formatTable, "Output format: table, json, csv or xlsx")
	demoCmd.Flags().StringVarP(&demoOut, "out", "o", "", "Write output to this file instead of stdout")
	demoCmd.Flags().BoolVar(&demoSummary, "summary", false, "Print the analyst summary instead of the metrics")
}

func runDemo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	svc := newAnalyticsService(cmd)

	if demoSummary {
		return writeJSON(cmd.OutOrStdout(), svc.DemoSummary(ctx))
	}

	result, err := svc.Demo(ctx)
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}

	return writeResult(cmd, svc, result, demoFormat, demoOut)
}
