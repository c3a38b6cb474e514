package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"cashflowstory/internal/validation"
)

var (
	computeFile    string
	computeFormat  string
	computeOut     string
	computeCompany string
)

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute metrics for periods read from a file",
	Long: `Reads one or more reporting periods and computes every metric.
The first period has no revenue growth; each later period grows
against the one before it.

Input files:
  .json / .yaml  {"company_name": ..., "periods": [...]} or a bare list of periods
  .xlsx          an "Inputs" sheet with a header row (period, revenue, ...)

Examples:
  cashflow compute --file periods.yaml
  cashflow compute --file periods.json --format json
  cashflow compute --file books.xlsx --format xlsx --out analytics.xlsx`,
	Args: cobra.NoArgs,
	RunE: runCompute,
}

func init() {
	rootCmd.AddCommand(computeCmd)

	computeCmd.Flags().StringVarP(&computeFile, "file", "f", "", "Input file (.json, .yaml, .yml or .xlsx)")
	computeCmd.Flags().StringVar(&computeFormat, "format", formatTable, "Output format: table, json, csv or xlsx")
	computeCmd.Flags().StringVarP(&computeOut, "out", "o", "", "Write output to this file instead of stdout")
	computeCmd.Flags().StringVar(&computeCompany, "company", "", "Company name, overrides the one in the file")
	_ = computeCmd.MarkFlagRequired("file")
}

func runCompute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if err := validation.NewFileValidator(newLogger(cmd), 0).ValidateInputFile(computeFile); err != nil {
		return err
	}

	declared, periods, err := loadPeriods(computeFile)
	if err != nil {
		return err
	}

	svc := newAnalyticsService(cmd)
	result, err := svc.CalculateBatch(ctx, companyName(computeCompany, declared, periods), periods)
	if err != nil {
		return fmt.Errorf("compute: %w", err)
	}

	return writeResult(cmd, svc, result, computeFormat, computeOut)
}
