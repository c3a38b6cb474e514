package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"cashflowstory/internal/analytics"
	"cashflowstory/internal/infrastructure"
	"cashflowstory/internal/services"
	"cashflowstory/pkg/contracts"
)

var (
	verbose     bool
	concurrency int
	maxPeriods  int
)

var rootCmd = &cobra.Command{
	Use:   "cashflow",
	Short: "Cash Flow Story - financial ratio analytics",
	Long: `cashflow computes the 21 cash flow story metrics for one or more
reporting periods and explains what each metric means.

Commands:
  compute  - metrics for periods read from a JSON, YAML or XLSX file
  demo     - the Rebeccas Coffee sample company
  explain  - plain-language explanation of a metric`,
	Version:       contracts.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

func init() {
	rootCmd.SetVersionTemplate(contracts.GetFullVersionString() + "\n")

	// one trace id per invocation
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cmd.SetContext(infrastructure.EnsureTraceID(cmd.Context()))
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose log output on stderr")
	rootCmd.PersistentFlags().IntVar(&concurrency, "concurrency", 4, "Worker count for multi-period evaluation")
	rootCmd.PersistentFlags().IntVar(&maxPeriods, "max-periods", services.DefaultMaxPeriods, "Maximum periods accepted in one series")
}

// newLogger writes JSON logs to stderr, warnings only unless --verbose
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := "warn"
	if verbose {
		level = "debug"
	}
	return infrastructure.NewLogger(level, cmd.ErrOrStderr())
}

// newAnalyticsService wires the engine the same way the server does, minus metrics
func newAnalyticsService(cmd *cobra.Command) *services.AnalyticsService {
	logger := newLogger(cmd)

	evaluator := analytics.NewEvaluator(
		analytics.WithConcurrency(concurrency),
		analytics.WithLogger(logger),
	)
	return services.NewAnalyticsService(evaluator, nil, logger, services.WithMaxPeriods(maxPeriods))
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
