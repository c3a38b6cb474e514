package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cashflowstory/internal/analytics"
)

var explainCmd = &cobra.Command{
	Use:   "explain [metric]",
	Short: "Explain what a metric means",
	Long: `Prints the plain-language explanation of a metric.
Without an argument every metric is listed with its group and unit.

Examples:
  cashflow explain
  cashflow explain gross_margin_percent`,
	Args: cobra.MaximumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(analytics.AllMetrics))
		for _, m := range analytics.AllMetrics {
			if strings.HasPrefix(m.String(), toComplete) {
				names = append(names, m.String())
			}
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	svc := newAnalyticsService(cmd)
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		var group analytics.MetricGroup
		for _, def := range svc.Definitions(ctx) {
			if def.Group != group {
				group = def.Group
				fmt.Fprintln(out, titleStyle.Render(string(group)))
			}
			fmt.Fprintf(out, "%s %s\n", metricStyle.Render(def.Name.String()), groupStyle.Render(string(def.Unit)))
			fmt.Fprintf(out, "  %s\n", def.Explanation)
		}
		return nil
	}

	name := args[0]
	explanation, err := svc.Explain(ctx, name)
	fmt.Fprintf(out, "%s\n  %s\n", headerStyle.Render(name), explanation)
	return err
}
