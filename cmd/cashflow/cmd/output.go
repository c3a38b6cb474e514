package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"cashflowstory/internal/analytics"
	"cashflowstory/internal/exporter"
	"cashflowstory/internal/services"
	"cashflowstory/internal/validation"
)

// Output formats understood by compute and demo
const (
	formatTable = "table"
	formatJSON  = "json"
)

const (
	metricColumnWidth = 28
	periodColumnWidth = 12
)

var (
	colorPrimary = lipgloss.Color("#8B5CF6")
	colorMuted   = lipgloss.Color("#6B7280")

	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true)

	groupStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	metricStyle = lipgloss.NewStyle().Width(metricColumnWidth)
	valueStyle  = lipgloss.NewStyle().Width(periodColumnWidth).Align(lipgloss.Right)
)

func outputFormats() []string {
	return append([]string{formatTable, formatJSON}, exporter.SupportedFormats()...)
}

// writeResult renders a computed series to --out or, when empty, to the command's stdout
func writeResult(cmd *cobra.Command, svc *services.AnalyticsService, result *services.BatchResult, format, out string) error {
	ctx := cmd.Context()
	w := cmd.OutOrStdout()
	format = strings.ToLower(strings.TrimSpace(format))

	if out == "" && format == string(exporter.FormatXLSX) {
		return fmt.Errorf("xlsx output needs --out")
	}

	if out != "" {
		if err := validation.NewFileValidator(newLogger(cmd), 0).ValidateOutputFile(out); err != nil {
			return err
		}
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	switch format {
	case formatTable:
		_, err := io.WriteString(w, renderTable(result))
		return err
	case formatJSON:
		return writeJSON(w, result)
	default:
		if err := svc.Export(ctx, result.Records, format, w); err != nil {
			return fmt.Errorf("%w (want one of %s)", err, strings.Join(outputFormats(), ", "))
		}
		return nil
	}
}

type jsonResult struct {
	CompanyName  string                      `json:"company_name"`
	TotalPeriods int                         `json:"total_periods"`
	CalculatedAt time.Time                   `json:"calculated_at"`
	Periods      []analytics.AnalyticsRecord `json:"periods"`
}

func writeJSON(w io.Writer, v interface{}) error {
	if result, ok := v.(*services.BatchResult); ok {
		v = jsonResult{
			CompanyName:  result.CompanyName,
			TotalPeriods: len(result.Records),
			CalculatedAt: result.CalculatedAt,
			Periods:      result.Records,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderTable lays the series out with one row per metric and one column per period
func renderTable(result *services.BatchResult) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(result.CompanyName))
	b.WriteString("\n\n")

	header := metricStyle.Render("METRIC")
	for _, rec := range result.Records {
		header += valueStyle.Render(rec.Period.Period)
	}
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", metricColumnWidth+periodColumnWidth*len(result.Records)))
	b.WriteString("\n")

	var group analytics.MetricGroup
	for _, m := range analytics.AllMetrics {
		if m.Group() != group {
			group = m.Group()
			b.WriteString(groupStyle.Render(string(group)))
			b.WriteString("\n")
		}

		row := metricStyle.Render(m.String())
		for _, rec := range result.Records {
			v, _ := rec.Metrics.Value(m)
			row += valueStyle.Render(fmt.Sprintf("%.2f", v))
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	return b.String()
}
