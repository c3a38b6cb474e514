package exporter

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"cashflowstory/internal/analytics"
)

// Workbook sheet names
const (
	SheetInputs       = "Inputs"
	SheetMetrics      = "Metrics"
	SheetExplanations = "Explanations"
)

// numFmtTwoDecimals is the built-in "0.00" number format
const numFmtTwoDecimals = 2

// XLSXWriter exports a series as an Excel workbook
type XLSXWriter struct{}

// NewXLSXWriter creates a new workbook writer
func NewXLSXWriter() *XLSXWriter {
	return &XLSXWriter{}
}

// WriteSeries builds the Inputs, Metrics and Explanations sheets and writes the workbook to w
func (x *XLSXWriter) WriteSeries(w io.Writer, records []analytics.AnalyticsRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetInputs); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{SheetMetrics, SheetExplanations} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	decimalStyle, err := f.NewStyle(&excelize.Style{NumFmt: numFmtTwoDecimals})
	if err != nil {
		return fmt.Errorf("failed to create number style: %w", err)
	}

	if err := writeInputsSheet(f, records); err != nil {
		return err
	}
	if err := writeMetricsSheet(f, records, decimalStyle); err != nil {
		return err
	}
	if err := writeExplanationsSheet(f); err != nil {
		return err
	}

	for _, sheet := range []string{SheetInputs, SheetMetrics, SheetExplanations} {
		if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
			return fmt.Errorf("failed to style header of %s: %w", sheet, err)
		}
		if err := f.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return fmt.Errorf("failed to freeze header of %s: %w", sheet, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeInputsSheet(f *excelize.File, records []analytics.AnalyticsRecord) error {
	if err := setRow(f, SheetInputs, 1, toCells(inputHeaders())); err != nil {
		return err
	}

	for i, rec := range records {
		p := rec.Period
		row := make([]interface{}, 0, 3+len(inputColumns))
		var seq interface{}
		if p.Sequence != 0 {
			seq = p.Sequence
		}
		row = append(row, p.CompanyName, p.Period, seq)
		for _, col := range inputColumns {
			row = append(row, col.get(&p))
		}
		if err := setRow(f, SheetInputs, i+2, row); err != nil {
			return err
		}
	}

	return f.SetColWidth(SheetInputs, "A", "A", 24)
}

func writeMetricsSheet(f *excelize.File, records []analytics.AnalyticsRecord, decimalStyle int) error {
	headers := append([]string{colPeriod}, metricHeaders()...)
	if err := setRow(f, SheetMetrics, 1, toCells(headers)); err != nil {
		return err
	}

	for i, rec := range records {
		row := make([]interface{}, 0, len(headers))
		row = append(row, rec.Period.Period)
		for _, mv := range rec.Metrics.Values() {
			row = append(row, mv.Value)
		}
		if err := setRow(f, SheetMetrics, i+2, row); err != nil {
			return err
		}
	}

	if len(records) == 0 {
		return nil
	}
	last, err := excelize.CoordinatesToCellName(len(headers), len(records)+1)
	if err != nil {
		return fmt.Errorf("failed to resolve metrics range: %w", err)
	}
	return f.SetCellStyle(SheetMetrics, "B2", last, decimalStyle)
}

func writeExplanationsSheet(f *excelize.File) error {
	if err := setRow(f, SheetExplanations, 1, []interface{}{"metric", "group", "unit", "explanation"}); err != nil {
		return err
	}
	for i, def := range analytics.Definitions() {
		row := []interface{}{def.Name.String(), string(def.Group), string(def.Unit), def.Explanation}
		if err := setRow(f, SheetExplanations, i+2, row); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(SheetExplanations, "A", "A", 28); err != nil {
		return err
	}
	return f.SetColWidth(SheetExplanations, "D", "D", 90)
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}
