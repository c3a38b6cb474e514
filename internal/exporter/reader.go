package exporter

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"cashflowstory/internal/analytics"
)

// ErrMissingColumn is returned when a workbook lacks a required header
var ErrMissingColumn = errors.New("required column missing")

// ReadPeriodsXLSX reads period figures from a workbook. The Inputs sheet is
// used when present, otherwise the first sheet. The first non-empty row is
// the header; columns are matched by name, case-insensitively, and unknown
// columns are ignored. Empty numeric cells read as zero.
func ReadPeriodsXLSX(r io.Reader) ([]analytics.PeriodRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	for _, name := range f.GetSheetList() {
		if strings.EqualFold(name, SheetInputs) {
			sheet = name
			break
		}
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}

	headerRow := -1
	for i, row := range rows {
		if !blankRow(row) {
			headerRow = i
			break
		}
	}
	if headerRow < 0 {
		return nil, fmt.Errorf("sheet %s is empty: %w", sheet, analytics.ErrEmptySeries)
	}

	columns := make(map[string]int)
	for j, header := range rows[headerRow] {
		columns[normalizeHeader(header)] = j
	}
	for _, required := range []string{colPeriod, "revenue"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	var periods []analytics.PeriodRecord
	for i := headerRow + 1; i < len(rows); i++ {
		row := rows[i]
		if blankRow(row) {
			continue
		}
		p, err := parseRow(row, columns)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		periods = append(periods, p)
	}

	return periods, nil
}

func parseRow(row []string, columns map[string]int) (analytics.PeriodRecord, error) {
	cell := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	p := analytics.PeriodRecord{
		CompanyName: cell(colCompany),
		Period:      cell(colPeriod),
	}

	if raw := cell(colSequence); raw != "" {
		seq, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return p, fmt.Errorf("%s: invalid number %q", colSequence, raw)
		}
		p.Sequence = int(seq)
	}

	for _, col := range inputColumns {
		raw := strings.ReplaceAll(cell(col.name), ",", "")
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return p, fmt.Errorf("%s: invalid number %q", col.name, raw)
		}
		col.set(&p, v)
	}

	return p, nil
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(h)
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
