package exporter

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cashflowstory/internal/analytics"
)

// Format identifies an export file format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ErrUnsupportedFormat is returned for formats other than csv and xlsx
var ErrUnsupportedFormat = errors.New("unsupported export format")

// SupportedFormats lists the accepted format names
func SupportedFormats() []string {
	return []string{string(FormatCSV), string(FormatXLSX)}
}

// ParseFormat normalises a user supplied format name
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// ContentType returns the MIME type of the format
func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/csv; charset=utf-8"
	}
}

// Filename builds a download name such as "rebeccas-coffee-analytics.csv"
func (f Format) Filename(company string) string {
	base := strings.ToLower(strings.TrimSpace(company))
	base = strings.Join(strings.FieldsFunc(base, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	}), "-")
	if base == "" {
		base = "cashflow"
	}
	return fmt.Sprintf("%s-analytics.%s", base, f)
}

// SeriesWriter writes an analytics series to w
type SeriesWriter interface {
	WriteSeries(w io.Writer, records []analytics.AnalyticsRecord) error
}

// NewWriter returns the writer for format
func NewWriter(format Format) (SeriesWriter, error) {
	switch format {
	case FormatCSV:
		return NewCSVWriter(WithBOM(true)), nil
	case FormatXLSX:
		return NewXLSXWriter(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// formatFloat formats a metric with exactly 2 decimal places
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', analytics.Precision, 64)
}

// formatInput formats a raw input figure without losing precision
func formatInput(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatInt formats an int value, leaving zero blank
func formatInt(i int) string {
	if i == 0 {
		return ""
	}
	return strconv.Itoa(i)
}
