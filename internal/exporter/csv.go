package exporter

import (
	"encoding/csv"
	"fmt"
	"io"

	"cashflowstory/internal/analytics"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter provides CSV export functionality
type CSVWriter struct {
	bom bool
}

// CSVOption configures a CSVWriter
type CSVOption func(*CSVWriter)

// WithBOM prefixes the output with a UTF-8 BOM for Excel compatibility
func WithBOM(enabled bool) CSVOption {
	return func(w *CSVWriter) {
		w.bom = enabled
	}
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(opts ...CSVOption) *CSVWriter {
	w := &CSVWriter{}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteSeries writes one row per period: identity, inputs, then metrics
func (c *CSVWriter) WriteSeries(w io.Writer, records []analytics.AnalyticsRecord) error {
	stream, err := c.CreateStreamWriter(w, SeriesHeaders())
	if err != nil {
		return err
	}

	for i, rec := range records {
		if err := stream.WriteRecord(seriesRow(rec)); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	return stream.Close()
}

func seriesRow(rec analytics.AnalyticsRecord) []string {
	p := rec.Period
	row := make([]string, 0, 3+len(inputColumns)+len(analytics.AllMetrics))
	row = append(row, p.CompanyName, p.Period, formatInt(p.Sequence))
	for _, col := range inputColumns {
		row = append(row, formatInput(col.get(&p)))
	}
	for _, mv := range rec.Metrics.Values() {
		row = append(row, formatFloat(mv.Value))
	}
	return row
}

// StreamWriter provides streaming CSV writing for large datasets
type StreamWriter struct {
	writer *csv.Writer
}

// CreateStreamWriter writes the optional BOM and headers, then returns a
// writer for the remaining rows
func (c *CSVWriter) CreateStreamWriter(w io.Writer, headers []string) (*StreamWriter, error) {
	if c.bom {
		if _, err := w.Write(utf8BOM); err != nil {
			return nil, fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(w)
	if len(headers) > 0 {
		if err := writer.Write(headers); err != nil {
			return nil, fmt.Errorf("failed to write headers: %w", err)
		}
	}

	return &StreamWriter{writer: writer}, nil
}

// WriteRecord writes a single record to the stream
func (s *StreamWriter) WriteRecord(record []string) error {
	return s.writer.Write(record)
}

// Close flushes the stream writer
func (s *StreamWriter) Close() error {
	s.writer.Flush()
	return s.writer.Error()
}
