// Package exporter writes analytics series as downloadable files and reads
// period figures back from spreadsheets.
//
// CSVWriter streams one row per period with the input figures followed by
// the 21 metrics. It optionally prefixes a UTF-8 BOM so Excel detects the
// encoding.
//
// XLSXWriter builds a workbook with three sheets: Inputs, Metrics and
// Explanations. ReadPeriodsXLSX parses the Inputs sheet (or the first sheet)
// of such a workbook back into period records.
//
// Example usage:
//
//	w, err := exporter.NewWriter(exporter.FormatCSV)
//	if err != nil {
//		return err
//	}
//	err = w.WriteSeries(out, records)
package exporter
