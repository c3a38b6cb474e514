package services

import (
	"errors"

	"cashflowstory/internal/analytics"
	"cashflowstory/internal/exporter"
)

// Analytics service errors
var (
	// Input errors
	ErrEmptySeries    = analytics.ErrEmptySeries
	ErrTooManyPeriods = errors.New("too many periods")

	// Lookup errors
	ErrUnknownMetric = errors.New("unknown metric")

	// Export errors
	ErrUnsupportedFormat = exporter.ErrUnsupportedFormat
)
