// Package services implements the business logic layer of the Cash Flow Story
// API. Handlers depend on the services through small interfaces, which keeps
// HTTP concerns out of the metric calculations.
//
// # Available Services
//
//	- AnalyticsService: validates period figures, computes single periods and
//	  series, serves metric explanations and exports series as CSV or XLSX
//	- HealthService: provides health, readiness, liveness and version checks
//
// # Error Handling
//
// Services return domain errors wrapped with %w so handlers can map them:
//
//	- *analytics.ValidationError and ErrEmptySeries for rejected input
//	- ErrTooManyPeriods when a batch exceeds the configured limit
//	- ErrUnknownMetric for explanation lookups outside the 21 metrics
//	- ErrUnsupportedFormat for export formats other than csv and xlsx
//	- context errors when a batch evaluation is cancelled
package services
