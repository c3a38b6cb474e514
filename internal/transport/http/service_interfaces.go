package http

import (
	"context"
	"io"

	"cashflowstory/internal/analytics"
	"cashflowstory/internal/demo"
	"cashflowstory/internal/services"
)

// AnalyticsServiceInterface defines the interface for metric calculations
type AnalyticsServiceInterface interface {
	Calculate(ctx context.Context, current analytics.PeriodRecord, previous *analytics.PeriodRecord) (*services.CalculationResult, error)
	CalculateBatch(ctx context.Context, companyName string, periods []analytics.PeriodRecord) (*services.BatchResult, error)
	Demo(ctx context.Context) (*services.BatchResult, error)
	DemoSummary(ctx context.Context) demo.Summary
	Explain(ctx context.Context, name string) (string, error)
	Definitions(ctx context.Context) []analytics.MetricDefinition
	Export(ctx context.Context, records []analytics.AnalyticsRecord, format string, w io.Writer) error
}

// HealthServiceInterface defines the interface for health checks
type HealthServiceInterface interface {
	HealthCheck(ctx context.Context) services.HealthStatus
	ReadinessCheck(ctx context.Context) services.HealthStatus
	LivenessCheck(ctx context.Context) services.HealthStatus
	Version() services.VersionStatus
}
