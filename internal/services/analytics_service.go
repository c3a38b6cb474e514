package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"cashflowstory/internal/analytics"
	"cashflowstory/internal/demo"
	"cashflowstory/internal/exporter"
	"cashflowstory/internal/infrastructure"
)

// DefaultMaxPeriods bounds the number of periods accepted in one batch
const DefaultMaxPeriods = 120

// Calculation modes recorded in metrics
const (
	modeSingle = "single"
	modeBatch  = "batch"
	modeDemo   = "demo"
)

// CalculationResult is one computed period together with its timestamp
type CalculationResult struct {
	Record       analytics.AnalyticsRecord
	CalculatedAt time.Time
}

// BatchResult is a computed series in chronological order
type BatchResult struct {
	CompanyName  string
	Records      []analytics.AnalyticsRecord
	CalculatedAt time.Time
}

// AnalyticsService computes cash flow metrics
type AnalyticsService struct {
	evaluator  *analytics.Evaluator
	metrics    *infrastructure.AnalyticsMetrics
	tracer     trace.Tracer
	maxPeriods int
	now        func() time.Time
	logger     *slog.Logger
}

// AnalyticsOption configures an AnalyticsService
type AnalyticsOption func(*AnalyticsService)

// WithMaxPeriods limits the size of a batch; n < 1 keeps the default
func WithMaxPeriods(n int) AnalyticsOption {
	return func(s *AnalyticsService) {
		if n > 0 {
			s.maxPeriods = n
		}
	}
}

// WithClock overrides the timestamp source
func WithClock(now func() time.Time) AnalyticsOption {
	return func(s *AnalyticsService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewAnalyticsService creates a new analytics service. A nil evaluator gets
// the default concurrency, nil metrics disable instrumentation.
func NewAnalyticsService(evaluator *analytics.Evaluator, metrics *infrastructure.AnalyticsMetrics, logger *slog.Logger, opts ...AnalyticsOption) *AnalyticsService {
	if logger == nil {
		logger = slog.Default()
	}
	if evaluator == nil {
		evaluator = analytics.NewEvaluator(analytics.WithLogger(logger))
	}

	s := &AnalyticsService{
		evaluator:  evaluator,
		metrics:    metrics,
		tracer:     otel.Tracer(infrastructure.MeterName),
		maxPeriods: DefaultMaxPeriods,
		now:        time.Now,
		logger:     logger.With(slog.String("component", "analytics_service")),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.logger.Info("AnalyticsService initialized",
		slog.Int("concurrency", evaluator.Concurrency()),
		slog.Int("max_periods", s.maxPeriods))

	return s
}

// Calculate validates and computes a single period. previous is optional and
// only feeds revenue growth.
func (s *AnalyticsService) Calculate(ctx context.Context, current analytics.PeriodRecord, previous *analytics.PeriodRecord) (*CalculationResult, error) {
	ctx, span := s.tracer.Start(ctx, "analytics.calculate",
		trace.WithAttributes(
			attribute.String("period", current.Period),
			attribute.Bool("has_previous", previous != nil),
		))
	defer span.End()

	start := time.Now()

	if err := s.validatePeriod(ctx, current, ""); err != nil {
		infrastructure.RecordCalculation(ctx, s.metrics, modeSingle, 0, time.Since(start), err)
		return nil, err
	}
	if previous != nil {
		if err := s.validatePeriod(ctx, *previous, "previous_period."); err != nil {
			infrastructure.RecordCalculation(ctx, s.metrics, modeSingle, 0, time.Since(start), err)
			return nil, err
		}
	}

	result := &CalculationResult{
		Record: analytics.AnalyticsRecord{
			Period:   current,
			Metrics:  analytics.Compute(current, previous),
			Previous: previous,
		},
		CalculatedAt: s.now().UTC(),
	}

	infrastructure.RecordCalculation(ctx, s.metrics, modeSingle, 1, time.Since(start), nil)
	s.logger.DebugContext(ctx, "period calculated",
		slog.String("company", current.CompanyName),
		slog.String("period", current.Period))

	return result, nil
}

// CalculateBatch validates a series, orders it chronologically and computes
// every period against its predecessor
func (s *AnalyticsService) CalculateBatch(ctx context.Context, companyName string, periods []analytics.PeriodRecord) (*BatchResult, error) {
	return s.calculateSeries(ctx, modeBatch, companyName, periods)
}

// Demo computes the Rebeccas Coffee sample series
func (s *AnalyticsService) Demo(ctx context.Context) (*BatchResult, error) {
	return s.calculateSeries(ctx, modeDemo, demo.CompanyName, demo.RebeccasCoffee())
}

// DemoSummary returns the analyst commentary for the demo company
func (s *AnalyticsService) DemoSummary(ctx context.Context) demo.Summary {
	return demo.RebeccasSummary()
}

func (s *AnalyticsService) calculateSeries(ctx context.Context, mode, companyName string, periods []analytics.PeriodRecord) (*BatchResult, error) {
	ctx, span := s.tracer.Start(ctx, "analytics.calculate_series",
		trace.WithAttributes(
			attribute.String("mode", mode),
			attribute.String("company", companyName),
			attribute.Int("periods", len(periods)),
		))
	defer span.End()

	start := time.Now()
	records, err := s.evaluateSeries(ctx, periods)
	infrastructure.RecordCalculation(ctx, s.metrics, mode, len(records), time.Since(start), err)
	if err != nil {
		infrastructure.RecordError(ctx, err)
		s.logger.WarnContext(ctx, "series calculation failed",
			slog.String("mode", mode),
			slog.String("company", companyName),
			slog.Int("periods", len(periods)),
			slog.String("error", err.Error()))
		return nil, err
	}

	infrastructure.SetSpanAttributes(ctx, map[string]interface{}{
		"records":     len(records),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	s.logger.InfoContext(ctx, "series calculated",
		slog.String("mode", mode),
		slog.String("company", companyName),
		slog.Int("periods", len(records)),
		slog.Duration("duration", time.Since(start)))

	return &BatchResult{
		CompanyName:  companyName,
		Records:      records,
		CalculatedAt: s.now().UTC(),
	}, nil
}

func (s *AnalyticsService) evaluateSeries(ctx context.Context, periods []analytics.PeriodRecord) ([]analytics.AnalyticsRecord, error) {
	if len(periods) > s.maxPeriods {
		infrastructure.RecordValidationFailure(ctx, s.metrics, "periods")
		return nil, fmt.Errorf("%w: %d periods exceed the limit of %d", ErrTooManyPeriods, len(periods), s.maxPeriods)
	}

	if err := analytics.ValidateSeries(periods); err != nil {
		s.recordValidation(ctx, err)
		return nil, fmt.Errorf("validate series: %w", err)
	}

	ordered, err := analytics.Chronological(periods)
	if err != nil {
		s.recordValidation(ctx, err)
		return nil, fmt.Errorf("order series: %w", err)
	}
	infrastructure.AddSpanEvent(ctx, "series validated", map[string]interface{}{
		"periods":   len(ordered),
		"sequenced": len(ordered) > 0 && ordered[0].Sequence != 0,
	})

	records, err := s.evaluator.Evaluate(ctx, ordered)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Explain returns the plain-language explanation of a metric. Unknown names
// return ErrUnknownMetric together with the fallback text.
func (s *AnalyticsService) Explain(ctx context.Context, name string) (string, error) {
	if !analytics.Metric(name).IsValid() {
		s.logger.DebugContext(ctx, "unknown metric requested", slog.String("metric", name))
		return analytics.FallbackExplanation, fmt.Errorf("%w: %s", ErrUnknownMetric, name)
	}
	return analytics.Explain(name), nil
}

// Definitions lists every metric with its group, unit and explanation
func (s *AnalyticsService) Definitions(ctx context.Context) []analytics.MetricDefinition {
	return analytics.Definitions()
}

// Export writes records to w in the requested format (csv or xlsx)
func (s *AnalyticsService) Export(ctx context.Context, records []analytics.AnalyticsRecord, format string, w io.Writer) error {
	ctx, span := s.tracer.Start(ctx, "analytics.export",
		trace.WithAttributes(
			attribute.String("format", format),
			attribute.Int("periods", len(records)),
		))
	defer span.End()

	f, err := exporter.ParseFormat(format)
	if err != nil {
		return err
	}

	writer, err := exporter.NewWriter(f)
	if err != nil {
		return err
	}

	if err := writer.WriteSeries(w, records); err != nil {
		infrastructure.RecordError(ctx, err)
		return fmt.Errorf("export %s: %w", f, err)
	}

	infrastructure.RecordExport(ctx, s.metrics, string(f))
	s.logger.InfoContext(ctx, "series exported",
		slog.String("format", string(f)),
		slog.Int("periods", len(records)))

	return nil
}

func (s *AnalyticsService) validatePeriod(ctx context.Context, p analytics.PeriodRecord, prefix string) error {
	err := analytics.Validate(p)
	if err == nil {
		return nil
	}

	var ve *analytics.ValidationError
	if errors.As(err, &ve) && prefix != "" {
		ve.Field = prefix + ve.Field
	}
	s.recordValidation(ctx, err)
	return err
}

func (s *AnalyticsService) recordValidation(ctx context.Context, err error) {
	field := "series"
	var ve *analytics.ValidationError
	if errors.As(err, &ve) {
		field = ve.Field
	}
	infrastructure.RecordValidationFailure(ctx, s.metrics, field)
}
