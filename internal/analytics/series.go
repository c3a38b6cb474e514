package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the number of periods computed at once
const DefaultConcurrency = 4

// ComputeSeries computes every period of a chronologically ordered series.
// Element i uses element i-1 as its previous period; the first has none.
// The slice is never reordered.
func ComputeSeries(periods []PeriodRecord) []AnalyticsRecord {
	records := make([]AnalyticsRecord, len(periods))
	for i := range periods {
		records[i] = recordAt(periods, i)
	}
	return records
}

func recordAt(periods []PeriodRecord, i int) AnalyticsRecord {
	rec := AnalyticsRecord{Period: periods[i]}
	if i > 0 {
		prev := periods[i-1]
		rec.Previous = &prev
	}
	rec.Metrics = Compute(rec.Period, rec.Previous)
	return rec
}

// Evaluator computes series concurrently. Each period needs only its own
// record and its predecessor's raw record, so elements are independent.
type Evaluator struct {
	concurrency int
	logger      *slog.Logger
}

// EvaluatorOption configures an Evaluator
type EvaluatorOption func(*Evaluator)

// WithConcurrency sets the maximum number of periods computed at once
func WithConcurrency(n int) EvaluatorOption {
	return func(e *Evaluator) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// WithLogger sets the evaluator logger
func WithLogger(logger *slog.Logger) EvaluatorOption {
	return func(e *Evaluator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEvaluator creates a batch evaluator
func NewEvaluator(opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{
		concurrency: DefaultConcurrency,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Concurrency returns the configured concurrency limit
func (e *Evaluator) Concurrency() int {
	return e.concurrency
}

// Evaluate computes the series like ComputeSeries, spreading the work over
// up to Concurrency goroutines. The only possible error is ctx's.
func (e *Evaluator) Evaluate(ctx context.Context, periods []PeriodRecord) ([]AnalyticsRecord, error) {
	start := time.Now()
	records := make([]AnalyticsRecord, len(periods))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i := range periods {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// each goroutine writes only its own slot
			records[i] = recordAt(periods, i)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		e.logger.WarnContext(ctx, "series evaluation interrupted",
			"periods", len(periods),
			"error", err,
		)
		return nil, fmt.Errorf("evaluate series: %w", err)
	}

	e.logger.DebugContext(ctx, "series evaluated",
		"periods", len(periods),
		"concurrency", e.concurrency,
		"duration", time.Since(start).String(),
	)
	return records, nil
}

// Chronological returns the periods in chronological order.
// When every period carries a Sequence, the result is sorted by it; when none
// does, caller order is kept. Labels are never used for ordering.
// A partial or duplicated sequence is rejected.
func Chronological(periods []PeriodRecord) ([]PeriodRecord, error) {
	out := make([]PeriodRecord, len(periods))
	copy(out, periods)

	withSeq := 0
	seen := make(map[int]int, len(periods))
	for i, p := range out {
		if p.Sequence == 0 {
			continue
		}
		withSeq++
		if first, dup := seen[p.Sequence]; dup {
			return nil, &ValidationError{
				Field:   "sequence",
				Message: fmt.Sprintf("sequence %d is used by periods %d and %d", p.Sequence, first+1, i+1),
				Value:   p.Sequence,
				Index:   i + 1,
			}
		}
		seen[p.Sequence] = i
	}

	switch withSeq {
	case 0:
		return out, nil
	case len(out):
		sort.SliceStable(out, func(a, b int) bool {
			return out[a].Sequence < out[b].Sequence
		})
		return out, nil
	default:
		return nil, &ValidationError{
			Field:   "sequence",
			Message: "sequence must be set on every period or on none",
		}
	}
}
