package analytics

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threePeriods() []PeriodRecord {
	return []PeriodRecord{
		{Period: "2021", Revenue: 800_000, CostOfGoods: 500_000, AccountsReceivable: 90_000},
		{Period: "2022", Revenue: 1_000_000, CostOfGoods: 600_000, AccountsReceivable: 120_000},
		{Period: "2023", Revenue: 1_150_000, CostOfGoods: 700_000, AccountsReceivable: 140_000},
	}
}

// fractionalPeriods produces day metrics whose unrounded sum and rounded
// sum disagree, so the working capital days rule is actually exercised.
func fractionalPeriods(n int) []PeriodRecord {
	periods := make([]PeriodRecord, n)
	for i := range periods {
		periods[i] = PeriodRecord{
			Period:             fmt.Sprintf("P%02d", i+1),
			Revenue:            1_234_567.89 + float64(i)*10_001.37,
			CostOfGoods:        777_777.77 + float64(i)*3_333.33,
			AccountsReceivable: 123_456.78 + float64(i)*1_111.11,
			Inventory:          98_765.43 + float64(i)*2_222.22,
			AccountsPayable:    54_321.09 + float64(i)*999.99,
			Cash:               10_000,
			FixedAssets:        250_000,
			CurrentLiabilities: 75_000.5,
		}
	}
	return periods
}

func TestComputeSeries_PreviousLinkage(t *testing.T) {
	seq := threePeriods()

	records := ComputeSeries(seq)

	require.Len(t, records, 3)
	assert.Nil(t, records[0].Previous)
	assert.Equal(t, 0.0, records[0].Metrics.RevenueGrowthPercent)

	require.NotNil(t, records[1].Previous)
	assert.Equal(t, "2021", records[1].Previous.Period)
	assert.Equal(t, 25.0, records[1].Metrics.RevenueGrowthPercent)

	require.NotNil(t, records[2].Previous)
	assert.Equal(t, "2022", records[2].Previous.Period)
	assert.Equal(t, 15.0, records[2].Metrics.RevenueGrowthPercent)

	for i, rec := range records {
		assert.Equal(t, seq[i], rec.Period, "input fields are carried through")
	}
}

func TestComputeSeries_MatchesScalar(t *testing.T) {
	seq := threePeriods()

	records := ComputeSeries(seq)

	assert.Equal(t, Compute(seq[2], &seq[1]), records[2].Metrics)
	assert.Equal(t, Compute(seq[0], nil), records[0].Metrics)
}

func TestComputeSeries_FractionalWorkingCapitalDays(t *testing.T) {
	seq := fractionalPeriods(12)

	records := ComputeSeries(seq)

	for i, rec := range records {
		var prev *PeriodRecord
		if i > 0 {
			prev = &seq[i-1]
		}
		scalar := Compute(seq[i], prev)
		assert.Equal(t, scalar, rec.Metrics, "period %s", seq[i].Period)

		m := rec.Metrics
		assert.Equal(t,
			round2(m.AccountsReceivableDays+m.InventoryDays-m.AccountsPayableDays),
			m.WorkingCapitalDays,
		)
	}
}

func TestComputeSeries_Empty(t *testing.T) {
	assert.Empty(t, ComputeSeries(nil))
}

func TestComputeSeries_DoesNotReorder(t *testing.T) {
	// Labels sort differently from the caller order; caller order wins
	seq := []PeriodRecord{
		{Period: "2023-Q9", Revenue: 100},
		{Period: "2023-Q10", Revenue: 200},
	}

	records := ComputeSeries(seq)

	assert.Equal(t, "2023-Q9", records[0].Period.Period)
	assert.Equal(t, "2023-Q10", records[1].Period.Period)
	assert.Equal(t, 100.0, records[1].Metrics.RevenueGrowthPercent)
}

func TestEvaluator_MatchesComputeSeries(t *testing.T) {
	tests := []struct {
		name        string
		concurrency int
		periods     int
	}{
		{"single worker", 1, 10},
		{"default workers", 0, 25},
		{"more workers than periods", 64, 7},
		{"one period", 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := fractionalPeriods(tt.periods)
			evaluator := NewEvaluator(WithConcurrency(tt.concurrency))

			got, err := evaluator.Evaluate(context.Background(), seq)

			require.NoError(t, err)
			assert.Equal(t, ComputeSeries(seq), got)
		})
	}
}

func TestEvaluator_Defaults(t *testing.T) {
	evaluator := NewEvaluator(WithConcurrency(-3), WithLogger(nil))
	assert.Equal(t, DefaultConcurrency, evaluator.Concurrency())
	assert.NotNil(t, evaluator.logger)
}

func TestEvaluator_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	records, err := NewEvaluator().Evaluate(ctx, fractionalPeriods(5))

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Nil(t, records)
}

func TestChronological(t *testing.T) {
	tests := []struct {
		name      string
		input     []PeriodRecord
		wantOrder []string
		wantErr   string
	}{
		{
			name: "no sequence keeps caller order",
			input: []PeriodRecord{
				{Period: "2019"}, {Period: "2017"}, {Period: "2018"},
			},
			wantOrder: []string{"2019", "2017", "2018"},
		},
		{
			name: "full sequence sorts",
			input: []PeriodRecord{
				{Period: "2023-Q10", Sequence: 10},
				{Period: "2023-Q9", Sequence: 9},
				{Period: "2023-Q11", Sequence: 11},
			},
			wantOrder: []string{"2023-Q9", "2023-Q10", "2023-Q11"},
		},
		{
			name: "partial sequence rejected",
			input: []PeriodRecord{
				{Period: "a", Sequence: 1},
				{Period: "b"},
			},
			wantErr: "every period or on none",
		},
		{
			name: "duplicate sequence rejected",
			input: []PeriodRecord{
				{Period: "a", Sequence: 3},
				{Period: "b", Sequence: 3},
			},
			wantErr: "sequence 3 is used by periods 1 and 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := append([]PeriodRecord(nil), tt.input...)

			got, err := Chronological(tt.input)

			assert.Equal(t, original, tt.input, "input slice untouched")
			if tt.wantErr != "" {
				require.Error(t, err)
				var ve *ValidationError
				require.True(t, errors.As(err, &ve))
				assert.Equal(t, "sequence", ve.Field)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			labels := make([]string, len(got))
			for i, p := range got {
				labels[i] = p.Period
			}
			assert.Equal(t, tt.wantOrder, labels)
		})
	}
}
