package analytics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullRecord is a balanced period used across tests
func fullRecord() PeriodRecord {
	return PeriodRecord{
		CompanyName:           "Test Company",
		Period:                "2024",
		Revenue:               1_000_000,
		CostOfGoods:           600_000,
		Overheads:             200_000,
		InterestPaid:          10_000,
		TaxPaid:               30_000,
		Cash:                  100_000,
		AccountsReceivable:    200_000,
		Inventory:             200_000,
		FixedAssets:           500_000,
		CurrentLiabilities:    200_000,
		NoncurrentLiabilities: 300_000,
		AccountsPayable:       100_000,
	}
}

func TestDerive(t *testing.T) {
	p := fullRecord()
	p.Depreciation = 50_000

	f := Derive(p)

	assert.Equal(t, 400_000.0, f.GrossMargin)
	assert.Equal(t, 200_000.0, f.OperatingProfit)
	assert.Equal(t, 250_000.0, f.EBITDA)
	assert.Equal(t, 160_000.0, f.NetProfit)
	assert.Equal(t, 500_000.0, f.CurrentAssets)
	assert.Equal(t, 300_000.0, f.WorkingCapital)
	assert.Equal(t, 1_000_000.0, f.TotalAssets)
	assert.Equal(t, 500_000.0, f.TotalLiabilities)
	assert.Equal(t, 500_000.0, f.Equity)
	assert.Equal(t, 800_000.0, f.TotalCapital)
}

func TestCompute_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		input    PeriodRecord
		metric   Metric
		expected float64
	}{
		{
			name:     "gross margin",
			input:    PeriodRecord{Revenue: 1_000_000, CostOfGoods: 600_000},
			metric:   GrossMarginPercent,
			expected: 40.0,
		},
		{
			name: "net profit",
			input: PeriodRecord{
				Revenue:      1_000_000,
				CostOfGoods:  600_000,
				Overheads:    200_000,
				InterestPaid: 10_000,
				TaxPaid:      30_000,
			},
			metric:   NetProfitPercent,
			expected: 16.0,
		},
		{
			name:     "receivable days",
			input:    PeriodRecord{Revenue: 3_650_000, AccountsReceivable: 1_000_000},
			metric:   AccountsReceivableDays,
			expected: 100.0,
		},
		{
			name:     "return on equity",
			input:    fullRecord(),
			metric:   ReturnOnEquity,
			expected: 32.0,
		},
		{
			name:     "no previous period means no growth",
			input:    PeriodRecord{Revenue: 9_999_999},
			metric:   RevenueGrowthPercent,
			expected: 0.0,
		},
		{
			name:     "interest coverage",
			input:    fullRecord(),
			metric:   InterestCoverage,
			expected: 20.0,
		},
		{
			name:     "debt to capital is a fraction",
			input:    fullRecord(),
			metric:   DebtToCapital,
			expected: 0.5,
		},
		{
			name:     "equity ratio",
			input:    fullRecord(),
			metric:   EquityRatio,
			expected: 50.0,
		},
		{
			name:     "return on capital",
			input:    fullRecord(),
			metric:   ReturnOnCapital,
			expected: 25.0,
		},
		{
			name:     "current ratio",
			input:    fullRecord(),
			metric:   CurrentRatio,
			expected: 2.5,
		},
		{
			name:     "inventory days rounded",
			input:    fullRecord(),
			metric:   InventoryDays,
			expected: 121.67,
		},
		{
			name:     "operating cash flow adds depreciation back",
			input:    PeriodRecord{Revenue: 1_000_000, CostOfGoods: 600_000, Depreciation: 50_000},
			metric:   OperatingCashFlow,
			expected: 450_000.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Compute(tt.input, nil).Value(tt.metric)
			require.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCompute_RevenueGrowth(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous *PeriodRecord
		expected float64
	}{
		{"growth", 1_200_000, &PeriodRecord{Revenue: 1_000_000}, 20.0},
		{"decline", 800_000, &PeriodRecord{Revenue: 1_000_000}, -20.0},
		{"flat", 1_000_000, &PeriodRecord{Revenue: 1_000_000}, 0.0},
		{"missing previous", 1_000_000, nil, 0.0},
		{"previous revenue zero", 1_000_000, &PeriodRecord{Revenue: 0}, 0.0},
		{"previous revenue negative", 1_000_000, &PeriodRecord{Revenue: -5}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Compute(PeriodRecord{Revenue: tt.current}, tt.previous)
			assert.Equal(t, tt.expected, m.RevenueGrowthPercent)
		})
	}
}

func TestCompute_ZeroGuard(t *testing.T) {
	// Revenue only: every denominator except revenue is zero
	m := Compute(PeriodRecord{Revenue: 1_000_000}, nil)

	assert.Equal(t, 0.0, m.InterestCoverage)
	assert.Equal(t, 0.0, m.InventoryDays)
	assert.Equal(t, 0.0, m.AccountsPayableDays)
	assert.Equal(t, 0.0, m.CurrentRatio)
	assert.Equal(t, 0.0, m.ReturnOnCapital)
	assert.Equal(t, 0.0, m.AssetTurnover)
	assert.Equal(t, 0.0, m.ReturnOnEquity)
	assert.Equal(t, 0.0, m.ReturnOnAssets)
	assert.Equal(t, 0.0, m.FixedAssetsTurnover)
	assert.Equal(t, 0.0, m.DebtToEquity)
	assert.Equal(t, 0.0, m.DebtToCapital)
	assert.Equal(t, 0.0, m.EquityRatio)

	// Unaffected metrics still compute
	assert.Equal(t, 100.0, m.GrossMarginPercent)
	assert.Equal(t, 1_000_000.0, m.OperatingCashFlow)
}

func TestCompute_NegativeDenominators(t *testing.T) {
	// Liabilities exceed assets: equity is negative
	p := PeriodRecord{
		Revenue:               500_000,
		CostOfGoods:           300_000,
		Cash:                  10_000,
		FixedAssets:           50_000,
		CurrentLiabilities:    100_000,
		NoncurrentLiabilities: 400_000,
	}

	m := Compute(p, nil)

	assert.Equal(t, 0.0, m.ReturnOnEquity, "equity <= 0")
	assert.Equal(t, 0.0, m.DebtToEquity, "equity <= 0")
	assert.Equal(t, 0.0, m.ReturnOnCapital, "total capital <= 0")
	assert.Equal(t, 8.33, m.DebtToCapital, "equity + liabilities equals total assets")
	assert.Less(t, m.EquityRatio, 0.0, "equity ratio keeps its sign")
	assert.Equal(t, 40.0, m.GrossMarginPercent)
}

func TestCompute_NeverProducesNonFinite(t *testing.T) {
	inputs := []PeriodRecord{
		{},
		{Revenue: -1},
		{Revenue: math.MaxFloat64, CostOfGoods: -math.MaxFloat64},
		{Revenue: 1, InterestPaid: math.SmallestNonzeroFloat64},
		{Revenue: 1e-300, AccountsReceivable: 1e300},
	}

	for _, in := range inputs {
		for _, mv := range Compute(in, &in).Values() {
			assert.False(t, math.IsNaN(mv.Value), "%s is NaN for %+v", mv.Metric, in)
			assert.False(t, math.IsInf(mv.Value, 0), "%s is infinite for %+v", mv.Metric, in)
		}
	}
}

func TestCompute_Idempotent(t *testing.T) {
	p := fullRecord()
	prev := fullRecord()
	prev.Revenue = 870_123.45

	first := Compute(p, &prev)
	second := Compute(p, &prev)

	assert.Equal(t, first, second)
}

func TestCompute_DoesNotMutateInputs(t *testing.T) {
	p := fullRecord()
	prev := fullRecord()
	snapshotP, snapshotPrev := p, prev

	Compute(p, &prev)

	assert.Equal(t, snapshotP, p)
	assert.Equal(t, snapshotPrev, prev)
}

func TestCompute_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	amount := func() float64 {
		return math.Round(rng.Float64()*5_000_000*100) / 100
	}

	for i := 0; i < 500; i++ {
		p := PeriodRecord{
			Revenue:               amount() + 1,
			CostOfGoods:           amount(),
			Overheads:             amount(),
			Depreciation:          amount(),
			InterestPaid:          amount(),
			TaxPaid:               amount(),
			Cash:                  amount(),
			AccountsReceivable:    amount(),
			Inventory:             amount(),
			FixedAssets:           amount(),
			CurrentLiabilities:    amount(),
			NoncurrentLiabilities: amount(),
			AccountsPayable:       amount(),
		}
		m := Compute(p, nil)

		assert.Equal(t, round2((p.Revenue-p.CostOfGoods)/p.Revenue*100), m.GrossMarginPercent)
		assert.Equal(t,
			round2(m.AccountsReceivableDays+m.InventoryDays-m.AccountsPayableDays),
			m.WorkingCapitalDays,
		)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{1.005, 1.0},
		{-1.005, -1.0},
		{2.675, 2.67},
		{0.125, 0.12},
		{0.375, 0.38},
		{-0.125, -0.12},
		{90.625, 90.62},
		{1.0051, 1.01},
		{99.999999999, 100},
		{0.1 + 0.2, 0.3},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{math.Inf(-1), 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, round2(tt.in), "round2(%v)", tt.in)
	}
}

func TestExactDecimal(t *testing.T) {
	assert.Equal(t, "0.1000000000000000055511151231257827021181583404541015625", exactDecimal(0.1).String())
	assert.Equal(t, "2.67499999999999982236431605997495353221893310546875", exactDecimal(2.675).String())
	assert.Equal(t, "-0.125", exactDecimal(-0.125).String())
	assert.Equal(t, "1099511627776", exactDecimal(1<<40).String())
	assert.Equal(t, "0", exactDecimal(0).String())
}

func TestCompute_TiesRoundToEven(t *testing.T) {
	tests := []struct {
		name     string
		input    PeriodRecord
		expected float64
	}{
		{"exact tie 90.625", PeriodRecord{Revenue: 32, CostOfGoods: 3}, 90.62},
		{"near tie 0.125", PeriodRecord{Revenue: 800, CostOfGoods: 799}, 0.12},
		{"half at one decimal is kept", PeriodRecord{Revenue: 8, CostOfGoods: 5}, 37.5},
		{"exact tie 9.375 rounds to even", PeriodRecord{Revenue: 32, CostOfGoods: 29}, 9.38},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Compute(tt.input, nil)
			assert.Equal(t, tt.expected, m.GrossMarginPercent)
		})
	}
}

func TestMetricSet_Accessors(t *testing.T) {
	m := Compute(fullRecord(), nil)

	values := m.Values()
	require.Len(t, values, 21)
	for i, mv := range values {
		assert.Equal(t, AllMetrics[i], mv.Metric)
	}

	asMap := m.AsMap()
	assert.Len(t, asMap, 21)
	assert.Equal(t, 32.0, asMap["return_on_equity"])

	_, ok := m.Value(Metric("ebit_margin"))
	assert.False(t, ok)
}

func TestMetric_GroupAndUnit(t *testing.T) {
	counts := map[MetricGroup]int{}
	for _, m := range AllMetrics {
		counts[m.Group()]++
	}
	assert.Equal(t, 6, counts[GroupProfitability])
	assert.Equal(t, 6, counts[GroupWorkingCapital])
	assert.Equal(t, 9, counts[GroupCapitalEfficiency])

	assert.Equal(t, UnitDays, WorkingCapitalDays.Unit())
	assert.Equal(t, UnitPercent, ReturnOnEquity.Unit())
	assert.Equal(t, UnitRatio, DebtToCapital.Unit())
	assert.Equal(t, UnitCurrency, OperatingCashFlow.Unit())
}
