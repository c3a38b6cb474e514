package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplain(t *testing.T) {
	assert.Equal(t, "Profit after direct costs (COGS)", Explain("gross_margin_percent"))
	assert.Equal(t, "Cash conversion cycle length", Explain(string(WorkingCapitalDays)))
	assert.Equal(t, FallbackExplanation, Explain("ebit_margin"))
	assert.Equal(t, FallbackExplanation, Explain(""))
}

func TestExplanations_CoverEveryMetric(t *testing.T) {
	table := Explanations()
	require.Len(t, table, len(AllMetrics))
	for _, m := range AllMetrics {
		assert.NotEmpty(t, table[m], "missing explanation for %s", m)
		assert.True(t, m.IsValid())
	}
	assert.False(t, Metric("unknown").IsValid())
}

func TestExplanations_ReturnsCopy(t *testing.T) {
	table := Explanations()
	table[GrossMarginPercent] = "changed"

	assert.Equal(t, "Profit after direct costs (COGS)", Explain("gross_margin_percent"))
}

func TestDefinitions(t *testing.T) {
	defs := Definitions()

	require.Len(t, defs, 21)
	assert.Equal(t, RevenueGrowthPercent, defs[0].Name)
	assert.Equal(t, GroupProfitability, defs[0].Group)
	assert.Equal(t, UnitPercent, defs[0].Unit)
	assert.Equal(t, OperatingCashFlow, defs[20].Name)
	assert.Equal(t, "Approximated cash from operations", defs[20].Explanation)
}
