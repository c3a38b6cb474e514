package analytics

// FallbackExplanation is returned for names outside the 21 metrics
const FallbackExplanation = "No explanation available"

var explanations = map[Metric]string{
	RevenueGrowthPercent:   "Year-over-year revenue growth rate",
	GrossMarginPercent:     "Profit after direct costs (COGS)",
	OperatingProfitPercent: "Profit after all operating expenses",
	NetProfitPercent:       "Bottom line profit after all expenses",
	EBITDAPercent:          "Earnings before interest, tax, depreciation, amortization",
	InterestCoverage:       "Ability to pay interest from operating profit",
	AccountsReceivableDays: "Average days to collect payment from customers",
	InventoryDays:          "Average days inventory sits before being sold",
	AccountsPayableDays:    "Average days before paying suppliers",
	WorkingCapitalDays:     "Cash conversion cycle length",
	WorkingCapitalPer100:   "Working capital as percentage of revenue",
	CurrentRatio:           "Ability to pay short-term debts",
	ReturnOnCapital:        "Profit generated from working capital + fixed assets",
	AssetTurnover:          "Revenue efficiency per dollar of assets",
	ReturnOnEquity:         "Profit generated for shareholders",
	ReturnOnAssets:         "Profit efficiency per dollar of assets",
	FixedAssetsTurnover:    "Revenue per dollar of fixed assets",
	DebtToEquity:           "Financial leverage ratio",
	DebtToCapital:          "Proportion of debt in capital structure",
	EquityRatio:            "Proportion of assets financed by equity",
	OperatingCashFlow:      "Approximated cash from operations",
}

// Explain returns the one-line explanation of a metric name
func Explain(name string) string {
	if text, ok := explanations[Metric(name)]; ok {
		return text
	}
	return FallbackExplanation
}

// Explanations returns a copy of the explanation table
func Explanations() map[Metric]string {
	out := make(map[Metric]string, len(explanations))
	for k, v := range explanations {
		out[k] = v
	}
	return out
}

// MetricDefinition describes a metric for documentation and UI use
type MetricDefinition struct {
	Name        Metric      `json:"name"`
	Group       MetricGroup `json:"group"`
	Unit        Unit        `json:"unit"`
	Explanation string      `json:"explanation"`
}

// Definitions returns every metric definition in canonical order
func Definitions() []MetricDefinition {
	defs := make([]MetricDefinition, 0, len(AllMetrics))
	for _, m := range AllMetrics {
		defs = append(defs, MetricDefinition{
			Name:        m,
			Group:       m.Group(),
			Unit:        m.Unit(),
			Explanation: explanations[m],
		})
	}
	return defs
}
