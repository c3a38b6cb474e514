package analytics

import "fmt"

// PeriodRecord holds the raw figures for one reporting period.
// Absent figures are zero; the engine performs no defaulting of its own.
type PeriodRecord struct {
	CompanyName string `json:"company_name" yaml:"company_name"`
	Period      string `json:"period" yaml:"period"`                         // Display label, never parsed
	Sequence    int    `json:"sequence,omitempty" yaml:"sequence,omitempty"` // Optional chronological position, 0 means unset

	// Profit & loss
	Revenue      float64 `json:"revenue" yaml:"revenue"`
	CostOfGoods  float64 `json:"cost_of_goods" yaml:"cost_of_goods"`
	Overheads    float64 `json:"overheads" yaml:"overheads"`
	Depreciation float64 `json:"depreciation" yaml:"depreciation"`
	InterestPaid float64 `json:"interest_paid" yaml:"interest_paid"`
	TaxPaid      float64 `json:"tax_paid" yaml:"tax_paid"`

	// Balance sheet
	Cash                  float64 `json:"cash" yaml:"cash"`
	AccountsReceivable    float64 `json:"accounts_receivable" yaml:"accounts_receivable"`
	Inventory             float64 `json:"inventory" yaml:"inventory"`
	FixedAssets           float64 `json:"fixed_assets" yaml:"fixed_assets"`
	CurrentLiabilities    float64 `json:"current_liabilities" yaml:"current_liabilities"`
	NoncurrentLiabilities float64 `json:"noncurrent_liabilities" yaml:"noncurrent_liabilities"`
	AccountsPayable       float64 `json:"accounts_payable" yaml:"accounts_payable"`
}

// Metric names one of the 21 computed ratios
type Metric string

const (
	RevenueGrowthPercent   Metric = "revenue_growth_percent"
	GrossMarginPercent     Metric = "gross_margin_percent"
	OperatingProfitPercent Metric = "operating_profit_percent"
	NetProfitPercent       Metric = "net_profit_percent"
	EBITDAPercent          Metric = "ebitda_percent"
	InterestCoverage       Metric = "interest_coverage"

	AccountsReceivableDays Metric = "accounts_receivable_days"
	InventoryDays          Metric = "inventory_days"
	AccountsPayableDays    Metric = "accounts_payable_days"
	WorkingCapitalDays     Metric = "working_capital_days"
	WorkingCapitalPer100   Metric = "working_capital_per_100"
	CurrentRatio           Metric = "current_ratio"

	ReturnOnCapital     Metric = "return_on_capital"
	AssetTurnover       Metric = "asset_turnover"
	ReturnOnEquity      Metric = "return_on_equity"
	ReturnOnAssets      Metric = "return_on_assets"
	FixedAssetsTurnover Metric = "fixed_assets_turnover"
	DebtToEquity        Metric = "debt_to_equity"
	DebtToCapital       Metric = "debt_to_capital"
	EquityRatio         Metric = "equity_ratio"
	OperatingCashFlow   Metric = "operating_cash_flow"
)

// AllMetrics lists the metrics in canonical order
var AllMetrics = []Metric{
	RevenueGrowthPercent,
	GrossMarginPercent,
	OperatingProfitPercent,
	NetProfitPercent,
	EBITDAPercent,
	InterestCoverage,
	AccountsReceivableDays,
	InventoryDays,
	AccountsPayableDays,
	WorkingCapitalDays,
	WorkingCapitalPer100,
	CurrentRatio,
	ReturnOnCapital,
	AssetTurnover,
	ReturnOnEquity,
	ReturnOnAssets,
	FixedAssetsTurnover,
	DebtToEquity,
	DebtToCapital,
	EquityRatio,
	OperatingCashFlow,
}

// String returns the metric name
func (m Metric) String() string {
	return string(m)
}

// IsValid reports whether m is one of the 21 known metrics
func (m Metric) IsValid() bool {
	_, ok := explanations[m]
	return ok
}

// MetricGroup classifies metrics for presentation
type MetricGroup string

const (
	GroupProfitability     MetricGroup = "profitability"
	GroupWorkingCapital    MetricGroup = "working_capital"
	GroupCapitalEfficiency MetricGroup = "capital_efficiency"
)

// Group returns the presentation group of the metric
func (m Metric) Group() MetricGroup {
	switch m {
	case RevenueGrowthPercent, GrossMarginPercent, OperatingProfitPercent,
		NetProfitPercent, EBITDAPercent, InterestCoverage:
		return GroupProfitability
	case AccountsReceivableDays, InventoryDays, AccountsPayableDays,
		WorkingCapitalDays, WorkingCapitalPer100, CurrentRatio:
		return GroupWorkingCapital
	default:
		return GroupCapitalEfficiency
	}
}

// Unit describes how a metric value should be read
type Unit string

const (
	UnitPercent  Unit = "percent"
	UnitDays     Unit = "days"
	UnitRatio    Unit = "ratio"
	UnitCurrency Unit = "currency"
)

// Unit returns the unit of the metric value
func (m Metric) Unit() Unit {
	switch m {
	case AccountsReceivableDays, InventoryDays, AccountsPayableDays, WorkingCapitalDays:
		return UnitDays
	case InterestCoverage, CurrentRatio, AssetTurnover, FixedAssetsTurnover, DebtToEquity, DebtToCapital:
		return UnitRatio
	case OperatingCashFlow:
		return UnitCurrency
	default:
		return UnitPercent
	}
}

// Figures holds the intermediate values derived from a PeriodRecord
type Figures struct {
	GrossMargin      float64 `json:"gross_margin"`
	OperatingProfit  float64 `json:"operating_profit"`
	EBITDA           float64 `json:"ebitda"`
	NetProfit        float64 `json:"net_profit"`
	CurrentAssets    float64 `json:"current_assets"`
	WorkingCapital   float64 `json:"working_capital"`
	TotalAssets      float64 `json:"total_assets"`
	TotalLiabilities float64 `json:"total_liabilities"`
	Equity           float64 `json:"equity"`
	TotalCapital     float64 `json:"total_capital"`
}

// MetricSet holds the 21 rounded metrics for one period.
// Every field is always present; uncomputable metrics are 0.
type MetricSet struct {
	RevenueGrowthPercent   float64 `json:"revenue_growth_percent"`
	GrossMarginPercent     float64 `json:"gross_margin_percent"`
	OperatingProfitPercent float64 `json:"operating_profit_percent"`
	NetProfitPercent       float64 `json:"net_profit_percent"`
	EBITDAPercent          float64 `json:"ebitda_percent"`
	InterestCoverage       float64 `json:"interest_coverage"`

	AccountsReceivableDays float64 `json:"accounts_receivable_days"`
	InventoryDays          float64 `json:"inventory_days"`
	AccountsPayableDays    float64 `json:"accounts_payable_days"`
	WorkingCapitalDays     float64 `json:"working_capital_days"`
	WorkingCapitalPer100   float64 `json:"working_capital_per_100"`
	CurrentRatio           float64 `json:"current_ratio"`

	ReturnOnCapital     float64 `json:"return_on_capital"`
	AssetTurnover       float64 `json:"asset_turnover"`
	ReturnOnEquity      float64 `json:"return_on_equity"`
	ReturnOnAssets      float64 `json:"return_on_assets"`
	FixedAssetsTurnover float64 `json:"fixed_assets_turnover"`
	DebtToEquity        float64 `json:"debt_to_equity"`
	DebtToCapital       float64 `json:"debt_to_capital"`
	EquityRatio         float64 `json:"equity_ratio"`
	OperatingCashFlow   float64 `json:"operating_cash_flow"`
}

// MetricValue pairs a metric with its value
type MetricValue struct {
	Metric Metric  `json:"metric"`
	Value  float64 `json:"value"`
}

// Value returns the value of the named metric
func (s MetricSet) Value(m Metric) (float64, bool) {
	switch m {
	case RevenueGrowthPercent:
		return s.RevenueGrowthPercent, true
	case GrossMarginPercent:
		return s.GrossMarginPercent, true
	case OperatingProfitPercent:
		return s.OperatingProfitPercent, true
	case NetProfitPercent:
		return s.NetProfitPercent, true
	case EBITDAPercent:
		return s.EBITDAPercent, true
	case InterestCoverage:
		return s.InterestCoverage, true
	case AccountsReceivableDays:
		return s.AccountsReceivableDays, true
	case InventoryDays:
		return s.InventoryDays, true
	case AccountsPayableDays:
		return s.AccountsPayableDays, true
	case WorkingCapitalDays:
		return s.WorkingCapitalDays, true
	case WorkingCapitalPer100:
		return s.WorkingCapitalPer100, true
	case CurrentRatio:
		return s.CurrentRatio, true
	case ReturnOnCapital:
		return s.ReturnOnCapital, true
	case AssetTurnover:
		return s.AssetTurnover, true
	case ReturnOnEquity:
		return s.ReturnOnEquity, true
	case ReturnOnAssets:
		return s.ReturnOnAssets, true
	case FixedAssetsTurnover:
		return s.FixedAssetsTurnover, true
	case DebtToEquity:
		return s.DebtToEquity, true
	case DebtToCapital:
		return s.DebtToCapital, true
	case EquityRatio:
		return s.EquityRatio, true
	case OperatingCashFlow:
		return s.OperatingCashFlow, true
	default:
		return 0, false
	}
}

// Values returns all metrics in canonical order
func (s MetricSet) Values() []MetricValue {
	values := make([]MetricValue, 0, len(AllMetrics))
	for _, m := range AllMetrics {
		v, _ := s.Value(m)
		values = append(values, MetricValue{Metric: m, Value: v})
	}
	return values
}

// AsMap returns the metrics keyed by name
func (s MetricSet) AsMap() map[string]float64 {
	out := make(map[string]float64, len(AllMetrics))
	for _, mv := range s.Values() {
		out[string(mv.Metric)] = mv.Value
	}
	return out
}

// AnalyticsRecord pairs a period with its metrics and the predecessor used for growth
type AnalyticsRecord struct {
	Period   PeriodRecord  `json:"input_data"`
	Metrics  MetricSet     `json:"analytics"`
	Previous *PeriodRecord `json:"previous_period,omitempty"`
}

// ValidationError represents a rejected input field
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
	Index   int         `json:"index,omitempty"` // Position within a series, 1-based; 0 for a single record
}

// Error implements the error interface
func (ve *ValidationError) Error() string {
	if ve.Index > 0 {
		return fmt.Sprintf("period %d: %s", ve.Index, ve.Message)
	}
	return ve.Message
}
