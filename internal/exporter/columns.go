package exporter

import "cashflowstory/internal/analytics"

// inputColumn binds a spreadsheet header to a numeric field of PeriodRecord
type inputColumn struct {
	name string
	get  func(p *analytics.PeriodRecord) float64
	set  func(p *analytics.PeriodRecord, v float64)
}

// Identity columns precede the numeric inputs in every export
const (
	colCompany  = "company_name"
	colPeriod   = "period"
	colSequence = "sequence"
)

var inputColumns = []inputColumn{
	{"revenue", func(p *analytics.PeriodRecord) float64 { return p.Revenue }, func(p *analytics.PeriodRecord, v float64) { p.Revenue = v }},
	{"cost_of_goods", func(p *analytics.PeriodRecord) float64 { return p.CostOfGoods }, func(p *analytics.PeriodRecord, v float64) { p.CostOfGoods = v }},
	{"overheads", func(p *analytics.PeriodRecord) float64 { return p.Overheads }, func(p *analytics.PeriodRecord, v float64) { p.Overheads = v }},
	{"depreciation", func(p *analytics.PeriodRecord) float64 { return p.Depreciation }, func(p *analytics.PeriodRecord, v float64) { p.Depreciation = v }},
	{"interest_paid", func(p *analytics.PeriodRecord) float64 { return p.InterestPaid }, func(p *analytics.PeriodRecord, v float64) { p.InterestPaid = v }},
	{"tax_paid", func(p *analytics.PeriodRecord) float64 { return p.TaxPaid }, func(p *analytics.PeriodRecord, v float64) { p.TaxPaid = v }},
	{"cash", func(p *analytics.PeriodRecord) float64 { return p.Cash }, func(p *analytics.PeriodRecord, v float64) { p.Cash = v }},
	{"accounts_receivable", func(p *analytics.PeriodRecord) float64 { return p.AccountsReceivable }, func(p *analytics.PeriodRecord, v float64) { p.AccountsReceivable = v }},
	{"inventory", func(p *analytics.PeriodRecord) float64 { return p.Inventory }, func(p *analytics.PeriodRecord, v float64) { p.Inventory = v }},
	{"fixed_assets", func(p *analytics.PeriodRecord) float64 { return p.FixedAssets }, func(p *analytics.PeriodRecord, v float64) { p.FixedAssets = v }},
	{"current_liabilities", func(p *analytics.PeriodRecord) float64 { return p.CurrentLiabilities }, func(p *analytics.PeriodRecord, v float64) { p.CurrentLiabilities = v }},
	{"noncurrent_liabilities", func(p *analytics.PeriodRecord) float64 { return p.NoncurrentLiabilities }, func(p *analytics.PeriodRecord, v float64) { p.NoncurrentLiabilities = v }},
	{"accounts_payable", func(p *analytics.PeriodRecord) float64 { return p.AccountsPayable }, func(p *analytics.PeriodRecord, v float64) { p.AccountsPayable = v }},
}

// inputHeaders returns the identity and numeric input column names
func inputHeaders() []string {
	headers := []string{colCompany, colPeriod, colSequence}
	for _, c := range inputColumns {
		headers = append(headers, c.name)
	}
	return headers
}

// metricHeaders returns the metric names in canonical order
func metricHeaders() []string {
	headers := make([]string, 0, len(analytics.AllMetrics))
	for _, m := range analytics.AllMetrics {
		headers = append(headers, m.String())
	}
	return headers
}

// SeriesHeaders returns the full header row of a CSV series export
func SeriesHeaders() []string {
	return append(inputHeaders(), metricHeaders()...)
}
