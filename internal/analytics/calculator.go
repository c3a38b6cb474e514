package analytics

// DaysPerYear converts annual ratios into day counts
const DaysPerYear = 365

// Derive computes the intermediate figures of a period.
// Later figures depend on earlier ones, so the order below is fixed.
func Derive(p PeriodRecord) Figures {
	var f Figures
	f.GrossMargin = p.Revenue - p.CostOfGoods
	f.OperatingProfit = f.GrossMargin - p.Overheads
	f.EBITDA = f.OperatingProfit + p.Depreciation
	f.NetProfit = f.OperatingProfit - p.InterestPaid - p.TaxPaid
	f.CurrentAssets = p.Cash + p.AccountsReceivable + p.Inventory
	f.WorkingCapital = f.CurrentAssets - p.CurrentLiabilities
	f.TotalAssets = f.CurrentAssets + p.FixedAssets
	f.TotalLiabilities = p.CurrentLiabilities + p.NoncurrentLiabilities
	f.Equity = f.TotalAssets - f.TotalLiabilities
	f.TotalCapital = f.WorkingCapital + p.FixedAssets
	return f
}

// Compute calculates the 21 metrics for current. previous may be nil, in
// which case revenue growth is 0. Compute is pure and never fails: a zero or
// negative denominator resolves that metric alone to 0.
func Compute(current PeriodRecord, previous *PeriodRecord) MetricSet {
	f := Derive(current)
	rev := current.Revenue
	cogs := current.CostOfGoods

	var m MetricSet

	// Profitability
	m.RevenueGrowthPercent = revenueGrowth(current, previous)
	m.GrossMarginPercent = percent(f.GrossMargin, rev)
	m.OperatingProfitPercent = percent(f.OperatingProfit, rev)
	m.NetProfitPercent = percent(f.NetProfit, rev)
	m.EBITDAPercent = percent(f.EBITDA, rev)
	m.InterestCoverage = ratio(f.OperatingProfit, current.InterestPaid)

	// Working capital
	m.AccountsReceivableDays = days(current.AccountsReceivable, rev)
	m.InventoryDays = days(current.Inventory, cogs)
	m.AccountsPayableDays = days(current.AccountsPayable, cogs)
	m.WorkingCapitalDays = round2(m.AccountsReceivableDays + m.InventoryDays - m.AccountsPayableDays)
	m.WorkingCapitalPer100 = percent(f.WorkingCapital, rev)
	m.CurrentRatio = ratio(f.CurrentAssets, current.CurrentLiabilities)

	// Capital efficiency
	m.ReturnOnCapital = percent(f.OperatingProfit, f.TotalCapital)
	m.AssetTurnover = ratio(rev, f.TotalAssets)
	m.ReturnOnEquity = percent(f.NetProfit, f.Equity)
	m.ReturnOnAssets = percent(f.NetProfit, f.TotalAssets)
	m.FixedAssetsTurnover = ratio(rev, current.FixedAssets)
	m.DebtToEquity = ratio(f.TotalLiabilities, f.Equity)
	m.DebtToCapital = ratio(f.TotalLiabilities, f.Equity+f.TotalLiabilities)
	m.EquityRatio = percent(f.Equity, f.TotalAssets)
	m.OperatingCashFlow = round2(f.NetProfit + current.Depreciation)

	return m
}

func revenueGrowth(current PeriodRecord, previous *PeriodRecord) float64 {
	if previous == nil || previous.Revenue <= 0 {
		return 0
	}
	return percent(current.Revenue-previous.Revenue, previous.Revenue)
}
