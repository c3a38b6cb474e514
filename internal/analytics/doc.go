// Package analytics implements the Cash Flow Story ratio engine.
//
// The engine turns one reporting period's profit-and-loss and balance-sheet
// figures into a fixed panel of 21 financial metrics. A period may be paired
// with its immediate predecessor so that revenue growth can be derived.
//
// # Metric Groups
//
// The 21 metrics fall into three groups:
//
//  1. Profitability: revenue growth, gross margin, operating profit, net profit,
//     EBITDA and interest coverage
//  2. Working Capital: receivable, inventory and payable days, the cash
//     conversion cycle, working capital per 100 of revenue and the current ratio
//  3. Capital Efficiency: return on capital, equity and assets, asset turnover,
//     leverage ratios and an operating cash flow approximation
//
// # Architecture
//
//   - types.go: PeriodRecord, Metric, MetricSet and AnalyticsRecord
//   - calculator.go: Derive and Compute, the single formula definition
//   - rounding.go: two-decimal rounding and the zero-denominator guard
//   - series.go: ComputeSeries, the concurrent Evaluator and Chronological
//   - explain.go: static metric explanations and definitions
//   - validate.go: input validation performed before records reach the engine
//
// # Zero Guard
//
// Every ratio whose denominator is zero or negative resolves to 0.0. Revenue
// growth also resolves to 0.0 when no previous period is supplied or the
// previous revenue is not strictly positive. Compute never returns an error.
//
// # Rounding
//
// Each metric is rounded to two decimals from the exact binary value of the
// float, with exact ties going to the even digit: 2.675 becomes 2.67 and
// 90.625 becomes 90.62. working_capital_days is the rounded sum
// of the three already rounded day metrics. Batch evaluation calls Compute for
// every element, so a period yields identical metrics whether it is computed
// alone or as part of a series.
//
// # Usage Example
//
//	prev := analytics.PeriodRecord{Period: "2017", Revenue: 5_800_000}
//	cur := analytics.PeriodRecord{Period: "2018", Revenue: 6_600_000, CostOfGoods: 4_700_000}
//
//	if err := analytics.Validate(cur); err != nil {
//	    return err
//	}
//	metrics := analytics.Compute(cur, &prev)
//	fmt.Println(metrics.RevenueGrowthPercent) // 13.79
//
//	evaluator := analytics.NewEvaluator(analytics.WithConcurrency(4))
//	records, err := evaluator.Evaluate(ctx, periods)
package analytics
