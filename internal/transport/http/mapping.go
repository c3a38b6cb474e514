package http

import (
	"time"

	"cashflowstory/internal/analytics"
	"cashflowstory/internal/services"
	api "cashflowstory/pkg/contracts/api/v1"
)

func toPeriodRecord(d api.FinancialData) analytics.PeriodRecord {
	return analytics.PeriodRecord{
		CompanyName:           d.CompanyName,
		Period:                d.Period,
		Sequence:              d.Sequence,
		Revenue:               d.Revenue,
		CostOfGoods:           d.CostOfGoods,
		Overheads:             d.Overheads,
		Depreciation:          d.Depreciation,
		InterestPaid:          d.InterestPaid,
		TaxPaid:               d.TaxPaid,
		Cash:                  d.Cash,
		AccountsReceivable:    d.AccountsReceivable,
		Inventory:             d.Inventory,
		FixedAssets:           d.FixedAssets,
		CurrentLiabilities:    d.CurrentLiabilities,
		NoncurrentLiabilities: d.NoncurrentLiabilities,
		AccountsPayable:       d.AccountsPayable,
	}
}

func toPeriodRecords(data []api.FinancialData) []analytics.PeriodRecord {
	periods := make([]analytics.PeriodRecord, len(data))
	for i, d := range data {
		periods[i] = toPeriodRecord(d)
	}
	return periods
}

func toFinancialData(p analytics.PeriodRecord) api.FinancialData {
	return api.FinancialData{
		CompanyName:           p.CompanyName,
		Period:                p.Period,
		Sequence:              p.Sequence,
		Revenue:               p.Revenue,
		CostOfGoods:           p.CostOfGoods,
		Overheads:             p.Overheads,
		Depreciation:          p.Depreciation,
		InterestPaid:          p.InterestPaid,
		TaxPaid:               p.TaxPaid,
		Cash:                  p.Cash,
		AccountsReceivable:    p.AccountsReceivable,
		Inventory:             p.Inventory,
		FixedAssets:           p.FixedAssets,
		CurrentLiabilities:    p.CurrentLiabilities,
		NoncurrentLiabilities: p.NoncurrentLiabilities,
		AccountsPayable:       p.AccountsPayable,
	}
}

func toAnalyticsResponse(rec analytics.AnalyticsRecord, calculatedAt time.Time) api.AnalyticsResponse {
	resp := api.AnalyticsResponse{
		InputData:    toFinancialData(rec.Period),
		Analytics:    rec.Metrics.AsMap(),
		CalculatedAt: calculatedAt,
	}
	if rec.Previous != nil {
		prev := toFinancialData(*rec.Previous)
		resp.PreviousPeriod = &prev
	}
	return resp
}

func toBatchResponse(result *services.BatchResult) api.BatchAnalyticsResponse {
	periods := make([]api.AnalyticsResponse, len(result.Records))
	for i, rec := range result.Records {
		periods[i] = toAnalyticsResponse(rec, result.CalculatedAt)
	}
	return api.BatchAnalyticsResponse{
		CompanyName:  result.CompanyName,
		Periods:      periods,
		TotalPeriods: len(periods),
	}
}

func toDefinitionResponses(defs []analytics.MetricDefinition) []api.MetricDefinitionResponse {
	out := make([]api.MetricDefinitionResponse, len(defs))
	for i, d := range defs {
		out[i] = api.MetricDefinitionResponse{
			Name:        d.Name.String(),
			Group:       string(d.Group),
			Unit:        string(d.Unit),
			Explanation: d.Explanation,
		}
	}
	return out
}
