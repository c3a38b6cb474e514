// Package demo provides the Rebeccas Coffee sample company used by the demo
// endpoints, the CLI and the golden tests.
package demo

import "cashflowstory/internal/analytics"

// CompanyName is the name of the demo company
const CompanyName = "Rebeccas Coffee"

// Summary holds the analyst commentary that accompanies the demo dataset
type Summary struct {
	Company        string            `json:"company"`
	Industry       string            `json:"industry"`
	Years          string            `json:"years"`
	RevenueCAGR    string            `json:"revenue_cagr"`
	Strengths      []string          `json:"strengths"`
	Challenges     []string          `json:"challenges"`
	KeyMetrics2018 map[string]string `json:"key_metrics_2018"`
	AnalystNotes   []string          `json:"analyst_notes"`
}

// RebeccasCoffee returns four years (2015-2018) of figures in chronological order.
// A fresh slice is returned on every call.
func RebeccasCoffee() []analytics.PeriodRecord {
	return []analytics.PeriodRecord{
		{
			CompanyName:           CompanyName,
			Period:                "2015",
			Sequence:              2015,
			Revenue:               3_400_000,
			CostOfGoods:           2_400_000,
			Overheads:             600_000,
			Depreciation:          100_000,
			InterestPaid:          60_000,
			TaxPaid:               60_000,
			Cash:                  150_000,
			AccountsReceivable:    800_000,
			Inventory:             900_000,
			FixedAssets:           1_500_000,
			CurrentLiabilities:    700_000,
			NoncurrentLiabilities: 1_500_000,
			AccountsPayable:       400_000,
		},
		{
			CompanyName:           CompanyName,
			Period:                "2016",
			Sequence:              2016,
			Revenue:               4_200_000,
			CostOfGoods:           2_900_000,
			Overheads:             750_000,
			Depreciation:          120_000,
			InterestPaid:          75_000,
			TaxPaid:               85_000,
			Cash:                  180_000,
			AccountsReceivable:    1_100_000,
			Inventory:             1_200_000,
			FixedAssets:           1_800_000,
			CurrentLiabilities:    850_000,
			NoncurrentLiabilities: 1_700_000,
			AccountsPayable:       550_000,
		},
		{
			CompanyName:           CompanyName,
			Period:                "2017",
			Sequence:              2017,
			Revenue:               5_800_000,
			CostOfGoods:           4_100_000,
			Overheads:             950_000,
			Depreciation:          150_000,
			InterestPaid:          95_000,
			TaxPaid:               120_000,
			Cash:                  190_000,
			AccountsReceivable:    1_400_000,
			Inventory:             1_600_000,
			FixedAssets:           2_200_000,
			CurrentLiabilities:    1_000_000,
			NoncurrentLiabilities: 1_900_000,
			AccountsPayable:       650_000,
		},
		{
			CompanyName:           CompanyName,
			Period:                "2018",
			Sequence:              2018,
			Revenue:               6_600_000,
			CostOfGoods:           4_700_000,
			Overheads:             1_100_000,
			Depreciation:          180_000,
			InterestPaid:          110_000,
			TaxPaid:               140_000,
			Cash:                  200_000,
			AccountsReceivable:    1_500_000,
			Inventory:             1_800_000,
			FixedAssets:           2_500_000,
			CurrentLiabilities:    1_200_000,
			NoncurrentLiabilities: 2_100_000,
			AccountsPayable:       750_000,
		},
	}
}

// RebeccasSummary returns the analyst summary for the demo company
func RebeccasSummary() Summary {
	return Summary{
		Company:     CompanyName,
		Industry:    "Food & Beverage - Coffee Shops",
		Years:       "2015-2018",
		RevenueCAGR: "24.5%",
		Strengths: []string{
			"Strong revenue growth (94% over 3 years)",
			"Consistent positive cash flow",
			"Loyal customer base (high receivables)",
			"Asset-light model for coffee shops",
		},
		Challenges: []string{
			"Declining gross margins (29.4% → 28.8%)",
			"Overheads growing faster than revenue",
			"Working capital cycle extending (inventory buildup)",
			"High debt to equity ratio (increasing leverage)",
			"Interest coverage declining",
		},
		KeyMetrics2018: map[string]string{
			"gross_margin":         "28.8%",
			"operating_profit":     "12.1%",
			"net_profit":           "7.1%",
			"roe":                  "24.6%",
			"working_capital_days": "81 days",
			"debt_to_equity":       "1.82",
		},
		AnalystNotes: []string{
			"Growth is impressive but profitability under pressure",
			"Need to control overhead growth",
			"Inventory management needs attention",
			"High leverage is a risk if growth slows",
			"Consider renegotiating supplier payment terms",
		},
	}
}
