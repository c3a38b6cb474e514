package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"cashflowstory/internal/analytics"
)

// Period returns a valid record with a 40% gross margin and a small balance sheet
func Period(company, period string, revenue float64) analytics.PeriodRecord {
	return analytics.PeriodRecord{
		CompanyName:        company,
		Period:             period,
		Revenue:            revenue,
		CostOfGoods:        revenue * 0.6,
		Overheads:          revenue * 0.2,
		Cash:               revenue * 0.1,
		AccountsReceivable: revenue * 0.15,
		Inventory:          revenue * 0.1,
		FixedAssets:        revenue * 0.5,
		CurrentLiabilities: revenue * 0.2,
		AccountsPayable:    revenue * 0.1,
	}
}

// WriteFile writes content to name inside a per-test temporary directory
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
