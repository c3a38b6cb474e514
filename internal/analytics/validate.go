package analytics

import (
	"errors"
	"fmt"
	"math"
)

// ErrEmptySeries is returned when a series holds no periods
var ErrEmptySeries = errors.New("at least one period is required")

// Validate checks that a record can be handed to Compute.
// Revenue must be strictly positive, and revenue, cash, receivables,
// inventory and fixed assets must not be negative. Non-finite figures are
// rejected outright.
func Validate(p PeriodRecord) error {
	for _, f := range p.fields() {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &ValidationError{
				Field:   f.name,
				Message: fmt.Sprintf("%s must be a finite number", f.name),
			}
		}
	}

	if p.Revenue <= 0 {
		return &ValidationError{
			Field:   "revenue",
			Message: "Revenue must be greater than 0",
			Value:   p.Revenue,
		}
	}

	// revenue is already known to be positive here
	nonNegative := []namedValue{
		{"cash", p.Cash},
		{"accounts_receivable", p.AccountsReceivable},
		{"inventory", p.Inventory},
		{"fixed_assets", p.FixedAssets},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			return &ValidationError{
				Field:   f.name,
				Message: fmt.Sprintf("%s cannot be negative", f.name),
				Value:   f.value,
			}
		}
	}

	return nil
}

// ValidateSeries validates every record of a series.
// The returned ValidationError carries the 1-based position of the offending period.
func ValidateSeries(periods []PeriodRecord) error {
	if len(periods) == 0 {
		return ErrEmptySeries
	}
	for i, p := range periods {
		if err := Validate(p); err != nil {
			var ve *ValidationError
			if errors.As(err, &ve) {
				ve.Index = i + 1
				return ve
			}
			return fmt.Errorf("period %d: %w", i+1, err)
		}
	}
	return nil
}

type namedValue struct {
	name  string
	value float64
}

func (p PeriodRecord) fields() []namedValue {
	return []namedValue{
		{"revenue", p.Revenue},
		{"cost_of_goods", p.CostOfGoods},
		{"overheads", p.Overheads},
		{"depreciation", p.Depreciation},
		{"interest_paid", p.InterestPaid},
		{"tax_paid", p.TaxPaid},
		{"cash", p.Cash},
		{"accounts_receivable", p.AccountsReceivable},
		{"inventory", p.Inventory},
		{"fixed_assets", p.FixedAssets},
		{"current_liabilities", p.CurrentLiabilities},
		{"noncurrent_liabilities", p.NoncurrentLiabilities},
		{"accounts_payable", p.AccountsPayable},
	}
}
