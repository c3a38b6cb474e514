// Package api contains API contract definitions for the Cash Flow Story service.
// Version v1 represents the current stable API version.
package api

// Calculation API Requests

// FinancialData represents the raw figures for one reporting period.
// Absent numeric fields default to zero.
type FinancialData struct {
	CompanyName string `json:"company_name" validate:"required,min=1"`
	Period      string `json:"period" validate:"required"`
	Sequence    int    `json:"sequence,omitempty" validate:"omitempty,min=1"`

	// Profit & loss
	Revenue      float64 `json:"revenue" validate:"gt=0"`
	CostOfGoods  float64 `json:"cost_of_goods" validate:"gte=0"`
	Overheads    float64 `json:"overheads" validate:"gte=0"`
	Depreciation float64 `json:"depreciation" validate:"gte=0"`
	InterestPaid float64 `json:"interest_paid" validate:"gte=0"`
	TaxPaid      float64 `json:"tax_paid" validate:"gte=0"`

	// Balance sheet
	Cash                  float64 `json:"cash" validate:"gte=0"`
	AccountsReceivable    float64 `json:"accounts_receivable" validate:"gte=0"`
	Inventory             float64 `json:"inventory" validate:"gte=0"`
	FixedAssets           float64 `json:"fixed_assets" validate:"gte=0"`
	CurrentLiabilities    float64 `json:"current_liabilities" validate:"gte=0"`
	NoncurrentLiabilities float64 `json:"noncurrent_liabilities" validate:"gte=0"`
	AccountsPayable       float64 `json:"accounts_payable" validate:"gte=0"`
}

// CalculateRequest represents a single-period calculation request
type CalculateRequest struct {
	Data           FinancialData  `json:"data"`
	PreviousPeriod *FinancialData `json:"previous_period,omitempty"`
}

// BatchCalculationRequest represents a multi-period calculation request.
// Periods are expected in chronological order unless every period carries a sequence.
type BatchCalculationRequest struct {
	CompanyName string          `json:"company_name" validate:"required"`
	Periods     []FinancialData `json:"periods" validate:"required,min=1,dive"`
}
