package api

import "time"

// AnalyticsResponse represents the metrics computed for one period.
// Percentages are expressed in %, ratios as absolute numbers and days in calendar days.
type AnalyticsResponse struct {
	InputData      FinancialData      `json:"input_data"`
	Analytics      map[string]float64 `json:"analytics"`
	PreviousPeriod *FinancialData     `json:"previous_period,omitempty"`
	CalculatedAt   time.Time          `json:"calculated_at"`
}

// BatchAnalyticsResponse represents the metrics computed for a series of periods
type BatchAnalyticsResponse struct {
	CompanyName  string              `json:"company_name"`
	Periods      []AnalyticsResponse `json:"periods"`
	TotalPeriods int                 `json:"total_periods"`
}

// MetricDefinitionResponse describes one metric
type MetricDefinitionResponse struct {
	Name        string `json:"name"`
	Group       string `json:"group"`
	Unit        string `json:"unit"`
	Explanation string `json:"explanation"`
}

// MetricExplanationResponse represents the explanation of a single metric
type MetricExplanationResponse struct {
	Metric      string `json:"metric"`
	Explanation string `json:"explanation"`
}

// RootResponse represents the API information document
type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
	Health  string `json:"health"`
}

// HealthResponse represents the basic health document
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
