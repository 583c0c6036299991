package models

import "github.com/rpgo/investment-calculator/internal/domain"

// ProjectionResponse represents the response from a single projection
type ProjectionResponse struct {
	ID         string                     `json:"id"`
	Projection *domain.ScenarioProjection `json:"projection"`
	Display    DisplayValues              `json:"display"`
}

// DisplayValues holds the result amounts formatted with the active currency options
type DisplayValues struct {
	FutureValue            string `json:"future_value"`
	TotalPrincipal         string `json:"total_principal"`
	TotalContributions     string `json:"total_contributions"`
	TotalInterest          string `json:"total_interest"`
	InflationAdjustedValue string `json:"inflation_adjusted_value"`
}

// SweepResponse represents the response from an interest-rate sweep
type SweepResponse struct {
	Input  domain.ProjectionInput `json:"input"`
	Points []domain.SweepPoint    `json:"points"`
}

// DefaultsResponse describes the calculator's starting form state
type DefaultsResponse struct {
	Input               domain.ProjectionInput     `json:"input"`
	Currency            domain.CurrencyOptions     `json:"currency"`
	CompoundFrequencies []domain.CompoundFrequency `json:"compound_frequencies"`
}

// FormatsResponse lists the report formats accepted by the render endpoint
type FormatsResponse struct {
	Formats []string `json:"formats"`
	Aliases []string `json:"aliases"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// NewError builds an ErrorResponse.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}
