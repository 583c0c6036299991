package models

import "github.com/rpgo/investment-calculator/internal/domain"

// ProjectionRequest represents the request body for a single projection.
// Numeric input fields accept JSON numbers or numeric strings.
type ProjectionRequest struct {
	Name  string          `json:"name,omitempty"`
	Input domain.RawInput `json:"input"`
	Trace bool            `json:"trace,omitempty"` // include year-end snapshots
}

// CompareRequest represents the request body for a scenario comparison.
// Currency falls back to the server's configured display options.
type CompareRequest struct {
	Currency  *domain.CurrencyOptions `json:"currency,omitempty"`
	Scenarios []domain.Scenario       `json:"scenarios" binding:"required"`
}

// SweepRequest represents the request body for an interest-rate sweep.
type SweepRequest struct {
	Input domain.RawInput `json:"input"`
	From  float64         `json:"from"`
	To    float64         `json:"to"`
	Step  float64         `json:"step"`
}
