package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawInput is the collector-facing form of ProjectionInput. Every numeric field
// accepts a number or a numeric string in both JSON and YAML.
type RawInput struct {
	InitialInvestment decimal.Decimal `json:"initial_investment" yaml:"initial_investment"`
	MonthlyInvestment decimal.Decimal `json:"monthly_investment" yaml:"monthly_investment"`
	AnnualStepUp      decimal.Decimal `json:"annual_step_up" yaml:"annual_step_up"`
	Years             decimal.Decimal `json:"years" yaml:"years"`
	InterestRate      decimal.Decimal `json:"interest_rate" yaml:"interest_rate"`
	InflationRate     decimal.Decimal `json:"inflation_rate" yaml:"inflation_rate"`
	CompoundFrequency string          `json:"compound_frequency,omitempty" yaml:"compound_frequency,omitempty"`
}

// Scenario is a named set of inputs from a scenario file.
type Scenario struct {
	Name  string   `json:"name" yaml:"name"`
	Input RawInput `json:"input" yaml:"input"`
}

// Grouping styles for thousand separators.
const (
	GroupingWestern = "western" // 1,234,567
	GroupingIndian  = "indian"  // 12,34,567
)

// CurrencyOptions controls how amounts are displayed.
type CurrencyOptions struct {
	Symbol       string `json:"symbol" yaml:"symbol" toml:"symbol"`
	Grouping     string `json:"grouping" yaml:"grouping" toml:"grouping"`
	DecimalScale int32  `json:"decimal_scale" yaml:"decimal_scale" toml:"decimal_scale"`
}

// DefaultCurrency is rupees with western separators and no decimals.
func DefaultCurrency() CurrencyOptions {
	return CurrencyOptions{Symbol: "₹", Grouping: GroupingWestern, DecimalScale: 0}
}

// Configuration is the top-level structure of a scenario file.
type Configuration struct {
	Currency  CurrencyOptions `json:"currency" yaml:"currency"`
	Scenarios []Scenario      `json:"scenarios" yaml:"scenarios"`
}

// ScenarioProjection is the computed projection of one scenario.
type ScenarioProjection struct {
	Name      string             `json:"name"`
	Input     ProjectionInput    `json:"input"`
	Result    ProjectionResult   `json:"result"`
	Breakdown []BreakdownSegment `json:"breakdown"`
	Trace     []YearSnapshot     `json:"trace,omitempty"`
}

// ScenarioComparison collects the projections of a scenario set.
type ScenarioComparison struct {
	ID                    string               `json:"id"`
	GeneratedAt           time.Time            `json:"generated_at"`
	Currency              CurrencyOptions      `json:"currency"`
	Scenarios             []ScenarioProjection `json:"scenarios"`
	BestFutureValue       string               `json:"best_future_value,omitempty"`
	BestInflationAdjusted string               `json:"best_inflation_adjusted,omitempty"`
	Assumptions           []string             `json:"assumptions,omitempty"`
}
