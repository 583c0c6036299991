package domain

import (
	"fmt"
	"math"
	"strings"
)

// CompoundFrequency is the compounding period offered by the input form.
// It is carried through to reports but does not change the projection math.
type CompoundFrequency string

const (
	CompoundDaily     CompoundFrequency = "daily"
	CompoundWeekly    CompoundFrequency = "weekly"
	CompoundMonthly   CompoundFrequency = "monthly"
	CompoundQuarterly CompoundFrequency = "quarterly"
	CompoundYearly    CompoundFrequency = "yearly"
)

// CompoundFrequencies lists the accepted frequencies in form order.
var CompoundFrequencies = []CompoundFrequency{
	CompoundDaily,
	CompoundWeekly,
	CompoundMonthly,
	CompoundQuarterly,
	CompoundYearly,
}

// legacyFrequencyCodes maps the numeric option values used by older web forms.
var legacyFrequencyCodes = map[string]CompoundFrequency{
	"1": CompoundDaily,
	"2": CompoundWeekly,
	"3": CompoundMonthly,
	"4": CompoundQuarterly,
	"5": CompoundYearly,
}

// ParseCompoundFrequency accepts a name ("monthly") or a form code ("3").
// An empty value resolves to yearly.
func ParseCompoundFrequency(s string) (CompoundFrequency, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	if n == "" {
		return CompoundYearly, nil
	}
	if f, ok := legacyFrequencyCodes[n]; ok {
		return f, nil
	}
	for _, f := range CompoundFrequencies {
		if string(f) == n {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown compound frequency %q", s)
}

// Label returns the display label used by the input form.
func (f CompoundFrequency) Label() string {
	if f == "" {
		return "Yearly"
	}
	return strings.ToUpper(string(f[:1])) + string(f[1:])
}

// ProjectionInput holds the scalar inputs of a single projection.
// Rates are in percent (7 means 7%).
type ProjectionInput struct {
	InitialInvestment float64           `json:"initial_investment" yaml:"initial_investment"`
	MonthlyInvestment float64           `json:"monthly_investment" yaml:"monthly_investment"`
	AnnualStepUp      float64           `json:"annual_step_up" yaml:"annual_step_up"`
	Years             int               `json:"years" yaml:"years"`
	InterestRate      float64           `json:"interest_rate" yaml:"interest_rate"`
	InflationRate     float64           `json:"inflation_rate" yaml:"inflation_rate"`
	CompoundFrequency CompoundFrequency `json:"compound_frequency" yaml:"compound_frequency"`
}

// ProjectionResult holds the derived outputs of a projection.
type ProjectionResult struct {
	FutureValue            float64 `json:"future_value"`
	TotalPrincipal         float64 `json:"total_principal"`
	TotalContributions     float64 `json:"total_contributions"`
	TotalInterest          float64 `json:"total_interest"`
	InflationAdjustedValue float64 `json:"inflation_adjusted_value"`
}

// Finite reports whether every figure is a finite number.
func (r ProjectionResult) Finite() bool {
	for _, v := range []float64{r.FutureValue, r.TotalPrincipal, r.TotalContributions, r.TotalInterest, r.InflationAdjustedValue} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// YearSnapshot captures the running accumulation at the end of a projection year.
type YearSnapshot struct {
	Year                   int     `json:"year"`
	MonthlyContribution    float64 `json:"monthly_contribution"`
	ContributedToDate      float64 `json:"contributed_to_date"`
	FutureValue            float64 `json:"future_value"`
	InflationAdjustedValue float64 `json:"inflation_adjusted_value"`
}

// BreakdownSegment is one slice of the result chart.
type BreakdownSegment struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// Breakdown returns the chart segments for a result. The first segment is labeled
// "Initial Investment" but carries the total principal, matching the chart the
// calculator has always drawn.
func (r ProjectionResult) Breakdown() []BreakdownSegment {
	return []BreakdownSegment{
		{Label: "Initial Investment", Value: r.TotalPrincipal, Color: "lightblue"},
		{Label: "Contributions", Value: r.TotalContributions, Color: "lightgreen"},
		{Label: "Interest", Value: r.TotalInterest, Color: "red"},
	}
}

// SweepPoint is one row of an interest-rate sweep.
type SweepPoint struct {
	InterestRate float64          `json:"interest_rate"`
	Result       ProjectionResult `json:"result"`
}
