package calculation

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	// ErrNonNumeric is returned when an input field cannot be read as a number.
	ErrNonNumeric = errors.New("value is not numeric")
	// ErrFractionalYears is returned when the horizon is not a whole number of years.
	ErrFractionalYears = errors.New("years must be a whole number")
)

// StringInput carries the raw text of each field, as typed into a form.
type StringInput struct {
	InitialInvestment string
	MonthlyInvestment string
	AnnualStepUp      string
	Years             string
	InterestRate      string
	InflationRate     string
	CompoundFrequency string
}

// ParseNumber reads a single numeric field. The field name is included in the error.
func ParseNumber(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s %q: %w", field, value, ErrNonNumeric)
	}
	return d, nil
}

// ParseRaw converts form text into a RawInput.
func ParseRaw(s StringInput) (domain.RawInput, error) {
	var raw domain.RawInput
	fields := []struct {
		name  string
		value string
		dst   *decimal.Decimal
	}{
		{"initial_investment", s.InitialInvestment, &raw.InitialInvestment},
		{"monthly_investment", s.MonthlyInvestment, &raw.MonthlyInvestment},
		{"annual_step_up", s.AnnualStepUp, &raw.AnnualStepUp},
		{"years", s.Years, &raw.Years},
		{"interest_rate", s.InterestRate, &raw.InterestRate},
		{"inflation_rate", s.InflationRate, &raw.InflationRate},
	}
	for _, f := range fields {
		d, err := ParseNumber(f.name, f.value)
		if err != nil {
			return domain.RawInput{}, err
		}
		*f.dst = d
	}
	raw.CompoundFrequency = s.CompoundFrequency
	return raw, nil
}

// ParseStrings converts form text straight into a ProjectionInput.
func ParseStrings(s StringInput) (domain.ProjectionInput, error) {
	raw, err := ParseRaw(s)
	if err != nil {
		return domain.ProjectionInput{}, err
	}
	return FromRaw(raw)
}

// FromRaw coerces a RawInput into the float inputs of the engine.
// Only the year count and compound frequency can fail here.
func FromRaw(raw domain.RawInput) (domain.ProjectionInput, error) {
	if !raw.Years.Equal(raw.Years.Truncate(0)) {
		return domain.ProjectionInput{}, fmt.Errorf("years %s: %w", raw.Years.String(), ErrFractionalYears)
	}
	freq, err := domain.ParseCompoundFrequency(raw.CompoundFrequency)
	if err != nil {
		return domain.ProjectionInput{}, fmt.Errorf("compound_frequency: %w", err)
	}
	// Clamp so IntPart cannot wrap a huge year count into the valid range.
	years := raw.Years
	if limit := decimal.NewFromInt(math.MaxInt32); years.GreaterThan(limit) {
		years = limit
	} else if years.LessThan(limit.Neg()) {
		years = limit.Neg()
	}
	return domain.ProjectionInput{
		InitialInvestment: raw.InitialInvestment.InexactFloat64(),
		MonthlyInvestment: raw.MonthlyInvestment.InexactFloat64(),
		AnnualStepUp:      raw.AnnualStepUp.InexactFloat64(),
		Years:             int(years.IntPart()),
		InterestRate:      raw.InterestRate.InexactFloat64(),
		InflationRate:     raw.InflationRate.InexactFloat64(),
		CompoundFrequency: freq,
	}, nil
}

// ToRaw is the inverse of FromRaw, used when echoing inputs back to collectors.
func ToRaw(in domain.ProjectionInput) domain.RawInput {
	return domain.RawInput{
		InitialInvestment: decimal.NewFromFloat(in.InitialInvestment),
		MonthlyInvestment: decimal.NewFromFloat(in.MonthlyInvestment),
		AnnualStepUp:      decimal.NewFromFloat(in.AnnualStepUp),
		Years:             decimal.NewFromInt(int64(in.Years)),
		InterestRate:      decimal.NewFromFloat(in.InterestRate),
		InflationRate:     decimal.NewFromFloat(in.InflationRate),
		CompoundFrequency: string(in.CompoundFrequency),
	}
}
