package calculation

import (
	"errors"
	"testing"

	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStrings() StringInput {
	return StringInput{
		InitialInvestment: "10000",
		MonthlyInvestment: "5000",
		AnnualStepUp:      "5",
		Years:             "5",
		InterestRate:      "7",
		InflationRate:     "4.5",
		CompoundFrequency: "5",
	}
}

func TestParseStrings_Success(t *testing.T) {
	in, err := ParseStrings(validStrings())
	require.NoError(t, err)
	assert.Equal(t, referenceInput(), in)
}

func TestParseStrings_TrimsWhitespace(t *testing.T) {
	s := validStrings()
	s.InterestRate = "  7 "
	in, err := ParseStrings(s)
	require.NoError(t, err)
	assert.Equal(t, 7.0, in.InterestRate)
}

func TestParseStrings_NonNumeric(t *testing.T) {
	tests := []struct {
		name  string
		set   func(*StringInput)
		field string
	}{
		{"initial", func(s *StringInput) { s.InitialInvestment = "ten" }, "initial_investment"},
		{"monthly empty", func(s *StringInput) { s.MonthlyInvestment = "" }, "monthly_investment"},
		{"step-up", func(s *StringInput) { s.AnnualStepUp = "5%" }, "annual_step_up"},
		{"years", func(s *StringInput) { s.Years = "five" }, "years"},
		{"interest", func(s *StringInput) { s.InterestRate = "NaN" }, "interest_rate"},
		{"inflation", func(s *StringInput) { s.InflationRate = "4,5" }, "inflation_rate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validStrings()
			tt.set(&s)
			_, err := ParseStrings(s)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrNonNumeric))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestFromRaw_FractionalYears(t *testing.T) {
	raw := ToRaw(referenceInput())
	raw.Years = decimal.NewFromFloat(5.5)
	_, err := FromRaw(raw)
	assert.ErrorIs(t, err, ErrFractionalYears)

	raw.Years = decimal.RequireFromString("5.000")
	in, err := FromRaw(raw)
	require.NoError(t, err)
	assert.Equal(t, 5, in.Years)
}

func TestFromRaw_HugeYearsDoNotWrap(t *testing.T) {
	raw := ToRaw(referenceInput())
	raw.Years = decimal.RequireFromString("1e30")
	in, err := FromRaw(raw)
	require.NoError(t, err)
	assert.Greater(t, in.Years, 100)

	raw.Years = decimal.RequireFromString("-1e30")
	in, err = FromRaw(raw)
	require.NoError(t, err)
	assert.Less(t, in.Years, 0)
}

func TestFromRaw_CompoundFrequency(t *testing.T) {
	raw := ToRaw(referenceInput())

	raw.CompoundFrequency = ""
	in, err := FromRaw(raw)
	require.NoError(t, err)
	assert.Equal(t, domain.CompoundYearly, in.CompoundFrequency)

	raw.CompoundFrequency = "Monthly"
	in, err = FromRaw(raw)
	require.NoError(t, err)
	assert.Equal(t, domain.CompoundMonthly, in.CompoundFrequency)

	raw.CompoundFrequency = "hourly"
	_, err = FromRaw(raw)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "compound_frequency")
}

func TestToRaw_RoundTrip(t *testing.T) {
	in := referenceInput()
	out, err := FromRaw(ToRaw(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
