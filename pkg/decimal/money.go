package decimal

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// Grouping selects how integer digits are separated for display.
type Grouping string

const (
	// GroupWestern groups every three digits: 1,234,567
	GroupWestern Grouping = "western"
	// GroupIndian groups the last three digits then pairs: 12,34,567
	GroupIndian Grouping = "indian"
	// GroupNone prints digits without separators.
	GroupNone Grouping = "none"
)

// Display describes how a Money value is rendered as a currency string.
type Display struct {
	Symbol   string
	Grouping Grouping
	Scale    int32
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the amount to the given number of decimal places (half away from zero).
func (m Money) Round(places int32) Money {
	return Money{m.Decimal.Round(places)}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Share returns m as a fraction of total, or zero when total is not positive.
func (m Money) Share(total Money) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	return m.Decimal.Div(total.Decimal)
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the string representation with two decimals.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount with the display's symbol, separators and scale.
// Negative amounts get a leading minus before the symbol.
func (m Money) Format(d Display) string {
	r := m.Decimal.Round(d.Scale)
	neg := r.IsNegative()
	if neg {
		r = r.Neg()
	}

	intPart, frac, _ := strings.Cut(r.StringFixed(d.Scale), ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(d.Symbol)
	b.WriteString(groupDigits(intPart, d.Grouping))
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

func groupDigits(digits string, g Grouping) string {
	switch g {
	case GroupNone:
		return digits
	case GroupIndian:
		return groupBy(digits, 3, 2)
	default:
		// humanize covers everything that fits an int64.
		if len(digits) <= 18 {
			if n, err := decimal.NewFromString(digits); err == nil {
				return humanize.Comma(n.IntPart())
			}
		}
		return groupBy(digits, 3, 3)
	}
}

// groupBy separates the trailing `first` digits, then every `rest` digits to the left.
func groupBy(digits string, first, rest int) string {
	if len(digits) <= first {
		return digits
	}
	head, tail := digits[:len(digits)-first], digits[len(digits)-first:]
	var parts []string
	for len(head) > rest {
		parts = append([]string{head[len(head)-rest:]}, parts...)
		head = head[:len(head)-rest]
	}
	parts = append([]string{head}, parts...)
	parts = append(parts, tail)
	return strings.Join(parts, ",")
}
