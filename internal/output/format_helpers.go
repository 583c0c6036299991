package output

import (
	"fmt"
	"math"
	"strconv"

	"github.com/rpgo/investment-calculator/internal/domain"
	money "github.com/rpgo/investment-calculator/pkg/decimal"
)

// FormatCurrency formats an amount with the comparison's currency options.
// NaN and infinite values are printed as-is after the symbol.
func FormatCurrency(amount float64, c domain.CurrencyOptions) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return c.Symbol + strconv.FormatFloat(amount, 'f', -1, 64)
	}
	return money.NewMoney(amount).Format(displayFor(c))
}

// FormatPercentage formats a percent value with 2 decimals.
func FormatPercentage(v float64) string { return fmt.Sprintf("%.2f%%", v) }

func displayFor(c domain.CurrencyOptions) money.Display {
	g := money.GroupWestern
	if c.Grouping == domain.GroupingIndian {
		g = money.GroupIndian
	}
	return money.Display{Symbol: c.Symbol, Grouping: g, Scale: c.DecimalScale}
}

// fixed renders a float for machine-readable outputs.
func fixed(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

func plain(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func intToString(i int) string { return strconv.Itoa(i) }

// segmentShares returns each breakdown value as a percent of the positive total.
// Negative segments count as zero.
func segmentShares(segments []domain.BreakdownSegment) []float64 {
	total := money.Zero()
	for _, s := range segments {
		if s.Value > 0 && !math.IsInf(s.Value, 0) {
			total = total.Add(money.NewMoney(s.Value))
		}
	}
	shares := make([]float64, len(segments))
	for i, s := range segments {
		if s.Value <= 0 || math.IsNaN(s.Value) || math.IsInf(s.Value, 0) {
			continue
		}
		shares[i] = money.NewMoney(s.Value).Share(total).Shift(2).Round(2).InexactFloat64()
	}
	return shares
}
