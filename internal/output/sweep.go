package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// FormatSweep renders an interest-rate sweep as a console table, CSV or JSON.
func FormatSweep(points []domain.SweepPoint, cur domain.CurrencyOptions, format string) ([]byte, error) {
	switch n := NormalizeFormatName(format); n {
	case "json":
		return json.MarshalIndent(points, "", "  ")
	case "csv", "detailed-csv":
		buf := &bytes.Buffer{}
		w := csv.NewWriter(buf)
		if err := w.Write([]string{"InterestRate", "FutureValue", "InflationAdjustedValue", "TotalInterest"}); err != nil {
			return nil, err
		}
		for _, p := range points {
			if err := w.Write([]string{plain(p.InterestRate), fixed(p.Result.FutureValue), fixed(p.Result.InflationAdjustedValue), fixed(p.Result.TotalInterest)}); err != nil {
				return nil, err
			}
		}
		w.Flush()
		return buf.Bytes(), w.Error()
	case "console", "console-lite":
		t := table{
			Title:   "INTEREST RATE SWEEP",
			Headers: []string{"Rate", "Future Value", "Inflation Adj.", "Interest"},
		}
		for _, p := range points {
			t.Rows = append(t.Rows, []string{
				FormatPercentage(p.InterestRate),
				FormatCurrency(p.Result.FutureValue, cur),
				FormatCurrency(p.Result.InflationAdjustedValue, cur),
				FormatCurrency(p.Result.TotalInterest, cur),
			})
		}
		return []byte(renderTable(t)), nil
	default:
		return nil, fmt.Errorf("%w: %q is not available for sweeps (use console, csv or json)", ErrUnsupportedFormat, format)
	}
}
