package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	cur := results.Currency
	fmt.Fprintln(&buf, "INVESTMENT SCENARIO SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintln(&buf)
	for _, sc := range sortedByName(results) {
		r := sc.Result
		fmt.Fprintf(&buf, "%s: FutureValue=%s InflationAdjusted=%s\n",
			sc.Name,
			FormatCurrency(r.FutureValue, cur),
			FormatCurrency(r.InflationAdjustedValue, cur),
		)
		fmt.Fprintf(&buf, "  Principal=%s Contributions=%s Interest=%s\n",
			FormatCurrency(r.TotalPrincipal, cur),
			FormatCurrency(r.TotalContributions, cur),
			FormatCurrency(r.TotalInterest, cur),
		)
	}
	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (Δ %s / %s)\n", rec.ScenarioName,
			FormatCurrency(rec.LeadOverRunnerUp, cur), FormatPercentage(rec.PercentageLead))
	}
	return buf.Bytes(), nil
}
