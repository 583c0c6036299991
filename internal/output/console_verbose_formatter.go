package output

import (
	"bytes"
	"fmt"
	"math"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders the detailed terminal report.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

const barWidth = 30

func (c ConsoleVerboseFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	cur := results.Currency

	fmt.Fprintln(&buf, renderTitle("INVESTMENT PROJECTION REPORT"))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, headerStyle.Render("KEY ASSUMPTIONS:"))
	for _, a := range assumptionsFor(results) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	summary := table{
		Title:   "SCENARIO SUMMARY",
		Headers: []string{"Scenario", "Future Value", "Inflation Adj.", "Principal", "Contributions", "Interest"},
	}
	for _, sc := range results.Scenarios {
		r := sc.Result
		summary.Rows = append(summary.Rows, []string{
			sc.Name,
			FormatCurrency(r.FutureValue, cur),
			FormatCurrency(r.InflationAdjustedValue, cur),
			FormatCurrency(r.TotalPrincipal, cur),
			FormatCurrency(r.TotalContributions, cur),
			FormatCurrency(r.TotalInterest, cur),
		})
	}
	fmt.Fprint(&buf, renderTable(summary))
	fmt.Fprintln(&buf)

	for i, sc := range results.Scenarios {
		writeScenarioDetail(&buf, i+1, sc, cur)
	}

	rec := AnalyzeScenarios(results)
	if results.BestFutureValue != "" {
		fmt.Fprintf(&buf, "Highest future value:      %s\n", results.BestFutureValue)
	}
	if rec.ScenarioName != "" {
		fmt.Fprintf(&buf, "Highest real (inflation-adjusted) value: %s (%s)\n",
			rec.ScenarioName, FormatCurrency(rec.InflationAdjustedValue, cur))
		if len(results.Scenarios) > 1 {
			fmt.Fprintf(&buf, "Lead over runner-up:       %s (%s)\n",
				FormatCurrency(rec.LeadOverRunnerUp, cur), FormatPercentage(rec.PercentageLead))
		}
	}
	return buf.Bytes(), nil
}

func writeScenarioDetail(buf *bytes.Buffer, idx int, sc domain.ScenarioProjection, cur domain.CurrencyOptions) {
	in := sc.Input
	fmt.Fprintln(buf, headerStyle.Render(fmt.Sprintf("SCENARIO %d: %s", idx, sc.Name)))
	fmt.Fprintf(buf, "  Initial %s, monthly %s, step-up %s, %d years at %s (inflation %s, compounded %s)\n",
		FormatCurrency(in.InitialInvestment, cur),
		FormatCurrency(in.MonthlyInvestment, cur),
		FormatPercentage(in.AnnualStepUp),
		in.Years,
		FormatPercentage(in.InterestRate),
		FormatPercentage(in.InflationRate),
		in.CompoundFrequency.Label(),
	)
	fmt.Fprintln(buf)

	maxValue := 0.0
	for _, s := range sc.Breakdown {
		if !math.IsNaN(s.Value) {
			maxValue = math.Max(maxValue, s.Value)
		}
	}
	shares := segmentShares(sc.Breakdown)
	for i, s := range sc.Breakdown {
		amount := fmt.Sprintf("%s (%.1f%%)", FormatCurrency(s.Value, cur), shares[i])
		fmt.Fprintln(buf, renderHorizontalBar(s.Label, amount, s.Value, maxValue, barWidth, s.Color))
	}
	fmt.Fprintln(buf)

	if len(sc.Trace) > 0 {
		yearly := table{Headers: []string{"Year", "Monthly", "Contributed", "Future Value", "Inflation Adj."}}
		for _, y := range sc.Trace {
			yearly.Rows = append(yearly.Rows, []string{
				intToString(y.Year),
				FormatCurrency(y.MonthlyContribution, cur),
				FormatCurrency(y.ContributedToDate, cur),
				FormatCurrency(y.FutureValue, cur),
				FormatCurrency(y.InflationAdjustedValue, cur),
			})
		}
		fmt.Fprint(buf, renderTable(yearly))
		fmt.Fprintln(buf)
	}
}
