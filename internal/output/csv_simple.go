package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "InitialInvestment", "MonthlyInvestment", "AnnualStepUp", "Years", "InterestRate", "InflationRate", "CompoundFrequency", "TotalPrincipal", "TotalContributions", "TotalInterest", "FutureValue", "InflationAdjustedValue"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range sortedByName(results) {
		in, r := sc.Input, sc.Result
		row := []string{
			sc.Name,
			plain(in.InitialInvestment),
			plain(in.MonthlyInvestment),
			plain(in.AnnualStepUp),
			intToString(in.Years),
			plain(in.InterestRate),
			plain(in.InflationRate),
			string(in.CompoundFrequency),
			fixed(r.TotalPrincipal),
			fixed(r.TotalContributions),
			fixed(r.TotalInterest),
			fixed(r.FutureValue),
			fixed(r.InflationAdjustedValue),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
