package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// CSVDetailedExporter provides the year-end accumulation trace per scenario/year.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "MonthlyContribution", "ContributedToDate", "FutureValue", "InflationAdjustedValue"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range sortedByName(results) {
		for _, yr := range traceFor(sc) {
			row := []string{
				sc.Name,
				intToString(yr.Year),
				fixed(yr.MonthlyContribution),
				fixed(yr.ContributedToDate),
				fixed(yr.FutureValue),
				fixed(yr.InflationAdjustedValue),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
