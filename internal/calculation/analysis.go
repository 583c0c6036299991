package calculation

import (
	"fmt"
	"math"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// rankScenarios returns the names of the scenarios with the highest nominal and
// inflation-adjusted future values. NaN results never win; ties keep the first.
func (pe *ProjectionEngine) rankScenarios(scenarios []domain.ScenarioProjection) (bestNominal, bestReal string) {
	topNominal, topReal := math.Inf(-1), math.Inf(-1)
	for _, sc := range scenarios {
		if v := sc.Result.FutureValue; !math.IsNaN(v) && v > topNominal {
			topNominal = v
			bestNominal = sc.Name
		}
		if v := sc.Result.InflationAdjustedValue; !math.IsNaN(v) && v > topReal {
			topReal = v
			bestReal = sc.Name
		}
	}
	return bestNominal, bestReal
}

// GenerateAssumptions describes the modeling assumptions behind a set of projections.
func GenerateAssumptions(scenarios []domain.ScenarioProjection) []string {
	out := []string{
		"Returns compound monthly at the equivalent of the annual rate",
		"Contributions are made monthly; the step-up applies from every 12th month",
		"The initial investment is grown in bulk over the horizon and also seeds the monthly balance",
		"Inflation adjustment discounts the final balance over the full horizon",
		"Compound frequency is recorded for reference and does not change the result",
	}
	for _, sc := range scenarios {
		out = append(out, fmt.Sprintf("%s: %.2f%% return, %.2f%% inflation, %.2f%% step-up over %d years (%s)",
			sc.Name, sc.Input.InterestRate, sc.Input.InflationRate, sc.Input.AnnualStepUp, sc.Input.Years, sc.Input.CompoundFrequency.Label()))
	}
	return out
}
