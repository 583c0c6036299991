package output

import (
	"math"
	"sort"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName           string
	FutureValue            float64
	InflationAdjustedValue float64
	// LeadOverRunnerUp is the inflation-adjusted margin over the second best scenario.
	LeadOverRunnerUp float64
	PercentageLead   float64
}

// AnalyzeScenarios picks the scenario with the highest inflation-adjusted value.
// Scenarios whose result is NaN are never recommended.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	type ranked struct {
		name string
		real float64
		fv   float64
	}
	var ranks []ranked
	for _, sc := range results.Scenarios {
		if math.IsNaN(sc.Result.InflationAdjustedValue) {
			continue
		}
		ranks = append(ranks, ranked{sc.Name, sc.Result.InflationAdjustedValue, sc.Result.FutureValue})
	}
	if len(ranks) == 0 {
		return Recommendation{}
	}
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].real > ranks[j].real })
	best := ranks[0]
	rec := Recommendation{ScenarioName: best.name, FutureValue: best.fv, InflationAdjustedValue: best.real}
	if len(ranks) > 1 {
		runnerUp := ranks[1].real
		rec.LeadOverRunnerUp = best.real - runnerUp
		if runnerUp > 0 {
			rec.PercentageLead = rec.LeadOverRunnerUp / runnerUp * 100
		}
	}
	return rec
}
