package output

import (
	"sort"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/domain"
)

// assumptionsFor returns the comparison's assumptions, regenerating them for
// comparisons assembled outside the engine.
func assumptionsFor(results *domain.ScenarioComparison) []string {
	if len(results.Assumptions) > 0 {
		return results.Assumptions
	}
	return calculation.GenerateAssumptions(results.Scenarios)
}

// traceFor returns the yearly snapshots of a scenario, recomputing them when the
// comparison was produced without a trace.
func traceFor(sc domain.ScenarioProjection) []domain.YearSnapshot {
	if sc.Trace != nil {
		return sc.Trace
	}
	_, trace := calculation.ProjectWithTrace(sc.Input)
	return trace
}

// sortedByName returns a copy of the scenarios ordered by name.
func sortedByName(results *domain.ScenarioComparison) []domain.ScenarioProjection {
	scenarios := append([]domain.ScenarioProjection(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	return scenarios
}
