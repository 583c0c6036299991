package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// ProjectionEngine runs named scenarios through Project and assembles comparisons.
// It holds no per-run state and is safe to share between goroutines.
type ProjectionEngine struct {
	IncludeTrace bool // attach yearly snapshots to each scenario
	Logger       Logger
}

// NewProjectionEngine creates a new projection engine
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{
		IncludeTrace: true,
		Logger:       NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// Calculate projects an already-coerced input.
func (pe *ProjectionEngine) Calculate(name string, in domain.ProjectionInput) *domain.ScenarioProjection {
	var (
		res   domain.ProjectionResult
		trace []domain.YearSnapshot
	)
	if pe.IncludeTrace {
		res, trace = ProjectWithTrace(in)
	} else {
		res = Project(in)
	}

	pe.Logger.Debugf("scenario %q: years=%d rate=%.4f%% step_up=%.4f%% -> future=%.2f real=%.2f",
		name, in.Years, in.InterestRate, in.AnnualStepUp, res.FutureValue, res.InflationAdjustedValue)

	return &domain.ScenarioProjection{
		Name:      name,
		Input:     in,
		Result:    res,
		Breakdown: res.Breakdown(),
		Trace:     trace,
	}
}

// RunScenario coerces and projects a single scenario.
func (pe *ProjectionEngine) RunScenario(ctx context.Context, scenario *domain.Scenario) (*domain.ScenarioProjection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	in, err := FromRaw(scenario.Input)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}
	return pe.Calculate(scenario.Name, in), nil
}

// RunScenarios runs all scenarios and returns a comparison
func (pe *ProjectionEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ScenarioComparison, error) {
	projections := make([]domain.ScenarioProjection, len(config.Scenarios))
	for i := range config.Scenarios {
		p, err := pe.RunScenario(ctx, &config.Scenarios[i])
		if err != nil {
			return nil, fmt.Errorf("RunScenario failed: %w", err)
		}
		projections[i] = *p
	}

	currency := config.Currency
	if currency.Symbol == "" && currency.Grouping == "" {
		currency = domain.DefaultCurrency()
	}

	comparison := &domain.ScenarioComparison{
		ID:          idFunc(),
		GeneratedAt: nowFunc(),
		Currency:    currency,
		Scenarios:   projections,
	}
	comparison.BestFutureValue, comparison.BestInflationAdjusted = pe.rankScenarios(projections)
	comparison.Assumptions = GenerateAssumptions(projections)

	pe.Logger.Infof("projected %d scenarios (best nominal: %q, best real: %q)",
		len(projections), comparison.BestFutureValue, comparison.BestInflationAdjusted)

	return comparison, nil
}
