package integration

import (
	"context"
	"testing"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndToEndCalculation(t *testing.T) {
	// Load a scenario file and run it through the engine
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile("../testdata/example_config.yaml")

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Len(t, cfg.Scenarios, 3)

	engine := calculation.NewProjectionEngine()
	results, err := engine.RunScenarios(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, results.Scenarios, 3)

	assert.Equal(t, "Long Horizon Equity", results.BestFutureValue)
	assert.Equal(t, "Long Horizon Equity", results.BestInflationAdjusted)
	assert.NotEmpty(t, results.Assumptions)

	for _, s := range results.Scenarios {
		assert.Greater(t, s.Result.FutureValue, s.Result.InflationAdjustedValue, s.Name)
		assert.InDelta(t, s.Result.FutureValue, s.Result.TotalPrincipal+s.Result.TotalInterest, 0.01, s.Name)
		assert.Len(t, s.Trace, s.Input.Years, s.Name)
	}

	def := results.Scenarios[0]
	assert.Equal(t, "Default Plan", def.Name)
	assert.InDelta(t, 423970.31, def.Result.FutureValue, 0.01)
	assert.InDelta(t, 336784.66, def.Result.InflationAdjustedValue, 0.01)
}

func TestConfigurationValidation(t *testing.T) {
	parser := config.NewInputParser()

	cfg, err := parser.LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)
	assert.NoError(t, parser.ValidateConfiguration(cfg))

	cfg.Scenarios[1].Name = cfg.Scenarios[0].Name
	assert.Error(t, parser.ValidateConfiguration(cfg))
}
