package calculation

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfiguration() *domain.Configuration {
	base := ToRaw(referenceInput())
	aggressive := base
	aggressive.InterestRate = decimal.NewFromInt(12)
	lowInflation := base
	lowInflation.InflationRate = decimal.NewFromInt(1)
	lowInflation.InterestRate = decimal.NewFromInt(10)

	return &domain.Configuration{
		Scenarios: []domain.Scenario{
			{Name: "Reference", Input: base},
			{Name: "Aggressive", Input: aggressive},
			{Name: "Low Inflation", Input: lowInflation},
		},
	}
}

func fixedClock(t *testing.T) {
	t.Helper()
	SetNowFunc(func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) })
	SetIDFunc(func() string { return "test-id" })
	t.Cleanup(func() {
		SetNowFunc(time.Now)
		SetIDFunc(defaultID)
	})
}

var defaultID = idFunc

func TestNewProjectionEngine(t *testing.T) {
	pe := NewProjectionEngine()
	require.NotNil(t, pe)
	assert.True(t, pe.IncludeTrace)
	assert.IsType(t, NopLogger{}, pe.Logger)

	pe.SetLogger(nil)
	assert.IsType(t, NopLogger{}, pe.Logger)
}

func TestRunScenarios(t *testing.T) {
	fixedClock(t)
	pe := NewProjectionEngine()

	cmp, err := pe.RunScenarios(context.Background(), testConfiguration())
	require.NoError(t, err)

	assert.Equal(t, "test-id", cmp.ID)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), cmp.GeneratedAt)
	assert.Equal(t, domain.DefaultCurrency(), cmp.Currency)
	require.Len(t, cmp.Scenarios, 3)

	ref := cmp.Scenarios[0]
	assert.Equal(t, "Reference", ref.Name)
	assert.Equal(t, Project(referenceInput()), ref.Result)
	assert.Len(t, ref.Trace, 5)
	require.Len(t, ref.Breakdown, 3)
	assert.Equal(t, ref.Result.TotalPrincipal, ref.Breakdown[0].Value)

	assert.Equal(t, "Aggressive", cmp.BestFutureValue)
	assert.Equal(t, "Low Inflation", cmp.BestInflationAdjusted)
	assert.NotEmpty(t, cmp.Assumptions)
	assert.Contains(t, strings.Join(cmp.Assumptions, "\n"), "Low Inflation: 10.00% return, 1.00% inflation")
}

func TestRunScenarios_KeepsConfiguredCurrency(t *testing.T) {
	cfg := testConfiguration()
	cfg.Currency = domain.CurrencyOptions{Symbol: "$", Grouping: domain.GroupingWestern, DecimalScale: 2}

	cmp, err := NewProjectionEngine().RunScenarios(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg.Currency, cmp.Currency)
}

func TestRunScenarios_WithoutTrace(t *testing.T) {
	pe := NewProjectionEngine()
	pe.IncludeTrace = false
	cmp, err := pe.RunScenarios(context.Background(), testConfiguration())
	require.NoError(t, err)
	for _, sc := range cmp.Scenarios {
		assert.Nil(t, sc.Trace)
	}
}

func TestRunScenarios_PropagatesCoercionErrors(t *testing.T) {
	cfg := testConfiguration()
	cfg.Scenarios[1].Input.Years = decimal.NewFromFloat(2.5)

	_, err := NewProjectionEngine().RunScenarios(context.Background(), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFractionalYears)
	assert.Contains(t, err.Error(), `"Aggressive"`)
}

func TestRunScenarios_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewProjectionEngine().RunScenarios(ctx, testConfiguration())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRankScenarios_IgnoresNaN(t *testing.T) {
	pe := NewProjectionEngine()
	bad := referenceInput()
	bad.InterestRate = -150
	scenarios := []domain.ScenarioProjection{
		*pe.Calculate("broken", bad),
		*pe.Calculate("ok", referenceInput()),
	}
	nominal, realBest := pe.rankScenarios(scenarios)
	assert.Equal(t, "ok", nominal)
	assert.Equal(t, "ok", realBest)
}

func TestWriterLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, LevelInfo)
	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	l.Warnf("careful")
	l.Errorf("broken")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INFO shown 2")
	assert.Contains(t, out, "WARN careful")
	assert.Contains(t, out, "ERROR broken")
}

func TestEngineLogsScenarios(t *testing.T) {
	var buf bytes.Buffer
	pe := NewProjectionEngine()
	pe.SetLogger(NewWriterLogger(&buf, LevelDebug))

	_, err := pe.RunScenarios(context.Background(), testConfiguration())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `scenario "Reference"`)
	assert.Contains(t, buf.String(), "projected 3 scenarios")
}
