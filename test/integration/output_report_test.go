package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/rpgo/investment-calculator/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatters(t *testing.T) {
	cur := domain.DefaultCurrency()
	assert.Equal(t, "₹423,970", output.FormatCurrency(423970.3095, cur))

	cur.Grouping = domain.GroupingIndian
	cur.DecimalScale = 2
	assert.Equal(t, "₹42,39,703.10", output.FormatCurrency(4239703.1, cur))

	// FormatPercentage expects the value already in percentage units
	assert.Equal(t, "12.34%", output.FormatPercentage(12.34))
}

func TestSaveConfiguration_RoundTrip(t *testing.T) {
	parser := config.NewInputParser()
	cfg := parser.CreateExampleConfiguration()

	out := filepath.Join(t.TempDir(), "plans.yaml")
	require.NoError(t, output.SaveConfiguration(cfg, out))

	fi, err := os.Stat(out)
	require.NoError(t, err)
	assert.NotZero(t, fi.Size())

	loaded, err := parser.LoadFromFile(out)
	require.NoError(t, err)
	require.Len(t, loaded.Scenarios, len(cfg.Scenarios))
	assert.Equal(t, cfg.Scenarios[0].Name, loaded.Scenarios[0].Name)
	assert.True(t, cfg.Scenarios[0].Input.Years.Equal(loaded.Scenarios[0].Input.Years))
}

func TestRender_EmptyComparison(t *testing.T) {
	sc := &domain.ScenarioComparison{Currency: domain.DefaultCurrency()}

	for _, format := range []string{"json", "csv", "detailed-csv", "console-lite"} {
		_, err := output.Render(sc, format)
		assert.NoError(t, err, format)
	}

	_, err := output.Render(sc, "pdf")
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)
}
