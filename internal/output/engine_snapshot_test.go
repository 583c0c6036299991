package output

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/config"
)

// TestEngineSnapshot produces a deterministic snapshot of core scenario metrics.
func TestEngineSnapshot(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(filepath.Join("..", "..", "test", "testdata", "example_config.yaml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	eng := calculation.NewProjectionEngine()
	res, err := eng.RunScenarios(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run scenarios: %v", err)
	}

	// Trim to stable summary fields only
	type scenario struct {
		Name              string `json:"name"`
		FutureValue       string `json:"future_value"`
		InflationAdjusted string `json:"inflation_adjusted"`
		Principal         string `json:"total_principal"`
		Interest          string `json:"total_interest"`
	}
	var out struct {
		Scenarios             []scenario `json:"scenarios"`
		BestFutureValue       string     `json:"best_future_value"`
		BestInflationAdjusted string     `json:"best_inflation_adjusted"`
	}
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
	for _, sc := range res.Scenarios {
		out.Scenarios = append(out.Scenarios, scenario{
			Name:              sc.Name,
			FutureValue:       f(sc.Result.FutureValue),
			InflationAdjusted: f(sc.Result.InflationAdjustedValue),
			Principal:         f(sc.Result.TotalPrincipal),
			Interest:          f(sc.Result.TotalInterest),
		})
	}
	out.BestFutureValue = res.BestFutureValue
	out.BestInflationAdjusted = res.BestInflationAdjusted
	data, _ := json.MarshalIndent(out, "", "  ")

	goldenPath := filepath.Join("testdata", "engine_snapshot.golden.json")
	update := os.Getenv("UPDATE_GOLDEN") == "1"
	if update {
		if err := os.WriteFile(goldenPath, data, 0644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
	}
	golden, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if string(golden) == "" {
		t.Fatalf("empty golden snapshot")
	}
	if string(golden) != string(data) {
		t.Fatalf("engine snapshot drift; run UPDATE_GOLDEN=1 to accept\n--- have ---\n%s\n--- want ---\n%s", string(data), string(golden))
	}
}
