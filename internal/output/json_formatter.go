package output

import (
	"encoding/json"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// JSONFormatter serializes the scenario comparison as pretty-printed JSON.
// Comparisons holding NaN or infinite results cannot be encoded and return an error.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
