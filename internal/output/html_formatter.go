package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with one doughnut chart per scenario.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"pct":  FormatPercentage,
	"add":  func(i, j int) int { return i + j },
	"arcs": doughnutArcs,
}).Parse(htmlTemplateSource))

// arc is one stroke segment of an SVG doughnut drawn on a circle whose
// circumference is 100, so dash lengths are percentages.
type arc struct {
	Label   string
	Color   string
	Value   float64
	Percent float64
	Dash    string
	Offset  string
}

func doughnutArcs(segments []domain.BreakdownSegment) []arc {
	shares := segmentShares(segments)
	arcs := make([]arc, len(segments))
	start := 0.0
	for i, s := range segments {
		p := shares[i]
		arcs[i] = arc{
			Label:   s.Label,
			Color:   s.Color,
			Value:   s.Value,
			Percent: p,
			Dash:    fmt.Sprintf("%.2f %.2f", p, 100-p),
			// the first segment starts at twelve o'clock
			Offset: fmt.Sprintf("%.2f", 25-start),
		}
		start += p
	}
	return arcs
}

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.ScenarioComparison
		Recommendation Recommendation
		Assumptions    []string
	}{results, AnalyzeScenarios(results), assumptionsFor(results)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
