package main

import (
	"context"
	"fmt"
	"os"

	calc "github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/shopspring/decimal"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_crossover <config-file>")
		return
	}
	f := os.Args[1]
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(f)
	if err != nil {
		panic(err)
	}
	engine := calc.NewProjectionEngine()
	res, err := engine.RunScenarios(context.Background(), cfg)
	if err != nil {
		panic(err)
	}
	if len(res.Scenarios) < 1 {
		fmt.Println("no scenarios")
		return
	}

	// Find the shortest trace across scenarios
	minLen := -1
	for _, s := range res.Scenarios {
		if minLen == -1 || len(s.Trace) < minLen {
			minLen = len(s.Trace)
		}
	}
	if minLen <= 0 {
		fmt.Println("no trace data")
		return
	}

	// Header
	header := "Year"
	for i := range res.Scenarios {
		header += fmt.Sprintf(",S%d_Monthly,S%d_Contributed,S%d_FV,S%d_Real", i+1, i+1, i+1, i+1)
	}
	fmt.Println(header)

	for idx := 0; idx < minLen; idx++ {
		row := fmt.Sprintf("%d", res.Scenarios[0].Trace[idx].Year)
		for sidx := range res.Scenarios {
			y := res.Scenarios[sidx].Trace[idx]
			row += fmt.Sprintf(",%s,%s,%s,%s",
				decimal.NewFromFloat(y.MonthlyContribution).StringFixed(2),
				decimal.NewFromFloat(y.ContributedToDate).StringFixed(0),
				decimal.NewFromFloat(y.FutureValue).StringFixed(0),
				decimal.NewFromFloat(y.InflationAdjustedValue).StringFixed(0))
		}
		fmt.Println(row)
	}

	// With two scenarios, report the first year the second pulls ahead in real terms
	if len(res.Scenarios) >= 2 {
		a := res.Scenarios[0].Trace
		b := res.Scenarios[1].Trace
		crossover := 0
		for i := 0; i < len(a) && i < len(b); i++ {
			diff := decimal.NewFromFloat(b[i].InflationAdjustedValue).Sub(decimal.NewFromFloat(a[i].InflationAdjustedValue))
			fmt.Printf("Year %d: %s - %s = %s\n", a[i].Year, res.Scenarios[1].Name, res.Scenarios[0].Name, diff.StringFixed(0))
			if crossover == 0 && diff.IsPositive() {
				crossover = a[i].Year
			}
		}
		if crossover > 0 {
			fmt.Printf("\nCrossover: %s leads from year %d\n", res.Scenarios[1].Name, crossover)
		} else {
			fmt.Printf("\nCrossover: %s never leads\n", res.Scenarios[1].Name)
		}
	}
}
