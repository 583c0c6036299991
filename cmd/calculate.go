package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/rpgo/investment-calculator/internal/domain"
)

var flagName string

// inputFlags holds the raw text of the projection inputs. Values are parsed with
// the same coercion rules as scenario files and the HTTP API.
var inputFlags calculation.StringInput

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Project a single investment plan",
	Example: "  investcalc calculate --initial 10000 --monthly 5000 --step-up 5 --years 5 --rate 7 --inflation 4.5\n" +
		"  investcalc calculate --years 20 --rate 12 -f html -o reports",
	RunE: runCalculate,
}

func init() {
	addInputFlags(calculateCmd)
	calculateCmd.Flags().StringVar(&flagName, "name", "My Plan", "Scenario name shown in reports")
	rootCmd.AddCommand(calculateCmd)
}

// addInputFlags registers the projection input flags, defaulting to config.DefaultInput.
func addInputFlags(c *cobra.Command) {
	d := config.DefaultInput()
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

	c.Flags().StringVar(&inputFlags.InitialInvestment, "initial", num(d.InitialInvestment), "Initial investment")
	c.Flags().StringVar(&inputFlags.MonthlyInvestment, "monthly", num(d.MonthlyInvestment), "Monthly contribution")
	c.Flags().StringVar(&inputFlags.AnnualStepUp, "step-up", num(d.AnnualStepUp), "Annual contribution step-up in percent")
	c.Flags().StringVar(&inputFlags.Years, "years", strconv.Itoa(d.Years), "Investment horizon in whole years")
	c.Flags().StringVar(&inputFlags.InterestRate, "rate", num(d.InterestRate), "Expected annual return in percent")
	c.Flags().StringVar(&inputFlags.InflationRate, "inflation", num(d.InflationRate), "Expected annual inflation in percent")
	c.Flags().StringVar(&inputFlags.CompoundFrequency, "frequency", string(d.CompoundFrequency), "Compound frequency: daily, weekly, monthly, quarterly, yearly (or 1-5)")
}

// parseInputFlags coerces and validates the input flags.
func parseInputFlags() (domain.ProjectionInput, error) {
	in, err := calculation.ParseStrings(inputFlags)
	if err != nil {
		return in, fmt.Errorf("invalid input: %w", err)
	}
	if err := config.NewInputParser().ValidateInput(in); err != nil {
		return in, err
	}
	return in, nil
}

func runCalculate(cmd *cobra.Command, _ []string) error {
	in, err := parseInputFlags()
	if err != nil {
		return err
	}
	name := flagName
	if name == "" {
		name = "My Plan"
	}
	return project(cmd, name, in)
}

// project runs one input through the engine and emits it as a single-scenario comparison.
func project(cmd *cobra.Command, name string, in domain.ProjectionInput) error {
	cfg := &domain.Configuration{
		Currency:  currency(),
		Scenarios: []domain.Scenario{{Name: name, Input: calculation.ToRaw(in)}},
	}
	results, err := newEngine(cmd).RunScenarios(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	return emit(cmd, results)
}
