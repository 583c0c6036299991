package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/rpgo/investment-calculator/internal/domain"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Enter a plan in a terminal form and project it",
	RunE:    runInteractive,
}

func init() {
	addInputFlags(interactiveCmd)
	rootCmd.AddCommand(interactiveCmd)
}

// numberField validates free text with the same coercion used everywhere else.
func numberField(field string) func(string) error {
	return func(s string) error {
		_, err := calculation.ParseNumber(field, s)
		return err
	}
}

// newInputForm builds the collector form. Fields are prefilled from vals.
func newInputForm(name *string, vals *calculation.StringInput) *huh.Form {
	frequencies := make([]huh.Option[string], 0, len(domain.CompoundFrequencies))
	for _, f := range domain.CompoundFrequencies {
		frequencies = append(frequencies, huh.NewOption(f.Label(), string(f)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Plan name").Value(name),
			huh.NewInput().Title("Initial investment").Value(&vals.InitialInvestment).Validate(numberField("initial_investment")),
			huh.NewInput().Title("Monthly investment").Value(&vals.MonthlyInvestment).Validate(numberField("monthly_investment")),
			huh.NewInput().Title("Annual step-up (%)").Value(&vals.AnnualStepUp).Validate(numberField("annual_step_up")),
		),
		huh.NewGroup(
			huh.NewInput().Title("Years").Value(&vals.Years).Validate(numberField("years")),
			huh.NewInput().Title("Expected return (%)").Value(&vals.InterestRate).Validate(numberField("interest_rate")),
			huh.NewInput().Title("Inflation (%)").Value(&vals.InflationRate).Validate(numberField("inflation_rate")),
			huh.NewSelect[string]().Title("Compound frequency").Options(frequencies...).Value(&vals.CompoundFrequency),
		),
	)
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	name := "My Plan"
	vals := inputFlags
	freq, err := domain.ParseCompoundFrequency(vals.CompoundFrequency)
	if err != nil {
		freq = domain.CompoundYearly
	}
	vals.CompoundFrequency = string(freq)

	if err := newInputForm(&name, &vals).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "  Cancelled.")
			return nil
		}
		return err
	}

	in, err := calculation.ParseStrings(vals)
	if err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	if err := config.NewInputParser().ValidateInput(in); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = "My Plan"
	}
	return project(cmd, name, in)
}
