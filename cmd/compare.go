package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/rpgo/investment-calculator/internal/domain"
)

var compareCmd = &cobra.Command{
	Use:   "compare <scenario-file>",
	Short: "Project and compare every scenario in a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(args[0])
	if err != nil {
		return err
	}
	// A file without a currency block uses the preferences. Otherwise flags
	// win over the file only when given explicitly.
	if cfg.Currency == (domain.CurrencyOptions{}) {
		cfg.Currency = currency()
	}
	if cmd.Flags().Changed("currency-symbol") {
		cfg.Currency.Symbol = flagSymbol
	}
	if cmd.Flags().Changed("grouping") {
		cfg.Currency.Grouping = flagGrouping
	}

	results, err := newEngine(cmd).RunScenarios(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	return emit(cmd, results)
}
