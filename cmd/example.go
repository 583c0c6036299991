package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/rpgo/investment-calculator/internal/output"
)

var exampleCmd = &cobra.Command{
	Use:   "example [file]",
	Short: "Write an example scenario file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExample,
}

func init() {
	rootCmd.AddCommand(exampleCmd)
}

func runExample(cmd *cobra.Command, args []string) error {
	filename := "example_config.yaml"
	if len(args) > 0 {
		filename = args[0]
	}

	cfg := config.NewInputParser().CreateExampleConfiguration()
	if err := output.SaveConfiguration(cfg, filename); err != nil {
		return fmt.Errorf("failed to create example configuration: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "  Example configuration created: %s\n", filename)
	fmt.Fprintf(cmd.OutOrStdout(), "  Run it with: investcalc compare %s\n", filename)
	return nil
}
