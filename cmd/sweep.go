package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/output"
)

var (
	flagSweepFrom float64
	flagSweepTo   float64
	flagSweepStep float64
)

var sweepCmd = &cobra.Command{
	Use:     "sweep",
	Short:   "Project one plan across a range of interest rates",
	Example: "  investcalc sweep --from 4 --to 12 --step 2 --years 20",
	RunE:    runSweep,
}

func init() {
	addInputFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&flagSweepFrom, "from", 4, "First interest rate in percent")
	sweepCmd.Flags().Float64Var(&flagSweepTo, "to", 12, "Last interest rate in percent")
	sweepCmd.Flags().Float64Var(&flagSweepStep, "step", 1, "Rate increment in percentage points")
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, _ []string) error {
	in, err := parseInputFlags()
	if err != nil {
		return err
	}
	points, err := calculation.Sweep(in, flagSweepFrom, flagSweepTo, flagSweepStep)
	if err != nil {
		return err
	}
	data, err := output.FormatSweep(points, currency(), reportFormat())
	if err != nil {
		return err
	}
	return write(cmd.OutOrStdout(), data)
}
