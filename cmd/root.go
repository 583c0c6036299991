// Package cmd implements the investcalc CLI commands.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/rpgo/investment-calculator/internal/output"
)

var (
	flagFormat    string
	flagOutputDir string
	flagVerbose   bool
	flagNoTrace   bool
	flagSymbol    string
	flagGrouping  string

	// prefs is loaded once per invocation before any command runs.
	prefs = config.DefaultPreferences()
)

var rootCmd = &cobra.Command{
	Use:   "investcalc",
	Short: "Investment growth calculator",
	Long: "Project the future value of an initial investment plus monthly contributions\n" +
		"with an annual step-up, compound growth and inflation adjustment.",
	SilenceUsage:      true,
	PersistentPreRunE: loadPreferences,
	RunE:              runCalculate,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "", "Report format (see `investcalc formats`); defaults to the preferences file")
	rootCmd.PersistentFlags().StringVarP(&flagOutputDir, "output-dir", "o", "", "Write a timestamped report file to this directory instead of stdout")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log engine activity to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagNoTrace, "no-trace", false, "Omit the year-by-year trace")
	rootCmd.PersistentFlags().StringVar(&flagSymbol, "currency-symbol", "", "Currency symbol for display (default from preferences)")
	rootCmd.PersistentFlags().StringVar(&flagGrouping, "grouping", "", "Digit grouping: western or indian (default from preferences)")

	addInputFlags(rootCmd)
}

func loadPreferences(cmd *cobra.Command, _ []string) error {
	p, err := config.LoadPreferences()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "  Warning: %v (using defaults)\n", err)
	}
	prefs = p
	return nil
}

// currency returns the display options after applying flag overrides.
func currency() domain.CurrencyOptions {
	c := prefs.Currency
	if flagSymbol != "" {
		c.Symbol = flagSymbol
	}
	if flagGrouping != "" {
		c.Grouping = flagGrouping
	}
	return c
}

func reportFormat() string {
	if flagFormat != "" {
		return flagFormat
	}
	if prefs.Output.Format != "" {
		return prefs.Output.Format
	}
	return "console"
}

func newEngine(cmd *cobra.Command) *calculation.ProjectionEngine {
	engine := calculation.NewProjectionEngine()
	engine.IncludeTrace = prefs.Output.Trace && !flagNoTrace
	if flagVerbose {
		engine.SetLogger(calculation.NewWriterLogger(cmd.ErrOrStderr(), calculation.LevelDebug))
	}
	return engine
}

// emit renders a comparison to stdout, or to a report file when --output-dir is set.
func emit(cmd *cobra.Command, results *domain.ScenarioComparison) error {
	format := reportFormat()
	dir := flagOutputDir
	all := output.NormalizeFormatName(format) == "all"
	if dir == "" && all {
		dir = prefs.Output.Directory
	}
	if dir != "" || all {
		paths, err := output.GenerateReport(results, format, dir)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintf(cmd.OutOrStdout(), "  Report written to %s\n", p)
		}
		return nil
	}

	data, err := output.Render(results, format)
	if err != nil {
		return err
	}
	return write(cmd.OutOrStdout(), data)
}

func write(w io.Writer, data []byte) error {
	_, err := w.Write(data)
	return err
}
