package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/rpgo/investment-calculator/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current preferences",
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the preferences file, applying any --format, --currency-symbol or --grouping flags",
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "  Config file: %s\n", config.PreferencesPath())
	if config.PreferencesExist() {
		fmt.Fprintln(w, "  Status: loaded")
	} else {
		fmt.Fprintln(w, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Currency]")
	fmt.Fprintf(w, "    Symbol:        %s\n", prefs.Currency.Symbol)
	fmt.Fprintf(w, "    Grouping:      %s\n", prefs.Currency.Grouping)
	fmt.Fprintf(w, "    Decimal scale: %d\n", prefs.Currency.DecimalScale)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Output]")
	fmt.Fprintf(w, "    Format:        %s\n", prefs.Output.Format)
	if prefs.Output.Directory != "" {
		fmt.Fprintf(w, "    Directory:     %s\n", prefs.Output.Directory)
	}
	fmt.Fprintf(w, "    Trace:         %v\n", prefs.Output.Trace)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Server]")
	fmt.Fprintf(w, "    Port:          %s\n", prefs.Server.Port)
	fmt.Fprintf(w, "    Origins:       %s\n", strings.Join(prefs.Server.AllowedOrigins, ", "))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	p := prefs
	p.Currency = currency()
	if flagFormat != "" {
		name := output.NormalizeFormatName(flagFormat)
		if name != "all" && output.GetFormatterByName(name) == nil {
			return output.UnsupportedFormatError(flagFormat)
		}
		p.Output.Format = name
	}
	if flagOutputDir != "" {
		p.Output.Directory = flagOutputDir
	}
	if flagNoTrace {
		p.Output.Trace = false
	}

	if err := config.SavePreferences(p); err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Saved to %s\n", config.PreferencesPath())
	return nil
}
