package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpgo/investment-calculator/internal/output"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List report formats and their aliases",
	RunE:  runFormats,
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

func runFormats(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "  Formats:")
	for _, name := range output.AvailableFormatterNames() {
		fmt.Fprintf(w, "    %-14s .%s\n", name, output.ExtensionFor(name))
	}
	fmt.Fprintln(w, "    all            console, detailed-csv and html files (needs --output-dir)")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Aliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
	return nil
}
