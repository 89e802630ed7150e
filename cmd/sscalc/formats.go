package main

import (
	"fmt"

	"github.com/rpgo/pension-calculator/internal/output"
	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List output formats and their aliases",
	Run: func(cmd *cobra.Command, _ []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "Formats:")
		for _, name := range output.AvailableFormatterNames() {
			f := output.GetFormatterByName(name)
			fmt.Fprintf(w, "  %-14s .%s\n", name, f.Ext())
		}
		fmt.Fprintln(w, "  all            console report plus every file format")
		fmt.Fprintln(w, "Aliases:")
		for _, alias := range output.AvailableFormatAliases() {
			fmt.Fprintf(w, "  %-14s -> %s\n", alias, output.NormalizeFormatName(alias))
		}
		fmt.Fprintln(w, "\nExample: sscalc --format html --output report.html")
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
