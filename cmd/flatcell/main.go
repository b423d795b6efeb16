package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"flatcell/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "flatcell",
	Short: "Flatten spreadsheet formulas by inlining their precedents",
	Long: `flatcell expands a cell's formula by recursively substituting each
cell reference with the formula found in the referenced cell, until only
literal values, ranges, external references, and function calls remain.`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(flattenCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("debug", false, "trace resolver decisions to stderr")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color flag against the output stream.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
