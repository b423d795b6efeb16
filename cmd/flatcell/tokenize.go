package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"flatcell/internal/diagfmt"
	"flatcell/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <formula>",
	Short: "Tokenize a formula expression",
	Long: `Tokenize breaks a formula down into its spreadsheet tokens: sheet-
qualified references, ranges, literals, and operators. Use --raw to see
the scanner output before references are fused back together.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("raw", false, "skip the reference-fusing pass")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	text := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	raw, err := cmd.Flags().GetBool("raw")
	if err != nil {
		return fmt.Errorf("failed to get raw flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result := driver.TokenizeExpr(text, maxDiagnostics, !raw)

	if result.Bag.Len() > 0 {
		quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
		if !quiet {
			opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr)}
			diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
		}
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
