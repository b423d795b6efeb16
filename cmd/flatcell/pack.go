package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"flatcell/internal/driver"
	"flatcell/internal/workbook"
)

var packCmd = &cobra.Command{
	Use:   "pack [flags] book.toml",
	Short: "Pack a TOML workbook into a snapshot",
	Long: `Pack converts an editable TOML workbook into the binary snapshot
format the flatten command also accepts. Snapshots load without parsing
and survive format-preserving edits byte-for-byte.`,
	Args: cobra.ExactArgs(1),
	RunE: runPack,
}

func init() {
	packCmd.Flags().StringP("output", "o", "", "output path (default: input with "+driver.SnapshotExt+")")
}

func runPack(cmd *cobra.Command, args []string) error {
	inPath := args[0]

	outPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	if outPath == "" {
		outPath = strings.TrimSuffix(inPath, ".toml") + driver.SnapshotExt
	}

	book, err := workbook.Load(inPath)
	if err != nil {
		return err
	}
	if err := workbook.Save(book, outPath); err != nil {
		return err
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "packed %s -> %s\n", inPath, outPath)
	}
	return nil
}
