package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"flatcell/internal/driver"
	"flatcell/internal/flatten"
	"flatcell/internal/ui"
)

var flattenCmd = &cobra.Command{
	Use:   "flatten [flags] book.toml [cell...]",
	Short: "Flatten the formulas of the given cells",
	Long: `Flatten examines each given cell for a formula and shows the
transformed formula. Cell references are replaced by the formula they
contain, recursively. References that point to a value, a range, or
another file are left alone. Cells that do not hold a formula are
skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFlatten,
}

func init() {
	flattenCmd.Flags().String("sheet", "", "sheet the cell references live on (default: the workbook's active sheet)")
	flattenCmd.Flags().Bool("all", false, "flatten every formula cell on the sheet")
}

func runFlatten(cmd *cobra.Command, args []string) error {
	bookPath := args[0]
	cellRefs := args[1:]

	sheetName, err := cmd.Flags().GetString("sheet")
	if err != nil {
		return fmt.Errorf("failed to get sheet flag: %w", err)
	}
	all, err := cmd.Flags().GetBool("all")
	if err != nil {
		return fmt.Errorf("failed to get all flag: %w", err)
	}
	if !all && len(cellRefs) == 0 {
		return errors.New("no cells given (name cells or pass --all)")
	}

	book, err := driver.LoadWorkbook(bookPath)
	if err != nil {
		return err
	}

	tracer := debugTracer(cmd)
	color := useColor(cmd, os.Stdout)

	var results []*driver.FlattenResult
	if all {
		results, err = driver.FlattenAll(book, sheetName, tracer)
		if err != nil {
			return err
		}
	} else {
		for _, ref := range cellRefs {
			res, err := driver.Flatten(book, sheetName, ref, tracer)
			if errors.Is(err, flatten.ErrNotAFormula) {
				// not applicable, do nothing
				continue
			}
			if err != nil {
				var cycle *flatten.CycleError
				if errors.As(err, &cycle) {
					results = append(results, &driver.FlattenResult{Cell: ref, Err: err})
					continue
				}
				return err
			}
			results = append(results, res)
		}
	}

	failed := false
	for _, res := range results {
		if res.Err != nil {
			failed = true
			fmt.Fprintf(os.Stderr, "%s: %v\n", res.Cell, res.Err)
			continue
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.ResultPanel(res, color))
	}
	if failed {
		return errors.New("some cells could not be flattened")
	}
	return nil
}

// debugTracer wires the resolver trace to stderr when --debug is set.
func debugTracer(cmd *cobra.Command) flatten.Tracer {
	debug, _ := cmd.Root().PersistentFlags().GetBool("debug")
	if !debug {
		return nil
	}
	return &ui.DebugTracer{Out: os.Stderr, UseColor: useColor(cmd, os.Stderr)}
}
