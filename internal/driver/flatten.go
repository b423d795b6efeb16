package driver

import (
	"errors"

	"flatcell/internal/flatten"
	"flatcell/internal/workbook"
)

// FlattenResult carries the outcome of flattening one cell.
type FlattenResult struct {
	Sheet     string
	Cell      string // normalized reference
	Column    int    // zero-based
	Row       int    // zero-based
	Original  string
	Flattened string
	Err       error // set by FlattenAll for cells that failed (e.g. cycles)
}

// Flatten expands the formula of one cell. A target that does not hold
// a formula returns flatten.ErrNotAFormula; callers treat that as "not
// applicable, do nothing".
func Flatten(book *workbook.Workbook, sheetName, cellRef string, tracer flatten.Tracer) (*FlattenResult, error) {
	sheet, err := targetSheet(book, sheetName)
	if err != nil {
		return nil, err
	}

	col, row, err := workbook.ParseRef(cellRef)
	if err != nil {
		return nil, err
	}
	cell, err := sheet.Cell(cellRef)
	if err != nil {
		return nil, err
	}
	if cell.Type != workbook.ContentFormula {
		return nil, flatten.ErrNotAFormula
	}

	ctx := &flatten.Context{Book: book, Sheet: sheet, Tracer: tracer}
	tokens, err := ctx.Expand(flatten.Tokenize(cell.Formula))
	if err != nil {
		return nil, err
	}

	return &FlattenResult{
		Sheet:     sheet.Name,
		Cell:      workbook.NormalizeRef(cellRef),
		Column:    col,
		Row:       row,
		Original:  cell.Formula,
		Flattened: flatten.Render(tokens),
	}, nil
}

// FlattenAll expands every formula cell on a sheet, in row-then-column
// order. Per-cell failures (cycles, mostly) are recorded on the result
// instead of aborting the rest of the sheet.
func FlattenAll(book *workbook.Workbook, sheetName string, tracer flatten.Tracer) ([]*FlattenResult, error) {
	sheet, err := targetSheet(book, sheetName)
	if err != nil {
		return nil, err
	}

	var results []*FlattenResult
	for _, ref := range sheet.Refs() {
		res, err := Flatten(book, sheet.Name, ref, tracer)
		if errors.Is(err, flatten.ErrNotAFormula) {
			continue
		}
		if err != nil {
			col, row, refErr := workbook.ParseRef(ref)
			if refErr != nil {
				col, row = -1, -1
			}
			results = append(results, &FlattenResult{
				Sheet:  sheet.Name,
				Cell:   ref,
				Column: col,
				Row:    row,
				Err:    err,
			})
			continue
		}
		results = append(results, res)
	}
	return results, nil
}

func targetSheet(book *workbook.Workbook, name string) (*workbook.Sheet, error) {
	if name == "" {
		return book.ActiveSheet()
	}
	return book.Sheet(name)
}
