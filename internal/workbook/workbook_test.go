package workbook_test

import (
	"errors"
	"testing"

	"flatcell/internal/workbook"
)

func TestSheetCellLookup(t *testing.T) {
	sheet := workbook.NewSheet("Sheet1")
	sheet.SetCell("A1", workbook.ParseCell("=B1+1"))

	cell, err := sheet.Cell("$A$1")
	if err != nil {
		t.Fatalf("Cell($A$1): %v", err)
	}
	if cell.Type != workbook.ContentFormula || cell.Formula != "=B1+1" {
		t.Errorf("Cell($A$1) = %+v", cell)
	}

	// addressable but never written: comes back empty
	cell, err = sheet.Cell("Z99")
	if err != nil {
		t.Fatalf("Cell(Z99): %v", err)
	}
	if cell.Type != workbook.ContentEmpty {
		t.Errorf("Cell(Z99).Type = %v, want EMPTY", cell.Type)
	}

	// not a cell reference at all
	_, err = sheet.Cell("SUM")
	var lookupErr *workbook.LookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("Cell(SUM): expected *LookupError, got %v", err)
	}
	if lookupErr.What != "cell" {
		t.Errorf("LookupError.What = %q, want %q", lookupErr.What, "cell")
	}
}

func TestSheetRefsOrder(t *testing.T) {
	sheet := workbook.NewSheet("Sheet1")
	for _, ref := range []string{"B2", "A10", "A1", "C1"} {
		sheet.SetCell(ref, workbook.ParseCell("1"))
	}

	got := sheet.Refs()
	want := []string{"A1", "C1", "B2", "A10"}
	if len(got) != len(want) {
		t.Fatalf("Refs: got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Refs[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWorkbookSheets(t *testing.T) {
	book := workbook.New()
	book.AddSheet("Sheet1")
	book.AddSheet("Sheet2")

	if _, err := book.Sheet("Sheet2"); err != nil {
		t.Errorf("Sheet(Sheet2): %v", err)
	}
	if _, err := book.Sheet("sheet2"); err == nil {
		t.Error("Sheet(sheet2): sheet names are case-sensitive, expected error")
	}

	active, err := book.ActiveSheet()
	if err != nil {
		t.Fatalf("ActiveSheet: %v", err)
	}
	if active.Name != "Sheet1" {
		t.Errorf("default active sheet = %q, want Sheet1", active.Name)
	}

	if err := book.SetActive("Sheet2"); err != nil {
		t.Fatalf("SetActive(Sheet2): %v", err)
	}
	active, _ = book.ActiveSheet()
	if active.Name != "Sheet2" {
		t.Errorf("active sheet = %q, want Sheet2", active.Name)
	}

	if err := book.SetActive("Nope"); err == nil {
		t.Error("SetActive(Nope): expected error")
	}
}

func TestAddSheetIsIdempotent(t *testing.T) {
	book := workbook.New()
	a := book.AddSheet("Sheet1")
	b := book.AddSheet("Sheet1")
	if a != b {
		t.Error("AddSheet twice returned different sheets")
	}
	if len(book.Sheets()) != 1 {
		t.Errorf("Sheets: got %d, want 1", len(book.Sheets()))
	}
}
