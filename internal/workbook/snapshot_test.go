package workbook_test

import (
	"os"
	"path/filepath"
	"testing"

	"flatcell/internal/workbook"
)

func TestSnapshotRoundTrip(t *testing.T) {
	book := workbook.New()
	s1 := book.AddSheet("Sheet1")
	s1.SetCell("A1", workbook.ParseCell("=A2*2"))
	s1.SetCell("A2", workbook.ParseCell("5"))
	s1.SetCell("B1", workbook.ParseCell("hello"))
	book.AddSheet("Sheet2").SetCell("A1", workbook.ParseCell("=Sheet1.A1"))
	if err := book.SetActive("Sheet2"); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "book.fcb")
	if err := workbook.Save(book, path); err != nil {
		t.Fatal(err)
	}

	loaded, err := workbook.LoadSnapshot(path)
	if err != nil {
		t.Fatal(err)
	}

	active, err := loaded.ActiveSheet()
	if err != nil {
		t.Fatal(err)
	}
	if active.Name != "Sheet2" {
		t.Errorf("active = %q, want Sheet2", active.Name)
	}

	sheet, err := loaded.Sheet("Sheet1")
	if err != nil {
		t.Fatal(err)
	}
	for ref, want := range map[string]workbook.Cell{
		"A1": {Type: workbook.ContentFormula, Formula: "=A2*2"},
		"A2": {Type: workbook.ContentValue, Value: 5},
		"B1": {Type: workbook.ContentText, Text: "hello"},
	} {
		got, err := sheet.Cell(ref)
		if err != nil {
			t.Fatalf("Cell(%s): %v", ref, err)
		}
		if *got != want {
			t.Errorf("Cell(%s) = %+v, want %+v", ref, got, want)
		}
	}
}

func TestLoadSnapshotRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.fcb")
	if err := os.WriteFile(path, []byte("not msgpack at all"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := workbook.LoadSnapshot(path); err == nil {
		t.Error("expected error")
	}
}
