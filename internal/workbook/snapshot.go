package workbook

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when snapshotPayload format changes
const snapshotSchemaVersion uint16 = 1

type cellPayload struct {
	Ref     string
	Type    uint8
	Value   float64
	Text    string
	Formula string
}

type sheetPayload struct {
	Name  string
	Cells []cellPayload
}

// snapshotPayload is the packed workbook format (.fcb files).
type snapshotPayload struct {
	Schema uint16
	Active string
	Sheets []sheetPayload
}

// Save writes a packed snapshot of the workbook. The file is written to
// a temp sibling and renamed into place so readers never see a partial
// snapshot.
func Save(book *Workbook, path string) error {
	payload := snapshotPayload{
		Schema: snapshotSchemaVersion,
		Active: book.active,
	}
	for _, sheet := range book.Sheets() {
		sp := sheetPayload{Name: sheet.Name}
		for _, ref := range sheet.Refs() {
			c := sheet.cells[ref]
			sp.Cells = append(sp.Cells, cellPayload{
				Ref:     ref,
				Type:    uint8(c.Type),
				Value:   c.Value,
				Text:    c.Text,
				Formula: c.Formula,
			})
		}
		payload.Sheets = append(payload.Sheets, sp)
	}

	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(&payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// LoadSnapshot reads a packed snapshot written by Save.
func LoadSnapshot(path string) (*Workbook, error) {
	// #nosec G304 -- path is provided by the caller
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	var payload snapshotPayload
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%s: failed to decode snapshot: %w", path, err)
	}
	if payload.Schema != snapshotSchemaVersion {
		return nil, fmt.Errorf("%s: snapshot schema %d, want %d", path, payload.Schema, snapshotSchemaVersion)
	}

	book := New()
	for _, sp := range payload.Sheets {
		sheet := book.AddSheet(sp.Name)
		for _, cp := range sp.Cells {
			sheet.SetCell(cp.Ref, Cell{
				Type:    ContentType(cp.Type),
				Value:   cp.Value,
				Text:    cp.Text,
				Formula: cp.Formula,
			})
		}
	}
	if payload.Active != "" {
		if err := book.SetActive(payload.Active); err != nil {
			return nil, fmt.Errorf("%s: active sheet: %w", path, err)
		}
	}
	return book, nil
}
