package workbook

import (
	"fmt"
	"sort"
)

// LookupError reports a failed sheet or cell lookup. The flatten
// resolver recovers from it by leaving the reference untouched; only the
// CLI ever shows one.
type LookupError struct {
	What string // "sheet" or "cell"
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.What, e.Name)
}

// Sheet is a named collection of cells keyed by normalized reference.
type Sheet struct {
	Name  string
	cells map[string]*Cell
}

// NewSheet creates an empty sheet.
func NewSheet(name string) *Sheet {
	return &Sheet{
		Name:  name,
		cells: make(map[string]*Cell),
	}
}

// SetCell stores a cell under the normalized form of ref.
func (s *Sheet) SetCell(ref string, cell Cell) {
	s.cells[NormalizeRef(ref)] = &cell
}

// Cell resolves a single-cell reference on this sheet. Anchored forms
// ($A$1) resolve like their plain counterparts. Unknown references come
// back as *LookupError.
func (s *Sheet) Cell(ref string) (*Cell, error) {
	norm := NormalizeRef(ref)
	if _, _, err := ParseRef(norm); err != nil {
		return nil, &LookupError{What: "cell", Name: ref}
	}
	if c, ok := s.cells[norm]; ok {
		return c, nil
	}
	// addressable but never written: an empty cell
	return &Cell{Type: ContentEmpty}, nil
}

// Refs returns every populated reference in row-then-column order.
func (s *Sheet) Refs() []string {
	refs := make([]string, 0, len(s.cells))
	for ref := range s.cells {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool {
		ci, ri, erri := ParseRef(refs[i])
		cj, rj, errj := ParseRef(refs[j])
		if erri != nil || errj != nil {
			return refs[i] < refs[j]
		}
		if ri != rj {
			return ri < rj
		}
		return ci < cj
	})
	return refs
}

// Workbook is an ordered set of sheets with one active sheet, the
// resolution context for unqualified references.
type Workbook struct {
	sheets []*Sheet
	index  map[string]int
	active string
}

// New creates an empty workbook.
func New() *Workbook {
	return &Workbook{
		sheets: make([]*Sheet, 0, 4),
		index:  make(map[string]int),
	}
}

// AddSheet appends a sheet and returns it. The first sheet added becomes
// the active sheet until SetActive says otherwise.
func (w *Workbook) AddSheet(name string) *Sheet {
	if i, ok := w.index[name]; ok {
		return w.sheets[i]
	}
	s := NewSheet(name)
	w.index[name] = len(w.sheets)
	w.sheets = append(w.sheets, s)
	if w.active == "" {
		w.active = name
	}
	return s
}

// Sheet resolves a sheet by name. Sheet names are case-sensitive, as in
// the host object model.
func (w *Workbook) Sheet(name string) (*Sheet, error) {
	if i, ok := w.index[name]; ok {
		return w.sheets[i], nil
	}
	return nil, &LookupError{What: "sheet", Name: name}
}

// Sheets returns the sheets in insertion order.
func (w *Workbook) Sheets() []*Sheet {
	return w.sheets
}

// ActiveSheet returns the active sheet.
func (w *Workbook) ActiveSheet() (*Sheet, error) {
	if w.active == "" {
		return nil, &LookupError{What: "sheet", Name: "(active)"}
	}
	return w.Sheet(w.active)
}

// SetActive marks a sheet active; the sheet must exist.
func (w *Workbook) SetActive(name string) error {
	if _, ok := w.index[name]; !ok {
		return &LookupError{What: "sheet", Name: name}
	}
	w.active = name
	return nil
}
