package workbook

import (
	"strconv"
	"strings"
)

// ContentType classifies what a cell holds.
type ContentType uint8

const (
	ContentEmpty   ContentType = 0
	ContentText    ContentType = 1
	ContentValue   ContentType = 2
	ContentFormula ContentType = 3
)

func (t ContentType) String() string {
	switch t {
	case ContentEmpty:
		return "EMPTY"
	case ContentText:
		return "TEXT"
	case ContentValue:
		return "VALUE"
	case ContentFormula:
		return "FORMULA"
	}
	return "UNKNOWN"
}

// Cell holds one cell's content. Formula is valid only when Type is
// ContentFormula and is stored as entered, leading '=' included.
type Cell struct {
	Type    ContentType
	Value   float64
	Text    string
	Formula string
}

// ParseCell classifies a raw cell entry the way a spreadsheet does:
// '='-prefixed entries are formulas, parseable numbers are values,
// empty entries are empty, everything else is text.
func ParseCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Cell{Type: ContentEmpty}
	}
	if strings.HasPrefix(trimmed, "=") {
		return Cell{Type: ContentFormula, Formula: trimmed}
	}
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Cell{Type: ContentValue, Value: v}
	}
	return Cell{Type: ContentText, Text: raw}
}
