package workbook_test

import (
	"testing"

	"flatcell/internal/workbook"
)

func TestNormalizeRef(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"A1", "A1"},
		{"$A$1", "A1"},
		{"a1", "A1"},
		{" $b$12 ", "B12"},
	}
	for _, tt := range tests {
		if got := workbook.NormalizeRef(tt.in); got != tt.want {
			t.Errorf("NormalizeRef(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseRef(t *testing.T) {
	tests := []struct {
		in       string
		col, row int
	}{
		{"A1", 0, 0},
		{"B3", 1, 2},
		{"Z10", 25, 9},
		{"AA1", 26, 0},
		{"AB100", 27, 99},
		{"$C$7", 2, 6},
	}
	for _, tt := range tests {
		col, row, err := workbook.ParseRef(tt.in)
		if err != nil {
			t.Errorf("ParseRef(%q): %v", tt.in, err)
			continue
		}
		if col != tt.col || row != tt.row {
			t.Errorf("ParseRef(%q) = (%d,%d), want (%d,%d)", tt.in, col, row, tt.col, tt.row)
		}
	}
}

func TestParseRefRejectsNonRefs(t *testing.T) {
	for _, in := range []string{"", "SUM", "123", "A0", "A-1", "B1x"} {
		if _, _, err := workbook.ParseRef(in); err == nil {
			t.Errorf("ParseRef(%q): expected error", in)
		}
	}
}

func TestFormatRef(t *testing.T) {
	tests := []struct {
		col, row int
		want     string
	}{
		{0, 0, "A1"},
		{1, 2, "B3"},
		{25, 9, "Z10"},
		{26, 0, "AA1"},
		{27, 99, "AB100"},
	}
	for _, tt := range tests {
		if got := workbook.FormatRef(tt.col, tt.row); got != tt.want {
			t.Errorf("FormatRef(%d,%d) = %q, want %q", tt.col, tt.row, got, tt.want)
		}
	}
}
