package source_test

import (
	"testing"

	"flatcell/internal/source"
)

func TestSpanBasics(t *testing.T) {
	sp := source.Span{File: 1, Start: 3, End: 7}
	if sp.Empty() {
		t.Error("non-empty span reported Empty")
	}
	if sp.Len() != 4 {
		t.Errorf("Len: got %d, want 4", sp.Len())
	}
	if got := sp.String(); got != "1:3-7" {
		t.Errorf("String: got %q", got)
	}

	empty := source.Span{File: 1, Start: 5, End: 5}
	if !empty.Empty() {
		t.Error("empty span not reported Empty")
	}
}

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name string
		a, b source.Span
		want source.Span
	}{
		{
			name: "extends right",
			a:    source.Span{File: 0, Start: 0, End: 3},
			b:    source.Span{File: 0, Start: 2, End: 8},
			want: source.Span{File: 0, Start: 0, End: 8},
		},
		{
			name: "extends left",
			a:    source.Span{File: 0, Start: 4, End: 9},
			b:    source.Span{File: 0, Start: 1, End: 5},
			want: source.Span{File: 0, Start: 1, End: 9},
		},
		{
			name: "contained",
			a:    source.Span{File: 0, Start: 0, End: 10},
			b:    source.Span{File: 0, Start: 3, End: 4},
			want: source.Span{File: 0, Start: 0, End: 10},
		},
		{
			name: "different file is ignored",
			a:    source.Span{File: 0, Start: 2, End: 4},
			b:    source.Span{File: 1, Start: 0, End: 9},
			want: source.Span{File: 0, Start: 2, End: 4},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.want {
				t.Errorf("Cover: got %v, want %v", got, tt.want)
			}
		})
	}
}
