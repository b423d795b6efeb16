package lexer

import (
	"flatcell/internal/diag"
	"flatcell/internal/source"
)

// BagAdapter turns lexer reports into SevError diagnostics in a Bag.
type BagAdapter struct {
	Bag *diag.Bag
}

func (a *BagAdapter) Report(code diag.Code, span source.Span, msg string) {
	if a.Bag == nil {
		return
	}
	a.Bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  msg,
		Primary:  span,
	})
}
