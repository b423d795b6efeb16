package lexer

import (
	"flatcell/internal/diag"
	"flatcell/internal/token"
)

// scanString scans "..." or '...'. Spreadsheet text doubles the quote to
// escape it ("a""b", 'it''s'), so a doubled closing quote continues the
// literal. Single quotes also wrap sheet names and file URLs in
// references; those come out as String tokens and are fused later.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump() // opening quote
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		if b != quote {
			continue
		}
		if lx.cursor.Peek() == quote {
			lx.cursor.Bump() // doubled quote, keep scanning
			continue
		}
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.String, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}
	// EOF without a closing quote
	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
