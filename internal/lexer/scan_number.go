package lexer

import (
	"flatcell/internal/diag"
	"flatcell/internal/token"
)

// Decimal literals only: 123, 1.5, .5, 1e-3, 1.0E+10. Spreadsheet
// formulas have no base prefixes or digit separators.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	// leading dot means the ".digits" form (caller checked isNumberAfterDot)
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		if !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.report(diag.LexBadNumber, sp, "expected digit after '.'")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	} else {
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}

		// fraction
		if lx.cursor.Peek() == '.' {
			b0, b1, ok := lx.cursor.Peek2()
			if ok && b0 == '.' && isDec(b1) {
				lx.cursor.Bump() // '.'
				for isDec(lx.cursor.Peek()) {
					lx.cursor.Bump()
				}
			}
			// a bare trailing dot is left for the fuse pass; "A1." style
			// glue is more likely than a "1." float in formula text
		}
	}

	// exponent
	if lx.cursor.Peek() == 'e' || lx.cursor.Peek() == 'E' {
		b0, b1, ok := lx.cursor.Peek2()
		hasExp := ok && (b0 == 'e' || b0 == 'E') && (isDec(b1) || b1 == '+' || b1 == '-')
		if hasExp {
			lx.cursor.Bump() // e/E
			if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
				lx.cursor.Bump()
			}
			if !isDec(lx.cursor.Peek()) {
				sp := lx.cursor.SpanFrom(start)
				lx.report(diag.LexBadNumber, sp, "expected digit after exponent")
				return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
			}
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Number, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
