package lexer

import (
	"flatcell/internal/diag"
	"flatcell/internal/token"
)

// Greedy: two-byte operators first, then single bytes.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}

	switch {
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	case lx.try2('<', '>'):
		return emit(token.NotEq)
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '%':
		return emit(token.Percent)
	case '^':
		return emit(token.Caret)
	case '&':
		return emit(token.Amp)
	case '=':
		return emit(token.Eq)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case ',':
		return emit(token.Comma)
	case ';':
		return emit(token.Semicolon)
	case ':':
		return emit(token.Colon)
	case '.':
		return emit(token.Dot)
	case '!':
		return emit(token.Bang)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	default:
		// Anything the grammar has no rule for, '$' anchors included.
		// The fuse pass binds these into the neighboring reference.
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.LexUnknownChar, sp, "unknown character")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}
}
