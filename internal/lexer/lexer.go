package lexer

import (
	"flatcell/internal/source"
	"flatcell/internal/token"
)

// Lexer scans one formula expression with general expression-lexing
// rules. It knows nothing about sheet qualifiers or ranges; those are
// reassembled afterwards by FuseReferences.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token. After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	lx.skipSpace()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
			Text: "",
		}
	}

	ch := lx.cursor.Peek()

	switch {
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		return lx.scanName()

	case isDec(ch):
		return lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		return lx.scanNumber()

	case ch == '"' || ch == '\'':
		return lx.scanString()

	case ch == '#':
		return lx.scanComment()

	default:
		return lx.scanOperatorOrPunct()
	}
}

// ScanAll collects every token through the terminating EOF.
func (lx *Lexer) ScanAll() []token.Token {
	tokens := make([]token.Token, 0, 16)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

// skipSpace drops spaces, tabs, and newlines; formulas are one logical line.
func (lx *Lexer) skipSpace() {
	for {
		b := lx.cursor.Peek()
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			lx.cursor.Bump()
			continue
		}
		return
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
