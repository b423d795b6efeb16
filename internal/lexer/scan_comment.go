package lexer

import (
	"flatcell/internal/token"
)

// scanComment scans '#' through the end of the line. In formula text the
// only place '#' shows up is the tail of a reference into another file
// ('file:///...'#$Sheet1.A1), which is exactly the artifact the resolver
// looks for.
func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Comment, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
