package flatten

import (
	"strings"

	"flatcell/internal/token"
)

// Render serializes a token sequence back to formula text: token texts
// joined by single spaces, EOF markers excluded. Deliberately literal;
// re-tokenizing the result reproduces an equivalent stream modulo
// whitespace.
func Render(tokens []token.Token) string {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == token.EOF {
			continue
		}
		parts = append(parts, tok.Text)
	}
	return strings.Join(parts, " ")
}
