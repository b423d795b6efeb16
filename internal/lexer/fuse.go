package lexer

import (
	"flatcell/internal/token"
)

// FuseReferences reassembles spreadsheet references out of a raw token
// stream. The scanner uses general expression rules, so a reference like
// $Sheet1.A1 or A1:B2 comes out in pieces: a '$' the grammar cannot lex
// (Invalid), sheet and cell names, and '.'/':' separators. Each such
// "glue" token must bind to its neighbors instead of standing alone:
//
//   - glue kinds: Invalid, Comment, and the Dot and Colon operators;
//   - backward: if the previously emitted token is not an operator or
//     punctuation, it is popped and fused in front of the glue; an
//     operator stays put and the glue starts a fresh reference;
//   - forward: following tokens are absorbed until an operator,
//     punctuation, or EOF is hit, except that a Dot continues the same
//     reference; the first breaking token is processed normally.
//
// The fused token is a Name whose text is the concatenation and whose
// span covers every merged piece. Each iteration consumes at least one
// input token, so the pass terminates and never grows the stream; it is
// idempotent on its own output.
func FuseReferences(tokens []token.Token) []token.Token {
	out := make([]token.Token, 0, len(tokens))
	in := tokens
	for len(in) > 0 {
		tok := in[0]
		in = in[1:]

		if isGlue(tok) {
			if len(out) > 0 {
				prev := out[len(out)-1]
				if !prev.IsPunctOrOp() {
					out = out[:len(out)-1]
					tok = fused(prev, tok)
				}
			}
			for len(in) > 0 {
				next := in[0]
				if next.Kind == token.EOF {
					break
				}
				if next.IsPunctOrOp() && next.Kind != token.Dot {
					break
				}
				tok = fused(tok, next)
				in = in[1:]
			}
		}

		out = append(out, tok)
	}
	return out
}

// isGlue reports whether a token must be merged into an adjacent name.
func isGlue(t token.Token) bool {
	switch t.Kind {
	case token.Invalid, token.Comment, token.Dot, token.Colon:
		return true
	default:
		return false
	}
}

func fused(a, b token.Token) token.Token {
	return token.Token{
		Kind: token.Name,
		Span: a.Span.Cover(b.Span),
		Text: a.Text + b.Text,
	}
}
