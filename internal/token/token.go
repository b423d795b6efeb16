package token

import (
	"flatcell/internal/source"
)

// Token represents a single formula token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, Percent, Caret, Amp, Eq, Lt, LtEq, Gt, GtEq,
		NotEq, Comma, Semicolon, Colon, Dot, Bang, LParen, RParen, LBrace, RBrace:
		return true
	default:
		return false
	}
}

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Number, String:
		return true
	default:
		return false
	}
}

// IsName reports whether the token is a name.
func (t Token) IsName() bool { return t.Kind == Name }

// IsEnd reports whether the token marks the end of the stream.
func (t Token) IsEnd() bool { return t.Kind == EOF }
