package token_test

import (
	"testing"

	"flatcell/internal/token"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind token.Kind
		want string
	}{
		{token.Invalid, "Invalid"},
		{token.EOF, "EOF"},
		{token.Name, "Name"},
		{token.Number, "Number"},
		{token.String, "String"},
		{token.Comment, "Comment"},
		{token.Plus, "Plus"},
		{token.NotEq, "NotEq"},
		{token.Colon, "Colon"},
		{token.Dot, "Dot"},
		{token.RBrace, "RBrace"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
	if got := token.Kind(200).String(); got != "Unknown" {
		t.Errorf("out-of-range kind: got %q, want %q", got, "Unknown")
	}
}

func TestIsPunctOrOp(t *testing.T) {
	ops := []token.Kind{
		token.Plus, token.Minus, token.Star, token.Slash, token.Percent,
		token.Caret, token.Amp, token.Eq, token.Lt, token.LtEq, token.Gt,
		token.GtEq, token.NotEq, token.Comma, token.Semicolon, token.Colon,
		token.Dot, token.Bang, token.LParen, token.RParen, token.LBrace,
		token.RBrace,
	}
	for _, k := range ops {
		if !(token.Token{Kind: k}).IsPunctOrOp() {
			t.Errorf("%v: expected IsPunctOrOp", k)
		}
	}

	others := []token.Kind{token.Invalid, token.EOF, token.Name, token.Number, token.String, token.Comment}
	for _, k := range others {
		if (token.Token{Kind: k}).IsPunctOrOp() {
			t.Errorf("%v: expected not IsPunctOrOp", k)
		}
	}
}

func TestClassifiers(t *testing.T) {
	if !(token.Token{Kind: token.Name}).IsName() {
		t.Error("Name: expected IsName")
	}
	if !(token.Token{Kind: token.EOF}).IsEnd() {
		t.Error("EOF: expected IsEnd")
	}
	if !(token.Token{Kind: token.Number}).IsLiteral() || !(token.Token{Kind: token.String}).IsLiteral() {
		t.Error("Number/String: expected IsLiteral")
	}
	if (token.Token{Kind: token.Comment}).IsLiteral() {
		t.Error("Comment: expected not IsLiteral")
	}
}
