package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"flatcell/internal/diag"
	"flatcell/internal/lexer"
	"flatcell/internal/source"
	"flatcell/internal/token"
)

// testReporter collects every diagnostic the lexer emits.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, span source.Span, msg string) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  msg,
		Primary:  span,
	})
}

func (r *testReporter) Messages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message))
	}
	return messages
}

// makeTestLexer creates a lexer over a test string.
func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test-formula", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, reporter
}

// expectTokens checks the token kind sequence, EOF excluded.
func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := lx.ScanAll()

	if len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %v\nErrors: %v",
			len(expected), len(tokens), input, tokensToString(tokens), reporter.Messages())
	}

	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("Token %d: expected %v, got %v (text: %q)",
				i, expected[i], tok.Kind, tok.Text)
		}
	}
}

// expectSingleToken checks that the input produces exactly one token.
func expectSingleToken(t *testing.T, input string, expectedKind token.Kind, expectedText string) {
	t.Helper()
	lx, _ := makeTestLexer(input)
	tok := lx.Next()

	if tok.Kind != expectedKind {
		t.Errorf("Expected kind %v, got %v", expectedKind, tok.Kind)
	}
	if tok.Text != expectedText {
		t.Errorf("Expected text %q, got %q", expectedText, tok.Text)
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func TestNames(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{"A1", "A1"},
		{"AB12", "AB12"},
		{"Sheet1", "Sheet1"},
		{"SUM", "SUM"},
		{"_tmp", "_tmp"},
		{"Лист1", "Лист1"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, token.Name, tt.text)
		})
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{"0", "0"},
		{"42", "42"},
		{"3.14", "3.14"},
		{".5", ".5"},
		{"1e-3", "1e-3"},
		{"2.5E+10", "2.5E+10"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, token.Number, tt.text)
		})
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{`"hello"`, `"hello"`},
		{`"a""b"`, `"a""b"`},
		{`'Sheet name'`, `'Sheet name'`},
		{`'it''s'`, `'it''s'`},
		{`'file:///tmp/other.ods'`, `'file:///tmp/other.ods'`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, token.String, tt.text)
		})
	}
}

func TestUnterminatedString(t *testing.T) {
	lx, reporter := makeTestLexer(`"oops`)
	tok := lx.Next()

	if tok.Kind != token.Invalid {
		t.Errorf("Expected Invalid, got %v", tok.Kind)
	}
	if len(reporter.diagnostics) != 1 {
		t.Fatalf("Expected 1 diagnostic, got %d", len(reporter.diagnostics))
	}
	if reporter.diagnostics[0].Code != diag.LexUnterminatedString {
		t.Errorf("Expected LexUnterminatedString, got %v", reporter.diagnostics[0].Code.ID())
	}
}

func TestComment(t *testing.T) {
	expectSingleToken(t, "#$Sheet1.A1", token.Comment, "#$Sheet1.A1")
}

func TestUnknownChar(t *testing.T) {
	lx, reporter := makeTestLexer("$")
	tok := lx.Next()

	if tok.Kind != token.Invalid {
		t.Errorf("Expected Invalid, got %v", tok.Kind)
	}
	if tok.Text != "$" {
		t.Errorf("Expected text %q, got %q", "$", tok.Text)
	}
	if len(reporter.diagnostics) != 1 || reporter.diagnostics[0].Code != diag.LexUnknownChar {
		t.Errorf("Expected one LexUnknownChar diagnostic, got %v", reporter.Messages())
	}
}

func TestOperators(t *testing.T) {
	tests := []struct {
		input    string
		expected []token.Kind
	}{
		{"+-*/", []token.Kind{token.Plus, token.Minus, token.Star, token.Slash}},
		{"<=", []token.Kind{token.LtEq}},
		{">=", []token.Kind{token.GtEq}},
		{"<>", []token.Kind{token.NotEq}},
		{"<,>", []token.Kind{token.Lt, token.Comma, token.Gt}},
		{"^&%!", []token.Kind{token.Caret, token.Amp, token.Percent, token.Bang}},
		{"(){};", []token.Kind{token.LParen, token.RParen, token.LBrace, token.RBrace, token.Semicolon}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectTokens(t, tt.input, tt.expected)
		})
	}
}

func TestExpressionSequences(t *testing.T) {
	tests := []struct {
		input    string
		expected []token.Kind
	}{
		{"=A1+1", []token.Kind{token.Eq, token.Name, token.Plus, token.Number}},
		{"A1>=B2", []token.Kind{token.Name, token.GtEq, token.Name}},
		{"SUM(A1;B2)", []token.Kind{token.Name, token.LParen, token.Name, token.Semicolon, token.Name, token.RParen}},
		{"Sheet1.A1", []token.Kind{token.Name, token.Dot, token.Name}},
		{"A1:B2", []token.Kind{token.Name, token.Colon, token.Name}},
		{"$A$1", []token.Kind{token.Invalid, token.Name, token.Invalid, token.Number}},
		{`1+"x"&'y'`, []token.Kind{token.Number, token.Plus, token.String, token.Amp, token.String}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectTokens(t, tt.input, tt.expected)
		})
	}
}

func TestWhitespaceSkipped(t *testing.T) {
	expectTokens(t, "  A1 \t+\n 2 ", []token.Kind{token.Name, token.Plus, token.Number})
}

func TestEOFIsSticky(t *testing.T) {
	lx, _ := makeTestLexer("A1")
	if tok := lx.Next(); tok.Kind != token.Name {
		t.Fatalf("Expected Name, got %v", tok.Kind)
	}
	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Errorf("Next() after end: expected EOF, got %v", tok.Kind)
		}
	}
}
