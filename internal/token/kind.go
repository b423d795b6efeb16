package token

// Kind represents the category of a formula token.
type Kind uint8

const (
	// Invalid indicates an erroneous or unlexable token (e.g. a stray '$').
	Invalid Kind = iota
	// EOF marks the end of the formula input. It is never serialized.
	EOF

	// Name represents an identifier: a cell reference, sheet-qualified
	// reference, range, or function name.
	Name
	// Number represents a numeric literal.
	Number
	// String represents a quoted string literal.
	String
	// Comment represents a '#...' tail, the artifact a reference into
	// another file leaves behind.
	Comment

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Caret represents the power operator token.
	Caret // ^
	// Amp represents the text concatenation operator token.
	Amp // &
	// Eq represents the equals token (formula prefix and comparison).
	Eq // =
	// Lt represents the lt operator token.
	Lt // <
	// LtEq represents the lt eq operator token.
	LtEq // <=
	// Gt represents the gt operator token.
	Gt // >
	// GtEq represents the gt eq operator token.
	GtEq // >=
	// NotEq represents the not equal operator token.
	NotEq // <>
	// Comma represents the argument separator token.
	Comma // ,
	// Semicolon represents the alternate argument separator token.
	Semicolon // ;
	// Colon represents the range separator token.
	Colon // :
	// Dot represents the sheet separator token.
	Dot // .
	// Bang represents the bang token.
	Bang // !
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token (array literals).
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Name:      "Name",
	Number:    "Number",
	String:    "String",
	Comment:   "Comment",
	Plus:      "Plus",
	Minus:     "Minus",
	Star:      "Star",
	Slash:     "Slash",
	Percent:   "Percent",
	Caret:     "Caret",
	Amp:       "Amp",
	Eq:        "Eq",
	Lt:        "Lt",
	LtEq:      "LtEq",
	Gt:        "Gt",
	GtEq:      "GtEq",
	NotEq:     "NotEq",
	Comma:     "Comma",
	Semicolon: "Semicolon",
	Colon:     "Colon",
	Dot:       "Dot",
	Bang:      "Bang",
	LParen:    "LParen",
	RParen:    "RParen",
	LBrace:    "LBrace",
	RBrace:    "RBrace",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}
