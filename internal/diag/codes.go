package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the fallback for uncategorized diagnostics.
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003

	// Flattening
	FltInfo  Code = 3000
	FltCycle Code = 3001
)

// ID returns the stable string form of a code, e.g. "LEX1001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("FLT%04d", ic)
	}
	return "E0000"
}
