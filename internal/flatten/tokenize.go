package flatten

import (
	"flatcell/internal/lexer"
	"flatcell/internal/source"
	"flatcell/internal/token"
)

// Tokenize lexes formula text into spreadsheet tokens: a raw scan, then
// the reference-fusing pass. A leading '=' is discarded; formulas are
// stored with it, the engine works on the bare expression. The stream is
// EOF-terminated. Malformed input never fails: unlexable pieces travel
// as Invalid tokens and usually get fused into a neighboring name.
func Tokenize(text string) []token.Token {
	raw := scanRaw(text)
	if len(raw) > 0 && raw[0].Kind == token.Eq {
		raw = raw[1:]
	}
	return lexer.FuseReferences(raw)
}

// scanRaw lexes text without fusing. The resolver needs the raw stream:
// the external-file artifact (a Comment right after the first token) is
// only visible before fusing merges it away.
func scanRaw(text string) []token.Token {
	fs := source.NewFileSet()
	id := fs.AddVirtual("formula", []byte(text))
	lx := lexer.New(fs.Get(id), lexer.Options{})
	return lx.ScanAll()
}
