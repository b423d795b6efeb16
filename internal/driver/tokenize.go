package driver

import (
	"flatcell/internal/diag"
	"flatcell/internal/lexer"
	"flatcell/internal/source"
	"flatcell/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// TokenizeExpr lexes one formula expression, collecting diagnostics.
// With fuse set, the reference-fusing pass runs and the leading '=' is
// dropped, matching what the flatten engine sees; without it the raw
// scanner output is returned.
func TokenizeExpr(text string, maxDiagnostics int, fuse bool) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("formula", []byte(text))
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{
		Reporter: &lexer.BagAdapter{Bag: bag},
	})

	tokens := lx.ScanAll()
	if fuse {
		if len(tokens) > 0 && tokens[0].Kind == token.Eq {
			tokens = tokens[1:]
		}
		tokens = lexer.FuseReferences(tokens)
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}
