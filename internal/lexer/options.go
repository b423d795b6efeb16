package lexer

import (
	"flatcell/internal/diag"
	"flatcell/internal/source"
)

// Reporter is a thin interface so the lexer does not depend on diagnostic
// storage. The lexer only calls it; formatting happens in outer layers.
type Reporter interface {
	Report(code diag.Code, span source.Span, msg string)
}

type Options struct {
	Reporter Reporter // may be nil: errors are dropped but lexing continues
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, sp, msg)
	}
}
