package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"flatcell/internal/diag"
	"flatcell/internal/source"
)

type PrettyOpts struct {
	Color bool
}

var (
	sevErrorColor   = color.New(color.FgRed, color.Bold)
	sevWarningColor = color.New(color.FgYellow, color.Bold)
	sevInfoColor    = color.New(color.FgCyan)
)

// Pretty writes the bag's diagnostics, one per line:
//
//	ERROR LEX1001: unknown character at 1:5
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	bag.Sort()
	for _, d := range bag.Items() {
		sev := d.Severity.String()
		if opts.Color {
			sev = severityColor(d.Severity).Sprint(sev)
		}
		start, _ := fs.Resolve(d.Primary)
		fmt.Fprintf(w, "%s %s: %s at %d:%d\n", sev, d.Code.ID(), d.Message, start.Line, start.Col)
	}
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return sevErrorColor
	case diag.SevWarning:
		return sevWarningColor
	default:
		return sevInfoColor
	}
}
