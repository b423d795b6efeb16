package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var traceTitleColor = color.New(color.FgYellow, color.Bold)

// DebugTracer prints resolver decision points. It implements
// flatten.Tracer and is only wired up when --debug is set; the engine
// sees a nil Tracer otherwise.
type DebugTracer struct {
	Out      io.Writer
	UseColor bool
}

func (t *DebugTracer) Trace(title, body string) {
	if t == nil || t.Out == nil {
		return
	}
	if t.UseColor {
		fmt.Fprintf(t.Out, "%s %s\n", traceTitleColor.Sprintf("[%s]", title), body)
		return
	}
	fmt.Fprintf(t.Out, "[%s] %s\n", title, body)
}
