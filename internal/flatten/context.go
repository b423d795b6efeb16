package flatten

import (
	"flatcell/internal/workbook"
)

// Tracer receives resolution decision points when debugging is on. It
// must not influence resolution; a nil Tracer is a no-op.
type Tracer interface {
	Trace(title, body string)
}

// Context carries the lookup state for one flatten request: the workbook,
// the sheet that anchors unqualified references, and an optional Tracer.
// It is read-only for the request's duration.
type Context struct {
	Book   *workbook.Workbook
	Sheet  *workbook.Sheet
	Tracer Tracer
}

func (c *Context) trace(title, body string) {
	if c.Tracer != nil {
		c.Tracer.Trace(title, body)
	}
}
