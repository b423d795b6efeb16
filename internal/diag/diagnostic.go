package diag

import (
	"flatcell/internal/source"
)

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
}
