package flatten

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotAFormula marks a flatten target whose content is not a formula.
// Callers abort quietly; there is nothing to flatten.
var ErrNotAFormula = errors.New("cell does not hold a formula")

// CycleError reports a reference chain that loops back on itself.
type CycleError struct {
	Ref   string   // the reference that closed the loop
	Chain []string // references along the expansion chain, outermost first
}

func (e *CycleError) Error() string {
	if len(e.Chain) == 0 {
		return fmt.Sprintf("cyclic reference: %s", e.Ref)
	}
	return fmt.Sprintf("cyclic reference: %s -> %s", strings.Join(e.Chain, " -> "), e.Ref)
}
