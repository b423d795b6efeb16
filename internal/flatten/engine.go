package flatten

import (
	"slices"
	"strings"

	"flatcell/internal/token"
)

// Expand inlines formula-backed names until a fixed point: every Name
// token that resolves to a formula is replaced by that formula's
// parenthesized, sheet-context-adjusted expansion, and the expansion
// itself is processed the same way. Names that do not resolve pass
// through unchanged. A reference chain that loops back on itself
// produces a *CycleError instead of recursing forever.
func (c *Context) Expand(tokens []token.Token) ([]token.Token, error) {
	return c.expand(slices.Clone(tokens), make(map[string]bool), nil)
}

func (c *Context) expand(result []token.Token, onChain map[string]bool, chain []string) ([]token.Token, error) {
	i := 0
	for i < len(result) {
		if result[i].Kind != token.Name {
			i++
			continue
		}
		repl, substituted, err := c.replaceName(result[i], onChain, chain)
		if err != nil {
			return nil, err
		}
		if !substituted {
			i++
			continue
		}
		result = append(result[:i], append(repl, result[i+1:]...)...)
		i += len(repl)
	}
	return result, nil
}

// replaceName computes the replacement sequence for one name. A miss
// returns the name unchanged with substituted false; the cursor then
// advances past it. A hit tokenizes the resolved formula, wraps it in
// parentheses to keep operator precedence intact, re-qualifies
// unqualified names with the original sheet part, and expands the
// result recursively before it is spliced in.
func (c *Context) replaceName(name token.Token, onChain map[string]bool, chain []string) ([]token.Token, bool, error) {
	formula, ok := c.resolveFormula(name.Text)
	if !ok {
		return []token.Token{name}, false, nil
	}

	key := c.canonicalKey(name.Text)
	if onChain[key] {
		return nil, false, &CycleError{Ref: name.Text, Chain: slices.Clone(chain)}
	}

	// Normalize through a tokenize/render round trip; this also strips
	// the leading '='.
	body := Render(Tokenize(formula))
	wrapped := Tokenize("(" + body + ")")

	if dot := strings.LastIndex(name.Text, "."); dot >= 0 {
		// The inlined formula lived on name's sheet, so its unqualified
		// references implicitly point there. Qualify them before they
		// are resolved against the wrong sheet.
		sheet := name.Text[:dot]
		for j := range wrapped {
			if wrapped[j].Kind == token.Name && !strings.Contains(wrapped[j].Text, ".") {
				wrapped[j].Text = sheet + "." + wrapped[j].Text
			}
		}
	}

	// drop the trailing end-of-stream marker
	if n := len(wrapped); n > 0 && wrapped[n-1].Kind == token.EOF {
		wrapped = wrapped[:n-1]
	}

	onChain[key] = true
	expanded, err := c.expand(wrapped, onChain, append(chain, name.Text))
	delete(onChain, key)
	if err != nil {
		return nil, false, err
	}
	return expanded, true, nil
}
