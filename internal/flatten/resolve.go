package flatten

import (
	"strings"

	"flatcell/internal/token"
	"flatcell/internal/workbook"
)

// resolveFormula checks whether a fused name denotes a cell holding a
// formula and, if so, returns the formula text as stored (leading '='
// included). Everything else misses: values, blanks, ranges, references
// into other files, function names, and names the workbook cannot look
// up.
func (c *Context) resolveFormula(ref string) (string, bool) {
	c.trace("resolve", ref)

	// A reference into another file leaves a comment artifact right
	// after the first raw token. Those are never followed.
	raw := scanRaw(ref)
	if len(raw) > 2 && raw[1].Kind == token.Comment {
		c.trace("resolve external", ref)
		return "", false
	}

	parts := strings.Split(ref, ".")
	if strings.Contains(parts[len(parts)-1], ":") {
		// range, not a single cell
		return "", false
	}

	var cell *workbook.Cell
	if len(parts) == 1 {
		c.trace("resolve simple ref", ref)
		found, err := c.Sheet.Cell(ref)
		if err != nil {
			return "", false
		}
		cell = found
	} else {
		sheetName := strings.TrimSpace(strings.ReplaceAll(strings.Join(parts[:len(parts)-1], "."), "$", ""))
		cellName := parts[len(parts)-1]
		c.trace("resolve qualified ref", sheetName+"\n"+cellName)
		sheet, err := c.Book.Sheet(sheetName)
		if err != nil {
			return "", false
		}
		found, err := sheet.Cell(cellName)
		if err != nil {
			return "", false
		}
		cell = found
	}

	if cell.Type != workbook.ContentFormula {
		return "", false
	}
	return cell.Formula, true
}

// canonicalKey maps a reference to a "sheet\x00cell" key for cycle
// detection: unqualified names anchor to the context sheet, anchors and
// case differences collapse, so A1, $A$1, and Sheet1.A1 (with Sheet1
// active) all name the same cell.
func (c *Context) canonicalKey(ref string) string {
	parts := strings.Split(ref, ".")
	sheetName := c.Sheet.Name
	cellName := parts[len(parts)-1]
	if len(parts) > 1 {
		sheetName = strings.TrimSpace(strings.ReplaceAll(strings.Join(parts[:len(parts)-1], "."), "$", ""))
	}
	return sheetName + "\x00" + workbook.NormalizeRef(cellName)
}
