package workbook

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeRef canonicalizes a single-cell reference: '$' anchors
// stripped, column letters upper-cased. "$a$1" and "A1" address the
// same cell.
func NormalizeRef(ref string) string {
	ref = strings.ReplaceAll(ref, "$", "")
	return strings.ToUpper(strings.TrimSpace(ref))
}

// ParseRef splits an A1-style reference into zero-based column and row
// indices. Anchors are ignored.
func ParseRef(ref string) (col, row int, err error) {
	norm := NormalizeRef(ref)
	i := 0
	for i < len(norm) && norm[i] >= 'A' && norm[i] <= 'Z' {
		col = col*26 + int(norm[i]-'A') + 1
		i++
	}
	if i == 0 {
		return 0, 0, fmt.Errorf("invalid cell reference %q: no column letters", ref)
	}
	if i == len(norm) {
		return 0, 0, fmt.Errorf("invalid cell reference %q: no row number", ref)
	}
	n, convErr := strconv.Atoi(norm[i:])
	if convErr != nil || n < 1 {
		return 0, 0, fmt.Errorf("invalid cell reference %q: bad row number", ref)
	}
	return col - 1, n - 1, nil
}

// FormatRef renders zero-based column and row indices as an A1-style
// reference.
func FormatRef(col, row int) string {
	var letters []byte
	c := col + 1
	for c > 0 {
		c--
		letters = append([]byte{byte('A' + c%26)}, letters...)
		c /= 26
	}
	return string(letters) + strconv.Itoa(row+1)
}
