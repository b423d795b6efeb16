package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"flatcell/internal/driver"
)

var (
	panelTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	panelBorderStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	panelLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// ResultPanel renders one flatten outcome as a bordered panel:
// the cell address, the original formula, and the flattened form.
// With color off it degrades to a plain labeled block.
func ResultPanel(res *driver.FlattenResult, useColor bool) string {
	address := fmt.Sprintf("%s.%s (column %d, row %d)", res.Sheet, res.Cell, res.Column, res.Row)

	if !useColor {
		var b strings.Builder
		fmt.Fprintf(&b, "Flatten formula result\n")
		fmt.Fprintf(&b, "Current cell: %s\n", address)
		fmt.Fprintf(&b, "Original formula: %s\n", res.Original)
		fmt.Fprintf(&b, "Flattened:\n%s\n", res.Flattened)
		return b.String()
	}

	lines := []string{
		panelTitleStyle.Render("Flatten formula result"),
		panelLabelStyle.Render("Current cell: ") + address,
		panelLabelStyle.Render("Original formula: ") + res.Original,
		panelLabelStyle.Render("Flattened:"),
		res.Flattened,
	}
	body := strings.Join(lines, "\n")

	width := 0
	for _, line := range []string{address, res.Original, res.Flattened} {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}

	return panelBorderStyle.Width(min(width+20, 100)).Render(body) + "\n"
}
