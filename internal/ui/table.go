package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders rows in a compact fixed-width layout for terminals.
type Table struct {
	Headers  []string
	Rows     [][]string
	MaxWidth int // Max width per column (0 = auto)
}

// ColumnWidths calculates column widths in display cells.
func (t *Table) ColumnWidths() []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}

	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	if t.MaxWidth > 0 {
		for i := range widths {
			widths[i] = min(widths[i], t.MaxWidth)
		}
	}
	return widths
}

// Render outputs the table to a string.
func (t *Table) Render() string {
	if len(t.Headers) == 0 {
		return ""
	}

	widths := t.ColumnWidths()
	var sb strings.Builder

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	cellStyle := lipgloss.NewStyle().Foreground(ColorText)
	dimStyle := lipgloss.NewStyle().Foreground(ColorSecondary)

	headerCells := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		headerCells[i] = headerStyle.Render(padRight(h, widths[i]))
	}
	sb.WriteString(" " + strings.Join(headerCells, "  ") + "\n")

	sepParts := make([]string, len(widths))
	for i, w := range widths {
		sepParts[i] = dimStyle.Render(strings.Repeat("─", w))
	}
	sb.WriteString(" " + strings.Join(sepParts, "──") + "\n")

	for _, row := range t.Rows {
		cells := make([]string, len(t.Headers))
		for i := range t.Headers {
			val := ""
			if i < len(row) {
				val = row[i]
			}
			cells[i] = cellStyle.Render(padRight(fitCell(val, widths[i]), widths[i]))
		}
		sb.WriteString(" " + strings.Join(cells, "  ") + "\n")
	}

	return sb.String()
}

// fitCell shortens val to width display cells, marking the cut with an ellipsis.
func fitCell(val string, width int) string {
	if lipgloss.Width(val) <= width {
		return val
	}
	if width <= 0 {
		return ""
	}

	var sb strings.Builder
	used := 0
	for _, r := range val {
		w := lipgloss.Width(string(r))
		if used+w > width-1 {
			break
		}
		sb.WriteRune(r)
		used += w
	}
	return sb.String() + "…"
}

// padRight pads a string to the specified display width.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
