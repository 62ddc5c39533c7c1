package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Slate)
var (
	ColorBg        = lipgloss.Color("#0F1115")
	ColorSurface   = lipgloss.Color("#171A21")
	ColorBorder    = lipgloss.Color("#2A2F3A")
	ColorTextDim   = lipgloss.Color("#4C5566")
	ColorTextMuted = lipgloss.Color("#7A8499")
	ColorText      = lipgloss.Color("#E6EAF2")
	ColorAccent    = lipgloss.Color("#7AA2F7")
	ColorGreen     = lipgloss.Color("#9ECE6A")
	ColorOrange    = lipgloss.Color("#E0AF68")
	ColorRed       = lipgloss.Color("#F7768E")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows. A row of
// just "---" draws a separator line.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}
	widths := columnWidths(t, numCols)

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	writeRule(&b, widths, "╭", "┬", "╮")

	if len(t.Headers) > 0 {
		writeCells(&b, t.Headers, widths, headerStyle, -1)
		writeRule(&b, widths, "├", "┼", "┤")
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			writeRule(&b, widths, "├", "┼", "┤")
			continue
		}
		// Right-align numeric columns (all except first two)
		writeCells(&b, row, widths, valueStyle, 2)
	}

	writeRule(&b, widths, "╰", "┴", "╯")

	return b.String()
}

// columnWidths sizes each column to its widest cell unless t.Widths is set.
func columnWidths(t Table, numCols int) []int {
	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
		return widths
	}

	grow := func(i int, cell string) {
		if i >= numCols {
			return
		}
		if w := lipgloss.Width(cell); w > widths[i] {
			widths[i] = w
		}
	}
	for i, h := range t.Headers {
		grow(i, h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			grow(i, cell)
		}
	}
	return widths
}

// writeRule draws one horizontal border line, e.g. ╭──┬──╮.
func writeRule(b *strings.Builder, widths []int, left, junction, right string) {
	segments := make([]string, len(widths))
	for i, w := range widths {
		segments[i] = strings.Repeat("─", w+2)
	}
	b.WriteString(dimStyle.Render(left + strings.Join(segments, junction) + right))
	b.WriteString("\n")
}

// writeCells draws one table row. Columns at alignRightFrom and beyond
// are right-aligned; pass -1 to left-align everything.
func writeCells(b *strings.Builder, cells []string, widths []int, style lipgloss.Style, alignRightFrom int) {
	edge := dimStyle.Render("│")
	b.WriteString(edge)
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		right := alignRightFrom >= 0 && i >= alignRightFrom
		b.WriteString(style.Render(padCell(cell, w, right)))
		b.WriteString(edge)
	}
	b.WriteString("\n")
}

// padCell aligns a cell to w display columns with a space either side.
// Byte-count padding misaligns borders for runes like "·" and "—".
func padCell(cell string, w int, alignRight bool) string {
	gap := w - lipgloss.Width(cell)
	if gap < 0 {
		gap = 0
	}
	fill := strings.Repeat(" ", gap)
	if alignRight {
		return " " + fill + cell + " "
	}
	return " " + cell + fill + " "
}

// RenderSparkline generates a unicode block sparkline from a series of values.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	max := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		max = 1
	}

	blocks := []rune("▁▂▃▄▅▆▇█")
	out := make([]rune, len(values))
	for i, v := range values {
		idx := int(v / max * float64(len(blocks)-1))
		if idx < 0 {
			idx = 0
		} else if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		out[i] = blocks[idx]
	}

	return string(out)
}

// RenderHorizontalBar renders a labeled horizontal bar scaled to maxValue.
func RenderHorizontalBar(value, maxValue float64, maxWidth int) string {
	if maxValue <= 0 || maxWidth <= 0 {
		return ""
	}
	barLen := int(value / maxValue * float64(maxWidth))
	if barLen < 0 {
		barLen = 0
	}
	if barLen > maxWidth {
		barLen = maxWidth
	}
	return mutedStyle.Render(strings.Repeat("█", barLen))
}
