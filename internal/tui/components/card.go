// Package components provides reusable TUI widgets for the outlay screen.
package components

import (
	"outlay/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Metric is one labeled figure for the summary row.
type Metric struct {
	Label string
	Value string
	Note  string
}

// cardFrame is the shared bordered box. outerWidth includes the border;
// the inner width never drops below 10.
func cardFrame(outerWidth int) lipgloss.Style {
	inner := outerWidth - 2
	if inner < 10 {
		inner = 10
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Active.Border).
		Width(inner).
		Padding(0, 1)
}

// LayoutRow distributes totalWidth into n widths that sum to exactly
// totalWidth. Earlier items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	widths := make([]int, n)
	for i := range widths {
		widths[i] = totalWidth / n
		if i < totalWidth%n {
			widths[i]++
		}
	}
	return widths
}

// MetricCard renders a small card with label, value, and an optional note.
// outerWidth is the total rendered width including border.
func MetricCard(m Metric, outerWidth int) string {
	t := theme.Active

	lines := []string{
		lipgloss.NewStyle().Foreground(t.TextMuted).Render(m.Label),
		lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render(m.Value),
	}
	if m.Note != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(t.TextDim).Render(m.Note))
	}

	return cardFrame(outerWidth).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// MetricRow renders metric cards side by side filling totalWidth exactly.
func MetricRow(metrics []Metric, totalWidth int) string {
	if len(metrics) == 0 {
		return ""
	}
	cards := make([]string, len(metrics))
	for i, w := range LayoutRow(totalWidth, len(metrics)) {
		cards[i] = MetricCard(metrics[i], w)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// ContentCard renders a bordered card with an optional bold title line.
// outerWidth controls the total rendered width including border.
func ContentCard(title, body string, outerWidth int) string {
	content := body
	if title != "" {
		titleStyle := lipgloss.NewStyle().
			Foreground(theme.Active.TextMuted).
			Bold(true)
		content = titleStyle.Render(title) + "\n" + body
	}
	return cardFrame(outerWidth).Render(content)
}

// CardInnerWidth returns the usable text width inside a card given its
// outer width (subtracts border and padding).
func CardInnerWidth(outerWidth int) int {
	w := outerWidth - 4
	if w < 10 {
		w = 10
	}
	return w
}
