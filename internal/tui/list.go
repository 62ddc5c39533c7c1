package tui

import (
	"fmt"
	"strings"

	"outlay/internal/cli"
	"outlay/internal/tui/components"
	"outlay/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := a.renderHeader(w)
	metrics := a.renderMetrics(cw)
	statusBar := components.RenderStatusBar(w, a.dataPath,
		fmt.Sprintf("%dms", a.loadTime.Milliseconds()))

	headerH := lipgloss.Height(header)
	metricsH := lipgloss.Height(metrics)
	statusH := lipgloss.Height(statusBar)

	listH := h - headerH - metricsH - 1 - statusH
	if listH < 3 {
		listH = 3
	}

	list := padHeight(truncateHeight(a.renderList(cw, listH), listH), listH)

	content := lipgloss.JoinVertical(lipgloss.Left, metrics, "", list)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, metricsH+1+listH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// renderHeader renders the one-line title bar: name and tracker count on
// the left, a sparkline of per-tracker totals on the right.
func (a App) renderHeader(w int) string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	subStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	left := titleStyle.Render(" ◈ outlay ") +
		subStyle.Render(cli.FormatCount(len(a.trackers), "tracker"))

	right := ""
	if len(a.trackers) > 1 {
		values := make([]float64, len(a.trackers))
		for i, tr := range a.trackers {
			values[i] = float64(tr.Total())
		}
		right = components.Sparkline(values, t.Accent) +
			subStyle.Render(" ")
	}

	// Drop the sparkline rather than let the header wrap
	padding := w - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		right = ""
		padding = w - lipgloss.Width(left)
		if padding < 0 {
			padding = 0
		}
	}

	rowStyle := lipgloss.NewStyle().Background(t.Surface).Width(w)
	return rowStyle.Render(left + strings.Repeat(" ", padding) + right)
}

func (a App) renderMetrics(cw int) string {
	s := a.summary
	return components.MetricRow([]components.Metric{
		{
			Label: "In progress",
			Value: cli.FormatCents(s.InProgressCents, a.currency),
			Note:  cli.FormatCount(s.InProgress, "tracker"),
		},
		{
			Label: "Cleared",
			Value: cli.FormatCents(s.ClearedCents, a.currency),
			Note:  cli.FormatCount(s.Cleared, "tracker"),
		},
		{
			Label: "Total",
			Value: cli.FormatCents(s.TotalCents, a.currency),
			Note:  cli.FormatCount(s.Expenses, "expense"),
		},
	}, cw)
}

// renderList renders the visible window of tracker and expense rows.
func (a App) renderList(cw, visible int) string {
	t := theme.Active

	if len(a.rows) == 0 {
		return "  " + lipgloss.NewStyle().
			Foreground(t.TextMuted).
			Render("No trackers yet. Press a to add one.")
	}

	offset := a.offset
	if offset > len(a.rows)-1 {
		offset = len(a.rows) - 1
	}
	if offset < 0 {
		offset = 0
	}

	end := offset + visible
	if end > len(a.rows) {
		end = len(a.rows)
	}

	var b strings.Builder
	for i := offset; i < end; i++ {
		ref := a.rows[i]
		tr := a.trackers[ref.tracker]
		if ref.expense < 0 {
			b.WriteString(components.TrackerRow(tr, i == a.cursor, cw, a.currency))
		} else {
			b.WriteString(components.ExpenseRow(tr.Expenses[ref.expense], i == a.cursor, cw, a.currency))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
