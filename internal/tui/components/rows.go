package components

import (
	"fmt"
	"strings"

	"outlay/internal/cli"
	"outlay/internal/model"
	"outlay/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// TrackerRow renders one tracker line: expand arrow, date, name, status
// badge, expense count, and total. Selected rows get a uniform highlight.
func TrackerRow(tr model.Tracker, selected bool, width int, currency string) string {
	t := theme.Active

	arrow := "▸"
	if tr.Expanded {
		arrow = "▾"
	}

	date := cli.FormatDate(tr.Date)
	count := fmt.Sprintf("%11s", cli.FormatCount(len(tr.Expenses), "expense"))
	total := fmt.Sprintf("%10s", cli.FormatCents(tr.Total(), currency))

	// Pad the status label by display width; byte padding would leave
	// "● cleared" two cells short of the badge column.
	label := statusText(tr.Status)
	labelPad := StatusBadgeWidth - lipgloss.Width(label)
	if labelPad < 0 {
		labelPad = 0
	}
	status := label + strings.Repeat(" ", labelPad)
	rightWidth := lipgloss.Width(status) + lipgloss.Width(count) + lipgloss.Width(total) + 4

	name := truncate(tr.Name, width-rightWidth-lipgloss.Width(date)-7)
	left := fmt.Sprintf("%s %s  %s", arrow, date, name)

	pad := width - lipgloss.Width(left) - rightWidth - 1
	if pad < 1 {
		pad = 1
	}

	if selected {
		line := left + strings.Repeat(" ", pad) + status + "  " + count + "  " + total + " "
		return lipgloss.NewStyle().
			Foreground(t.TextPrimary).
			Background(t.SurfaceHover).
			Bold(true).
			Render(line)
	}

	badge := StatusBadge(tr.Status)
	badgePad := StatusBadgeWidth - lipgloss.Width(badge)
	if badgePad < 0 {
		badgePad = 0
	}

	arrowStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	dateStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	countStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	totalStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	return arrowStyle.Render(arrow) + " " +
		dateStyle.Render(date) + "  " +
		nameStyle.Render(name) +
		strings.Repeat(" ", pad) +
		badge + strings.Repeat(" ", badgePad) + "  " +
		countStyle.Render(count) + "  " +
		totalStyle.Render(total) + " "
}

// ExpenseRow renders one expense line indented under its tracker.
func ExpenseRow(e model.Expense, selected bool, width int, currency string) string {
	t := theme.Active

	amount := cli.FormatCents(e.AmountCents, currency)
	title := truncate(e.Title, width-lipgloss.Width(amount)-10)
	left := fmt.Sprintf("      · %s", title)

	pad := width - lipgloss.Width(left) - lipgloss.Width(amount) - 1
	if pad < 1 {
		pad = 1
	}
	line := left + strings.Repeat(" ", pad) + amount + " "

	if selected {
		return lipgloss.NewStyle().
			Foreground(t.TextPrimary).
			Background(t.SurfaceHover).
			Render(line)
	}

	dotStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	titleStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	return dotStyle.Render("      · ") +
		titleStyle.Render(title) +
		strings.Repeat(" ", pad) +
		amountStyle.Render(amount) + " "
}

func statusText(s model.Status) string {
	if s == model.StatusCleared {
		return "● cleared"
	}
	return "◐ in progress"
}

func truncate(s string, maxWidth int) string {
	if maxWidth < 1 {
		maxWidth = 1
	}
	r := []rune(s)
	if len(r) <= maxWidth {
		return s
	}
	if maxWidth <= 1 {
		return "…"
	}
	return string(r[:maxWidth-1]) + "…"
}
