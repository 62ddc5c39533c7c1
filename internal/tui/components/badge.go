package components

import (
	"outlay/internal/model"
	"outlay/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// StatusBadge renders a tracker status as a colored pill.
func StatusBadge(status model.Status) string {
	t := theme.Active

	switch status {
	case model.StatusCleared:
		return lipgloss.NewStyle().
			Foreground(t.Green).
			Render("● cleared")
	default:
		return lipgloss.NewStyle().
			Foreground(t.Yellow).
			Render("◐ in progress")
	}
}

// StatusBadgeWidth is the rendered width of the widest badge, for column
// alignment in list rows.
const StatusBadgeWidth = 13
