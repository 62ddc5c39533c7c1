package components

import (
	"fmt"

	"outlay/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar with key hints on the left
// and the load time plus data path on the right.
func RenderStatusBar(width int, dataPath, loadNote string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [a]dd  [e]xpense  [t]oggle  [d]elete  [?]help  [q]uit"
	right := ""
	if dataPath != "" {
		right = fmt.Sprintf("%s ", dataPath)
	}
	if loadNote != "" {
		right = fmt.Sprintf("loaded %s · %s", loadNote, right)
	}

	// Pad middle; drop the path rather than let the bar wrap
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		right = ""
		padding = width - lipgloss.Width(left)
		if padding < 0 {
			padding = 0
		}
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
