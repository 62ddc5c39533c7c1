// Package theme defines color themes for the outlay TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name         string
	Background   lipgloss.Color // Main app background
	Surface      lipgloss.Color // Card/panel backgrounds
	SurfaceHover lipgloss.Color // Highlighted surface (selected row)
	Border       lipgloss.Color // Subtle borders
	BorderBright lipgloss.Color // Prominent borders (forms, focus)
	TextDim      lipgloss.Color // Lowest contrast text (hints, disabled)
	TextMuted    lipgloss.Color // Secondary text (labels, metadata)
	TextPrimary  lipgloss.Color // Primary content text
	Accent       lipgloss.Color // Primary accent (cursor, active states)
	AccentDim    lipgloss.Color // Dimmed accent for backgrounds
	Green        lipgloss.Color
	Orange       lipgloss.Color
	Red          lipgloss.Color
	Yellow       lipgloss.Color
}

// Active is the currently selected theme.
var Active = Slate

// Slate is the default theme - cool blue/grey dark theme.
var Slate = Theme{
	Name:         "slate",
	Background:   lipgloss.Color("#0F1115"),
	Surface:      lipgloss.Color("#171A21"),
	SurfaceHover: lipgloss.Color("#222633"),
	Border:       lipgloss.Color("#2A2F3A"),
	BorderBright: lipgloss.Color("#4C5566"),
	TextDim:      lipgloss.Color("#4C5566"),
	TextMuted:    lipgloss.Color("#7A8499"),
	TextPrimary:  lipgloss.Color("#E6EAF2"),
	Accent:       lipgloss.Color("#7AA2F7"),
	AccentDim:    lipgloss.Color("#1E2638"),
	Green:        lipgloss.Color("#9ECE6A"),
	Orange:       lipgloss.Color("#FF9E64"),
	Red:          lipgloss.Color("#F7768E"),
	Yellow:       lipgloss.Color("#E0AF68"),
}

// Paper is a light theme for bright terminals.
var Paper = Theme{
	Name:         "paper",
	Background:   lipgloss.Color("#FAF8F2"),
	Surface:      lipgloss.Color("#F0EDE4"),
	SurfaceHover: lipgloss.Color("#E4E0D4"),
	Border:       lipgloss.Color("#D5D1C4"),
	BorderBright: lipgloss.Color("#A8A396"),
	TextDim:      lipgloss.Color("#A8A396"),
	TextMuted:    lipgloss.Color("#6F6B5F"),
	TextPrimary:  lipgloss.Color("#1C1B18"),
	Accent:       lipgloss.Color("#2E5EAA"),
	AccentDim:    lipgloss.Color("#DCE4F2"),
	Green:        lipgloss.Color("#4E7A27"),
	Orange:       lipgloss.Color("#B05A1E"),
	Red:          lipgloss.Color("#B0302B"),
	Yellow:       lipgloss.Color("#8F6E0C"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:         "terminal",
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	SurfaceHover: lipgloss.Color("8"),
	Border:       lipgloss.Color("8"),
	BorderBright: lipgloss.Color("7"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("4"),
	AccentDim:    lipgloss.Color("0"),
	Green:        lipgloss.Color("2"),
	Orange:       lipgloss.Color("3"),
	Red:          lipgloss.Color("1"),
	Yellow:       lipgloss.Color("3"),
}

// All available themes.
var All = []Theme{Slate, Paper, Terminal}

// ByName returns a theme by its name, defaulting to Slate.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return Slate
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
