// Package tui provides the interactive Bubble Tea screen for outlay.
package tui

import (
	"fmt"
	"strings"
	"time"

	"outlay/internal/log"
	"outlay/internal/model"
	"outlay/internal/pipeline"
	"outlay/internal/store"
	"outlay/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// TrackersLoadedMsg is sent when the initial store read finishes.
type TrackersLoadedMsg struct {
	Trackers []model.Tracker
	Err      error
	LoadTime time.Duration
}

// savedMsg reports a background save. Failures are logged, never surfaced.
type savedMsg struct {
	count int
	err   error
}

// rowRef addresses one visible list row. expense == -1 means the tracker
// row itself; otherwise it indexes into the tracker's expenses.
type rowRef struct {
	tracker int
	expense int
}

// App is the root Bubble Tea model.
type App struct {
	// Data
	trackers []model.Tracker
	loaded   bool
	loadTime time.Duration

	// Pre-computed for the current list
	rows    []rowRef
	summary pipeline.Summary

	// UI state
	width    int
	height   int
	cursor   int
	offset   int // scroll offset for the list
	showHelp bool

	// Active form (nil when the list has focus)
	form          *huh.Form
	formKind      formKind
	trackerVals   trackerFormValues
	expenseVals   expenseFormValues
	expenseTarget string // tracker ID receiving the new expense

	// Loading
	spinner spinner.Model

	st       *store.Store
	logger   *log.Logger
	dataPath string
	currency string
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 140

	// Vertical layout: title row + metrics card + spacer before the list
	listTopOffset = 7
)

// NewApp creates a new TUI app model. The store stays open for the
// lifetime of the program; the caller closes it after Run returns.
func NewApp(st *store.Store, dataPath, currency string, logger *log.Logger) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		st:       st,
		dataPath: dataPath,
		currency: currency,
		logger:   logger,
		spinner:  sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadTrackersCmd(a.st),
		a.spinner.Tick,
	)
}

// recompute rebuilds the flattened row list and summary after any change
// to the tracker list, and clamps the cursor to the new bounds.
func (a *App) recompute() {
	rows := make([]rowRef, 0, len(a.trackers))
	for i, tr := range a.trackers {
		rows = append(rows, rowRef{tracker: i, expense: -1})
		if !tr.Expanded {
			continue
		}
		for j := range tr.Expenses {
			rows = append(rows, rowRef{tracker: i, expense: j})
		}
	}
	a.rows = rows
	a.summary = pipeline.Summarize(a.trackers)

	if a.cursor >= len(a.rows) {
		a.cursor = len(a.rows) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
	a.scrollToCursor()
}

// listHeight returns how many rows fit in the list viewport.
func (a App) listHeight() int {
	h := a.height - listTopOffset - 1 // status bar
	if h < 3 {
		h = 3
	}
	return h
}

// scrollToCursor adjusts the scroll offset so the cursor stays visible.
// Kept in Update so mouse hit testing can rely on it.
func (a *App) scrollToCursor() {
	if a.cursor < a.offset {
		a.offset = a.cursor
	}
	if vis := a.listHeight(); a.cursor >= a.offset+vis {
		a.offset = a.cursor - vis + 1
	}
	if a.offset < 0 {
		a.offset = 0
	}
}

// selectedTracker returns the tracker owning the cursor row.
func (a App) selectedTracker() (model.Tracker, bool) {
	if a.cursor >= len(a.rows) {
		return model.Tracker{}, false
	}
	return a.trackers[a.rows[a.cursor].tracker], true
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.sizeForm(a.form)
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || a.form != nil {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.cursor > 0 {
				a.cursor--
				a.scrollToCursor()
			}
			return a, nil

		case tea.MouseButtonWheelDown:
			if a.cursor < len(a.rows)-1 {
				a.cursor++
				a.scrollToCursor()
			}
			return a, nil

		case tea.MouseButtonLeft:
			if row := a.rowAtY(msg.Y); row >= 0 {
				a.cursor = row
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded {
			return a, nil
		}

		// An open form intercepts all keys
		if a.form != nil {
			return a.updateForm(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}

		// Dismiss help
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit

		case "j", "down":
			if a.cursor < len(a.rows)-1 {
				a.cursor++
				a.scrollToCursor()
			}
			return a, nil

		case "k", "up":
			if a.cursor > 0 {
				a.cursor--
				a.scrollToCursor()
			}
			return a, nil

		case "g":
			a.cursor = 0
			a.offset = 0
			return a, nil

		case "G":
			a.cursor = len(a.rows) - 1
			if a.cursor < 0 {
				a.cursor = 0
			}
			a.scrollToCursor()
			return a, nil

		case "enter", " ":
			if tr, ok := a.selectedTracker(); ok {
				if list, changed := model.ToggleExpanded(a.trackers, tr.ID); changed {
					a.trackers = list
					a.recompute()
					return a, saveTrackersCmd(a.st, a.trackers)
				}
			}
			return a, nil

		case "t":
			if tr, ok := a.selectedTracker(); ok {
				if list, changed := model.ToggleStatus(a.trackers, tr.ID); changed {
					a.trackers = list
					a.recompute()
					return a, saveTrackersCmd(a.st, a.trackers)
				}
			}
			return a, nil

		case "a":
			a.formKind = formTracker
			a.trackerVals = trackerFormValues{}
			a.form = a.sizeForm(newTrackerForm(&a.trackerVals))
			return a, a.form.Init()

		case "e":
			tr, ok := a.selectedTracker()
			if !ok {
				return a, nil
			}
			a.formKind = formExpense
			a.expenseVals = expenseFormValues{}
			a.expenseTarget = tr.ID
			a.form = a.sizeForm(newExpenseForm(&a.expenseVals, tr.Name))
			return a, a.form.Init()

		case "d":
			if a.cursor >= len(a.rows) {
				return a, nil
			}
			ref := a.rows[a.cursor]
			tr := a.trackers[ref.tracker]

			var list []model.Tracker
			var changed bool
			if ref.expense < 0 {
				list, changed = model.DeleteTracker(a.trackers, tr.ID)
			} else {
				list, changed = model.DeleteExpense(a.trackers, tr.ID, tr.Expenses[ref.expense].ID)
			}
			if changed {
				a.trackers = list
				a.recompute()
				return a, saveTrackersCmd(a.st, a.trackers)
			}
			return a, nil
		}
		return a, nil

	case TrackersLoadedMsg:
		if msg.Err != nil {
			// Start with an empty list; the store is still writable
			a.logger.Error("loading trackers", "error", msg.Err)
		}
		a.trackers = msg.Trackers
		a.loaded = true
		a.loadTime = msg.LoadTime
		a.recompute()
		return a, nil

	case savedMsg:
		if msg.err != nil {
			a.logger.Error("saving trackers", "error", msg.err)
		} else {
			a.logger.Debug("trackers saved", "count", msg.count)
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}

	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.form != nil {
		return a.viewForm()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  outlay needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderBright).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ outlay"))
	b.WriteString(subtitleStyle.Render(" · Expense Trackers"))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())
	b.WriteString(subtitleStyle.Render(" Loading trackers..."))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderBright).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Yellow).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"j k", "Move cursor"},
		{"g G", "First / Last row"},
		{"wheel", "Scroll list"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"Enter", "Expand / Collapse tracker"},
		{"t", "Toggle in progress / cleared"},
		{"a", "Add tracker"},
		{"e", "Add expense to tracker"},
		{"d", "Delete tracker or expense"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Commands ───────────────────────────────────────────────────

// loadTrackersCmd reads the stored tracker list in the background.
func loadTrackersCmd(st *store.Store) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		list, err := st.LoadTrackers()
		return TrackersLoadedMsg{
			Trackers: list,
			Err:      err,
			LoadTime: time.Since(start),
		}
	}
}

// saveTrackersCmd persists a snapshot of the list in the background.
// The snapshot is safe to share: mutations always build fresh slices.
func saveTrackersCmd(st *store.Store, list []model.Tracker) tea.Cmd {
	return func() tea.Msg {
		return savedMsg{count: len(list), err: st.SaveTrackers(list)}
	}
}

// ─── Helpers ────────────────────────────────────────────────────

// rowAtY maps a terminal row to a list row index, or -1 if outside the
// list. Must match the vertical layout produced by viewMain.
func (a App) rowAtY(y int) int {
	idx := a.offset + y - listTopOffset
	if idx < 0 || idx >= len(a.rows) {
		return -1
	}
	return idx
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
