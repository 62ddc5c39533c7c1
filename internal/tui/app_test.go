package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"outlay/internal/log"
	"outlay/internal/model"
	"outlay/internal/store"
)

func testApp(t *testing.T, trackers []model.Tracker) App {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "outlay.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	a := NewApp(st, "/tmp/outlay.db", "$", log.Discard())
	a.width = 100
	a.height = 30

	m, _ := a.Update(TrackersLoadedMsg{Trackers: trackers})
	return m.(App)
}

func twoTrackers(t *testing.T) []model.Tracker {
	t.Helper()

	groceries, err := model.NewTracker("Groceries", time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local))
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}
	coffee, _ := model.NewExpense("Coffee", 1050)
	bagel, _ := model.NewExpense("Bagel", 500)
	groceries.Expenses = []model.Expense{coffee, bagel}

	trip, err := model.NewTracker("Road Trip", time.Date(2026, 5, 1, 0, 0, 0, 0, time.Local))
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}

	return []model.Tracker{groceries, trip}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, a App, keys ...string) (App, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var m tea.Model
		m, cmd = a.Update(keyMsg(k))
		a = m.(App)
	}
	return a, cmd
}

func TestLoadBuildsRows(t *testing.T) {
	a := testApp(t, twoTrackers(t))

	if !a.loaded {
		t.Fatal("app not marked loaded")
	}
	// Both trackers collapsed: one row each
	if len(a.rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(a.rows))
	}
	if a.summary.TotalCents != 1550 {
		t.Errorf("summary total = %d, want 1550", a.summary.TotalCents)
	}
}

func TestExpandShowsExpenseRows(t *testing.T) {
	a := testApp(t, twoTrackers(t))

	a, cmd := press(t, a, "enter")
	if len(a.rows) != 4 {
		t.Fatalf("rows after expand = %d, want 4 (tracker + 2 expenses + tracker)", len(a.rows))
	}
	if cmd == nil {
		t.Error("expand did not schedule a save")
	}

	// Second toggle collapses again
	a, _ = press(t, a, "enter")
	if len(a.rows) != 2 {
		t.Fatalf("rows after collapse = %d, want 2", len(a.rows))
	}
	if a.trackers[0].Expanded {
		t.Error("tracker still expanded after second toggle")
	}
}

func TestToggleStatusFromExpenseRow(t *testing.T) {
	a := testApp(t, twoTrackers(t))

	// Expand first tracker, move onto its first expense, toggle status
	a, _ = press(t, a, "enter", "j")
	if a.rows[a.cursor].expense != 0 {
		t.Fatalf("cursor not on expense row: %+v", a.rows[a.cursor])
	}

	a, cmd := press(t, a, "t")
	if a.trackers[0].Status != model.StatusCleared {
		t.Errorf("owner status = %q, want cleared", a.trackers[0].Status)
	}
	if cmd == nil {
		t.Error("status toggle did not schedule a save")
	}
}

func TestDeleteTrackerRemovesItsExpenseRows(t *testing.T) {
	a := testApp(t, twoTrackers(t))

	a, _ = press(t, a, "enter") // expand Groceries
	if len(a.rows) != 4 {
		t.Fatalf("setup rows = %d, want 4", len(a.rows))
	}

	a, cmd := press(t, a, "d") // delete Groceries with its expenses
	if len(a.trackers) != 1 {
		t.Fatalf("trackers after delete = %d, want 1", len(a.trackers))
	}
	if a.trackers[0].Name != "Road Trip" {
		t.Errorf("surviving tracker = %q", a.trackers[0].Name)
	}
	if len(a.rows) != 1 {
		t.Errorf("rows after delete = %d, want 1", len(a.rows))
	}
	if cmd == nil {
		t.Error("delete did not schedule a save")
	}
}

func TestDeleteExpenseRow(t *testing.T) {
	a := testApp(t, twoTrackers(t))

	a, _ = press(t, a, "enter", "j") // expand, move to Coffee
	a, _ = press(t, a, "d")

	if len(a.trackers[0].Expenses) != 1 {
		t.Fatalf("expenses after delete = %d, want 1", len(a.trackers[0].Expenses))
	}
	if a.trackers[0].Expenses[0].Title != "Bagel" {
		t.Errorf("surviving expense = %q", a.trackers[0].Expenses[0].Title)
	}
	if a.summary.TotalCents != 500 {
		t.Errorf("summary total = %d, want 500", a.summary.TotalCents)
	}
}

func TestApplyTrackerFormAddsAndSorts(t *testing.T) {
	a := testApp(t, twoTrackers(t))

	a.formKind = formTracker
	a.trackerVals = trackerFormValues{name: "Utilities", date: "2026-04-01"}

	m, cmd := a.applyForm()
	a = m.(App)

	if len(a.trackers) != 3 {
		t.Fatalf("trackers = %d, want 3", len(a.trackers))
	}
	// Date sorted: Groceries (Mar) < Utilities (Apr) < Road Trip (May)
	if a.trackers[1].Name != "Utilities" {
		t.Errorf("position 1 = %q, want Utilities", a.trackers[1].Name)
	}
	if cmd == nil {
		t.Error("form apply did not schedule a save")
	}

	// Cursor follows the new tracker
	if tr, ok := a.selectedTracker(); !ok || tr.Name != "Utilities" {
		t.Errorf("cursor not on new tracker")
	}
}

func TestApplyTrackerFormRejectsBlankName(t *testing.T) {
	a := testApp(t, twoTrackers(t))

	a.formKind = formTracker
	a.trackerVals = trackerFormValues{name: "   "}

	m, cmd := a.applyForm()
	a = m.(App)

	if len(a.trackers) != 2 {
		t.Fatalf("blank name added a tracker: %d", len(a.trackers))
	}
	if cmd != nil {
		t.Error("rejected form scheduled a save")
	}
}

func TestApplyExpenseForm(t *testing.T) {
	a := testApp(t, twoTrackers(t))

	a.formKind = formExpense
	a.expenseTarget = a.trackers[1].ID
	a.expenseVals = expenseFormValues{title: "Fuel", amount: "42.00"}

	m, cmd := a.applyForm()
	a = m.(App)

	if got := a.trackers[1].Total(); got != 4200 {
		t.Errorf("tracker total = %d, want 4200", got)
	}
	if cmd == nil {
		t.Error("expense apply did not schedule a save")
	}
}

func TestApplyExpenseFormRejectsBadAmount(t *testing.T) {
	a := testApp(t, twoTrackers(t))

	a.formKind = formExpense
	a.expenseTarget = a.trackers[0].ID
	a.expenseVals = expenseFormValues{title: "Fuel", amount: "abc"}

	m, cmd := a.applyForm()
	a = m.(App)

	if len(a.trackers[0].Expenses) != 2 {
		t.Errorf("bad amount added an expense")
	}
	if cmd != nil {
		t.Error("rejected form scheduled a save")
	}
}

func TestQuitKey(t *testing.T) {
	a := testApp(t, twoTrackers(t))

	_, cmd := press(t, a, "q")
	if cmd == nil {
		t.Fatal("q produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestAddKeyOpensFormCard(t *testing.T) {
	a := testApp(t, twoTrackers(t))

	a, _ = press(t, a, "a")
	if a.form == nil {
		t.Fatal("a did not open the tracker form")
	}
	if a.formKind != formTracker {
		t.Fatalf("formKind = %d, want formTracker", a.formKind)
	}

	view := a.View()
	if !strings.Contains(view, "New tracker") {
		t.Error("form view missing card title")
	}
	if got := lipgloss.Width(view); got != 100 {
		t.Errorf("form view width = %d, want 100", got)
	}

	a, _ = press(t, a, "esc")
	if a.form != nil {
		t.Error("esc did not close the form")
	}
	if len(a.trackers) != 2 {
		t.Errorf("closing the form changed trackers: %d", len(a.trackers))
	}
}

func TestHelpToggle(t *testing.T) {
	a := testApp(t, twoTrackers(t))

	a, _ = press(t, a, "?")
	if !a.showHelp {
		t.Fatal("? did not open help")
	}
	// Any key dismisses
	a, _ = press(t, a, "j")
	if a.showHelp {
		t.Fatal("help not dismissed")
	}
	if a.cursor != 0 {
		t.Error("dismissing help moved the cursor")
	}
}

func TestRowAtYMatchesLayout(t *testing.T) {
	a := testApp(t, twoTrackers(t))
	a, _ = press(t, a, "enter") // 4 rows

	// First list row sits at listTopOffset
	if got := a.rowAtY(listTopOffset); got != 0 {
		t.Errorf("rowAtY(top) = %d, want 0", got)
	}
	if got := a.rowAtY(listTopOffset + 3); got != 3 {
		t.Errorf("rowAtY(top+3) = %d, want 3", got)
	}
	// Above and below the list
	if got := a.rowAtY(0); got != -1 {
		t.Errorf("rowAtY(0) = %d, want -1", got)
	}
	if got := a.rowAtY(listTopOffset + 10); got != -1 {
		t.Errorf("rowAtY below list = %d, want -1", got)
	}

	// Scrolled list shifts the mapping
	a.offset = 2
	if got := a.rowAtY(listTopOffset); got != 2 {
		t.Errorf("scrolled rowAtY(top) = %d, want 2", got)
	}
}

func TestLoadErrorStartsEmpty(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "outlay.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	a := NewApp(st, "", "$", log.Discard())
	m, _ := a.Update(TrackersLoadedMsg{Err: store.ErrCorrupt})
	a = m.(App)

	if !a.loaded {
		t.Fatal("load error left app in loading state")
	}
	if len(a.trackers) != 0 {
		t.Fatalf("load error produced %d trackers", len(a.trackers))
	}
}
