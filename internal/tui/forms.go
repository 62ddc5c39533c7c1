package tui

import (
	"errors"
	"strings"
	"time"

	"outlay/internal/model"
	"outlay/internal/tui/components"
	"outlay/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

type formKind int

const (
	formNone formKind = iota
	formTracker
	formExpense
)

type trackerFormValues struct {
	name string
	date string
}

type expenseFormValues struct {
	title  string
	amount string
}

// parseFormDate parses a YYYY-MM-DD form value. Blank means "no date",
// which NewTracker resolves to today.
func parseFormDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

func newTrackerForm(vals *trackerFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Description("A name for this group of expenses").
				Placeholder("Groceries").
				CharLimit(120).
				Value(&vals.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD, blank for today").
				Placeholder(time.Now().Format("2006-01-02")).
				CharLimit(10).
				Value(&vals.date).
				Validate(func(s string) error {
					if _, err := parseFormDate(s); err != nil {
						return errors.New("use YYYY-MM-DD")
					}
					return nil
				}),
		),
	).WithShowHelp(true)
}

func newExpenseForm(vals *expenseFormValues, trackerName string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Description("Added to "+trackerName).
				Placeholder("Coffee").
				CharLimit(120).
				Value(&vals.title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("title cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Amount").
				Description("e.g. 10.50").
				Placeholder("0.00").
				CharLimit(20).
				Value(&vals.amount).
				Validate(func(s string) error {
					if _, err := model.ParseAmountCents(s); err != nil {
						return errors.New("enter a non-negative amount")
					}
					return nil
				}),
		),
	).WithShowHelp(true)
}

// formCardWidth is the outer width of the centered form card. The too-narrow
// guard keeps the terminal at least minTerminalWidth wide, so it always fits.
func (a App) formCardWidth() int {
	w := 56
	if limit := a.width - 4; limit < w {
		w = limit
	}
	return w
}

// sizeForm fits a form to the inside of the form card.
func (a App) sizeForm(f *huh.Form) *huh.Form {
	if a.width <= 0 {
		return f
	}
	return f.WithWidth(components.CardInnerWidth(a.formCardWidth()))
}

func (a App) viewForm() string {
	title := "◈ New tracker"
	if a.formKind == formExpense {
		title = "◈ New expense"
	}

	card := components.ContentCard(title, a.form.View(), a.formCardWidth())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(theme.Active.Background))
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		return a.applyForm()
	}

	if a.form.State == huh.StateAborted {
		a.form = nil
		a.formKind = formNone
		return a, nil
	}

	return a, cmd
}

// applyForm runs the mutation for a completed form. Values the model
// rejects are dropped without feedback; the list stays as it was.
func (a App) applyForm() (tea.Model, tea.Cmd) {
	kind := a.formKind
	a.form = nil
	a.formKind = formNone

	switch kind {
	case formTracker:
		date, err := parseFormDate(a.trackerVals.date)
		if err != nil {
			return a, nil
		}
		tr, err := model.NewTracker(a.trackerVals.name, date)
		if err != nil {
			return a, nil
		}
		a.trackers = model.AddTracker(a.trackers, tr)
		a.recompute()
		a.cursorToTracker(tr.ID)
		return a, saveTrackersCmd(a.st, a.trackers)

	case formExpense:
		cents, err := model.ParseAmountCents(a.expenseVals.amount)
		if err != nil {
			return a, nil
		}
		e, err := model.NewExpense(a.expenseVals.title, cents)
		if err != nil {
			return a, nil
		}
		list, changed := model.AddExpense(a.trackers, a.expenseTarget, e)
		if !changed {
			return a, nil
		}
		a.trackers = list
		a.recompute()
		return a, saveTrackersCmd(a.st, a.trackers)
	}

	return a, nil
}

// cursorToTracker moves the cursor onto the tracker row with the given id.
func (a *App) cursorToTracker(id string) {
	for i, ref := range a.rows {
		if ref.expense < 0 && a.trackers[ref.tracker].ID == id {
			a.cursor = i
			a.scrollToCursor()
			return
		}
	}
}
