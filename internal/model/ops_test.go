package model

import (
	"testing"
	"time"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func sampleList(t *testing.T) []Tracker {
	t.Helper()
	groceries, err := NewTracker("Groceries", date(t, "2026-03-10"))
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}
	trip, err := NewTracker("Road Trip", date(t, "2026-05-01"))
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}
	return AddTracker(AddTracker(nil, trip), groceries)
}

func TestNewTrackerRejectsEmptyName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		if _, err := NewTracker(name, time.Time{}); err != ErrEmptyName {
			t.Fatalf("NewTracker(%q) err = %v, want ErrEmptyName", name, err)
		}
	}
}

func TestNewTrackerDefaultsDateToToday(t *testing.T) {
	tr, err := NewTracker("Rent", time.Time{})
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}
	want := Today()
	if !tr.Date.Equal(want) {
		t.Fatalf("default date = %v, want %v", tr.Date, want)
	}
	if tr.Status != StatusInProgress {
		t.Fatalf("new tracker status = %q, want %q", tr.Status, StatusInProgress)
	}
}

func TestAddTrackerSortsByDate(t *testing.T) {
	list := sampleList(t)
	if len(list) != 2 {
		t.Fatalf("len(list) = %d, want 2", len(list))
	}
	if list[0].Name != "Groceries" || list[1].Name != "Road Trip" {
		t.Fatalf("order = [%s, %s], want [Groceries, Road Trip]",
			list[0].Name, list[1].Name)
	}

	older, err := NewTracker("Last Winter", date(t, "2026-01-05"))
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}
	list = AddTracker(list, older)
	if list[0].Name != "Last Winter" {
		t.Fatalf("earliest tracker = %s, want Last Winter", list[0].Name)
	}
}

func TestAddTrackerDoesNotMutateInput(t *testing.T) {
	list := sampleList(t)
	snapshot := make([]Tracker, len(list))
	copy(snapshot, list)

	extra, err := NewTracker("Extra", date(t, "2026-02-01"))
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}
	_ = AddTracker(list, extra)

	for i := range snapshot {
		if list[i].ID != snapshot[i].ID {
			t.Fatalf("input list mutated at %d", i)
		}
	}
}

func TestDeleteTrackerRemovesExpensesToo(t *testing.T) {
	list := sampleList(t)
	id := list[0].ID

	lunch, err := NewExpense("Lunch", 1050)
	if err != nil {
		t.Fatalf("NewExpense: %v", err)
	}
	list, ok := AddExpense(list, id, lunch)
	if !ok {
		t.Fatal("AddExpense reported unknown tracker")
	}

	list, ok = DeleteTracker(list, id)
	if !ok {
		t.Fatal("DeleteTracker reported unknown id")
	}
	if len(list) != 1 {
		t.Fatalf("len(list) = %d, want 1", len(list))
	}
	for _, tr := range list {
		if tr.ID == id {
			t.Fatal("deleted tracker still present")
		}
		for _, e := range tr.Expenses {
			if e.ID == lunch.ID {
				t.Fatal("orphaned expense survived tracker deletion")
			}
		}
	}
}

func TestDeleteTrackerUnknownIDNoOps(t *testing.T) {
	list := sampleList(t)
	out, ok := DeleteTracker(list, "nope")
	if ok {
		t.Fatal("DeleteTracker reported success for unknown id")
	}
	if len(out) != len(list) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(list))
	}
}

func TestToggleStatusTwiceRestores(t *testing.T) {
	list := sampleList(t)
	id := list[0].ID
	orig := list[0].Status

	list, ok := ToggleStatus(list, id)
	if !ok {
		t.Fatal("ToggleStatus reported unknown id")
	}
	if list[0].Status != StatusCleared {
		t.Fatalf("status after toggle = %q, want %q", list[0].Status, StatusCleared)
	}

	list, _ = ToggleStatus(list, id)
	if list[0].Status != orig {
		t.Fatalf("status after double toggle = %q, want %q", list[0].Status, orig)
	}
}

func TestToggleExpandedIsCopyOnWrite(t *testing.T) {
	list := sampleList(t)
	id := list[1].ID

	out, ok := ToggleExpanded(list, id)
	if !ok {
		t.Fatal("ToggleExpanded reported unknown id")
	}
	if !out[1].Expanded {
		t.Fatal("tracker not expanded after toggle")
	}
	if list[1].Expanded {
		t.Fatal("input tracker mutated in place")
	}
}

func TestTotalSumsExpenses(t *testing.T) {
	list := sampleList(t)
	id := list[0].ID

	first, err := NewExpense("Coffee", 1050)
	if err != nil {
		t.Fatalf("NewExpense: %v", err)
	}
	second, err := NewExpense("Bagel", 500)
	if err != nil {
		t.Fatalf("NewExpense: %v", err)
	}

	list, _ = AddExpense(list, id, first)
	list, _ = AddExpense(list, id, second)

	if got := list[0].Total(); got != 1550 {
		t.Fatalf("Total() = %d cents, want 1550", got)
	}
	if got := list[1].Total(); got != 0 {
		t.Fatalf("empty tracker Total() = %d, want 0", got)
	}
}

func TestAddExpensePreservesInsertionOrder(t *testing.T) {
	list := sampleList(t)
	id := list[0].ID

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		e, err := NewExpense(title, 100)
		if err != nil {
			t.Fatalf("NewExpense: %v", err)
		}
		list, _ = AddExpense(list, id, e)
	}

	for i, e := range list[0].Expenses {
		if e.Title != titles[i] {
			t.Fatalf("expense %d = %q, want %q", i, e.Title, titles[i])
		}
	}
}

func TestDeleteExpense(t *testing.T) {
	list := sampleList(t)
	id := list[0].ID

	keep, err := NewExpense("keep", 100)
	if err != nil {
		t.Fatalf("NewExpense: %v", err)
	}
	drop, err := NewExpense("drop", 200)
	if err != nil {
		t.Fatalf("NewExpense: %v", err)
	}
	list, _ = AddExpense(list, id, keep)
	list, _ = AddExpense(list, id, drop)

	list, ok := DeleteExpense(list, id, drop.ID)
	if !ok {
		t.Fatal("DeleteExpense reported unknown expense")
	}
	if len(list[0].Expenses) != 1 || list[0].Expenses[0].ID != keep.ID {
		t.Fatalf("expenses after delete = %+v, want only %q", list[0].Expenses, keep.ID)
	}

	if _, ok := DeleteExpense(list, id, "nope"); ok {
		t.Fatal("DeleteExpense reported success for unknown expense id")
	}
	if _, ok := DeleteExpense(list, "nope", keep.ID); ok {
		t.Fatal("DeleteExpense reported success for unknown tracker id")
	}
}

func TestNewExpenseValidation(t *testing.T) {
	if _, err := NewExpense("  ", 100); err != ErrEmptyTitle {
		t.Fatalf("blank title err = %v, want ErrEmptyTitle", err)
	}
	if _, err := NewExpense("ok", -1); err != ErrInvalidAmount {
		t.Fatalf("negative amount err = %v, want ErrInvalidAmount", err)
	}
	e, err := NewExpense("  padded  ", 0)
	if err != nil {
		t.Fatalf("zero amount rejected: %v", err)
	}
	if e.Title != "padded" {
		t.Fatalf("title = %q, want trimmed %q", e.Title, "padded")
	}
}

func TestSortByProximityPutsNearestFirst(t *testing.T) {
	now := date(t, "2026-06-15")

	mk := func(name, day string) Tracker {
		tr, err := NewTracker(name, date(t, day))
		if err != nil {
			t.Fatalf("NewTracker: %v", err)
		}
		return tr
	}

	list := []Tracker{
		mk("far past", "2025-06-15"),
		mk("near future", "2026-06-20"),
		mk("near past", "2026-06-14"),
		mk("far future", "2027-01-01"),
	}
	SortByProximity(list, now)

	want := []string{"near past", "near future", "far future", "far past"}
	for i, name := range want {
		if list[i].Name != name {
			t.Fatalf("position %d = %q, want %q", i, list[i].Name, name)
		}
	}
}

func TestNewIDMonotonic(t *testing.T) {
	prev := NewID()
	for i := 0; i < 1000; i++ {
		next := NewID()
		if len(next) < len(prev) || (len(next) == len(prev) && next <= prev) {
			t.Fatalf("ids not increasing: %s then %s", prev, next)
		}
		prev = next
	}
}
