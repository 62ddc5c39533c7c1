package model

// List operations are pure: every mutation returns a fresh slice with the
// matching entry replaced, never touching the input. Callers swap the whole
// list in one step, so a tracker and its expenses live and die together.

// AddTracker appends t and returns the list re-sorted by date ascending.
func AddTracker(list []Tracker, t Tracker) []Tracker {
	out := make([]Tracker, 0, len(list)+1)
	out = append(out, list...)
	out = append(out, t)
	SortByDate(out)
	return out
}

// DeleteTracker removes the tracker with the given id and all its expenses.
// Unknown ids report false and return the input unchanged.
func DeleteTracker(list []Tracker, id string) ([]Tracker, bool) {
	idx := indexOf(list, id)
	if idx < 0 {
		return list, false
	}
	out := make([]Tracker, 0, len(list)-1)
	out = append(out, list[:idx]...)
	out = append(out, list[idx+1:]...)
	return out, true
}

// ToggleStatus flips the matching tracker between "in progress" and
// "cleared". Unknown ids report false.
func ToggleStatus(list []Tracker, id string) ([]Tracker, bool) {
	return replace(list, id, func(t Tracker) Tracker {
		t.Status = t.Status.Toggle()
		return t
	})
}

// ToggleExpanded flips the matching tracker's display flag. Unknown ids
// report false.
func ToggleExpanded(list []Tracker, id string) ([]Tracker, bool) {
	return replace(list, id, func(t Tracker) Tracker {
		t.Expanded = !t.Expanded
		return t
	})
}

// AddExpense appends e to the matching tracker's expense list, preserving
// insertion order. Unknown tracker ids report false.
func AddExpense(list []Tracker, trackerID string, e Expense) ([]Tracker, bool) {
	return replace(list, trackerID, func(t Tracker) Tracker {
		exp := make([]Expense, 0, len(t.Expenses)+1)
		exp = append(exp, t.Expenses...)
		exp = append(exp, e)
		t.Expenses = exp
		return t
	})
}

// DeleteExpense removes one expense from the matching tracker. Reports
// false when either id is unknown.
func DeleteExpense(list []Tracker, trackerID, expenseID string) ([]Tracker, bool) {
	idx := indexOf(list, trackerID)
	if idx < 0 {
		return list, false
	}
	eIdx := -1
	for i, e := range list[idx].Expenses {
		if e.ID == expenseID {
			eIdx = i
			break
		}
	}
	if eIdx < 0 {
		return list, false
	}
	out, _ := replace(list, trackerID, func(t Tracker) Tracker {
		exp := make([]Expense, 0, len(t.Expenses)-1)
		exp = append(exp, t.Expenses[:eIdx]...)
		exp = append(exp, t.Expenses[eIdx+1:]...)
		t.Expenses = exp
		return t
	})
	return out, true
}

// replace copies the list, applying fn to the tracker with the given id.
func replace(list []Tracker, id string, fn func(Tracker) Tracker) ([]Tracker, bool) {
	idx := indexOf(list, id)
	if idx < 0 {
		return list, false
	}
	out := make([]Tracker, len(list))
	copy(out, list)
	out[idx] = fn(out[idx])
	return out, true
}

func indexOf(list []Tracker, id string) int {
	for i, t := range list {
		if t.ID == id {
			return i
		}
	}
	return -1
}
