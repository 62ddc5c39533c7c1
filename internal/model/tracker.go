// Package model defines the tracker and expense domain types for outlay.
package model

import (
	"errors"
	"sort"
	"strings"
	"time"
)

// Status is the completion flag of a tracker. Exactly two values exist.
type Status string

const (
	StatusInProgress Status = "in progress"
	StatusCleared    Status = "cleared"
)

// Toggle flips between the two status values. Toggling twice restores
// the original value.
func (s Status) Toggle() Status {
	if s == StatusCleared {
		return StatusInProgress
	}
	return StatusCleared
}

// Normalize maps unknown stored values to StatusInProgress.
func (s Status) Normalize() Status {
	if s == StatusCleared {
		return StatusCleared
	}
	return StatusInProgress
}

// Expense is a titled monetary line item belonging to one tracker.
type Expense struct {
	ID          string
	Title       string
	AmountCents int64
}

// Tracker is a named, dated group of expenses with a completion status.
// Expanded is a display flag; it round-trips through storage but carries
// no meaning beyond the list view.
type Tracker struct {
	ID       string
	Name     string
	Date     time.Time
	Expenses []Expense
	Status   Status
	Expanded bool
}

// Total is the sum of the owned expenses' amounts, recomputed on demand.
func (t Tracker) Total() int64 {
	var sum int64
	for _, e := range t.Expenses {
		sum += e.AmountCents
	}
	return sum
}

var (
	ErrEmptyName     = errors.New("tracker name is empty")
	ErrEmptyTitle    = errors.New("expense title is empty")
	ErrInvalidAmount = errors.New("invalid amount")
)

// NewTracker builds a tracker with a fresh ID and StatusInProgress.
// The name is trimmed and must be non-empty. A zero date defaults to
// today at local midnight.
func NewTracker(name string, date time.Time) (Tracker, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Tracker{}, ErrEmptyName
	}
	if date.IsZero() {
		date = Today()
	}
	return Tracker{
		ID:     NewID(),
		Name:   name,
		Date:   date,
		Status: StatusInProgress,
	}, nil
}

// NewExpense builds an expense with a fresh ID. The title is trimmed and
// must be non-empty; the amount must be non-negative.
func NewExpense(title string, amountCents int64) (Expense, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Expense{}, ErrEmptyTitle
	}
	if amountCents < 0 {
		return Expense{}, ErrInvalidAmount
	}
	return Expense{
		ID:          NewID(),
		Title:       title,
		AmountCents: amountCents,
	}, nil
}

// Today returns the current day truncated to local midnight, the value a
// date field defaults to when the user leaves it unset.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// SortByDate orders trackers by date ascending, in place. Applied after
// every add so the list stays chronological between launches.
func SortByDate(list []Tracker) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Date.Before(list[j].Date)
	})
}

// SortByProximity orders trackers by distance from now, nearest first.
// Applied after every load so current trackers surface at the top.
func SortByProximity(list []Tracker, now time.Time) {
	sort.SliceStable(list, func(i, j int) bool {
		di := now.Sub(list[i].Date)
		if di < 0 {
			di = -di
		}
		dj := now.Sub(list[j].Date)
		if dj < 0 {
			dj = -dj
		}
		return di < dj
	})
}
