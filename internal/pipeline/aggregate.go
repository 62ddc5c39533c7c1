// Package pipeline computes summaries, filters, and lookups over the
// tracker list.
package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"outlay/internal/model"
)

// Summary holds aggregate statistics across trackers.
type Summary struct {
	Trackers   int
	Expenses   int
	InProgress int
	Cleared    int

	InProgressCents int64
	ClearedCents    int64
	TotalCents      int64
}

// Summarize computes counts and totals split by status. Totals are sums
// of expense amounts, recomputed here rather than read from anywhere.
func Summarize(list []model.Tracker) Summary {
	var s Summary
	for _, t := range list {
		s.Trackers++
		s.Expenses += len(t.Expenses)

		total := t.Total()
		s.TotalCents += total

		switch t.Status.Normalize() {
		case model.StatusCleared:
			s.Cleared++
			s.ClearedCents += total
		default:
			s.InProgress++
			s.InProgressCents += total
		}
	}
	return s
}

// FilterByStatus returns trackers whose status matches.
func FilterByStatus(list []model.Tracker, status model.Status) []model.Tracker {
	var out []model.Tracker
	for _, t := range list {
		if t.Status.Normalize() == status.Normalize() {
			out = append(out, t)
		}
	}
	return out
}

// FilterByName returns trackers whose name contains the substring,
// case-insensitive.
func FilterByName(list []model.Tracker, substr string) []model.Tracker {
	needle := strings.ToLower(substr)
	var out []model.Tracker
	for _, t := range list {
		if strings.Contains(strings.ToLower(t.Name), needle) {
			out = append(out, t)
		}
	}
	return out
}

var ErrNoTracker = errors.New("no such tracker")

// MatchTracker resolves a command-line argument to one tracker: an exact
// ID match wins, otherwise a case-insensitive name prefix that matches
// exactly one tracker. Ambiguous prefixes are an error naming the
// candidates.
func MatchTracker(list []model.Tracker, arg string) (model.Tracker, error) {
	for _, t := range list {
		if t.ID == arg {
			return t, nil
		}
	}

	prefix := strings.ToLower(strings.TrimSpace(arg))
	if prefix == "" {
		return model.Tracker{}, ErrNoTracker
	}

	var hits []model.Tracker
	for _, t := range list {
		if strings.HasPrefix(strings.ToLower(t.Name), prefix) {
			hits = append(hits, t)
		}
	}

	switch len(hits) {
	case 1:
		return hits[0], nil
	case 0:
		return model.Tracker{}, fmt.Errorf("%w: %q", ErrNoTracker, arg)
	default:
		names := make([]string, len(hits))
		for i, t := range hits {
			names[i] = t.Name
		}
		return model.Tracker{}, fmt.Errorf("%q matches %d trackers: %s",
			arg, len(hits), strings.Join(names, ", "))
	}
}
