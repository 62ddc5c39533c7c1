package store

import (
	"encoding/json"
	"fmt"
	"time"

	"outlay/internal/model"
)

// The stored blob is a JSON array of tracker records. Dates travel as
// RFC3339 strings and are rehydrated to time.Time on decode; amounts
// travel as integer cents so totals survive the round trip exactly.

type trackerRecord struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Date     string          `json:"date"`
	Expenses []expenseRecord `json:"expenses"`
	Status   string          `json:"status"`
	Expanded bool            `json:"expanded"`
}

type expenseRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	AmountCents int64  `json:"amount_cents"`
}

// EncodeTrackers serializes the full tracker list to the stored form.
func EncodeTrackers(list []model.Tracker) ([]byte, error) {
	return json.Marshal(toRecords(list))
}

// EncodeTrackersIndent is EncodeTrackers pretty-printed, for export.
func EncodeTrackersIndent(list []model.Tracker) ([]byte, error) {
	return json.MarshalIndent(toRecords(list), "", "  ")
}

// DecodeTrackers parses a stored blob back into trackers. A blob that is
// not valid JSON for the record shape returns ErrCorrupt; a record with
// an unparseable date keeps a zero time rather than failing the load.
func DecodeTrackers(data []byte) ([]model.Tracker, error) {
	var records []trackerRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	list := make([]model.Tracker, 0, len(records))
	for _, r := range records {
		list = append(list, fromRecord(r))
	}
	return list, nil
}

func toRecords(list []model.Tracker) []trackerRecord {
	records := make([]trackerRecord, 0, len(list))
	for _, t := range list {
		r := trackerRecord{
			ID:       t.ID,
			Name:     t.Name,
			Date:     t.Date.Format(time.RFC3339),
			Expenses: make([]expenseRecord, 0, len(t.Expenses)),
			Status:   string(t.Status.Normalize()),
			Expanded: t.Expanded,
		}
		for _, e := range t.Expenses {
			r.Expenses = append(r.Expenses, expenseRecord{
				ID:          e.ID,
				Title:       e.Title,
				AmountCents: e.AmountCents,
			})
		}
		records = append(records, r)
	}
	return records
}

func fromRecord(r trackerRecord) model.Tracker {
	t := model.Tracker{
		ID:       r.ID,
		Name:     r.Name,
		Status:   model.Status(r.Status).Normalize(),
		Expanded: r.Expanded,
	}
	if parsed, err := time.Parse(time.RFC3339, r.Date); err == nil {
		t.Date = parsed
	}
	if len(r.Expenses) > 0 {
		t.Expenses = make([]model.Expense, 0, len(r.Expenses))
		for _, e := range r.Expenses {
			t.Expenses = append(t.Expenses, model.Expense{
				ID:          e.ID,
				Title:       e.Title,
				AmountCents: e.AmountCents,
			})
		}
	}
	return t
}
