package analytics

import (
	"fmt"
	"time"

	"github.com/kilianp07/chargeinsight/core/model"
)

// FilterResult is the outcome of a date-range filter.
type FilterResult struct {
	Records []model.DailyRecord
	Outcome Outcome
	// Anchor is the date the window was measured back from.
	Anchor time.Time
	// Err is set when Outcome is OutcomeFault.
	Err error
}

// FilterByRange keeps the records that fall within w days of the most recent
// record. Anchoring on the data rather than the wall clock keeps the window
// stable against stale datasets.
func FilterByRange(records []model.DailyRecord, w model.Window) FilterResult {
	return FilterByRangeAt(records, w, time.Time{})
}

// FilterByRangeAt behaves like FilterByRange but measures the window back from
// anchor. A zero anchor selects the most recent record date. Only the start of
// the window is bounded: records dated after anchor are kept.
//
// When no record falls inside the window the full input is returned with
// OutcomeFallback. An invalid window returns the full input with OutcomeFault.
func FilterByRangeAt(records []model.DailyRecord, w model.Window, anchor time.Time) FilterResult {
	if len(records) == 0 {
		return FilterResult{Records: []model.DailyRecord{}, Outcome: OutcomeEmpty}
	}
	if !w.Valid() {
		return FilterResult{
			Records: records,
			Outcome: OutcomeFault,
			Err:     fmt.Errorf("filter by range: %w: %d days", model.ErrInvalidWindow, int(w)),
		}
	}
	if anchor.IsZero() {
		anchor = latestDate(records)
	}
	anchor = model.Day(anchor)
	cutoff := anchor.AddDate(0, 0, -w.Days())

	filtered := make([]model.DailyRecord, 0, len(records))
	for _, r := range records {
		d := model.Day(r.Date)
		if d.Before(cutoff) {
			continue
		}
		filtered = append(filtered, r)
	}
	if len(filtered) == 0 {
		return FilterResult{Records: records, Outcome: OutcomeFallback, Anchor: anchor}
	}
	return FilterResult{Records: filtered, Outcome: OutcomeOK, Anchor: anchor}
}

func latestDate(records []model.DailyRecord) time.Time {
	latest := records[0].Date
	for _, r := range records[1:] {
		if r.Date.After(latest) {
			latest = r.Date
		}
	}
	return latest
}
