package analytics

import (
	"time"

	"github.com/kilianp07/chargeinsight/core/logger"
	"github.com/kilianp07/chargeinsight/core/model"
	"github.com/kilianp07/chargeinsight/core/monitoring"
)

// Analyzer runs the analytics functions and reports what the pure functions
// absorb: filter fallbacks are logged and faults are logged and sent to the
// monitor. The zero value is not usable; use NewAnalyzer.
type Analyzer struct {
	log logger.Logger
	mon monitoring.Monitor
}

// NewAnalyzer returns an Analyzer. Nil arguments select no-op implementations.
func NewAnalyzer(log logger.Logger, mon monitoring.Monitor) *Analyzer {
	if log == nil {
		log = logger.Nop{}
	}
	if mon == nil {
		mon = monitoring.NopMonitor{}
	}
	return &Analyzer{log: log, mon: mon}
}

// Filter applies FilterByRangeAt and logs how the window was resolved.
func (a *Analyzer) Filter(records []model.DailyRecord, w model.Window, anchor time.Time) FilterResult {
	res := FilterByRangeAt(records, w, anchor)
	switch res.Outcome {
	case OutcomeEmpty:
		a.log.Warnf("no data to filter")
	case OutcomeFallback:
		a.log.Warnf("filter returned no results for %s, using all %d records instead", w, len(records))
	case OutcomeFault:
		a.log.Errorf("filter by range: %v", res.Err)
		a.mon.CaptureException(res.Err, map[string]string{"component": "filter", "range": w.String()})
	default:
		a.log.Debugw("filtered daily usage", map[string]any{
			"range":    w.String(),
			"anchor":   res.Anchor.Format(model.DateLayout),
			"input":    len(records),
			"filtered": len(res.Records),
		})
	}
	return res
}

// Summarize is Summarize with an empty-period warning.
func (a *Analyzer) Summarize(records []model.DailyRecord) Summary {
	s := Summarize(records)
	if !s.HasData {
		a.log.Warnf("summary requested for an empty period")
	}
	return s
}

// Insights is GenerateInsights with fault reporting.
func (a *Analyzer) Insights(b model.Bundle) model.InsightResult {
	res, err := generateInsights(b)
	if err != nil {
		a.log.Errorf("error generating insights: %v", err)
		a.mon.CaptureException(err, map[string]string{"component": "insights"})
	}
	return res
}
