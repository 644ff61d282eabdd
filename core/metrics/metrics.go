package metrics

import (
	"time"

	"github.com/kilianp07/chargeinsight/core/model"
)

// Kind names the analytics operation an event describes.
type Kind string

const (
	KindFilter    Kind = "filter"
	KindSummary   Kind = "summary"
	KindInsights  Kind = "insights"
	KindForecast  Kind = "forecast"
	KindDashboard Kind = "dashboard"
)

// AnalysisEvent records one analytics run.
type AnalysisEvent struct {
	RunID    string
	Kind     Kind
	Outcome  string
	Range    string
	Records  int
	Duration time.Duration
	Time     time.Time
}

// Sink records analytics runs for observability purposes.
type Sink interface {
	RecordAnalysis(ev AnalysisEvent) error
}

// ForecastEvent carries the projection produced by a run.
type ForecastEvent struct {
	RunID  string
	Range  string
	Points []model.PredictionPoint
	Source model.Source
	Time   time.Time
}

// ForecastRecorder is implemented by sinks able to store projected points.
type ForecastRecorder interface {
	RecordForecast(ev ForecastEvent) error
}

// RefreshEvent is emitted when the dashboard stores a new view.
type RefreshEvent struct {
	Generation uint64
	Range      string
	Time       time.Time
}

// RefreshRecorder is implemented by sinks tracking dashboard refreshes.
type RefreshRecorder interface {
	RecordRefresh(ev RefreshEvent) error
}

// NopSink implements every recorder interface with no-op methods.
type NopSink struct{}

func (NopSink) RecordAnalysis(AnalysisEvent) error { return nil }
func (NopSink) RecordForecast(ForecastEvent) error { return nil }
func (NopSink) RecordRefresh(RefreshEvent) error   { return nil }

// MultiSink fans events out to several sinks.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordAnalysis forwards the event to all sinks, returning the first error.
func (m *MultiSink) RecordAnalysis(ev AnalysisEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordAnalysis(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordForecast forwards the event to the sinks that store forecasts.
func (m *MultiSink) RecordForecast(ev ForecastEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(ForecastRecorder); ok {
			if err := rec.RecordForecast(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecordRefresh forwards the event to the sinks that track refreshes.
func (m *MultiSink) RecordRefresh(ev RefreshEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(RefreshRecorder); ok {
			if err := rec.RecordRefresh(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
