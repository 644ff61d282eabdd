package metrics

import (
	"errors"
	"testing"
)

type countSink struct {
	analyses  int
	forecasts int
	refreshes int
	err       error
}

func (c *countSink) RecordAnalysis(AnalysisEvent) error {
	c.analyses++
	return c.err
}

func (c *countSink) RecordForecast(ForecastEvent) error {
	c.forecasts++
	return nil
}

func (c *countSink) RecordRefresh(RefreshEvent) error {
	c.refreshes++
	return nil
}

type analysisOnly struct{ n int }

func (a *analysisOnly) RecordAnalysis(AnalysisEvent) error {
	a.n++
	return nil
}

// TestMultiSink ensures events are forwarded to all sinks.
func TestMultiSink(t *testing.T) {
	s1 := &countSink{}
	s2 := &analysisOnly{}
	m := NewMultiSink(s1, s2)
	if err := m.RecordAnalysis(AnalysisEvent{Kind: KindInsights}); err != nil {
		t.Fatalf("record analysis: %v", err)
	}
	if err := m.RecordForecast(ForecastEvent{}); err != nil {
		t.Fatalf("record forecast: %v", err)
	}
	if err := m.RecordRefresh(RefreshEvent{Generation: 1}); err != nil {
		t.Fatalf("record refresh: %v", err)
	}
	if s1.analyses != 1 || s1.forecasts != 1 || s1.refreshes != 1 || s2.n != 1 {
		t.Fatalf("events not forwarded: %+v %+v", s1, s2)
	}
}

func TestMultiSink_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	s1 := &countSink{err: boom}
	s2 := &countSink{}
	if err := NewMultiSink(s1, s2).RecordAnalysis(AnalysisEvent{}); !errors.Is(err, boom) {
		t.Fatalf("expected boom got %v", err)
	}
	if s2.analyses != 0 {
		t.Fatalf("second sink should not be called")
	}
}

func TestConfigDefaults(t *testing.T) {
	var c Config
	c.SetDefaults()
	if c.PrometheusAddress != ":9100" {
		t.Fatalf("unexpected address %s", c.PrometheusAddress)
	}
	if c.HasSink("prometheus") {
		t.Fatalf("no sink configured")
	}
}
