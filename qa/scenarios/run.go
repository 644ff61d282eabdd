package scenarios

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kilianp07/chargeinsight/core/analytics"
	"github.com/kilianp07/chargeinsight/core/dashboard"
	"github.com/kilianp07/chargeinsight/core/model"
	"github.com/kilianp07/chargeinsight/core/prediction"
	"github.com/kilianp07/chargeinsight/infra/logger"
	"github.com/kilianp07/chargeinsight/infra/metrics"
)

func RunScenario(t *testing.T, sc *Scenario) {
	reg := prometheus.NewRegistry()
	sink, err := metrics.NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("prom sink: %v", err)
	}

	bundle, err := sc.Dataset.ToModel()
	if err != nil {
		t.Fatalf("dataset: %v", err)
	}
	w, err := sc.Window()
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	anchor, err := sc.AnchorMode()
	if err != nil {
		t.Fatalf("anchor: %v", err)
	}
	clock, err := sc.Clock()
	if err != nil {
		t.Fatalf("now: %v", err)
	}

	b := &dashboard.Builder{
		Analyzer:   analytics.NewAnalyzer(logger.NopLogger{}, nil),
		Forecaster: prediction.NewSeasonal(prediction.WithRandom(prediction.NewSeededSource(sc.Seed))),
		Sink:       sink,
		Anchor:     anchor,
		Now:        clock,
	}
	v := b.Build(bundle, w)
	exp := sc.Expected

	if exp.FilterOutcome != "" && v.FilterOutcome.String() != exp.FilterOutcome {
		t.Errorf("filter outcome: got %s want %s", v.FilterOutcome, exp.FilterOutcome)
	}
	if exp.Days != 0 && len(v.Daily) != exp.Days {
		t.Errorf("days: got %d want %d", len(v.Daily), exp.Days)
	}
	if exp.TotalSessions != 0 && v.Summary.TotalSessions != exp.TotalSessions {
		t.Errorf("total sessions: got %d want %d", v.Summary.TotalSessions, exp.TotalSessions)
	}
	if exp.TotalEnergy != 0 && v.Summary.TotalEnergy != exp.TotalEnergy {
		t.Errorf("total energy: got %.1f want %.1f", v.Summary.TotalEnergy, exp.TotalEnergy)
	}
	if exp.PeakDate != "" {
		if got := v.Summary.PeakDay.Date.Format(model.DateLayout); got != exp.PeakDate {
			t.Errorf("peak date: got %s want %s", got, exp.PeakDate)
		}
	}
	if exp.InsightSource != "" && string(v.Insights.Source) != exp.InsightSource {
		t.Errorf("insight source: got %s want %s", v.Insights.Source, exp.InsightSource)
	}
	for _, s := range exp.InsightContains {
		if !strings.Contains(v.Insights.Text, s) {
			t.Errorf("insight text lacks %q:\n%s", s, v.Insights.Text)
		}
	}
	if len(v.Forecast.Predictions) != exp.ForecastPoints {
		t.Errorf("forecast points: got %d want %d", len(v.Forecast.Predictions), exp.ForecastPoints)
	}
	if exp.ForecastSource != "" && string(v.Forecast.Source) != exp.ForecastSource {
		t.Errorf("forecast source: got %s want %s", v.Forecast.Source, exp.ForecastSource)
	}
	for _, s := range exp.ForecastContains {
		if !strings.Contains(v.Forecast.Insight, s) {
			t.Errorf("forecast insight lacks %q: %s", s, v.Forecast.Insight)
		}
	}
	if exp.FirstForecastDate != "" && len(v.Forecast.Predictions) > 0 {
		if got := v.Forecast.Predictions[0].Date.Format(model.DateLayout); got != exp.FirstForecastDate {
			t.Errorf("first forecast date: got %s want %s", got, exp.FirstForecastDate)
		}
	}

	runs, err := testutil.GatherAndCount(reg, "analysis_runs_total")
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if runs != 5 {
		t.Errorf("expected 5 analysis run series, got %d", runs)
	}
}
