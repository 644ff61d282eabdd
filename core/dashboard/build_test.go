package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/chargeinsight/core/analytics"
	"github.com/kilianp07/chargeinsight/core/metrics"
	"github.com/kilianp07/chargeinsight/core/model"
	"github.com/kilianp07/chargeinsight/core/prediction"
)

func mockForecast() *prediction.MockForecaster {
	return &prediction.MockForecaster{Result: model.PredictionResult{
		Predictions: []model.PredictionPoint{{Date: time.Date(2025, 5, 8, 0, 0, 0, 0, time.UTC), PredictedSessions: 12, PredictedEnergy: 150}},
		Insight:     "stable",
		Source:      model.SourceLocalAnalysis,
	}}
}

func TestBuild_FiltersAndComposes(t *testing.T) {
	bundle := monthOfUsage(t)
	fc := mockForecast()
	sink := &recordingSink{}
	b := &Builder{Forecaster: fc, Sink: sink}

	v := b.Build(bundle, model.Window7d)

	require.Len(t, v.Daily, 8)
	assert.Equal(t, analytics.OutcomeOK, v.FilterOutcome)
	assert.Equal(t, "2025-05-07", v.Anchor.Format(model.DateLayout))
	assert.Equal(t, v.Daily, fc.Last, "forecast runs on the filtered days")
	assert.Len(t, v.SessionSeries, 8)
	assert.Len(t, v.EnergySeries, 8)
	require.Len(t, v.HourlySeries, 2)
	assert.Equal(t, "18:00", v.HourlySeries[1].Label)
	assert.Equal(t, "18:00\nSessions: 18", v.HourlySeries[1].Tooltip)
	require.Len(t, v.ForecastSeries, 1)
	assert.Equal(t, "May 8", v.ForecastSeries[0].Label)
	assert.Equal(t, 12.0, v.ForecastSeries[0].Value)
	assert.Equal(t, "May 8\nPredicted: 12 sessions", v.ForecastSeries[0].Tooltip)
	assert.Len(t, v.Stations, 2)
	assert.True(t, v.Summary.HasData)
	assert.Equal(t, model.SourceLocalAnalysis, v.Insights.Source)
	assert.Contains(t, v.Insights.Text, "Over the 8 days analyzed (Apr 30 to May 7)")
	assert.Equal(t, "stable", v.Forecast.Insight)
	assert.NotEmpty(t, v.RunID)
	assert.Positive(t, v.Heatmap.Max())

	assert.Equal(t, []metrics.Kind{
		metrics.KindFilter, metrics.KindSummary, metrics.KindInsights, metrics.KindForecast, metrics.KindDashboard,
	}, sink.kinds())
	require.Len(t, sink.forecasts, 1)
	assert.Equal(t, v.RunID, sink.forecasts[0].RunID)
	assert.Equal(t, 30, sink.events[0].Records)
}

func TestBuild_ClockAnchorFallsBack(t *testing.T) {
	bundle := monthOfUsage(t)
	fc := mockForecast()
	b := &Builder{
		Forecaster: fc,
		Anchor:     AnchorClock,
		Now:        func() time.Time { return time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC) },
	}

	v := b.Build(bundle, model.Window14d)

	assert.Equal(t, analytics.OutcomeFallback, v.FilterOutcome)
	assert.Len(t, v.Daily, 30)
	assert.Equal(t, "2026-10-17", v.Anchor.Format(model.DateLayout))
}

func TestBuild_EmptyBundle(t *testing.T) {
	fc := mockForecast()
	sink := &recordingSink{}
	v := (&Builder{Forecaster: fc, Sink: sink}).Build(model.Bundle{}, model.Window30d)

	assert.Equal(t, analytics.OutcomeEmpty, v.FilterOutcome)
	assert.Empty(t, v.Daily)
	assert.False(t, v.Summary.HasData)
	assert.Equal(t, analytics.NoInsightDataText, v.Insights.Text)
	assert.Empty(t, fc.Last)
	assert.Equal(t, analytics.OutcomeEmpty.String(), sink.events[1].Outcome)
	assert.Equal(t, analytics.OutcomeEmpty.String(), sink.events[2].Outcome)
}

func TestBuild_DefaultForecaster(t *testing.T) {
	v := (&Builder{}).Build(monthOfUsage(t), model.Window7d)
	assert.Len(t, v.Forecast.Predictions, prediction.Horizon)
	assert.Equal(t, "2025-05-08", v.Forecast.Predictions[0].Date.Format(model.DateLayout))
}

func TestOutcomes(t *testing.T) {
	assert.Equal(t, analytics.OutcomeFault, InsightOutcome(model.InsightResult{Text: analytics.InsightFaultText, Source: model.SourceError}))
	assert.Equal(t, analytics.OutcomeOK, InsightOutcome(model.InsightResult{Text: "• ...", Source: model.SourceLocalAnalysis}))
	assert.Equal(t, analytics.OutcomeEmpty, ForecastOutcome(model.PredictionResult{Insight: prediction.InsufficientDataText, Source: model.SourceLocalAnalysis}))
	assert.Equal(t, analytics.OutcomeFault, ForecastOutcome(model.PredictionResult{Source: model.SourceError}))
}

func TestParseAnchorMode(t *testing.T) {
	m, err := ParseAnchorMode("")
	require.NoError(t, err)
	assert.Equal(t, AnchorData, m)
	m, err = ParseAnchorMode("Clock")
	require.NoError(t, err)
	assert.Equal(t, AnchorClock, m)
	_, err = ParseAnchorMode("yesterday")
	assert.Error(t, err)
}
