package dashboard

import (
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/chargeinsight/core/analytics"
	"github.com/kilianp07/chargeinsight/core/logger"
	"github.com/kilianp07/chargeinsight/core/metrics"
	"github.com/kilianp07/chargeinsight/core/model"
	"github.com/kilianp07/chargeinsight/core/prediction"
)

// Builder computes Views. It holds no per-run state and is safe for
// concurrent use when its forecaster and sink are.
type Builder struct {
	Analyzer   *analytics.Analyzer
	Forecaster prediction.Forecaster
	Sink       metrics.Sink
	Log        logger.Logger
	Anchor     AnchorMode
	// Now defaults to time.Now.
	Now func() time.Time
}

func (b *Builder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

func (b *Builder) logger() logger.Logger {
	if b.Log == nil {
		return logger.Nop{}
	}
	return b.Log
}

func (b *Builder) anchor() time.Time {
	if b.Anchor == AnchorClock {
		return model.Day(b.now())
	}
	return time.Time{}
}

// Build filters the daily usage of bundle to w and derives every panel of the
// dashboard. Insights use the filtered days with the full hourly and station
// data. The forecast runs on the filtered days, or on all days when the
// filtered set is empty.
func (b *Builder) Build(bundle model.Bundle, w model.Window) View {
	start := b.now()
	an := b.Analyzer
	if an == nil {
		an = analytics.NewAnalyzer(b.Log, nil)
	}
	fc := b.Forecaster
	if fc == nil {
		fc = prediction.NewSeasonal(prediction.WithLogger(b.Log))
	}

	v := View{RunID: uuid.NewString(), Range: w, GeneratedAt: start}
	fr := an.Filter(bundle.DailyUsage, w, b.anchor())
	v.FilterOutcome = fr.Outcome
	v.Anchor = fr.Anchor
	v.Daily = fr.Records

	v.Summary = an.Summarize(v.Daily)
	v.SessionSeries = analytics.SessionSeries(v.Daily)
	v.EnergySeries = analytics.EnergySeries(v.Daily)
	v.HourlySeries = analytics.HourlySeries(bundle.HourlyUsage)
	v.Heatmap = analytics.BuildHeatmap(v.Daily, bundle.HourlyUsage)
	v.Stations = analytics.StationShares(bundle.StationUsage)
	v.Insights = an.Insights(model.Bundle{
		DailyUsage:   v.Daily,
		HourlyUsage:  bundle.HourlyUsage,
		StationUsage: bundle.StationUsage,
	})

	series := v.Daily
	if len(series) == 0 {
		series = bundle.DailyUsage
	}
	v.Forecast = fc.Predict(series)
	v.ForecastSeries = analytics.ForecastSeries(v.Forecast.Predictions)
	v.Duration = b.now().Sub(start)

	b.record(v, len(bundle.DailyUsage))
	return v
}

func (b *Builder) record(v View, input int) {
	if b.Sink == nil {
		return
	}
	base := metrics.AnalysisEvent{
		RunID:    v.RunID,
		Range:    v.Range.String(),
		Time:     v.GeneratedAt,
		Duration: v.Duration,
	}
	events := []metrics.AnalysisEvent{
		withKind(base, metrics.KindFilter, v.FilterOutcome.String(), input),
		withKind(base, metrics.KindSummary, summaryOutcome(v.Summary), len(v.Daily)),
		withKind(base, metrics.KindInsights, InsightOutcome(v.Insights).String(), len(v.Daily)),
		withKind(base, metrics.KindForecast, ForecastOutcome(v.Forecast).String(), len(v.Forecast.Predictions)),
		withKind(base, metrics.KindDashboard, v.FilterOutcome.String(), len(v.Daily)),
	}
	for _, ev := range events {
		if err := b.Sink.RecordAnalysis(ev); err != nil {
			b.logger().Warnf("record %s metrics: %v", ev.Kind, err)
			return
		}
	}
	if rec, ok := b.Sink.(metrics.ForecastRecorder); ok && len(v.Forecast.Predictions) > 0 {
		if err := rec.RecordForecast(metrics.ForecastEvent{
			RunID:  v.RunID,
			Range:  v.Range.String(),
			Points: v.Forecast.Predictions,
			Source: v.Forecast.Source,
			Time:   v.GeneratedAt,
		}); err != nil {
			b.logger().Warnf("record forecast: %v", err)
		}
	}
}

func withKind(ev metrics.AnalysisEvent, k metrics.Kind, outcome string, records int) metrics.AnalysisEvent {
	ev.Kind = k
	ev.Outcome = outcome
	ev.Records = records
	return ev
}

func summaryOutcome(s analytics.Summary) string {
	if !s.HasData {
		return analytics.OutcomeEmpty.String()
	}
	return analytics.OutcomeOK.String()
}

// InsightOutcome classifies an insight result.
func InsightOutcome(r model.InsightResult) analytics.Outcome {
	switch {
	case r.Source == model.SourceError:
		return analytics.OutcomeFault
	case r.Text == analytics.NoInsightDataText:
		return analytics.OutcomeEmpty
	default:
		return analytics.OutcomeOK
	}
}

// ForecastOutcome classifies a prediction result.
func ForecastOutcome(r model.PredictionResult) analytics.Outcome {
	switch {
	case r.Source == model.SourceError:
		return analytics.OutcomeFault
	case len(r.Predictions) == 0:
		return analytics.OutcomeEmpty
	default:
		return analytics.OutcomeOK
	}
}
