package metrics

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/chargeinsight/core/metrics"
)

// PromSink records analytics runs in Prometheus metrics.
type PromSink struct {
	runs       *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	records    *prometheus.GaugeVec
	forecast   *prometheus.GaugeVec
	refreshes  *prometheus.CounterVec
	generation prometheus.Gauge
}

// NewPromSink registers analytics metrics on the default Prometheus registerer.
// The Prometheus server should be started separately using StartPromServer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer. Collectors
// already registered by an earlier sink are reused.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{}
	var err error
	if s.runs, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "analysis_runs_total",
		Help: "Total number of analytics runs by kind and outcome",
	}, []string{"kind", "outcome", "range"})); err != nil {
		return nil, err
	}
	if s.duration, err = register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "analysis_duration_seconds",
		Help:    "Time spent building a dashboard view",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
	}, []string{"kind"})); err != nil {
		return nil, err
	}
	if s.records, err = register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "analysis_records",
		Help: "Number of records processed by the last run",
	}, []string{"kind"})); err != nil {
		return nil, err
	}
	if s.forecast, err = register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "forecast_predicted_sessions",
		Help: "Predicted sessions of the last forecast by day offset",
	}, []string{"offset"})); err != nil {
		return nil, err
	}
	if s.refreshes, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_refreshes_total",
		Help: "Total number of dashboard views stored",
	}, []string{"range"})); err != nil {
		return nil, err
	}
	if s.generation, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dashboard_generation",
		Help: "Generation of the current dashboard view",
	})); err != nil {
		return nil, err
	}
	return s, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		var zero C
		return zero, err
	}
	return c, nil
}

// RecordAnalysis counts the run. Duration is observed for dashboard runs
// only since the other kinds share their timing.
func (s *PromSink) RecordAnalysis(ev coremetrics.AnalysisEvent) error {
	s.runs.WithLabelValues(string(ev.Kind), ev.Outcome, ev.Range).Inc()
	s.records.WithLabelValues(string(ev.Kind)).Set(float64(ev.Records))
	if ev.Kind == coremetrics.KindDashboard {
		s.duration.WithLabelValues(string(ev.Kind)).Observe(ev.Duration.Seconds())
	}
	return nil
}

// RecordForecast exposes the projected sessions of each day.
func (s *PromSink) RecordForecast(ev coremetrics.ForecastEvent) error {
	s.forecast.Reset()
	for i, p := range ev.Points {
		s.forecast.WithLabelValues(strconv.Itoa(i + 1)).Set(float64(p.PredictedSessions))
	}
	return nil
}

// RecordRefresh tracks stored dashboard views.
func (s *PromSink) RecordRefresh(ev coremetrics.RefreshEvent) error {
	s.refreshes.WithLabelValues(ev.Range).Inc()
	s.generation.Set(float64(ev.Generation))
	return nil
}
