package app

import (
	"fmt"
	"io"

	"github.com/kilianp07/chargeinsight/config"
	"github.com/kilianp07/chargeinsight/core/analytics"
	"github.com/kilianp07/chargeinsight/core/dashboard"
	coremetrics "github.com/kilianp07/chargeinsight/core/metrics"
	"github.com/kilianp07/chargeinsight/core/model"
	coremon "github.com/kilianp07/chargeinsight/core/monitoring"
	"github.com/kilianp07/chargeinsight/core/prediction"
	"github.com/kilianp07/chargeinsight/fixtures"
	"github.com/kilianp07/chargeinsight/infra/logger"
	_ "github.com/kilianp07/chargeinsight/infra/metrics"
	"github.com/kilianp07/chargeinsight/infra/monitoring"
)

// Engine bundles the dataset with everything needed to compute views.
type Engine struct {
	Bundle  model.Bundle
	Builder *dashboard.Builder
	Monitor coremon.Monitor
	Sink    coremetrics.Sink
	Log     logger.Logger
}

// NewLogger builds the component logger described by cfg.
func NewLogger(cfg config.LoggingConfig, component string, out io.Writer) logger.Logger {
	return logger.NewZerologLoggerWith(component, logger.Options{
		Out:     out,
		Level:   cfg.Level,
		Console: cfg.Format == "console",
	})
}

// NewEngine loads the dataset and wires the analytics components. log may be
// nil, in which case a stdout logger is built from cfg.
func NewEngine(cfg *config.Config, log logger.Logger) (*Engine, error) {
	if log == nil {
		log = NewLogger(cfg.Logging, "analytics", nil)
	}
	mon, err := monitoring.NewSentryMonitor(cfg.Sentry)
	if err != nil {
		return nil, fmt.Errorf("sentry: %w", err)
	}
	sink, err := coremetrics.NewSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	bundle, err := fixtures.Load(cfg.Fixtures.Path)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	opts := []prediction.Option{prediction.WithLogger(log), prediction.WithMonitor(mon)}
	if cfg.Analytics.Seed != 0 {
		opts = append(opts, prediction.WithRandom(prediction.NewSeededSource(cfg.Analytics.Seed)))
	}
	b := &dashboard.Builder{
		Analyzer:   analytics.NewAnalyzer(log, mon),
		Forecaster: prediction.NewSeasonal(opts...),
		Sink:       sink,
		Log:        log,
		Anchor:     cfg.Analytics.AnchorMode(),
	}
	log.Infof("loaded %d daily, %d hourly and %d station records", len(bundle.DailyUsage), len(bundle.HourlyUsage), len(bundle.StationUsage))
	return &Engine{Bundle: bundle, Builder: b, Monitor: mon, Sink: sink, Log: log}, nil
}

// View builds the view of w without a Service.
func (e *Engine) View(w model.Window) dashboard.View {
	return e.Builder.Build(e.Bundle, w)
}
