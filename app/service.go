package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	apidash "github.com/kilianp07/chargeinsight/api/dashboard"
	"github.com/kilianp07/chargeinsight/config"
	"github.com/kilianp07/chargeinsight/core/dashboard"
	coremetrics "github.com/kilianp07/chargeinsight/core/metrics"
	"github.com/kilianp07/chargeinsight/infra/logger"
	"github.com/kilianp07/chargeinsight/infra/metrics"
	"github.com/kilianp07/chargeinsight/internal/eventbus"
)

// Service serves the dashboard API and the optional Prometheus endpoint.
type Service struct {
	Engine    *Engine
	Dashboard *dashboard.Service
	cfg       *config.Config
	bus       *eventbus.Bus[dashboard.Refresh]
	handler   http.Handler
	log       logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := NewLogger(cfg.Logging, "service", nil)
	eng, err := NewEngine(cfg, logg)
	if err != nil {
		return nil, err
	}
	bus := eventbus.New[dashboard.Refresh](eventbus.DefaultBuffer)
	dash := dashboard.NewService(eng.Builder, eng.Bundle, bus)
	return &Service{
		Engine:    eng,
		Dashboard: dash,
		cfg:       cfg,
		bus:       bus,
		handler:   apidash.NewHandler(dash, logg),
		log:       logg,
	}, nil
}

// Handler returns the HTTP handler serving the API.
func (s *Service) Handler() http.Handler { return s.handler }

// Run selects the default window, then serves HTTP until the context is
// cancelled.
func (s *Service) Run(ctx context.Context) error {
	if rec, ok := s.Engine.Sink.(coremetrics.RefreshRecorder); ok {
		metrics.StartRefreshCollector(ctx, s.bus, rec, s.log)
	}
	if s.cfg.Metrics.HasSink("prometheus") {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusAddress, nil, s.log); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	s.Dashboard.SetWindow(s.cfg.Analytics.Window())

	ln, err := net.Listen("tcp", s.cfg.Server.Address)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Server.Address, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves the API on ln until the context is cancelled.
func (s *Service) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: s.handler, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		timeout := time.Duration(s.cfg.Server.ShutdownSeconds) * time.Second
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("http shutdown: %v", err)
		}
	}()
	s.log.Infof("serving dashboard API on %s", ln.Addr())
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.bus.Close()
	s.Engine.Monitor.Flush(2 * time.Second)
	return nil
}
