// Package dashboard exposes the dashboard views over HTTP as JSON.
package dashboard

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/kilianp07/chargeinsight/core/analytics"
	coredash "github.com/kilianp07/chargeinsight/core/dashboard"
	"github.com/kilianp07/chargeinsight/core/logger"
	"github.com/kilianp07/chargeinsight/core/model"
)

const maxBodyBytes = 1 << 10

// Handler serves the /api routes.
type Handler struct {
	svc *coredash.Service
	log logger.Logger
	mux *http.ServeMux
}

// NewHandler returns a Handler backed by svc.
func NewHandler(svc *coredash.Service, log logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop{}
	}
	h := &Handler{svc: svc, log: log, mux: http.NewServeMux()}
	h.mux.HandleFunc("GET /api/dashboard", h.dashboard)
	h.mux.HandleFunc("GET /api/dashboard/current", h.current)
	h.mux.HandleFunc("POST /api/dashboard/range", h.setRange)
	h.mux.HandleFunc("GET /api/summary", h.summary)
	h.mux.HandleFunc("GET /api/insights", h.insights)
	h.mux.HandleFunc("GET /api/forecast", h.forecast)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// window resolves a range value. Unknown values select the default window.
func (h *Handler) window(raw string) model.Window {
	if raw == "" {
		return model.DefaultWindow
	}
	w, err := model.ParseWindow(strings.TrimSpace(raw))
	if err != nil {
		h.log.Warnf("unknown range %q, using %s", raw, model.DefaultWindow)
		return model.DefaultWindow
	}
	return w
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	v := h.svc.View(h.window(r.URL.Query().Get("range")))
	h.writeJSON(w, http.StatusOK, toDashboard(v, h.details(v)))
}

func (h *Handler) current(w http.ResponseWriter, _ *http.Request) {
	v, ok := h.svc.Current()
	if !ok {
		http.Error(w, "no dashboard view selected", http.StatusNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, toDashboard(v, h.details(v)))
}

type rangeRequest struct {
	Range string `json:"range"`
}

func (h *Handler) setRange(w http.ResponseWriter, r *http.Request) {
	var req rangeRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	v, stored := h.svc.SetWindow(h.window(req.Range))
	dto := toDashboard(v, h.details(v))
	dto.Stored = &stored
	h.writeJSON(w, http.StatusOK, dto)
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	v := h.svc.View(h.window(r.URL.Query().Get("range")))
	h.writeJSON(w, http.StatusOK, toSummary(v.Summary))
}

func (h *Handler) insights(w http.ResponseWriter, r *http.Request) {
	v := h.svc.View(h.window(r.URL.Query().Get("range")))
	h.writeJSON(w, http.StatusOK, toInsight(v.Insights, h.details(v)))
}

func (h *Handler) forecast(w http.ResponseWriter, r *http.Request) {
	v := h.svc.View(h.window(r.URL.Query().Get("range")))
	h.writeJSON(w, http.StatusOK, toForecast(v.Forecast))
}

// details recomputes the structured insight values of v. It returns nil when
// the insight text is a placeholder.
func (h *Handler) details(v coredash.View) *analytics.Insights {
	if v.Insights.Source != model.SourceLocalAnalysis || len(v.Daily) == 0 {
		return nil
	}
	b := h.svc.Bundle()
	in, err := analytics.AnalyzeBundle(model.Bundle{
		DailyUsage:   v.Daily,
		HourlyUsage:  b.HourlyUsage,
		StationUsage: b.StationUsage,
	})
	if err != nil {
		h.log.Debugf("insight details: %v", err)
		return nil
	}
	return &in
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Errorf("encode response: %v", err)
	}
}
