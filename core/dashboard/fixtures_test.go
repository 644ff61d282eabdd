package dashboard

import (
	"sync"
	"testing"

	"github.com/kilianp07/chargeinsight/core/metrics"
	"github.com/kilianp07/chargeinsight/core/model"
)

// monthOfUsage covers 2025-04-08 to 2025-05-07.
func monthOfUsage(t *testing.T) model.Bundle {
	t.Helper()
	start, err := model.ParseDate("2025-04-08")
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	daily := make([]model.DailyRecord, 30)
	for i := range daily {
		s := 10 + i%7*2
		daily[i] = model.DailyRecord{Date: start.AddDate(0, 0, i), Sessions: s, EnergyDelivered: float64(s) * 12.5}
	}
	return model.Bundle{
		DailyUsage: daily,
		HourlyUsage: []model.HourlyRecord{
			{Hour: "08:00", Sessions: 8, EnergyDelivered: 100},
			{Hour: "18:00", Sessions: 18, EnergyDelivered: 225},
		},
		StationUsage: []model.StationRecord{
			{StationID: "Station-01", Sessions: 135, EnergyDelivered: 1687.5, Availability: 92},
			{StationID: "Station-02", Sessions: 98, EnergyDelivered: 1225, Availability: 95},
		},
	}
}

type recordingSink struct {
	mu        sync.Mutex
	events    []metrics.AnalysisEvent
	forecasts []metrics.ForecastEvent
}

func (r *recordingSink) RecordAnalysis(ev metrics.AnalysisEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func (r *recordingSink) RecordForecast(ev metrics.ForecastEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.forecasts = append(r.forecasts, ev)
	return nil
}

func (r *recordingSink) kinds() []metrics.Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]metrics.Kind, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Kind
	}
	return out
}
