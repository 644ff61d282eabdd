package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/kilianp07/chargeinsight/core/analytics"
	"github.com/kilianp07/chargeinsight/core/model"
)

// AnchorMode selects the end date of the filter window.
type AnchorMode string

const (
	// AnchorData ends the window on the latest record date.
	AnchorData AnchorMode = "data"
	// AnchorClock ends the window on the current date.
	AnchorClock AnchorMode = "clock"
)

// ParseAnchorMode validates s. An empty string selects AnchorData.
func ParseAnchorMode(s string) (AnchorMode, error) {
	switch AnchorMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", AnchorData:
		return AnchorData, nil
	case AnchorClock:
		return AnchorClock, nil
	default:
		return "", fmt.Errorf("unknown anchor mode %q", s)
	}
}

// View is everything the dashboard shows for one window.
type View struct {
	RunID          string
	Range          model.Window
	Anchor         time.Time
	FilterOutcome  analytics.Outcome
	Daily          []model.DailyRecord
	Summary        analytics.Summary
	SessionSeries  []analytics.SeriesPoint
	EnergySeries   []analytics.SeriesPoint
	HourlySeries   []analytics.SeriesPoint
	Heatmap        analytics.Heatmap
	Stations       []analytics.StationShare
	Insights       model.InsightResult
	Forecast       model.PredictionResult
	// ForecastSeries charts the predicted sessions of Forecast.
	ForecastSeries []analytics.SeriesPoint
	GeneratedAt    time.Time
	Duration       time.Duration
}

// Refresh announces that a new View was stored.
type Refresh struct {
	Generation uint64
	RunID      string
	Range      model.Window
	At         time.Time
}
