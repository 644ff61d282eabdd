package analytics

import (
	"fmt"
	"strconv"

	"github.com/kilianp07/chargeinsight/core/model"
)

// SeriesPoint is one bar or point of a daily chart.
type SeriesPoint struct {
	Label   string
	Value   float64
	Tooltip string
}

// SessionSeries maps daily records to session chart points.
func SessionSeries(records []model.DailyRecord) []SeriesPoint {
	out := make([]SeriesPoint, len(records))
	for i, r := range records {
		label := model.Day(r.Date).Format(shortDateLayout)
		out[i] = SeriesPoint{
			Label:   label,
			Value:   float64(r.Sessions),
			Tooltip: fmt.Sprintf("%s\nSessions: %d", label, r.Sessions),
		}
	}
	return out
}

// EnergySeries maps daily records to energy chart points.
func EnergySeries(records []model.DailyRecord) []SeriesPoint {
	out := make([]SeriesPoint, len(records))
	for i, r := range records {
		label := model.Day(r.Date).Format(shortDateLayout)
		out[i] = SeriesPoint{
			Label:   label,
			Value:   r.EnergyDelivered,
			Tooltip: fmt.Sprintf("%s\nEnergy: %s kWh", label, strconv.FormatFloat(r.EnergyDelivered, 'f', -1, 64)),
		}
	}
	return out
}

// HourlySeries maps the time-of-day profile to chart points labelled by hour.
func HourlySeries(hourly []model.HourlyRecord) []SeriesPoint {
	out := make([]SeriesPoint, len(hourly))
	for i, h := range hourly {
		out[i] = SeriesPoint{
			Label:   h.Hour,
			Value:   float64(h.Sessions),
			Tooltip: fmt.Sprintf("%s\nSessions: %d", h.Hour, h.Sessions),
		}
	}
	return out
}

// ForecastSeries maps predicted days to session chart points.
func ForecastSeries(predictions []model.PredictionPoint) []SeriesPoint {
	out := make([]SeriesPoint, len(predictions))
	for i, p := range predictions {
		label := model.Day(p.Date).Format(shortDateLayout)
		out[i] = SeriesPoint{
			Label:   label,
			Value:   float64(p.PredictedSessions),
			Tooltip: fmt.Sprintf("%s\nPredicted: %d sessions", label, p.PredictedSessions),
		}
	}
	return out
}
