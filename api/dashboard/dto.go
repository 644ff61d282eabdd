package dashboard

import (
	"time"

	"github.com/kilianp07/chargeinsight/core/analytics"
	coredash "github.com/kilianp07/chargeinsight/core/dashboard"
	"github.com/kilianp07/chargeinsight/core/model"
)

type DailyDTO struct {
	Date            string  `json:"date"`
	Sessions        int     `json:"sessions"`
	EnergyDelivered float64 `json:"energyDelivered"`
}

type SummaryDTO struct {
	HasData             bool      `json:"hasData"`
	Message             string    `json:"message,omitempty"`
	TotalSessions       int       `json:"totalSessions"`
	TotalEnergy         float64   `json:"totalEnergy"`
	AvgEnergyPerSession float64   `json:"avgEnergyPerSession"`
	PeakDay             *DailyDTO `json:"peakDay,omitempty"`
}

type SeriesPointDTO struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Tooltip string  `json:"tooltip"`
}

type HeatmapDTO struct {
	Days   []string `json:"days"`
	Hours  []string `json:"hours"`
	Cells  [][]int  `json:"cells"`
	Levels [][]int  `json:"levels"`
	Max    int      `json:"max"`
}

type StationDTO struct {
	StationID    string  `json:"stationId"`
	Sessions     int     `json:"sessions"`
	Share        float64 `json:"share"`
	Availability float64 `json:"availability"`
	Label        string  `json:"label"`
}

type InsightDetailsDTO struct {
	Days                int      `json:"days"`
	StartDate           string   `json:"startDate"`
	EndDate             string   `json:"endDate"`
	TotalSessions       int      `json:"totalSessions"`
	AvgSessionsPerDay   float64  `json:"avgSessionsPerDay"`
	AvgEnergyPerSession float64  `json:"avgEnergyPerSession"`
	PeakDay             DailyDTO `json:"peakDay"`
	// WeekdayWeekendDiff is omitted when the comparison is undefined.
	WeekdayWeekendDiff *float64 `json:"weekdayWeekendDiff,omitempty"`
	PeakHour           string   `json:"peakHour"`
	TopStation         string   `json:"topStation"`
	BottomStation      string   `json:"bottomStation"`
}

type InsightDTO struct {
	Text    string             `json:"text"`
	Source  string             `json:"source"`
	Details *InsightDetailsDTO `json:"details,omitempty"`
}

type PredictionDTO struct {
	Date              string  `json:"date"`
	PredictedSessions int     `json:"predictedSessions"`
	PredictedEnergy   float64 `json:"predictedEnergy"`
}

type ForecastDTO struct {
	Predictions []PredictionDTO `json:"predictions"`
	Insight     string          `json:"insight"`
	Source      string          `json:"source"`
}

type DashboardDTO struct {
	RunID          string           `json:"runId"`
	Range          string           `json:"range"`
	Anchor         string           `json:"anchor"`
	FilterOutcome  string           `json:"filterOutcome"`
	Daily          []DailyDTO       `json:"daily"`
	Summary        SummaryDTO       `json:"summary"`
	SessionSeries  []SeriesPointDTO `json:"sessionSeries"`
	EnergySeries   []SeriesPointDTO `json:"energySeries"`
	HourlySeries   []SeriesPointDTO `json:"hourlySeries"`
	Heatmap        HeatmapDTO       `json:"heatmap"`
	Stations       []StationDTO     `json:"stations"`
	Insights       InsightDTO       `json:"insights"`
	Forecast       ForecastDTO      `json:"forecast"`
	ForecastSeries []SeriesPointDTO `json:"forecastSeries"`
	GeneratedAt    time.Time        `json:"generatedAt"`
	Stored         *bool            `json:"stored,omitempty"`
}

func toDaily(r model.DailyRecord) DailyDTO {
	return DailyDTO{Date: model.Day(r.Date).Format(model.DateLayout), Sessions: r.Sessions, EnergyDelivered: r.EnergyDelivered}
}

func toDailies(rs []model.DailyRecord) []DailyDTO {
	out := make([]DailyDTO, len(rs))
	for i, r := range rs {
		out[i] = toDaily(r)
	}
	return out
}

func toSummary(s analytics.Summary) SummaryDTO {
	if !s.HasData {
		return SummaryDTO{Message: analytics.NoDataMessage}
	}
	peak := toDaily(s.PeakDay)
	return SummaryDTO{
		HasData:             true,
		TotalSessions:       s.TotalSessions,
		TotalEnergy:         s.TotalEnergy,
		AvgEnergyPerSession: s.AvgEnergyPerSession,
		PeakDay:             &peak,
	}
}

func toSeries(ps []analytics.SeriesPoint) []SeriesPointDTO {
	out := make([]SeriesPointDTO, len(ps))
	for i, p := range ps {
		out[i] = SeriesPointDTO(p)
	}
	return out
}

func toHeatmap(hm analytics.Heatmap) HeatmapDTO {
	dto := HeatmapDTO{
		Days:   analytics.HeatmapDays[:],
		Hours:  analytics.HeatmapHours[:],
		Cells:  make([][]int, len(hm)),
		Levels: make([][]int, len(hm)),
		Max:    hm.Max(),
	}
	for d, row := range hm {
		dto.Cells[d] = make([]int, len(row))
		dto.Levels[d] = make([]int, len(row))
		for h, v := range row {
			dto.Cells[d][h] = v
			dto.Levels[d][h] = analytics.HeatLevel(v)
		}
	}
	return dto
}

func toStations(ss []analytics.StationShare) []StationDTO {
	out := make([]StationDTO, len(ss))
	for i, s := range ss {
		out[i] = StationDTO(s)
	}
	return out
}

func toInsight(r model.InsightResult, in *analytics.Insights) InsightDTO {
	dto := InsightDTO{Text: r.Text, Source: string(r.Source)}
	if in == nil {
		return dto
	}
	d := &InsightDetailsDTO{
		Days:                in.Days,
		StartDate:           in.StartDate.Format(model.DateLayout),
		EndDate:             in.EndDate.Format(model.DateLayout),
		TotalSessions:       in.TotalSessions,
		AvgSessionsPerDay:   in.AvgSessionsPerDay,
		AvgEnergyPerSession: in.AvgEnergyPerSession,
		PeakDay:             toDaily(in.PeakDay),
		PeakHour:            in.PeakHour,
		TopStation:          in.TopStation,
		BottomStation:       in.BottomStation,
	}
	if in.WeekdayDiffDefined() {
		diff := in.WeekdayWeekendDiff
		d.WeekdayWeekendDiff = &diff
	}
	dto.Details = d
	return dto
}

func toForecast(r model.PredictionResult) ForecastDTO {
	dto := ForecastDTO{Predictions: make([]PredictionDTO, len(r.Predictions)), Insight: r.Insight, Source: string(r.Source)}
	for i, p := range r.Predictions {
		dto.Predictions[i] = PredictionDTO{
			Date:              p.Date.Format(model.DateLayout),
			PredictedSessions: p.PredictedSessions,
			PredictedEnergy:   p.PredictedEnergy,
		}
	}
	return dto
}

func toDashboard(v coredash.View, in *analytics.Insights) DashboardDTO {
	dto := DashboardDTO{
		RunID:          v.RunID,
		Range:          v.Range.String(),
		FilterOutcome:  v.FilterOutcome.String(),
		Daily:          toDailies(v.Daily),
		Summary:        toSummary(v.Summary),
		SessionSeries:  toSeries(v.SessionSeries),
		EnergySeries:   toSeries(v.EnergySeries),
		HourlySeries:   toSeries(v.HourlySeries),
		Heatmap:        toHeatmap(v.Heatmap),
		Stations:       toStations(v.Stations),
		Insights:       toInsight(v.Insights, in),
		Forecast:       toForecast(v.Forecast),
		ForecastSeries: toSeries(v.ForecastSeries),
		GeneratedAt:    v.GeneratedAt.UTC(),
	}
	if !v.Anchor.IsZero() {
		dto.Anchor = v.Anchor.Format(model.DateLayout)
	}
	return dto
}
