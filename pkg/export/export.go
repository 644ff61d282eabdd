// Package export writes forecasts and daily usage in machine readable
// formats for spreadsheets and downstream tools.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/kilianp07/chargeinsight/core/model"
)

// Format names an output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
)

// ParseFormat validates s. An empty string selects FormatTable.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case "":
		return FormatTable, nil
	case FormatTable, FormatCSV, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", s)
	}
}

type predictionJSON struct {
	Date              string  `json:"date"`
	PredictedSessions int     `json:"predictedSessions"`
	PredictedEnergy   float64 `json:"predictedEnergy"`
}

type forecastJSON struct {
	Predictions []predictionJSON `json:"predictions"`
	Insight     string           `json:"insight"`
	Source      string           `json:"source"`
}

// WriteForecastJSON writes the forecast to w in JSON format.
func WriteForecastJSON(w io.Writer, res model.PredictionResult) error {
	out := forecastJSON{Predictions: make([]predictionJSON, len(res.Predictions)), Insight: res.Insight, Source: string(res.Source)}
	for i, p := range res.Predictions {
		out.Predictions[i] = predictionJSON{
			Date:              p.Date.Format(model.DateLayout),
			PredictedSessions: p.PredictedSessions,
			PredictedEnergy:   p.PredictedEnergy,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// WriteForecastCSV writes one row per predicted day.
func WriteForecastCSV(w io.Writer, res model.PredictionResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "predicted_sessions", "predicted_energy_kwh"}); err != nil {
		return err
	}
	for _, p := range res.Predictions {
		rec := []string{
			p.Date.Format(model.DateLayout),
			strconv.Itoa(p.PredictedSessions),
			strconv.FormatFloat(p.PredictedEnergy, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteDailyCSV writes the daily usage records.
func WriteDailyCSV(w io.Writer, records []model.DailyRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "sessions", "energy_delivered_kwh"}); err != nil {
		return err
	}
	for _, r := range records {
		rec := []string{
			model.Day(r.Date).Format(model.DateLayout),
			strconv.Itoa(r.Sessions),
			strconv.FormatFloat(r.EnergyDelivered, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
