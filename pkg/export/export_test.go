package export

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/chargeinsight/core/model"
)

func forecast() model.PredictionResult {
	d := time.Date(2025, 5, 8, 0, 0, 0, 0, time.UTC)
	return model.PredictionResult{
		Predictions: []model.PredictionPoint{
			{Date: d, PredictedSessions: 12, PredictedEnergy: 150.4},
			{Date: d.AddDate(0, 0, 1), PredictedSessions: 15, PredictedEnergy: 188},
		},
		Insight: "stable",
		Source:  model.SourceLocalAnalysis,
	}
}

func TestWriteForecastCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteForecastCSV(&buf, forecast()))
	want := "date,predicted_sessions,predicted_energy_kwh\n" +
		"2025-05-08,12,150.4\n" +
		"2025-05-09,15,188\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteForecastJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteForecastJSON(&buf, forecast()))
	var out struct {
		Predictions []struct {
			Date              string  `json:"date"`
			PredictedSessions int     `json:"predictedSessions"`
			PredictedEnergy   float64 `json:"predictedEnergy"`
		} `json:"predictions"`
		Insight string `json:"insight"`
		Source  string `json:"source"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out.Predictions, 2)
	assert.Equal(t, "2025-05-09", out.Predictions[1].Date)
	assert.Equal(t, 15, out.Predictions[1].PredictedSessions)
	assert.Equal(t, "local-analysis", out.Source)
}

func TestWriteForecastJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteForecastJSON(&buf, model.PredictionResult{Insight: "Insufficient data for predictions"}))
	assert.Contains(t, buf.String(), `"predictions": []`)
}

func TestWriteDailyCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDailyCSV(&buf, []model.DailyRecord{
		{Date: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), Sessions: 10, EnergyDelivered: 120.5},
	}))
	assert.Equal(t, "date,sessions,energy_delivered_kwh\n2025-05-01,10,120.5\n", buf.String())
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatTable, f)
	f, err = ParseFormat("csv")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)
	_, err = ParseFormat("xml")
	assert.Error(t, err)
}
