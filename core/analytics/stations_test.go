package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/chargeinsight/core/model"
)

func TestStationShares(t *testing.T) {
	shares := StationShares(stationFleet)
	assert.Len(t, shares, 5)
	assert.Equal(t, "Station-04", shares[3].StationID)
	assert.Equal(t, 24.3, shares[3].Share)
	assert.Equal(t, "Station-01 (135 sessions)", shares[0].Label)
	assert.Equal(t, 87.0, shares[3].Availability)
}

func TestStationShares_NoSessions(t *testing.T) {
	shares := StationShares([]model.StationRecord{{StationID: "a"}, {StationID: "b"}})
	for _, s := range shares {
		assert.Zero(t, s.Share)
	}
}

func TestSeries(t *testing.T) {
	recs := []model.DailyRecord{day(t, "2025-04-08", 12, 145)}
	s := SessionSeries(recs)
	assert.Equal(t, "Apr 8", s[0].Label)
	assert.Equal(t, "Apr 8\nSessions: 12", s[0].Tooltip)
	e := EnergySeries(recs)
	assert.Equal(t, 145.0, e[0].Value)
	assert.Equal(t, "Apr 8\nEnergy: 145 kWh", e[0].Tooltip)
}

func TestHourlySeries(t *testing.T) {
	s := HourlySeries(hourlyProfile)
	require.Len(t, s, len(hourlyProfile))
	assert.Equal(t, "08:00", s[3].Label)
	assert.Equal(t, 8.0, s[3].Value)
	assert.Equal(t, "08:00\nSessions: 8", s[3].Tooltip)
	assert.Empty(t, HourlySeries(nil))
}

func TestForecastSeries(t *testing.T) {
	date, _ := model.ParseDate("2025-05-08")
	s := ForecastSeries([]model.PredictionPoint{{Date: date, PredictedSessions: 17, PredictedEnergy: 210.4}})
	require.Len(t, s, 1)
	assert.Equal(t, "May 8", s[0].Label)
	assert.Equal(t, 17.0, s[0].Value)
	assert.Equal(t, "May 8\nPredicted: 17 sessions", s[0].Tooltip)
}
