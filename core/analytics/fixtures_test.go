package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kilianp07/chargeinsight/core/model"
)

func day(t *testing.T, date string, sessions int, energy float64) model.DailyRecord {
	t.Helper()
	d, err := model.ParseDate(date)
	require.NoError(t, err)
	return model.DailyRecord{Date: d, Sessions: sessions, EnergyDelivered: energy}
}

// weekOfMay is the 2025-05-01 (Thursday) to 2025-05-07 series.
func weekOfMay(t *testing.T) []model.DailyRecord {
	return []model.DailyRecord{
		day(t, "2025-05-01", 10, 120.5),
		day(t, "2025-05-02", 15, 187.5),
		day(t, "2025-05-03", 8, 96.0),
		day(t, "2025-05-04", 20, 242.0),
		day(t, "2025-05-05", 18, 216.0),
		day(t, "2025-05-06", 25, 312.5),
		day(t, "2025-05-07", 22, 275.0),
	}
}

// thirtyDays is 2025-04-08 to 2025-05-07.
func thirtyDays(t *testing.T) []model.DailyRecord {
	sessions := []int{12, 14, 13, 16, 11, 9, 17, 19, 21, 18, 16, 12, 10, 15, 17, 19, 20, 22, 13, 11, 16, 18, 19}
	start, _ := model.ParseDate("2025-04-08")
	out := make([]model.DailyRecord, 0, 30)
	for i, s := range sessions {
		out = append(out, model.DailyRecord{Date: start.AddDate(0, 0, i), Sessions: s, EnergyDelivered: float64(s) * 12})
	}
	return append(out, weekOfMay(t)...)
}

var hourlyProfile = []model.HourlyRecord{
	{Hour: "00:00", Sessions: 1, EnergyDelivered: 12.5},
	{Hour: "02:00", Sessions: 0, EnergyDelivered: 0},
	{Hour: "06:00", Sessions: 3, EnergyDelivered: 37.5},
	{Hour: "08:00", Sessions: 8, EnergyDelivered: 100},
	{Hour: "12:00", Sessions: 15, EnergyDelivered: 187.5},
	{Hour: "18:00", Sessions: 18, EnergyDelivered: 225},
	{Hour: "20:00", Sessions: 10, EnergyDelivered: 125},
}

var stationFleet = []model.StationRecord{
	{StationID: "Station-01", Sessions: 135, EnergyDelivered: 1687.5, Availability: 92},
	{StationID: "Station-02", Sessions: 142, EnergyDelivered: 1775, Availability: 89},
	{StationID: "Station-03", Sessions: 98, EnergyDelivered: 1225, Availability: 95},
	{StationID: "Station-04", Sessions: 156, EnergyDelivered: 1950, Availability: 87},
	{StationID: "Station-05", Sessions: 112, EnergyDelivered: 1400, Availability: 91},
}
