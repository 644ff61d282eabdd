package analytics

import "github.com/kilianp07/chargeinsight/core/model"

// NoDataMessage is shown in place of summary cards for an empty period.
const NoDataMessage = "No data available for the selected period"

// Summary holds the headline figures of a period.
type Summary struct {
	TotalSessions       int
	TotalEnergy         float64
	AvgEnergyPerSession float64
	PeakDay             model.DailyRecord
	HasData             bool
}

// NoDataSummary is returned for an empty record set.
var NoDataSummary = Summary{}

// Summarize aggregates totals, the energy per session ratio and the peak day.
// Ties on the peak resolve to the first record in input order.
func Summarize(records []model.DailyRecord) Summary {
	peak, ok := peakDay(records)
	if !ok {
		return NoDataSummary
	}
	s := Summary{
		TotalSessions: totalSessions(records),
		TotalEnergy:   totalEnergy(records),
		PeakDay:       peak,
		HasData:       true,
	}
	if s.TotalSessions > 0 {
		s.AvgEnergyPerSession = s.TotalEnergy / float64(s.TotalSessions)
	}
	return s
}
