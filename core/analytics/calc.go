package analytics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/chargeinsight/core/model"
)

// round1 rounds half away from zero to one decimal.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// defined reports whether v is a finite number.
func defined(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func sessionValues(records []model.DailyRecord) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = float64(r.Sessions)
	}
	return out
}

func energyValues(records []model.DailyRecord) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = r.EnergyDelivered
	}
	return out
}

func totalSessions(records []model.DailyRecord) int {
	n := 0
	for _, r := range records {
		n += r.Sessions
	}
	return n
}

func totalEnergy(records []model.DailyRecord) float64 {
	return floats.Sum(energyValues(records))
}

// meanSessions is NaN for an empty set.
func meanSessions(records []model.DailyRecord) float64 {
	return stat.Mean(sessionValues(records), nil)
}

// peakDay returns the first record holding the maximum session count.
func peakDay(records []model.DailyRecord) (model.DailyRecord, bool) {
	if len(records) == 0 {
		return model.DailyRecord{}, false
	}
	peak := records[0]
	for _, r := range records[1:] {
		if r.Sessions > peak.Sessions {
			peak = r
		}
	}
	return peak, true
}

func isWeekend(d model.DailyRecord) bool {
	wd := model.Day(d.Date).Weekday()
	return wd == 0 || wd == 6
}
