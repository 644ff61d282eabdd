package analytics

import (
	"math"
	"strconv"
	"strings"

	"github.com/kilianp07/chargeinsight/core/model"
)

const (
	weekdayFactor = 1.2
	weekendFactor = 0.7
)

// HeatmapDays labels the heatmap rows, Sunday first.
var HeatmapDays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// HeatmapHours labels the display columns; each covers three hours.
var HeatmapHours = [8]string{"12a", "3a", "6a", "9a", "12p", "3p", "6p", "9p"}

// Heatmap holds estimated sessions per weekday (row, 0=Sunday) and hour.
type Heatmap [7][24]int

// BuildHeatmap spreads the hourly profile over the weekdays present in daily.
// Weekday rows get 1.2 times the hourly sessions and weekend rows 0.7 times.
// Hour labels that do not parse to 0-23 are ignored.
func BuildHeatmap(daily []model.DailyRecord, hourly []model.HourlyRecord) Heatmap {
	var hm Heatmap
	for _, d := range daily {
		day := model.Day(d.Date).Weekday()
		factor := weekdayFactor
		if isWeekend(d) {
			factor = weekendFactor
		}
		for _, h := range hourly {
			hour, ok := parseHour(h.Hour)
			if !ok {
				continue
			}
			hm[day][hour] = int(math.Round(float64(h.Sessions) * factor))
		}
	}
	return hm
}

// Max returns the largest cell value.
func (hm Heatmap) Max() int {
	m := 0
	for _, row := range hm {
		for _, v := range row {
			if v > m {
				m = v
			}
		}
	}
	return m
}

// HeatLevel maps a cell value to an intensity between 0 (no sessions) and 5.
func HeatLevel(v int) int {
	switch {
	case v <= 0:
		return 0
	case v < 3:
		return 1
	case v < 6:
		return 2
	case v < 10:
		return 3
	case v < 15:
		return 4
	default:
		return 5
	}
}

func parseHour(label string) (int, bool) {
	head, _, _ := strings.Cut(label, ":")
	h, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	return h, true
}
