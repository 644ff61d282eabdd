package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kilianp07/chargeinsight/core/model"
)

func TestBuildHeatmap(t *testing.T) {
	daily := []model.DailyRecord{
		day(t, "2025-05-03", 8, 96),   // Saturday
		day(t, "2025-05-05", 18, 216), // Monday
	}
	hourly := []model.HourlyRecord{
		{Hour: "08:00", Sessions: 10},
		{Hour: "18:00", Sessions: 18},
		{Hour: "late", Sessions: 5},
		{Hour: "25:00", Sessions: 5},
	}
	hm := BuildHeatmap(daily, hourly)
	assert.Equal(t, 7, hm[6][8], "weekend row")
	assert.Equal(t, 13, hm[6][18], "weekend row")
	assert.Equal(t, 12, hm[1][8], "weekday row")
	assert.Equal(t, 22, hm[1][18], "weekday row")
	assert.Zero(t, hm[0][8], "sunday not in data")
	assert.Equal(t, 22, hm.Max())
}

func TestHeatLevel(t *testing.T) {
	cases := map[int]int{0: 0, 2: 1, 3: 2, 9: 3, 14: 4, 15: 5, 40: 5}
	for v, want := range cases {
		assert.Equal(t, want, HeatLevel(v), "HeatLevel(%d)", v)
	}
}
