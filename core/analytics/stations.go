package analytics

import (
	"fmt"

	"github.com/kilianp07/chargeinsight/core/model"
)

// StationShare is one slice of the station utilization chart.
type StationShare struct {
	StationID    string
	Sessions     int
	Share        float64 // percent of all sessions, one decimal
	Availability float64
	Label        string
}

// StationShares returns each station's share of the total session count, in
// input order. Shares are zero when no station recorded a session.
func StationShares(stations []model.StationRecord) []StationShare {
	total := 0
	for _, s := range stations {
		total += s.Sessions
	}
	out := make([]StationShare, len(stations))
	for i, s := range stations {
		share := 0.0
		if total > 0 {
			share = round1(float64(s.Sessions) / float64(total) * 100)
		}
		out[i] = StationShare{
			StationID:    s.StationID,
			Sessions:     s.Sessions,
			Share:        share,
			Availability: s.Availability,
			Label:        fmt.Sprintf("%s (%d sessions)", s.StationID, s.Sessions),
		}
	}
	return out
}
