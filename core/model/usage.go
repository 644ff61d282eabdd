package model

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used by fixtures and the API.
const DateLayout = "2006-01-02"

// DailyRecord aggregates charging activity for one calendar day.
type DailyRecord struct {
	Date            time.Time
	Sessions        int
	EnergyDelivered float64 // kWh
}

// HourlyRecord is one slot of the aggregate time-of-day profile. It is not
// tied to a calendar date.
type HourlyRecord struct {
	Hour            string // "08:00"
	Sessions        int
	EnergyDelivered float64
}

// StationRecord aggregates activity for one physical charging station.
type StationRecord struct {
	StationID       string
	Sessions        int
	EnergyDelivered float64
	Availability    float64 // percent, 0-100
}

// Bundle groups the record sets analysed together by the insight generator.
type Bundle struct {
	DailyUsage   []DailyRecord
	HourlyUsage  []HourlyRecord
	StationUsage []StationRecord
}

// Day truncates t to its UTC calendar date.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// Validate reports whether the record holds non-negative counters.
func (r DailyRecord) Validate() error {
	if r.Sessions < 0 || r.EnergyDelivered < 0 {
		return fmt.Errorf("%w: daily %s sessions=%d energy=%.1f",
			ErrInvalidRecord, r.Date.Format(DateLayout), r.Sessions, r.EnergyDelivered)
	}
	return nil
}

// Validate reports whether the record holds non-negative counters.
func (r HourlyRecord) Validate() error {
	if r.Sessions < 0 || r.EnergyDelivered < 0 {
		return fmt.Errorf("%w: hourly %s sessions=%d energy=%.1f",
			ErrInvalidRecord, r.Hour, r.Sessions, r.EnergyDelivered)
	}
	return nil
}

// Validate reports whether the record holds non-negative counters and an
// availability percentage.
func (r StationRecord) Validate() error {
	if r.Sessions < 0 || r.EnergyDelivered < 0 || r.Availability < 0 || r.Availability > 100 {
		return fmt.Errorf("%w: station %s sessions=%d energy=%.1f availability=%.1f",
			ErrInvalidRecord, r.StationID, r.Sessions, r.EnergyDelivered, r.Availability)
	}
	return nil
}

// Validate checks every record of the bundle.
func (b Bundle) Validate() error {
	for _, r := range b.DailyUsage {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	for _, r := range b.HourlyUsage {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	for _, r := range b.StationUsage {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}
