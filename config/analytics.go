package config

import (
	"github.com/kilianp07/chargeinsight/core/dashboard"
	"github.com/kilianp07/chargeinsight/core/model"
)

// AnalyticsConfig tunes the dashboard computations.
type AnalyticsConfig struct {
	// DefaultRange is the window shown at startup: 7d, 14d or 30d.
	DefaultRange string `json:"default_range"`
	// Seed makes forecast jitter reproducible. Zero draws from the global
	// generator.
	Seed uint64 `json:"seed"`
	// Anchor ends filter windows on the latest record ("data") or today
	// ("clock").
	Anchor string `json:"anchor"`
}

// SetDefaults applies sane defaults.
func (c *AnalyticsConfig) SetDefaults() {
	if c.DefaultRange == "" {
		c.DefaultRange = model.DefaultWindow.String()
	}
	if c.Anchor == "" {
		c.Anchor = string(dashboard.AnchorData)
	}
}

// Validate checks the range and anchor values.
func (c AnalyticsConfig) Validate() error {
	if _, err := model.ParseWindow(c.DefaultRange); err != nil {
		return err
	}
	_, err := dashboard.ParseAnchorMode(c.Anchor)
	return err
}

// Window returns the parsed default range.
func (c AnalyticsConfig) Window() model.Window {
	w, err := model.ParseWindow(c.DefaultRange)
	if err != nil {
		return model.DefaultWindow
	}
	return w
}

// AnchorMode returns the parsed anchor mode.
func (c AnalyticsConfig) AnchorMode() dashboard.AnchorMode {
	m, err := dashboard.ParseAnchorMode(c.Anchor)
	if err != nil {
		return dashboard.AnchorData
	}
	return m
}
