package scenarios

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/chargeinsight/core/dashboard"
	"github.com/kilianp07/chargeinsight/core/model"
	"github.com/kilianp07/chargeinsight/fixtures"
)

// Expected lists the observable results of a scenario. Zero values are not
// checked except where noted.
type Expected struct {
	FilterOutcome     string   `yaml:"filter_outcome"`
	Days              int      `yaml:"days"`
	TotalSessions     int      `yaml:"total_sessions"`
	TotalEnergy       float64  `yaml:"total_energy"`
	PeakDate          string   `yaml:"peak_date,omitempty"`
	InsightSource     string   `yaml:"insight_source"`
	InsightContains   []string `yaml:"insight_contains,omitempty"`
	ForecastPoints    int      `yaml:"forecast_points"` // always checked
	ForecastSource    string   `yaml:"forecast_source"`
	ForecastContains  []string `yaml:"forecast_contains,omitempty"`
	FirstForecastDate string   `yaml:"first_forecast_date,omitempty"`
}

type Scenario struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description,omitempty"`
	Range       string           `yaml:"range"`
	Anchor      string           `yaml:"anchor,omitempty"`
	Now         string           `yaml:"now,omitempty"`
	Seed        uint64           `yaml:"seed"`
	Dataset     fixtures.Dataset `yaml:"dataset"`
	Expected    Expected         `yaml:"expected"`
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Window parses the scenario range.
func (sc *Scenario) Window() (model.Window, error) {
	return model.ParseWindow(sc.Range)
}

// Clock returns the fixed clock of the scenario, or nil for the wall clock.
func (sc *Scenario) Clock() (func() time.Time, error) {
	if sc.Now == "" {
		return nil, nil
	}
	t, err := model.ParseDate(sc.Now)
	if err != nil {
		return nil, err
	}
	return func() time.Time { return t }, nil
}

// AnchorMode parses the scenario anchor.
func (sc *Scenario) AnchorMode() (dashboard.AnchorMode, error) {
	return dashboard.ParseAnchorMode(sc.Anchor)
}
