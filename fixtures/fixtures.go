// Package fixtures loads charger usage datasets from YAML. A demonstration
// dataset is embedded and used when no file is configured.
package fixtures

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/chargeinsight/core/model"
)

//go:embed default.yaml
var defaultDataset []byte

type DailyDef struct {
	Date            string  `yaml:"date"`
	Sessions        int     `yaml:"sessions"`
	EnergyDelivered float64 `yaml:"energy_delivered"`
}

func (d DailyDef) ToModel() (model.DailyRecord, error) {
	t, err := model.ParseDate(d.Date)
	if err != nil {
		return model.DailyRecord{}, err
	}
	return model.DailyRecord{Date: t, Sessions: d.Sessions, EnergyDelivered: d.EnergyDelivered}, nil
}

type HourlyDef struct {
	Hour            string  `yaml:"hour"`
	Sessions        int     `yaml:"sessions"`
	EnergyDelivered float64 `yaml:"energy_delivered"`
}

func (h HourlyDef) ToModel() model.HourlyRecord {
	return model.HourlyRecord{Hour: h.Hour, Sessions: h.Sessions, EnergyDelivered: h.EnergyDelivered}
}

type StationDef struct {
	StationID       string  `yaml:"station_id"`
	Sessions        int     `yaml:"sessions"`
	EnergyDelivered float64 `yaml:"energy_delivered"`
	Availability    float64 `yaml:"availability"`
}

func (s StationDef) ToModel() model.StationRecord {
	return model.StationRecord{
		StationID:       s.StationID,
		Sessions:        s.Sessions,
		EnergyDelivered: s.EnergyDelivered,
		Availability:    s.Availability,
	}
}

// Dataset is the file representation of a model.Bundle.
type Dataset struct {
	DailyUsage   []DailyDef   `yaml:"daily_usage"`
	HourlyUsage  []HourlyDef  `yaml:"hourly_usage"`
	StationUsage []StationDef `yaml:"station_usage"`
}

// ToModel converts the dataset and validates every record.
func (d Dataset) ToModel() (model.Bundle, error) {
	b := model.Bundle{
		DailyUsage:   make([]model.DailyRecord, 0, len(d.DailyUsage)),
		HourlyUsage:  make([]model.HourlyRecord, 0, len(d.HourlyUsage)),
		StationUsage: make([]model.StationRecord, 0, len(d.StationUsage)),
	}
	for i, def := range d.DailyUsage {
		r, err := def.ToModel()
		if err != nil {
			return model.Bundle{}, fmt.Errorf("daily_usage[%d]: %w", i, err)
		}
		b.DailyUsage = append(b.DailyUsage, r)
	}
	for _, def := range d.HourlyUsage {
		b.HourlyUsage = append(b.HourlyUsage, def.ToModel())
	}
	for _, def := range d.StationUsage {
		b.StationUsage = append(b.StationUsage, def.ToModel())
	}
	if err := b.Validate(); err != nil {
		return model.Bundle{}, err
	}
	return b, nil
}

// Parse decodes a YAML dataset.
func Parse(data []byte) (model.Bundle, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return model.Bundle{}, fmt.Errorf("decode dataset: %w", err)
	}
	return ds.ToModel()
}

// Load reads the dataset at path. An empty path selects the embedded
// demonstration dataset.
func Load(path string) (model.Bundle, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Bundle{}, err
	}
	b, err := Parse(data)
	if err != nil {
		return model.Bundle{}, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Default returns the embedded demonstration dataset.
func Default() (model.Bundle, error) {
	return Parse(defaultDataset)
}
