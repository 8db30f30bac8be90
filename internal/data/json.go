package data

import (
	"encoding/json"
	"os"

	"ocv-hull/internal/model"
)

// LoadSampleTableJSON reads a Monte Carlo sample-table file.
func LoadSampleTableJSON(path string) (*model.SampleTableFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file model.SampleTableFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

// GroupByTemperature splits samples into temperature-keyed slices.
func GroupByTemperature(samples []model.Sample) map[float64][]model.Sample {
	out := map[float64][]model.Sample{}
	for _, s := range samples {
		out[s.TemperatureK] = append(out[s.TemperatureK], s)
	}
	return out
}
