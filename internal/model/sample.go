package model

// SampleTableFile matches the JSON shape written by the Monte Carlo stage
// (and by cmd/gen-samples).
//
// Example:
//
//	{
//	  "samples": [
//	    {"lithiation": 0.5, "temperature_k": 300, "energy": -10.3}
//	  ]
//	}
type SampleTableFile struct {
	Samples []Sample `json:"samples"`
}

// Sample is one Monte Carlo result: the mean energy of a configuration at a
// fixed lithiation fraction and temperature.
//
// Units:
// - Lithiation: fraction of occupied lithium sites, 0..1
// - TemperatureK: Kelvin, > 0
// - Energy: eV per formula unit
type Sample struct {
	Lithiation   float64 `json:"lithiation"`
	TemperatureK float64 `json:"temperature_k"`
	Energy       float64 `json:"energy"`
}
